package fileid

import "github.com/go-faster/errors"

// Errors returned by the codec. Returned errors wrap one of these, so callers
// should compare with errors.Is.
var (
	// ErrMalformedText is returned when the text form is not valid unpadded
	// URL-safe base64.
	ErrMalformedText = errors.New("malformed base64url text")
	// ErrUnsupportedVersion is returned for version/sub-version pairs outside
	// of the supported set.
	ErrUnsupportedVersion = errors.New("unsupported version")
	// ErrMalformedField is returned for truncated records, invalid length
	// prefixes and missing string terminators.
	ErrMalformedField = errors.New("malformed field")
	// ErrFieldTooLarge is returned when a string does not fit in a 3-byte
	// length prefix.
	ErrFieldTooLarge = errors.New("field too large")
	// ErrUnknownPhotoSizeSource is returned for photo size source kinds that
	// this package doesn't know.
	ErrUnknownPhotoSizeSource = errors.New("unknown photo size source")
	// ErrUnknownBaseType is returned when encoding or projecting a type that
	// can't be represented. Decoding never fails with it.
	ErrUnknownBaseType = errors.New("unknown base type")
)

func truncated(field string, err error) error {
	return errors.Wrapf(ErrMalformedField, "read %s: %v", field, err)
}
