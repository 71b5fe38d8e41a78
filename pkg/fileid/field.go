package fileid

import (
	"bytes"

	"github.com/go-faster/errors"
	"github.com/gotd/td/bin"
)

const (
	// maxShortLength is the longest string that fits a single length byte.
	maxShortLength = 253
	// longLengthMarker prefixes a 3-byte little-endian length.
	longLengthMarker = 254
	// maxLength is the longest string a 3-byte length can describe.
	maxLength = 1<<24 - 1

	// thumbnailTypeSize is the width of the slot holding the thumbnail type.
	thumbnailTypeSize = 4
)

func paddingFor(n int) int {
	return (4 - n%4) % 4
}

// PackLengthPrefixed encodes s as a TL string: a length prefix, the data and
// zero padding up to a multiple of 4 bytes.
func PackLengthPrefixed(s []byte) ([]byte, error) {
	if len(s) > maxLength {
		return nil, errors.Wrapf(ErrFieldTooLarge, "string of %d bytes", len(s))
	}
	var b bin.Buffer
	b.PutBytes(s)
	return b.Buf, nil
}

// UnpackLengthPrefixed decodes a TL string from the start of buf and returns
// the value and the number of bytes consumed, padding included.
func UnpackLengthPrefixed(buf []byte) (value []byte, n int, err error) {
	if len(buf) == 0 {
		return nil, 0, errors.Wrap(ErrMalformedField, "missing length")
	}
	length, header := int(buf[0]), 1
	switch {
	case length > longLengthMarker:
		return nil, 0, errors.Wrapf(ErrMalformedField, "invalid length byte %d", length)
	case length == longLengthMarker:
		if len(buf) < 4 {
			return nil, 0, errors.Wrap(ErrMalformedField, "truncated long length")
		}
		length, header = int(buf[1])|int(buf[2])<<8|int(buf[3])<<16, 4
	}
	n = header + length
	if len(buf) < n {
		return nil, 0, errors.Wrapf(ErrMalformedField, "string of %d bytes truncated to %d", length, len(buf)-header)
	}
	value = buf[header:n]
	n += paddingFor(n)
	if len(buf) < n {
		return nil, 0, errors.Wrap(ErrMalformedField, "truncated padding")
	}
	return value, n, nil
}

// PackNullTerminated appends a zero terminator to s.
func PackNullTerminated(s []byte) ([]byte, error) {
	if bytes.IndexByte(s, 0) >= 0 {
		return nil, errors.Wrap(ErrMalformedField, "string contains a null byte")
	}
	r := make([]byte, 0, len(s)+1)
	r = append(r, s...)
	return append(r, 0), nil
}

// UnpackNullTerminated reads bytes up to the first zero byte and returns them
// together with the number of bytes consumed, terminator included.
func UnpackNullTerminated(buf []byte) (value []byte, n int, err error) {
	end := bytes.IndexByte(buf, 0)
	if end < 0 {
		return nil, 0, errors.Wrap(ErrMalformedField, "missing null terminator")
	}
	return buf[:end], end + 1, nil
}

// reader consumes a record field by field.
type reader struct {
	buf bin.Buffer
}

func newReader(b []byte) *reader {
	return &reader{buf: bin.Buffer{Buf: b}}
}

func (r *reader) uint32(field string) (uint32, error) {
	v, err := r.buf.Uint32()
	if err != nil {
		return 0, truncated(field, err)
	}
	return v, nil
}

func (r *reader) int32(field string) (int32, error) {
	v, err := r.buf.Int32()
	if err != nil {
		return 0, truncated(field, err)
	}
	return v, nil
}

func (r *reader) int64(field string) (int64, error) {
	v, err := r.buf.Long()
	if err != nil {
		return 0, truncated(field, err)
	}
	return v, nil
}

func (r *reader) lengthPrefixed(field string) ([]byte, error) {
	v, n, err := UnpackLengthPrefixed(r.buf.Buf)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", field)
	}
	r.buf.Buf = r.buf.Buf[n:]
	return bytes.Clone(v), nil
}

// thumbnailType reads a null-terminated string stored in a fixed 4-byte slot.
func (r *reader) thumbnailType(field string) ([]byte, error) {
	if r.buf.Len() < thumbnailTypeSize {
		return nil, errors.Wrapf(ErrMalformedField, "read %s: %d bytes left", field, r.buf.Len())
	}
	v, _, err := UnpackNullTerminated(r.buf.Buf[:thumbnailTypeSize])
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", field)
	}
	r.buf.Buf = r.buf.Buf[thumbnailTypeSize:]
	return bytes.Clone(v), nil
}

// rest returns the unread bytes.
func (r *reader) rest() []byte {
	return r.buf.Buf
}

func putLengthPrefixed(b *bin.Buffer, field string, s []byte) error {
	packed, err := PackLengthPrefixed(s)
	if err != nil {
		return errors.Wrapf(err, "write %s", field)
	}
	b.Buf = append(b.Buf, packed...)
	return nil
}

func putThumbnailType(b *bin.Buffer, s []byte) error {
	if len(s) >= thumbnailTypeSize {
		return errors.Wrapf(ErrFieldTooLarge, "thumbnail type %q longer than %d bytes", s, thumbnailTypeSize-1)
	}
	packed, err := PackNullTerminated(s)
	if err != nil {
		return errors.Wrap(err, "write thumbnail_type")
	}
	b.Buf = append(b.Buf, packed...)
	b.Buf = append(b.Buf, make([]byte, thumbnailTypeSize-len(packed))...)
	return nil
}
