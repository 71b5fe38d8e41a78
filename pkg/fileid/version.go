package fileid

import (
	"strconv"
	"strings"

	"github.com/go-faster/errors"
)

// Version is the version suffix of a file ID record. Sub is only stored when
// Major is 4 and is zero otherwise.
type Version struct {
	Major uint8
	Sub   uint8
}

// Known versions.
var (
	Version2      = Version{Major: 2}
	Version4Sub22 = Version{Major: 4, Sub: 22}
	Version4Sub27 = Version{Major: 4, Sub: 27}

	// LatestVersion is used when encoding an identifier without a version.
	LatestVersion = Version4Sub27
)

var supportedVersions = []Version{Version2, Version4Sub22, Version4Sub27}

// SupportedVersions returns the versions this package can decode and encode.
func SupportedVersions() []Version {
	return append([]Version(nil), supportedVersions...)
}

// Supported reports whether v is in the supported set.
func (v Version) Supported() bool {
	for _, s := range supportedVersions {
		if s == v {
			return true
		}
	}
	return false
}

// IsZero reports whether v is unset.
func (v Version) IsZero() bool {
	return v == Version{}
}

func (v Version) hasSub() bool {
	return v.Major == 4
}

func (v Version) String() string {
	if v.hasSub() {
		return strconv.Itoa(int(v.Major)) + "." + strconv.Itoa(int(v.Sub))
	}
	return strconv.Itoa(int(v.Major))
}

// ParseVersion parses the output of Version.String.
func ParseVersion(s string) (Version, error) {
	major, sub, hasSub := strings.Cut(s, ".")
	m, err := strconv.ParseUint(major, 10, 8)
	if err != nil {
		return Version{}, errors.Wrapf(ErrUnsupportedVersion, "parse %q: %v", s, err)
	}
	v := Version{Major: uint8(m)}
	if hasSub {
		n, err := strconv.ParseUint(sub, 10, 8)
		if err != nil {
			return Version{}, errors.Wrapf(ErrUnsupportedVersion, "parse %q: %v", s, err)
		}
		v.Sub = uint8(n)
	}
	if !v.Supported() {
		return Version{}, errors.Wrapf(ErrUnsupportedVersion, "version %s", v)
	}
	return v, nil
}

// StripVersion splits the version suffix off a decompressed record.
func StripVersion(record []byte) (payload []byte, v Version, err error) {
	if len(record) == 0 {
		return nil, Version{}, errors.Wrap(ErrUnsupportedVersion, "empty record")
	}
	payload, v.Major = record[:len(record)-1], record[len(record)-1]
	if v.hasSub() {
		if len(payload) == 0 {
			return nil, Version{}, errors.Wrap(ErrMalformedField, "missing sub-version")
		}
		payload, v.Sub = payload[:len(payload)-1], payload[len(payload)-1]
	}
	if !v.Supported() {
		return nil, Version{}, errors.Wrapf(ErrUnsupportedVersion, "version %s", v)
	}
	return payload, v, nil
}

// AppendVersion returns a copy of payload with the version suffix of v.
func AppendVersion(payload []byte, v Version) ([]byte, error) {
	if !v.Supported() {
		return nil, errors.Wrapf(ErrUnsupportedVersion, "version %s", v)
	}
	r := make([]byte, len(payload), len(payload)+2)
	copy(r, payload)
	if v.hasSub() {
		r = append(r, v.Sub)
	}
	return append(r, v.Major), nil
}
