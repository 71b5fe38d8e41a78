package fileid

import (
	"encoding/base64"
	"strings"

	"github.com/go-faster/errors"
)

// DecodeText decodes URL-safe base64 with optional padding.
func DecodeText(s string) ([]byte, error) {
	if rem := len(s) % 4; rem != 0 {
		s += strings.Repeat("=", 4-rem)
	}
	b, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedText, "%v", err)
	}
	return b, nil
}

// EncodeText encodes b as URL-safe base64 without padding.
func EncodeText(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}
