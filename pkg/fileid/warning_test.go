package fileid_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mau.fi/tgfileid/pkg/fileid"
)

func TestZerologWarnings(t *testing.T) {
	var buf bytes.Buffer
	decoder := fileid.Decoder{OnWarning: fileid.ZerologWarnings(zerolog.New(&buf))}

	record, err := fileid.EncodeRecord(fileid.DocumentFileID{Type: fileid.TypeEncrypted}, fileid.Version2)
	require.NoError(t, err)
	_, err = decoder.Record(record)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"level":"warn","warning":"unknown_type","type":6,"leftover_bytes":0,"message":"unknown type 6, decoded as document"}`,
		buf.String())
}
