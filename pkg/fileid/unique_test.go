package fileid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mau.fi/tgfileid/pkg/fileid"
)

func TestProject(t *testing.T) {
	tests := []struct {
		fileID   string
		uniqueID string
	}{
		{"CAACAgQAAxkBAAIC4l9CWDGzVUcDejU0TETLWbOdfsCoAALDAAOYWaoN_rEGs9NF6ocbBA", "AgADwwADmFmqDQ"},
		{"CAADBAADwwADmFmqDf6xBrPTReqHAg", "AgADwwADmFmqDQ"},
		{"CAACAgEAAx0CVgtngQACAuFfU1GY9wiRG7A7jlIBbP2yvAostAACegAD997LEUiQZafDlhIeGwQ", "AgADegAD997LEQ"},
		{"CAADAQADegAD997LEUiQZafDlhIeAg", "AgADegAD997LEQ"},
		{"AgADAgADRaoxG64rCUlfm3fj3nihW3PHUQ8ABAEAAwIAA3gAA2uwAQABFgQ", "AQADc8dRDwAEa7ABAAE"},
		{"AgACAQEAAxlodHRwczovL2V4YW1wbGUuY29tL2EucG5nAAIqAAcbBA", "AAQZaHR0cHM6Ly9leGFtcGxlLmNvbS9hLnBuZwAC"},
	}
	for _, test := range tests {
		t.Run(test.fileID, func(t *testing.T) {
			id, err := fileid.DecodeFileID(test.fileID)
			require.NoError(t, err)
			unique, err := fileid.Project(id)
			require.NoError(t, err)
			encoded, err := fileid.EncodeUniqueID(unique)
			require.NoError(t, err)
			assert.Equal(t, test.uniqueID, encoded)
			assert.Equal(t, test.uniqueID, unique.String())

			decoded, err := fileid.DecodeUniqueID(test.uniqueID, false)
			require.NoError(t, err)
			assert.Equal(t, unique, decoded)
		})
	}
}

func TestProjectErrors(t *testing.T) {
	_, err := fileid.Project(fileid.DocumentFileID{Type: fileid.TypeSize})
	assert.ErrorIs(t, err, fileid.ErrUnknownBaseType)
	_, err = fileid.Project(fileid.DocumentFileID{Type: fileid.TypeWallpaper})
	assert.ErrorIs(t, err, fileid.ErrUnknownBaseType)
	_, err = fileid.Project(nil)
	assert.Error(t, err)

	unique, err := fileid.Project(fileid.DocumentFileID{Type: fileid.TypeSecureRaw, ID: 7})
	require.NoError(t, err)
	assert.Equal(t, fileid.UniqueID{Kind: fileid.UniqueSecure, ID: 7}, unique)
}

func TestDecodeUniqueID(t *testing.T) {
	unique, err := fileid.DecodeUniqueID("AQADc8dRDwAEa7ABAAE", false)
	require.NoError(t, err)
	assert.Equal(t, fileid.UniqueID{Kind: fileid.UniquePhoto, VolumeID: 257017715, LocalID: 110699}, unique)

	unique, err = fileid.DecodeUniqueID("AAQZaHR0cHM6Ly9leGFtcGxlLmNvbS9hLnBuZwAC", false)
	require.NoError(t, err)
	assert.Equal(t, fileid.UniqueID{Kind: fileid.UniqueWeb, URL: "https://example.com/a.png"}, unique)

	_, err = fileid.DecodeUniqueID("!!", false)
	assert.ErrorIs(t, err, fileid.ErrMalformedText)
	_, err = fileid.DecodeUniqueID("", false)
	assert.ErrorIs(t, err, fileid.ErrMalformedField)

	unknown, err := fileid.EncodeUniqueID(fileid.UniqueID{Kind: fileid.UniqueTemp, ID: 1})
	require.NoError(t, err)
	raw, err := fileid.DecodeText(unknown)
	require.NoError(t, err)
	raw = fileid.RLEDecode(raw)
	raw[0] = 6
	_, err = fileid.Decoder{}.UniqueRecord(raw)
	assert.ErrorIs(t, err, fileid.ErrUnknownBaseType)

	_, err = fileid.EncodeUniqueID(fileid.UniqueID{Kind: 6})
	assert.ErrorIs(t, err, fileid.ErrUnknownBaseType)
}

func TestDecodeUniqueIDLegacyFix(t *testing.T) {
	full, err := fileid.EncodeUniqueID(fileid.UniqueID{Kind: fileid.UniqueDocument, ID: 0xc3})
	require.NoError(t, err)
	assert.Equal(t, "AgADwwAH", full)

	_, err = fileid.DecodeUniqueID("AgADww", false)
	assert.ErrorIs(t, err, fileid.ErrMalformedField)

	fixed, err := fileid.DecodeUniqueID("AgADww", true)
	require.NoError(t, err)
	assert.Equal(t, fileid.UniqueID{Kind: fileid.UniqueDocument, ID: 0xc3}, fixed)

	// Padding is a no-op for full-length IDs.
	for _, s := range []string{"AgADwwAH", "AgADwwADmFmqDQ", "AQADc8dRDwAEa7ABAAE"} {
		plain, err := fileid.DecodeUniqueID(s, false)
		require.NoError(t, err)
		withFix, err := fileid.DecodeUniqueID(s, true)
		require.NoError(t, err)
		assert.Equal(t, plain, withFix, s)
	}
}

func TestDecodeUniqueIDTrailingData(t *testing.T) {
	record := []byte{2, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 9, 9}
	var warnings []fileid.Warning
	unique, err := fileid.Decoder{OnWarning: fileid.CollectWarnings(&warnings)}.UniqueRecord(record)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), unique.ID)
	assert.Equal(t, []fileid.Warning{{Kind: fileid.WarningTrailingData, Type: 2, Bytes: 2}}, warnings)
}

func TestUniqueKindOf(t *testing.T) {
	kind, ok := fileid.UniqueKindOf(fileid.TypeAnimation)
	assert.True(t, ok)
	assert.Equal(t, fileid.UniqueDocument, kind)
	assert.Equal(t, "Document", kind.String())

	_, ok = fileid.UniqueKindOf(fileid.TypeNone)
	assert.False(t, ok)
}
