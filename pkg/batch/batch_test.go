package batch_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"go.mau.fi/tgfileid/pkg/batch"
	"go.mau.fi/tgfileid/pkg/fileid"
)

var inputs = []string{
	"CAADBAADwwADmFmqDf6xBrPTReqHAg",
	"not valid",
	"AgADAgADRaoxG64rCUlfm3fj3nihW3PHUQ8ABAEAAwIAA3gAA2uwAQABFgQ",
	"AQADAgATqfDdly4AAwMAA4siCOX_____AAhKowIAAR4E",
	"CAADBAADwwADmFmqDf6xBrPTReqHFgQ",
}

func TestProcessBestEffort(t *testing.T) {
	p, err := batch.New(batch.Options{Workers: 3, CacheSize: 16, Logger: zerolog.Nop()})
	require.NoError(t, err)

	results, err := p.Process(context.Background(), inputs)
	require.Len(t, results, len(inputs))
	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	assert.ErrorIs(t, errs[0], fileid.ErrMalformedText)
	assert.ErrorIs(t, errs[1], fileid.ErrUnsupportedVersion)

	for i, res := range results {
		assert.Equal(t, inputs[i], res.Input)
	}
	assert.NoError(t, results[0].Err)
	require.NotNil(t, results[0].Unique)
	assert.Equal(t, "AgADwwADmFmqDQ", results[0].Unique.String())
	assert.True(t, results[0].HasOwner)
	assert.Equal(t, uint32(11164056), results[0].OwnerID)

	assert.Equal(t, fileid.TypePhoto, results[2].FileID.FileType())
	assert.False(t, results[2].HasOwner)
	assert.Equal(t, *results[0].Unique, *results[4].Unique)
}

func TestProcessAllOrNothing(t *testing.T) {
	p, err := batch.New(batch.Options{Workers: 1, Mode: batch.AllOrNothing})
	require.NoError(t, err)

	results, err := p.Process(context.Background(), inputs)
	assert.ErrorIs(t, err, fileid.ErrMalformedText)
	assert.Len(t, multierr.Errors(err), 1)
	assert.NoError(t, results[0].Err)
	// With one worker nothing after the failure gets scheduled.
	assert.Empty(t, results[4].Input)
}

func TestProcessCancelled(t *testing.T) {
	p, err := batch.New(batch.Options{Workers: 2})
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.Process(ctx, inputs)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcessWarnings(t *testing.T) {
	record, err := fileid.EncodeRecord(fileid.DocumentFileID{Type: fileid.TypeTemp, ID: 1}, fileid.Version2)
	require.NoError(t, err)
	input := fileid.EncodeText(fileid.RLEEncode(record))

	p, err := batch.New(batch.Options{CacheSize: 4})
	require.NoError(t, err)
	res := p.Decode(input)
	require.NoError(t, res.Err)
	assert.Equal(t, []fileid.Warning{{Kind: fileid.WarningUnknownType, Type: uint32(fileid.TypeTemp)}}, res.Warnings)

	// Cached results keep their warnings.
	assert.Equal(t, res, p.Decode(input))
}

func TestProcessOrder(t *testing.T) {
	many := make([]string, 200)
	for i := range many {
		id := fileid.DocumentFileID{Type: fileid.TypeDocument, DC: 2, ID: int64(i), AccessHash: int64(-i)}
		encoded, err := fileid.EncodeFileID(id)
		require.NoError(t, err)
		many[i] = encoded
	}
	p, err := batch.New(batch.Options{Workers: 8})
	require.NoError(t, err)
	results, err := p.Process(context.Background(), many)
	require.NoError(t, err)
	for i, res := range results {
		doc, ok := res.FileID.(fileid.DocumentFileID)
		require.True(t, ok, fmt.Sprint(i))
		assert.Equal(t, int64(i), doc.ID)
	}
}

func TestParseMode(t *testing.T) {
	for _, mode := range []batch.Mode{batch.BestEffort, batch.AllOrNothing} {
		parsed, err := batch.ParseMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, parsed)
	}
	_, err := batch.ParseMode("sometimes")
	assert.Error(t, err)
}
