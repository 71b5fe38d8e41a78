package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mau.fi/tgfileid/pkg/config"
	"go.mau.fi/tgfileid/pkg/fileid"
)

func newTestApp(t *testing.T, format string) (*app, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return &app{
		cfg: &config.Config{
			LogLevel:      "info",
			EncodeVersion: config.VersionConfig{Major: 4, Sub: 22},
			Workers:       2,
			CacheSize:     8,
			Mode:          "best_effort",
			Database:      filepath.Join(t.TempDir(), "index.db"),
		},
		log:    zerolog.Nop(),
		out:    &out,
		in:     strings.NewReader(""),
		format: format,
	}, &out
}

func TestDecodeCommand(t *testing.T) {
	a, out := newTestApp(t, formatJSON)
	require.NoError(t, a.run(context.Background(), "decode", []string{"CAADBAADwwADmFmqDf6xBrPTReqHAg"}))
	assert.JSONEq(t, `{
		"input": "CAADBAADwwADmFmqDf6xBrPTReqHAg",
		"file_id": {
			"kind": "document",
			"type": 8,
			"type_name": "Sticker",
			"dc_id": 4,
			"id": 984697977903775939,
			"access_hash": -8653026958495010306,
			"version": 2,
			"sub_version": 0
		},
		"unique_id": "AgADwwADmFmqDQ",
		"owner_id": 11164056
	}`, out.String())
}

func TestDecodeCommandPretty(t *testing.T) {
	a, out := newTestApp(t, formatPretty)
	require.NoError(t, a.run(context.Background(), "decode", []string{"CAADBAADwwADmFmqDf6xBrPTReqHAg"}))
	assert.Contains(t, out.String(), "AgADwwADmFmqDQ")
	assert.Contains(t, out.String(), "984697977903775939")
}

func TestDecodeCommandKeepsGoing(t *testing.T) {
	a, out := newTestApp(t, formatJSON)
	err := a.run(context.Background(), "unique", []string{"bad id", "CAADAQADegAD997LEUiQZafDlhIeAg"})
	assert.ErrorIs(t, err, fileid.ErrMalformedText)
	assert.Contains(t, out.String(), `"unique_id":"AgADegAD997LEQ"`)
}

func TestConvertCommand(t *testing.T) {
	a, out := newTestApp(t, formatPretty)
	require.NoError(t, a.run(context.Background(), "convert", []string{"CAADBAADwwADmFmqDf6xBrPTReqHAg"}))
	assert.Equal(t, "CAADBAADwwADmFmqDf6xBrPTReqHFgQ\n", out.String())
}

func TestSwapStickerCommand(t *testing.T) {
	a, out := newTestApp(t, formatPretty)
	require.NoError(t, a.run(context.Background(), "swap-sticker", []string{"CAADBAADwwADmFmqDf6xBrPTReqHAg"}))
	assert.Equal(t, "BQADBAADwwADmFmqDf6xBrPTReqHAg\n", out.String())

	err := a.run(context.Background(), "swap-sticker", []string{"AgADAgADRaoxG64rCUlfm3fj3nihW3PHUQ8ABA0Pma0G3xt2bLABAAEC"})
	assert.ErrorIs(t, err, fileid.ErrUnknownBaseType)
}

func TestParseUniqueCommand(t *testing.T) {
	a, out := newTestApp(t, formatJSON)
	assert.Error(t, a.run(context.Background(), "parse-unique", []string{"AgADww"}))

	a.cfg.LegacyFix = true
	require.NoError(t, a.run(context.Background(), "parse-unique", []string{"AgADww"}))
	assert.JSONEq(t, `{"input":"AgADww","unique_id":"AgADwwAH","unique":{"kind":2,"kind_name":"Document","id":195}}`, out.String())
}

func TestEncodeCommand(t *testing.T) {
	a, out := newTestApp(t, formatPretty)
	a.in = strings.NewReader(`{"kind":"document","type":8,"dc_id":4,"id":984697977903775939,"access_hash":-8653026958495010306,"version":2}`)
	require.NoError(t, a.run(context.Background(), "encode", nil))
	assert.Equal(t, "CAADBAADwwADmFmqDf6xBrPTReqHAg\n", out.String())
}

func TestBatchAndLookup(t *testing.T) {
	ctx := context.Background()
	a, out := newTestApp(t, formatJSON)
	input := filepath.Join(t.TempDir(), "ids.txt")
	require.NoError(t, os.WriteFile(input, []byte("CAADBAADwwADmFmqDf6xBrPTReqHAg\n\nnope!\nCAADAQADegAD997LEUiQZafDlhIeAg\n"), 0600))
	a.inputPath = input
	a.useIndex = true

	err := a.run(ctx, "batch", nil)
	assert.ErrorIs(t, err, fileid.ErrMalformedText)
	assert.Equal(t, 2, strings.Count(out.String(), "\n"))

	out.Reset()
	require.NoError(t, a.run(ctx, "lookup", []string{"AgADegAD997LEQ"}))
	assert.Contains(t, out.String(), `"file_id":"CAADAQADegAD997LEUiQZafDlhIeAg"`)

	out.Reset()
	require.NoError(t, a.run(ctx, "owner", []string{"11164056"}))
	assert.Contains(t, out.String(), `"unique_id":"AgADwwADmFmqDQ"`)

	assert.Error(t, a.run(ctx, "lookup", []string{"AQADc8dRDwAEa7ABAAE"}))
}

func TestUnknownCommand(t *testing.T) {
	a, _ := newTestApp(t, formatJSON)
	assert.ErrorIs(t, a.run(context.Background(), "explode", nil), errUnknownCommand)
	a.format = "xml"
	assert.Error(t, a.run(context.Background(), "decode", []string{"x"}))
}
