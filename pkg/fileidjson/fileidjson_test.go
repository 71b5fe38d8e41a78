package fileidjson_test

import (
	"testing"

	"github.com/go-faster/jx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mau.fi/tgfileid/pkg/fileid"
	"go.mau.fi/tgfileid/pkg/fileidjson"
)

func TestEncodeFileID(t *testing.T) {
	id, err := fileid.DecodeFileID("CAADBAADwwADmFmqDf6xBrPTReqHAg")
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"kind": "document",
		"type": 8,
		"type_name": "Sticker",
		"dc_id": 4,
		"id": 984697977903775939,
		"access_hash": -8653026958495010306,
		"version": 2,
		"sub_version": 0
	}`, string(fileidjson.MarshalFileID(id)))

	id, err = fileid.DecodeFileID("AgADAgADRaoxG64rCUlfm3fj3nihW3PHUQ8ABAEAAwIAA3gAA2uwAQABFgQ")
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"kind": "photo",
		"type": 2,
		"type_name": "Photo",
		"dc_id": 2,
		"id": 5262785666339678789,
		"access_hash": 6602691427396197215,
		"photo_size_source": {
			"kind": 1,
			"kind_name": "Thumbnail",
			"volume_id": 257017715,
			"local_id": 110699,
			"file_type": 2,
			"thumbnail_type": "x"
		},
		"version": 4,
		"sub_version": 22
	}`, string(fileidjson.MarshalFileID(id)))
}

func TestRoundtrip(t *testing.T) {
	for _, input := range []string{
		"CAADBAADwwADmFmqDf6xBrPTReqHAg",
		"CAACAgQAAxkBAAIC4l9CWDGzVUcDejU0TETLWbOdfsCoAALDAAOYWaoN_rEGs9NF6ocbBA",
		"AgADAgADRaoxG64rCUlfm3fj3nihW3PHUQ8ABA0Pma0G3xt2bLABAAEC",
		"AgADAgADRaoxG64rCUlfm3fj3nihW3PHUQ8ABAEAAwIAA3gAA2uwAQABFgQ",
		"AQADAgATqfDdly4AAwMAA4siCOX_____AAhKowIAARsE",
		"AAQCAAMBAAf__________2QABwQAAysCAAb5_________wkAAxYE",
		"AgACAQEAAxlodHRwczovL2V4YW1wbGUuY29tL2EucG5nAAIqAAcbBA",
	} {
		t.Run(input, func(t *testing.T) {
			id, err := fileid.DecodeFileID(input)
			require.NoError(t, err)
			parsed, err := fileidjson.UnmarshalFileID(fileidjson.MarshalFileID(id))
			require.NoError(t, err)
			assert.Equal(t, id, parsed)
			encoded, err := fileid.EncodeFileID(parsed)
			require.NoError(t, err)
			assert.Equal(t, input, encoded)
		})
	}
}

func TestDecodeFileID(t *testing.T) {
	id, err := fileidjson.UnmarshalFileID([]byte(`{"kind":"document","type":5,"dc_id":1,"id":7,"access_hash":8,"extra":[1,2]}`))
	require.NoError(t, err)
	assert.Equal(t, fileid.DocumentFileID{Type: fileid.TypeDocument, DC: 1, ID: 7, AccessHash: 8}, id)

	id, err = fileidjson.UnmarshalFileID([]byte(`{"kind":"document","type":5,"file_reference":""}`))
	require.NoError(t, err)
	assert.True(t, id.HasReference())

	_, err = fileidjson.UnmarshalFileID([]byte(`{"kind":"photo","type":2}`))
	assert.Error(t, err)
	_, err = fileidjson.UnmarshalFileID([]byte(`{"kind":"audio"}`))
	assert.Error(t, err)
	_, err = fileidjson.UnmarshalFileID([]byte(`{"kind":"document","version":4,"sub_version":30}`))
	assert.ErrorIs(t, err, fileid.ErrUnsupportedVersion)
	_, err = fileidjson.UnmarshalFileID([]byte(`{"kind":"document","id":"x"}`))
	assert.Error(t, err)
}

func TestEncodeUniqueID(t *testing.T) {
	for _, test := range []struct {
		unique   fileid.UniqueID
		expected string
	}{
		{fileid.UniqueID{Kind: fileid.UniqueDocument, ID: 984697977903775939}, `{"kind":2,"kind_name":"Document","id":984697977903775939}`},
		{fileid.UniqueID{Kind: fileid.UniquePhoto, VolumeID: 257017715, LocalID: 110699}, `{"kind":1,"kind_name":"Photo","volume_id":257017715,"local_id":110699}`},
		{fileid.UniqueID{Kind: fileid.UniqueWeb, URL: "https://example.com"}, `{"kind":0,"kind_name":"Web","url":"https://example.com"}`},
	} {
		var e jx.Encoder
		fileidjson.EncodeUniqueID(&e, test.unique)
		assert.JSONEq(t, test.expected, e.String())
	}
}
