package bnk

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase64BlobRoundTrip(t *testing.T) {
	blob := Base64Blob{0x00, 0x01, 0x02, 0xFF}
	data, err := json.Marshal(blob)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "=", "base64 must be emitted without padding")

	var got Base64Blob
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, blob, got)
}

func TestCStringRoundTrip(t *testing.T) {
	s := CString(lossyUTF8([]byte{'h', 'i', 0xFF}))
	data, err := json.Marshal(s)
	require.NoError(t, err)

	var got CString
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, s, got)
}

func TestObjectIDRoundTrip(t *testing.T) {
	id := NewObjectIDFromName("Play_c407001000")
	data, err := json.Marshal(id)
	require.NoError(t, err)

	var got ObjectID
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, id, got)
	assert.Equal(t, uint32(1834890111), got.Hash)
}

func TestObjectIDResolveFallsBackToDictionary(t *testing.T) {
	id := ObjectID{Hash: FNV1_32Lower("Play_c407001000")}
	assert.Equal(t, "", id.Resolve(nil))

	dict := make(Dictionary)
	dict.Add("Play_c407001000")
	assert.Equal(t, "Play_c407001000", id.Resolve(dict))
}
