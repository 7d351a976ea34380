package bnk

import (
	"testing"

	"github.com/kelindar/wwise-bnk/internal/bitio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropBundleWorkedExample(t *testing.T) {
	bundle := PropBundle{
		Tags:   []PropID{PropVolume, PropAttenuationID},
		Values: []PropValue{propValueF32(1.0), propValueU32(42)},
	}

	w := bitio.NewWriter()
	require.NoError(t, bundle.encode(w))

	want := []byte{0x02, 0x00, 0x46, 0x00, 0x00, 0x80, 0x3F, 0x2A, 0x00, 0x00, 0x00}
	assert.Equal(t, want, w.Bytes())

	got, err := decodePropBundle(bitio.NewCursor(w.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, bundle, got)
}

func TestPropBundleEmptyIsSingleZeroByte(t *testing.T) {
	w := bitio.NewWriter()
	require.NoError(t, (&PropBundle{}).encode(w))
	assert.Equal(t, []byte{0x00}, w.Bytes())
}

func TestPropBundleUnknownTagIsDecodeError(t *testing.T) {
	raw := []byte{0x01, 0xFF, 0x00, 0x00, 0x00, 0x00}
	_, err := decodePropBundle(bitio.NewCursor(raw))
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestPropBundleDeterminism(t *testing.T) {
	raw := []byte{0x02, 0x00, 0x46, 0x00, 0x00, 0x80, 0x3F, 0x2A, 0x00, 0x00, 0x00}
	bundle, err := decodePropBundle(bitio.NewCursor(raw))
	require.NoError(t, err)

	w := bitio.NewWriter()
	require.NoError(t, bundle.encode(w))
	assert.Equal(t, raw, w.Bytes())
}

func TestPropRangedModifiersBackToBackLayout(t *testing.T) {
	mods := PropRangedModifiers{Entries: []PropRangedModifier{
		{Tag: PropPitch, Min: -100, Max: 100},
	}}

	w := bitio.NewWriter()
	require.NoError(t, mods.encode(w))

	got, err := decodePropRangedModifiers(bitio.NewCursor(w.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, mods, got)
}

func TestPropIDString(t *testing.T) {
	assert.Equal(t, "Volume", PropVolume.String())
	assert.Equal(t, "AttenuationID", PropAttenuationID.String())
}
