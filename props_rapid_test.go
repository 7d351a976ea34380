package bnk

import (
	"testing"

	"github.com/kelindar/wwise-bnk/internal/bitio"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func genPropID(t *rapid.T) PropID {
	return PropID(rapid.IntRange(0, int(PropMax)-1).Draw(t, "tag"))
}

func genPropBundle(t *rapid.T) PropBundle {
	n := rapid.IntRange(0, 8).Draw(t, "count")
	tags := make([]PropID, n)
	values := make([]PropValue, n)
	for i := 0; i < n; i++ {
		tag := genPropID(t)
		tags[i] = tag
		typ, _ := tag.valueType()
		switch typ {
		case PropValueI32:
			values[i] = propValueI32(rapid.Int32().Draw(t, "i32"))
		case PropValueU32:
			values[i] = propValueU32(rapid.Uint32().Draw(t, "u32"))
		default:
			values[i] = propValueF32(rapid.Float32().Draw(t, "f32"))
		}
	}
	return PropBundle{Tags: tags, Values: values}
}

func TestRapidPropBundleRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		bundle := genPropBundle(t)

		w := bitio.NewWriter()
		require.NoError(t, bundle.encode(w))

		got, err := decodePropBundle(bitio.NewCursor(w.Bytes()))
		require.NoError(t, err)
		require.Equal(t, bundle, got)

		w2 := bitio.NewWriter()
		require.NoError(t, got.encode(w2))
		require.Equal(t, w.Bytes(), w2.Bytes())
	})
}

func TestRapidPropRangedModifiersRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 8).Draw(t, "count")
		mods := make([]PropRangedModifier, n)
		for i := range mods {
			mods[i] = PropRangedModifier{
				Tag: genPropID(t),
				Min: rapid.Float32().Draw(t, "min"),
				Max: rapid.Float32().Draw(t, "max"),
			}
		}
		m := PropRangedModifiers{Entries: mods}

		w := bitio.NewWriter()
		require.NoError(t, m.encode(w))

		got, err := decodePropRangedModifiers(bitio.NewCursor(w.Bytes()))
		require.NoError(t, err)
		require.Equal(t, m, got)
	})
}
