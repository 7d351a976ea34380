package bnk

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func genBank(t *rapid.T) *SoundBank {
	alignment := rapid.Uint32Range(1, 64).Draw(t, "alignment")
	bkhd := &BKHDSection{
		Version:      rapid.Uint32().Draw(t, "version"),
		BankID:       rapid.Uint32().Draw(t, "bank_id"),
		LanguageFNV:  rapid.Uint32().Draw(t, "language_fnv"),
		WemAlignment: alignment,
		ProjectID:    rapid.Uint32().Draw(t, "project_id"),
	}

	n := rapid.IntRange(0, 4).Draw(t, "wem_count")
	descriptors := make([]DIDXDescriptor, n)
	var data []byte
	offset := uint32(0)
	for i := range descriptors {
		size := rapid.Uint32Range(0, 32).Draw(t, "wem_size")
		descriptors[i] = DIDXDescriptor{ID: uint32(i + 1), Offset: offset, Size: size}
		data = append(data, make([]byte, size)...)
		offset += size
	}

	return &SoundBank{Sections: []*Section{
		{Magic: MagicBKHD, Body: bkhd},
		{Magic: MagicDIDX, Body: &DIDXSection{Descriptors: descriptors}},
		{Magic: MagicDATA, Body: &DATASection{Bytes: data}},
	}}
}

// TestRapidSoundBankRoundTrip checks §8 property 1 (decode/encode round
// trip) and property 3 (section order preserved) for generated banks.
func TestRapidSoundBankRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		bank := genBank(t)

		encoded, err := bank.Encode()
		require.NoError(t, err)

		decoded, err := Decode(encoded)
		require.NoError(t, err)
		require.Len(t, decoded.Sections, len(bank.Sections))
		for i, s := range decoded.Sections {
			require.Equal(t, bank.Sections[i].Magic, s.Magic)
		}

		reEncoded, err := decoded.Encode()
		require.NoError(t, err)
		require.Equal(t, encoded, reEncoded)
	})
}

// TestRapidPrepareIdempotent checks that running Prepare twice produces the
// same BKHD padding both times (§8 property 4, alignment is a pure function
// of the preceding sections and never drifts on repeated calls).
func TestRapidPrepareIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		bank := genBank(t)

		require.NoError(t, Prepare(bank))
		first := append([]byte(nil), bank.Sections[0].Body.(*BKHDSection).Padding...)

		require.NoError(t, Prepare(bank))
		second := bank.Sections[0].Body.(*BKHDSection).Padding

		require.Equal(t, first, second)

		bkhd := bank.Sections[0].Body.(*BKHDSection)
		didx := bank.Sections[1].Body.(*DIDXSection)
		offset := 3*sectionHeaderBytes + bkhdHeaderBytes + len(didx.Descriptors)*didxDescriptorBytes
		total := offset + len(bkhd.Padding)
		if bkhd.WemAlignment > 0 {
			require.Equal(t, 0, total%int(bkhd.WemAlignment))
		}
	})
}
