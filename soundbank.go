package bnk

import (
	"fmt"

	"github.com/kelindar/wwise-bnk/internal/bitio"
)

// SoundBank is a decoded .bnk container: an ordered sequence of sections.
// Section order is preserved exactly through decode, edit, and encode; on
// encode BKHD must come first, with DIDX/DATA immediately following it
// when present.
type SoundBank struct {
	Sections []*Section
}

// Decode parses a raw SoundBank byte buffer into a tree of typed
// sections and HIRC objects. It does not validate section order on the
// way in — a bank that violates the canonical ordering still decodes,
// since that invariant only binds what this codec itself produces.
func Decode(data []byte) (*SoundBank, error) {
	c := bitio.NewCursor(data)
	bank := &SoundBank{}

	for c.Remaining() > 0 {
		magicBytes, err := c.Bytes(4)
		if err != nil {
			return nil, truncated("Section.magic")
		}
		magic := string(magicBytes)

		size, err := c.U32()
		if err != nil {
			return nil, truncated("Section.size")
		}
		bodyBytes, err := c.Bytes(int(size))
		if err != nil {
			return nil, truncated(fmt.Sprintf("Section(%s).body", magic))
		}

		body, err := decodeSectionBody(magic, bitio.NewCursor(bodyBytes), int(size))
		if err != nil {
			return nil, err
		}
		bank.Sections = append(bank.Sections, &Section{Magic: magic, Body: body})
	}

	return bank, nil
}

// Encode serializes a SoundBank to bytes, in section order. Counts and
// sizes are measured from the in-memory sequences as they are written;
// callers that mutated DIDX or BKHD should run Prepare first so the BKHD
// alignment padding is consistent.
func (b *SoundBank) Encode() ([]byte, error) {
	w := bitio.NewWriter()
	for _, section := range b.Sections {
		bodyWriter := bitio.NewWriter()
		if err := section.Body.encodeBody(bodyWriter); err != nil {
			return nil, fmt.Errorf("Section(%s): %w", section.Magic, err)
		}
		body := bodyWriter.Bytes()
		if len(body) > 0xFFFFFFFF {
			return nil, encodeFailed(fmt.Sprintf("Section(%s).size overflow", section.Magic))
		}

		w.PutBytes([]byte(section.Magic))
		w.PutU32(uint32(len(body)))
		w.PutBytes(body)
	}
	return w.Bytes(), nil
}

// Section looks up the first section with the given magic, if any.
func (b *SoundBank) Section(magic string) (*Section, bool) {
	for _, s := range b.Sections {
		if s.Magic == magic {
			return s, true
		}
	}
	return nil, false
}

// HIRCObject looks up a HIRC object by its FNV-hashed id across every
// HIRC section the bank carries (in practice there is at most one).
func (b *SoundBank) HIRCObject(id uint32) (*HIRCObject, bool) {
	for _, s := range b.Sections {
		hirc, ok := s.Body.(*HIRCSection)
		if !ok {
			continue
		}
		for _, obj := range hirc.Objects {
			if obj.ID.Hash == id {
				return obj, true
			}
		}
	}
	return nil, false
}
