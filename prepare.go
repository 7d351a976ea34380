package bnk

// bkhdHeaderBytes is the unpadded byte length of a BKHD body (5 u32
// fields), used by the WEM-alignment offset calculation below.
const bkhdHeaderBytes = 20

// didxDescriptorBytes is the encoded length of one DIDX {id,offset,size}
// triple.
const didxDescriptorBytes = 12

// sectionHeaderBytes is the magic+size prefix every section carries.
const sectionHeaderBytes = 8

// Prepare recomputes the BKHD alignment padding, in place, ahead of
// Encode. Every other derived field this format has (section/HIRCObject
// sizes, array counts, decision-tree size) is never cached anywhere in
// this tree to begin with: Encode always measures a body's length or a
// slice's length on the fly, so there is nothing for Prepare to keep in
// sync for those — see DESIGN.md for why this repo implements the
// spec's "treat derived fields as cache" design note by eliminating the
// cache rather than recomputing it. BKHD.padding is the one field that
// is genuinely stored, since it depends on the cumulative size of
// sections preceding DATA and the caller's chosen wem_alignment, neither
// of which Encode can infer from BKHD alone.
func Prepare(bank *SoundBank) error {
	var didx *DIDXSection
	var bkhd *BKHDSection
	hasData := false

	for _, s := range bank.Sections {
		switch body := s.Body.(type) {
		case *BKHDSection:
			bkhd = body
		case *DIDXSection:
			didx = body
		case *DATASection:
			hasData = true
		}
	}

	if bkhd == nil || didx == nil || !hasData {
		return nil
	}

	offset := 3*sectionHeaderBytes + bkhdHeaderBytes + len(didx.Descriptors)*didxDescriptorBytes
	alignment := int(bkhd.WemAlignment)
	if alignment <= 0 {
		bkhd.Padding = nil
		return nil
	}
	padLen := (alignment - offset%alignment) % alignment
	bkhd.Padding = make([]byte, padLen)
	return nil
}
