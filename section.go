package bnk

import (
	"github.com/kelindar/wwise-bnk/internal/bitio"
)

// Section magics, in the fixed order §3 requires on encode: BKHD first,
// then DIDX/DATA immediately after it when present.
const (
	MagicBKHD = "BKHD"
	MagicDIDX = "DIDX"
	MagicDATA = "DATA"
	MagicHIRC = "HIRC"
	MagicSTMG = "STMG"
	MagicSTID = "STID"
	MagicENVS = "ENVS"
	MagicINIT = "INIT"
	MagicPLAT = "PLAT"
	MagicFXPR = "FXPR"
)

// SectionBody is implemented by every section payload variant.
type SectionBody interface {
	encodeBody(w *bitio.Writer) error
}

// Section is one `magic, size, body` record of a SoundBank.
type Section struct {
	Magic string
	Body  SectionBody
}

// BKHDSection is the bank header: version, bank id, language hash, WEM
// alignment, project id, and a trailing zero-padding run whose length
// Export-Prepare recomputes so the first WEM in DATA lands aligned.
type BKHDSection struct {
	Version      uint32
	BankID       uint32
	LanguageFNV  uint32
	WemAlignment uint32
	ProjectID    uint32
	Padding      []byte
}

func decodeBKHDSection(c *bitio.Cursor, size int) (*BKHDSection, error) {
	b := &BKHDSection{}
	var err error
	if b.Version, err = c.U32(); err != nil {
		return nil, truncated("BKHD.version")
	}
	if b.BankID, err = c.U32(); err != nil {
		return nil, truncated("BKHD.bank_id")
	}
	if b.LanguageFNV, err = c.U32(); err != nil {
		return nil, truncated("BKHD.language_fnv")
	}
	if b.WemAlignment, err = c.U32(); err != nil {
		return nil, truncated("BKHD.wem_alignment")
	}
	if b.ProjectID, err = c.U32(); err != nil {
		return nil, truncated("BKHD.project_id")
	}
	padLen := size - 20
	if padLen < 0 {
		return nil, lengthMismatch("BKHD", 20, size)
	}
	b.Padding, err = c.Bytes(padLen)
	if err != nil {
		return nil, truncated("BKHD.padding")
	}
	return b, nil
}

func (b *BKHDSection) encodeBody(w *bitio.Writer) error {
	w.PutU32(b.Version)
	w.PutU32(b.BankID)
	w.PutU32(b.LanguageFNV)
	w.PutU32(b.WemAlignment)
	w.PutU32(b.ProjectID)
	w.PutBytes(b.Padding)
	return nil
}

// DIDXDescriptor names the (offset, size) span of one WEM payload inside
// DATA.
type DIDXDescriptor struct {
	ID     uint32
	Offset uint32
	Size   uint32
}

// DIDXSection is the descriptor index: a flat array of 12-byte
// {id, offset, size} triples, one per WEM in DATA.
type DIDXSection struct {
	Descriptors []DIDXDescriptor
}

func decodeDIDXSection(c *bitio.Cursor, size int) (*DIDXSection, error) {
	if size%12 != 0 {
		return nil, lengthMismatch("DIDX", size/12*12, size)
	}
	n := size / 12
	d := &DIDXSection{Descriptors: make([]DIDXDescriptor, n)}
	for i := range d.Descriptors {
		id, err := c.U32()
		if err != nil {
			return nil, truncated("DIDX.id")
		}
		off, err := c.U32()
		if err != nil {
			return nil, truncated("DIDX.offset")
		}
		sz, err := c.U32()
		if err != nil {
			return nil, truncated("DIDX.size")
		}
		d.Descriptors[i] = DIDXDescriptor{ID: id, Offset: off, Size: sz}
	}
	return d, nil
}

func (d *DIDXSection) encodeBody(w *bitio.Writer) error {
	for _, desc := range d.Descriptors {
		w.PutU32(desc.ID)
		w.PutU32(desc.Offset)
		w.PutU32(desc.Size)
	}
	return nil
}

// DATASection is the concatenated, opaque WEM payload bytes.
type DATASection struct {
	Bytes []byte
}

func decodeDATASection(c *bitio.Cursor, size int) (*DATASection, error) {
	b, err := c.Bytes(size)
	if err != nil {
		return nil, truncated("DATA")
	}
	return &DATASection{Bytes: b}, nil
}

func (d *DATASection) encodeBody(w *bitio.Writer) error {
	w.PutBytes(d.Bytes)
	return nil
}

// HIRCSection is the audio-object hierarchy: an ordered array of
// HIRCObject, order preserved exactly through decode/edit/encode.
type HIRCSection struct {
	Objects []*HIRCObject
}

func decodeHIRCSection(c *bitio.Cursor) (*HIRCSection, error) {
	count, err := c.U32()
	if err != nil {
		return nil, truncated("HIRC.count")
	}
	h := &HIRCSection{Objects: make([]*HIRCObject, count)}
	for i := range h.Objects {
		obj, err := decodeHIRCObject(c)
		if err != nil {
			return nil, err
		}
		h.Objects[i] = obj
	}
	return h, nil
}

func (h *HIRCSection) encodeBody(w *bitio.Writer) error {
	if len(h.Objects) > 0xFFFFFFFF {
		return encodeFailed("HIRC.count overflow")
	}
	w.PutU32(uint32(len(h.Objects)))
	for _, obj := range h.Objects {
		if err := obj.encode(w); err != nil {
			return err
		}
	}
	return nil
}

// AkStateTransition is one state-group transition-time override.
type AkStateTransition struct {
	FromID         uint32
	ToID           uint32
	TransitionTime uint32
}

// STMGStateGroup is one state-group entry of the global state/switch table.
type STMGStateGroup struct {
	ID                    uint32
	DefaultTransitionTime uint32
	Transitions           []AkStateTransition
}

// STMGSection is the global state/switch/RTPC settings table.
type STMGSection struct {
	VolumeThreshold   float32
	MaxVoiceInstances uint16
	StateGroups       []STMGStateGroup
}

func decodeSTMGSection(c *bitio.Cursor) (*STMGSection, error) {
	s := &STMGSection{}
	var err error
	if s.VolumeThreshold, err = c.F32(); err != nil {
		return nil, truncated("STMG.volume_threshold")
	}
	if s.MaxVoiceInstances, err = c.U16(); err != nil {
		return nil, truncated("STMG.max_voice_instances")
	}
	groupCount, err := c.U32()
	if err != nil {
		return nil, truncated("STMG.group_count")
	}
	s.StateGroups = make([]STMGStateGroup, groupCount)
	for i := range s.StateGroups {
		id, err := c.U32()
		if err != nil {
			return nil, truncated("STMG.group.id")
		}
		defTrans, err := c.U32()
		if err != nil {
			return nil, truncated("STMG.group.default_transition_time")
		}
		transCount, err := c.U32()
		if err != nil {
			return nil, truncated("STMG.group.transition_count")
		}
		transitions := make([]AkStateTransition, transCount)
		for j := range transitions {
			from, err1 := c.U32()
			to, err2 := c.U32()
			dur, err3 := c.U32()
			if err1 != nil || err2 != nil || err3 != nil {
				return nil, truncated("STMG.group.transition")
			}
			transitions[j] = AkStateTransition{FromID: from, ToID: to, TransitionTime: dur}
		}
		s.StateGroups[i] = STMGStateGroup{ID: id, DefaultTransitionTime: defTrans, Transitions: transitions}
	}
	return s, nil
}

func (s *STMGSection) encodeBody(w *bitio.Writer) error {
	w.PutF32(s.VolumeThreshold)
	w.PutU16(s.MaxVoiceInstances)
	w.PutU32(uint32(len(s.StateGroups)))
	for _, g := range s.StateGroups {
		w.PutU32(g.ID)
		w.PutU32(g.DefaultTransitionTime)
		w.PutU32(uint32(len(g.Transitions)))
		for _, tr := range g.Transitions {
			w.PutU32(tr.FromID)
			w.PutU32(tr.ToID)
			w.PutU32(tr.TransitionTime)
		}
	}
	return nil
}

// STIDEntry binds a bank id to its authored name.
type STIDEntry struct {
	BankID uint32
	Name   string
}

// STIDSection maps bank ids to names, for cross-bank loading diagnostics.
type STIDSection struct {
	Entries []STIDEntry
}

func decodeSTIDSection(c *bitio.Cursor) (*STIDSection, error) {
	_, err := c.U32() // unused header field (reserved in the original format)
	if err != nil {
		return nil, truncated("STID.header")
	}
	count, err := c.U32()
	if err != nil {
		return nil, truncated("STID.count")
	}
	s := &STIDSection{Entries: make([]STIDEntry, count)}
	for i := range s.Entries {
		id, err := c.U32()
		if err != nil {
			return nil, truncated("STID.entry.id")
		}
		nameLen, err := c.U8()
		if err != nil {
			return nil, truncated("STID.entry.name_len")
		}
		nameBytes, err := c.Bytes(int(nameLen))
		if err != nil {
			return nil, truncated("STID.entry.name")
		}
		s.Entries[i] = STIDEntry{BankID: id, Name: lossyUTF8(nameBytes)}
	}
	return s, nil
}

func (s *STIDSection) encodeBody(w *bitio.Writer) error {
	w.PutU32(0)
	w.PutU32(uint32(len(s.Entries)))
	for _, e := range s.Entries {
		if len(e.Name) > 0xFF {
			return encodeFailed("STID.entry.name_len overflow")
		}
		w.PutU32(e.BankID)
		w.PutU8(uint8(len(e.Name)))
		w.PutBytes([]byte(e.Name))
	}
	return nil
}

// ENVSCurvePoint is one control point of an obstruction/occlusion
// conversion curve.
type ENVSCurvePoint struct {
	X             float32
	Y             float32
	Interpolation uint32
}

// ENVSCurve is one obstruction/occlusion conversion curve.
type ENVSCurve struct {
	Points []ENVSCurvePoint
}

func decodeENVSCurve(c *bitio.Cursor) (ENVSCurve, error) {
	count, err := c.U16()
	if err != nil {
		return ENVSCurve{}, truncated("ENVSCurve.count")
	}
	points := make([]ENVSCurvePoint, count)
	for i := range points {
		x, err1 := c.F32()
		y, err2 := c.F32()
		interp, err3 := c.U32()
		if err1 != nil || err2 != nil || err3 != nil {
			return ENVSCurve{}, truncated("ENVSCurve.point")
		}
		points[i] = ENVSCurvePoint{X: x, Y: y, Interpolation: interp}
	}
	return ENVSCurve{Points: points}, nil
}

func (e *ENVSCurve) encode(w *bitio.Writer) error {
	if len(e.Points) > 0xFFFF {
		return encodeFailed("ENVSCurve.count overflow")
	}
	w.PutU16(uint16(len(e.Points)))
	for _, p := range e.Points {
		w.PutF32(p.X)
		w.PutF32(p.Y)
		w.PutU32(p.Interpolation)
	}
	return nil
}

// ENVSSection is the obstruction/occlusion curve conversion table.
type ENVSSection struct {
	ObstructionLPF    ENVSCurve
	ObstructionVolume ENVSCurve
	OcclusionLPF      ENVSCurve
	OcclusionVolume   ENVSCurve
}

func decodeENVSSection(c *bitio.Cursor) (*ENVSSection, error) {
	curves := make([]ENVSCurve, 4)
	for i := range curves {
		curve, err := decodeENVSCurve(c)
		if err != nil {
			return nil, err
		}
		curves[i] = curve
	}
	return &ENVSSection{
		ObstructionLPF:    curves[0],
		ObstructionVolume: curves[1],
		OcclusionLPF:      curves[2],
		OcclusionVolume:   curves[3],
	}, nil
}

func (e *ENVSSection) encodeBody(w *bitio.Writer) error {
	for _, curve := range []ENVSCurve{e.ObstructionLPF, e.ObstructionVolume, e.OcclusionLPF, e.OcclusionVolume} {
		c := curve
		if err := c.encode(w); err != nil {
			return err
		}
	}
	return nil
}

// INITPlugin is one registered non-built-in plugin.
type INITPlugin struct {
	ID   uint32
	Name string
}

// INITSection lists non-built-in plugins the bank depends on.
type INITSection struct {
	Plugins []INITPlugin
}

func decodeINITSection(c *bitio.Cursor) (*INITSection, error) {
	count, err := c.U32()
	if err != nil {
		return nil, truncated("INIT.count")
	}
	s := &INITSection{Plugins: make([]INITPlugin, count)}
	for i := range s.Plugins {
		id, err := c.U32()
		if err != nil {
			return nil, truncated("INIT.plugin.id")
		}
		nameLen, err := c.U8()
		if err != nil {
			return nil, truncated("INIT.plugin.name_len")
		}
		nameBytes, err := c.Bytes(int(nameLen))
		if err != nil {
			return nil, truncated("INIT.plugin.name")
		}
		s.Plugins[i] = INITPlugin{ID: id, Name: lossyUTF8(nameBytes)}
	}
	return s, nil
}

func (s *INITSection) encodeBody(w *bitio.Writer) error {
	w.PutU32(uint32(len(s.Plugins)))
	for _, p := range s.Plugins {
		if len(p.Name) > 0xFF {
			return encodeFailed("INIT.plugin.name_len overflow")
		}
		w.PutU32(p.ID)
		w.PutU8(uint8(len(p.Name)))
		w.PutBytes([]byte(p.Name))
	}
	return nil
}

// PLATSection is the target platform name.
type PLATSection struct {
	Name string
}

func decodePLATSection(c *bitio.Cursor, size int) (*PLATSection, error) {
	b, err := c.Bytes(size)
	if err != nil {
		return nil, truncated("PLAT")
	}
	return &PLATSection{Name: lossyUTF8(b)}, nil
}

func (p *PLATSection) encodeBody(w *bitio.Writer) error {
	w.PutBytes([]byte(p.Name))
	return nil
}

// FXPRSection is an unparsed, opaque effect-preset blob.
type FXPRSection struct {
	Bytes []byte
}

func decodeFXPRSection(c *bitio.Cursor, size int) (*FXPRSection, error) {
	b, err := c.Bytes(size)
	if err != nil {
		return nil, truncated("FXPR")
	}
	return &FXPRSection{Bytes: b}, nil
}

func (f *FXPRSection) encodeBody(w *bitio.Writer) error {
	w.PutBytes(f.Bytes)
	return nil
}

func decodeSectionBody(magic string, c *bitio.Cursor, size int) (SectionBody, error) {
	switch magic {
	case MagicBKHD:
		return decodeBKHDSection(c, size)
	case MagicDIDX:
		return decodeDIDXSection(c, size)
	case MagicDATA:
		return decodeDATASection(c, size)
	case MagicHIRC:
		return decodeHIRCSection(c)
	case MagicSTMG:
		return decodeSTMGSection(c)
	case MagicSTID:
		return decodeSTIDSection(c)
	case MagicENVS:
		return decodeENVSSection(c)
	case MagicINIT:
		return decodeINITSection(c)
	case MagicPLAT:
		return decodePLATSection(c, size)
	case MagicFXPR:
		return decodeFXPRSection(c, size)
	default:
		return nil, unknownVariant("Section.magic", magicToUint32(magic))
	}
}

func magicToUint32(magic string) uint32 {
	var v uint32
	for i := 0; i < len(magic) && i < 4; i++ {
		v |= uint32(magic[i]) << (8 * i)
	}
	return v
}
