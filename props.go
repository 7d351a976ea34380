package bnk

import (
	"fmt"

	"github.com/kelindar/wwise-bnk/internal/bitio"
)

// PropValueType is the concrete wire type a PropID's value is encoded as.
// Every value is 4 bytes regardless of type; the type only governs how
// those 4 bytes are interpreted.
type PropValueType uint8

const (
	PropValueF32 PropValueType = iota
	PropValueI32
	PropValueU32
)

// PropID is the closed, exhaustive tag set for PropBundle entries (AkPropID
// in the original format). The table below covers tags 0x00-0x48 (73
// entries); any tag outside this table is a decode error.
type PropID uint8

const (
	PropVolume PropID = iota
	PropLFE
	PropPitch
	PropLPF
	PropHPF
	PropBusVolume
	PropMakeUpGain
	PropPriority
	PropPriorityDistanceOffset
	PropFeedbackVolume
	PropFeedbackLowpass
	PropMuteRatio
	PropPanLR
	PropPanFR
	PropCenterPCT
	PropDelayTime
	PropTransitionTime
	PropProbability
	PropDialogueMode
	PropUserAuxSendVolume0
	PropUserAuxSendVolume1
	PropUserAuxSendVolume2
	PropUserAuxSendVolume3
	PropGameAuxSendVolume
	PropOutputBusVolume
	PropOutputBusHPF
	PropOutputBusLPF
	PropHDRBusThreshold
	PropHDRBusRatio
	PropHDRBusReleaseTime
	PropHDRBusGameParam
	PropHDRBusGameParamMin
	PropHDRBusGameParamMax
	PropHDRActiveRange
	PropLoopStart
	PropLoopEnd
	PropTrimInTime
	PropTrimOutTime
	PropFadeInTime
	PropFadeOutTime
	PropFadeInCurve
	PropFadeOutCurve
	PropLoopCrossfadeDuration
	PropCrossfadeUpCurve
	PropCrossfadeDownCurve
	PropMidiTrackingRootNote
	PropMidiPlayOnNoteType
	PropMidiTransposition
	PropMidiVelocityOffset
	PropMidiKeyRangeMin
	PropMidiKeyRangeMax
	PropMidiVelocityRangeMin
	PropMidiVelocityRangeMax
	PropMidiChannelMask
	PropPlaybackSpeed
	PropMidiTempoSource
	PropMidiTargetNode
	PropAttachedPluginFXID
	PropLoop
	PropInitialDelay
	PropUserAuxSendLPF0
	PropUserAuxSendLPF1
	PropUserAuxSendLPF2
	PropUserAuxSendLPF3
	PropUserAuxSendHPF0
	PropUserAuxSendHPF1
	PropUserAuxSendHPF2
	PropUserAuxSendHPF3
	PropGameAuxSendLPF
	PropGameAuxSendHPF
	PropAttenuationID
	PropPositioningTypeBlend
	PropReflectionBusVolume
	// PropMax marks the exclusive end of the closed tag table (73 entries).
	PropMax
)

var propTable = [PropMax]struct {
	name string
	typ  PropValueType
}{
	PropVolume:                        {"Volume", PropValueF32},
	PropLFE:                           {"LFE", PropValueF32},
	PropPitch:                         {"Pitch", PropValueF32},
	PropLPF:                           {"LPF", PropValueF32},
	PropHPF:                           {"HPF", PropValueF32},
	PropBusVolume:                     {"BusVolume", PropValueF32},
	PropMakeUpGain:                    {"MakeUpGain", PropValueF32},
	PropPriority:                      {"Priority", PropValueF32},
	PropPriorityDistanceOffset:        {"PriorityDistanceOffset", PropValueF32},
	PropFeedbackVolume:                {"FeedbackVolume", PropValueF32},
	PropFeedbackLowpass:               {"FeedbackLowpass", PropValueF32},
	PropMuteRatio:                     {"MuteRatio", PropValueF32},
	PropPanLR:                         {"PanLR", PropValueF32},
	PropPanFR:                         {"PanFR", PropValueF32},
	PropCenterPCT:                     {"CenterPCT", PropValueF32},
	PropDelayTime:                     {"DelayTime", PropValueI32},
	PropTransitionTime:                {"TransitionTime", PropValueU32},
	PropProbability:                   {"Probability", PropValueF32},
	PropDialogueMode:                  {"DialogueMode", PropValueF32},
	PropUserAuxSendVolume0:            {"UserAuxSendVolume0", PropValueF32},
	PropUserAuxSendVolume1:            {"UserAuxSendVolume1", PropValueF32},
	PropUserAuxSendVolume2:            {"UserAuxSendVolume2", PropValueF32},
	PropUserAuxSendVolume3:            {"UserAuxSendVolume3", PropValueF32},
	PropGameAuxSendVolume:             {"GameAuxSendVolume", PropValueF32},
	PropOutputBusVolume:               {"OutputBusVolume", PropValueF32},
	PropOutputBusHPF:                  {"OutputBusHPF", PropValueF32},
	PropOutputBusLPF:                  {"OutputBusLPF", PropValueF32},
	PropHDRBusThreshold:               {"HDRBusThreshold", PropValueF32},
	PropHDRBusRatio:                   {"HDRBusRatio", PropValueF32},
	PropHDRBusReleaseTime:             {"HDRBusReleaseTime", PropValueF32},
	PropHDRBusGameParam:               {"HDRBusGameParam", PropValueF32},
	PropHDRBusGameParamMin:            {"HDRBusGameParamMin", PropValueF32},
	PropHDRBusGameParamMax:            {"HDRBusGameParamMax", PropValueF32},
	PropHDRActiveRange:                {"HDRActiveRange", PropValueF32},
	PropLoopStart:                     {"LoopStart", PropValueF32},
	PropLoopEnd:                       {"LoopEnd", PropValueF32},
	PropTrimInTime:                    {"TrimInTime", PropValueF32},
	PropTrimOutTime:                   {"TrimOutTime", PropValueF32},
	PropFadeInTime:                    {"FadeInTime", PropValueF32},
	PropFadeOutTime:                   {"FadeOutTime", PropValueF32},
	PropFadeInCurve:                   {"FadeInCurve", PropValueF32},
	PropFadeOutCurve:                  {"FadeOutCurve", PropValueF32},
	PropLoopCrossfadeDuration:         {"LoopCrossfadeDuration", PropValueF32},
	PropCrossfadeUpCurve:              {"CrossfadeUpCurve", PropValueF32},
	PropCrossfadeDownCurve:            {"CrossfadeDownCurve", PropValueF32},
	PropMidiTrackingRootNote:          {"MidiTrackingRootNote", PropValueF32},
	PropMidiPlayOnNoteType:            {"MidiPlayOnNoteType", PropValueF32},
	PropMidiTransposition:             {"MidiTransposition", PropValueF32},
	PropMidiVelocityOffset:            {"MidiVelocityOffset", PropValueF32},
	PropMidiKeyRangeMin:               {"MidiKeyRangeMin", PropValueF32},
	PropMidiKeyRangeMax:               {"MidiKeyRangeMax", PropValueF32},
	PropMidiVelocityRangeMin:          {"MidiVelocityRangeMin", PropValueF32},
	PropMidiVelocityRangeMax:          {"MidiVelocityRangeMax", PropValueF32},
	PropMidiChannelMask:               {"MidiChannelMask", PropValueF32},
	PropPlaybackSpeed:                 {"PlaybackSpeed", PropValueF32},
	PropMidiTempoSource:               {"MidiTempoSource", PropValueF32},
	PropMidiTargetNode:                {"MidiTargetNode", PropValueF32},
	PropAttachedPluginFXID:            {"AttachedPluginFXID", PropValueU32},
	PropLoop:                          {"Loop", PropValueF32},
	PropInitialDelay:                  {"InitialDelay", PropValueF32},
	PropUserAuxSendLPF0:               {"UserAuxSendLPF0", PropValueF32},
	PropUserAuxSendLPF1:               {"UserAuxSendLPF1", PropValueF32},
	PropUserAuxSendLPF2:               {"UserAuxSendLPF2", PropValueF32},
	PropUserAuxSendLPF3:               {"UserAuxSendLPF3", PropValueF32},
	PropUserAuxSendHPF0:               {"UserAuxSendHPF0", PropValueF32},
	PropUserAuxSendHPF1:               {"UserAuxSendHPF1", PropValueF32},
	PropUserAuxSendHPF2:               {"UserAuxSendHPF2", PropValueF32},
	PropUserAuxSendHPF3:               {"UserAuxSendHPF3", PropValueF32},
	PropGameAuxSendLPF:                {"GameAuxSendLPF", PropValueF32},
	PropGameAuxSendHPF:                {"GameAuxSendHPF", PropValueF32},
	PropAttenuationID:                 {"AttenuationID", PropValueU32},
	PropPositioningTypeBlend:          {"PositioningTypeBlend", PropValueF32},
	PropReflectionBusVolume:           {"ReflectionBusVolume", PropValueF32},
}

// String returns the canonical property name, or a numeric fallback for an
// out-of-table tag (which decode() never produces, but encode() might be
// asked to stringify for diagnostics).
func (p PropID) String() string {
	if int(p) < len(propTable) {
		return propTable[p].name
	}
	return fmt.Sprintf("PropID(0x%02X)", uint8(p))
}

func (p PropID) valueType() (PropValueType, bool) {
	if int(p) >= len(propTable) {
		return 0, false
	}
	return propTable[p].typ, true
}

// PropValue is a single 4-byte property value, tagged with the concrete
// type selected by its owning PropID so callers can read it back without
// re-deriving the type from the tag table.
type PropValue struct {
	Type PropValueType
	F32  float32
	I32  int32
	U32  uint32
}

func propValueF32(v float32) PropValue { return PropValue{Type: PropValueF32, F32: v} }
func propValueI32(v int32) PropValue   { return PropValue{Type: PropValueI32, I32: v} }
func propValueU32(v uint32) PropValue  { return PropValue{Type: PropValueU32, U32: v} }

func decodePropValue(c *bitio.Cursor, typ PropValueType) (PropValue, error) {
	switch typ {
	case PropValueI32:
		v, err := c.I32()
		return propValueI32(v), err
	case PropValueU32:
		v, err := c.U32()
		return propValueU32(v), err
	default:
		v, err := c.F32()
		return propValueF32(v), err
	}
}

func (v PropValue) encode(w *bitio.Writer) {
	switch v.Type {
	case PropValueI32:
		w.PutI32(v.I32)
	case PropValueU32:
		w.PutU32(v.U32)
	default:
		w.PutF32(v.F32)
	}
}

// PropBundle is the tagged (count, [tags], [values]) property list shared
// by every audio node. Tag order on the wire is preserved exactly as
// decoded: re-encoding an untouched bundle is byte-identical (§8 property 5).
type PropBundle struct {
	Tags   []PropID
	Values []PropValue
}

// Get returns the value for tag, if present.
func (b *PropBundle) Get(tag PropID) (PropValue, bool) {
	for i, t := range b.Tags {
		if t == tag {
			return b.Values[i], true
		}
	}
	return PropValue{}, false
}

// decodePropBundle reads count:u8, count tag bytes, then count 4-byte
// values in tag order.
func decodePropBundle(c *bitio.Cursor) (PropBundle, error) {
	count, err := c.U8()
	if err != nil {
		return PropBundle{}, truncated("PropBundle.count")
	}

	tags := make([]PropID, count)
	for i := range tags {
		raw, err := c.U8()
		if err != nil {
			return PropBundle{}, truncated("PropBundle.tag")
		}
		tags[i] = PropID(raw)
		if _, ok := tags[i].valueType(); !ok {
			return PropBundle{}, unknownVariant("PropBundle", uint32(raw))
		}
	}

	values := make([]PropValue, count)
	for i, tag := range tags {
		typ, _ := tag.valueType()
		v, err := decodePropValue(c, typ)
		if err != nil {
			return PropBundle{}, truncated("PropBundle.value")
		}
		values[i] = v
	}

	return PropBundle{Tags: tags, Values: values}, nil
}

// encode writes count, then all tags, then all values, in tag order. An
// empty bundle encodes as the single byte 0x00.
func (b *PropBundle) encode(w *bitio.Writer) error {
	if len(b.Tags) != len(b.Values) {
		return encodeFailed("PropBundle: tags/values length mismatch")
	}
	if len(b.Tags) > 0xFF {
		return encodeFailed("PropBundle.count overflow")
	}
	w.PutU8(uint8(len(b.Tags)))
	for _, t := range b.Tags {
		w.PutU8(uint8(t))
	}
	for _, v := range b.Values {
		v.encode(w)
	}
	return nil
}

// PropRangedModifier is one {prop_type, min, max} entry of a
// PropRangedModifiers list. Unlike PropBundle, entries are stored
// back-to-back rather than split into parallel tag/value arrays.
type PropRangedModifier struct {
	Tag PropID
	Min float32
	Max float32
}

// PropRangedModifiers is the randomization-range counterpart of PropBundle:
// same closed tag table, but {tag, min, max} triples written one after
// another instead of a split (tags..., values...) layout.
type PropRangedModifiers struct {
	Entries []PropRangedModifier
}

func decodePropRangedModifiers(c *bitio.Cursor) (PropRangedModifiers, error) {
	count, err := c.U8()
	if err != nil {
		return PropRangedModifiers{}, truncated("PropRangedModifiers.count")
	}

	entries := make([]PropRangedModifier, count)
	for i := range entries {
		raw, err := c.U8()
		if err != nil {
			return PropRangedModifiers{}, truncated("PropRangedModifiers.tag")
		}
		tag := PropID(raw)
		if _, ok := tag.valueType(); !ok {
			return PropRangedModifiers{}, unknownVariant("PropRangedModifiers", uint32(raw))
		}
		min, err := c.F32()
		if err != nil {
			return PropRangedModifiers{}, truncated("PropRangedModifiers.min")
		}
		max, err := c.F32()
		if err != nil {
			return PropRangedModifiers{}, truncated("PropRangedModifiers.max")
		}
		entries[i] = PropRangedModifier{Tag: tag, Min: min, Max: max}
	}
	return PropRangedModifiers{Entries: entries}, nil
}

func (m *PropRangedModifiers) encode(w *bitio.Writer) error {
	if len(m.Entries) > 0xFF {
		return encodeFailed("PropRangedModifiers.count overflow")
	}
	w.PutU8(uint8(len(m.Entries)))
	for _, e := range m.Entries {
		w.PutU8(uint8(e.Tag))
		w.PutF32(e.Min)
		w.PutF32(e.Max)
	}
	return nil
}
