package bnk

import (
	"fmt"

	"github.com/kelindar/wwise-bnk/internal/bitio"
)

// HIRCBodyType is the closed, exhaustive HIRC object discriminant (1-22).
type HIRCBodyType uint8

const (
	HIRCState HIRCBodyType = iota + 1
	HIRCSound
	HIRCAction
	HIRCEvent
	HIRCRandomSequenceContainer
	HIRCSwitchContainer
	HIRCActorMixer
	HIRCBus
	HIRCLayerContainer
	HIRCMusicSegment
	HIRCMusicTrack
	HIRCMusicSwitchContainer
	HIRCMusicRandomSequenceContainer
	HIRCAttenuation
	HIRCDialogueEvent
	HIRCEffectShareSet
	HIRCEffectCustom
	HIRCAuxiliaryBus
	HIRCLFOModulator
	HIRCEnvelopeModulator
	HIRCAudioDevice
	HIRCTimeModulator
)

var hircBodyTypeLabels = map[HIRCBodyType]string{
	HIRCState:                         "State",
	HIRCSound:                         "Sound",
	HIRCAction:                        "Action",
	HIRCEvent:                         "Event",
	HIRCRandomSequenceContainer:       "RandomSequenceContainer",
	HIRCSwitchContainer:               "SwitchContainer",
	HIRCActorMixer:                    "ActorMixer",
	HIRCBus:                           "Bus",
	HIRCLayerContainer:                "LayerContainer",
	HIRCMusicSegment:                  "MusicSegment",
	HIRCMusicTrack:                    "MusicTrack",
	HIRCMusicSwitchContainer:          "MusicSwitchContainer",
	HIRCMusicRandomSequenceContainer:  "MusicRandomSequenceContainer",
	HIRCAttenuation:                   "Attenuation",
	HIRCDialogueEvent:                 "DialogueEvent",
	HIRCEffectShareSet:                "EffectShareSet",
	HIRCEffectCustom:                  "EffectCustom",
	HIRCAuxiliaryBus:                  "AuxiliaryBus",
	HIRCLFOModulator:                  "LFOModulator",
	HIRCEnvelopeModulator:             "EnvelopeModulator",
	HIRCAudioDevice:                   "AudioDevice",
	HIRCTimeModulator:                 "TimeModulator",
}

// String returns the human-readable type label (e.g. "MusicSegment"),
// falling back to a numeric form for a tag outside the closed table.
func (t HIRCBodyType) String() string {
	if label, ok := hircBodyTypeLabels[t]; ok {
		return label
	}
	return fmt.Sprintf("HIRCBodyType(%d)", uint8(t))
}

// HIRCBody is implemented by every HIRC object body variant.
type HIRCBody interface {
	encodeBody(w *bitio.Writer) error
}

// HIRCObject is one entry of a HIRC section: a discriminated body plus the
// FNV-hashed id used to reference it from other objects and from events.
type HIRCObject struct {
	Type HIRCBodyType
	ID   ObjectID
	Body HIRCBody
}

func decodeHIRCObject(c *bitio.Cursor) (*HIRCObject, error) {
	typRaw, err := c.U8()
	if err != nil {
		return nil, truncated("HIRCObject.type")
	}
	size, err := c.U32()
	if err != nil {
		return nil, truncated("HIRCObject.size")
	}
	id, err := c.U32()
	if err != nil {
		return nil, truncated("HIRCObject.id")
	}

	bodyLen := int(size) - 4
	if bodyLen < 0 {
		return nil, lengthMismatch("HIRCObject.size", 4, int(size))
	}
	bodyBytes, err := c.Bytes(bodyLen)
	if err != nil {
		return nil, truncated("HIRCObject.body")
	}

	typ := HIRCBodyType(typRaw)
	body, err := decodeHIRCBody(typ, bitio.NewCursor(bodyBytes), bodyLen)
	if err != nil {
		return nil, err
	}

	return &HIRCObject{Type: typ, ID: ObjectID{Hash: id}, Body: body}, nil
}

// encode writes type, a freshly measured size, the id hash, and the body.
// The size field is always derived from the body's actual encoded length
// rather than cached, so it cannot drift out of sync with the body; see
// DESIGN.md for why this repo treats size/count fields as always-derived
// instead of mutable cache invalidated by Export-Prepare.
func (h *HIRCObject) encode(w *bitio.Writer) error {
	bodyWriter := bitio.NewWriter()
	if err := h.Body.encodeBody(bodyWriter); err != nil {
		return fmt.Errorf("HIRCObject(%s): %w", h.Type, err)
	}
	body := bodyWriter.Bytes()

	w.PutU8(uint8(h.Type))
	w.PutU32(uint32(len(body) + 4))
	w.PutU32(h.ID.Hash)
	w.PutBytes(body)
	return nil
}

func decodeHIRCBody(typ HIRCBodyType, c *bitio.Cursor, size int) (HIRCBody, error) {
	switch typ {
	case HIRCState:
		return decodeStateBody(c)
	case HIRCSound:
		return decodeSoundBody(c)
	case HIRCAction:
		return decodeActionBody(c)
	case HIRCEvent:
		return decodeEventBody(c)
	case HIRCRandomSequenceContainer:
		return decodeRandomSequenceContainerBody(c)
	case HIRCSwitchContainer:
		return decodeSwitchContainerBody(c)
	case HIRCActorMixer:
		return decodeActorMixerBody(c)
	case HIRCBus:
		return decodeBusBody(c)
	case HIRCLayerContainer:
		return decodeLayerContainerBody(c)
	case HIRCMusicSegment:
		return decodeMusicSegmentBody(c)
	case HIRCMusicTrack:
		return decodeMusicTrackBody(c)
	case HIRCMusicSwitchContainer:
		return decodeMusicSwitchContainerBody(c, size)
	case HIRCMusicRandomSequenceContainer:
		return decodeMusicRandomSequenceContainerBody(c)
	case HIRCAttenuation:
		return decodeAttenuationBody(c)
	case HIRCDialogueEvent:
		return decodeDialogueEventBody(c, size)
	case HIRCEffectShareSet:
		return decodeEffectShareSetBody(c)
	case HIRCEffectCustom:
		return decodeEffectCustomBody(c)
	case HIRCAuxiliaryBus:
		return decodeAuxiliaryBusBody(c)
	case HIRCLFOModulator:
		return decodeOpaqueBody(c, size)
	case HIRCEnvelopeModulator:
		return decodeOpaqueBody(c, size)
	case HIRCAudioDevice:
		return decodeAudioDeviceBody(c)
	case HIRCTimeModulator:
		return decodeTimeModulatorBody(c)
	default:
		return nil, unknownVariant("HIRCObject.type", uint32(typ))
	}
}

// OpaqueBody stores a HIRC body variant whose payload format is
// under-specified (LFOModulator, EnvelopeModulator): raw bytes of known
// length, emitted unchanged.
type OpaqueBody struct {
	Bytes []byte
}

func decodeOpaqueBody(c *bitio.Cursor, size int) (*OpaqueBody, error) {
	b, err := c.Bytes(size)
	if err != nil {
		return nil, truncated("OpaqueBody")
	}
	return &OpaqueBody{Bytes: b}, nil
}

func (o *OpaqueBody) encodeBody(w *bitio.Writer) error {
	w.PutBytes(o.Bytes)
	return nil
}
