package bnk

import (
	"testing"

	"github.com/kelindar/wwise-bnk/internal/bitio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTripHIRCBody(t *testing.T, typ HIRCBodyType, body HIRCBody) HIRCBody {
	t.Helper()
	obj := &HIRCObject{Type: typ, ID: ObjectID{Hash: 123}, Body: body}

	w := bitio.NewWriter()
	require.NoError(t, obj.encode(w))

	got, err := decodeHIRCObject(bitio.NewCursor(w.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, typ, got.Type)
	assert.Equal(t, uint32(123), got.ID.Hash)
	return got.Body
}

func TestStateBodyRoundTrip(t *testing.T) {
	body := &StateBody{PropertyIDs: []uint16{1, 2}, Values: []float32{0.5, 1.5}}
	got := roundTripHIRCBody(t, HIRCState, body).(*StateBody)
	assert.Equal(t, body, got)
}

func TestEventBodyRoundTrip(t *testing.T) {
	body := &EventBody{ActionIDs: []uint32{10, 20, 30}}
	got := roundTripHIRCBody(t, HIRCEvent, body).(*EventBody)
	assert.Equal(t, body, got)
}

func TestSoundBodyRoundTripNoParams(t *testing.T) {
	body := &SoundBody{
		Source: AkBankSourceData{
			Plugin: PluginWwiseSine,
			Source: SourceStreaming,
			Media:  AkMediaInformation{SourceID: 555, InMemoryMediaSize: 0, SourceFlags: 0},
		},
		NodeBase: NodeBaseParams{OverrideBusID: 1, DirectParentID: 2},
	}
	got := roundTripHIRCBody(t, HIRCSound, body).(*SoundBody)
	assert.Equal(t, body, got)
}

func TestSoundBodyRoundTripWithParams(t *testing.T) {
	body := &SoundBody{
		Source: AkBankSourceData{
			Plugin: PluginVorbis,
			Source: SourceEmbedded,
			Media:  AkMediaInformation{SourceID: 1},
			Params: []byte{0xDE, 0xAD, 0xBE, 0xEF},
		},
	}
	got := roundTripHIRCBody(t, HIRCSound, body).(*SoundBody)
	assert.Equal(t, body, got)
}

func TestRandomSequenceContainerBodyRoundTrip(t *testing.T) {
	body := &RandomSequenceContainerBody{
		LoopCount: 3,
		Children:  []uint32{1, 2, 3},
		Playlist:  []PlaylistItem{{PlayID: 1, Weight: 50}, {PlayID: 2, Weight: -10}},
	}
	got := roundTripHIRCBody(t, HIRCRandomSequenceContainer, body).(*RandomSequenceContainerBody)
	assert.Equal(t, body, got)
}

func TestSwitchContainerBodyRoundTrip(t *testing.T) {
	body := &SwitchContainerBody{
		GroupID:       9,
		DefaultSwitch: 1,
		Children:      []uint32{100, 200},
		SwitchGroups: []SwitchPackage{
			{SwitchID: 1, NodeIDs: []uint32{100}},
			{SwitchID: 2, NodeIDs: []uint32{200}},
		},
		SwitchParams: []SwitchNodeParams{{NodeID: 100, Flags: 0x3, FadeOutTime: 10, FadeInTime: 20}},
	}
	got := roundTripHIRCBody(t, HIRCSwitchContainer, body).(*SwitchContainerBody)
	assert.Equal(t, body, got)
}

func TestActorMixerBodyRoundTrip(t *testing.T) {
	body := &ActorMixerBody{Children: []uint32{1, 2, 3}}
	got := roundTripHIRCBody(t, HIRCActorMixer, body).(*ActorMixerBody)
	assert.Equal(t, body, got)
}

func TestBusBodyRoundTrip(t *testing.T) {
	body := &BusBody{
		OverrideBusID: 0,
		Ducks: []AkDuckInfo{
			{BusID: 1, DuckVolume: -3.0, FadeOutTime: 100, FadeInTime: 200, FadeCurve: 1, TargetProp: PropVolume},
		},
		FxChunks: []FXChunk{{FXIndex: 0, FXID: 42, IsShareSet: true}},
		FxBypass: 0x0F,
	}
	got := roundTripHIRCBody(t, HIRCBus, body).(*BusBody)
	assert.Equal(t, body, got)
}

func TestAuxiliaryBusBodyRoundTrip(t *testing.T) {
	body := &BusBody{OverrideBusID: 7, DeviceShareSetID: 0}
	got := roundTripHIRCBody(t, HIRCAuxiliaryBus, body).(*BusBody)
	assert.Equal(t, body, got)
}

func TestLayerContainerBodyRoundTrip(t *testing.T) {
	body := &LayerContainerBody{
		Children: []uint32{1},
		Layers: []Layer{
			{
				LayerID:  5,
				RTPCID:   10,
				RTPCType: 1,
				AssociatedChildren: []LayerChild{
					{ChildID: 1, GraphPoints: []AkRTPCGraphPoint{{X: 0, Y: 1, Interpolation: 2}}},
				},
			},
		},
		IsContinuousValidation: 1,
	}
	got := roundTripHIRCBody(t, HIRCLayerContainer, body).(*LayerContainerBody)
	assert.Equal(t, body, got)
}

func TestAttenuationBodyRoundTripNoCone(t *testing.T) {
	body := &AttenuationBody{
		IsConeEnabled: false,
		Curves: []ConversionCurve{
			{CurveScaling: 1, Points: []AkRTPCGraphPoint{{X: 0, Y: 1, Interpolation: 0}}},
		},
	}
	got := roundTripHIRCBody(t, HIRCAttenuation, body).(*AttenuationBody)
	assert.Equal(t, body, got)
}

func TestAttenuationBodyRoundTripWithCone(t *testing.T) {
	body := &AttenuationBody{
		IsConeEnabled: true,
		Cone:          ConeParams{InsideDegrees: 10, OutsideDegrees: 90, OutsideVolume: -6, LowPass: 0.5, HighPass: 0.1},
	}
	got := roundTripHIRCBody(t, HIRCAttenuation, body).(*AttenuationBody)
	assert.Equal(t, body, got)
}

func TestDialogueEventBodyRoundTrip(t *testing.T) {
	body := &DialogueEventBody{
		Probability: 100,
		Arguments:   []AkGameSync{{GroupID: 1}},
		GroupTypes:  []uint8{0},
		Tree: &DecisionTreeNode{
			Children: []*DecisionTreeNode{
				{Key: 1, NodeID: 100},
				{Key: 2, NodeID: 200},
			},
		},
	}
	got := roundTripHIRCBody(t, HIRCDialogueEvent, body).(*DialogueEventBody)
	require.False(t, got.Tree.IsLeaf())
	assert.Equal(t, body.Probability, got.Probability)
	assert.Equal(t, body.Arguments, got.Arguments)
	assert.Equal(t, body.GroupTypes, got.GroupTypes)
}

func TestEffectShareSetBodyRoundTrip(t *testing.T) {
	body := &EffectBody{
		FxID:   7,
		Params: []byte{1, 2, 3},
		Media:  []AkMediaMap{{Index: 0, SourceID: 10}},
		PropertyValues: []PluginPropertyValue{
			{Property: 1, RTPCAccum: 0, Value: 3.14},
		},
	}
	got := roundTripHIRCBody(t, HIRCEffectShareSet, body).(*EffectBody)
	assert.Equal(t, body, got)
}

func TestTimeModulatorBodyRoundTrip(t *testing.T) {
	body := &TimeModulatorBody{}
	got := roundTripHIRCBody(t, HIRCTimeModulator, body).(*TimeModulatorBody)
	assert.Equal(t, body, got)
}

func TestOpaqueBodyRoundTrip(t *testing.T) {
	body := &OpaqueBody{Bytes: []byte{1, 2, 3, 4}}
	got := roundTripHIRCBody(t, HIRCLFOModulator, body).(*OpaqueBody)
	assert.Equal(t, body, got)
}
