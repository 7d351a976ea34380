package bnk

import (
	"github.com/kelindar/wwise-bnk/internal/bitio"
)

// decodeChildren reads the count-prefixed list of child object ids shared
// by every container body (ActorMixer, RandomSequenceContainer,
// SwitchContainer, LayerContainer).
func decodeChildren(c *bitio.Cursor) ([]uint32, error) {
	count, err := c.U32()
	if err != nil {
		return nil, truncated("Children.count")
	}
	ids := make([]uint32, count)
	for i := range ids {
		ids[i], err = c.U32()
		if err != nil {
			return nil, truncated("Children.items")
		}
	}
	return ids, nil
}

func encodeChildren(w *bitio.Writer, ids []uint32) error {
	if len(ids) > 0xFFFFFFFF {
		return encodeFailed("Children.count overflow")
	}
	w.PutU32(uint32(len(ids)))
	for _, id := range ids {
		w.PutU32(id)
	}
	return nil
}

// StateBody is the HIRCState (body_type 01) payload: a parallel pair of
// property ids and their associated state values.
type StateBody struct {
	PropertyIDs []uint16
	Values      []float32
}

func decodeStateBody(c *bitio.Cursor) (*StateBody, error) {
	count, err := c.U16()
	if err != nil {
		return nil, truncated("CAkState.entry_count")
	}
	ids := make([]uint16, count)
	for i := range ids {
		ids[i], err = c.U16()
		if err != nil {
			return nil, truncated("CAkState.parameters")
		}
	}
	vals := make([]float32, count)
	for i := range vals {
		vals[i], err = c.F32()
		if err != nil {
			return nil, truncated("CAkState.values")
		}
	}
	return &StateBody{PropertyIDs: ids, Values: vals}, nil
}

func (s *StateBody) encodeBody(w *bitio.Writer) error {
	if len(s.PropertyIDs) != len(s.Values) {
		return encodeFailed("CAkState: parameters/values length mismatch")
	}
	if len(s.PropertyIDs) > 0xFFFF {
		return encodeFailed("CAkState.entry_count overflow")
	}
	w.PutU16(uint16(len(s.PropertyIDs)))
	for _, id := range s.PropertyIDs {
		w.PutU16(id)
	}
	for _, v := range s.Values {
		w.PutF32(v)
	}
	return nil
}

// SoundBody is the HIRCSound (body_type 02) payload: a single playable
// source plus the common node parameter block.
type SoundBody struct {
	Source   AkBankSourceData
	NodeBase NodeBaseParams
}

func decodeSoundBody(c *bitio.Cursor) (*SoundBody, error) {
	src, err := decodeAkBankSourceData(c)
	if err != nil {
		return nil, err
	}
	base, err := decodeNodeBaseParams(c)
	if err != nil {
		return nil, err
	}
	return &SoundBody{Source: src, NodeBase: base}, nil
}

func (s *SoundBody) encodeBody(w *bitio.Writer) error {
	if err := s.Source.encode(w); err != nil {
		return err
	}
	return s.NodeBase.encode(w)
}

// EventBody is the HIRCEvent (body_type 04) payload: the ordered list of
// action object ids this event fires.
type EventBody struct {
	ActionIDs []uint32
}

func decodeEventBody(c *bitio.Cursor) (*EventBody, error) {
	count, err := c.U8()
	if err != nil {
		return nil, truncated("CAkEvent.action_count")
	}
	ids := make([]uint32, count)
	for i := range ids {
		ids[i], err = c.U32()
		if err != nil {
			return nil, truncated("CAkEvent.actions")
		}
	}
	return &EventBody{ActionIDs: ids}, nil
}

func (e *EventBody) encodeBody(w *bitio.Writer) error {
	if len(e.ActionIDs) > 0xFF {
		return encodeFailed("CAkEvent.action_count overflow")
	}
	w.PutU8(uint8(len(e.ActionIDs)))
	for _, id := range e.ActionIDs {
		w.PutU32(id)
	}
	return nil
}

// PlaylistItem is one scheduled entry of a random/sequence container.
type PlaylistItem struct {
	PlayID uint32
	Weight int32
}

// RandomSequenceContainerBody is the HIRCRandomSequenceContainer
// (body_type 05) payload.
type RandomSequenceContainerBody struct {
	NodeBase              NodeBaseParams
	LoopCount             uint16
	LoopModMin            uint16
	LoopModMax            uint16
	TransitionTime        float32
	TransitionTimeModMin  float32
	TransitionTimeModMax  float32
	AvoidRepeatCount      uint16
	TransitionMode        uint8
	RandomMode            uint8
	Mode                  uint8
	Flags                 uint8
	Children              []uint32
	Playlist              []PlaylistItem
}

func decodeRandomSequenceContainerBody(c *bitio.Cursor) (*RandomSequenceContainerBody, error) {
	base, err := decodeNodeBaseParams(c)
	if err != nil {
		return nil, err
	}
	var r RandomSequenceContainerBody
	r.NodeBase = base

	fields := []struct {
		name string
		dst  *uint16
	}{
		{"loop_count", &r.LoopCount},
		{"loop_mod_min", &r.LoopModMin},
		{"loop_mod_max", &r.LoopModMax},
	}
	for _, f := range fields {
		*f.dst, err = c.U16()
		if err != nil {
			return nil, truncated("CAkRanSeqCntr." + f.name)
		}
	}

	floats := []struct {
		name string
		dst  *float32
	}{
		{"transition_time", &r.TransitionTime},
		{"transition_time_mod_min", &r.TransitionTimeModMin},
		{"transition_time_mod_max", &r.TransitionTimeModMax},
	}
	for _, f := range floats {
		*f.dst, err = c.F32()
		if err != nil {
			return nil, truncated("CAkRanSeqCntr." + f.name)
		}
	}

	r.AvoidRepeatCount, err = c.U16()
	if err != nil {
		return nil, truncated("CAkRanSeqCntr.avoid_repeat_count")
	}
	r.TransitionMode, err = c.U8()
	if err != nil {
		return nil, truncated("CAkRanSeqCntr.transition_mode")
	}
	r.RandomMode, err = c.U8()
	if err != nil {
		return nil, truncated("CAkRanSeqCntr.random_mode")
	}
	r.Mode, err = c.U8()
	if err != nil {
		return nil, truncated("CAkRanSeqCntr.mode")
	}
	r.Flags, err = c.U8()
	if err != nil {
		return nil, truncated("CAkRanSeqCntr.flags")
	}

	r.Children, err = decodeChildren(c)
	if err != nil {
		return nil, err
	}

	playlistCount, err := c.U16()
	if err != nil {
		return nil, truncated("CAkPlaylist.count")
	}
	r.Playlist = make([]PlaylistItem, playlistCount)
	for i := range r.Playlist {
		playID, err := c.U32()
		if err != nil {
			return nil, truncated("CAkPlaylistItem.play_id")
		}
		weight, err := c.I32()
		if err != nil {
			return nil, truncated("CAkPlaylistItem.weight")
		}
		r.Playlist[i] = PlaylistItem{PlayID: playID, Weight: weight}
	}

	return &r, nil
}

func (r *RandomSequenceContainerBody) encodeBody(w *bitio.Writer) error {
	if err := r.NodeBase.encode(w); err != nil {
		return err
	}
	w.PutU16(r.LoopCount)
	w.PutU16(r.LoopModMin)
	w.PutU16(r.LoopModMax)
	w.PutF32(r.TransitionTime)
	w.PutF32(r.TransitionTimeModMin)
	w.PutF32(r.TransitionTimeModMax)
	w.PutU16(r.AvoidRepeatCount)
	w.PutU8(r.TransitionMode)
	w.PutU8(r.RandomMode)
	w.PutU8(r.Mode)
	w.PutU8(r.Flags)
	if err := encodeChildren(w, r.Children); err != nil {
		return err
	}
	if len(r.Playlist) > 0xFFFF {
		return encodeFailed("CAkPlaylist.count overflow")
	}
	w.PutU16(uint16(len(r.Playlist)))
	for _, item := range r.Playlist {
		w.PutU32(item.PlayID)
		w.PutI32(item.Weight)
	}
	return nil
}

// SwitchPackage binds a switch/state value to the set of nodes it plays.
type SwitchPackage struct {
	SwitchID uint32
	NodeIDs  []uint32
}

// SwitchNodeParams carries the per-node switch-transition behavior flags.
type SwitchNodeParams struct {
	NodeID           uint32
	Flags            uint16
	FadeOutTime      int32
	FadeInTime       int32
}

// SwitchContainerBody is the HIRCSwitchContainer (body_type 06) payload.
type SwitchContainerBody struct {
	NodeBase             NodeBaseParams
	GroupType            uint8
	GroupID              uint32
	DefaultSwitch        uint32
	ContinuousValidation uint8
	Children             []uint32
	SwitchGroups         []SwitchPackage
	SwitchParams         []SwitchNodeParams
}

func decodeSwitchContainerBody(c *bitio.Cursor) (*SwitchContainerBody, error) {
	base, err := decodeNodeBaseParams(c)
	if err != nil {
		return nil, err
	}
	var s SwitchContainerBody
	s.NodeBase = base

	s.GroupType, err = c.U8()
	if err != nil {
		return nil, truncated("CAkSwitchCntr.group_type")
	}
	s.GroupID, err = c.U32()
	if err != nil {
		return nil, truncated("CAkSwitchCntr.group_id")
	}
	s.DefaultSwitch, err = c.U32()
	if err != nil {
		return nil, truncated("CAkSwitchCntr.default_switch")
	}
	s.ContinuousValidation, err = c.U8()
	if err != nil {
		return nil, truncated("CAkSwitchCntr.continuous_validation")
	}
	s.Children, err = decodeChildren(c)
	if err != nil {
		return nil, err
	}

	groupCount, err := c.U32()
	if err != nil {
		return nil, truncated("CAkSwitchCntr.switch_group_count")
	}
	s.SwitchGroups = make([]SwitchPackage, groupCount)
	for i := range s.SwitchGroups {
		switchID, err := c.U32()
		if err != nil {
			return nil, truncated("CAkSwitchPackage.switch_id")
		}
		nodeCount, err := c.U32()
		if err != nil {
			return nil, truncated("CAkSwitchPackage.node_count")
		}
		nodes := make([]uint32, nodeCount)
		for j := range nodes {
			nodes[j], err = c.U32()
			if err != nil {
				return nil, truncated("CAkSwitchPackage.nodes")
			}
		}
		s.SwitchGroups[i] = SwitchPackage{SwitchID: switchID, NodeIDs: nodes}
	}

	paramCount, err := c.U32()
	if err != nil {
		return nil, truncated("CAkSwitchCntr.switch_param_count")
	}
	s.SwitchParams = make([]SwitchNodeParams, paramCount)
	for i := range s.SwitchParams {
		nodeID, err := c.U32()
		if err != nil {
			return nil, truncated("AkSwitchNodeParams.node_id")
		}
		flags, err := c.U16()
		if err != nil {
			return nil, truncated("AkSwitchNodeParams.flags")
		}
		fadeOut, err := c.I32()
		if err != nil {
			return nil, truncated("AkSwitchNodeParams.fade_out_time")
		}
		fadeIn, err := c.I32()
		if err != nil {
			return nil, truncated("AkSwitchNodeParams.fade_in_time")
		}
		s.SwitchParams[i] = SwitchNodeParams{
			NodeID:      nodeID,
			Flags:       flags,
			FadeOutTime: fadeOut,
			FadeInTime:  fadeIn,
		}
	}

	return &s, nil
}

func (s *SwitchContainerBody) encodeBody(w *bitio.Writer) error {
	if err := s.NodeBase.encode(w); err != nil {
		return err
	}
	w.PutU8(s.GroupType)
	w.PutU32(s.GroupID)
	w.PutU32(s.DefaultSwitch)
	w.PutU8(s.ContinuousValidation)
	if err := encodeChildren(w, s.Children); err != nil {
		return err
	}

	if len(s.SwitchGroups) > 0xFFFFFFFF {
		return encodeFailed("CAkSwitchCntr.switch_group_count overflow")
	}
	w.PutU32(uint32(len(s.SwitchGroups)))
	for _, g := range s.SwitchGroups {
		w.PutU32(g.SwitchID)
		w.PutU32(uint32(len(g.NodeIDs)))
		for _, n := range g.NodeIDs {
			w.PutU32(n)
		}
	}

	w.PutU32(uint32(len(s.SwitchParams)))
	for _, p := range s.SwitchParams {
		w.PutU32(p.NodeID)
		w.PutU16(p.Flags)
		w.PutI32(p.FadeOutTime)
		w.PutI32(p.FadeInTime)
	}
	return nil
}

// ActorMixerBody is the HIRCActorMixer (body_type 07) payload.
type ActorMixerBody struct {
	NodeBase NodeBaseParams
	Children []uint32
}

func decodeActorMixerBody(c *bitio.Cursor) (*ActorMixerBody, error) {
	base, err := decodeNodeBaseParams(c)
	if err != nil {
		return nil, err
	}
	children, err := decodeChildren(c)
	if err != nil {
		return nil, err
	}
	return &ActorMixerBody{NodeBase: base, Children: children}, nil
}

func (a *ActorMixerBody) encodeBody(w *bitio.Writer) error {
	if err := a.NodeBase.encode(w); err != nil {
		return err
	}
	return encodeChildren(w, a.Children)
}

// AkDuckInfo is one bus-ducking rule: when BusID's activity crosses
// threshold, TargetProp on this bus is faded toward DuckVolume.
type AkDuckInfo struct {
	BusID       uint32
	DuckVolume  float32
	FadeOutTime int32
	FadeInTime  int32
	FadeCurve   uint8
	TargetProp  PropID
}

// BusBody is the shared payload of HIRCBus and HIRCAuxiliaryBus
// (body_types 08 and 18): bus routing, property bundle, ducking rules,
// and the node's shared FX/RTPC/state blocks.
type BusBody struct {
	OverrideBusID      uint32
	DeviceShareSetID   uint32
	Props              PropBundle
	Positioning        PositioningParams
	Aux                AuxParams
	Flags              uint8
	MaxInstanceCount   uint16
	ChannelConfig      uint32
	HdrFlags           uint8
	RecoveryTime       int32
	MaxDuckVolume      float32
	Ducks              []AkDuckInfo
	FxChunks           []FXChunk
	FxBypass           uint8
	InitialRTPC        InitialRTPC
	State              StateChunk
}

func decodeBusInitialValues(c *bitio.Cursor) (*BusBody, error) {
	var b BusBody
	var err error

	b.OverrideBusID, err = c.U32()
	if err != nil {
		return nil, truncated("BusInitialValues.override_bus_id")
	}
	if b.OverrideBusID == 0 {
		b.DeviceShareSetID, err = c.U32()
		if err != nil {
			return nil, truncated("BusInitialValues.device_share_set_id")
		}
	}

	b.Props, err = decodePropBundle(c)
	if err != nil {
		return nil, err
	}
	b.Positioning, err = decodePositioningParams(c)
	if err != nil {
		return nil, err
	}
	b.Aux, err = decodeAuxParams(c)
	if err != nil {
		return nil, err
	}
	b.Flags, err = c.U8()
	if err != nil {
		return nil, truncated("BusInitialParams.flags")
	}
	b.MaxInstanceCount, err = c.U16()
	if err != nil {
		return nil, truncated("BusInitialParams.max_instance_count")
	}
	b.ChannelConfig, err = c.U32()
	if err != nil {
		return nil, truncated("BusInitialParams.channel_config")
	}
	b.HdrFlags, err = c.U8()
	if err != nil {
		return nil, truncated("BusInitialParams.hdr_flags")
	}

	b.RecoveryTime, err = c.I32()
	if err != nil {
		return nil, truncated("BusInitialValues.recovery_time")
	}
	b.MaxDuckVolume, err = c.F32()
	if err != nil {
		return nil, truncated("BusInitialValues.max_duck_volume")
	}
	duckCount, err := c.U32()
	if err != nil {
		return nil, truncated("BusInitialValues.duck_count")
	}
	b.Ducks = make([]AkDuckInfo, duckCount)
	for i := range b.Ducks {
		busID, err := c.U32()
		if err != nil {
			return nil, truncated("AkDuckInfo.bus_id")
		}
		duckVol, err := c.F32()
		if err != nil {
			return nil, truncated("AkDuckInfo.duck_volume")
		}
		fadeOut, err := c.I32()
		if err != nil {
			return nil, truncated("AkDuckInfo.fade_out_time")
		}
		fadeIn, err := c.I32()
		if err != nil {
			return nil, truncated("AkDuckInfo.fade_in_time")
		}
		curve, err := c.U8()
		if err != nil {
			return nil, truncated("AkDuckInfo.fade_curve")
		}
		prop, err := c.U8()
		if err != nil {
			return nil, truncated("AkDuckInfo.target_prop")
		}
		b.Ducks[i] = AkDuckInfo{
			BusID: busID, DuckVolume: duckVol, FadeOutTime: fadeOut,
			FadeInTime: fadeIn, FadeCurve: curve, TargetProp: PropID(prop),
		}
	}

	fxCount, err := c.U8()
	if err != nil {
		return nil, truncated("BusInitialFxParams.fx_count")
	}
	if fxCount > 0 {
		b.FxBypass, err = c.U8()
		if err != nil {
			return nil, truncated("BusInitialFxParams.fx_bypass")
		}
	}
	b.FxChunks = make([]FXChunk, fxCount)
	for i := range b.FxChunks {
		b.FxChunks[i], err = decodeFXChunk(c)
		if err != nil {
			return nil, err
		}
	}

	_, err = c.U8() // override_attachment_params: no derived state carried beyond the fields above
	if err != nil {
		return nil, truncated("BusInitialValues.override_attachment_params")
	}

	b.InitialRTPC, err = decodeInitialRTPC(c)
	if err != nil {
		return nil, err
	}
	b.State, err = decodeStateChunk(c)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (b *BusBody) encodeBody(w *bitio.Writer) error {
	w.PutU32(b.OverrideBusID)
	if b.OverrideBusID == 0 {
		w.PutU32(b.DeviceShareSetID)
	}
	if err := b.Props.encode(w); err != nil {
		return err
	}
	if err := b.Positioning.encode(w); err != nil {
		return err
	}
	b.Aux.encode(w)
	w.PutU8(b.Flags)
	w.PutU16(b.MaxInstanceCount)
	w.PutU32(b.ChannelConfig)
	w.PutU8(b.HdrFlags)

	w.PutI32(b.RecoveryTime)
	w.PutF32(b.MaxDuckVolume)
	if len(b.Ducks) > 0xFFFFFFFF {
		return encodeFailed("BusInitialValues.duck_count overflow")
	}
	w.PutU32(uint32(len(b.Ducks)))
	for _, d := range b.Ducks {
		w.PutU32(d.BusID)
		w.PutF32(d.DuckVolume)
		w.PutI32(d.FadeOutTime)
		w.PutI32(d.FadeInTime)
		w.PutU8(d.FadeCurve)
		w.PutU8(uint8(d.TargetProp))
	}

	if len(b.FxChunks) > 0xFF {
		return encodeFailed("BusInitialFxParams.fx_count overflow")
	}
	w.PutU8(uint8(len(b.FxChunks)))
	if len(b.FxChunks) > 0 {
		w.PutU8(b.FxBypass)
	}
	for _, fx := range b.FxChunks {
		fx.encode(w)
	}

	w.PutU8(0) // override_attachment_params
	if err := b.InitialRTPC.encode(w); err != nil {
		return err
	}
	return b.State.encode(w)
}

func decodeBusBody(c *bitio.Cursor) (*BusBody, error) {
	return decodeBusInitialValues(c)
}

func decodeAuxiliaryBusBody(c *bitio.Cursor) (*BusBody, error) {
	return decodeBusInitialValues(c)
}

// LayerChild binds an actor-mixer-layer child to its RTPC crossfade curve.
type LayerChild struct {
	ChildID     uint32
	GraphPoints []AkRTPCGraphPoint
}

// Layer is one crossfade layer of a LayerContainer.
type Layer struct {
	LayerID           uint32
	InitialRTPC       InitialRTPC
	RTPCID            uint32
	RTPCType          uint8
	AssociatedChildren []LayerChild
}

// LayerContainerBody is the HIRCLayerContainer (body_type 09) payload.
type LayerContainerBody struct {
	NodeBase               NodeBaseParams
	Children               []uint32
	Layers                 []Layer
	IsContinuousValidation uint8
}

func decodeLayerContainerBody(c *bitio.Cursor) (*LayerContainerBody, error) {
	base, err := decodeNodeBaseParams(c)
	if err != nil {
		return nil, err
	}
	children, err := decodeChildren(c)
	if err != nil {
		return nil, err
	}

	layerCount, err := c.U32()
	if err != nil {
		return nil, truncated("CAkLayerCntr.layer_count")
	}
	layers := make([]Layer, layerCount)
	for i := range layers {
		layerID, err := c.U32()
		if err != nil {
			return nil, truncated("CAkLayer.layer_id")
		}
		rtpc, err := decodeInitialRTPC(c)
		if err != nil {
			return nil, err
		}
		rtpcID, err := c.U32()
		if err != nil {
			return nil, truncated("CAkLayer.rtpc_id")
		}
		rtpcType, err := c.U8()
		if err != nil {
			return nil, truncated("CAkLayer.rtpc_type")
		}
		assocCount, err := c.U32()
		if err != nil {
			return nil, truncated("CAkLayer.associated_children_count")
		}
		assoc := make([]LayerChild, assocCount)
		for j := range assoc {
			childID, err := c.U32()
			if err != nil {
				return nil, truncated("CAssociatedChildData.associated_child_id")
			}
			pointCount, err := c.U32()
			if err != nil {
				return nil, truncated("CAssociatedChildData.graph_point_count")
			}
			points := make([]AkRTPCGraphPoint, pointCount)
			for k := range points {
				points[k], err = decodeAkRTPCGraphPoint(c)
				if err != nil {
					return nil, err
				}
			}
			assoc[j] = LayerChild{ChildID: childID, GraphPoints: points}
		}
		layers[i] = Layer{
			LayerID: layerID, InitialRTPC: rtpc, RTPCID: rtpcID,
			RTPCType: rtpcType, AssociatedChildren: assoc,
		}
	}

	continuous, err := c.U8()
	if err != nil {
		return nil, truncated("CAkLayerCntr.is_continuous_validation")
	}

	return &LayerContainerBody{
		NodeBase: base, Children: children, Layers: layers,
		IsContinuousValidation: continuous,
	}, nil
}

func (l *LayerContainerBody) encodeBody(w *bitio.Writer) error {
	if err := l.NodeBase.encode(w); err != nil {
		return err
	}
	if err := encodeChildren(w, l.Children); err != nil {
		return err
	}
	w.PutU32(uint32(len(l.Layers)))
	for _, layer := range l.Layers {
		w.PutU32(layer.LayerID)
		if err := layer.InitialRTPC.encode(w); err != nil {
			return err
		}
		w.PutU32(layer.RTPCID)
		w.PutU8(layer.RTPCType)
		w.PutU32(uint32(len(layer.AssociatedChildren)))
		for _, assoc := range layer.AssociatedChildren {
			w.PutU32(assoc.ChildID)
			w.PutU32(uint32(len(assoc.GraphPoints)))
			for _, p := range assoc.GraphPoints {
				p.encode(w)
			}
		}
	}
	w.PutU8(l.IsContinuousValidation)
	return nil
}

// ConeParams is the optional cone-attenuation sub-block of an Attenuation
// object, present only when IsConeEnabled is set.
type ConeParams struct {
	InsideDegrees  float32
	OutsideDegrees float32
	OutsideVolume  float32
	LowPass        float32
	HighPass       float32
}

// ConversionCurve is one RTPC-driven attenuation curve (distance-to-volume,
// distance-to-LPF, and so on).
type ConversionCurve struct {
	CurveScaling uint8
	Points       []AkRTPCGraphPoint
}

// AttenuationBody is the HIRCAttenuation (body_type 14) payload.
type AttenuationBody struct {
	IsConeEnabled bool
	Cone          ConeParams
	CurvesToUse   [7]int8
	Curves        []ConversionCurve
	InitialRTPC   InitialRTPC
}

func decodeAttenuationBody(c *bitio.Cursor) (*AttenuationBody, error) {
	var a AttenuationBody
	coneFlag, err := c.U8()
	if err != nil {
		return nil, truncated("CAkAttentuation.is_cone_enabled")
	}
	a.IsConeEnabled = coneFlag != 0
	if a.IsConeEnabled {
		inside, err1 := c.F32()
		outside, err2 := c.F32()
		outVol, err3 := c.F32()
		lpf, err4 := c.F32()
		hpf, err5 := c.F32()
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil {
			return nil, truncated("ConeParams")
		}
		a.Cone = ConeParams{InsideDegrees: inside, OutsideDegrees: outside, OutsideVolume: outVol, LowPass: lpf, HighPass: hpf}
	}

	for i := range a.CurvesToUse {
		b, err := c.U8()
		if err != nil {
			return nil, truncated("CAkAttentuation.curves_to_use")
		}
		a.CurvesToUse[i] = int8(b)
	}

	curveCount, err := c.U8()
	if err != nil {
		return nil, truncated("CAkAttentuation.curve_count")
	}
	a.Curves = make([]ConversionCurve, curveCount)
	for i := range a.Curves {
		scaling, err := c.U8()
		if err != nil {
			return nil, truncated("CAkConversionTable.curve_scaling")
		}
		pointCount, err := c.U16()
		if err != nil {
			return nil, truncated("CAkConversionTable.point_count")
		}
		points := make([]AkRTPCGraphPoint, pointCount)
		for j := range points {
			points[j], err = decodeAkRTPCGraphPoint(c)
			if err != nil {
				return nil, err
			}
		}
		a.Curves[i] = ConversionCurve{CurveScaling: scaling, Points: points}
	}

	a.InitialRTPC, err = decodeInitialRTPC(c)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (a *AttenuationBody) encodeBody(w *bitio.Writer) error {
	w.PutU8(boolToByte(a.IsConeEnabled))
	if a.IsConeEnabled {
		w.PutF32(a.Cone.InsideDegrees)
		w.PutF32(a.Cone.OutsideDegrees)
		w.PutF32(a.Cone.OutsideVolume)
		w.PutF32(a.Cone.LowPass)
		w.PutF32(a.Cone.HighPass)
	}
	for _, b := range a.CurvesToUse {
		w.PutU8(uint8(b))
	}
	if len(a.Curves) > 0xFF {
		return encodeFailed("CAkAttentuation.curve_count overflow")
	}
	w.PutU8(uint8(len(a.Curves)))
	for _, curve := range a.Curves {
		w.PutU8(curve.CurveScaling)
		w.PutU16(uint16(len(curve.Points)))
		for _, p := range curve.Points {
			p.encode(w)
		}
	}
	return a.InitialRTPC.encode(w)
}

// AkGameSync identifies one dialogue-event argument's switch/state group.
type AkGameSync struct {
	GroupID uint32
}

// DialogueEventBody is the HIRCDialogueEvent (body_type 15) payload: a
// decision tree keyed on a fixed argument list, resolving to a target
// object id per combination of game-sync values.
type DialogueEventBody struct {
	Probability uint8
	Arguments   []AkGameSync
	GroupTypes  []uint8
	TreeMode    uint8
	Tree        *DecisionTreeNode
	Props       PropBundle
	RangedProps PropRangedModifiers
}

func decodeDialogueEventBody(c *bitio.Cursor, size int) (*DialogueEventBody, error) {
	var d DialogueEventBody
	var err error

	d.Probability, err = c.U8()
	if err != nil {
		return nil, truncated("CAkDialogueEvent.probability")
	}
	treeDepth, err := c.U32()
	if err != nil {
		return nil, truncated("CAkDialogueEvent.tree_depth")
	}
	d.Arguments = make([]AkGameSync, treeDepth)
	for i := range d.Arguments {
		gid, err := c.U32()
		if err != nil {
			return nil, truncated("AkGameSync.group_id")
		}
		d.Arguments[i] = AkGameSync{GroupID: gid}
	}
	d.GroupTypes = make([]uint8, treeDepth)
	for i := range d.GroupTypes {
		d.GroupTypes[i], err = c.U8()
		if err != nil {
			return nil, truncated("CAkDialogueEvent.group_types")
		}
	}

	treeSize, err := c.U32()
	if err != nil {
		return nil, truncated("CAkDialogueEvent.tree_size")
	}
	d.TreeMode, err = c.U8()
	if err != nil {
		return nil, truncated("CAkDialogueEvent.tree_mode")
	}
	treeBytes, err := c.Bytes(int(treeSize))
	if err != nil {
		return nil, truncated("CAkDialogueEvent.tree")
	}
	d.Tree, err = decodeDecisionTree(treeBytes, int(treeDepth))
	if err != nil {
		return nil, err
	}

	d.Props, err = decodePropBundle(c)
	if err != nil {
		return nil, err
	}
	d.RangedProps, err = decodePropRangedModifiers(c)
	if err != nil {
		return nil, err
	}

	return &d, nil
}

func (d *DialogueEventBody) encodeBody(w *bitio.Writer) error {
	w.PutU8(d.Probability)
	if len(d.Arguments) != len(d.GroupTypes) {
		return encodeFailed("CAkDialogueEvent: arguments/group_types length mismatch")
	}
	w.PutU32(uint32(len(d.Arguments)))
	for _, a := range d.Arguments {
		w.PutU32(a.GroupID)
	}
	for _, gt := range d.GroupTypes {
		w.PutU8(gt)
	}

	treeBytes := encodeDecisionTree(d.Tree)
	w.PutU32(uint32(len(treeBytes)))
	w.PutU8(d.TreeMode)
	w.PutBytes(treeBytes)

	if err := d.Props.encode(w); err != nil {
		return err
	}
	return d.RangedProps.encode(w)
}

// EffectBody is the shared payload of HIRCEffectShareSet and
// HIRCEffectCustom (body_types 16 and 17), and of HIRCAudioDevice
// (body_type 21): a plugin id, its parameter blob, media source bindings,
// RTPC bindings, a state-dependency chunk, and per-property RTPC curves.
type EffectBody struct {
	FxID           uint32
	Params         []byte
	Media          []AkMediaMap
	InitialRTPC    InitialRTPC
	State          StateChunk
	PropertyValues []PluginPropertyValue
}

// AkMediaMap binds a plugin's ordinal media slot to a WEM source id.
type AkMediaMap struct {
	Index    uint8
	SourceID uint32
}

// PluginPropertyValue is one RTPC-bound plugin property override.
type PluginPropertyValue struct {
	Property  uint32
	RTPCAccum uint8
	Value     float32
}

func decodeEffectBody(c *bitio.Cursor) (*EffectBody, error) {
	var e EffectBody
	var err error

	e.FxID, err = c.U32()
	if err != nil {
		return nil, truncated("FxBaseInitialValues.fx_id")
	}
	paramsSize, err := c.U32()
	if err != nil {
		return nil, truncated("FxBaseInitialValues.params_size")
	}
	e.Params, err = c.Bytes(int(paramsSize))
	if err != nil {
		return nil, truncated("FxBaseInitialValues.params")
	}

	mediaCount, err := c.U8()
	if err != nil {
		return nil, truncated("FxBaseInitialValues.media_count")
	}
	e.Media = make([]AkMediaMap, mediaCount)
	for i := range e.Media {
		idx, err := c.U8()
		if err != nil {
			return nil, truncated("AkMediaMap.index")
		}
		srcID, err := c.U32()
		if err != nil {
			return nil, truncated("AkMediaMap.source_id")
		}
		e.Media[i] = AkMediaMap{Index: idx, SourceID: srcID}
	}

	e.InitialRTPC, err = decodeInitialRTPC(c)
	if err != nil {
		return nil, err
	}
	e.State, err = decodeStateChunk(c)
	if err != nil {
		return nil, err
	}

	propCount, err := c.I16()
	if err != nil {
		return nil, truncated("FxBaseInitialValues.property_value_count")
	}
	e.PropertyValues = make([]PluginPropertyValue, propCount)
	for i := range e.PropertyValues {
		prop, err := c.U32()
		if err != nil {
			return nil, truncated("PluginPropertyValue.property")
		}
		accum, err := c.U8()
		if err != nil {
			return nil, truncated("PluginPropertyValue.rtpc_accum")
		}
		val, err := c.F32()
		if err != nil {
			return nil, truncated("PluginPropertyValue.value")
		}
		e.PropertyValues[i] = PluginPropertyValue{Property: prop, RTPCAccum: accum, Value: val}
	}

	return &e, nil
}

func (e *EffectBody) encodeBody(w *bitio.Writer) error {
	w.PutU32(e.FxID)
	if len(e.Params) > 0xFFFFFFFF {
		return encodeFailed("FxBaseInitialValues.params_size overflow")
	}
	w.PutU32(uint32(len(e.Params)))
	w.PutBytes(e.Params)

	if len(e.Media) > 0xFF {
		return encodeFailed("FxBaseInitialValues.media_count overflow")
	}
	w.PutU8(uint8(len(e.Media)))
	for _, m := range e.Media {
		w.PutU8(m.Index)
		w.PutU32(m.SourceID)
	}

	if err := e.InitialRTPC.encode(w); err != nil {
		return err
	}
	if err := e.State.encode(w); err != nil {
		return err
	}

	if len(e.PropertyValues) > 0x7FFF {
		return encodeFailed("FxBaseInitialValues.property_value_count overflow")
	}
	w.PutI16(int16(len(e.PropertyValues)))
	for _, p := range e.PropertyValues {
		w.PutU32(p.Property)
		w.PutU8(p.RTPCAccum)
		w.PutF32(p.Value)
	}
	return nil
}

func decodeEffectShareSetBody(c *bitio.Cursor) (*EffectBody, error) { return decodeEffectBody(c) }
func decodeEffectCustomBody(c *bitio.Cursor) (*EffectBody, error)   { return decodeEffectBody(c) }
func decodeAudioDeviceBody(c *bitio.Cursor) (*EffectBody, error)    { return decodeEffectBody(c) }

// TimeModulatorBody is the HIRCTimeModulator (body_type 22) payload: a
// modulator's property bundle plus the RTPC bindings driving it.
type TimeModulatorBody struct {
	Props       PropBundle
	RangedProps PropRangedModifiers
	InitialRTPC InitialRTPC
}

func decodeTimeModulatorBody(c *bitio.Cursor) (*TimeModulatorBody, error) {
	props, err := decodePropBundle(c)
	if err != nil {
		return nil, err
	}
	ranged, err := decodePropRangedModifiers(c)
	if err != nil {
		return nil, err
	}
	rtpc, err := decodeInitialRTPC(c)
	if err != nil {
		return nil, err
	}
	return &TimeModulatorBody{Props: props, RangedProps: ranged, InitialRTPC: rtpc}, nil
}

func (t *TimeModulatorBody) encodeBody(w *bitio.Writer) error {
	if err := t.Props.encode(w); err != nil {
		return err
	}
	if err := t.RangedProps.encode(w); err != nil {
		return err
	}
	return t.InitialRTPC.encode(w)
}
