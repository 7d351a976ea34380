package bnk

import (
	"github.com/kelindar/wwise-bnk/internal/bitio"
)

// FXChunk is one entry of a node's effect chain.
type FXChunk struct {
	FXIndex     uint8
	FXID        uint32
	IsShareSet  bool
	IsRendered  bool
}

func decodeFXChunk(c *bitio.Cursor) (FXChunk, error) {
	idx, err := c.U8()
	if err != nil {
		return FXChunk{}, truncated("FXChunk.index")
	}
	id, err := c.U32()
	if err != nil {
		return FXChunk{}, truncated("FXChunk.id")
	}
	flags, err := c.U8()
	if err != nil {
		return FXChunk{}, truncated("FXChunk.flags")
	}
	r := bitio.NewBitReader(flags)
	isShareSet := r.Bool()
	isRendered := r.Bool()
	return FXChunk{FXIndex: idx, FXID: id, IsShareSet: isShareSet, IsRendered: isRendered}, nil
}

func (f FXChunk) encode(w *bitio.Writer) {
	w.PutU8(f.FXIndex)
	w.PutU32(f.FXID)
	bw := bitio.NewBitWriter()
	bw.PutBool(f.IsShareSet)
	bw.PutBool(f.IsRendered)
	bw.PutBits(0, 6)
	w.PutU8(bw.Byte())
}

// NodeInitialFxParams is the initial-FX params block of NodeBaseParams.
type NodeInitialFxParams struct {
	IsOverrideParentFX bool
	FXChunks           []FXChunk
}

func decodeNodeInitialFxParams(c *bitio.Cursor) (NodeInitialFxParams, error) {
	flag, err := c.U8()
	if err != nil {
		return NodeInitialFxParams{}, truncated("NodeInitialFxParams.override")
	}
	count, err := c.U8()
	if err != nil {
		return NodeInitialFxParams{}, truncated("NodeInitialFxParams.count")
	}
	chunks := make([]FXChunk, count)
	for i := range chunks {
		chunks[i], err = decodeFXChunk(c)
		if err != nil {
			return NodeInitialFxParams{}, err
		}
	}
	return NodeInitialFxParams{IsOverrideParentFX: flag != 0, FXChunks: chunks}, nil
}

func (p *NodeInitialFxParams) encode(w *bitio.Writer) error {
	if len(p.FXChunks) > 0xFF {
		return encodeFailed("NodeInitialFxParams.count overflow")
	}
	w.PutU8(boolToByte(p.IsOverrideParentFX))
	w.PutU8(uint8(len(p.FXChunks)))
	for _, f := range p.FXChunks {
		f.encode(w)
	}
	return nil
}

func boolToByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// Ak3DPositionType selects how a node's 3D position is derived.
type Ak3DPositionType uint8

const (
	PositionEmitter Ak3DPositionType = iota
	PositionEmitterWithAutomation
	PositionListenerWithAutomation
)

// AkPathVertex is one control point of a position-automation path.
type AkPathVertex struct {
	X, Y, Z  float32
	Duration int32
}

// AkPathListItemOffset names the vertex range of one playlist segment of a
// position-automation path.
type AkPathListItemOffset struct {
	VerticesOffset uint32
	NumVertices    uint32
}

// PositioningParams is the positioning block of NodeBaseParams: a packed
// flags byte (listener-relative routing, 3D position type, speaker panning
// type) followed by path/automation data present only when the position
// type requires it.
type PositioningParams struct {
	ListenerRelativeRouting bool
	PositionType            Ak3DPositionType
	PanningType             uint8 // AkSpeakerPanningType, 3 bits

	IsLooping      bool
	TransitionTime uint32
	Vertices       []AkPathVertex
	PlayListItems  []AkPathListItemOffset
}

func decodePositioningParams(c *bitio.Cursor) (PositioningParams, error) {
	flags, err := c.U8()
	if err != nil {
		return PositioningParams{}, truncated("PositioningParams.flags")
	}
	r := bitio.NewBitReader(flags)
	listenerRelative := r.Bool()
	positionType := Ak3DPositionType(r.Bits(2))
	panningType := r.Bits(3)
	r.Bits(2) // reserved

	p := PositioningParams{
		ListenerRelativeRouting: listenerRelative,
		PositionType:            positionType,
		PanningType:             panningType,
	}
	if positionType == PositionEmitter {
		return p, nil
	}

	loopFlag, err := c.U8()
	if err != nil {
		return PositioningParams{}, truncated("PositioningParams.loop")
	}
	p.IsLooping = loopFlag != 0

	p.TransitionTime, err = c.U32()
	if err != nil {
		return PositioningParams{}, truncated("PositioningParams.transition_time")
	}

	vertexCount, err := c.U32()
	if err != nil {
		return PositioningParams{}, truncated("PositioningParams.vertex_count")
	}
	p.Vertices = make([]AkPathVertex, vertexCount)
	for i := range p.Vertices {
		x, err1 := c.F32()
		y, err2 := c.F32()
		z, err3 := c.F32()
		d, err4 := c.I32()
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			return PositioningParams{}, truncated("PositioningParams.vertex")
		}
		p.Vertices[i] = AkPathVertex{X: x, Y: y, Z: z, Duration: d}
	}

	itemCount, err := c.U32()
	if err != nil {
		return PositioningParams{}, truncated("PositioningParams.playlist_count")
	}
	p.PlayListItems = make([]AkPathListItemOffset, itemCount)
	for i := range p.PlayListItems {
		off, err1 := c.U32()
		n, err2 := c.U32()
		if err1 != nil || err2 != nil {
			return PositioningParams{}, truncated("PositioningParams.playlist_item")
		}
		p.PlayListItems[i] = AkPathListItemOffset{VerticesOffset: off, NumVertices: n}
	}

	return p, nil
}

func (p *PositioningParams) encode(w *bitio.Writer) error {
	bw := bitio.NewBitWriter()
	bw.PutBool(p.ListenerRelativeRouting)
	bw.PutBits(uint8(p.PositionType), 2)
	bw.PutBits(p.PanningType, 3)
	bw.PutBits(0, 2)
	w.PutU8(bw.Byte())

	if p.PositionType == PositionEmitter {
		return nil
	}

	w.PutU8(boolToByte(p.IsLooping))
	w.PutU32(p.TransitionTime)

	if len(p.Vertices) > 0xFFFFFFFF {
		return encodeFailed("PositioningParams.vertex_count overflow")
	}
	w.PutU32(uint32(len(p.Vertices)))
	for _, v := range p.Vertices {
		w.PutF32(v.X)
		w.PutF32(v.Y)
		w.PutF32(v.Z)
		w.PutI32(v.Duration)
	}

	w.PutU32(uint32(len(p.PlayListItems)))
	for _, it := range p.PlayListItems {
		w.PutU32(it.VerticesOffset)
		w.PutU32(it.NumVertices)
	}
	return nil
}

// AuxParams carries a node's auxiliary-send routing: up to 4 explicit aux
// bus ids, present only when HasAux is set.
type AuxParams struct {
	HasAux                   bool
	OverrideReflectionAuxBus bool
	OverrideUserAuxSends     bool
	AuxBusIDs                [4]uint32
}

func decodeAuxParams(c *bitio.Cursor) (AuxParams, error) {
	flags, err := c.U8()
	if err != nil {
		return AuxParams{}, truncated("AuxParams.flags")
	}
	r := bitio.NewBitReader(flags)
	a := AuxParams{
		HasAux:                   r.Bool(),
		OverrideReflectionAuxBus: r.Bool(),
		OverrideUserAuxSends:     r.Bool(),
	}
	if !a.HasAux {
		return a, nil
	}
	for i := range a.AuxBusIDs {
		a.AuxBusIDs[i], err = c.U32()
		if err != nil {
			return AuxParams{}, truncated("AuxParams.aux_bus_id")
		}
	}
	return a, nil
}

func (a *AuxParams) encode(w *bitio.Writer) {
	bw := bitio.NewBitWriter()
	bw.PutBool(a.HasAux)
	bw.PutBool(a.OverrideReflectionAuxBus)
	bw.PutBool(a.OverrideUserAuxSends)
	bw.PutBits(0, 5)
	w.PutU8(bw.Byte())
	if !a.HasAux {
		return
	}
	for _, id := range a.AuxBusIDs {
		w.PutU32(id)
	}
}

// AkVirtualQueueBehavior governs what happens to a voice that becomes
// virtual while queued.
type AkVirtualQueueBehavior uint8

// AkBelowThresholdBehavior governs what happens to a voice whose priority
// falls below the audible threshold.
type AkBelowThresholdBehavior uint8

// AdvSettingsParams is a node's advanced-settings block: virtual-voice and
// below-threshold behavior plus an explicit instance limit.
type AdvSettingsParams struct {
	VirtualQueueBehavior       AkVirtualQueueBehavior
	BelowThresholdBehavior     AkBelowThresholdBehavior
	IgnoreParentMaxNumInstance bool
	IsVVoicesOptOverrideParent bool
	KillNewest                 bool
	IsGlobalLimit              bool
	MaxNumInstance             uint16
}

func decodeAdvSettingsParams(c *bitio.Cursor) (AdvSettingsParams, error) {
	b1, err := c.U8()
	if err != nil {
		return AdvSettingsParams{}, truncated("AdvSettingsParams.byte1")
	}
	r1 := bitio.NewBitReader(b1)
	a := AdvSettingsParams{
		VirtualQueueBehavior:       AkVirtualQueueBehavior(r1.Bits(2)),
		BelowThresholdBehavior:     AkBelowThresholdBehavior(r1.Bits(2)),
		IgnoreParentMaxNumInstance: r1.Bool(),
		IsVVoicesOptOverrideParent: r1.Bool(),
	}
	r1.Bits(2) // reserved

	b2, err := c.U8()
	if err != nil {
		return AdvSettingsParams{}, truncated("AdvSettingsParams.byte2")
	}
	r2 := bitio.NewBitReader(b2)
	a.KillNewest = r2.Bool()
	a.IsGlobalLimit = r2.Bool()
	r2.Bits(6) // reserved

	a.MaxNumInstance, err = c.U16()
	if err != nil {
		return AdvSettingsParams{}, truncated("AdvSettingsParams.max_num_instance")
	}
	return a, nil
}

func (a *AdvSettingsParams) encode(w *bitio.Writer) {
	bw1 := bitio.NewBitWriter()
	bw1.PutBits(uint8(a.VirtualQueueBehavior), 2)
	bw1.PutBits(uint8(a.BelowThresholdBehavior), 2)
	bw1.PutBool(a.IgnoreParentMaxNumInstance)
	bw1.PutBool(a.IsVVoicesOptOverrideParent)
	bw1.PutBits(0, 2)
	w.PutU8(bw1.Byte())

	bw2 := bitio.NewBitWriter()
	bw2.PutBool(a.KillNewest)
	bw2.PutBool(a.IsGlobalLimit)
	bw2.PutBits(0, 6)
	w.PutU8(bw2.Byte())

	w.PutU16(a.MaxNumInstance)
}

// StatePropertyInfo names one property driven by a state group.
type StatePropertyInfo struct {
	PropertyID PropID
	AccumType  uint8
}

// StateAssoc binds a state instance id to the property-value set id it
// selects.
type StateAssoc struct {
	StateInstanceID uint32
	StateValueID    uint32
}

// StateGroupEntry is one state-group dependency of a node.
type StateGroupEntry struct {
	StateGroupID  uint32
	StateSyncType uint8
	States        []StateAssoc
}

// StateChunk is the state-group dependency block of NodeBaseParams.
type StateChunk struct {
	Properties []StatePropertyInfo
	Groups     []StateGroupEntry
}

func decodeStateChunk(c *bitio.Cursor) (StateChunk, error) {
	propCount, err := c.U8()
	if err != nil {
		return StateChunk{}, truncated("StateChunk.prop_count")
	}
	props := make([]StatePropertyInfo, propCount)
	for i := range props {
		pid, err := c.U8()
		if err != nil {
			return StateChunk{}, truncated("StateChunk.property_id")
		}
		acc, err := c.U8()
		if err != nil {
			return StateChunk{}, truncated("StateChunk.accum_type")
		}
		props[i] = StatePropertyInfo{PropertyID: PropID(pid), AccumType: acc}
	}

	groupCount, err := c.U8()
	if err != nil {
		return StateChunk{}, truncated("StateChunk.group_count")
	}
	groups := make([]StateGroupEntry, groupCount)
	for i := range groups {
		gid, err := c.U32()
		if err != nil {
			return StateChunk{}, truncated("StateChunk.group_id")
		}
		syncType, err := c.U8()
		if err != nil {
			return StateChunk{}, truncated("StateChunk.sync_type")
		}
		stateCount, err := c.U8()
		if err != nil {
			return StateChunk{}, truncated("StateChunk.state_count")
		}
		states := make([]StateAssoc, stateCount)
		for j := range states {
			instID, err1 := c.U32()
			valID, err2 := c.U32()
			if err1 != nil || err2 != nil {
				return StateChunk{}, truncated("StateChunk.state_assoc")
			}
			states[j] = StateAssoc{StateInstanceID: instID, StateValueID: valID}
		}
		groups[i] = StateGroupEntry{StateGroupID: gid, StateSyncType: syncType, States: states}
	}

	return StateChunk{Properties: props, Groups: groups}, nil
}

func (s *StateChunk) encode(w *bitio.Writer) error {
	if len(s.Properties) > 0xFF || len(s.Groups) > 0xFF {
		return encodeFailed("StateChunk.count overflow")
	}
	w.PutU8(uint8(len(s.Properties)))
	for _, p := range s.Properties {
		w.PutU8(uint8(p.PropertyID))
		w.PutU8(p.AccumType)
	}
	w.PutU8(uint8(len(s.Groups)))
	for _, g := range s.Groups {
		if len(g.States) > 0xFF {
			return encodeFailed("StateChunk.state_count overflow")
		}
		w.PutU32(g.StateGroupID)
		w.PutU8(g.StateSyncType)
		w.PutU8(uint8(len(g.States)))
		for _, st := range g.States {
			w.PutU32(st.StateInstanceID)
			w.PutU32(st.StateValueID)
		}
	}
	return nil
}

// AkRTPCGraphPoint is one control point of an RTPC response curve.
type AkRTPCGraphPoint struct {
	X             float32
	Y             float32
	Interpolation uint32
}

func decodeAkRTPCGraphPoint(c *bitio.Cursor) (AkRTPCGraphPoint, error) {
	x, err1 := c.F32()
	y, err2 := c.F32()
	interp, err3 := c.U32()
	if err1 != nil || err2 != nil || err3 != nil {
		return AkRTPCGraphPoint{}, truncated("AkRTPCGraphPoint")
	}
	return AkRTPCGraphPoint{X: x, Y: y, Interpolation: interp}, nil
}

func (p AkRTPCGraphPoint) encode(w *bitio.Writer) {
	w.PutF32(p.X)
	w.PutF32(p.Y)
	w.PutU32(p.Interpolation)
}

// RTPC binds a game parameter to a node property via a response curve.
type RTPC struct {
	RTPCID       uint32
	RTPCType     uint8
	RTPCAccum    uint8
	ParameterID  PropID
	CurveScaling uint8
	Points       []AkRTPCGraphPoint
}

// InitialRTPC is the RTPC-binding list block of NodeBaseParams.
type InitialRTPC struct {
	RTPCs []RTPC
}

func decodeInitialRTPC(c *bitio.Cursor) (InitialRTPC, error) {
	count, err := c.U16()
	if err != nil {
		return InitialRTPC{}, truncated("InitialRTPC.count")
	}
	rtpcs := make([]RTPC, count)
	for i := range rtpcs {
		id, err := c.U32()
		if err != nil {
			return InitialRTPC{}, truncated("RTPC.id")
		}
		typ, err := c.U8()
		if err != nil {
			return InitialRTPC{}, truncated("RTPC.type")
		}
		accum, err := c.U8()
		if err != nil {
			return InitialRTPC{}, truncated("RTPC.accum")
		}
		paramID, err := c.U8()
		if err != nil {
			return InitialRTPC{}, truncated("RTPC.parameter_id")
		}
		scaling, err := c.U8()
		if err != nil {
			return InitialRTPC{}, truncated("RTPC.curve_scaling")
		}
		pointCount, err := c.U16()
		if err != nil {
			return InitialRTPC{}, truncated("RTPC.point_count")
		}
		points := make([]AkRTPCGraphPoint, pointCount)
		for j := range points {
			x, err1 := c.F32()
			y, err2 := c.F32()
			interp, err3 := c.U32()
			if err1 != nil || err2 != nil || err3 != nil {
				return InitialRTPC{}, truncated("RTPC.point")
			}
			points[j] = AkRTPCGraphPoint{X: x, Y: y, Interpolation: interp}
		}
		rtpcs[i] = RTPC{RTPCID: id, RTPCType: typ, RTPCAccum: accum, ParameterID: PropID(paramID), CurveScaling: scaling, Points: points}
	}
	return InitialRTPC{RTPCs: rtpcs}, nil
}

func (ir *InitialRTPC) encode(w *bitio.Writer) error {
	if len(ir.RTPCs) > 0xFFFF {
		return encodeFailed("InitialRTPC.count overflow")
	}
	w.PutU16(uint16(len(ir.RTPCs)))
	for _, r := range ir.RTPCs {
		if len(r.Points) > 0xFFFF {
			return encodeFailed("RTPC.point_count overflow")
		}
		w.PutU32(r.RTPCID)
		w.PutU8(r.RTPCType)
		w.PutU8(r.RTPCAccum)
		w.PutU8(uint8(r.ParameterID))
		w.PutU8(r.CurveScaling)
		w.PutU16(uint16(len(r.Points)))
		for _, p := range r.Points {
			w.PutF32(p.X)
			w.PutF32(p.Y)
			w.PutU32(p.Interpolation)
		}
	}
	return nil
}

// NodeBaseParams is the common header shared by most audio-object bodies:
// initial-FX params, bus routing, positioning, aux sends, advanced
// settings, state-group dependencies, and RTPC bindings.
type NodeBaseParams struct {
	InitialFxParams NodeInitialFxParams
	OverrideBusID   uint32
	DirectParentID  uint32

	Props         PropBundle
	RangedProps   PropRangedModifiers
	Positioning   PositioningParams
	Aux           AuxParams
	AdvSettings   AdvSettingsParams
	State         StateChunk
	InitialRTPC   InitialRTPC
}

func decodeNodeBaseParams(c *bitio.Cursor) (NodeBaseParams, error) {
	var n NodeBaseParams
	var err error

	n.InitialFxParams, err = decodeNodeInitialFxParams(c)
	if err != nil {
		return NodeBaseParams{}, err
	}
	n.OverrideBusID, err = c.U32()
	if err != nil {
		return NodeBaseParams{}, truncated("NodeBaseParams.override_bus_id")
	}
	n.DirectParentID, err = c.U32()
	if err != nil {
		return NodeBaseParams{}, truncated("NodeBaseParams.direct_parent_id")
	}
	_, err = c.U8() // by-bit-vector flags byte covering priority/state overrides, preserved implicitly by re-derivation
	if err != nil {
		return NodeBaseParams{}, truncated("NodeBaseParams.flags")
	}
	n.Props, err = decodePropBundle(c)
	if err != nil {
		return NodeBaseParams{}, err
	}
	n.RangedProps, err = decodePropRangedModifiers(c)
	if err != nil {
		return NodeBaseParams{}, err
	}
	n.Positioning, err = decodePositioningParams(c)
	if err != nil {
		return NodeBaseParams{}, err
	}
	n.Aux, err = decodeAuxParams(c)
	if err != nil {
		return NodeBaseParams{}, err
	}
	n.AdvSettings, err = decodeAdvSettingsParams(c)
	if err != nil {
		return NodeBaseParams{}, err
	}
	n.State, err = decodeStateChunk(c)
	if err != nil {
		return NodeBaseParams{}, err
	}
	n.InitialRTPC, err = decodeInitialRTPC(c)
	if err != nil {
		return NodeBaseParams{}, err
	}
	return n, nil
}

func (n *NodeBaseParams) encode(w *bitio.Writer) error {
	if err := n.InitialFxParams.encode(w); err != nil {
		return err
	}
	w.PutU32(n.OverrideBusID)
	w.PutU32(n.DirectParentID)
	w.PutU8(0) // reserved flags byte; no state is cached in NodeBaseParams beyond the explicit fields above
	if err := n.Props.encode(w); err != nil {
		return err
	}
	if err := n.RangedProps.encode(w); err != nil {
		return err
	}
	if err := n.Positioning.encode(w); err != nil {
		return err
	}
	n.Aux.encode(w)
	n.AdvSettings.encode(w)
	if err := n.State.encode(w); err != nil {
		return err
	}
	if err := n.InitialRTPC.encode(w); err != nil {
		return err
	}
	return nil
}
