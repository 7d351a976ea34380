package bnk

// RouteOutputs derives the set of output-bus or parent-node ids that
// describe where an HIRC object's audio flows next. The bool result is
// false for HIRC types that don't participate in routing at all (a
// result distinct from "routes nowhere", which RouteOutputs reports as a
// true result with an empty set — only Bus/AuxiliaryBus can produce
// that).
func RouteOutputs(obj *HIRCObject) (map[uint32]struct{}, bool) {
	switch body := obj.Body.(type) {
	case *BusBody:
		return routeBus(body), true
	case *SoundBody:
		return routeNode(&body.NodeBase), true
	case *RandomSequenceContainerBody:
		return routeNode(&body.NodeBase), true
	case *SwitchContainerBody:
		return routeNode(&body.NodeBase), true
	case *ActorMixerBody:
		return routeNode(&body.NodeBase), true
	case *LayerContainerBody:
		return routeNode(&body.NodeBase), true
	case *MusicSegmentBody:
		return routeNode(&body.MusicNode.NodeBase), true
	case *MusicTrackBody:
		return routeNode(&body.NodeBase), true
	case *MusicSwitchContainerBody:
		return routeNode(&body.TransNode.MusicNode.NodeBase), true
	case *MusicRandomSequenceContainerBody:
		return routeNode(&body.TransNode.MusicNode.NodeBase), true
	default:
		return nil, false
	}
}

func routeNode(base *NodeBaseParams) map[uint32]struct{} {
	if base.OverrideBusID != 0 {
		return map[uint32]struct{}{base.OverrideBusID: {}}
	}
	return map[uint32]struct{}{base.DirectParentID: {}}
}

// routeBus implements the Bus/AuxiliaryBus special case: the parent-node
// field doesn't apply to a routing endpoint, so a zero override id routes
// to the empty set (that bus is a root) rather than falling back to a
// parent.
func routeBus(body *BusBody) map[uint32]struct{} {
	if body.OverrideBusID != 0 {
		return map[uint32]struct{}{body.OverrideBusID: {}}
	}
	return map[uint32]struct{}{}
}
