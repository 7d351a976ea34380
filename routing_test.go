package bnk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteOutputsSoundFallsBackToParent(t *testing.T) {
	obj := &HIRCObject{Type: HIRCSound, Body: &SoundBody{
		NodeBase: NodeBaseParams{OverrideBusID: 0, DirectParentID: 77},
	}}

	got, ok := RouteOutputs(obj)
	require.True(t, ok)
	assert.Equal(t, map[uint32]struct{}{77: {}}, got)
}

func TestRouteOutputsSoundPrefersOverrideBus(t *testing.T) {
	obj := &HIRCObject{Type: HIRCSound, Body: &SoundBody{
		NodeBase: NodeBaseParams{OverrideBusID: 5, DirectParentID: 77},
	}}

	got, ok := RouteOutputs(obj)
	require.True(t, ok)
	assert.Equal(t, map[uint32]struct{}{5: {}}, got)
}

func TestRouteOutputsBusWithNoOverrideIsRoot(t *testing.T) {
	obj := &HIRCObject{Type: HIRCBus, Body: &BusBody{OverrideBusID: 0}}

	got, ok := RouteOutputs(obj)
	require.True(t, ok)
	assert.Empty(t, got)
}

func TestRouteOutputsAuxiliaryBusSharesRule(t *testing.T) {
	obj := &HIRCObject{Type: HIRCAuxiliaryBus, Body: &BusBody{OverrideBusID: 9}}

	got, ok := RouteOutputs(obj)
	require.True(t, ok)
	assert.Equal(t, map[uint32]struct{}{9: {}}, got)
}

func TestRouteOutputsNotRoutable(t *testing.T) {
	obj := &HIRCObject{Type: HIRCEvent, Body: &EventBody{}}

	_, ok := RouteOutputs(obj)
	assert.False(t, ok)
}
