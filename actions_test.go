package bnk

import (
	"testing"

	"github.com/kelindar/wwise-bnk/internal/bitio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionBodySetSwitchRoundTrip(t *testing.T) {
	body := &ActionBody{
		ActionType: ActionSetSwitch,
		ExternalID: 7,
		IsBus:      false,
		Params:     ActionSetSwitchParams{GroupID: 1, ValueID: 2},
	}
	got := roundTripHIRCBody(t, HIRCAction, body).(*ActionBody)
	assert.Equal(t, body, got)
}

func TestActionBodyPlayRoundTrip(t *testing.T) {
	body := &ActionBody{
		ActionType: ActionPlay,
		ExternalID: 9,
		Params:     ActionPlayParams{FadeCurve: 2, BankID: 1234},
	}
	got := roundTripHIRCBody(t, HIRCAction, body).(*ActionBody)
	assert.Equal(t, body, got)
}

func TestActionBodyStopWithExceptRoundTrip(t *testing.T) {
	body := &ActionBody{
		ActionType: ActionStopE,
		ExternalID: 1,
		Params: ActionStopParams{
			Flags1: 1,
			Flags2: 2,
			Except: ActionExcept{Entries: []ActionExceptEntry{{ObjectID: 55, IsBus: true}}},
		},
	}
	got := roundTripHIRCBody(t, HIRCAction, body).(*ActionBody)
	assert.Equal(t, body, got)
}

func TestActionBodySetVolumeRoundTrip(t *testing.T) {
	body := &ActionBody{
		ActionType: ActionSetVolumeM,
		ExternalID: 2,
		Params: ActionSetAkPropParams{
			FadeCurve:    0,
			ValueMeaning: 1,
			Randomizer:   RandomizerModifier{Base: -3, Min: -1, Max: 1},
		},
	}
	got := roundTripHIRCBody(t, HIRCAction, body).(*ActionBody)
	assert.Equal(t, body, got)
}

func TestActionBodyPlayEventRoundTrip(t *testing.T) {
	body := &ActionBody{ActionType: ActionPlayEvent, ExternalID: 3, Params: ActionPlayEventParams{}}
	got := roundTripHIRCBody(t, HIRCAction, body).(*ActionBody)
	assert.Equal(t, body, got)
}

func TestActionBodyUnknownTypeIsDecodeError(t *testing.T) {
	w := bitio.NewWriter()
	w.PutU16(0xFFFF)
	w.PutU32(0)
	w.PutU8(0)
	w.PutU8(0) // empty PropBundle
	w.PutU8(0) // empty PropRangedModifiers

	_, err := decodeActionBody(bitio.NewCursor(w.Bytes()))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownVariant)
}
