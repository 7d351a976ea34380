package bnk

import (
	"github.com/kelindar/wwise-bnk/internal/bitio"
)

// ActionType is the closed subset of Action body-type discriminants this
// codec understands (§4.2). A code outside this table is a decode error,
// never silently re-routed to a default variant (per the Open Question in
// spec.md §9).
type ActionType uint16

const (
	ActionStopE             ActionType = 0x0102
	ActionStopEO            ActionType = 0x0103
	ActionPauseE            ActionType = 0x0202
	ActionResumeE           ActionType = 0x0302
	ActionPlay              ActionType = 0x0403
	ActionMuteM             ActionType = 0x0602
	ActionMuteO             ActionType = 0x0603
	ActionUnmuteM           ActionType = 0x0702
	ActionUnmuteO           ActionType = 0x0703
	ActionUnmuteALL         ActionType = 0x0704
	ActionUnmuteALLO        ActionType = 0x0705
	ActionUnmuteAE          ActionType = 0x0708
	ActionUnmuteAEO         ActionType = 0x0709
	ActionSetPitchM         ActionType = 0x0802
	ActionSetPitchO         ActionType = 0x0803
	ActionResetPitchM       ActionType = 0x0902
	ActionResetPitchO       ActionType = 0x0903
	ActionSetVolumeM        ActionType = 0x0A02
	ActionSetVolumeO        ActionType = 0x0A03
	ActionResetVolumeM      ActionType = 0x0B02
	ActionResetVolumeO      ActionType = 0x0B03
	ActionResetVolumeALL    ActionType = 0x0B04
	ActionSetBusVolumeM     ActionType = 0x0C02
	ActionResetBusVolumeM   ActionType = 0x0D02
	ActionResetBusVolumeALL ActionType = 0x0D04
	ActionSetLPFM           ActionType = 0x0E02
	ActionSetLPFO           ActionType = 0x0E03
	ActionResetLPFM         ActionType = 0x0F02
	ActionResetLPFO         ActionType = 0x0F03
	ActionResetLPFALL       ActionType = 0x0F04
	ActionSetHPFM           ActionType = 0x2002
	ActionResetHPFM         ActionType = 0x3002
	ActionResetHPFALL       ActionType = 0x3004
	ActionSetState          ActionType = 0x1204
	ActionSetSwitch         ActionType = 0x1901
	ActionPlayEvent         ActionType = 0x2103
)

// ActionParams is implemented by every Action subtype's parameter body.
type ActionParams interface {
	encodeParams(w *bitio.Writer) error
}

// ActionBody is the HIRCAction (body_type 03) payload: the target id, a
// property bundle of value overrides, and an ActionType-selected params
// variant.
type ActionBody struct {
	ActionType  ActionType
	ExternalID  uint32
	IsBus       bool
	Props       PropBundle
	RangedProps PropRangedModifiers
	Params      ActionParams
}

func decodeActionBody(c *bitio.Cursor) (*ActionBody, error) {
	typRaw, err := c.U16()
	if err != nil {
		return nil, truncated("CAkAction.action_type")
	}
	externalID, err := c.U32()
	if err != nil {
		return nil, truncated("CAkAction.external_id")
	}
	isBus, err := c.U8()
	if err != nil {
		return nil, truncated("CAkAction.is_bus")
	}
	props, err := decodePropBundle(c)
	if err != nil {
		return nil, err
	}
	ranged, err := decodePropRangedModifiers(c)
	if err != nil {
		return nil, err
	}

	typ := ActionType(typRaw)
	params, err := decodeActionParams(c, typ)
	if err != nil {
		return nil, err
	}

	return &ActionBody{
		ActionType:  typ,
		ExternalID:  externalID,
		IsBus:       isBus != 0,
		Props:       props,
		RangedProps: ranged,
		Params:      params,
	}, nil
}

func (a *ActionBody) encodeBody(w *bitio.Writer) error {
	w.PutU16(uint16(a.ActionType))
	w.PutU32(a.ExternalID)
	w.PutU8(boolToByte(a.IsBus))
	if err := a.Props.encode(w); err != nil {
		return err
	}
	if err := a.RangedProps.encode(w); err != nil {
		return err
	}
	if a.Params == nil {
		return nil
	}
	return a.Params.encodeParams(w)
}

func decodeActionParams(c *bitio.Cursor, typ ActionType) (ActionParams, error) {
	switch typ {
	case ActionSetState, ActionSetSwitch:
		return decodeActionSetSwitch(c)
	case ActionPlay:
		return decodeActionPlay(c)
	case ActionStopE, ActionStopEO:
		return decodeActionStop(c)
	case ActionPauseE:
		return decodeActionPause(c)
	case ActionResumeE:
		return decodeActionResume(c)
	case ActionMuteM, ActionMuteO,
		ActionUnmuteM, ActionUnmuteO, ActionUnmuteALL, ActionUnmuteALLO, ActionUnmuteAE, ActionUnmuteAEO:
		return decodeActionMute(c)
	case ActionSetVolumeM, ActionSetVolumeO,
		ActionResetVolumeM, ActionResetVolumeO, ActionResetVolumeALL,
		ActionSetPitchM, ActionSetPitchO, ActionResetPitchM, ActionResetPitchO,
		ActionSetLPFM, ActionSetLPFO, ActionResetLPFM, ActionResetLPFO, ActionResetLPFALL,
		ActionSetHPFM, ActionResetHPFM, ActionResetHPFALL,
		ActionSetBusVolumeM, ActionResetBusVolumeM, ActionResetBusVolumeALL:
		return decodeActionSetAkProp(c)
	case ActionPlayEvent:
		return ActionPlayEventParams{}, nil
	default:
		return nil, unknownVariant("CAkAction.action_type", uint32(typ))
	}
}

// ActionSetSwitchParams is the shared layout for SetState and SetSwitch
// actions: both bind a group id to a target value id.
type ActionSetSwitchParams struct {
	GroupID uint32
	ValueID uint32
}

func decodeActionSetSwitch(c *bitio.Cursor) (ActionSetSwitchParams, error) {
	g, err := c.U32()
	if err != nil {
		return ActionSetSwitchParams{}, truncated("CAkActionSetSwitch.group_id")
	}
	v, err := c.U32()
	if err != nil {
		return ActionSetSwitchParams{}, truncated("CAkActionSetSwitch.value_id")
	}
	return ActionSetSwitchParams{GroupID: g, ValueID: v}, nil
}

func (p ActionSetSwitchParams) encodeParams(w *bitio.Writer) error {
	w.PutU32(p.GroupID)
	w.PutU32(p.ValueID)
	return nil
}

// ActionPlayParams is the Play action's payload.
type ActionPlayParams struct {
	FadeCurve uint8
	BankID    uint32
}

func decodeActionPlay(c *bitio.Cursor) (ActionPlayParams, error) {
	fc, err := c.U8()
	if err != nil {
		return ActionPlayParams{}, truncated("CAkActionPlay.fade_curve")
	}
	bank, err := c.U32()
	if err != nil {
		return ActionPlayParams{}, truncated("CAkActionPlay.bank_id")
	}
	return ActionPlayParams{FadeCurve: fc, BankID: bank}, nil
}

func (p ActionPlayParams) encodeParams(w *bitio.Writer) error {
	w.PutU8(p.FadeCurve)
	w.PutU32(p.BankID)
	return nil
}

// ActionExceptEntry names one object excluded from an Action's scope.
type ActionExceptEntry struct {
	ObjectID uint32
	IsBus    bool
}

// ActionExcept is the trailing exception list most per-instance/per-scope
// actions carry.
type ActionExcept struct {
	Entries []ActionExceptEntry
}

func decodeActionExcept(c *bitio.Cursor) (ActionExcept, error) {
	count, err := c.U8()
	if err != nil {
		return ActionExcept{}, truncated("CAkActionParamsExcept.count")
	}
	entries := make([]ActionExceptEntry, count)
	for i := range entries {
		id, err := c.U32()
		if err != nil {
			return ActionExcept{}, truncated("CAkActionParamsExceptEntry.object_id")
		}
		isBus, err := c.U8()
		if err != nil {
			return ActionExcept{}, truncated("CAkActionParamsExceptEntry.is_bus")
		}
		entries[i] = ActionExceptEntry{ObjectID: id, IsBus: isBus != 0}
	}
	return ActionExcept{Entries: entries}, nil
}

func (e ActionExcept) encode(w *bitio.Writer) error {
	if len(e.Entries) > 0xFF {
		return encodeFailed("CAkActionParamsExcept.count overflow")
	}
	w.PutU8(uint8(len(e.Entries)))
	for _, en := range e.Entries {
		w.PutU32(en.ObjectID)
		w.PutU8(boolToByte(en.IsBus))
	}
	return nil
}

// ActionStopParams is the Stop action's payload.
type ActionStopParams struct {
	Flags1 uint8
	Flags2 uint8
	Except ActionExcept
}

func decodeActionStop(c *bitio.Cursor) (ActionStopParams, error) {
	f1, err := c.U8()
	if err != nil {
		return ActionStopParams{}, truncated("CAkActionParamsStop.flags1")
	}
	f2, err := c.U8()
	if err != nil {
		return ActionStopParams{}, truncated("CAkActionParamsStop.flags2")
	}
	except, err := decodeActionExcept(c)
	if err != nil {
		return ActionStopParams{}, err
	}
	return ActionStopParams{Flags1: f1, Flags2: f2, Except: except}, nil
}

func (p ActionStopParams) encodeParams(w *bitio.Writer) error {
	w.PutU8(p.Flags1)
	w.PutU8(p.Flags2)
	return p.Except.encode(w)
}

// ActionPauseParams is the Pause action's payload.
type ActionPauseParams struct {
	FadeCurve uint8
	Flags     uint8
	Except    ActionExcept
}

func decodeActionPause(c *bitio.Cursor) (ActionPauseParams, error) {
	fc, err := c.U8()
	if err != nil {
		return ActionPauseParams{}, truncated("CAkActionPause.fade_curve")
	}
	flags, err := c.U8()
	if err != nil {
		return ActionPauseParams{}, truncated("CAkActionParamsPause.flags")
	}
	except, err := decodeActionExcept(c)
	if err != nil {
		return ActionPauseParams{}, err
	}
	return ActionPauseParams{FadeCurve: fc, Flags: flags, Except: except}, nil
}

func (p ActionPauseParams) encodeParams(w *bitio.Writer) error {
	w.PutU8(p.FadeCurve)
	w.PutU8(p.Flags)
	return p.Except.encode(w)
}

// ActionResumeParams is the Resume action's payload.
type ActionResumeParams struct {
	FadeCurve uint8
	Resume    uint8
	Except    ActionExcept
}

func decodeActionResume(c *bitio.Cursor) (ActionResumeParams, error) {
	fc, err := c.U8()
	if err != nil {
		return ActionResumeParams{}, truncated("CAkActionResume.fade_curve")
	}
	resume, err := c.U8()
	if err != nil {
		return ActionResumeParams{}, truncated("CAkActionResume.resume")
	}
	except, err := decodeActionExcept(c)
	if err != nil {
		return ActionResumeParams{}, err
	}
	return ActionResumeParams{FadeCurve: fc, Resume: resume, Except: except}, nil
}

func (p ActionResumeParams) encodeParams(w *bitio.Writer) error {
	w.PutU8(p.FadeCurve)
	w.PutU8(p.Resume)
	return p.Except.encode(w)
}

// ActionMuteParams covers Mute/Unmute in all their scope variants, which
// share an identical on-wire layout.
type ActionMuteParams struct {
	FadeCurve uint8
	Except    ActionExcept
}

func decodeActionMute(c *bitio.Cursor) (ActionMuteParams, error) {
	fc, err := c.U8()
	if err != nil {
		return ActionMuteParams{}, truncated("CAkActionMute.fade_curve")
	}
	except, err := decodeActionExcept(c)
	if err != nil {
		return ActionMuteParams{}, err
	}
	return ActionMuteParams{FadeCurve: fc, Except: except}, nil
}

func (p ActionMuteParams) encodeParams(w *bitio.Writer) error {
	w.PutU8(p.FadeCurve)
	return p.Except.encode(w)
}

// RandomizerModifier is a {base, min, max} randomization triple attached
// to a SetAkProp action's target value.
type RandomizerModifier struct {
	Base float32
	Min  float32
	Max  float32
}

// ActionSetAkPropParams covers every Set*/Reset* property action (volume,
// pitch, LPF, HPF, bus volume), which share an identical layout keyed only
// by which AkPropID the enclosing ActionType implies.
type ActionSetAkPropParams struct {
	FadeCurve     uint8
	ValueMeaning  uint8
	Randomizer    RandomizerModifier
	Except        ActionExcept
}

func decodeActionSetAkProp(c *bitio.Cursor) (ActionSetAkPropParams, error) {
	fc, err := c.U8()
	if err != nil {
		return ActionSetAkPropParams{}, truncated("CAkActionSetAkProp.fade_curve")
	}
	meaning, err := c.U8()
	if err != nil {
		return ActionSetAkPropParams{}, truncated("CAkActionParamsSetAkProp.value_meaning")
	}
	base, err1 := c.F32()
	min, err2 := c.F32()
	max, err3 := c.F32()
	if err1 != nil || err2 != nil || err3 != nil {
		return ActionSetAkPropParams{}, truncated("RandomizerModifier")
	}
	except, err := decodeActionExcept(c)
	if err != nil {
		return ActionSetAkPropParams{}, err
	}
	return ActionSetAkPropParams{
		FadeCurve:    fc,
		ValueMeaning: meaning,
		Randomizer:   RandomizerModifier{Base: base, Min: min, Max: max},
		Except:       except,
	}, nil
}

func (p ActionSetAkPropParams) encodeParams(w *bitio.Writer) error {
	w.PutU8(p.FadeCurve)
	w.PutU8(p.ValueMeaning)
	w.PutF32(p.Randomizer.Base)
	w.PutF32(p.Randomizer.Min)
	w.PutF32(p.Randomizer.Max)
	return p.Except.encode(w)
}

// ActionPlayEventParams is the PlayEvent action's (empty) payload.
type ActionPlayEventParams struct{}

func (ActionPlayEventParams) encodeParams(w *bitio.Writer) error { return nil }
