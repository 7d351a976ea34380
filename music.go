package bnk

import (
	"github.com/kelindar/wwise-bnk/internal/bitio"
)

// AkMeterInfo is a music node's tempo/time-signature grid, used to snap
// transitions and stingers to musically meaningful boundaries.
type AkMeterInfo struct {
	GridPeriod           float64
	GridOffset           float64
	Tempo                float32
	TimeSignatureBeatCount uint8
	TimeSignatureBeatValue uint8
	MeterInfoFlag        uint8
}

func decodeAkMeterInfo(c *bitio.Cursor) (AkMeterInfo, error) {
	period, err1 := c.F64()
	offset, err2 := c.F64()
	tempo, err3 := c.F32()
	if err1 != nil || err2 != nil || err3 != nil {
		return AkMeterInfo{}, truncated("AkMeterInfo")
	}
	beatCount, err := c.U8()
	if err != nil {
		return AkMeterInfo{}, truncated("AkMeterInfo.time_signature_beat_count")
	}
	beatValue, err := c.U8()
	if err != nil {
		return AkMeterInfo{}, truncated("AkMeterInfo.time_signature_beat_value")
	}
	flag, err := c.U8()
	if err != nil {
		return AkMeterInfo{}, truncated("AkMeterInfo.meter_info_flag")
	}
	return AkMeterInfo{
		GridPeriod: period, GridOffset: offset, Tempo: tempo,
		TimeSignatureBeatCount: beatCount, TimeSignatureBeatValue: beatValue,
		MeterInfoFlag: flag,
	}, nil
}

func (m AkMeterInfo) encode(w *bitio.Writer) {
	w.PutF64(m.GridPeriod)
	w.PutF64(m.GridOffset)
	w.PutF32(m.Tempo)
	w.PutU8(m.TimeSignatureBeatCount)
	w.PutU8(m.TimeSignatureBeatValue)
	w.PutU8(m.MeterInfoFlag)
}

// Stinger is a one-shot musical phrase an event can trigger mid-playback.
type Stinger struct {
	TriggerID            uint32
	SegmentID            uint32
	SyncPlayAt           uint8
	CueFilterHash        uint32
	DontRepeatTime       int32
	SegmentLookAheadCount uint32
}

func decodeStinger(c *bitio.Cursor) (Stinger, error) {
	trigger, err := c.U32()
	if err != nil {
		return Stinger{}, truncated("CAkStinger.trigger_id")
	}
	segment, err := c.U32()
	if err != nil {
		return Stinger{}, truncated("CAkStinger.segment_id")
	}
	sync, err := c.U8()
	if err != nil {
		return Stinger{}, truncated("CAkStinger.sync_play_at")
	}
	filterHash, err := c.U32()
	if err != nil {
		return Stinger{}, truncated("CAkStinger.cue_filter_hash")
	}
	dontRepeat, err := c.I32()
	if err != nil {
		return Stinger{}, truncated("CAkStinger.dont_repeat_time")
	}
	lookAhead, err := c.U32()
	if err != nil {
		return Stinger{}, truncated("CAkStinger.segment_look_ahead_count")
	}
	return Stinger{
		TriggerID: trigger, SegmentID: segment, SyncPlayAt: sync,
		CueFilterHash: filterHash, DontRepeatTime: dontRepeat,
		SegmentLookAheadCount: lookAhead,
	}, nil
}

func (s Stinger) encode(w *bitio.Writer) {
	w.PutU32(s.TriggerID)
	w.PutU32(s.SegmentID)
	w.PutU8(s.SyncPlayAt)
	w.PutU32(s.CueFilterHash)
	w.PutI32(s.DontRepeatTime)
	w.PutU32(s.SegmentLookAheadCount)
}

// MusicNodeParams is the shared header of every music-hierarchy body:
// a node params block, the node's children, the music grid, and any
// stingers it can trigger.
type MusicNodeParams struct {
	Flags    uint8
	NodeBase NodeBaseParams
	Children []uint32
	Meter    AkMeterInfo
	Stingers []Stinger
}

func decodeMusicNodeParams(c *bitio.Cursor) (MusicNodeParams, error) {
	var m MusicNodeParams
	var err error

	m.Flags, err = c.U8()
	if err != nil {
		return MusicNodeParams{}, truncated("MusicNodeParams.flags")
	}
	m.NodeBase, err = decodeNodeBaseParams(c)
	if err != nil {
		return MusicNodeParams{}, err
	}
	m.Children, err = decodeChildren(c)
	if err != nil {
		return MusicNodeParams{}, err
	}
	m.Meter, err = decodeAkMeterInfo(c)
	if err != nil {
		return MusicNodeParams{}, err
	}
	stingerCount, err := c.U32()
	if err != nil {
		return MusicNodeParams{}, truncated("MusicNodeParams.stinger_count")
	}
	m.Stingers = make([]Stinger, stingerCount)
	for i := range m.Stingers {
		m.Stingers[i], err = decodeStinger(c)
		if err != nil {
			return MusicNodeParams{}, err
		}
	}
	return m, nil
}

func (m *MusicNodeParams) encode(w *bitio.Writer) error {
	w.PutU8(m.Flags)
	if err := m.NodeBase.encode(w); err != nil {
		return err
	}
	if err := encodeChildren(w, m.Children); err != nil {
		return err
	}
	m.Meter.encode(w)
	w.PutU32(uint32(len(m.Stingers)))
	for _, s := range m.Stingers {
		s.encode(w)
	}
	return nil
}

// AkMusicMarker marks a named cue position within a music segment.
type AkMusicMarker struct {
	ID       uint32
	Position float64
	Label    string
}

func decodeAkMusicMarker(c *bitio.Cursor) (AkMusicMarker, error) {
	id, err := c.U32()
	if err != nil {
		return AkMusicMarker{}, truncated("AkMusicMarkerWwise.id")
	}
	pos, err := c.F64()
	if err != nil {
		return AkMusicMarker{}, truncated("AkMusicMarkerWwise.position")
	}
	strLen, err := c.U32()
	if err != nil {
		return AkMusicMarker{}, truncated("AkMusicMarkerWwise.string_length")
	}
	var label string
	if strLen > 0 {
		b, err := c.Bytes(int(strLen))
		if err != nil {
			return AkMusicMarker{}, truncated("AkMusicMarkerWwise.string")
		}
		if b[len(b)-1] == 0 {
			b = b[:len(b)-1]
		}
		label = lossyUTF8(b)
	}
	return AkMusicMarker{ID: id, Position: pos, Label: label}, nil
}

func (m AkMusicMarker) encode(w *bitio.Writer) {
	w.PutU32(m.ID)
	w.PutF64(m.Position)
	if m.Label == "" {
		w.PutU32(0)
		return
	}
	b := append([]byte(m.Label), 0)
	w.PutU32(uint32(len(b)))
	w.PutBytes(b)
}

// MusicSegmentBody is the HIRCMusicSegment (body_type 10) payload: a
// bounded music node carrying its own duration and named markers.
type MusicSegmentBody struct {
	MusicNode MusicNodeParams
	Duration  float64
	Markers   []AkMusicMarker
}

func decodeMusicSegmentBody(c *bitio.Cursor) (*MusicSegmentBody, error) {
	node, err := decodeMusicNodeParams(c)
	if err != nil {
		return nil, err
	}
	duration, err := c.F64()
	if err != nil {
		return nil, truncated("CAkMusicSegment.duration")
	}
	markerCount, err := c.U32()
	if err != nil {
		return nil, truncated("CAkMusicSegment.marker_count")
	}
	markers := make([]AkMusicMarker, markerCount)
	for i := range markers {
		markers[i], err = decodeAkMusicMarker(c)
		if err != nil {
			return nil, err
		}
	}
	return &MusicSegmentBody{MusicNode: node, Duration: duration, Markers: markers}, nil
}

func (m *MusicSegmentBody) encodeBody(w *bitio.Writer) error {
	if err := m.MusicNode.encode(w); err != nil {
		return err
	}
	w.PutF64(m.Duration)
	w.PutU32(uint32(len(m.Markers)))
	for _, mk := range m.Markers {
		mk.encode(w)
	}
	return nil
}

// AkTrackSrcInfo places one of a music track's sources on its playlist
// timeline.
type AkTrackSrcInfo struct {
	TrackID         uint32
	SourceID        uint32
	EventID         uint32
	PlayAt          float64
	BeginTrimOffset float64
	EndTrimOffset   float64
	SourceDuration  float64
}

func decodeAkTrackSrcInfo(c *bitio.Cursor) (AkTrackSrcInfo, error) {
	track, err := c.U32()
	if err != nil {
		return AkTrackSrcInfo{}, truncated("AkTrackSrcInfo.track_id")
	}
	source, err := c.U32()
	if err != nil {
		return AkTrackSrcInfo{}, truncated("AkTrackSrcInfo.source_id")
	}
	event, err := c.U32()
	if err != nil {
		return AkTrackSrcInfo{}, truncated("AkTrackSrcInfo.event_id")
	}
	playAt, err1 := c.F64()
	beginTrim, err2 := c.F64()
	endTrim, err3 := c.F64()
	duration, err4 := c.F64()
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return AkTrackSrcInfo{}, truncated("AkTrackSrcInfo")
	}
	return AkTrackSrcInfo{
		TrackID: track, SourceID: source, EventID: event, PlayAt: playAt,
		BeginTrimOffset: beginTrim, EndTrimOffset: endTrim, SourceDuration: duration,
	}, nil
}

func (t AkTrackSrcInfo) encode(w *bitio.Writer) {
	w.PutU32(t.TrackID)
	w.PutU32(t.SourceID)
	w.PutU32(t.EventID)
	w.PutF64(t.PlayAt)
	w.PutF64(t.BeginTrimOffset)
	w.PutF64(t.EndTrimOffset)
	w.PutF64(t.SourceDuration)
}

// ClipAutomationType selects which per-clip parameter a clip automation
// curve drives.
type ClipAutomationType uint32

const (
	ClipAutomationVolume ClipAutomationType = iota
	ClipAutomationLPF
	ClipAutomationHPF
	ClipAutomationFadeIn
	ClipAutomationFadeOut
)

// ClipAutomation is one clip's envelope curve for ClipAutomationType.
type ClipAutomation struct {
	ClipIndex   uint32
	Type        ClipAutomationType
	GraphPoints []AkRTPCGraphPoint
}

func decodeClipAutomation(c *bitio.Cursor) (ClipAutomation, error) {
	idx, err := c.U32()
	if err != nil {
		return ClipAutomation{}, truncated("AkClipAutomation.clip_index")
	}
	typ, err := c.U32()
	if err != nil {
		return ClipAutomation{}, truncated("AkClipAutomation.auto_type")
	}
	pointCount, err := c.U32()
	if err != nil {
		return ClipAutomation{}, truncated("AkClipAutomation.graph_point_count")
	}
	points := make([]AkRTPCGraphPoint, pointCount)
	for i := range points {
		points[i], err = decodeAkRTPCGraphPoint(c)
		if err != nil {
			return ClipAutomation{}, err
		}
	}
	return ClipAutomation{ClipIndex: idx, Type: ClipAutomationType(typ), GraphPoints: points}, nil
}

func (c ClipAutomation) encode(w *bitio.Writer) {
	w.PutU32(c.ClipIndex)
	w.PutU32(uint32(c.Type))
	w.PutU32(uint32(len(c.GraphPoints)))
	for _, p := range c.GraphPoints {
		p.encode(w)
	}
}

// MusicTrackBody is the HIRCMusicTrack (body_type 11) payload: a set of
// playable sources, their placement on the track's timeline, and clip
// automation curves.
type MusicTrackBody struct {
	Flags        uint8
	Sources      []AkBankSourceData
	Playlist     []AkTrackSrcInfo
	SubtrackCount uint32
	ClipItems    []ClipAutomation
	NodeBase     NodeBaseParams
	TrackType    uint8
	LookAheadTime int32
}

func decodeMusicTrackBody(c *bitio.Cursor) (*MusicTrackBody, error) {
	var m MusicTrackBody
	var err error

	m.Flags, err = c.U8()
	if err != nil {
		return nil, truncated("CAkMusicTrack.flags")
	}
	srcCount, err := c.U32()
	if err != nil {
		return nil, truncated("CAkMusicTrack.source_count")
	}
	m.Sources = make([]AkBankSourceData, srcCount)
	for i := range m.Sources {
		m.Sources[i], err = decodeAkBankSourceData(c)
		if err != nil {
			return nil, err
		}
	}

	playlistCount, err := c.U32()
	if err != nil {
		return nil, truncated("CAkMusicTrack.playlist_item_count")
	}
	m.Playlist = make([]AkTrackSrcInfo, playlistCount)
	for i := range m.Playlist {
		m.Playlist[i], err = decodeAkTrackSrcInfo(c)
		if err != nil {
			return nil, err
		}
	}

	if playlistCount != 0 {
		m.SubtrackCount, err = c.U32()
		if err != nil {
			return nil, truncated("CAkMusicTrack.subtrack_count")
		}
	}

	clipCount, err := c.U32()
	if err != nil {
		return nil, truncated("CAkMusicTrack.clip_item_count")
	}
	m.ClipItems = make([]ClipAutomation, clipCount)
	for i := range m.ClipItems {
		m.ClipItems[i], err = decodeClipAutomation(c)
		if err != nil {
			return nil, err
		}
	}

	m.NodeBase, err = decodeNodeBaseParams(c)
	if err != nil {
		return nil, err
	}
	m.TrackType, err = c.U8()
	if err != nil {
		return nil, truncated("CAkMusicTrack.track_type")
	}
	m.LookAheadTime, err = c.I32()
	if err != nil {
		return nil, truncated("CAkMusicTrack.look_ahead_time")
	}

	return &m, nil
}

func (m *MusicTrackBody) encodeBody(w *bitio.Writer) error {
	w.PutU8(m.Flags)
	w.PutU32(uint32(len(m.Sources)))
	for i := range m.Sources {
		if err := m.Sources[i].encode(w); err != nil {
			return err
		}
	}

	w.PutU32(uint32(len(m.Playlist)))
	for _, p := range m.Playlist {
		p.encode(w)
	}

	if len(m.Playlist) != 0 {
		w.PutU32(m.SubtrackCount)
	}

	w.PutU32(uint32(len(m.ClipItems)))
	for _, ci := range m.ClipItems {
		ci.encode(w)
	}

	if err := m.NodeBase.encode(w); err != nil {
		return err
	}
	w.PutU8(m.TrackType)
	w.PutI32(m.LookAheadTime)
	return nil
}

// AkMusicFade is a transition's fade-in or fade-out envelope.
type AkMusicFade struct {
	TransitionTime int32
	Curve          uint8
	Offset         int32
}

func decodeAkMusicFade(c *bitio.Cursor) (AkMusicFade, error) {
	t, err := c.I32()
	if err != nil {
		return AkMusicFade{}, truncated("AkMusicFade.transition_time")
	}
	curve, err := c.U8()
	if err != nil {
		return AkMusicFade{}, truncated("AkMusicFade.curve")
	}
	offset, err := c.I32()
	if err != nil {
		return AkMusicFade{}, truncated("AkMusicFade.offset")
	}
	return AkMusicFade{TransitionTime: t, Curve: curve, Offset: offset}, nil
}

func (f AkMusicFade) encode(w *bitio.Writer) {
	w.PutI32(f.TransitionTime)
	w.PutU8(f.Curve)
	w.PutI32(f.Offset)
}

// MusicTransitionObject names the stinger-like segment a transition plays
// through, with its own fade-out/fade-in envelopes.
type MusicTransitionObject struct {
	SegmentID    uint32
	FadeOut      AkMusicFade
	FadeIn       AkMusicFade
	PlayPreEntry uint8
	PlayPostExit uint8
}

// MusicTransitionSrcRule is the source-side half of a transition rule.
type MusicTransitionSrcRule struct {
	TransitionTime int32
	FadeCurve      uint8
	FadeOffset     int32
	SyncType       uint8
	CueFilterHash  uint32
	PlayPostExit   uint8
}

// MusicTransitionDstRule is the destination-side half of a transition
// rule.
type MusicTransitionDstRule struct {
	TransitionTime                 int32
	FadeCurve                      uint8
	FadeOffset                     int32
	CueFilterHash                  uint32
	JumpToID                       int32
	JumpToType                     uint16
	EntryType                      uint16
	PlayPreEntry                   uint8
	DestinationMatchSourceCueName  uint8
}

// MusicTransitionRule binds a set of source segments to a set of
// destination segments with the fade/jump behavior that bridges them.
type MusicTransitionRule struct {
	SourceIDs        []int32
	DestinationIDs   []int32
	SrcRule          MusicTransitionSrcRule
	DstRule          MusicTransitionDstRule
	HasTransitionObj bool
	TransitionObj    MusicTransitionObject
}

func decodeMusicTransitionRule(c *bitio.Cursor) (MusicTransitionRule, error) {
	var r MusicTransitionRule

	srcCount, err := c.U32()
	if err != nil {
		return MusicTransitionRule{}, truncated("AkMusicTransitionRule.source_transition_rule_count")
	}
	r.SourceIDs = make([]int32, srcCount)
	for i := range r.SourceIDs {
		r.SourceIDs[i], err = c.I32()
		if err != nil {
			return MusicTransitionRule{}, truncated("AkMusicTransitionRule.source_ids")
		}
	}

	dstCount, err := c.U32()
	if err != nil {
		return MusicTransitionRule{}, truncated("AkMusicTransitionRule.destination_transition_rule_count")
	}
	r.DestinationIDs = make([]int32, dstCount)
	for i := range r.DestinationIDs {
		r.DestinationIDs[i], err = c.I32()
		if err != nil {
			return MusicTransitionRule{}, truncated("AkMusicTransitionRule.destination_ids")
		}
	}

	transTime, err := c.I32()
	if err != nil {
		return MusicTransitionRule{}, truncated("AkMusicTransSrcRule.transition_time")
	}
	fadeCurve, err := c.U8()
	if err != nil {
		return MusicTransitionRule{}, truncated("AkMusicTransSrcRule.fade_curve")
	}
	fadeOffset, err := c.I32()
	if err != nil {
		return MusicTransitionRule{}, truncated("AkMusicTransSrcRule.fade_offset")
	}
	syncType, err := c.U8()
	if err != nil {
		return MusicTransitionRule{}, truncated("AkMusicTransSrcRule.sync_type")
	}
	cueHash, err := c.U32()
	if err != nil {
		return MusicTransitionRule{}, truncated("AkMusicTransSrcRule.clue_filter_hash")
	}
	playPostExit, err := c.U8()
	if err != nil {
		return MusicTransitionRule{}, truncated("AkMusicTransSrcRule.play_post_exit")
	}
	r.SrcRule = MusicTransitionSrcRule{
		TransitionTime: transTime, FadeCurve: fadeCurve, FadeOffset: fadeOffset,
		SyncType: syncType, CueFilterHash: cueHash, PlayPostExit: playPostExit,
	}

	dstTransTime, err := c.I32()
	if err != nil {
		return MusicTransitionRule{}, truncated("AkMusicTransDstRule.transition_time")
	}
	dstFadeCurve, err := c.U8()
	if err != nil {
		return MusicTransitionRule{}, truncated("AkMusicTransDstRule.fade_curve")
	}
	dstFadeOffset, err := c.I32()
	if err != nil {
		return MusicTransitionRule{}, truncated("AkMusicTransDstRule.fade_offset")
	}
	dstCueHash, err := c.U32()
	if err != nil {
		return MusicTransitionRule{}, truncated("AkMusicTransDstRule.clue_filter_hash")
	}
	jumpToID, err := c.I32()
	if err != nil {
		return MusicTransitionRule{}, truncated("AkMusicTransDstRule.jump_to_id")
	}
	jumpToType, err := c.U16()
	if err != nil {
		return MusicTransitionRule{}, truncated("AkMusicTransDstRule.jump_to_type")
	}
	entryType, err := c.U16()
	if err != nil {
		return MusicTransitionRule{}, truncated("AkMusicTransDstRule.entry_type")
	}
	playPreEntry, err := c.U8()
	if err != nil {
		return MusicTransitionRule{}, truncated("AkMusicTransDstRule.play_pre_entry")
	}
	matchCue, err := c.U8()
	if err != nil {
		return MusicTransitionRule{}, truncated("AkMusicTransDstRule.destination_match_source_cue_name")
	}
	r.DstRule = MusicTransitionDstRule{
		TransitionTime: dstTransTime, FadeCurve: dstFadeCurve, FadeOffset: dstFadeOffset,
		CueFilterHash: dstCueHash, JumpToID: jumpToID, JumpToType: jumpToType,
		EntryType: entryType, PlayPreEntry: playPreEntry, DestinationMatchSourceCueName: matchCue,
	}

	allocFlag, err := c.U8()
	if err != nil {
		return MusicTransitionRule{}, truncated("AkMusicTransitionRule.alloc_trans_object_flag")
	}
	r.HasTransitionObj = allocFlag != 0
	if r.HasTransitionObj {
		segID, err := c.U32()
		if err != nil {
			return MusicTransitionRule{}, truncated("AkMusicTransitionObject.segment_id")
		}
		fadeOut, err := decodeAkMusicFade(c)
		if err != nil {
			return MusicTransitionRule{}, err
		}
		fadeIn, err := decodeAkMusicFade(c)
		if err != nil {
			return MusicTransitionRule{}, err
		}
		prePlay, err := c.U8()
		if err != nil {
			return MusicTransitionRule{}, truncated("AkMusicTransitionObject.play_pre_entry")
		}
		postExit, err := c.U8()
		if err != nil {
			return MusicTransitionRule{}, truncated("AkMusicTransitionObject.play_post_exit")
		}
		r.TransitionObj = MusicTransitionObject{
			SegmentID: segID, FadeOut: fadeOut, FadeIn: fadeIn,
			PlayPreEntry: prePlay, PlayPostExit: postExit,
		}
	}

	return r, nil
}

func (r MusicTransitionRule) encode(w *bitio.Writer) {
	w.PutU32(uint32(len(r.SourceIDs)))
	for _, id := range r.SourceIDs {
		w.PutI32(id)
	}
	w.PutU32(uint32(len(r.DestinationIDs)))
	for _, id := range r.DestinationIDs {
		w.PutI32(id)
	}

	w.PutI32(r.SrcRule.TransitionTime)
	w.PutU8(r.SrcRule.FadeCurve)
	w.PutI32(r.SrcRule.FadeOffset)
	w.PutU8(r.SrcRule.SyncType)
	w.PutU32(r.SrcRule.CueFilterHash)
	w.PutU8(r.SrcRule.PlayPostExit)

	w.PutI32(r.DstRule.TransitionTime)
	w.PutU8(r.DstRule.FadeCurve)
	w.PutI32(r.DstRule.FadeOffset)
	w.PutU32(r.DstRule.CueFilterHash)
	w.PutI32(r.DstRule.JumpToID)
	w.PutU16(r.DstRule.JumpToType)
	w.PutU16(r.DstRule.EntryType)
	w.PutU8(r.DstRule.PlayPreEntry)
	w.PutU8(r.DstRule.DestinationMatchSourceCueName)

	w.PutU8(boolToByte(r.HasTransitionObj))
	if r.HasTransitionObj {
		w.PutU32(r.TransitionObj.SegmentID)
		r.TransitionObj.FadeOut.encode(w)
		r.TransitionObj.FadeIn.encode(w)
		w.PutU8(r.TransitionObj.PlayPreEntry)
		w.PutU8(r.TransitionObj.PlayPostExit)
	}
}

// MusicTransNodeParams is a music-switch node's params plus the set of
// transition rules governing how playback moves between its children.
type MusicTransNodeParams struct {
	MusicNode       MusicNodeParams
	TransitionRules []MusicTransitionRule
}

func decodeMusicTransNodeParams(c *bitio.Cursor) (MusicTransNodeParams, error) {
	node, err := decodeMusicNodeParams(c)
	if err != nil {
		return MusicTransNodeParams{}, err
	}
	ruleCount, err := c.U32()
	if err != nil {
		return MusicTransNodeParams{}, truncated("MusicTransNodeParams.transition_rule_count")
	}
	rules := make([]MusicTransitionRule, ruleCount)
	for i := range rules {
		rules[i], err = decodeMusicTransitionRule(c)
		if err != nil {
			return MusicTransNodeParams{}, err
		}
	}
	return MusicTransNodeParams{MusicNode: node, TransitionRules: rules}, nil
}

func (m *MusicTransNodeParams) encode(w *bitio.Writer) error {
	if err := m.MusicNode.encode(w); err != nil {
		return err
	}
	w.PutU32(uint32(len(m.TransitionRules)))
	for _, r := range m.TransitionRules {
		r.encode(w)
	}
	return nil
}

// MusicRandomSequenceContainerBody is the HIRCMusicRandomSequenceContainer
// (body_type 13) payload.
type MusicRandomSequenceContainerBody struct {
	TransNode MusicTransNodeParams
	Playlist  []MusicRanSeqPlaylistItem
}

// MusicRanSeqPlaylistItem is one entry of a music random/sequence
// container's playlist, possibly itself a group of nested items
// (ChildCount names how many of the following entries it contains,
// matching the original flattened-tree wire encoding).
type MusicRanSeqPlaylistItem struct {
	SegmentID        uint32
	PlaylistItemID   int32
	ChildCount       uint32
	ERSType          uint32
	LoopBase         int16
	LoopMin          int16
	LoopMax          int16
	Weight           uint32
	AvoidRepeatCount uint16
	UseWeight        uint8
	Shuffle          uint8
}

func decodeMusicRanSeqPlaylistItem(c *bitio.Cursor) (MusicRanSeqPlaylistItem, error) {
	segID, err := c.U32()
	if err != nil {
		return MusicRanSeqPlaylistItem{}, truncated("AkMusicRanSeqPlaylistItem.segment_id")
	}
	itemID, err := c.I32()
	if err != nil {
		return MusicRanSeqPlaylistItem{}, truncated("AkMusicRanSeqPlaylistItem.playlist_item_id")
	}
	childCount, err := c.U32()
	if err != nil {
		return MusicRanSeqPlaylistItem{}, truncated("AkMusicRanSeqPlaylistItem.child_count")
	}
	ersType, err := c.U32()
	if err != nil {
		return MusicRanSeqPlaylistItem{}, truncated("AkMusicRanSeqPlaylistItem.ers_type")
	}
	loopBase, err := c.I16()
	if err != nil {
		return MusicRanSeqPlaylistItem{}, truncated("AkMusicRanSeqPlaylistItem.loop_base")
	}
	loopMin, err := c.I16()
	if err != nil {
		return MusicRanSeqPlaylistItem{}, truncated("AkMusicRanSeqPlaylistItem.loop_min")
	}
	loopMax, err := c.I16()
	if err != nil {
		return MusicRanSeqPlaylistItem{}, truncated("AkMusicRanSeqPlaylistItem.loop_max")
	}
	weight, err := c.U32()
	if err != nil {
		return MusicRanSeqPlaylistItem{}, truncated("AkMusicRanSeqPlaylistItem.weight")
	}
	avoidRepeat, err := c.U16()
	if err != nil {
		return MusicRanSeqPlaylistItem{}, truncated("AkMusicRanSeqPlaylistItem.avoid_repeat_count")
	}
	useWeight, err := c.U8()
	if err != nil {
		return MusicRanSeqPlaylistItem{}, truncated("AkMusicRanSeqPlaylistItem.use_weight")
	}
	shuffle, err := c.U8()
	if err != nil {
		return MusicRanSeqPlaylistItem{}, truncated("AkMusicRanSeqPlaylistItem.shuffle")
	}
	return MusicRanSeqPlaylistItem{
		SegmentID: segID, PlaylistItemID: itemID, ChildCount: childCount, ERSType: ersType,
		LoopBase: loopBase, LoopMin: loopMin, LoopMax: loopMax, Weight: weight,
		AvoidRepeatCount: avoidRepeat, UseWeight: useWeight, Shuffle: shuffle,
	}, nil
}

func (p MusicRanSeqPlaylistItem) encode(w *bitio.Writer) {
	w.PutU32(p.SegmentID)
	w.PutI32(p.PlaylistItemID)
	w.PutU32(p.ChildCount)
	w.PutU32(p.ERSType)
	w.PutI16(p.LoopBase)
	w.PutI16(p.LoopMin)
	w.PutI16(p.LoopMax)
	w.PutU32(p.Weight)
	w.PutU16(p.AvoidRepeatCount)
	w.PutU8(p.UseWeight)
	w.PutU8(p.Shuffle)
}

func decodeMusicRandomSequenceContainerBody(c *bitio.Cursor) (*MusicRandomSequenceContainerBody, error) {
	transNode, err := decodeMusicTransNodeParams(c)
	if err != nil {
		return nil, err
	}
	itemCount, err := c.U32()
	if err != nil {
		return nil, truncated("CAkMusicRanSeqCntr.playlist_item_count")
	}
	items := make([]MusicRanSeqPlaylistItem, itemCount)
	for i := range items {
		items[i], err = decodeMusicRanSeqPlaylistItem(c)
		if err != nil {
			return nil, err
		}
	}
	return &MusicRandomSequenceContainerBody{TransNode: transNode, Playlist: items}, nil
}

func (m *MusicRandomSequenceContainerBody) encodeBody(w *bitio.Writer) error {
	if err := m.TransNode.encode(w); err != nil {
		return err
	}
	w.PutU32(uint32(len(m.Playlist)))
	for _, item := range m.Playlist {
		item.encode(w)
	}
	return nil
}

// MusicSwitchContainerBody is the HIRCMusicSwitchContainer (body_type 12)
// payload: a music-transition node whose active child is driven by a
// switch/state value rather than a fixed playlist. The format leaves this
// object's switch-to-child association table under-specified beyond the
// shared transition-node header, so this codec treats the remainder of the
// body as opaque bytes recorded verbatim (see DESIGN.md).
type MusicSwitchContainerBody struct {
	TransNode MusicTransNodeParams
	Trailing  []byte
}

func decodeMusicSwitchContainerBody(c *bitio.Cursor, size int) (*MusicSwitchContainerBody, error) {
	start := c.Pos()
	transNode, err := decodeMusicTransNodeParams(c)
	if err != nil {
		return nil, err
	}
	consumed := c.Pos() - start
	remaining := size - consumed
	if remaining < 0 {
		return nil, lengthMismatch("CAkMusicSwitchCntr", size, consumed)
	}
	trailing, err := c.Bytes(remaining)
	if err != nil {
		return nil, truncated("CAkMusicSwitchCntr.trailing")
	}
	return &MusicSwitchContainerBody{TransNode: transNode, Trailing: trailing}, nil
}

func (m *MusicSwitchContainerBody) encodeBody(w *bitio.Writer) error {
	if err := m.TransNode.encode(w); err != nil {
		return err
	}
	w.PutBytes(m.Trailing)
	return nil
}
