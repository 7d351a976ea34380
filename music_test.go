package bnk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMusicTrackBodyRoundTrip(t *testing.T) {
	body := &MusicTrackBody{
		Flags: 1,
		Sources: []AkBankSourceData{
			{Plugin: PluginVorbis, Source: SourceStreaming, Media: AkMediaInformation{SourceID: 1}},
		},
		Playlist: []AkTrackSrcInfo{
			{TrackID: 1, SourceID: 1, PlayAt: 0, SourceDuration: 1000},
		},
		SubtrackCount: 1,
		ClipItems: []ClipAutomation{
			{ClipIndex: 0, Type: ClipAutomationVolume, GraphPoints: []AkRTPCGraphPoint{{X: 0, Y: 1}}},
		},
		TrackType:     2,
		LookAheadTime: 500,
	}
	got := roundTripHIRCBody(t, HIRCMusicTrack, body).(*MusicTrackBody)
	assert.Equal(t, body, got)
}

func TestMusicSegmentBodyRoundTrip(t *testing.T) {
	body := &MusicSegmentBody{
		Duration: 2000.5,
		Markers: []AkMusicMarker{
			{ID: 1, Position: 0, Label: "Intro"},
			{ID: 2, Position: 500.5, Label: ""},
		},
	}
	got := roundTripHIRCBody(t, HIRCMusicSegment, body).(*MusicSegmentBody)
	assert.Equal(t, body, got)
}

func TestMusicRandomSequenceContainerBodyRoundTrip(t *testing.T) {
	body := &MusicRandomSequenceContainerBody{
		Playlist: []MusicRanSeqPlaylistItem{
			{SegmentID: 1, PlaylistItemID: 1, Weight: 50, UseWeight: 1},
			{SegmentID: 2, PlaylistItemID: 2, Weight: 50, UseWeight: 1},
		},
	}
	got := roundTripHIRCBody(t, HIRCMusicRandomSequenceContainer, body).(*MusicRandomSequenceContainerBody)
	assert.Equal(t, body, got)
}

func TestMusicSwitchContainerBodyRoundTrip(t *testing.T) {
	body := &MusicSwitchContainerBody{Trailing: []byte{0xAA, 0xBB}}
	got := roundTripHIRCBody(t, HIRCMusicSwitchContainer, body).(*MusicSwitchContainerBody)
	assert.Equal(t, body, got)
}

func TestMusicTransitionRuleWithObjectRoundTrip(t *testing.T) {
	body := &MusicRandomSequenceContainerBody{
		TransNode: MusicTransNodeParams{
			TransitionRules: []MusicTransitionRule{
				{
					SourceIDs:        []int32{1, 2},
					DestinationIDs:   []int32{3},
					HasTransitionObj: true,
					TransitionObj: MusicTransitionObject{
						SegmentID:    10,
						FadeOut:      AkMusicFade{TransitionTime: 100, Curve: 1, Offset: 0},
						FadeIn:       AkMusicFade{TransitionTime: 200, Curve: 2, Offset: 5},
						PlayPreEntry: 1,
					},
				},
			},
		},
	}
	got := roundTripHIRCBody(t, HIRCMusicRandomSequenceContainer, body).(*MusicRandomSequenceContainerBody)
	assert.Equal(t, body, got)
}
