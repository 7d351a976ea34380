package bnk

import "fmt"

// PluginID is the 32-bit plugin identifier stamped on every playable
// source and effect: the high bits name a company/type and the low
// nibble names the plugin's category, the only part of the tagging this
// codec cares about. Unlike the format's other closed tags, a bank can
// reference a third-party plugin this codec has never heard of, so
// PluginID stays an open numeric type with a table of the well-known
// built-in values rather than a decode-time-validated enum.
type PluginID uint32

// Well-known built-in plugin ids. The full catalog Wwise ships with runs
// past a hundred effect/source ids across first- and third-party vendors;
// only the ones exercised by tests and the codec's own reasoning
// (has_params) are named here. See DESIGN.md for why the rest are left as
// bare PluginID values rather than transcribed in full.
const (
	PluginNone           PluginID = 0x00000000
	PluginBANK           PluginID = 0x00000001
	PluginPCM            PluginID = 0x00010001
	PluginADPCM          PluginID = 0x00020001
	PluginXMA            PluginID = 0x00030001
	PluginVorbis         PluginID = 0x00040001
	PluginPCMEx          PluginID = 0x00070001
	PluginExternalSource PluginID = 0x00080001
	PluginXWMA           PluginID = 0x00090001
	PluginAAC            PluginID = 0x000A0001
	PluginOpusNX         PluginID = 0x00110001
	PluginOpus           PluginID = 0x00130001
	PluginWwiseSine      PluginID = 0x00640002
	PluginWwiseSilence   PluginID = 0x00650002
)

var pluginNames = map[PluginID]string{
	PluginNone:           "None",
	PluginBANK:           "BANK",
	PluginPCM:            "PCM",
	PluginADPCM:          "ADPCM",
	PluginXMA:            "XMA",
	PluginVorbis:         "Vorbis",
	PluginPCMEx:          "PCMEx",
	PluginExternalSource: "ExternalSource",
	PluginXWMA:           "XWMA",
	PluginAAC:            "AAC",
	PluginOpusNX:         "OpusNX",
	PluginOpus:           "Opus",
	PluginWwiseSine:      "WwiseSine",
	PluginWwiseSilence:   "WwiseSilence",
}

// String returns the well-known plugin name, or a hex fallback.
func (p PluginID) String() string {
	if name, ok := pluginNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PluginID(0x%08X)", uint32(p))
}

// HasParams reports whether a source using this plugin id carries an
// inline plugin-parameter blob: true iff the low nibble isn't 0x2 (the
// "source" category, whose sources carry no inline params block).
func (p PluginID) HasParams() bool {
	return uint32(p)&0x0F != 0x2
}

// SourceType selects where a source's media bytes actually live.
type SourceType uint8

const (
	SourceEmbedded SourceType = iota
	SourcePrefetchStreaming
	SourceStreaming
)

func (t SourceType) String() string {
	switch t {
	case SourceEmbedded:
		return "Embedded"
	case SourcePrefetchStreaming:
		return "PrefetchStreaming"
	case SourceStreaming:
		return "Streaming"
	default:
		return fmt.Sprintf("SourceType(%d)", uint8(t))
	}
}

// AkMediaInformation names the media a source's bytes resolve to: a WEM id
// (matched against DIDX), the in-memory size Wwise expects to find at that
// id, and a vendor flags byte.
type AkMediaInformation struct {
	SourceID         uint32
	InMemoryMediaSize uint32
	SourceFlags      uint8
}

// AkBankSourceData is the source descriptor shared by CAkSound and every
// CAkMusicTrack playlist entry: which plugin decodes it, where its bytes
// live, and (when the plugin carries inline parameters) the parameter
// blob itself.
type AkBankSourceData struct {
	Plugin  PluginID
	Source  SourceType
	Media   AkMediaInformation
	Params  []byte
}
