package bnk

import "github.com/kelindar/wwise-bnk/internal/bitio"

func decodeAkBankSourceData(c *bitio.Cursor) (AkBankSourceData, error) {
	pluginRaw, err := c.U32()
	if err != nil {
		return AkBankSourceData{}, truncated("AkBankSourceData.plugin")
	}
	plugin := PluginID(pluginRaw)

	srcRaw, err := c.U8()
	if err != nil {
		return AkBankSourceData{}, truncated("AkBankSourceData.source_type")
	}
	if srcRaw > uint8(SourceStreaming) {
		return AkBankSourceData{}, unknownVariant("AkBankSourceData.source_type", uint32(srcRaw))
	}

	sourceID, err := c.U32()
	if err != nil {
		return AkBankSourceData{}, truncated("AkMediaInformation.source_id")
	}
	mediaSize, err := c.U32()
	if err != nil {
		return AkBankSourceData{}, truncated("AkMediaInformation.in_memory_media_size")
	}
	flags, err := c.U8()
	if err != nil {
		return AkBankSourceData{}, truncated("AkMediaInformation.source_flags")
	}

	b := AkBankSourceData{
		Plugin: plugin,
		Source: SourceType(srcRaw),
		Media: AkMediaInformation{
			SourceID:          sourceID,
			InMemoryMediaSize: mediaSize,
			SourceFlags:       flags,
		},
	}

	if !plugin.HasParams() {
		return b, nil
	}

	paramsSize, err := c.U32()
	if err != nil {
		return AkBankSourceData{}, truncated("AkBankSourceData.params_size")
	}
	b.Params, err = c.Bytes(int(paramsSize))
	if err != nil {
		return AkBankSourceData{}, truncated("AkBankSourceData.params")
	}
	return b, nil
}

func (b *AkBankSourceData) encode(w *bitio.Writer) error {
	w.PutU32(uint32(b.Plugin))
	w.PutU8(uint8(b.Source))
	w.PutU32(b.Media.SourceID)
	w.PutU32(b.Media.InMemoryMediaSize)
	w.PutU8(b.Media.SourceFlags)

	if !b.Plugin.HasParams() {
		return nil
	}
	if len(b.Params) > 0xFFFFFFFF {
		return encodeFailed("AkBankSourceData.params_size overflow")
	}
	w.PutU32(uint32(len(b.Params)))
	w.PutBytes(b.Params)
	return nil
}
