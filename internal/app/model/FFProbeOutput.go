package model

type FFProbeOutput struct {
	Format struct {
		Duration float64 `json:"duration,string"`
	} `json:"format"`
	Streams []struct {
		CodecType string `json:"codec_type"`
		CodecName string `json:"codec_name"`
	} `json:"streams"`
}
