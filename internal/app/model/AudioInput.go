package model

// AudioInput describes a validated audio file ready for transcription.
type AudioInput struct {
	FilePath string
	FileName string
	// Size in bytes, format as lowercase extension without the dot.
	Size   int64
	Format string
	// DurationMinutes is nil when the ffprobe metadata read failed.
	DurationMinutes *float64
}
