package audio

import (
	"encoding/json"
	"fmt"
	"os/exec"

	"audio-insights/internal/app/model"
)

// GetAudioDurationMinutes probes the audio file with ffprobe and returns
// its duration in minutes. Callers treat failures as non-fatal: the
// pipeline degrades to an unknown duration instead of aborting.
func GetAudioDurationMinutes(filePath string) (float64, error) {
	cmd := exec.Command("ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-print_format", "json",
		filePath)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed: %w", err)
	}

	var probe model.FFProbeOutput
	if err := json.Unmarshal(output, &probe); err != nil {
		return 0, fmt.Errorf("ffprobe output parse failed: %w", err)
	}

	if probe.Format.Duration <= 0 {
		return 0, fmt.Errorf("ffprobe reported no duration for %s", filePath)
	}
	return probe.Format.Duration / 60.0, nil
}
