package analyzer

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"audio-insights/internal/app/audio"
	"audio-insights/internal/app/model"
	"audio-insights/internal/app/util/files"
)

// MaxFileSize is the Whisper API upload limit. A file of exactly this
// size is still accepted.
const MaxFileSize = 25 * 1024 * 1024

var supportedFormats = map[string]bool{
	"mp3":  true,
	"wav":  true,
	"m4a":  true,
	"mp4":  true,
	"mpeg": true,
	"mpga": true,
	"webm": true,
}

// SupportedFormatList returns the supported extensions as a sorted,
// comma-separated string for error messages.
func SupportedFormatList() string {
	formats := make([]string, 0, len(supportedFormats))
	for f := range supportedFormats {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	return strings.Join(formats, ", ")
}

// DurationProber reads the audio duration in minutes from file metadata.
type DurationProber func(filePath string) (float64, error)

// ValidateAudioFile checks existence, format and size before any network
// call, then probes the audio duration. A failed probe is logged and
// leaves DurationMinutes nil instead of failing the run.
func ValidateAudioFile(filePath string, probe DurationProber, logger *zap.Logger) (model.AudioInput, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return model.AudioInput{}, &NotFoundError{Path: filePath}
		}
		return model.AudioInput{}, &FileAccessError{Path: filePath, Err: err}
	}

	format := files.FileExtension(filePath)
	if !supportedFormats[format] {
		return model.AudioInput{}, &UnsupportedFormatError{Path: filePath, Format: format}
	}

	if info.Size() > MaxFileSize {
		return model.AudioInput{}, &FileTooLargeError{Path: filePath, Size: info.Size()}
	}

	input := model.AudioInput{
		FilePath: filePath,
		FileName: filepath.Base(filePath),
		Size:     info.Size(),
		Format:   format,
	}

	if probe == nil {
		probe = audio.GetAudioDurationMinutes
	}
	minutes, err := probe(filePath)
	if err != nil || minutes <= 0 {
		logger.Warn("could not determine audio duration, speaking speed will be unavailable",
			zap.String("file", input.FileName),
			zap.Error(err))
	} else {
		input.DurationMinutes = &minutes
	}

	return input, nil
}
