package analyzer

import "fmt"

// NotFoundError reports a missing input file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

// FileAccessError reports an input file that exists but could not be
// inspected, such as a permission failure or a path through a regular
// file.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot access file %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// UnsupportedFormatError reports an input extension outside the
// supported set.
type UnsupportedFormatError struct {
	Path   string
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format: .%s (supported: %s)", e.Format, SupportedFormatList())
}

// FileTooLargeError reports an input above the 25 MB service limit.
type FileTooLargeError struct {
	Path string
	Size int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("file too large: %.1fMB (max: 25MB)", float64(e.Size)/1024/1024)
}

// EmptyTranscriptError reports an empty or whitespace-only transcript
// handed to a downstream stage.
type EmptyTranscriptError struct{}

func (e *EmptyTranscriptError) Error() string {
	return "transcript is empty"
}

// TranscriptionError wraps a speech-to-text service failure.
type TranscriptionError struct {
	Err error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("transcription failed: %v", e.Err)
}

func (e *TranscriptionError) Unwrap() error { return e.Err }

// SummarizationError wraps a text-generation failure in the summary stage.
type SummarizationError struct {
	Err error
}

func (e *SummarizationError) Error() string {
	return fmt.Sprintf("summary generation failed: %v", e.Err)
}

func (e *SummarizationError) Unwrap() error { return e.Err }

// AnalyticsExtractionError wraps a text-generation failure in the
// analytics stage.
type AnalyticsExtractionError struct {
	Err error
}

func (e *AnalyticsExtractionError) Error() string {
	return fmt.Sprintf("analytics extraction failed: %v", e.Err)
}

func (e *AnalyticsExtractionError) Unwrap() error { return e.Err }

// SchemaValidationError reports structured model output that does not
// match the expected schema.
type SchemaValidationError struct {
	Detail string
}

func (e *SchemaValidationError) Error() string {
	return fmt.Sprintf("malformed analytics output: %s", e.Detail)
}

// DirectoryCreationError reports a failure to create the output directory.
type DirectoryCreationError struct {
	Dir string
	Err error
}

func (e *DirectoryCreationError) Error() string {
	return fmt.Sprintf("failed to create output directory %s: %v", e.Dir, e.Err)
}

func (e *DirectoryCreationError) Unwrap() error { return e.Err }

// FileWriteError reports a single failed artifact write. Writes are
// independent; one failure does not roll back files already on disk.
type FileWriteError struct {
	Path string
	Err  error
}

func (e *FileWriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *FileWriteError) Unwrap() error { return e.Err }
