package model

import "strings"

// Transcript is the full text output of the speech-to-text call.
// Immutable after creation; both the summarizer and the analytics
// extractor read from it.
type Transcript struct {
	Text string
}

// CharLength returns the character length of the transcript text.
func (t Transcript) CharLength() int {
	return len(t.Text)
}

// WordCount returns the whitespace-delimited token count of the transcript.
func (t Transcript) WordCount() int {
	return len(strings.Fields(t.Text))
}

// Summary is the prose summary derived from a Transcript.
type Summary struct {
	Text string
}

// WordCount returns the whitespace-delimited token count of the summary.
func (s Summary) WordCount() int {
	return len(strings.Fields(s.Text))
}

// TopicMention is one frequently mentioned topic as judged by the
// generation model.
type TopicMention struct {
	Topic    string `json:"topic" validate:"required"`
	Mentions int    `json:"mentions" validate:"required,gt=0"`
}

// Analytics is the structured analytics report. SpeakingSpeedWPM and
// AudioDurationMinutes are nil when the audio duration is unknown, and
// serialize as JSON null.
type Analytics struct {
	WordCount            int            `json:"word_count"`
	SpeakingSpeedWPM     *int           `json:"speaking_speed_wpm"`
	AudioDurationMinutes *float64       `json:"audio_duration_minutes"`
	Topics               []TopicMention `json:"frequently_mentioned_topics"`
	Timestamp            string         `json:"timestamp"`
}

// RunResult bundles everything a completed run produced.
type RunResult struct {
	Input      AudioInput
	Transcript Transcript
	Summary    Summary
	Analytics  Analytics
	// Paths of the three written artifacts.
	TranscriptFile string
	SummaryFile    string
	AnalyticsFile  string
}
