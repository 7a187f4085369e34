package analyzer

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

type ProgressConfig struct {
	Enabled bool
	Writer  io.Writer
}

// StageProgress renders one bar across the pipeline stages.
type StageProgress struct {
	container *mpb.Progress
	bar       *mpb.Bar
	enabled   bool
	mu        sync.Mutex
}

func NewStageProgress(config ProgressConfig, totalStages int) *StageProgress {
	if !config.Enabled {
		return &StageProgress{enabled: false}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	container := mpb.New(
		mpb.WithOutput(writer),
		mpb.WithRefreshRate(120*time.Millisecond),
	)

	bar := container.AddBar(int64(totalStages),
		mpb.PrependDecorators(
			decor.Name("Analyzing ", decor.WC{W: 10, C: decor.DindentRight}),
			decor.CountersNoUnit("(%d/%d)", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.NewPercentage("%.0f", decor.WCSyncSpace),
		),
	)

	return &StageProgress{container: container, bar: bar, enabled: true}
}

// StageDone advances the bar by one completed stage.
func (sp *StageProgress) StageDone() {
	if !sp.enabled || sp.bar == nil {
		return
	}
	sp.mu.Lock()
	defer sp.mu.Unlock()
	sp.bar.Increment()
}

// Abort drops the bar without completing it, used when a stage fails.
func (sp *StageProgress) Abort() {
	if sp.enabled && sp.bar != nil {
		sp.bar.Abort(true)
		sp.container.Wait()
	}
}

func (sp *StageProgress) Wait() {
	if sp.enabled && sp.container != nil {
		sp.container.Wait()
	}
}

func IsTTY(writer io.Writer) bool {
	if writer == nil {
		return false
	}

	if file, ok := writer.(*os.File); ok {
		stat, err := file.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

func ShouldShowProgress(disabled bool) bool {
	if disabled {
		return false
	}
	return IsTTY(os.Stderr)
}
