// Package progress provides terminal progress reporting.
package progress

import (
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// Tracker wraps a progress bar for file processing.
type Tracker struct {
	bar *progressbar.ProgressBar
}

// NewTracker creates a progress bar for a known number of files.
func NewTracker(description string, total int) *Tracker {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerPadding: "░",
			BarStart:      "",
			BarEnd:        "",
		}),
		progressbar.OptionClearOnFinish(),
	)
	return &Tracker{bar: bar}
}

// Tick advances the bar by one unit. Safe for concurrent use.
func (t *Tracker) Tick() {
	t.bar.Add(1)
}

// FinishSuccess clears the bar and prints a completion message.
func (t *Tracker) FinishSuccess(format string, args ...any) {
	t.bar.Finish()
	color.Green(format, args...)
}
