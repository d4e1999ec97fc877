package ui

import (
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

// NewCountdownBar returns a bar with one step per second of d, suitable for
// showing a fixed wait.
//
// Example:
//
//	bar := ui.NewCountdownBar(5*time.Second, "Aguardando", os.Stdout)
//	for i := 0; i < 5; i++ {
//		time.Sleep(time.Second)
//		bar.Add(1)
//	}
//	bar.Finish()
func NewCountdownBar(d time.Duration, description string, w io.Writer) *progressbar.ProgressBar {
	steps := int(d / time.Second)
	if steps < 1 {
		steps = 1
	}
	return progressbar.NewOptions(steps,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(15),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionClearOnFinish(),
	)
}
