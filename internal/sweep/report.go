package sweep

import (
	"github.com/lakshaymaurya-felt/rust-cleanup/internal/core"
	"github.com/lakshaymaurya-felt/rust-cleanup/internal/ui"
)

// Report accumulates the outcome of one run. Every list is in encounter
// order.
type Report struct {
	// Projects counts directories classified as something other than
	// Regular.
	Projects int

	Cleaned []string
	Failed  []string
	// Skipped holds projects the user declined.
	Skipped []string
	// Unanswered holds projects whose prompt hit end of input.
	Unanswered []string
	// Planned holds projects listed by a dry run.
	Planned []string

	// Reclaimed is the growth in free space on the scan root's
	// filesystem. Only set when Measured is true.
	Reclaimed int64
	Measured  bool
}

// PrintSkipped writes the skipped-projects block. Nothing is written for
// an empty list.
func PrintSkipped(p *ui.Printer, skipped []string) {
	if len(skipped) == 0 {
		return
	}
	p.Println(ui.StyleHeader, "Skipped projects:")
	for _, path := range skipped {
		p.Println(ui.StylePlain, "  %s", path)
	}
}

// PrintSummary writes a one-line tally of r.
func PrintSummary(p *ui.Printer, r Report, dryRun bool) {
	if dryRun {
		p.Println(ui.StyleMuted, "Would clean %d project(s).", len(r.Planned))
		return
	}

	reclaimed := "unknown"
	if r.Measured {
		reclaimed = core.FormatSize(r.Reclaimed)
	}
	p.Println(ui.StyleSuccess, "Cleaned %d project(s), %d failed, %d skipped, %d unanswered. Reclaimed %s.",
		len(r.Cleaned), len(r.Failed), len(r.Skipped), len(r.Unanswered), reclaimed)
}
