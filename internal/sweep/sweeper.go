package sweep

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/lakshaymaurya-felt/rust-cleanup/internal/config"
	"github.com/lakshaymaurya-felt/rust-cleanup/internal/core"
	"github.com/lakshaymaurya-felt/rust-cleanup/internal/logging"
	"github.com/lakshaymaurya-felt/rust-cleanup/internal/project"
	"github.com/lakshaymaurya-felt/rust-cleanup/internal/scan"
	"github.com/lakshaymaurya-felt/rust-cleanup/internal/ui"
)

// FreeSpaceFunc measures free bytes on the filesystem holding path.
type FreeSpaceFunc func(ctx context.Context, path string) (uint64, error)

// Sweeper runs one cleanup pass over a directory tree. Projects are
// handled one at a time, fully, before the walk moves on.
type Sweeper struct {
	Options   config.Options
	Confirmer Confirmer
	Cleaner   Cleaner

	// Out receives dry-run lines, the skipped report and the summary.
	// Defaults to os.Stdout.
	Out io.Writer

	// FreeSpace defaults to core.FreeSpace.
	FreeSpace FreeSpaceFunc

	log *slog.Logger
}

// Run walks Options.Path and returns what happened. The only error
// returned for a completed walk is a *scan.RootError when the start path
// is unreadable, or the context's error when ctx is done.
func (s *Sweeper) Run(ctx context.Context) (Report, error) {
	opts := s.Options.Normalize()
	if s.log == nil {
		s.log = logging.New("sweep")
	}
	if s.Out == nil {
		s.Out = os.Stdout
	}
	if s.FreeSpace == nil {
		s.FreeSpace = core.FreeSpace
	}
	out := ui.NewPrinter(s.Out)

	var report Report
	var before uint64
	measure := opts.Summary && !opts.DryRun
	if measure {
		free, err := s.FreeSpace(ctx, opts.Path)
		if err != nil {
			s.log.Debug("free space unavailable", "path", opts.Path, "error", err)
			measure = false
		}
		before = free
	}

	walker := scan.NewWalker()
	err := walker.Walk(ctx, opts.Path, func(dir string) error {
		s.handle(ctx, out, opts, project.NewTarget(dir), &report)
		return nil
	})

	PrintSkipped(out, report.Skipped)

	if err != nil {
		return report, err
	}

	if measure {
		if after, ferr := s.FreeSpace(ctx, opts.Path); ferr == nil {
			report.Reclaimed = core.Reclaimed(before, after)
			report.Measured = true
		} else {
			s.log.Debug("free space unavailable", "path", opts.Path, "error", ferr)
		}
	}
	if opts.Summary {
		PrintSummary(out, report, opts.DryRun)
	}

	s.log.Debug("sweep finished",
		"projects", report.Projects,
		"cleaned", len(report.Cleaned),
		"failed", len(report.Failed),
		"skipped", len(report.Skipped),
		"unanswered", len(report.Unanswered),
		"unreadable", len(walker.Warnings()))
	return report, nil
}

func (s *Sweeper) handle(ctx context.Context, out *ui.Printer, opts config.Options, t project.Target, report *Report) {
	if !t.Type.IsProject() {
		return
	}
	report.Projects++
	s.log.Debug("project found", "path", t.Path, "type", t.Type.String())

	if opts.DryRun {
		report.Planned = append(report.Planned, t.Path)
		out.Println(ui.StylePlain, "Would clean %s (%s): %s", t.Path, t.Type.DisplayName(), t.Type.Command())
		return
	}

	action, err := Decide(t, opts.AutoClean, s.Confirmer)
	if err != nil {
		s.log.Debug("no answer for project", "path", t.Path, "error", err)
		report.Unanswered = append(report.Unanswered, t.Path)
		return
	}

	switch action {
	case Clean:
		res := s.Cleaner.Run(ctx, t.Path, t.Type.Command())
		if res.OK() {
			report.Cleaned = append(report.Cleaned, t.Path)
		} else {
			report.Failed = append(report.Failed, t.Path)
		}
	case Skip:
		report.Skipped = append(report.Skipped, t.Path)
	}
}
