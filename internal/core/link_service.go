package core

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/pennsieve/preflight/internal/types"
)

// LinkOptions configures the artifact-link stage.
type LinkOptions struct {
	Parallel   bool // Process entries through the worker pool
	MaxWorkers int  // Worker count (0 = default)
}

// LinkServiceInterface defines the contract for the artifact-link stage.
type LinkServiceInterface interface {
	// Link creates one {runID}_{name} symlink in the output directory per
	// direct entry of the input directory. Per-entry failure is recorded
	// and does not stop the remaining entries; Link never returns an error
	// for individual entries.
	Link(ctx context.Context, inputs RunInputs, runID string, opts LinkOptions) types.LinkReport
}

// Compile-time interface satisfaction check for LinkService.
var _ LinkServiceInterface = (*LinkService)(nil)

// LinkService creates run-prefixed symlinks so multiple parallel producers
// can feed one merge consumer without name collisions.
type LinkService struct {
	fs       FileSystem
	ui       UICallback
	progress ProgressTracker
}

// NewLinkService creates a LinkService using the given filesystem.
func NewLinkService(fs FileSystem, ui UICallback, progress ProgressTracker) *LinkService {
	if ui == nil {
		ui = &SilentUICallback{}
	}
	if progress == nil {
		progress = &SilentProgressTracker{}
	}
	return &LinkService{fs: fs, ui: ui, progress: progress}
}

// Link enumerates the input directory (non-recursive, regular files and
// symlinks only) and creates the output links. A missing input directory
// yields an empty report rather than an error so the orchestrator can still
// run this stage for diagnostics after an earlier critical failure.
func (s *LinkService) Link(ctx context.Context, inputs RunInputs, runID string, opts LinkOptions) types.LinkReport {
	var report types.LinkReport

	inputDir := inputs.InputDir()
	outputDir := inputs.OutputDir()
	if inputDir == "" || outputDir == "" {
		s.progress.Complete()
		return report
	}

	entries, err := s.fs.ReadDir(inputDir)
	if err != nil {
		s.ui.ShowWarning("Link Stage", fmt.Sprintf("input directory not listable, no links created: %v", err))
		s.progress.Complete()
		return report
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	if len(names) == 0 {
		s.progress.Complete()
		return report
	}

	s.progress.SetTotal(len(names))

	var results []types.LinkEntry
	if opts.Parallel && len(names) > 1 {
		executor := NewLinkExecutor(opts.MaxWorkers, s.progress)
		results = executor.ExecuteParallelLink(ctx, names, func(ctx context.Context, name string) types.LinkEntry {
			return s.linkOne(inputDir, outputDir, runID, name)
		})
	} else {
		for _, name := range names {
			entry := s.linkOne(inputDir, outputDir, runID, name)
			s.progress.Increment(entry.Name)
			results = append(results, entry)
		}
	}

	for _, entry := range results {
		if entry.Error != "" {
			report.Failed++
		} else {
			report.Created++
		}
	}
	report.Entries = results

	if report.Failed > 0 {
		s.progress.Fail(fmt.Errorf("%d of %d links failed", report.Failed, len(names)))
	} else {
		s.progress.Complete()
	}

	return report
}

// linkOne creates a single {runID}_{name} symlink. The link targets the
// resolved absolute source path so downstream consumers can follow it from
// any working directory.
func (s *LinkService) linkOne(inputDir, outputDir, runID, name string) types.LinkEntry {
	entry := types.LinkEntry{
		Name: name,
		Link: runID + "_" + name,
	}

	target, err := s.fs.RealPath(filepath.Join(inputDir, name))
	if err != nil {
		entry.Error = fmt.Sprintf(ErrLinkFailedMsg, entry.Link, err)
		return entry
	}
	entry.Target = target

	linkPath := filepath.Join(outputDir, entry.Link)
	if err := s.fs.Symlink(target, linkPath); err != nil {
		entry.Error = fmt.Sprintf(ErrLinkFailedMsg, entry.Link, err)
		return entry
	}

	if Verbose {
		FormatCLIMessage("  created %s -> %s", entry.Link, target)
	}
	return entry
}

// LinkResults converts a LinkReport into CheckResults: one advisory result
// per failed entry plus an advisory summary.
func LinkResults(report types.LinkReport) []types.CheckResult {
	var results []types.CheckResult

	for _, entry := range report.Entries {
		if entry.Error == "" {
			continue
		}
		results = append(results, types.CheckResult{
			Name:     "link:" + entry.Name,
			Status:   types.CheckFail,
			Severity: types.SeverityAdvisory,
			Message:  entry.Error,
		})
	}

	summary := types.CheckResult{
		Name:     "links",
		Status:   types.CheckPass,
		Severity: types.SeverityAdvisory,
		Message:  fmt.Sprintf("%d created, %d failed", report.Created, report.Failed),
	}
	if report.Failed > 0 {
		summary.Status = types.CheckFail
	}

	return append(results, summary)
}
