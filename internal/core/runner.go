package core

import (
	"context"
	"time"

	"github.com/pennsieve/preflight/internal/types"
)

// RunOptions configures a single preflight run.
type RunOptions struct {
	Parallel   bool // Parallelize the link stage
	MaxWorkers int  // Link worker count (0 = default)
}

// RunnerInterface defines the contract for the run orchestrator.
type RunnerInterface interface {
	// Run executes the full check sequence and returns the finalized report.
	// Every stage runs regardless of earlier failures so one run surfaces
	// the maximum diagnostic information; a critical failure only forces
	// the final outcome, never an early exit.
	Run(ctx context.Context, inputs RunInputs, opts RunOptions) *types.RunReport
}

// Compile-time interface satisfaction check for Runner.
var _ RunnerInterface = (*Runner)(nil)

// Runner sequences the environment, filesystem, connectivity, and link
// stages and aggregates their results. Only the Runner holds run-level
// state (run ID, accumulated results); the stage services are stateless.
type Runner struct {
	env    EnvServiceInterface
	fs     FsServiceInterface
	net    NetServiceInterface
	linker LinkServiceInterface
	newID  func() string

	// defaultWorkers is the configured link worker count, used when the
	// caller does not set RunOptions.MaxWorkers explicitly.
	defaultWorkers int
}

// NewRunner creates a Runner with injected stage services.
func NewRunner(
	env EnvServiceInterface,
	fs FsServiceInterface,
	net NetServiceInterface,
	linker LinkServiceInterface,
) *Runner {
	return &Runner{
		env:    env,
		fs:     fs,
		net:    net,
		linker: linker,
		newID:  NewRunID,
	}
}

// NewDefaultRunner wires a Runner with production services for the given
// resolved configuration.
func NewDefaultRunner(cfg ResolvedConfig, ui UICallback, progress ProgressTracker) *Runner {
	fs := NewOSFileSystem()
	runner := NewRunner(
		NewEnvService(cfg.RequiredKeys),
		NewFsService(fs),
		NewNetService(cfg, nil, nil),
		NewLinkService(fs, ui, progress),
	)
	runner.defaultWorkers = cfg.LinkWorkers
	return runner
}

// Run executes the stage sequence: EnvCheck, FsCheck, NetCheck, LinkCreate,
// Finalize. The order is fixed: FsCheck validates the paths LinkCreate
// subsequently uses. Each stage runs exactly once; there are no retries and
// no backward transitions.
func (r *Runner) Run(ctx context.Context, inputs RunInputs, opts RunOptions) *types.RunReport {
	start := time.Now()

	report := &types.RunReport{
		SchemaVersion: ReportSchemaVersion,
		Timestamp:     start.UTC().Format(time.RFC3339),
		RunID:         r.newID(),
		IntegrationID: inputs.IntegrationID(),
		Mode:          string(inputs.Mode()),
	}

	// EnvCheck
	report.Checks = append(report.Checks, r.env.Validate(inputs)...)

	// FsCheck
	report.Checks = append(report.Checks, r.fs.Validate(inputs)...)

	// NetCheck
	report.Checks = append(report.Checks, r.net.Validate(ctx, inputs)...)

	// LinkCreate is still attempted after a critical failure; a missing
	// input directory simply yields zero links.
	workers := opts.MaxWorkers
	if workers == 0 {
		workers = r.defaultWorkers
	}
	report.Links = r.linker.Link(ctx, inputs, report.RunID, LinkOptions{
		Parallel:   opts.Parallel,
		MaxWorkers: workers,
	})
	report.Checks = append(report.Checks, LinkResults(report.Links)...)

	// Finalize
	report.Summary = summarize(report.Checks, time.Since(start))
	return report
}

// summarize aggregates check results into the run summary. A critical FAIL
// forces FAIL; advisory FAILs alone yield WARN.
func summarize(checks []types.CheckResult, elapsed time.Duration) types.RunSummary {
	summary := types.RunSummary{
		Checks:  len(checks),
		Elapsed: elapsed.Seconds(),
	}

	for _, check := range checks {
		switch check.Status {
		case types.CheckPass:
			summary.Passed++
		case types.CheckSkip:
			summary.Skipped++
		case types.CheckFail:
			summary.Failed++
			if check.Severity == types.SeverityCritical {
				summary.Critical++
			}
		}
	}

	switch {
	case summary.Critical > 0:
		summary.Result = types.RunResultFail
	case summary.Failed > 0:
		summary.Result = types.RunResultWarn
	default:
		summary.Result = types.RunResultPass
	}

	return summary
}

// ExitCode maps a finalized report to the process exit code. The exit code
// is the sole machine-readable success/failure signal: 0 unless a critical
// check failed.
func ExitCode(report *types.RunReport) int {
	if report.Summary.Result == types.RunResultFail {
		return ExitFailure
	}
	return ExitSuccess
}
