// Package types defines data structures for preflight run reports and configuration.
package types

// CheckResult is the outcome of a single diagnostic check.
type CheckResult struct {
	Name     string `json:"name"`
	Status   string `json:"status"`   // "PASS", "FAIL", "SKIP"
	Severity string `json:"severity"` // "critical", "advisory"
	Message  string `json:"message,omitempty"`
}

// Check status constants for CheckResult.Status.
const (
	CheckPass = "PASS"
	CheckFail = "FAIL"
	CheckSkip = "SKIP"
)

// Check severity constants for CheckResult.Severity.
// A critical FAIL forces the overall run to fail; an advisory FAIL does not.
const (
	SeverityCritical = "critical"
	SeverityAdvisory = "advisory"
)

// IsCriticalFail reports whether this result forces overall run failure.
func (c CheckResult) IsCriticalFail() bool {
	return c.Status == CheckFail && c.Severity == SeverityCritical
}

// LinkEntry records the outcome of one artifact-link attempt.
type LinkEntry struct {
	Name   string `json:"name"`             // original entry name in the input directory
	Link   string `json:"link"`             // link name created in the output directory
	Target string `json:"target,omitempty"` // absolute path the link points at
	Error  string `json:"error,omitempty"`  // per-entry failure, empty on success
}

// LinkReport aggregates artifact-link outcomes for one run.
type LinkReport struct {
	Created int         `json:"created"`
	Failed  int         `json:"failed"`
	Entries []LinkEntry `json:"entries,omitempty"`
}

// RunReport is the top-level result of one preflight run.
// RunReport aggregates the results of the environment, filesystem,
// connectivity, and artifact-link stages plus a combined pass/fail summary.
// It is finalized once by the orchestrator and never mutated afterwards.
type RunReport struct {
	SchemaVersion string        `json:"schema_version"`
	Timestamp     string        `json:"timestamp"`
	RunID         string        `json:"run_id"`
	IntegrationID string        `json:"integration_id,omitempty"`
	Mode          string        `json:"deployment_mode"`
	Checks        []CheckResult `json:"checks"`
	Links         LinkReport    `json:"links"`
	Summary       RunSummary    `json:"summary"`
}

// RunSummary contains aggregate pass/fail/warn counts across all checks.
type RunSummary struct {
	Result   string  `json:"result"`         // "PASS", "FAIL", "WARN"
	Checks   int     `json:"checks_run"`     // Number of checks executed
	Passed   int     `json:"checks_passed"`  // Checks that passed
	Failed   int     `json:"checks_failed"`  // Checks that failed (any severity)
	Critical int     `json:"checks_critical"` // Failed checks that were critical
	Skipped  int     `json:"checks_skipped"` // Checks that were skipped
	Elapsed  float64 `json:"elapsed_seconds"`
}

// Run result constants for RunSummary.Result.
const (
	RunResultPass = "PASS"
	RunResultFail = "FAIL"
	RunResultWarn = "WARN"
)

// PurgeResult summarizes a purge of run-prefixed links from the output directory.
type PurgeResult struct {
	RunID   string   `json:"run_id,omitempty"` // empty when purging all runs
	Removed int      `json:"removed"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors,omitempty"`
}
