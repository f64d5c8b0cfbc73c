package tui

import (
	"fmt"

	"github.com/pennsieve/preflight/internal/types"
)

// PrintRunReport renders a finalized run report in table form. The full
// report is always printed, pass or fail; the exit code is the only
// machine-readable signal.
func PrintRunReport(report *types.RunReport) {
	fmt.Println(StyleTitle("Preflight Diagnostics"))
	fmt.Printf("Run ID: %s\n", report.RunID)
	if report.IntegrationID != "" {
		fmt.Printf("Integration: %s\n", report.IntegrationID)
	}
	mode := report.Mode
	if mode == "" {
		mode = "(not set)"
	}
	fmt.Printf("Deployment mode: %s\n", mode)
	fmt.Println()

	for _, check := range report.Checks {
		var symbol, status string
		switch check.Status {
		case types.CheckPass:
			symbol = "✓"
			status = "[OK]"
		case types.CheckSkip:
			symbol = "?"
			status = "[SKIPPED]"
		default: // FAIL
			symbol = "✗"
			status = "[FAILED]"
			if check.Severity == types.SeverityCritical {
				status = "[CRITICAL]"
			}
		}
		fmt.Printf("%s %-24s %-10s %s\n", symbol, check.Name, status, check.Message)
	}

	fmt.Println()
	fmt.Printf("Links: %d created, %d failed\n", report.Links.Created, report.Links.Failed)
	fmt.Printf("Summary: %d checked\n", report.Summary.Checks)
	fmt.Printf("  ✓ %d passed\n", report.Summary.Passed)
	if report.Summary.Failed > 0 {
		fmt.Printf("  ✗ %d failed (%d critical)\n", report.Summary.Failed, report.Summary.Critical)
	}
	if report.Summary.Skipped > 0 {
		fmt.Printf("  ? %d skipped\n", report.Summary.Skipped)
	}
	fmt.Printf("Elapsed: %.2fs\n", report.Summary.Elapsed)
	fmt.Println()

	switch report.Summary.Result {
	case types.RunResultPass:
		PrintSuccess(fmt.Sprintf("Result: %s", report.Summary.Result))
	case types.RunResultWarn:
		PrintWarning("Result: WARN", "advisory checks failed; run is still usable")
	default:
		PrintError("Result: FAIL", "critical checks failed; node is not correctly provisioned")
	}
}
