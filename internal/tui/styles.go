// Package tui provides terminal user interface components and callbacks for preflight.
package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	styleErr     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	styleWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))

	// Styling is skipped when stdout is not a terminal so scheduler logs
	// stay free of escape sequences.
	stdoutIsTTY = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
)

// IsTTY reports whether stdout is a terminal.
func IsTTY() bool { return stdoutIsTTY }

// render applies a style only when stdout is a terminal.
func render(style lipgloss.Style, text string) string {
	if !stdoutIsTTY {
		return text
	}
	return style.Render(text)
}

// PrintError displays an error message with styling to the terminal.
func PrintError(title, msg string) { fmt.Println(render(styleErr, "✖ "+title)); fmt.Println(msg) }

// PrintSuccess displays a success message with styling to the terminal.
func PrintSuccess(msg string) { fmt.Println(render(styleSuccess, "✔ "+msg)) }

// PrintInfo displays an informational message to the terminal.
func PrintInfo(msg string) {
	fmt.Println(render(lipgloss.NewStyle().Foreground(lipgloss.Color("241")), msg))
}

// PrintWarning displays a warning message with styling to the terminal.
func PrintWarning(title, msg string) { fmt.Println(render(styleWarn, "! "+title)); fmt.Println(msg) }

// StyleTitle applies title styling to the given text string.
func StyleTitle(text string) string { return render(styleTitle, text) }

// PrintHelp displays usage information for preflight commands.
func PrintHelp() {
	fmt.Println(StyleTitle("preflight"))
	fmt.Println("Validate a compute-node execution environment before real workloads run on it")
	fmt.Println("\nCommands:")
	fmt.Println("  run                 Run the full diagnostic sequence (default)")
	fmt.Println("  purge               Remove run-prefixed links from the output directory")
	fmt.Println("  completion          Generate shell completion scripts")
	fmt.Println("  version             Show version information")
	fmt.Println("  help                Show this help")
	fmt.Println("\nRun flags:")
	fmt.Println("  --config <path>     Read settings from a preflight.yml (default: ./preflight.yml)")
	fmt.Println("  --parallel          Create output links through a worker pool")
	fmt.Println("  --workers <n>       Worker count for --parallel (default: CPU count, max 8)")
	fmt.Println("  --wait-input        Wait for the input directory to become non-empty")
	fmt.Println("  --wait-timeout <n>  Seconds to wait with --wait-input (default: 60)")
	fmt.Println("\nCommon flags:")
	fmt.Println("  --json              Structured JSON output")
	fmt.Println("  --quiet, -q         Minimal output")
	fmt.Println("  --yes, -y           Auto-approve prompts")
	fmt.Println("  --verbose, -v       Log per-entry link operations")
	fmt.Println("\nExit codes: 0 = all critical checks passed, 1 = critical failure")
}
