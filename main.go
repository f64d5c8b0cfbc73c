// Package main implements the preflight CLI, a diagnostic harness that
// validates a compute-node execution environment before real workloads run.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pennsieve/preflight/cmd"
	"github.com/pennsieve/preflight/internal/core"
	"github.com/pennsieve/preflight/internal/tui"
	"github.com/pennsieve/preflight/internal/version"
)

// parseCommonFlags extracts common non-interactive flags from args
// Returns: flags, remainingArgs
func parseCommonFlags(args []string) (core.NonInteractiveFlags, []string) {
	flags := core.NonInteractiveFlags{}
	var remaining []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--yes", "-y":
			flags.Yes = true
		case "--quiet", "-q":
			flags.Mode = core.OutputQuiet
		case "--json":
			flags.Mode = core.OutputJSON
		default:
			remaining = append(remaining, arg)
		}
	}

	return flags, remaining
}

func main() {
	command := "run"
	args := os.Args[1:]
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		command = args[0]
		args = args[1:]
	}

	switch command {
	case "help", "--help", "-h":
		tui.PrintHelp()
		os.Exit(0)

	case "version", "--version":
		fmt.Printf("preflight %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
		os.Exit(0)

	case "completion":
		os.Exit(completionCommand(args))

	case "run":
		os.Exit(runCommand(args))

	case "purge":
		os.Exit(purgeCommand(args))

	default:
		tui.PrintError("Unknown Command", fmt.Sprintf("unrecognized command %q", command))
		tui.PrintHelp()
		os.Exit(core.ExitInvalidArguments)
	}
}

// runCommand executes the full diagnostic sequence and returns the process
// exit code. Every stage always runs; a critical failure forces exit code 1.
func runCommand(rawArgs []string) int {
	flags, args := parseCommonFlags(rawArgs)
	callback := newCallback(flags)

	configPath := ""
	waitInput := false
	waitTimeout := 60 * time.Second
	opts := core.RunOptions{}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--verbose", "-v":
			core.Verbose = true
		case "--parallel":
			opts.Parallel = true
		case "--workers":
			if i+1 >= len(args) {
				callback.ShowError("Invalid Flag", "--workers requires a number")
				return core.ExitInvalidArguments
			}
			if _, err := fmt.Sscanf(args[i+1], "%d", &opts.MaxWorkers); err != nil {
				callback.ShowError("Invalid Flag", fmt.Sprintf("--workers requires a valid number, got: %s", args[i+1]))
				return core.ExitInvalidArguments
			}
			i++ // Skip next arg
		case "--config":
			if i+1 >= len(args) {
				callback.ShowError("Invalid Flag", "--config requires a path")
				return core.ExitInvalidArguments
			}
			configPath = args[i+1]
			i++
		case "--wait-input":
			waitInput = true
		case "--wait-timeout":
			if i+1 >= len(args) {
				callback.ShowError("Invalid Flag", "--wait-timeout requires a number of seconds")
				return core.ExitInvalidArguments
			}
			var seconds int
			if _, err := fmt.Sscanf(args[i+1], "%d", &seconds); err != nil || seconds <= 0 {
				callback.ShowError("Invalid Flag", fmt.Sprintf("--wait-timeout requires a positive number, got: %s", args[i+1]))
				return core.ExitInvalidArguments
			}
			waitTimeout = time.Duration(seconds) * time.Second
			i++
		default:
			callback.ShowError("Invalid Flag", fmt.Sprintf("unrecognized flag %q", arg))
			return core.ExitInvalidArguments
		}
	}

	harnessCfg, err := core.NewFileConfigStore(configPath).Load()
	if err != nil {
		if flags.Mode == core.OutputJSON {
			return core.EmitCLIError(core.ErrCodeConfigError, err.Error(), core.ExitInvalidArguments)
		}
		callback.ShowError("Config Error", err.Error())
		return core.ExitInvalidArguments
	}
	cfg := core.ApplyDefaults(harnessCfg)

	inputs := core.InputsFromEnv()
	fs := core.NewOSFileSystem()

	if waitInput {
		if err := core.WaitForInput(fs, inputs.InputDir(), waitTimeout, callback); err != nil {
			// Not fatal: the filesystem and link checks report whatever
			// state the run actually finds.
			callback.ShowWarning("Input Wait", err.Error())
		}
	}

	runner := core.NewDefaultRunner(cfg, callback, newProgressTracker(flags))
	report := runner.Run(context.Background(), inputs, opts)

	switch flags.Mode {
	case core.OutputJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return core.EmitCLIError(core.ErrCodeInternalError, err.Error(), core.ExitFailure)
		}
	case core.OutputQuiet:
		// Exit code is the only signal in quiet mode
	default:
		tui.PrintRunReport(report)
	}

	return core.ExitCode(report)
}

// purgeCommand removes run-prefixed links from the output directory.
func purgeCommand(rawArgs []string) int {
	flags, args := parseCommonFlags(rawArgs)
	callback := newCallback(flags)

	runID := ""
	all := false
	for _, arg := range args {
		switch {
		case arg == "--all":
			all = true
		case strings.HasPrefix(arg, "-"):
			callback.ShowError("Invalid Flag", fmt.Sprintf("unrecognized flag %q", arg))
			return core.ExitInvalidArguments
		default:
			runID = arg
		}
	}

	if !all && !core.IsRunID(runID) {
		callback.ShowError("Invalid Arguments", "purge requires a run identifier (8 hex chars) or --all")
		return core.ExitInvalidArguments
	}
	if all {
		runID = ""
	}

	inputs := core.InputsFromEnv()
	outputDir := inputs.OutputDir()

	what := fmt.Sprintf("links for run %s", runID)
	if all {
		what = "links for all runs"
	}
	if !callback.AskConfirmation("Purge Output Links", fmt.Sprintf("Remove %s from %s?", what, outputDir)) {
		callback.ShowWarning("Purge Cancelled", "no links were removed")
		return core.ExitSuccess
	}

	result, err := core.NewPurgeService(core.NewOSFileSystem()).Purge(outputDir, runID)
	if err != nil {
		if flags.Mode == core.OutputJSON {
			return core.EmitCLIError(core.ErrCodeInternalError, err.Error(), core.ExitFailure)
		}
		callback.ShowError("Purge Failed", err.Error())
		return core.ExitFailure
	}

	if flags.Mode == core.OutputJSON {
		core.EmitCLISuccess(result)
		return core.ExitSuccess
	}

	callback.ShowSuccess(fmt.Sprintf("Removed %d links (%d failed)", result.Removed, result.Failed))
	for _, msg := range result.Errors {
		callback.ShowWarning("Remove Failed", msg)
	}
	return core.ExitSuccess
}

// completionCommand prints the completion script for the requested shell.
func completionCommand(args []string) int {
	if len(args) < 1 {
		tui.PrintError("Missing Shell", "usage: preflight completion [bash|zsh|fish|powershell]")
		return core.ExitInvalidArguments
	}

	switch args[0] {
	case "bash":
		fmt.Print(cmd.GenerateBashCompletion())
	case "zsh":
		fmt.Print(cmd.GenerateZshCompletion())
	case "fish":
		fmt.Print(cmd.GenerateFishCompletion())
	case "powershell":
		fmt.Print(cmd.GeneratePowerShellCompletion())
	default:
		tui.PrintError("Unknown Shell", fmt.Sprintf("unsupported shell %q", args[0]))
		return core.ExitInvalidArguments
	}
	return core.ExitSuccess
}

// newCallback picks the UI callback for the parsed flags.
func newCallback(flags core.NonInteractiveFlags) core.UICallback {
	if flags.Yes || flags.Mode != core.OutputNormal || !tui.IsTTY() {
		return tui.NewNonInteractiveTUICallback(flags)
	}
	return tui.NewTUICallback()
}

// newProgressTracker picks the link-stage progress tracker. The bubbletea
// bar takes over the terminal, so it is only used for interactive runs.
func newProgressTracker(flags core.NonInteractiveFlags) core.ProgressTracker {
	if flags.Mode != core.OutputNormal {
		return &core.SilentProgressTracker{}
	}
	if tui.IsTTY() {
		return tui.NewBubbletaeProgressTracker(0, "Creating output links")
	}
	return tui.NewTextProgressTracker(0, "Creating output links")
}
