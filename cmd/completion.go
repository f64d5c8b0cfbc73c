// Package cmd provides CLI utilities for preflight
package cmd

import (
	"fmt"
	"strings"
)

// Commands available in preflight
var commands = []string{
	"run",
	"purge",
	"completion",
	"version",
	"help",
}

// getCommandDescription returns a short description for a command
func getCommandDescription(cmd string) string {
	switch cmd {
	case "run":
		return "Run the full diagnostic sequence"
	case "purge":
		return "Remove run-prefixed links from the output directory"
	case "completion":
		return "Generate shell completion scripts"
	case "version":
		return "Show version information"
	case "help":
		return "Show usage"
	default:
		return ""
	}
}

// GenerateBashCompletion generates bash completion script
func GenerateBashCompletion() string {
	return fmt.Sprintf(`# bash completion for preflight
_preflight_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Commands
    opts="%s"

    # Command-specific options
    case "${prev}" in
        run)
            opts="--config --parallel --workers --wait-input --wait-timeout --json --quiet -q --verbose -v"
            ;;
        purge)
            opts="--all --yes -y --quiet -q --json"
            ;;
        completion)
            opts="bash zsh fish powershell"
            ;;
    esac

    COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
    return 0
}

complete -F _preflight_completions preflight
`, strings.Join(commands, " "))
}

// GenerateZshCompletion generates zsh completion script
func GenerateZshCompletion() string {
	cmdList := make([]string, len(commands))
	for i, cmd := range commands {
		desc := getCommandDescription(cmd)
		cmdList[i] = fmt.Sprintf("    '%s:%s'", cmd, desc)
	}

	return fmt.Sprintf(`#compdef preflight

_preflight() {
    local -a commands
    commands=(
%s
    )

    _arguments -C \
        '1: :->command' \
        '*::arg:->args'

    case $state in
        command)
            _describe 'command' commands
            ;;
        args)
            case $words[1] in
                run)
                    _arguments \
                        '--config[Config file path]:file:_files' \
                        '--parallel[Create links through a worker pool]' \
                        '--workers[Worker count]:count:' \
                        '--wait-input[Wait for input directory entries]' \
                        '--wait-timeout[Wait timeout in seconds]:seconds:' \
                        '--json[JSON output]' \
                        '--quiet[Minimal output]' \
                        '-q[Minimal output]' \
                        '--verbose[Log per-entry link operations]' \
                        '-v[Log per-entry link operations]'
                    ;;
                purge)
                    _arguments \
                        '--all[Purge links for all runs]' \
                        '--yes[Skip confirmation]' \
                        '-y[Skip confirmation]' \
                        '--quiet[Minimal output]' \
                        '-q[Minimal output]' \
                        '--json[JSON output]'
                    ;;
                completion)
                    _arguments '1:shell:(bash zsh fish powershell)'
                    ;;
            esac
            ;;
    esac
}

_preflight "$@"
`, strings.Join(cmdList, "\n"))
}

// GenerateFishCompletion generates fish completion script
func GenerateFishCompletion() string {
	var completions []string

	// Add command completions
	for _, cmd := range commands {
		desc := getCommandDescription(cmd)
		completions = append(completions, fmt.Sprintf("complete -c preflight -f -n '__fish_use_subcommand' -a '%s' -d '%s'", cmd, desc))
	}

	// Add flag completions
	completions = append(completions, "# run command flags")
	completions = append(completions, "complete -c preflight -n '__fish_seen_subcommand_from run' -l config -d 'Config file path' -r")
	completions = append(completions, "complete -c preflight -n '__fish_seen_subcommand_from run' -l parallel -d 'Create links through a worker pool'")
	completions = append(completions, "complete -c preflight -n '__fish_seen_subcommand_from run' -l workers -d 'Worker count' -r")
	completions = append(completions, "complete -c preflight -n '__fish_seen_subcommand_from run' -l wait-input -d 'Wait for input directory entries'")
	completions = append(completions, "complete -c preflight -n '__fish_seen_subcommand_from run' -l wait-timeout -d 'Wait timeout in seconds' -r")
	completions = append(completions, "complete -c preflight -n '__fish_seen_subcommand_from run' -l json -d 'JSON output'")
	completions = append(completions, "complete -c preflight -n '__fish_seen_subcommand_from run' -l quiet -s q -d 'Minimal output'")
	completions = append(completions, "complete -c preflight -n '__fish_seen_subcommand_from run' -l verbose -s v -d 'Log per-entry link operations'")

	completions = append(completions, "# purge command flags")
	completions = append(completions, "complete -c preflight -n '__fish_seen_subcommand_from purge' -l all -d 'Purge links for all runs'")
	completions = append(completions, "complete -c preflight -n '__fish_seen_subcommand_from purge' -l yes -s y -d 'Skip confirmation'")
	completions = append(completions, "complete -c preflight -n '__fish_seen_subcommand_from purge' -l quiet -s q -d 'Minimal output'")
	completions = append(completions, "complete -c preflight -n '__fish_seen_subcommand_from purge' -l json -d 'JSON output'")

	completions = append(completions, "# completion command shells")
	completions = append(completions, "complete -c preflight -n '__fish_seen_subcommand_from completion' -f -a 'bash zsh fish powershell'")

	return strings.Join(completions, "\n")
}

// GeneratePowerShellCompletion generates PowerShell completion script
func GeneratePowerShellCompletion() string {
	cmdArray := make([]string, len(commands))
	for i, cmd := range commands {
		cmdArray[i] = fmt.Sprintf("'%s'", cmd)
	}

	return fmt.Sprintf(`# PowerShell completion for preflight
Register-ArgumentCompleter -Native -CommandName preflight -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $commands = @(%s)

    $line = $commandAst.ToString()
    $tokens = $line.Split(' ')

    if ($tokens.Count -eq 2) {
        # Complete command
        $commands | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
        }
    }
    elseif ($tokens.Count -gt 2) {
        $subcommand = $tokens[1]

        switch ($subcommand) {
            'run' {
                @('--config', '--parallel', '--workers', '--wait-input', '--wait-timeout', '--json', '--quiet', '-q', '--verbose', '-v') |
                    Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
                    }
            }
            'purge' {
                @('--all', '--yes', '-y', '--quiet', '-q', '--json') |
                    Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
                    }
            }
            'completion' {
                @('bash', 'zsh', 'fish', 'powershell') |
                    Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
                    }
            }
        }
    }
}
`, strings.Join(cmdArray, ", "))
}
