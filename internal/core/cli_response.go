package core

import (
	"encoding/json"
	"fmt"
	"os"
)

// CLIResponse is the structured JSON envelope for machine-readable output.
//
// Schema:
//
//	{
//	  "success": true|false,
//	  "data": { ... },          // Command-specific payload (omitted on error)
//	  "error": {                 // Present only on failure
//	    "code": "POLICY_MISMATCH",
//	    "message": "Human-readable description"
//	  }
//	}
type CLIResponse struct {
	Success bool            `json:"success"`
	Data    interface{}     `json:"data,omitempty"`
	Error   *CLIErrorDetail `json:"error,omitempty"`
}

// CLIErrorDetail contains machine-readable error code and human-readable message.
type CLIErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Process exit codes. The exit code is the sole machine-readable
// success/failure signal the scheduler acts on.
const (
	ExitSuccess          = 0
	ExitFailure          = 1
	ExitInvalidArguments = 3
)

// CLI error codes for structured JSON error responses.
const (
	ErrCodeInputDirInaccessible = "INPUT_DIR_INACCESSIBLE"
	ErrCodeOutputDirNotWritable = "OUTPUT_DIR_NOT_WRITABLE"
	ErrCodePolicyMismatch       = "POLICY_MISMATCH"
	ErrCodeInvalidArguments     = "INVALID_ARGUMENTS"
	ErrCodeConfigError          = "CONFIG_ERROR"
	ErrCodeInternalError        = "INTERNAL_ERROR"
)

// EmitCLISuccess writes a successful CLIResponse as JSON to stdout.
func EmitCLISuccess(data interface{}) {
	resp := CLIResponse{Success: true, Data: data}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(resp) //nolint:errcheck
}

// EmitCLIError writes an error CLIResponse as JSON to stdout.
// Returns the exit code for the caller to use with os.Exit.
func EmitCLIError(code string, message string, exitCode int) int {
	resp := CLIResponse{
		Success: false,
		Error:   &CLIErrorDetail{Code: code, Message: message},
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(resp) //nolint:errcheck
	return exitCode
}

// FormatCLIMessage formats a simple text message for non-JSON CLI output.
func FormatCLIMessage(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}
