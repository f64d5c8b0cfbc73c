package core

import (
	"fmt"

	"github.com/pennsieve/preflight/internal/types"
)

// EnvServiceInterface defines the contract for the environment check.
type EnvServiceInterface interface {
	// Validate checks presence of the required input keys. Absence is a
	// reportable condition, not an error; Validate never fails.
	Validate(inputs RunInputs) []types.CheckResult
}

// Compile-time interface satisfaction check for EnvService.
var _ EnvServiceInterface = (*EnvService)(nil)

// EnvService checks that the fixed set of required input keys is present
// and non-empty.
type EnvService struct {
	requiredKeys []string
}

// NewEnvService creates an EnvService validating the given key list.
func NewEnvService(requiredKeys []string) *EnvService {
	return &EnvService{requiredKeys: requiredKeys}
}

// Validate emits one advisory result per missing/empty key plus a summary
// result. All results are advisory: a missing auxiliary key should not by
// itself be fatal. The filesystem and connectivity checks fail in their own
// right when a key they structurally depend on is absent.
func (s *EnvService) Validate(inputs RunInputs) []types.CheckResult {
	var results []types.CheckResult
	present := 0

	for _, key := range s.requiredKeys {
		if inputs.Has(key) {
			present++
			if Verbose {
				FormatCLIMessage("  %s = %s", key, MaskValue(key, inputs.Get(key)))
			}
			continue
		}
		results = append(results, types.CheckResult{
			Name:     "env:" + key,
			Status:   types.CheckFail,
			Severity: types.SeverityAdvisory,
			Message:  fmt.Sprintf("required key %s is missing or empty", key),
		})
	}

	summary := types.CheckResult{
		Name:     "environment",
		Status:   types.CheckPass,
		Severity: types.SeverityAdvisory,
		Message:  fmt.Sprintf("%d/%d required keys present", present, len(s.requiredKeys)),
	}
	if present < len(s.requiredKeys) {
		summary.Status = types.CheckFail
	}

	return append(results, summary)
}

// MaskValue hides secret values in diagnostic output. Session tokens are
// presence-checked only and must never be echoed.
func MaskValue(key, value string) string {
	if key != KeySessionToken {
		return value
	}
	if value == "" {
		return "(empty)"
	}
	return "***"
}
