package core

import "os"

// Input key constants. These are the named configuration keys supplied by the
// launch-mode adapter (ECS task environment or Lambda payload bridge).
const (
	KeyInputDir       = "INPUT_DIR"
	KeyOutputDir      = "OUTPUT_DIR"
	KeyIntegrationID  = "INTEGRATION_ID"
	KeySessionToken   = "SESSION_TOKEN"
	KeyAPIHost        = "PENNSIEVE_API_HOST"
	KeyAPIHost2       = "PENNSIEVE_API_HOST2"
	KeyEnvironment    = "ENVIRONMENT"
	KeyRegion         = "REGION"
	KeyDeploymentMode = "DEPLOYMENT_MODE"
)

// RequiredKeys is the fixed list of keys the environment validator checks,
// in report order.
var RequiredKeys = []string{
	KeyInputDir,
	KeyOutputDir,
	KeyIntegrationID,
	KeySessionToken,
	KeyAPIHost,
	KeyAPIHost2,
	KeyEnvironment,
	KeyRegion,
	KeyDeploymentMode,
}

// DeploymentMode is the declared network-isolation policy for a run.
type DeploymentMode string

// Deployment modes and their expected connectivity:
//   - basic:     internet expected (public subnets, direct access)
//   - secure:    internet expected (private subnets with NAT gateway)
//   - compliant: NO internet expected (private subnets, no NAT)
//   - unknown:   missing or unrecognized; connectivity check fails closed
const (
	ModeBasic     DeploymentMode = "basic"
	ModeSecure    DeploymentMode = "secure"
	ModeCompliant DeploymentMode = "compliant"
	ModeUnknown   DeploymentMode = ""
)

// ParseDeploymentMode maps the raw input value to a DeploymentMode.
// Anything outside the known set parses as ModeUnknown rather than erroring,
// so a bad value surfaces through the connectivity cross-check instead of
// aborting the run.
func ParseDeploymentMode(raw string) DeploymentMode {
	switch raw {
	case string(ModeBasic):
		return ModeBasic
	case string(ModeSecure):
		return ModeSecure
	case string(ModeCompliant):
		return ModeCompliant
	default:
		return ModeUnknown
	}
}

// ExpectedReachable returns (expected, known). known is false for ModeUnknown,
// in which case the connectivity cross-check must fail closed.
func (m DeploymentMode) ExpectedReachable() (bool, bool) {
	switch m {
	case ModeBasic, ModeSecure:
		return true, true
	case ModeCompliant:
		return false, true
	default:
		return false, false
	}
}

// RunInputs is the full input set for one run. Supplied once by the
// launch-mode adapter and immutable thereafter; the core never reads
// process state directly.
type RunInputs struct {
	values map[string]string
}

// InputsFromMap builds RunInputs from an adapter-supplied key/value map.
// The map is copied; later mutation of the argument does not affect the run.
func InputsFromMap(values map[string]string) RunInputs {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return RunInputs{values: copied}
}

// InputsFromEnv is the ECS-style adapter: it snapshots the required keys from
// the process environment. Lives at the process boundary only; core logic
// works off the resulting RunInputs value.
func InputsFromEnv() RunInputs {
	values := make(map[string]string, len(RequiredKeys))
	for _, key := range RequiredKeys {
		values[key] = os.Getenv(key)
	}
	return RunInputs{values: values}
}

// Get returns the value for a key, or "" when absent.
func (in RunInputs) Get(key string) string {
	return in.values[key]
}

// Has reports whether the key is present with a non-empty value.
func (in RunInputs) Has(key string) bool {
	return in.values[key] != ""
}

// InputDir returns the input directory path.
func (in RunInputs) InputDir() string { return in.Get(KeyInputDir) }

// OutputDir returns the output directory path.
func (in RunInputs) OutputDir() string { return in.Get(KeyOutputDir) }

// IntegrationID returns the run correlation identifier.
func (in RunInputs) IntegrationID() string { return in.Get(KeyIntegrationID) }

// Mode returns the parsed deployment mode.
func (in RunInputs) Mode() DeploymentMode {
	return ParseDeploymentMode(in.Get(KeyDeploymentMode))
}
