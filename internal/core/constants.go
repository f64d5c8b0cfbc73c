package core

// File names
const (
	// ConfigFile is the optional harness configuration filename
	ConfigFile = "preflight.yml"
	// ProbeFilePattern is the throwaway file pattern for the output-dir write probe
	ProbeFilePattern = ".preflight-probe-*"
)

// Connectivity probe defaults. Overridable via preflight.yml.
const (
	// DefaultProbeHost is the hostname resolved during the DNS stage
	DefaultProbeHost = "api.pennsieve.net"
	// DefaultHealthURL is the endpoint fetched during the HTTP stage
	DefaultHealthURL = "https://api.pennsieve.net/health"
	// DefaultDNSTimeoutSeconds bounds the DNS stage
	DefaultDNSTimeoutSeconds = 5
	// DefaultHTTPTimeoutSeconds bounds the HTTP stage
	DefaultHTTPTimeoutSeconds = 5
)

// ReportSchemaVersion identifies the RunReport JSON schema.
const ReportSchemaVersion = "1.0"

// RunIDLength is the length of the run identifier used to prefix output links.
// Downstream merge consumers depend on the "{run_id}_{name}" prefix format,
// so this must not change without coordinating with them.
const RunIDLength = 8

// Verbose controls whether per-entry link operations are logged
var Verbose = false
