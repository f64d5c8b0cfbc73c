package types

// HarnessConfig is the optional preflight.yml configuration.
// Zero values mean "use built-in default"; ApplyDefaults in core resolves them.
type HarnessConfig struct {
	// ProbeHost is the hostname resolved during the DNS stage.
	ProbeHost string `yaml:"probe_host,omitempty"`
	// HealthURL is the endpoint fetched during the HTTP stage.
	HealthURL string `yaml:"health_url,omitempty"`
	// DNSTimeoutSeconds bounds the DNS stage.
	DNSTimeoutSeconds int `yaml:"dns_timeout_seconds,omitempty"`
	// HTTPTimeoutSeconds bounds the HTTP stage.
	HTTPTimeoutSeconds int `yaml:"http_timeout_seconds,omitempty"`
	// LinkWorkers caps the parallel link worker pool.
	LinkWorkers int `yaml:"link_workers,omitempty"`
	// ExtraRequiredKeys are validated in addition to the built-in key set.
	ExtraRequiredKeys []string `yaml:"extra_required_keys,omitempty"`
}
