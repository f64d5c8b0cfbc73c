package core

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/pennsieve/preflight/internal/types"
	"gopkg.in/yaml.v3"
)

// ConfigStore handles preflight.yml I/O operations
type ConfigStore interface {
	Load() (types.HarnessConfig, error)
	Path() string
}

// FileConfigStore implements ConfigStore using the filesystem
type FileConfigStore struct {
	path string
}

// NewFileConfigStore creates a FileConfigStore reading the given path,
// or the default preflight.yml in the working directory when path is empty.
func NewFileConfigStore(path string) *FileConfigStore {
	if path == "" {
		path = ConfigFile
	}
	return &FileConfigStore{path: path}
}

// Path returns the config file path
func (s *FileConfigStore) Path() string {
	return s.path
}

// Load reads and parses preflight.yml
func (s *FileConfigStore) Load() (types.HarnessConfig, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.HarnessConfig{}, nil // OK: config is optional
		}
		return types.HarnessConfig{}, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var cfg types.HarnessConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return types.HarnessConfig{}, fmt.Errorf("invalid %s: %w", s.path, err)
	}

	return cfg, nil
}

// ResolvedConfig is a HarnessConfig with all defaults applied.
type ResolvedConfig struct {
	ProbeHost    string
	HealthURL    string
	DNSTimeout   time.Duration
	HTTPTimeout  time.Duration
	LinkWorkers  int
	RequiredKeys []string
}

// ApplyDefaults resolves a possibly zero-valued HarnessConfig into concrete
// settings. This is the single place defaults are decided.
func ApplyDefaults(cfg types.HarnessConfig) ResolvedConfig {
	resolved := ResolvedConfig{
		ProbeHost:    DefaultProbeHost,
		HealthURL:    DefaultHealthURL,
		DNSTimeout:   DefaultDNSTimeoutSeconds * time.Second,
		HTTPTimeout:  DefaultHTTPTimeoutSeconds * time.Second,
		LinkWorkers:  defaultLinkWorkers(),
		RequiredKeys: RequiredKeys,
	}

	if cfg.ProbeHost != "" {
		resolved.ProbeHost = cfg.ProbeHost
	}
	if cfg.HealthURL != "" {
		resolved.HealthURL = cfg.HealthURL
	}
	if cfg.DNSTimeoutSeconds > 0 {
		resolved.DNSTimeout = time.Duration(cfg.DNSTimeoutSeconds) * time.Second
	}
	if cfg.HTTPTimeoutSeconds > 0 {
		resolved.HTTPTimeout = time.Duration(cfg.HTTPTimeoutSeconds) * time.Second
	}
	if cfg.LinkWorkers > 0 {
		resolved.LinkWorkers = cfg.LinkWorkers
	}
	if len(cfg.ExtraRequiredKeys) > 0 {
		keys := make([]string, 0, len(RequiredKeys)+len(cfg.ExtraRequiredKeys))
		keys = append(keys, RequiredKeys...)
		keys = append(keys, cfg.ExtraRequiredKeys...)
		resolved.RequiredKeys = keys
	}

	return resolved
}

// defaultLinkWorkers picks the worker-pool size when none is configured.
// Capped to avoid overwhelming shared/networked filesystems.
func defaultLinkWorkers() int {
	workers := runtime.NumCPU()
	if workers > 8 {
		workers = 8
	}
	return workers
}
