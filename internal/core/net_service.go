package core

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/pennsieve/preflight/internal/types"
)

// Resolver abstracts DNS lookups for testing
type Resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// NetServiceInterface defines the contract for the connectivity check.
type NetServiceInterface interface {
	// Validate probes DNS and HTTP reachability, then cross-checks the
	// observed outcome against the declared deployment-mode policy.
	// ctx bounds the total probe time; each stage also carries its own
	// timeout so a black-holed network cannot hang the run.
	Validate(ctx context.Context, inputs RunInputs) []types.CheckResult
}

// Compile-time interface satisfaction check for NetService.
var _ NetServiceInterface = (*NetService)(nil)

// NetService probes internet reachability and validates it against the
// deployment-mode policy. This is the one check whose failure is an
// isolation concern rather than an operational one: a compliant-mode node
// that can reach the internet is a policy breach.
type NetService struct {
	resolver    Resolver
	httpClient  *http.Client
	probeHost   string
	healthURL   string
	dnsTimeout  time.Duration
	httpTimeout time.Duration
}

// NewNetService creates a NetService with the resolved probe settings.
// resolver and httpClient may be nil, in which case system defaults with the
// configured timeouts are used.
func NewNetService(cfg ResolvedConfig, resolver Resolver, httpClient *http.Client) *NetService {
	if resolver == nil {
		resolver = net.DefaultResolver
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}
	return &NetService{
		resolver:    resolver,
		httpClient:  httpClient,
		probeHost:   cfg.ProbeHost,
		healthURL:   cfg.HealthURL,
		dnsTimeout:  cfg.DNSTimeout,
		httpTimeout: cfg.HTTPTimeout,
	}
}

// Validate runs the two probe stages and the policy cross-check.
// DNS failure short-circuits the HTTP stage (recorded as SKIP); an HTTP
// timeout and a refused connection are the same observed-false outcome.
// No partial-connectivity states are inferred.
func (s *NetService) Validate(ctx context.Context, inputs RunInputs) []types.CheckResult {
	dnsResult, dnsOK := s.probeDNS(ctx)
	httpResult, httpOK := s.probeHTTP(ctx, dnsOK)
	observed := dnsOK && httpOK

	return []types.CheckResult{
		dnsResult,
		httpResult,
		s.crossCheck(inputs.Mode(), observed),
	}
}

// probeDNS resolves the probe host with a bounded timeout.
func (s *NetService) probeDNS(ctx context.Context) (types.CheckResult, bool) {
	result := types.CheckResult{
		Name:     "net:dns",
		Severity: types.SeverityAdvisory,
	}

	dnsCtx, cancel := context.WithTimeout(ctx, s.dnsTimeout)
	defer cancel()

	addrs, err := s.resolver.LookupHost(dnsCtx, s.probeHost)
	if err != nil || len(addrs) == 0 {
		result.Status = types.CheckFail
		result.Message = fmt.Sprintf("resolve %s failed: %v", s.probeHost, err)
		return result, false
	}

	result.Status = types.CheckPass
	result.Message = fmt.Sprintf("%s -> %s", s.probeHost, addrs[0])
	return result, true
}

// probeHTTP fetches the health URL. Any received response counts as
// reachable regardless of status code; only reachability matters here.
func (s *NetService) probeHTTP(ctx context.Context, dnsOK bool) (types.CheckResult, bool) {
	result := types.CheckResult{
		Name:     "net:http",
		Severity: types.SeverityAdvisory,
	}

	if !dnsOK {
		result.Status = types.CheckSkip
		result.Message = "skipped: DNS resolution failed"
		return result, false
	}

	httpCtx, cancel := context.WithTimeout(ctx, s.httpTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(httpCtx, http.MethodGet, s.healthURL, nil)
	if err != nil {
		result.Status = types.CheckFail
		result.Message = fmt.Sprintf("build request for %s failed: %v", s.healthURL, err)
		return result, false
	}
	req.Header.Set("User-Agent", "preflight-harness")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		result.Status = types.CheckFail
		result.Message = fmt.Sprintf("request %s failed: %v", s.healthURL, err)
		return result, false
	}
	defer func() { _ = resp.Body.Close() }()

	result.Status = types.CheckPass
	result.Message = fmt.Sprintf("%s responded (status %d)", s.healthURL, resp.StatusCode)
	return result, true
}

// crossCheck compares observed reachability with the mode's expectation.
// An unknown mode fails closed: without a declared policy the check cannot
// be silently skipped.
func (s *NetService) crossCheck(mode DeploymentMode, observed bool) types.CheckResult {
	result := types.CheckResult{
		Name:     "net:policy",
		Severity: types.SeverityCritical,
	}

	expected, known := mode.ExpectedReachable()
	if !known {
		result.Status = types.CheckFail
		result.Message = "connectivity policy undetermined: deployment mode missing or unrecognized"
		return result
	}

	if observed != expected {
		result.Status = types.CheckFail
		result.Message = fmt.Sprintf(ErrPolicyMismatchMsg, mode, expected, observed)
		return result
	}

	result.Status = types.CheckPass
	result.Message = fmt.Sprintf("mode=%s expected=%t observed=%t", mode, expected, observed)
	return result
}
