package core

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pennsieve/preflight/internal/types"
)

// PurgeServiceInterface defines the contract for output-directory cleanup.
type PurgeServiceInterface interface {
	// Purge removes run-prefixed links from the output directory.
	// runID "" removes links for all runs. Removal is best-effort per
	// entry; individual failures are collected, not fatal.
	Purge(outputDir, runID string) (*types.PurgeResult, error)
}

// Compile-time interface satisfaction check for PurgeService.
var _ PurgeServiceInterface = (*PurgeService)(nil)

// PurgeService deletes the {runID}_{name} links a previous run left in the
// output directory, so a re-provisioned node starts from a clean slate.
type PurgeService struct {
	fs FileSystem
}

// NewPurgeService creates a PurgeService using the given filesystem.
func NewPurgeService(fs FileSystem) *PurgeService {
	return &PurgeService{fs: fs}
}

// Purge scans the output directory for run-prefixed entries and removes the
// matching ones. Returns ErrRunNotFound when a specific runID matched
// nothing, so callers can distinguish "nothing to do" from success.
func (s *PurgeService) Purge(outputDir, runID string) (*types.PurgeResult, error) {
	if outputDir == "" {
		return nil, ErrOutputDirMissing
	}

	entries, err := s.fs.ReadDir(outputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", outputDir, err)
	}

	result := &types.PurgeResult{RunID: runID}
	matched := 0

	for _, entry := range entries {
		name := entry.Name()
		if !matchesRun(name, runID) {
			continue
		}
		matched++

		if err := s.fs.Remove(filepath.Join(outputDir, name)); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", name, err))
			continue
		}
		result.Removed++
	}

	if runID != "" && matched == 0 {
		return result, fmt.Errorf("%w %s", ErrRunNotFound, runID)
	}

	return result, nil
}

// matchesRun reports whether a directory entry carries the run-prefix naming
// convention, optionally restricted to one run identifier.
func matchesRun(name, runID string) bool {
	prefix, rest, found := strings.Cut(name, "_")
	if !found || rest == "" || !IsRunID(prefix) {
		return false
	}
	return runID == "" || prefix == runID
}
