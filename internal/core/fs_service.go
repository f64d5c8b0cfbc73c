package core

import (
	"fmt"

	"github.com/pennsieve/preflight/internal/types"
)

// FsServiceInterface defines the contract for the filesystem check.
type FsServiceInterface interface {
	// Validate checks the input directory is listable and the output
	// directory accepts a probe write. Failures surface as critical
	// CheckResults; Validate itself never returns an error.
	Validate(inputs RunInputs) []types.CheckResult
}

// Compile-time interface satisfaction check for FsService.
var _ FsServiceInterface = (*FsService)(nil)

// FsService validates input/output directory access.
type FsService struct {
	fs FileSystem
}

// NewFsService creates an FsService using the given filesystem.
func NewFsService(fs FileSystem) *FsService {
	return &FsService{fs: fs}
}

// Validate runs both directory checks. Both are critical: the link stage
// structurally depends on these paths.
func (s *FsService) Validate(inputs RunInputs) []types.CheckResult {
	return []types.CheckResult{
		s.checkInputDir(inputs.InputDir()),
		s.checkOutputDir(inputs.OutputDir()),
	}
}

// checkInputDir verifies the input directory exists and is listable.
func (s *FsService) checkInputDir(dir string) types.CheckResult {
	result := types.CheckResult{
		Name:     "fs:input",
		Severity: types.SeverityCritical,
	}

	if dir == "" {
		result.Status = types.CheckFail
		result.Message = ErrInputDirMissing.Error()
		return result
	}

	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		result.Status = types.CheckFail
		result.Message = fmt.Sprintf(ErrInputDirInaccessibleMsg, dir, err)
		return result
	}

	result.Status = types.CheckPass
	result.Message = fmt.Sprintf("%s listable (%d entries)", dir, len(entries))
	return result
}

// checkOutputDir verifies the output directory exists (creating it if needed)
// and accepts a real probe write. Permission bits are an unreliable proxy for
// effective writability on shared/networked filesystems, so the check writes
// and removes an actual throwaway file. The probe is removed on every exit
// path.
func (s *FsService) checkOutputDir(dir string) types.CheckResult {
	result := types.CheckResult{
		Name:     "fs:output",
		Severity: types.SeverityCritical,
	}

	if dir == "" {
		result.Status = types.CheckFail
		result.Message = ErrOutputDirMissing.Error()
		return result
	}

	if err := s.fs.MkdirAll(dir, 0755); err != nil {
		result.Status = types.CheckFail
		result.Message = fmt.Sprintf(ErrOutputDirNotWritableMsg, dir, err)
		return result
	}

	if err := s.probeWrite(dir); err != nil {
		result.Status = types.CheckFail
		result.Message = fmt.Sprintf(ErrOutputDirNotWritableMsg, dir, err)
		return result
	}

	result.Status = types.CheckPass
	result.Message = fmt.Sprintf("%s writable", dir)
	return result
}

// probeWrite creates, writes, and removes a throwaway file in dir.
func (s *FsService) probeWrite(dir string) error {
	probe, err := s.fs.CreateTemp(dir, ProbeFilePattern)
	if err != nil {
		return err
	}
	name := probe.Name()
	defer func() {
		_ = probe.Close()
		_ = s.fs.Remove(name)
	}()

	if _, err := probe.Write([]byte("probe")); err != nil {
		return err
	}
	return nil
}
