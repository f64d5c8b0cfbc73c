package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pennsieve/preflight/internal/types"
)

func fsInputs(inputDir, outputDir string) RunInputs {
	return InputsFromMap(map[string]string{
		KeyInputDir:  inputDir,
		KeyOutputDir: outputDir,
	})
}

func TestFsService_BothDirsValid(t *testing.T) {
	svc := NewFsService(NewOSFileSystem())
	inputDir := t.TempDir()
	outputDir := t.TempDir()

	os.WriteFile(filepath.Join(inputDir, "a.txt"), []byte("a"), 0644)

	results := svc.Validate(fsInputs(inputDir, outputDir))

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, result := range results {
		if result.Status != types.CheckPass {
			t.Errorf("%s: expected PASS, got %s (%s)", result.Name, result.Status, result.Message)
		}
	}
}

func TestFsService_InputDirMissing(t *testing.T) {
	svc := NewFsService(NewOSFileSystem())

	results := svc.Validate(fsInputs("/path/that/does/not/exist", t.TempDir()))

	input := results[0]
	if !input.IsCriticalFail() {
		t.Fatalf("expected critical fail for missing input dir, got %+v", input)
	}
	if !strings.Contains(input.Message, "input directory inaccessible") {
		t.Errorf("unexpected message: %q", input.Message)
	}
}

func TestFsService_InputDirEmptyValue(t *testing.T) {
	svc := NewFsService(NewOSFileSystem())

	results := svc.Validate(fsInputs("", t.TempDir()))

	if !results[0].IsCriticalFail() {
		t.Errorf("expected critical fail for unconfigured input dir, got %+v", results[0])
	}
}

func TestFsService_OutputDirCreatedWhenMissing(t *testing.T) {
	svc := NewFsService(NewOSFileSystem())
	outputDir := filepath.Join(t.TempDir(), "nested", "out")

	results := svc.Validate(fsInputs(t.TempDir(), outputDir))

	output := results[1]
	if output.Status != types.CheckPass {
		t.Fatalf("expected output dir to be created and pass, got %+v", output)
	}
	if _, err := os.Stat(outputDir); err != nil {
		t.Errorf("expected output dir to exist after check: %v", err)
	}
}

func TestFsService_OutputDirNotWritable(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission checks are meaningless as root")
	}

	svc := NewFsService(NewOSFileSystem())
	outputDir := t.TempDir()
	if err := os.Chmod(outputDir, 0555); err != nil {
		t.Fatalf("chmod failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(outputDir, 0755) })

	results := svc.Validate(fsInputs(t.TempDir(), outputDir))

	output := results[1]
	if !output.IsCriticalFail() {
		t.Fatalf("expected critical fail for read-only output dir, got %+v", output)
	}
	if !strings.Contains(output.Message, "output directory not writable") {
		t.Errorf("unexpected message: %q", output.Message)
	}
}

// TestFsService_ProbeFileRemoved verifies the throwaway probe never survives
// the check.
func TestFsService_ProbeFileRemoved(t *testing.T) {
	svc := NewFsService(NewOSFileSystem())
	outputDir := t.TempDir()

	svc.Validate(fsInputs(t.TempDir(), outputDir))

	entries, err := os.ReadDir(outputDir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty output dir after probe, found %d entries (%s)", len(entries), entries[0].Name())
	}
}
