package core

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
)

// fakeDirEntry implements os.DirEntry for mock-driven tests.
type fakeDirEntry struct {
	name  string
	isDir bool
}

func (f fakeDirEntry) Name() string               { return f.name }
func (f fakeDirEntry) IsDir() bool                { return f.isDir }
func (f fakeDirEntry) Type() fs.FileMode          { return 0 }
func (f fakeDirEntry) Info() (fs.FileInfo, error) { return nil, nil }

func TestLinkService_RealPathFailureAttributedToEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := NewMockFileSystem(ctrl)
	mockFS.EXPECT().ReadDir("/in").Return([]os.DirEntry{
		fakeDirEntry{name: "good.txt"},
		fakeDirEntry{name: "bad.txt"},
	}, nil)
	mockFS.EXPECT().RealPath("/in/good.txt").Return("/real/good.txt", nil)
	mockFS.EXPECT().Symlink("/real/good.txt", "/out/abcd1234_good.txt").Return(nil)
	mockFS.EXPECT().RealPath("/in/bad.txt").Return("", errors.New("stale NFS handle"))

	svc := NewLinkService(mockFS, nil, nil)
	report := svc.Link(context.Background(), fsInputs("/in", "/out"), "abcd1234", LinkOptions{})

	if report.Created != 1 || report.Failed != 1 {
		t.Fatalf("expected 1 created / 1 failed, got %+v", report)
	}
	for _, entry := range report.Entries {
		if entry.Name == "bad.txt" && entry.Error == "" {
			t.Error("RealPath failure must be attributed to the entry")
		}
	}
}

func TestLinkService_SymlinkFailureAttributedToEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := NewMockFileSystem(ctrl)
	mockFS.EXPECT().ReadDir("/in").Return([]os.DirEntry{
		fakeDirEntry{name: "report.csv"},
	}, nil)
	mockFS.EXPECT().RealPath("/in/report.csv").Return("/real/report.csv", nil)
	mockFS.EXPECT().Symlink("/real/report.csv", "/out/abcd1234_report.csv").Return(os.ErrPermission)

	svc := NewLinkService(mockFS, nil, nil)
	report := svc.Link(context.Background(), fsInputs("/in", "/out"), "abcd1234", LinkOptions{})

	if report.Created != 0 || report.Failed != 1 {
		t.Fatalf("expected 0 created / 1 failed, got %+v", report)
	}
}

func TestPurgeService_RemoveFailureIsCollected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := NewMockFileSystem(ctrl)
	mockFS.EXPECT().ReadDir("/out").Return([]os.DirEntry{
		fakeDirEntry{name: "aaaaaaaa_locked.txt"},
		fakeDirEntry{name: "aaaaaaaa_free.txt"},
	}, nil)
	mockFS.EXPECT().Remove("/out/aaaaaaaa_locked.txt").Return(os.ErrPermission)
	mockFS.EXPECT().Remove("/out/aaaaaaaa_free.txt").Return(nil)

	svc := NewPurgeService(mockFS)
	result, err := svc.Purge("/out", "aaaaaaaa")
	if err != nil {
		t.Fatalf("per-entry failure must not fail the purge: %v", err)
	}

	if result.Removed != 1 || result.Failed != 1 {
		t.Errorf("expected 1 removed / 1 failed, got %+v", result)
	}
	if len(result.Errors) != 1 {
		t.Errorf("expected one collected error, got %v", result.Errors)
	}
}
