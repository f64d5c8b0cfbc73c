package core

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pennsieve/preflight/internal/types"
)

func TestLinkExecutor_WorkerCountDefaults(t *testing.T) {
	tests := []struct {
		name       string
		maxWorkers int
		wantMax    int
	}{
		{"explicit count kept", 3, 3},
		{"capped at eight", 100, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			executor := NewLinkExecutor(tt.maxWorkers, nil)
			if executor.maxWorkers != tt.wantMax {
				t.Errorf("expected %d workers, got %d", tt.wantMax, executor.maxWorkers)
			}
		})
	}
}

func TestLinkExecutor_EmptyInput(t *testing.T) {
	executor := NewLinkExecutor(2, nil)

	results := executor.ExecuteParallelLink(context.Background(), nil, func(ctx context.Context, name string) types.LinkEntry {
		t.Error("linkFunc should not be called for empty input")
		return types.LinkEntry{}
	})

	if results != nil {
		t.Errorf("expected nil results, got %v", results)
	}
}

func TestLinkExecutor_AllEntriesProcessedOnce(t *testing.T) {
	names := []string{"e.txt", "a.txt", "c.txt", "b.txt", "d.txt"}

	var mu sync.Mutex
	seen := make(map[string]int)

	executor := NewLinkExecutor(3, nil)
	results := executor.ExecuteParallelLink(context.Background(), names, func(ctx context.Context, name string) types.LinkEntry {
		mu.Lock()
		seen[name]++
		mu.Unlock()
		return types.LinkEntry{Name: name, Link: "run_" + name}
	})

	if len(results) != len(names) {
		t.Fatalf("expected %d results, got %d", len(names), len(results))
	}
	for _, name := range names {
		if seen[name] != 1 {
			t.Errorf("entry %s processed %d times", name, seen[name])
		}
	}
}

func TestLinkExecutor_ResultsSortedByName(t *testing.T) {
	names := []string{"zz.txt", "aa.txt", "mm.txt"}

	executor := NewLinkExecutor(3, nil)
	results := executor.ExecuteParallelLink(context.Background(), names, func(ctx context.Context, name string) types.LinkEntry {
		// Stagger completion so arrival order differs from name order.
		if name == "aa.txt" {
			time.Sleep(20 * time.Millisecond)
		}
		return types.LinkEntry{Name: name}
	})

	want := []string{"aa.txt", "mm.txt", "zz.txt"}
	for i, entry := range results {
		if entry.Name != want[i] {
			t.Errorf("result %d: expected %s, got %s", i, want[i], entry.Name)
		}
	}
}

func TestLinkExecutor_FailuresAttributedPerEntry(t *testing.T) {
	names := []string{"good.txt", "bad.txt"}

	executor := NewLinkExecutor(2, nil)
	results := executor.ExecuteParallelLink(context.Background(), names, func(ctx context.Context, name string) types.LinkEntry {
		entry := types.LinkEntry{Name: name}
		if name == "bad.txt" {
			entry.Error = "permission denied"
		}
		return entry
	})

	for _, entry := range results {
		switch entry.Name {
		case "good.txt":
			if entry.Error != "" {
				t.Errorf("good.txt failed unexpectedly: %s", entry.Error)
			}
		case "bad.txt":
			if entry.Error != "permission denied" {
				t.Errorf("bad.txt error not attributed: %q", entry.Error)
			}
		}
	}
}

func TestLinkExecutor_CancellationShortCircuits(t *testing.T) {
	names := []string{"a.txt", "b.txt", "c.txt", "d.txt"}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls int32
	executor := NewLinkExecutor(1, nil)
	results := executor.ExecuteParallelLink(ctx, names, func(ctx context.Context, name string) types.LinkEntry {
		atomic.AddInt32(&calls, 1)
		return types.LinkEntry{Name: name}
	})

	if len(results) != len(names) {
		t.Fatalf("expected one result per entry, got %d", len(results))
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Errorf("linkFunc called %d times after cancellation", calls)
	}
	for _, entry := range results {
		if entry.Error == "" {
			t.Errorf("entry %s should carry the cancellation error", entry.Name)
		}
	}
}

func TestLinkExecutor_ProgressIncrementedPerEntry(t *testing.T) {
	names := []string{"a.txt", "b.txt", "c.txt"}
	progress := &countingProgressTracker{}

	executor := NewLinkExecutor(2, progress)
	executor.ExecuteParallelLink(context.Background(), names, func(ctx context.Context, name string) types.LinkEntry {
		return types.LinkEntry{Name: name}
	})

	if got := atomic.LoadInt32(&progress.increments); got != int32(len(names)) {
		t.Errorf("expected %d increments, got %d", len(names), got)
	}
}

type countingProgressTracker struct {
	increments int32
}

func (c *countingProgressTracker) SetTotal(total int)     {}
func (c *countingProgressTracker) Increment(label string) { atomic.AddInt32(&c.increments, 1) }
func (c *countingProgressTracker) Complete()              {}
func (c *countingProgressTracker) Fail(err error)         {}
