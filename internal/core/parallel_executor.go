package core

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/pennsieve/preflight/internal/types"
)

// perEntryTimeout bounds a single link attempt. Networked filesystems can
// hang on individual operations; one stuck entry must not block collection
// of the others.
const perEntryTimeout = 10 * time.Second

// LinkExecutor handles concurrent creation of output links
type LinkExecutor struct {
	maxWorkers int
	progress   ProgressTracker
}

// NewLinkExecutor creates a new link executor
func NewLinkExecutor(maxWorkers int, progress ProgressTracker) *LinkExecutor {
	workers := maxWorkers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	// Limit to a reasonable maximum to avoid overwhelming the filesystem
	if workers > 8 {
		workers = 8
	}
	if progress == nil {
		progress = &SilentProgressTracker{}
	}

	return &LinkExecutor{
		maxWorkers: workers,
		progress:   progress,
	}
}

// LinkEntryFunc creates the link for a single input entry name.
// ctx bounds the attempt; implementations should honor cancellation.
type LinkEntryFunc func(ctx context.Context, name string) types.LinkEntry

// ExecuteParallelLink processes entries through a worker pool.
// Each entry's result is independently attributable; the returned slice is
// sorted by entry name so output is deterministic regardless of completion
// order. ctx cancellation short-circuits remaining entries.
func (p *LinkExecutor) ExecuteParallelLink(
	ctx context.Context,
	names []string,
	linkFunc LinkEntryFunc,
) []types.LinkEntry {
	if len(names) == 0 {
		return nil
	}

	// Don't use more workers than entries
	workerCount := p.maxWorkers
	if workerCount > len(names) {
		workerCount = len(names)
	}

	// Create channels for work distribution
	jobs := make(chan string, len(names))
	results := make(chan types.LinkEntry, len(names))

	// Start workers
	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go p.linkWorker(ctx, &wg, jobs, results, linkFunc)
	}

	// Send all entries to the jobs channel
	for _, name := range names {
		jobs <- name
	}
	close(jobs)

	// Wait for all workers to finish
	go func() {
		wg.Wait()
		close(results)
	}()

	// Collect results
	var allResults []types.LinkEntry
	for result := range results {
		allResults = append(allResults, result)
		p.progress.Increment(result.Name)
	}

	sort.Slice(allResults, func(i, j int) bool { return allResults[i].Name < allResults[j].Name })
	return allResults
}

// linkWorker is a worker goroutine that processes entries from the jobs channel.
// ctx controls cancellation and is checked before each entry.
func (p *LinkExecutor) linkWorker(
	ctx context.Context,
	wg *sync.WaitGroup,
	jobs <-chan string,
	results chan<- types.LinkEntry,
	linkFunc LinkEntryFunc,
) {
	defer wg.Done()

	for name := range jobs {
		// Short-circuit if context is cancelled
		if ctx.Err() != nil {
			results <- types.LinkEntry{
				Name:  name,
				Error: ctx.Err().Error(),
			}
			continue
		}

		entryCtx, cancel := context.WithTimeout(ctx, perEntryTimeout)
		results <- p.runWithTimeout(entryCtx, name, linkFunc)
		cancel()
	}
}

// runWithTimeout executes linkFunc but gives up when the per-entry deadline
// passes, attributing the timeout to that entry. The abandoned attempt keeps
// running in its goroutine; symlink creation has no side effects worth
// cleaning up on timeout.
func (p *LinkExecutor) runWithTimeout(ctx context.Context, name string, linkFunc LinkEntryFunc) types.LinkEntry {
	done := make(chan types.LinkEntry, 1)
	go func() {
		done <- linkFunc(ctx, name)
	}()

	select {
	case entry := <-done:
		return entry
	case <-ctx.Done():
		return types.LinkEntry{
			Name:  name,
			Error: fmt.Sprintf("link attempt timed out after %s", perEntryTimeout),
		}
	}
}
