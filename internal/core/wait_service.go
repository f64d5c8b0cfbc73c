package core

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WaitForInput blocks until the input directory contains at least one entry
// or timeout elapses. In DAG workflows an upstream producer may still be
// writing when this node starts; waiting avoids a spurious zero-link run.
//
// Returns nil once an entry exists, ErrWaitTimeout on expiry, and any other
// error for watcher or directory problems. A missing directory is an error;
// the filesystem check owns reporting that condition.
func WaitForInput(fs FileSystem, inputDir string, timeout time.Duration, ui UICallback) error {
	if inputDir == "" {
		return ErrInputDirMissing
	}

	entries, err := fs.ReadDir(inputDir)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", inputDir, err)
	}
	if len(entries) > 0 {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(inputDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", inputDir, err)
	}

	// Re-check after the watch is registered: an entry may have appeared
	// between the initial listing and watcher.Add.
	entries, err = fs.ReadDir(inputDir)
	if err == nil && len(entries) > 0 {
		return nil
	}

	if ui != nil {
		ui.ShowWarning("Input Empty", fmt.Sprintf("waiting up to %s for entries in %s", timeout, inputDir))
	}

	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Create == fsnotify.Create {
				return nil
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if ui != nil {
				ui.ShowWarning("Watch Error", err.Error())
			}

		case <-deadline.C:
			return ErrWaitTimeout
		}
	}
}
