package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gofrs/flock"
)

// LockFileName is the per-folder lock taken for the duration of a batch so
// two quill invocations cannot interleave writes into the same vault.
const LockFileName = ".quill.lock"

// ErrVaultLocked indicates another quill process holds the folder lock.
var ErrVaultLocked = fmt.Errorf("vault folder is locked by another quill process")

// ProgressFunc receives batch progress. percent is 0-100; the callback is
// invoked inline between files, never concurrently.
type ProgressFunc func(percent int, message string)

// ProcessFolder enumerates markdown files under folder and processes each one
// independently and sequentially. A per-file failure is recorded in that
// file's result; only folder-level conditions (missing folder, held lock)
// return an error.
func (e *Engine) ProcessFolder(ctx context.Context, folder string, opts Options, progress ProgressFunc) ([]Result, error) {
	info, err := os.Stat(folder)
	if err != nil {
		return nil, fmt.Errorf("stat folder: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", folder)
	}

	lock := flock.New(filepath.Join(folder, LockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire vault lock: %w", err)
	}
	if !locked {
		return nil, ErrVaultLocked
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
	}()

	files, err := enumerateMarkdown(folder, opts.Recursive)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(files))
	total := len(files)
	for i, file := range files {
		if progress != nil {
			progress(i*100/max(total, 1), fmt.Sprintf("Processing %s...", filepath.Base(file)))
		}
		results = append(results, e.ProcessFile(ctx, file, opts))
	}
	if progress != nil {
		progress(100, "Complete")
	}
	return results, nil
}

// enumerateMarkdown returns the sorted markdown files under folder. Sorting
// keeps write order deterministic across runs.
func enumerateMarkdown(folder string, recursive bool) ([]string, error) {
	pattern := "*.md"
	if recursive {
		pattern = "**/*.md"
	}
	matches, err := doublestar.Glob(os.DirFS(folder), pattern)
	if err != nil {
		return nil, fmt.Errorf("enumerate markdown files: %w", err)
	}
	files := make([]string, 0, len(matches))
	for _, match := range matches {
		files = append(files, filepath.Join(folder, filepath.FromSlash(match)))
	}
	sort.Strings(files)
	return files, nil
}
