package preflight

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// minFreeBytes is the low-water mark for the vault's filesystem. Term
// documents are small; running this close to full risks truncated rewrites.
const minFreeBytes = 64 << 20

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every vault check for the given folder.
func RunAll(folder string) []Result {
	return []Result{
		CheckDirectoryAccess("Vault folder", folder),
		CheckFreeSpace(folder, minFreeBytes),
	}
}

// CheckDirectoryAccess verifies path is an existing directory we can write
// into, probing with a temporary file.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s is not a directory", path)}
	}
	probe, err := os.CreateTemp(path, ".quill-preflight-*")
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("not writable: %v", err)}
	}
	probePath := probe.Name()
	_ = probe.Close()
	_ = os.Remove(probePath)
	return Result{Name: name, Passed: true, Detail: path}
}

// CheckFreeSpace verifies the filesystem containing path has at least
// minBytes available.
func CheckFreeSpace(path string, minBytes uint64) Result {
	var stat unix.Statfs_t
	if err := unix.Statfs(filepath.Clean(path), &stat); err != nil {
		return Result{Name: "Free space", Detail: err.Error()}
	}
	free := stat.Bavail * uint64(stat.Bsize)
	if free < minBytes {
		return Result{
			Name:   "Free space",
			Detail: fmt.Sprintf("only %d MiB available, want at least %d MiB", free>>20, minBytes>>20),
		}
	}
	return Result{Name: "Free space", Passed: true, Detail: fmt.Sprintf("%d MiB available", free>>20)}
}
