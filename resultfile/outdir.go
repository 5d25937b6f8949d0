package resultfile

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// defaultDirName is the subdirectory used when no output directory is given
const defaultDirName = "results"

var (
	// Cached expensive operations
	cachedWorkDir string
	cachedOSTemp  string
	cacheOnce     sync.Once
)

// OutputDir resolves the directory result files are written to and creates it.
// If dir is non-empty and usable it is used; otherwise the first usable
// candidate of ./results and <os temp>/sortlab-results is chosen.
func OutputDir(dir string) (string, error) {
	candidates := buildCandidateList(dir)
	for _, candidate := range candidates {
		if !isDirectoryUsable(candidate) {
			continue
		}
		if err := os.MkdirAll(candidate, 0o755); err != nil {
			continue
		}
		return candidate, nil
	}
	return "", errors.Errorf("no usable output directory among %v", candidates)
}

// cacheExpensiveOperations caches results of OS calls like os.TempDir() and
// os.Getwd() to avoid repeated system calls during directory selection.
func cacheExpensiveOperations() {
	cachedOSTemp = os.TempDir()

	if workDir, err := os.Getwd(); err == nil {
		cachedWorkDir = workDir
	}
}

// buildCandidateList returns the output directory candidates in priority order
func buildCandidateList(dir string) []string {
	cacheOnce.Do(cacheExpensiveOperations)

	var candidates []string
	if dir != "" {
		candidates = append(candidates, dir)
	}
	if cachedWorkDir != "" {
		candidates = append(candidates, filepath.Join(cachedWorkDir, defaultDirName))
	}
	candidates = append(candidates, filepath.Join(cachedOSTemp, "sortlab-"+defaultDirName))
	return candidates
}

// isDirectoryUsable checks if a directory exists and is a directory, or can be created.
// It returns true for non-existent directories that could potentially be created.
// We don't test writability here - that is tested when the first file is created.
func isDirectoryUsable(dir string) bool {
	stat, err := os.Stat(dir)
	if err != nil {
		// Directory doesn't exist - we'll try to create it when needed
		return os.IsNotExist(err)
	}

	// Check if it's actually a directory
	return stat.IsDir()
}
