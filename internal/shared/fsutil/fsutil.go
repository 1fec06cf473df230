package fsutil

import (
	"os"
	"path/filepath"
)

// GetProjectRoot returns the repository root: tests and local tools run
// from package directories, so walk up until go.mod is found.
func GetProjectRoot() string {
	if os.Getenv("GO_ENV") == "prod" {
		return "./"
	}

	dir, err := os.Getwd()
	if err != nil {
		return "./"
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "./"
		}
		dir = parent
	}
}
