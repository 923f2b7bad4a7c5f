package fetch

import (
	"os"
	"path/filepath"
	"strings"
)

// Mkdirp recursively creates a directory. An empty path is a no-op.
func Mkdirp(path string) error {
	if len(path) == 0 {
		return nil
	}
	return os.MkdirAll(path, 0755)
}

// SplitAll splits a path into all of its components.
func SplitAll(path string) []string {
	parts := make([]string, 0)
	for {
		dir, file := filepath.Split(path)
		if dir == path { // sentinel for absolute paths
			return append([]string{dir}, parts...)
		}
		if file == path { // sentinel for relative paths
			return append([]string{file}, parts...)
		}

		parts = append([]string{file}, parts...)
		path = dir
		if len(dir) > 1 {
			path = strings.TrimSuffix(dir, "/")
		}
	}
}
