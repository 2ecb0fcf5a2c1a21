package cli

import "path/filepath"

// splitTarget splits a user-supplied path into a directory and a file name.
// A bare name resolves to the working directory.
func splitTarget(path string) (dir, name string) {
	dir, name = filepath.Split(filepath.Clean(path))
	if dir == "" {
		dir = "."
	}
	return dir, name
}
