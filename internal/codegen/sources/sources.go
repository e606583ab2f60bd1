// Package sources resolves input patterns and loads C sources into memory.
package sources

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// DefaultPrefix is prepended to every input pattern. The tool is normally run
// from CCereal's tools/ directory, two levels below the project root.
const DefaultPrefix = "../../"

// ErrNotFound is returned when a resolved input does not exist.
var ErrNotFound = errors.New("could not find input file")

// Source is one input file read fully into memory.
type Source struct {
	Path string
	Text string
}

// Resolve expands patterns below prefix into a de-duplicated list of paths.
// A pattern with no glob matches is kept as a literal path.
func Resolve(prefix string, patterns []string) []string {
	seen := make(map[string]struct{})
	var paths []string

	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		paths = append(paths, p)
	}

	for _, pattern := range patterns {
		prefixed := prefix + pattern

		matches, err := filepath.Glob(prefixed)
		if err != nil || len(matches) == 0 {
			add(prefixed)
			continue
		}
		for _, m := range matches {
			add(m)
		}
	}

	return paths
}

// Read loads a single input.
func Read(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Source{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Source{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Source{Path: path, Text: string(data)}, nil
}

// Load reads every path. Files that cannot be read are reported and skipped.
func Load(logger *slog.Logger, paths []string) []Source {
	var out []Source
	for _, p := range paths {
		src, err := Read(p)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				logger.Warn("Could not find input file", "file", p)
			} else {
				logger.Warn("Error reading input file", "file", p, "error", err)
			}
			continue
		}
		out = append(out, src)
	}
	return out
}
