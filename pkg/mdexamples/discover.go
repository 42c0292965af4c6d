package mdexamples

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultInclude is the pattern used when no include patterns are given.
const DefaultInclude = "**/*.md"

// Discover expands paths into Markdown files. Files are taken as given.
// Directories are searched with the include patterns, skipping matches of
// the exclude patterns; both are doublestar globs relative to the directory.
// The result is sorted and free of duplicates.
func Discover(ctx context.Context, paths, include, exclude []string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}
	if len(include) == 0 {
		include = []string{DefaultInclude}
	}

	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, root := range paths {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", root, err)
		}

		if !info.IsDir() {
			add(filepath.Clean(root))
			continue
		}

		matches, err := globDir(root, include, exclude)
		if err != nil {
			return nil, err
		}
		for _, match := range matches {
			add(match)
		}
	}

	slices.Sort(files)
	return files, nil
}

func globDir(root string, include, exclude []string) ([]string, error) {
	fsys := os.DirFS(root)

	var matches []string
	for _, pattern := range include {
		found, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}

		for _, rel := range found {
			excluded, err := matchesAny(exclude, rel)
			if err != nil {
				return nil, err
			}
			if !excluded {
				matches = append(matches, filepath.Join(root, filepath.FromSlash(rel)))
			}
		}
	}

	return matches, nil
}

func matchesAny(patterns []string, rel string) (bool, error) {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			return false, fmt.Errorf("exclude pattern %q: %w", pattern, err)
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}
