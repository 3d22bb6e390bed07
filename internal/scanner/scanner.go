package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"dvlg/internal/logs"
)

// FindJournals resolves a command-line path into journal files. A file is
// returned as-is whatever its extension; a directory is walked recursively for
// files whose extension is in exts. Results are sorted so that merged output
// does not depend on directory order.
func FindJournals(path string, exts []string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var found []string
	if err := walkDir(path, exts, &found); err != nil {
		return nil, err
	}
	sort.Strings(found)

	logs.Logger.Printf("found %d journal file(s) under %s", len(found), path)
	return found, nil
}

// walkDir recursively collects journal files below dir
func walkDir(dir string, exts []string, found *[]string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		name := entry.Name()
		absPath := filepath.Join(dir, name)

		if entry.IsDir() {
			if shouldSkipDir(name) {
				continue
			}
			if err := walkDir(absPath, exts, found); err != nil {
				return err
			}
			continue
		}

		if isJournalFile(name, exts) {
			*found = append(*found, absPath)
		}
	}

	return nil
}

func isJournalFile(name string, exts []string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

// shouldSkipDir returns true for directories that should be skipped during scanning
func shouldSkipDir(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	switch name {
	case "node_modules", "vendor", "__pycache__", "target", "build", "dist":
		return true
	}
	return false
}
