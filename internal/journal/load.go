package journal

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"dvlg/internal/logs"
)

// maxLineSize bounds a single journal line; pasted log output can be long.
const maxLineSize = 1024 * 1024

// Parse reads r line by line into a Journal. Only read errors are returned.
func Parse(r io.Reader) (*Journal, error) {
	j, _, err := parse(r)
	return j, err
}

func parse(r io.Reader) (*Journal, int, error) {
	b := NewBuilder()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		b.Feed(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	return b.Finish(), b.Dropped(), nil
}

// LoadFile parses the journal file at path
func LoadFile(path string) (*Journal, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	j, dropped, err := parse(file)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	logs.Logger.Printf("parsed %d entries across %d dates from %s", j.Len(), len(j.Dates()), path)
	if dropped > 0 {
		logs.Logger.Printf("%s: dropped %d line(s) with no open entry", path, dropped)
	}
	return j, nil
}

// LoadFiles parses each file with its own builder and merges the results in
// the order given. The first failure aborts the load.
func LoadFiles(paths []string) (*Journal, error) {
	merged := New()
	for _, path := range paths {
		j, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		merged.Merge(j)
	}
	return merged, nil
}
