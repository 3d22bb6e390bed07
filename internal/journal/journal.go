package journal

import "sort"

// SentinelDate files entries that appear before the first date header.
const SentinelDate = "1900-01-01"

// Journal groups entries by date key. Keys are YYYY-MM-DD strings, so
// lexicographic order is chronological order.
type Journal struct {
	entries map[string][]Entry
	total   int
}

// New returns an empty Journal
func New() *Journal {
	return &Journal{entries: make(map[string][]Entry)}
}

// Add appends an entry under date, keeping insertion order
func (j *Journal) Add(date string, e Entry) {
	j.entries[date] = append(j.entries[date], e)
	j.total++
}

// Dates returns every date key in ascending order
func (j *Journal) Dates() []string {
	dates := make([]string, 0, len(j.entries))
	for d := range j.entries {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// Entries returns the entries filed under date
func (j *Journal) Entries(date string) []Entry {
	return j.entries[date]
}

// Len returns the number of entries across all dates
func (j *Journal) Len() int {
	return j.total
}

// Merge appends every entry of other, date by date, after the entries already
// present.
func (j *Journal) Merge(other *Journal) {
	for _, date := range other.Dates() {
		for _, e := range other.entries[date] {
			j.Add(date, e)
		}
	}
}
