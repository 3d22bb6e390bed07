package journal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuild_ContinuationAccumulates(t *testing.T) {
	j := Build([]string{
		"@2024-01-02",
		"- [ ] buy milk",
		"remember 2%",
		"and eggs",
	})

	entries := j.Entries("2024-01-02")
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Body() != "remember 2%\nand eggs" {
		t.Errorf("unexpected body: %q", entries[0].Body())
	}
}

func TestBuild_BlankLinesDoNotCloseOrExtend(t *testing.T) {
	j := Build([]string{
		"@2024-01-02",
		"- [ ] buy milk",
		"",
		"   ",
		"remember 2%",
		"\t",
	})

	entries := j.Entries("2024-01-02")
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Body() != "remember 2%" {
		t.Errorf("unexpected body: %q", entries[0].Body())
	}
}

func TestBuild_BodyKeepsIndentationAndDropsTrailingSpace(t *testing.T) {
	j := Build([]string{
		"@2024-01-02",
		"/work standup",
		"  - alice: blocked   ",
		"  - bob: done\r",
	})

	entries := j.Entries("2024-01-02")
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	want := "  - alice: blocked\n  - bob: done"
	if entries[0].Body() != want {
		t.Errorf("expected body %q, got %q", want, entries[0].Body())
	}
}

func TestBuild_OrphanContinuationDropped(t *testing.T) {
	b := NewBuilder()
	for _, line := range []string{"@2024-01-02", "just some prose", "more prose"} {
		b.Feed(line)
	}
	j := b.Finish()

	if j.Len() != 0 {
		t.Errorf("expected empty journal, got %d entries", j.Len())
	}
	if len(j.Entries("2024-01-02")) != 0 {
		t.Error("expected no entries for 2024-01-02")
	}
	if b.Dropped() != 2 {
		t.Errorf("expected 2 dropped lines, got %d", b.Dropped())
	}
}

func TestBuild_SentinelDate(t *testing.T) {
	j := Build([]string{
		"- [ ] before any date",
		"! also early",
		"@2024-01-02",
		"- [x] dated",
	})

	early := j.Entries(SentinelDate)
	if len(early) != 2 {
		t.Fatalf("expected 2 entries under %s, got %d", SentinelDate, len(early))
	}
	if Title(early[0]) != "before any date" {
		t.Errorf("unexpected first entry: %q", Title(early[0]))
	}
	if len(j.Entries("2024-01-02")) != 1 {
		t.Errorf("expected 1 dated entry")
	}
}

func TestBuild_DateHeaderClosesOpenEntry(t *testing.T) {
	j := Build([]string{
		"@2024-01-02",
		"- [ ] first",
		"first body",
		"@2024-01-03",
		"not attached",
		"- [ ] second",
	})

	first := j.Entries("2024-01-02")
	if len(first) != 1 || first[0].Body() != "first body" {
		t.Fatalf("unexpected 2024-01-02 entries: %+v", first)
	}
	second := j.Entries("2024-01-03")
	if len(second) != 1 || second[0].Body() != "" {
		t.Fatalf("unexpected 2024-01-03 entries: %+v", second)
	}
}

func TestBuild_TrailingEntryIsFiled(t *testing.T) {
	j := Build([]string{"@2024-01-02", "? last one", "with body"})

	entries := j.Entries("2024-01-02")
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Kind() != KindQuestion {
		t.Errorf("expected question, got %v", entries[0].Kind())
	}
}

func TestBuild_EntryCountMatchesEntryLines(t *testing.T) {
	lines := []string{
		"@2024-01-10",
		"- [ ] a",
		"",
		"[2024-01-11] b",
		"body",
		"/work c",
		"",
		"",
		"! d",
		"@2024-01-02",
		"$ e",
		"? f",
		"?! g",
		"prose",
	}

	want := 0
	for _, l := range lines {
		if Classify(l).Kind == SignalEntry {
			want++
		}
	}

	j := Build(lines)
	if j.Len() != want {
		t.Errorf("expected %d entries, got %d", want, j.Len())
	}
	if want != 7 {
		t.Errorf("expected 7 entry lines in fixture, counted %d", want)
	}
}

func TestBuild_InsertionOrderWithinDate(t *testing.T) {
	j := Build([]string{"@2024-01-02", "- [ ] one", "/n two", "- [ ] three"})

	var titles []string
	for _, e := range j.Entries("2024-01-02") {
		titles = append(titles, Title(e))
	}
	if strings.Join(titles, ",") != "one,two,three" {
		t.Errorf("unexpected order: %v", titles)
	}
}

func TestJournal_DatesSorted(t *testing.T) {
	j := Build([]string{
		"@2024-01-10", "- [ ] later",
		"@2024-01-02", "- [ ] earlier",
		"- [ ] undated?",
	})

	dates := j.Dates()
	want := []string{"2024-01-02", "2024-01-10"}
	if len(dates) != len(want) {
		t.Fatalf("expected %v, got %v", want, dates)
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Errorf("expected %v, got %v", want, dates)
		}
	}
}

func TestJournal_Merge(t *testing.T) {
	a := Build([]string{"@2024-01-02", "- [ ] from a"})
	b := Build([]string{"@2024-01-02", "- [ ] from b", "@2024-01-05", "! b only"})

	a.Merge(b)
	if a.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", a.Len())
	}
	same := a.Entries("2024-01-02")
	if len(same) != 2 || Title(same[0]) != "from a" || Title(same[1]) != "from b" {
		t.Errorf("unexpected merge order: %+v", same)
	}
}

func TestLoadFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "log.dvlg")
	content := "@2024-01-02\n- [ ] buy milk\nremember 2%\n\n/work standup\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write error: %v", err)
	}

	j, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if j.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", j.Len())
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.dvlg"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestLoadFiles_IndependentBuilders(t *testing.T) {
	tmpDir := t.TempDir()
	first := filepath.Join(tmpDir, "a.dvlg")
	second := filepath.Join(tmpDir, "b.dvlg")
	// The open entry at the end of a.dvlg must not swallow b.dvlg's prose.
	os.WriteFile(first, []byte("@2024-01-02\n- [ ] a\n"), 0644)
	os.WriteFile(second, []byte("orphan prose\n! early\n"), 0644)

	j, err := LoadFiles([]string{first, second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if j.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", j.Len())
	}
	if got := j.Entries("2024-01-02")[0].Body(); got != "" {
		t.Errorf("expected empty body, got %q", got)
	}
	if len(j.Entries(SentinelDate)) != 1 {
		t.Errorf("expected b.dvlg's entry under the sentinel date")
	}
}

func TestParse_LongLine(t *testing.T) {
	long := strings.Repeat("x", 200*1024)
	j, err := Parse(strings.NewReader("@2024-01-02\n- [ ] t\n" + long + "\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := j.Entries("2024-01-02")[0].Body(); len(got) != len(long) {
		t.Errorf("expected body of %d bytes, got %d", len(long), len(got))
	}
}
