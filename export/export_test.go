package export

import (
	"bytes"
	"os"
	"strings"
	"testing"

	cohort "github.com/phonolex/phoneme-cohort"
)

func buildAnalyzer(t *testing.T) *cohort.Analyzer {
	t.Helper()
	a := cohort.NewAnalyzer()
	err := a.Build(
		[]string{"cat", "cats", "in", "into"},
		cohort.PronunciationMap{
			"cat":  cohort.SplitPhonemes("kat"),
			"cats": cohort.SplitPhonemes("kats"),
			"in":   cohort.SplitPhonemes("in"),
			"into": cohort.SplitPhonemes("into"),
		},
		cohort.FrequencyMap{"cat": 4, "cats": 2, "in": 1, "into": 0},
	)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	return a
}

func TestPrefixTable(t *testing.T) {
	a := buildAnalyzer(t)
	dt := PrefixTable(a.PrefixStats())

	if dt.Rows != 9 {
		t.Fatalf("prefix table rows = %d, want 9", dt.Rows)
	}
	if got := dt.CellString("prefix", 0); got != "" {
		t.Errorf("first prefix = %q, want empty prefix", got)
	}
	if got := dt.CellFloat("ent.unweight", 0); got != 2.0 {
		t.Errorf("empty prefix entropy = %v, want 2.0", got)
	}
	if got := dt.CellString("prefix", 8); got != "kats" {
		t.Errorf("last prefix = %q, want kats", got)
	}
}

func TestWordTable(t *testing.T) {
	a := buildAnalyzer(t)
	dt := WordTable(a.WordMetrics())

	if dt.Rows != 4 {
		t.Fatalf("word table rows = %d, want 4", dt.Rows)
	}
	if got := dt.CellString("word", 0); got != "cat" {
		t.Errorf("first word = %q, want cat", got)
	}
	if got := dt.CellString("pron", 1); got != "kats" {
		t.Errorf("second pron = %q, want kats", got)
	}
	if got := dt.CellFloat("unique", 1); got != 4 {
		t.Errorf("uniqueness point of cats = %v, want 4", got)
	}
	if got := dt.CellFloat("freq", 0); got != 4 {
		t.Errorf("raw frequency of cat = %v, want 4", got)
	}
}

func TestPositionTable(t *testing.T) {
	a := buildAnalyzer(t)
	dt := PositionTable(a.Positions())

	if dt.Rows != 13 {
		t.Fatalf("position table rows = %d, want 13", dt.Rows)
	}
	if got := dt.CellString("prefix", 0); got != "k" {
		t.Errorf("first position prefix = %q, want k", got)
	}
	if got := dt.CellFloat("pos", 2); got != 3 {
		t.Errorf("third position = %v, want 3", got)
	}
}

func TestWriteCSV(t *testing.T) {
	a := buildAnalyzer(t)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, PrefixTable(a.PrefixStats())); err != nil {
		t.Fatalf("WriteCSV returned error: %v", err)
	}

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// Header plus one row per prefix.
	if len(lines) != 10 {
		t.Fatalf("CSV lines = %d, want 10", len(lines))
	}
	if !strings.Contains(lines[0], "ent.unweight") {
		t.Errorf("header = %q, missing ent.unweight", lines[0])
	}
}

func TestSaveAll(t *testing.T) {
	a := buildAnalyzer(t)

	base := t.TempDir() + "/cohorts"
	if err := WriteAll(a, base); err != nil {
		t.Fatalf("WriteAll returned error: %v", err)
	}

	for _, suffix := range []string{"_prefix.csv", "_word.csv", "_phoneme.csv"} {
		info, err := os.Stat(base + suffix)
		if err != nil {
			t.Errorf("output %s missing: %v", suffix, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("output %s is empty", suffix)
		}
	}
}
