package freq

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "freq.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeTable(t, "the 60\nof 30\nteh 10\n")

	tbl, err := Load(path, "en")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if tbl.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", tbl.Len())
	}
	if got := tbl.Frequency("the", "en"); got != 0.6 {
		t.Fatalf("Frequency(the) = %v, want 0.6", got)
	}
	if got := tbl.Frequency("THE", "en"); got != 0.6 {
		t.Fatalf("Frequency(THE) = %v, want 0.6 (case-insensitive)", got)
	}
}

func TestLoad_SkipsMalformedLines(t *testing.T) {
	path := writeTable(t, "the 60\n\njunk\nof notanumber\nten 40\n")

	tbl, err := Load(path, "en")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if tbl.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tbl.Len())
	}
	if got := tbl.Frequency("ten", "en"); got != 0.4 {
		t.Fatalf("Frequency(ten) = %v, want 0.4", got)
	}
}

func TestFrequency_UnknownAndForeignLang(t *testing.T) {
	path := writeTable(t, "the 100\n")

	tbl, err := Load(path, "en")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got := tbl.Frequency("xqzzy", "en"); got != 0 {
		t.Fatalf("Frequency(xqzzy) = %v, want 0", got)
	}
	if got := tbl.Frequency("the", "de"); got != 0 {
		t.Fatalf("Frequency(the, de) = %v, want 0", got)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeTable(t, "")

	tbl, err := Load(path, "en")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if tbl.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", tbl.Len())
	}
	if got := tbl.Frequency("the", "en"); got != 0 {
		t.Fatalf("Frequency() on empty table = %v, want 0", got)
	}
}
