package ocrspell

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDict(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.json")
	content := `{"words": ["Weyl", "eigenstate"], "subs": {"teh": "the"}}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := LoadDict(path)
	if err != nil {
		t.Fatalf("LoadDict() error: %v", err)
	}
	if len(d.Words) != 2 || d.Words[0] != "Weyl" {
		t.Fatalf("Words = %v, want [Weyl eigenstate]", d.Words)
	}
	if d.Subs["teh"] != "the" {
		t.Fatalf("Subs = %v, want teh→the", d.Subs)
	}
}

func TestLoadDict_Missing(t *testing.T) {
	if _, err := LoadDict(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("LoadDict() on a missing file: error = nil, want non-nil")
	}
}

func TestDictOptions(t *testing.T) {
	d := &Dict{Words: []string{"Weyl"}, Subs: map[string]string{"teh": "the"}}
	c := New(&stubSuggester{}, d.Options()...)

	if !c.Check("weyl") {
		t.Fatal("Check(weyl) = false, want true via dict words")
	}
	if got := c.Correct("teh"); got != "the" {
		t.Fatalf("Correct(teh) = %q, want %q via dict subs", got, "the")
	}
}

func TestDictOptions_Nil(t *testing.T) {
	var d *Dict
	if opts := d.Options(); opts != nil {
		t.Fatalf("(*Dict)(nil).Options() = %v, want nil", opts)
	}
}
