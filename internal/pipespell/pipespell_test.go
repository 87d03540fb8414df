package pipespell

import (
	"reflect"
	"testing"
)

func TestParseLine_Correct(t *testing.T) {
	for _, line := range []string{"*", "+ run", "-"} {
		r := reply{}
		parseLine(line, &r)
		if !r.correct {
			t.Fatalf("parseLine(%q): correct = false, want true", line)
		}
		if r.suggest != nil {
			t.Fatalf("parseLine(%q): suggest = %v, want nil", line, r.suggest)
		}
	}
}

func TestParseLine_Suggestions(t *testing.T) {
	r := reply{}
	parseLine("& teh 3 0: the, ten, tea", &r)

	if r.correct {
		t.Fatal("correct = true, want false")
	}
	want := []string{"the", "ten", "tea"}
	if !reflect.DeepEqual(r.suggest, want) {
		t.Fatalf("suggest = %v, want %v", r.suggest, want)
	}
}

func TestParseLine_NoSuggestions(t *testing.T) {
	r := reply{}
	parseLine("# xqzzy 0", &r)

	if r.correct {
		t.Fatal("correct = true, want false")
	}
	if len(r.suggest) != 0 {
		t.Fatalf("suggest = %v, want empty", r.suggest)
	}
}
