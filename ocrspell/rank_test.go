package ocrspell

import (
	"testing"

	"github.com/hbollon/go-edlib"
)

// mapFreq is an in-memory FreqSource for tests.
type mapFreq map[string]float64

func (m mapFreq) Frequency(word, lang string) float64 {
	if lang != "en" {
		return 0
	}
	return m[word]
}

func TestRank_FrequencyWins(t *testing.T) {
	eng := &stubSuggester{sugs: map[string][]string{"teh": {"ten", "the"}}}
	c := New(eng, WithFrequencies(mapFreq{"the": 100, "ten": 50}))

	// "ten" comes first in engine order but "the" is the more common word.
	if got := c.Correct("teh"); got != "the" {
		t.Fatalf("Correct(teh) = %q, want %q", got, "the")
	}
}

func TestRank_TiesKeepEngineOrder(t *testing.T) {
	eng := &stubSuggester{sugs: map[string][]string{"teh": {"ten", "tea", "the"}}}
	c := New(eng, WithFrequencies(mapFreq{"ten": 5, "tea": 5, "the": 5}))

	if got := c.Correct("teh"); got != "ten" {
		t.Fatalf("Correct(teh) = %q, want %q (stable sort keeps engine order on ties)", got, "ten")
	}
}

func TestRank_ZeroFrequencyStillEligible(t *testing.T) {
	eng := &stubSuggester{sugs: map[string][]string{"blorp": {"blurp"}}}
	c := New(eng, WithFrequencies(mapFreq{}))

	// Frequency sorting reorders, it never filters.
	if got := c.Correct("blorp"); got != "blurp" {
		t.Fatalf("Correct(blorp) = %q, want %q", got, "blurp")
	}
}

func TestRank_DistanceCutoffFilters(t *testing.T) {
	// Levenshtein: teh→ten = 1, teh→the = 2.
	eng := &stubSuggester{sugs: map[string][]string{"teh": {"the", "ten"}}}
	c := New(eng,
		WithFrequencies(mapFreq{"the": 100, "ten": 50}),
		WithMaxDiffCutoff(1),
	)

	if got := c.Correct("teh"); got != "ten" {
		t.Fatalf("Correct(teh) = %q, want %q (the is beyond the cutoff)", got, "ten")
	}
}

func TestRank_CutoffZeroFiltersEverything(t *testing.T) {
	eng := &stubSuggester{sugs: map[string][]string{"teh": {"the", "ten"}}}
	c := New(eng,
		WithFrequencies(mapFreq{"the": 100, "ten": 50}),
		WithMaxDiffCutoff(0),
	)

	if got := c.Correct("teh"); got != "teh" {
		t.Fatalf("Correct(teh) = %q, want original token back", got)
	}
}

func TestRank_NegativeCutoffDisablesFilter(t *testing.T) {
	eng := &stubSuggester{sugs: map[string][]string{"a": {"completely-unrelated"}}}
	c := New(eng, WithMaxDiffCutoff(-1))

	if got := c.Correct("a"); got != "completely-unrelated" {
		t.Fatalf("Correct(a) = %q, want %q", got, "completely-unrelated")
	}
}

func TestRank_TranspositionAwareDistance(t *testing.T) {
	// With Damerau-Levenshtein the teh→the transposition counts as one
	// edit, so "the" survives a cutoff of 1 and wins on frequency.
	eng := &stubSuggester{sugs: map[string][]string{"teh": {"ten", "the"}}}
	c := New(eng,
		WithFrequencies(mapFreq{"the": 100, "ten": 50}),
		WithMaxDiffCutoff(1),
		WithDistanceFunc(func(a, b string) int {
			return edlib.DamerauLevenshteinDistance(a, b)
		}),
	)

	if got := c.Correct("teh"); got != "the" {
		t.Fatalf("Correct(teh) = %q, want %q", got, "the")
	}
}

func TestRank_WithoutFrequenciesKeepsEngineOrder(t *testing.T) {
	eng := &stubSuggester{sugs: map[string][]string{"teh": {"ten", "the"}}}
	c := New(eng)

	if got := c.Correct("teh"); got != "ten" {
		t.Fatalf("Correct(teh) = %q, want %q (engine confidence order)", got, "ten")
	}
}

func TestRank_LanguageMismatchDisablesRanking(t *testing.T) {
	eng := &stubSuggester{sugs: map[string][]string{"teh": {"ten", "the"}}}
	c := New(eng,
		WithFrequencies(mapFreq{"the": 100, "ten": 50}),
		WithLanguage("de"),
	)

	// The source only knows "en": every candidate scores 0 and the
	// engine order stands.
	if got := c.Correct("teh"); got != "ten" {
		t.Fatalf("Correct(teh) = %q, want %q", got, "ten")
	}
}
