package ocrspell

import (
	"sort"

	"github.com/hbollon/go-edlib"
)

// DefaultMaxDiffCutoff is the default edit-distance cutoff: candidates
// further than this from the original token are discarded.
const DefaultMaxDiffCutoff = 3

// FreqSource serves corpus word frequencies, keyed by word and language
// code. Unknown words report 0.
type FreqSource interface {
	Frequency(word, lang string) float64
}

// DistanceFunc computes the edit distance between two raw strings.
// No case folding is applied by the caller.
type DistanceFunc func(a, b string) int

func defaultDistance(a, b string) int {
	return edlib.LevenshteinDistance(a, b)
}

// rank picks the single best correction from an engine's candidate set:
// reorder by corpus frequency (stable, descending), drop candidates beyond
// the edit-distance cutoff, take the first survivor. An empty or fully
// filtered set falls back to the original token.
func (c *Checker) rank(token string, cands []string) string {
	if len(cands) == 0 {
		return token
	}

	if c.freq != nil {
		freqs := make(map[string]float64, len(cands))
		for _, t := range cands {
			freqs[t] = c.freq.Frequency(t, c.lang)
		}
		// Sort a copy; the engine may hand out a shared slice.
		sorted := make([]string, len(cands))
		copy(sorted, cands)
		// Stable keeps the engine's confidence order on ties.
		sort.SliceStable(sorted, func(i, j int) bool {
			return freqs[sorted[i]] > freqs[sorted[j]]
		})
		cands = sorted
	}

	if c.maxDiff >= 0 {
		kept := make([]string, 0, len(cands))
		for _, t := range cands {
			if c.distance(token, t) <= c.maxDiff {
				kept = append(kept, t)
			}
		}
		cands = kept
	}

	if len(cands) == 0 {
		return token
	}
	return cands[0]
}
