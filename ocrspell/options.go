package ocrspell

import "strings"

// Option configures a Checker at construction time.
type Option func(*Checker)

// WithFrequencies enables frequency-based re-ranking of candidate sets.
// Without it, candidates stay in the engine's own order.
func WithFrequencies(src FreqSource) Option {
	return func(c *Checker) { c.freq = src }
}

// WithLanguage sets the language code passed to the frequency source.
// The default is "en".
func WithLanguage(code string) Option {
	return func(c *Checker) { c.lang = code }
}

// WithMaxDiffCutoff sets the edit-distance cutoff. 0 is an active cutoff
// (only exact-distance-0 candidates survive); a negative value disables
// distance filtering entirely.
func WithMaxDiffCutoff(n int) Option {
	return func(c *Checker) { c.maxDiff = n }
}

// WithDistanceFunc replaces the default Levenshtein distance, e.g. with
// edlib.DamerauLevenshteinDistance to count transpositions as one edit.
func WithDistanceFunc(fn DistanceFunc) Option {
	return func(c *Checker) {
		if fn != nil {
			c.distance = fn
		}
	}
}

// WithPersonalDict adds words the Checker always reports as correctly
// spelled. Matching is case-insensitive.
func WithPersonalDict(words ...string) Option {
	return func(c *Checker) {
		for _, w := range words {
			c.dict.Add(strings.ToLower(w))
		}
	}
}

// WithSubstitutions adds exact-match token replacements, applied before the
// cache and the engine.
func WithSubstitutions(subs map[string]string) Option {
	return func(c *Checker) {
		if c.subs == nil {
			c.subs = make(map[string]string, len(subs))
		}
		for k, v := range subs {
			c.subs[k] = v
		}
	}
}
