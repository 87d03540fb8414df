// Package ocrspell layers shared correction logic over pluggable spelling
// engines: personal dictionaries and substitutions, OCR-specific pre-rules,
// frequency re-ranking, edit-distance filtering, and a per-instance result
// cache. The engines themselves are black boxes behind small contracts.
package ocrspell

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Checker corrects single tokens through one underlying engine.
//
// A Checker is not safe for concurrent use: the correction cache is an
// unsynchronized map. Use one Checker per worker, or serialize calls.
type Checker struct {
	engine   Suggester // candidate-producing engine, nil for self-correcting
	direct   Corrector // self-correcting engine, nil for candidate-producing
	validate Validator // optional capability of engine

	freq     FreqSource
	lang     string
	distance DistanceFunc
	maxDiff  int

	dict  mapset.Set[string] // lower-cased tokens always considered correct
	subs  map[string]string  // exact-match token replacements
	cache map[string]string  // token → chosen correction, append-only
}

// New returns a Checker over a candidate-producing engine. If the engine also
// implements Validator, Check delegates to it and the "self-" hyphen rule is
// enabled.
func New(engine Suggester, opts ...Option) *Checker {
	c := newChecker(opts)
	c.engine = engine
	if v, ok := engine.(Validator); ok {
		c.validate = v
	}
	return c
}

// NewSelfCorrecting returns a Checker over an engine that performs its own
// ranking and returns one final answer. Ranking and filtering are skipped;
// personalization, pre-rules and caching still apply.
func NewSelfCorrecting(engine Corrector, opts ...Option) *Checker {
	c := newChecker(opts)
	c.direct = engine
	return c
}

func newChecker(opts []Option) *Checker {
	c := &Checker{
		lang:     "en",
		distance: defaultDistance,
		maxDiff:  DefaultMaxDiffCutoff,
		dict:     mapset.NewThreadUnsafeSet[string](),
		cache:    make(map[string]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Correct returns the best correction for token, or token itself when the
// engine has nothing better. Engine failures are treated as "no suggestion";
// Correct never fails. Results are memoized, so each distinct token hits the
// engine at most once per Checker lifetime. Substitution-table hits bypass
// both the cache and the engine.
func (c *Checker) Correct(token string) string {
	if repl, ok := c.subs[token]; ok {
		return repl
	}
	if cached, ok := c.cache[token]; ok {
		return cached
	}
	out := c.resolve(token)
	c.cache[token] = out
	return out
}

func (c *Checker) resolve(token string) string {
	// Reconstruct a dropped hyphen: "selfgovernance" → "self-governance".
	// Needs the engine to vouch for the hyphenated form.
	if c.validate != nil &&
		strings.HasPrefix(token, "self") && !strings.HasPrefix(token, "self-") {
		if hyph := "self-" + token[len("self"):]; c.Check(hyph) {
			return hyph
		}
	}

	// OCR misreads of "I" as a lone bracket.
	if token == "[" || token == "]" {
		return "I"
	}

	if c.direct != nil {
		out, err := c.direct.Correct(token)
		if err != nil || out == "" {
			return token
		}
		return out
	}

	cands, err := c.engine.Suggestions(token)
	if err != nil {
		return token
	}
	return c.rank(token, cands)
}

// Check reports whether token is correctly spelled. The personal dictionary
// (matched case-insensitively) wins over the engine; engines without a
// Validator cannot vouch for anything, so Check then reports false.
func (c *Checker) Check(token string) bool {
	if c.dict.Contains(strings.ToLower(token)) {
		return true
	}
	if c.validate == nil {
		return false
	}
	ok, err := c.validate.Check(token)
	return err == nil && ok
}

// CacheLen returns the number of memoized corrections.
func (c *Checker) CacheLen() int { return len(c.cache) }
