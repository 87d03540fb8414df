// Package symspell provides a candidate-producing engine over an in-process
// symmetric-delete index (github.com/eskriett/spell), built from a
// "word count" frequency file.
package symspell

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/eskriett/spell"
)

// Engine wraps a trained speller.
type Engine struct {
	s *spell.Spell
}

// New loads a frequency dictionary (one "word count" pair per line) into a
// fresh speller.
func New(dictPath string) (*Engine, error) {
	f, err := os.Open(dictPath)
	if err != nil {
		return nil, fmt.Errorf("symspell: open dictionary: %w", err)
	}
	defer f.Close()

	s := spell.New()
	sc := bufio.NewScanner(f)
	n := 0
	for sc.Scan() {
		parts := strings.Fields(sc.Text())
		if len(parts) < 2 {
			continue
		}
		count, err := strconv.Atoi(parts[1])
		if err != nil {
			continue
		}
		s.AddEntry(spell.Entry{
			Word:     strings.ToLower(parts[0]),
			WordData: spell.WordData{"frequency": count},
		})
		n++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("symspell: read dictionary: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("symspell: no entries in %s", dictPath)
	}
	return &Engine{s: s}, nil
}

// Suggestions returns candidate corrections in the speller's own order.
// When the primary lookup is empty it falls back to segmentation, which
// handles run-together compounds ("thequick" → "the quick").
func (e *Engine) Suggestions(token string) ([]string, error) {
	sugs, err := e.s.Lookup(strings.ToLower(token))
	if err != nil {
		return nil, err
	}
	if len(sugs) == 0 {
		seg, err := e.s.Segment(strings.ToLower(token))
		if err != nil {
			return nil, nil
		}
		if out := fmt.Sprint(seg); out != "" && out != strings.ToLower(token) {
			return []string{out}, nil
		}
		return nil, nil
	}

	out := make([]string, len(sugs))
	for i, s := range sugs {
		out[i] = s.Word
	}
	return out, nil
}

// Check reports whether token is a dictionary word (exact match only).
func (e *Engine) Check(token string) (bool, error) {
	sugs, err := e.s.Lookup(strings.ToLower(token), spell.EditDistance(0))
	if err != nil {
		return false, err
	}
	return len(sugs) > 0, nil
}
