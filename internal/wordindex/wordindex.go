// Package wordindex provides a candidate-producing engine over an indexed
// dictionary (github.com/f1monkey/spellchecker) loaded from a plain word
// list.
package wordindex

import (
	"fmt"
	"os"

	"github.com/f1monkey/spellchecker"
)

const (
	alphabet       = "abcdefghijklmnopqrstuvwxyz'-"
	maxErrors      = 2
	maxSuggestions = 10
)

// Engine wraps an indexed spellchecker.
type Engine struct {
	sc *spellchecker.Spellchecker
}

// New builds the index from a word list file, one word per line.
func New(dictPath string) (*Engine, error) {
	f, err := os.Open(dictPath)
	if err != nil {
		return nil, fmt.Errorf("wordindex: open word list: %w", err)
	}
	defer f.Close()

	sc, err := spellchecker.New(alphabet, spellchecker.WithMaxErrors(maxErrors))
	if err != nil {
		return nil, fmt.Errorf("wordindex: %w", err)
	}
	if err := sc.AddFrom(f); err != nil {
		return nil, fmt.Errorf("wordindex: load word list: %w", err)
	}
	return &Engine{sc: sc}, nil
}

// Suggestions returns up to maxSuggestions candidates for token.
func (e *Engine) Suggestions(token string) ([]string, error) {
	sugs, err := e.sc.Suggest(token, maxSuggestions)
	if err != nil {
		return nil, err
	}
	return sugs, nil
}

// Check reports whether the index contains token.
func (e *Engine) Check(token string) (bool, error) {
	return e.sc.IsCorrect(token), nil
}
