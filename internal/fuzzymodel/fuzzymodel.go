// Package fuzzymodel provides a self-correcting engine over a trained
// github.com/sajari/fuzzy model: the model ranks internally and returns one
// final answer per token.
package fuzzymodel

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/sajari/fuzzy"
)

// Engine wraps a trained fuzzy model.
type Engine struct {
	m *fuzzy.Model
}

// New trains a model from a word list file, one word per line.
func New(dictPath string) (*Engine, error) {
	f, err := os.Open(dictPath)
	if err != nil {
		return nil, fmt.Errorf("fuzzymodel: open word list: %w", err)
	}
	defer f.Close()

	m := fuzzy.NewModel()
	m.SetDepth(2)     // maximum edit distance
	m.SetThreshold(1) // minimum frequency threshold

	n := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		word := strings.TrimSpace(sc.Text())
		if word == "" {
			continue
		}
		m.TrainWord(strings.ToLower(word))
		n++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fuzzymodel: read word list: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("fuzzymodel: no words in %s", dictPath)
	}
	return &Engine{m: m}, nil
}

// Correct returns the model's single best correction for token, or token
// itself when the model has no opinion.
func (e *Engine) Correct(token string) (string, error) {
	out := e.m.SpellCheck(token)
	if out == "" {
		return token, nil
	}
	return out, nil
}
