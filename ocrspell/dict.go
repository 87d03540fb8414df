package ocrspell

import (
	"encoding/json"
	"os"
)

// Dict is a user-supplied personal dictionary: words that are always
// correct, and exact-token substitutions applied before any engine call.
type Dict struct {
	Words []string          `json:"words"`
	Subs  map[string]string `json:"subs,omitempty"`
}

// NewDict creates a Dict from the given words.
func NewDict(words ...string) *Dict {
	return &Dict{Words: words}
}

// LoadDict reads a JSON file of the form
// {"words": ["Weyl", ...], "subs": {"teh": "the"}}.
func LoadDict(path string) (*Dict, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var d Dict
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Options expands the Dict into Checker options.
func (d *Dict) Options() []Option {
	if d == nil {
		return nil
	}
	opts := []Option{WithPersonalDict(d.Words...)}
	if len(d.Subs) > 0 {
		opts = append(opts, WithSubstitutions(d.Subs))
	}
	return opts
}
