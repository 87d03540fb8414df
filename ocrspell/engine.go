package ocrspell

import (
	"github.com/ocrtools/ocrspell/internal/fuzzymodel"
	"github.com/ocrtools/ocrspell/internal/llmspell"
	"github.com/ocrtools/ocrspell/internal/pipespell"
	"github.com/ocrtools/ocrspell/internal/symspell"
	"github.com/ocrtools/ocrspell/internal/webspell"
	"github.com/ocrtools/ocrspell/internal/wordindex"
)

// Suggester is a candidate-producing engine: given a token it returns zero or
// more candidate corrections, possibly in the engine's own confidence order.
type Suggester interface {
	Suggestions(token string) ([]string, error)
}

// Validator reports whether the engine considers a token correctly spelled.
// Optional capability of a Suggester; the "self-" hyphen rule needs it.
type Validator interface {
	Check(token string) (bool, error)
}

// Corrector is a self-correcting engine: it owns the full decision and
// returns a single corrected token.
type Corrector interface {
	Correct(token string) (string, error)
}

/***----- engine constructors -----***/

// Hunspell starts a hunspell subprocess engine.
// dictDir: directory containing <lang>.aff / <lang>.dic ("" for the system
// dictionary). lang: dictionary name, e.g. "en_US".
func Hunspell(dictDir, lang string) (Suggester, error) {
	e, err := pipespell.NewHunspell(dictDir, lang)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Aspell starts an aspell subprocess engine for the given language code.
func Aspell(lang string) (Suggester, error) {
	e, err := pipespell.NewAspell(lang)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// SymSpell builds an in-process symmetric-delete engine from a
// "word count" frequency file.
func SymSpell(dictPath string) (Suggester, error) {
	e, err := symspell.New(dictPath)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// WordIndex builds an indexed dictionary engine from a plain word list
// (one word per line).
func WordIndex(dictPath string) (Suggester, error) {
	e, err := wordindex.New(dictPath)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Fuzzy trains a self-correcting fuzzy model from a plain word list.
func Fuzzy(dictPath string) (Corrector, error) {
	e, err := fuzzymodel.New(dictPath)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// WebSpeller returns a self-correcting engine backed by the remote
// LanguageTool API. language is an IETF tag such as "en-US".
func WebSpeller(language string) (Corrector, error) {
	e, err := webspell.New(language)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// LLM returns a self-correcting engine backed by an OpenAI-compatible
// chat completions API. Empty model/baseURL fall back to defaults.
func LLM(apiKey, model, baseURL string) Corrector {
	return llmspell.New(apiKey, model, baseURL)
}
