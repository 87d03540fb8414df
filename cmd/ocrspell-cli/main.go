// Command ocrspell-cli corrects tokens from argv, stdin, or a file (one
// token per line) and prints the pretty-printed JSON result.
//
// Usage:
//
//	ocrspell-cli -engine aspell teh selfgovernance [
//	printf 'teh\nrecieve\n' | ocrspell-cli -engine symspell -freq en_freq.txt
//	ocrspell-cli -engine hunspell -dict-dir /usr/share/hunspell -lang en_US -f tokens.txt
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ocrtools/ocrspell/internal/freq"
	"github.com/ocrtools/ocrspell/internal/util"
	"github.com/ocrtools/ocrspell/ocrspell"
)

func main() {
	file     := flag.String("f", "", "file of tokens to read instead of argv/stdin")
	personal := flag.String("d", "", "personal dictionary JSON file (optional)")
	engine   := flag.String("engine", "hunspell", "backend: hunspell | aspell | symspell | wordindex | fuzzy | web | llm")
	dictDir  := flag.String("dict-dir", "", "hunspell dictionary directory")
	lang     := flag.String("lang", "en_US", "hunspell dictionary name / aspell language code")
	words    := flag.String("words", "", "word list file (wordindex and fuzzy engines)")
	freqFile := flag.String("freq", "", "word-frequency file; enables frequency ranking (also the symspell dictionary)")
	maxDiff  := flag.Int("max-diff", ocrspell.DefaultMaxDiffCutoff, "edit-distance cutoff (negative disables)")
	llmKey   := flag.String("llm-key", os.Getenv("OPENAI_API_KEY"), "API key (llm engine)")
	llmModel := flag.String("llm-model", "", "model name (llm engine)")
	llmURL   := flag.String("llm-url", "", "OpenAI-compatible base URL (llm engine)")
	flag.Parse()

	opts := []ocrspell.Option{ocrspell.WithMaxDiffCutoff(*maxDiff)}

	if *personal != "" {
		d, err := ocrspell.LoadDict(*personal)
		must(err)
		opts = append(opts, d.Options()...)
	}
	if *freqFile != "" {
		tbl, err := freq.Load(*freqFile, "en")
		must(err)
		opts = append(opts, ocrspell.WithFrequencies(tbl))
	}

	checker, err := buildChecker(*engine, *dictDir, *lang, *words, *freqFile,
		*llmKey, *llmModel, *llmURL, opts)
	must(err)

	tokens, err := readTokens(*file, flag.Args())
	must(err)

	results := make([]ocrspell.TokenResult, len(tokens))
	for i, tok := range tokens {
		out := checker.Correct(tok)
		results[i] = ocrspell.TokenResult{Token: tok, Corrected: out, Changed: out != tok}
	}

	data, _ := util.MarshalNoEscape(results, true)
	fmt.Println(string(data))
}

func buildChecker(engine, dictDir, lang, words, freqFile,
	llmKey, llmModel, llmURL string, opts []ocrspell.Option) (*ocrspell.Checker, error) {

	switch engine {
	case "hunspell":
		e, err := ocrspell.Hunspell(dictDir, lang)
		if err != nil {
			return nil, err
		}
		return ocrspell.New(e, opts...), nil
	case "aspell":
		e, err := ocrspell.Aspell(aspellLang(lang))
		if err != nil {
			return nil, err
		}
		return ocrspell.New(e, opts...), nil
	case "symspell":
		if freqFile == "" {
			return nil, fmt.Errorf("symspell engine requires -freq")
		}
		e, err := ocrspell.SymSpell(freqFile)
		if err != nil {
			return nil, err
		}
		return ocrspell.New(e, opts...), nil
	case "wordindex":
		if words == "" {
			return nil, fmt.Errorf("wordindex engine requires -words")
		}
		e, err := ocrspell.WordIndex(words)
		if err != nil {
			return nil, err
		}
		return ocrspell.New(e, opts...), nil
	case "fuzzy":
		if words == "" {
			return nil, fmt.Errorf("fuzzy engine requires -words")
		}
		e, err := ocrspell.Fuzzy(words)
		if err != nil {
			return nil, err
		}
		return ocrspell.NewSelfCorrecting(e, opts...), nil
	case "web":
		e, err := ocrspell.WebSpeller("en-US")
		if err != nil {
			return nil, err
		}
		return ocrspell.NewSelfCorrecting(e, opts...), nil
	case "llm":
		if llmKey == "" {
			return nil, fmt.Errorf("llm engine requires -llm-key or OPENAI_API_KEY")
		}
		return ocrspell.NewSelfCorrecting(ocrspell.LLM(llmKey, llmModel, llmURL), opts...), nil
	}
	return nil, fmt.Errorf("unknown engine %q", engine)
}

// aspellLang maps hunspell-style names to aspell codes: en_US → en.
func aspellLang(lang string) string {
	if i := strings.IndexByte(lang, '_'); i > 0 {
		return lang[:i]
	}
	return lang
}

func readTokens(file string, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var r io.Reader = os.Stdin
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var tokens []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if tok := strings.TrimSpace(sc.Text()); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens, sc.Err()
}

func must(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "ocrspell-cli:", err)
		os.Exit(1)
	}
}
