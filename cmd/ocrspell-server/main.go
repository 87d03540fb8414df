// Command ocrspell-server provides an HTTP REST API for token correction.
//
// Usage:
//
//	ocrspell-server -p 8080 -engine aspell -freq en_freq.txt
//	ocrspell-server -p 8080 -engine hunspell -dict-dir /usr/share/hunspell -lang en_US
//	ocrspell-server -p 8080 -engine llm -llm-key $OPENAI_API_KEY
//	ocrspell-server -p 8080 -engine aspell -redis localhost:6379
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ocrtools/ocrspell/internal/customdict"
	"github.com/ocrtools/ocrspell/internal/freq"
	"github.com/ocrtools/ocrspell/ocrspell"
)

func main() {
	port     := flag.String("p", envOr("PORT", "8080"), "port to listen on")
	engine   := flag.String("engine", envOr("ENGINE", "aspell"), "backend: hunspell | aspell | symspell | wordindex | fuzzy | web | llm")
	dictDir  := flag.String("dict-dir", envOr("DICT_DIR", ""), "hunspell dictionary directory")
	lang     := flag.String("lang", envOr("DICT_LANG", "en_US"), "hunspell dictionary name / aspell language code")
	words    := flag.String("words", envOr("WORD_LIST", ""), "word list file (wordindex and fuzzy engines)")
	freqFile := flag.String("freq", envOr("FREQ_FILE", ""), "word-frequency file; enables frequency ranking")
	personal := flag.String("d", envOr("PERSONAL_DICT", ""), "personal dictionary JSON file")
	redisAddr := flag.String("redis", envOr("REDIS_ADDR", ""), "Redis address for the shared personal dictionary (optional)")

	llmKey   := flag.String("llm-key", envOr("OPENAI_API_KEY", ""), "API key (llm engine)")
	llmModel := flag.String("llm-model", envOr("LLM_MODEL", ""), "model name (llm engine)")
	llmURL   := flag.String("llm-url", envOr("LLM_BASE_URL", ""), "OpenAI-compatible base URL (llm engine)")
	flag.Parse()

	var opts []ocrspell.Option

	if *personal != "" {
		d, err := ocrspell.LoadDict(*personal)
		if err != nil {
			log.Fatalf("personal dictionary load failed: %v", err)
		}
		opts = append(opts, d.Options()...)
		log.Printf("   personal: %s (%d words, %d subs)\n", *personal, len(d.Words), len(d.Subs))
	}

	if *redisAddr != "" {
		dictOpts, err := loadRedisDict(*redisAddr)
		if err != nil {
			log.Fatalf("redis personal dictionary load failed: %v", err)
		}
		opts = append(opts, dictOpts...)
		log.Printf("   redis   : %s\n", *redisAddr)
	}

	if *freqFile != "" {
		tbl, err := freq.Load(*freqFile, "en")
		if err != nil {
			log.Fatalf("frequency table load failed: %v", err)
		}
		opts = append(opts, ocrspell.WithFrequencies(tbl))
		log.Printf("   freq    : %s (%d words)\n", *freqFile, tbl.Len())
	}

	checker, err := buildChecker(*engine, *dictDir, *lang, *words, *freqFile,
		*llmKey, *llmModel, *llmURL, opts)
	if err != nil {
		log.Fatalf("engine init failed: %v", err)
	}
	ocrspell.Active = checker
	log.Printf("   backend : %s\n", *engine)

	http.HandleFunc("/v1/correct", ocrspell.CorrectHandler)
	http.HandleFunc("/health", ocrspell.HealthHandler)
	http.HandleFunc("/openapi.json", ocrspell.OpenAPIHandler)
	http.HandleFunc("/", ocrspell.DocsHandler)

	addr := fmt.Sprintf(":%s", *port)
	log.Printf("🚀 ocrspell server listening on http://localhost:%s\n", *port)
	log.Printf("   POST http://localhost:%s/v1/correct\n", *port)
	log.Printf("   GET  http://localhost:%s/health\n", *port)
	log.Printf("   GET  http://localhost:%s/       (Redoc UI)\n", *port)
	log.Fatal(http.ListenAndServe(addr, nil))
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
		code := lang
		if i := strings.IndexByte(code, '_'); i > 0 {
			code = code[:i]
		}
		e, err := ocrspell.Aspell(code)
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

// loadRedisDict pulls the shared personal dictionary out of Redis once, at
// startup; the Checker's view of it is immutable afterwards.
func loadRedisDict(addr string) ([]ocrspell.Option, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client := redis.NewClient(&redis.Options{Addr: addr})
	store := customdict.New(client, "")

	dictWords, err := store.Words(ctx)
	if err != nil {
		return nil, err
	}
	subs, err := store.Subs(ctx)
	if err != nil {
		return nil, err
	}

	opts := []ocrspell.Option{ocrspell.WithPersonalDict(dictWords...)}
	if len(subs) > 0 {
		opts = append(opts, ocrspell.WithSubstitutions(subs))
	}
	return opts, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
