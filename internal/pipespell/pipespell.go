// Package pipespell drives hunspell or aspell over the ispell-compatible
// pipe protocol (-a flag). One subprocess per Engine; replies are cached in
// a bounded LRU so repeated tokens skip the pipe round-trip.
package pipespell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

const replyCacheSize = 16_384

// reply is one parsed pipe answer for a single word.
type reply struct {
	correct bool
	suggest []string
}

// Engine wraps a running ispell-protocol subprocess.
type Engine struct {
	stdin io.WriteCloser
	out   *bufio.Reader
	cache *lru.Cache[string, reply]
	mu    sync.Mutex
}

// NewHunspell starts a hunspell subprocess.
// dictDir: directory containing <lang>.aff / <lang>.dic (pass "" to use the
// system dictionary). lang: dictionary name, e.g. "en_US".
func NewHunspell(dictDir, lang string) (*Engine, error) {
	dictArg := lang
	if dictDir != "" {
		aff := filepath.Join(dictDir, lang+".aff")
		dic := filepath.Join(dictDir, lang+".dic")
		if _, err := os.Stat(aff); err != nil {
			return nil, fmt.Errorf("pipespell: hunspell dict missing: %s", aff)
		}
		if _, err := os.Stat(dic); err != nil {
			return nil, fmt.Errorf("pipespell: hunspell dict missing: %s", dic)
		}
		dictArg = filepath.Join(dictDir, lang)
	}
	return start("hunspell", "-d", dictArg, "-a", "-i", "UTF-8")
}

// NewAspell starts an aspell subprocess for the given language code,
// e.g. "en". Aspell speaks the same pipe protocol as hunspell.
func NewAspell(lang string) (*Engine, error) {
	args := []string{"-a", "--encoding=utf-8"}
	if lang != "" {
		args = append(args, "--lang="+lang)
	}
	return start("aspell", args...)
}

func start(bin string, args ...string) (*Engine, error) {
	cmd := exec.Command(bin, args...)
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("pipespell: stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("pipespell: stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("pipespell: %s start (is %s installed?): %w", bin, bin, err)
	}

	cache, err := lru.New[string, reply](replyCacheSize)
	if err != nil {
		return nil, err
	}
	e := &Engine{
		stdin: stdin,
		out:   bufio.NewReader(stdout),
		cache: cache,
	}
	// Discard the initial banner line, e.g. "Hunspell 1.7.2".
	if _, err := e.out.ReadString('\n'); err != nil {
		if cmd.Process != nil {
			_ = cmd.Process.Kill()
			_ = cmd.Wait()
		}
		return nil, fmt.Errorf("pipespell: %s init failed: %w", bin, err)
	}
	return e, nil
}

// Suggestions returns the backend's candidate corrections for token, in the
// backend's own confidence order. A correctly spelled token yields nil.
func (e *Engine) Suggestions(token string) ([]string, error) {
	r, err := e.ask(token)
	if err != nil {
		return nil, err
	}
	if r.correct {
		return nil, nil
	}
	return r.suggest, nil
}

// Check reports whether the backend considers token correctly spelled.
func (e *Engine) Check(token string) (bool, error) {
	r, err := e.ask(token)
	if err != nil {
		return false, err
	}
	return r.correct, nil
}

func (e *Engine) ask(word string) (reply, error) {
	if r, ok := e.cache.Get(word); ok {
		return r, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	// ^ forces the rest of the line to be treated as one word.
	if _, err := fmt.Fprintf(e.stdin, "^%s\n", word); err != nil {
		return reply{}, err
	}

	r := reply{}
	for {
		line, err := e.out.ReadString('\n')
		if err != nil && err != io.EOF {
			return reply{}, err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break // blank line ends the result for this word
		}
		parseLine(line, &r)
	}

	e.cache.Add(word, r)
	return r, nil
}

// parseLine folds one pipe-protocol answer line into r.
//
//	*, +root → correct
//	-        → correct compound
//	& w n o: s1, s2 → misspelled, suggestions
//	# w o    → misspelled, no suggestions
func parseLine(line string, r *reply) {
	switch line[0] {
	case '*', '+', '-':
		r.correct = true
	case '&':
		r.correct = false
		if idx := strings.Index(line, ": "); idx != -1 {
			for _, s := range strings.Split(line[idx+2:], ", ") {
				if s = strings.TrimSpace(s); s != "" {
					r.suggest = append(r.suggest, s)
				}
			}
		}
	case '#':
		r.correct = false
	}
}
