// Package freq serves corpus word frequencies from a "word count" text
// file. Lookups return the word's relative frequency in the corpus, so the
// values are comparable across differently sized frequency files.
package freq

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/edsrzf/mmap-go"
)

// Table is an in-memory frequency table for one language.
type Table struct {
	lang   string
	counts map[string]float64
	total  float64
}

// Load reads a frequency file (one "word count" pair per line) for the
// given language code. The file is mapped read-only while parsing; large
// corpus tables never hit the Go heap twice.
func Load(path, lang string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("freq: open table: %w", err)
	}
	defer f.Close()

	t := &Table{lang: lang, counts: make(map[string]float64)}

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("freq: stat table: %w", err)
	}
	if st.Size() == 0 {
		return t, nil
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("freq: map table: %w", err)
	}
	defer data.Unmap()

	rest := []byte(data)
	for len(rest) > 0 {
		line := rest
		if i := bytes.IndexByte(rest, '\n'); i >= 0 {
			line, rest = rest[:i], rest[i+1:]
		} else {
			rest = nil
		}
		fields := strings.Fields(string(line))
		if len(fields) < 2 {
			continue
		}
		count, err := strconv.ParseFloat(fields[1], 64)
		if err != nil || count < 0 {
			continue
		}
		word := strings.ToLower(fields[0])
		t.counts[word] += count
		t.total += count
	}
	return t, nil
}

// Lang returns the table's language code.
func (t *Table) Lang() string { return t.lang }

// Len returns the number of distinct words in the table.
func (t *Table) Len() int { return len(t.counts) }

// Frequency returns the relative corpus frequency of word in [0, 1].
// Unknown words and foreign language codes report 0. Matching is
// case-insensitive.
func (t *Table) Frequency(word, lang string) float64 {
	if lang != t.lang || t.total == 0 {
		return 0
	}
	return t.counts[strings.ToLower(word)] / t.total
}
