// Package webspell provides a self-correcting engine backed by the public
// LanguageTool HTTP API. The remote service ranks its own replacements; the
// engine applies the first replacement of every match.
package webspell

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"sort"
	"strings"

	fhttp "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
)

// ErrParse signals an unexpected response body from the remote speller.
var ErrParse = errors.New("webspell: could not parse server response")

const (
	defaultBaseURL = "https://api.languagetool.org"
	ua             = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/135.0.0.0 Safari/537.36"
)

// Engine talks to a LanguageTool-compatible endpoint.
type Engine struct {
	client   tls_client.HttpClient
	baseURL  string
	language string
}

// New builds an Engine for the given IETF language tag, e.g. "en-US".
func New(language string) (*Engine, error) {
	return NewWithBaseURL(language, defaultBaseURL)
}

// NewWithBaseURL is New against a self-hosted endpoint.
func NewWithBaseURL(language, baseURL string) (*Engine, error) {
	if language == "" {
		language = "en-US"
	}
	client, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(),
		tls_client.WithTimeoutSeconds(10),
		tls_client.WithClientProfile(profiles.Chrome_133),
	)
	if err != nil {
		return nil, fmt.Errorf("webspell: build client: %w", err)
	}
	return &Engine{
		client:   client,
		baseURL:  strings.TrimRight(baseURL, "/"),
		language: language,
	}, nil
}

// wire types for the /v2/check response
type checkResponse struct {
	Matches []match `json:"matches"`
}

type match struct {
	Offset       int           `json:"offset"`
	Length       int           `json:"length"`
	Replacements []replacement `json:"replacements"`
}

type replacement struct {
	Value string `json:"value"`
}

// Correct submits token to the remote speller and applies its suggested
// replacements. A token the service accepts comes back unchanged.
func (e *Engine) Correct(token string) (string, error) {
	form := url.Values{
		"text":     {token},
		"language": {e.language},
	}

	req, err := fhttp.NewRequest(fhttp.MethodPost, e.baseURL+"/v2/check",
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", ua)
	req.Header.Set("X-Forwarded-For", randV4())

	resp, err := e.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != fhttp.StatusOK {
		return "", fmt.Errorf("webspell: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	var cr checkResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", ErrParse
	}
	return applyMatches(token, cr.Matches), nil
}

// applyMatches replaces each flagged span with its first replacement.
// Applies right-to-left so earlier rune offsets stay valid.
func applyMatches(input string, matches []match) string {
	if len(matches) == 0 {
		return input
	}
	sorted := make([]match, len(matches))
	copy(sorted, matches)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Offset > sorted[j].Offset })

	runes := []rune(input)
	for _, m := range sorted {
		if len(m.Replacements) == 0 {
			continue
		}
		end := m.Offset + m.Length
		if m.Offset < 0 || end > len(runes) {
			continue
		}
		repl := []rune(m.Replacements[0].Value)
		runes = append(runes[:m.Offset], append(repl, runes[end:]...)...)
	}
	return string(runes)
}
