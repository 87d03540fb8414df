// Package llmspell provides a self-correcting engine backed by an
// OpenAI-compatible chat completions API. The model owns the full ranking
// decision and returns one corrected token.
package llmspell

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultModel   = "gpt-5-mini"
	DefaultBaseURL = "https://api.openai.com/v1"
)

// Engine sends single-token correction requests to the chat API.
type Engine struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

// New creates a new Engine. Unset model/baseURL fall back to defaults.
func New(apiKey, model, baseURL string) *Engine {
	if model == "" {
		model = DefaultModel
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Engine{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// --- OpenAI wire types ---

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string            `json:"model"`
	Messages       []chatMessage     `json:"messages"`
	ResponseFormat map[string]string `json:"response_format"`
}

type chatChoice struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// tokenReply is the JSON shape the model is instructed to emit.
type tokenReply struct {
	Corrected string `json:"corrected"`
}

// Correct asks the model for the corrected spelling of token.
func (e *Engine) Correct(token string) (string, error) {
	reqBody := chatRequest{
		Model: e.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: "token:\n" + token},
		},
		ResponseFormat: map[string]string{"type": "json_object"},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), e.client.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		e.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.apiKey)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("llmspell: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("llmspell: read body: %w", err)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(raw, &chatResp); err != nil {
		return "", fmt.Errorf("llmspell: decode response: %w", err)
	}
	if chatResp.Error != nil {
		return "", fmt.Errorf("llmspell: API error: %s", chatResp.Error.Message)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("llmspell: empty choices (status %d)", resp.StatusCode)
	}

	content := stripMarkdownFence(chatResp.Choices[0].Message.Content)

	var reply tokenReply
	if err := json.Unmarshal([]byte(content), &reply); err != nil {
		return "", fmt.Errorf("llmspell: parse JSON output: %w", err)
	}
	if reply.Corrected == "" {
		return token, nil
	}
	return reply.Corrected, nil
}

// stripMarkdownFence removes optional ```json ... ``` wrapping from model
// output.
func stripMarkdownFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}
		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}
	return s
}

const systemPrompt = `You are an English spelling corrector for noisy OCR output. Output JSON only.

Rules:
- The input is a single token, possibly with punctuation attached.
- If the token is already spelled correctly, return it unchanged.
- Never explain; never add words. One token in, one token out.

Output format (JSON only, no Markdown):
{"corrected": "<corrected token>"}`
