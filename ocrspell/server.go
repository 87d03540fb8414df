package ocrspell

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
)

// Active is the shared Checker used by the HTTP handlers. The handlers
// serialize access to it, since a Checker is not safe for concurrent use.
var (
	Active   *Checker
	activeMu sync.Mutex
)

// CorrectRequest is the HTTP request body for /v1/correct.
type CorrectRequest struct {
	Tokens []string `json:"tokens"` // tokens to correct (required)
}

// TokenResult is one corrected token in the response.
type TokenResult struct {
	Token     string `json:"token"`
	Corrected string `json:"corrected"`
	Changed   bool   `json:"changed"`
}

// CorrectResponse is the HTTP response body for /v1/correct.
type CorrectResponse struct {
	Results   []TokenResult `json:"results"`
	CacheSize int           `json:"cacheSize"`
}

// CorrectHandler handles POST /v1/correct requests.
func CorrectHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if Active == nil {
		http.Error(w, "No checker configured", http.StatusServiceUnavailable)
		return
	}

	var req CorrectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if len(req.Tokens) == 0 {
		http.Error(w, "tokens is required", http.StatusBadRequest)
		return
	}

	activeMu.Lock()
	resp := CorrectResponse{Results: make([]TokenResult, len(req.Tokens))}
	for i, tok := range req.Tokens {
		out := Active.Correct(tok)
		resp.Results[i] = TokenResult{Token: tok, Corrected: out, Changed: out != tok}
	}
	resp.CacheSize = Active.CacheLen()
	activeMu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(resp)
}

// HealthHandler handles GET /health requests.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, `{"status":"ok","service":"ocrspell"}`)
}

// OpenAPIHandler serves the embedded OpenAPI document.
func OpenAPIHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, openAPIJSON)
}

// DocsHandler serves the Redoc UI.
func DocsHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, redocHTML)
}

const openAPIJSON = `{
  "openapi": "3.0.3",
  "info": {
    "title": "ocrspell API",
    "description": "Unified spelling correction over pluggable engines, with personal dictionaries, frequency ranking and OCR repair rules.",
    "version": "1.0.0"
  },
  "paths": {
    "/v1/correct": {
      "post": {
        "summary": "Correct tokens",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": { "$ref": "#/components/schemas/CorrectRequest" },
              "examples": {
                "basic": { "value": { "tokens": ["teh", "selfgovernance", "["] } }
              }
            }
          }
        },
        "responses": {
          "200": {
            "description": "Corrections",
            "content": {
              "application/json": {
                "schema": { "$ref": "#/components/schemas/CorrectResponse" },
                "example": {
                  "results": [
                    { "token": "teh", "corrected": "the", "changed": true },
                    { "token": "selfgovernance", "corrected": "self-governance", "changed": true },
                    { "token": "[", "corrected": "I", "changed": true }
                  ],
                  "cacheSize": 3
                }
              }
            }
          },
          "400": { "description": "Malformed request" },
          "503": { "description": "No checker configured" }
        }
      }
    },
    "/health": {
      "get": {
        "summary": "Health",
        "responses": {
          "200": {
            "description": "Service up",
            "content": {
              "application/json": {
                "example": { "status": "ok", "service": "ocrspell" }
              }
            }
          }
        }
      }
    }
  },
  "components": {
    "schemas": {
      "CorrectRequest": {
        "type": "object",
        "required": ["tokens"],
        "properties": {
          "tokens": { "type": "array", "items": { "type": "string" }, "description": "Tokens to correct", "example": ["teh"] }
        }
      },
      "CorrectResponse": {
        "type": "object",
        "properties": {
          "results": { "type": "array", "items": { "$ref": "#/components/schemas/TokenResult" } },
          "cacheSize": { "type": "integer", "description": "Number of memoized corrections after this request" }
        }
      },
      "TokenResult": {
        "type": "object",
        "properties": {
          "token":     { "type": "string", "description": "Input token" },
          "corrected": { "type": "string", "description": "Chosen correction (token itself when nothing better)" },
          "changed":   { "type": "boolean" }
        }
      }
    }
  }
}`

const redocHTML = `<!DOCTYPE html>
<html>
<head>
  <title>ocrspell API Docs</title>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <style>body { margin: 0; padding: 0; }</style>
</head>
<body>
  <redoc spec-url="/openapi.json" expand-responses="200" hide-download-button></redoc>
  <script src="https://cdn.jsdelivr.net/npm/redoc@latest/bundles/redoc.standalone.js"></script>
</body>
</html>`
