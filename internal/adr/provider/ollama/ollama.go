package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/adrforge/adrforge-backend/internal/adr/provider"
	"github.com/adrforge/adrforge-backend/internal/adr/template"
)

const (
	// DefaultBaseURL is the conventional local Ollama endpoint. No
	// credential applies; the server is assumed to run beside us.
	DefaultBaseURL = "http://localhost:11434"

	generatePath   = "/api/generate"
	defaultTimeout = 120 * time.Second
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		baseURL:    base,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// NewWithHTTPClient is intended for tests; it avoids network access by
// using a custom RoundTripper.
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	c := New(baseURL)
	if httpClient != nil {
		c.httpClient = httpClient
	}
	return c
}

func (c *Client) Name() string { return "ollama" }

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// normalizeModel maps display names onto Ollama tags, e.g. "Gemma 2B"
// becomes "gemma2b".
func normalizeModel(model string) string {
	return strings.ToLower(strings.Join(strings.Fields(model), ""))
}

func (c *Client) Generate(ctx context.Context, prompt, model, templateID string) (*provider.Draft, error) {
	tpl := template.Resolve(templateID)

	// The generate API takes a single string, so the system prompt is
	// concatenated ahead of the user input.
	combined := tpl.SystemPrompt + "\n\nUser input:\n" + prompt

	reqBody := generateRequest{
		Model:  normalizeModel(model),
		Prompt: combined,
		Stream: false,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(reqBody); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generatePath, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to generate ADR with Ollama: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		return nil, fmt.Errorf("failed to generate ADR with Ollama: %w", &provider.HTTPError{
			Provider:   "Ollama",
			StatusCode: resp.StatusCode,
			Body:       string(raw),
		})
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to generate ADR with Ollama: %w", err)
	}

	text := strings.TrimSpace(out.Response)
	if text == "" {
		return nil, fmt.Errorf("failed to generate ADR with Ollama: empty response")
	}

	return &provider.Draft{
		Title:    provider.ExtractTitle(text),
		Markdown: text,
	}, nil
}
