package aiassist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const (
	defaultGeminiHost  = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiModel = "gemini-2.0-flash"
)

// GeminiProvider implements Provider using the Gemini generateContent API.
type GeminiProvider struct {
	client *http.Client
	host   string
	model  string
	apiKey string
}

// NewGemini creates a GeminiProvider connected to the given host and model.
// Empty host and model fall back to the defaults.
func NewGemini(host, model, apiKey string) (*GeminiProvider, error) {
	base := strings.TrimSpace(host)
	if base == "" {
		base = defaultGeminiHost
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("parsing gemini host URL: %w", err)
	}
	if strings.TrimSpace(model) == "" {
		model = defaultGeminiModel
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini api key is required (set GEMINI_API_KEY)")
	}

	return &GeminiProvider{
		client: &http.Client{},
		host:   strings.TrimRight(base, "/"),
		model:  model,
		apiKey: apiKey,
	}, nil
}

func (g *GeminiProvider) Name() string { return "gemini" }

// Assess sends the safety prompt to Gemini and parses the judgment.
func (g *GeminiProvider) Assess(ctx context.Context, path string) (Judgment, error) {
	type part struct {
		Text string `json:"text"`
	}
	type content struct {
		Parts []part `json:"parts"`
	}

	reqBody := struct {
		Contents         []content `json:"contents"`
		GenerationConfig struct {
			ResponseMIMEType string `json:"responseMimeType"`
		} `json:"generationConfig"`
	}{
		Contents: []content{
			{Parts: []part{{Text: assessPrompt(path)}}},
		},
	}
	reqBody.GenerationConfig.ResponseMIMEType = "application/json"

	body, err := json.Marshal(reqBody)
	if err != nil {
		return Judgment{}, fmt.Errorf("encoding gemini request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		g.host, g.model, url.QueryEscape(g.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return Judgment{}, fmt.Errorf("building gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return Judgment{}, fmt.Errorf("gemini assess: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		return Judgment{}, fmt.Errorf("gemini assess failed: %s", readErrorBody(resp.Body))
	}

	var decoded struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Judgment{}, fmt.Errorf("decoding gemini response: %w", err)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return Judgment{}, fmt.Errorf("empty response from model")
	}

	return parseJudgment(decoded.Candidates[0].Content.Parts[0].Text)
}
