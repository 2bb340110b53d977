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
	defaultOpenAIHost  = "https://api.openai.com/v1"
	defaultOpenAIModel = "gpt-4o-mini"
)

// OpenAIProvider implements Provider using the OpenAI Chat Completions API.
type OpenAIProvider struct {
	client *http.Client
	host   string
	model  string
	apiKey string
}

// NewOpenAI creates an OpenAIProvider connected to the given host and model.
// Empty host and model fall back to the defaults.
func NewOpenAI(host, model, apiKey string) (*OpenAIProvider, error) {
	base := strings.TrimSpace(host)
	if base == "" {
		base = defaultOpenAIHost
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("parsing openai host URL: %w", err)
	}
	if strings.TrimSpace(model) == "" {
		model = defaultOpenAIModel
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("openai api key is required (set OPENAI_API_KEY)")
	}

	return &OpenAIProvider{
		client: &http.Client{},
		host:   strings.TrimRight(base, "/"),
		model:  model,
		apiKey: apiKey,
	}, nil
}

func (o *OpenAIProvider) Name() string { return "openai" }

// Assess sends the safety prompt to OpenAI and parses the judgment.
// JSON output is enforced with response_format.type=json_object.
func (o *OpenAIProvider) Assess(ctx context.Context, path string) (Judgment, error) {
	type message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}

	reqBody := struct {
		Model          string    `json:"model"`
		Messages       []message `json:"messages"`
		ResponseFormat struct {
			Type string `json:"type"`
		} `json:"response_format"`
	}{
		Model: o.model,
		Messages: []message{
			{Role: "user", Content: assessPrompt(path)},
		},
	}
	reqBody.ResponseFormat.Type = "json_object"

	body, err := json.Marshal(reqBody)
	if err != nil {
		return Judgment{}, fmt.Errorf("encoding openai request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		o.host+"/chat/completions",
		bytes.NewReader(body),
	)
	if err != nil {
		return Judgment{}, fmt.Errorf("building openai request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+o.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return Judgment{}, fmt.Errorf("openai assess: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		return Judgment{}, fmt.Errorf("openai assess failed: %s", readErrorBody(resp.Body))
	}

	var decoded struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Judgment{}, fmt.Errorf("decoding openai response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return Judgment{}, fmt.Errorf("empty response from model")
	}

	return parseJudgment(decoded.Choices[0].Message.Content)
}
