package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"portfolio/utils"

	"go.uber.org/zap"
)

// GeminiService calls the generateContent REST endpoint directly
type GeminiService struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
}

// GeminiRequest is the generateContent request body
type GeminiRequest struct {
	Contents []GeminiContent `json:"contents"`
}

// GeminiContent is one conversation turn
type GeminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []GeminiPart `json:"parts"`
}

// GeminiPart holds text
type GeminiPart struct {
	Text string `json:"text"`
}

// GeminiResponse is the subset of the generateContent response we read
type GeminiResponse struct {
	Candidates []struct {
		Content      GeminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback,omitempty"`
}

// NewGeminiService creates a REST generator from configuration. A zero
// timeout keeps the transport default.
func NewGeminiService(cfg utils.AIConfig, logger *zap.Logger) *GeminiService {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = utils.DefaultEndpoint
	}
	return &GeminiService{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger.Named("gemini"),
	}
}

// Name identifies the generator
func (g *GeminiService) Name() string {
	return "gemini-rest:" + g.model
}

// requestURL fills the model into the endpoint template and appends the key.
func (g *GeminiService) requestURL() string {
	u := strings.ReplaceAll(g.endpoint, "{model}", g.model)
	sep := "?"
	if strings.Contains(u, "?") {
		sep = "&"
	}
	return u + sep + "key=" + url.QueryEscape(g.apiKey)
}

// GenerateContent sends one user turn and returns the first candidate's text
func (g *GeminiService) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	payload := GeminiRequest{
		Contents: []GeminiContent{{
			Role:  "user",
			Parts: []GeminiPart{{Text: prompt}},
		}},
	}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.requestURL(), bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to make request to Gemini: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	// Error bodies are kept for the log only.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{Code: resp.StatusCode, Body: truncate(string(body), 512)}
	}

	var result GeminiResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		if result.PromptFeedback != nil && result.PromptFeedback.BlockReason != "" {
			return "", &BlockedError{Reason: result.PromptFeedback.BlockReason}
		}
		return "", ErrUnexpectedResponse
	}

	text := result.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", fmt.Errorf("%w: empty text in first part", ErrUnexpectedResponse)
	}
	return text, nil
}

// GetStatus returns the status of the REST generator
func (g *GeminiService) GetStatus() map[string]interface{} {
	status := map[string]interface{}{
		"backend":  utils.BackendREST,
		"endpoint": strings.ReplaceAll(g.endpoint, "{model}", g.model),
		"model":    g.model,
		"timeout":  g.httpClient.Timeout.String(),
	}
	if g.apiKey != "" {
		status["status"] = "available"
		status["api_key"] = maskKey(g.apiKey)
	} else {
		status["status"] = "unavailable"
		status["error"] = "GEMINI_API_KEY not set"
	}
	return status
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
