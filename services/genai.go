package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"portfolio/utils"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// ClientFactory creates the SDK client on first use.
type ClientFactory func(ctx context.Context) (*genai.Client, error)

// GenAIService is the generateContent contract over the official SDK. The
// SDK client is not created until the first request.
type GenAIService struct {
	apiKey  string
	model   string
	baseURL string
	timeout string
	factory ClientFactory
	logger  *zap.Logger

	mu     sync.Mutex
	client *genai.Client
}

// NewGenAIService configures the SDK backend. A non-default endpoint
// contributes its scheme and host as the SDK base URL.
func NewGenAIService(cfg utils.AIConfig, logger *zap.Logger) *GenAIService {
	s := &GenAIService{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: sdkBaseURL(cfg.Endpoint),
		timeout: cfg.Timeout.String(),
		logger:  logger.Named("genai"),
	}
	httpClient := &http.Client{Timeout: cfg.Timeout}
	s.factory = func(ctx context.Context) (*genai.Client, error) {
		cc := &genai.ClientConfig{
			APIKey:     s.apiKey,
			Backend:    genai.BackendGeminiAPI,
			HTTPClient: httpClient,
		}
		if s.baseURL != "" {
			cc.HTTPOptions = genai.HTTPOptions{BaseURL: s.baseURL}
		}
		return genai.NewClient(ctx, cc)
	}
	return s
}

// WithFactory replaces the client factory.
func (s *GenAIService) WithFactory(f ClientFactory) *GenAIService {
	s.factory = f
	return s
}

func sdkBaseURL(endpoint string) string {
	if endpoint == "" || endpoint == utils.DefaultEndpoint {
		return ""
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host + "/"
}

// Name identifies the generator
func (s *GenAIService) Name() string {
	return "gemini-sdk:" + s.model
}

func (s *GenAIService) getClient(ctx context.Context) (*genai.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client != nil {
		return s.client, nil
	}
	cli, err := s.factory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	s.logger.Debug("genai client created", zap.String("model", s.model))
	s.client = cli
	return cli, nil
}

// GenerateContent sends one user turn through the SDK
func (s *GenAIService) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if s.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	cli, err := s.getClient(ctx)
	if err != nil {
		return "", err
	}

	resp, err := cli.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}, nil)
	if err != nil {
		if code, msg, ok := apiErrorStatus(err); ok {
			return "", &StatusError{Code: code, Body: msg}
		}
		return "", fmt.Errorf("genai request failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return "", &BlockedError{Reason: string(resp.PromptFeedback.BlockReason)}
		}
		return "", ErrUnexpectedResponse
	}

	part := resp.Candidates[0].Content.Parts[0]
	if part == nil || part.Text == "" {
		return "", fmt.Errorf("%w: empty text in first part", ErrUnexpectedResponse)
	}
	return part.Text, nil
}

// apiErrorStatus finds an SDK API error in the chain.
func apiErrorStatus(err error) (int, string, bool) {
	for e := err; e != nil; e = errors.Unwrap(e) {
		switch v := any(e).(type) {
		case genai.APIError:
			return v.Code, v.Message, true
		case *genai.APIError:
			return v.Code, v.Message, true
		}
	}
	return 0, "", false
}

// GetStatus returns the status of the SDK generator
func (s *GenAIService) GetStatus() map[string]interface{} {
	s.mu.Lock()
	created := s.client != nil
	s.mu.Unlock()

	status := map[string]interface{}{
		"backend":        utils.BackendGenAI,
		"model":          s.model,
		"timeout":        s.timeout,
		"client_created": created,
	}
	if s.baseURL != "" {
		status["base_url"] = s.baseURL
	}
	if s.apiKey != "" {
		status["status"] = "available"
		status["api_key"] = maskKey(s.apiKey)
	} else {
		status["status"] = "unavailable"
		status["error"] = "GEMINI_API_KEY not set"
	}
	return status
}
