package services

import (
	"context"
	"errors"
	"fmt"

	"portfolio/content"
	"portfolio/models"

	"go.uber.org/zap"
)

// Generator produces text for a prompt using a generateContent style
// endpoint.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Name() string
	GetStatus() map[string]interface{}
}

var (
	// ErrMissingAPIKey is returned without any network call when no key is
	// configured.
	ErrMissingAPIKey = errors.New("gemini api key not set")
	// ErrUnexpectedResponse means the body decoded but carried no text.
	ErrUnexpectedResponse = errors.New("unexpected response structure")
)

// StatusError is a non-2xx answer from the endpoint.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api request failed with status %d", e.Code)
}

// BlockedError reports a prompt rejected by the endpoint's safety filter.
type BlockedError struct {
	Reason string
}

func (e *BlockedError) Error() string {
	return "prompt blocked: " + e.Reason
}

// Outcome is the settled result of one gateway call.
type Outcome struct {
	Text string
	// Fallback is set when Text is a fallback sentence rather than
	// generated content.
	Fallback bool
	Err      error
}

// Gateway turns every generator failure into a page-authored fallback
// sentence. It never retries and never caches.
type Gateway struct {
	generator Generator
	defaults  models.Fallbacks
	logger    *zap.Logger
}

// NewGateway wraps a generator.
func NewGateway(generator Generator, logger *zap.Logger) *Gateway {
	return &Gateway{
		generator: generator,
		defaults:  content.SiteFallbacks,
		logger:    logger.Named("gateway"),
	}
}

// Ask returns the generated text or the matching fallback. It always
// returns a string.
func (g *Gateway) Ask(ctx context.Context, prompt string, fb models.Fallbacks) string {
	return g.Resolve(ctx, prompt, fb).Text
}

// Resolve is Ask with the failure detail kept.
func (g *Gateway) Resolve(ctx context.Context, prompt string, fb models.Fallbacks) Outcome {
	fb = fb.Merge(g.defaults)

	text, err := g.generator.GenerateContent(ctx, prompt)
	if err == nil {
		g.logger.Debug("generated content", zap.String("generator", g.generator.Name()), zap.Int("length", len(text)))
		return Outcome{Text: text}
	}

	out := Outcome{Fallback: true, Err: err}
	var statusErr *StatusError
	var blockedErr *BlockedError
	switch {
	case errors.Is(err, ErrMissingAPIKey):
		g.logger.Warn("skipping generation: no api key configured", zap.String("generator", g.generator.Name()))
		out.Text = fb.Transport
	case errors.As(err, &statusErr):
		g.logger.Error("generation failed with status",
			zap.Int("status", statusErr.Code),
			zap.String("body", statusErr.Body))
		out.Text = fb.Status
	case errors.As(err, &blockedErr):
		g.logger.Warn("prompt blocked", zap.String("reason", blockedErr.Reason))
		out.Text = fb.Blocked + blockedErr.Reason + fb.BlockedSuffix
	case errors.Is(err, ErrUnexpectedResponse):
		g.logger.Error("unexpected response structure", zap.Error(err))
		out.Text = fb.Unexpected
	default:
		g.logger.Error("generation failed", zap.Error(err))
		out.Text = fb.Transport
	}
	return out
}

// GetStatus reports the wrapped generator.
func (g *Gateway) GetStatus() map[string]interface{} {
	status := g.generator.GetStatus()
	status["generator"] = g.generator.Name()
	return status
}

// maskKey hides all but the ends of an API key.
func maskKey(key string) string {
	if len(key) > 8 {
		return key[:4] + "..." + key[len(key)-4:]
	}
	return "***"
}
