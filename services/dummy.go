package services

import (
	"context"

	"portfolio/utils"

	"go.uber.org/zap"
)

// DummyService stands in when no backend is configured. Every call reports
// a missing key so the gateway serves the transport fallback.
type DummyService struct{}

// NewDummyService creates the placeholder generator
func NewDummyService() *DummyService {
	return &DummyService{}
}

// Name identifies the generator
func (d *DummyService) Name() string {
	return "dummy"
}

// GenerateContent never reaches the network
func (d *DummyService) GenerateContent(ctx context.Context, prompt string) (string, error) {
	return "", ErrMissingAPIKey
}

// GetStatus returns the status of the placeholder generator
func (d *DummyService) GetStatus() map[string]interface{} {
	return map[string]interface{}{
		"backend": "dummy",
		"status":  "fallback_only",
		"note":    "Set GEMINI_API_KEY to enable AI answers",
	}
}

// NewGenerator picks the generator for the configured backend. A missing
// key always yields the dummy generator.
func NewGenerator(cfg utils.AIConfig, logger *zap.Logger) Generator {
	if cfg.APIKey == "" || cfg.Backend == utils.BackendDummy {
		logger.Warn("AI answers disabled, pages will show fallbacks", zap.String("backend", cfg.Backend))
		return NewDummyService()
	}
	if cfg.Backend == utils.BackendGenAI {
		return NewGenAIService(cfg, logger)
	}
	return NewGeminiService(cfg, logger)
}
