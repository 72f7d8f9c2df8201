package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"portfolio/content"
	"portfolio/models"

	"go.uber.org/zap"
)

var (
	// ErrPageNotFound is returned for an unknown slug.
	ErrPageNotFound = errors.New("page not found")
	// ErrActionNotFound is returned for an action the page does not offer.
	ErrActionNotFound = errors.New("action not found")
)

// Observer is told about every state transition of a run.
type Observer func(phase Phase, state models.GenerationState)

// RunResult is the settled state of one page action.
type RunResult struct {
	Page    content.Page
	Action  content.Action
	State   models.GenerationState
	Outcome Outcome
}

// Site runs page actions: validate, build the prompt, ask the gateway.
type Site struct {
	gateway   *Gateway
	overrides FallbackLookup
	builders  map[string]PromptFunc
	logger    *zap.Logger
	startTime time.Time
}

// FallbackLookup returns the configured fallback override of one page action.
type FallbackLookup func(slug, action string) models.Fallbacks

// NewSite creates the action runner. Non-empty fields returned by overrides
// replace the page-authored fallbacks; nil means no overrides.
func NewSite(gateway *Gateway, overrides FallbackLookup, logger *zap.Logger) *Site {
	if overrides == nil {
		overrides = func(string, string) models.Fallbacks { return models.Fallbacks{} }
	}
	return &Site{
		gateway:   gateway,
		overrides: overrides,
		builders:  promptBuilders,
		logger:    logger.Named("site"),
		startTime: time.Now(),
	}
}

// Gateway exposes the shared gateway.
func (s *Site) Gateway() *Gateway {
	return s.gateway
}

// Resolve finds a page action.
func (s *Site) Resolve(slug, actionID string) (content.Page, content.Action, error) {
	page, ok := content.Lookup(slug)
	if !ok {
		return content.Page{}, content.Action{}, fmt.Errorf("%w: %s", ErrPageNotFound, slug)
	}
	action, ok := page.Action(actionID)
	if !ok {
		return page, content.Action{}, fmt.Errorf("%w: %s/%s", ErrActionNotFound, slug, actionID)
	}
	if _, ok := s.builders[actionKey(slug, actionID)]; !ok {
		return page, content.Action{}, fmt.Errorf("%w: %s/%s has no prompt", ErrActionNotFound, slug, actionID)
	}
	return page, action, nil
}

// Fallbacks returns the effective fallbacks of an action.
func (s *Site) Fallbacks(slug string, a content.Action) models.Fallbacks {
	return s.overrides(slug, a.ID).Merge(a.Fallbacks)
}

// Prompt validates input and builds the prompt without calling the gateway.
func (s *Site) Prompt(slug, actionID string, in models.ActionRequest) (string, error) {
	_, action, err := s.Resolve(slug, actionID)
	if err != nil {
		return "", err
	}
	in, err = normalize(action, in)
	if err != nil {
		return "", err
	}
	return s.builders[actionKey(slug, actionID)](action, in)
}

// Run executes one page action with a fresh interaction. Validation
// failures return a *ValidationError together with the rejected state.
func (s *Site) Run(ctx context.Context, slug, actionID string, in models.ActionRequest, observe Observer) (RunResult, error) {
	page, action, err := s.Resolve(slug, actionID)
	if err != nil {
		return RunResult{}, err
	}
	res := RunResult{Page: page, Action: action}
	ia := NewInteraction()
	notify := func() {
		res.State = ia.State()
		if observe != nil {
			observe(ia.Phase(), res.State)
		}
	}

	prompt, err := s.Prompt(slug, actionID, in)
	if err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			s.logger.Debug("rejected action input",
				zap.String("page", slug), zap.String("action", actionID), zap.String("reason", vErr.Message))
			ia.Reject(vErr.Message)
			notify()
		}
		return res, err
	}

	if err := ia.Begin(); err != nil {
		return res, err
	}
	notify()

	start := time.Now()
	res.Outcome = s.gateway.Resolve(ctx, prompt, s.Fallbacks(slug, action))
	if res.Outcome.Fallback && action.FallbackAsError {
		ia.Fail(res.Outcome.Text)
	} else {
		ia.Settle(res.Outcome.Text)
	}
	notify()

	s.logger.Info("action settled",
		zap.String("page", slug),
		zap.String("action", actionID),
		zap.Bool("fallback", res.Outcome.Fallback),
		zap.Duration("duration", time.Since(start)))
	return res, nil
}

// GetStatus reports the runner and its gateway.
func (s *Site) GetStatus() map[string]interface{} {
	return map[string]interface{}{
		"status":   "running",
		"uptime":   time.Since(s.startTime).String(),
		"pages":    len(content.Pages()),
		"actions":  len(s.builders),
		"provider": s.gateway.GetStatus(),
	}
}
