package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"portfolio/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

func TestGenAIClientIsLazy(t *testing.T) {
	var created int32
	s := NewGenAIService(utils.AIConfig{APIKey: "k", Model: "gemini-2.0-flash"}, zap.NewNop()).
		WithFactory(func(ctx context.Context) (*genai.Client, error) {
			atomic.AddInt32(&created, 1)
			return nil, errors.New("factory down")
		})

	assert.Zero(t, atomic.LoadInt32(&created), "no client at construction")
	assert.Equal(t, false, s.GetStatus()["client_created"])

	_, err := s.GenerateContent(context.Background(), "p")
	assert.ErrorContains(t, err, "factory down")
	assert.Equal(t, int32(1), atomic.LoadInt32(&created))

	// failed creation is not cached
	_, _ = s.GenerateContent(context.Background(), "p")
	assert.Equal(t, int32(2), atomic.LoadInt32(&created))
}

func TestGenAIMissingKey(t *testing.T) {
	var created int32
	s := NewGenAIService(utils.AIConfig{Model: "m"}, zap.NewNop()).
		WithFactory(func(ctx context.Context) (*genai.Client, error) {
			atomic.AddInt32(&created, 1)
			return nil, nil
		})

	_, err := s.GenerateContent(context.Background(), "p")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Zero(t, atomic.LoadInt32(&created))
}

func TestGenAIAgainstFakeEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"Keep going."}]}}]}`)
	}))
	defer srv.Close()

	s := NewGenAIService(utils.AIConfig{
		APIKey:   "k",
		Model:    "gemini-2.0-flash",
		Endpoint: srv.URL + "/v1beta/models/{model}:generateContent",
	}, zap.NewNop())

	text, err := s.GenerateContent(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "Keep going.", text)
	assert.Equal(t, true, s.GetStatus()["client_created"])
}

func TestSDKBaseURL(t *testing.T) {
	assert.Empty(t, sdkBaseURL(""))
	assert.Empty(t, sdkBaseURL(utils.DefaultEndpoint))
	assert.Equal(t, "http://127.0.0.1:9999/", sdkBaseURL("http://127.0.0.1:9999/v1beta/models/{model}:generateContent"))
}

func TestAPIErrorStatus(t *testing.T) {
	code, msg, ok := apiErrorStatus(fmt.Errorf("wrapped: %w", &genai.APIError{Code: 429, Message: "quota"}))
	require.True(t, ok)
	assert.Equal(t, 429, code)
	assert.Equal(t, "quota", msg)

	_, _, ok = apiErrorStatus(errors.New("plain"))
	assert.False(t, ok)
}
