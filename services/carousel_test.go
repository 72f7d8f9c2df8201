package services

import (
	"context"
	"testing"
	"time"

	"portfolio/content"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestNextIndex(t *testing.T) {
	assert.Equal(t, 1, NextIndex(0, 3))
	assert.Equal(t, 2, NextIndex(1, 3))
	assert.Equal(t, 0, NextIndex(2, 3))
	assert.Equal(t, 0, NextIndex(-1, 3))
	assert.Equal(t, 0, NextIndex(-7, 3))
	assert.Equal(t, 0, NextIndex(4, 0))
}

func TestCarouselAdvanceWraps(t *testing.T) {
	pages := content.Pages()
	c := NewCarousel(pages, time.Hour, zap.NewNop())

	f, ok := c.Featured()
	require.True(t, ok)
	assert.Equal(t, pages[0].Slug, f.Slug)

	for range pages {
		c.Advance()
	}
	assert.Equal(t, 0, c.Index())
}

func TestCarouselEmpty(t *testing.T) {
	c := NewCarousel(nil, 0, zap.NewNop())
	_, ok := c.Featured()
	assert.False(t, ok)
	assert.Equal(t, 0, c.Advance())
}

func TestCarouselRunStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	c := NewCarousel(content.Pages(), 5*time.Millisecond, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	assert.Eventually(t, func() bool { return c.Index() > 0 }, time.Second, 5*time.Millisecond)
	cancel()
	assert.NoError(t, <-done)
}
