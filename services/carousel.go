package services

import (
	"context"
	"sync"
	"time"

	"portfolio/content"
	"portfolio/models"

	"go.uber.org/zap"
)

// DefaultCarouselInterval is how long each featured post is shown.
const DefaultCarouselInterval = 8 * time.Second

// NextIndex advances a selection over n items, wrapping at the end. A
// negative current index selects the first item.
func NextIndex(current, n int) int {
	if n <= 0 || current < 0 {
		return 0
	}
	return (current + 1) % n
}

// Carousel rotates the featured blog post on a fixed interval.
type Carousel struct {
	mu       sync.RWMutex
	index    int
	items    []models.PageSummary
	interval time.Duration
	logger   *zap.Logger
}

// NewCarousel creates a carousel over the given pages.
func NewCarousel(pages []content.Page, interval time.Duration, logger *zap.Logger) *Carousel {
	if interval <= 0 {
		interval = DefaultCarouselInterval
	}
	items := make([]models.PageSummary, len(pages))
	for i, p := range pages {
		items[i] = p.PageSummary()
	}
	return &Carousel{
		items:    items,
		interval: interval,
		logger:   logger.Named("carousel"),
	}
}

// Run advances the carousel until ctx is cancelled.
func (c *Carousel) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	c.logger.Debug("carousel started", zap.Duration("interval", c.interval), zap.Int("items", len(c.items)))
	for {
		select {
		case <-ctx.Done():
			c.logger.Debug("carousel stopped")
			return nil
		case <-ticker.C:
			c.Advance()
		}
	}
}

// Advance moves to the next item and returns its index.
func (c *Carousel) Advance() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = NextIndex(c.index, len(c.items))
	return c.index
}

// Index returns the current position.
func (c *Carousel) Index() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.index
}

// Featured returns the current item. ok is false when there are no items.
func (c *Carousel) Featured() (models.PageSummary, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.items) == 0 {
		return models.PageSummary{}, false
	}
	return c.items[c.index], true
}
