package source

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/kioku-app/kioku/internal/content"
)

// Coordinator visits providers strictly in descending priority order and
// returns the first success. Provider failures are logged, never propagated;
// only the aggregate AllSourcesError crosses this boundary.
type Coordinator struct {
	providers []Provider
	cache     *CachedProvider
}

// NewCoordinator orders the given providers by priority, highest first.
// Registration order breaks ties. The cache provider, when non-nil, receives
// a best-effort write-through after any success from a lower-priority source.
func NewCoordinator(cache *CachedProvider, providers ...Provider) *Coordinator {
	ordered := make([]Provider, len(providers))
	copy(ordered, providers)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority() > ordered[j].Priority()
	})
	return &Coordinator{providers: ordered, cache: cache}
}

// LoadContent acquires content for a level from the first provider that can
// answer. It never synthesizes empty content: when every provider fails, the
// caller gets an AllSourcesError distinct from "empty but valid".
func (c *Coordinator) LoadContent(ctx context.Context, level content.Level) (*content.ParsedContent, error) {
	var attempts []error
	for _, provider := range c.providers {
		if !provider.HasData(ctx, level) {
			slog.Default().Debug("provider has no data, skipping",
				slog.String("provider", provider.Name()),
				slog.String("level", level.String()))
			attempts = append(attempts, fmt.Errorf("%s: %w", provider.Name(), ErrNotFound))
			continue
		}

		result, err := provider.LoadContent(ctx, level)
		if err != nil {
			slog.Default().Warn("provider failed to load content",
				slog.String("provider", provider.Name()),
				slog.String("level", level.String()),
				slog.Any("error", err))
			attempts = append(attempts, fmt.Errorf("%s: %w", provider.Name(), err))
			continue
		}

		c.writeThrough(provider, level, result)
		return result.Content, nil
	}

	return nil, &AllSourcesError{Level: level, Attempts: attempts}
}

// writeThrough saves a result from below the cache tier so subsequent loads
// hit the cache. It is best-effort; a failed save never fails the load.
func (c *Coordinator) writeThrough(provider Provider, level content.Level, result *Result) {
	if c.cache == nil || provider.Priority() >= c.cache.Priority() {
		return
	}
	if err := c.cache.SaveData(level, result.Payload.Data, result.Payload.Version); err != nil {
		slog.Default().Warn("cache write-through failed",
			slog.String("provider", provider.Name()),
			slog.String("level", level.String()),
			slog.Any("error", err))
	}
}
