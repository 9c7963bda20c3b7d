// Package source acquires versioned learning content from an ordered set of
// providers: the bundled install-time snapshot, the local cache, and the
// remote origin.
package source

import (
	"context"

	"github.com/kioku-app/kioku/internal/content"
)

// Provider priorities, highest wins. Ties are broken by registration order.
const (
	PriorityBundled = 100
	PriorityCache   = 80
	PriorityRemote  = 50
)

// Result is a successful load: the typed collections plus the raw payload,
// kept so the coordinator can write lower-priority results through to the cache.
type Result struct {
	Content *content.ParsedContent
	Payload content.Payload
}

// Provider is a single content source.
//
//go:generate mockgen -source=provider.go -destination=../mocks/source/mock_provider.go -package=mock_source
type Provider interface {
	// Name identifies the provider in logs and aggregate errors.
	Name() string
	// Priority orders providers, highest first.
	Priority() int
	// HasData reports whether the provider is worth attempting for the level.
	// It must be cheap; a false return skips the provider without a load attempt.
	HasData(ctx context.Context, level content.Level) bool
	// LoadContent acquires and parses the payload for the level.
	LoadContent(ctx context.Context, level content.Level) (*Result, error)
}
