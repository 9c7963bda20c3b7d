package source

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kioku-app/kioku/internal/content"
)

// Provider-level failures. The coordinator logs these and falls through to the
// next provider; only AllSourcesError crosses the coordinator boundary.
var (
	// ErrNotFound reports that the requested level has no data at a provider.
	ErrNotFound = errors.New("no content for level")
	// ErrCacheExpired reports a cache entry past its expiration window.
	ErrCacheExpired = errors.New("cached content expired")
	// ErrInvalidManifestEntry reports a manifest without the requested file.
	ErrInvalidManifestEntry = errors.New("manifest has no entry for file")
	// ErrTransport reports a network or I/O failure while fetching content.
	ErrTransport = errors.New("transport failure")
)

// AllSourcesError is the terminal error returned when every provider failed.
// It is distinct from "empty but valid" content: callers presenting it should
// show a content-unavailable state, not an empty list.
type AllSourcesError struct {
	Level    content.Level
	Attempts []error
}

func (e *AllSourcesError) Error() string {
	reasons := make([]string, 0, len(e.Attempts))
	for _, attempt := range e.Attempts {
		reasons = append(reasons, attempt.Error())
	}
	return fmt.Sprintf("all sources exhausted for level %s: %s", e.Level, strings.Join(reasons, "; "))
}

func (e *AllSourcesError) Unwrap() []error {
	return e.Attempts
}
