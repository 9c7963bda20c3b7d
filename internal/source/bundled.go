package source

import (
	"context"
	"fmt"
	"io/fs"
	"path"

	"github.com/kioku-app/kioku/internal/assets"
	"github.com/kioku-app/kioku/internal/content"
)

// BundledProvider serves the immutable content snapshot shipped with the
// application. It never goes stale and is always tried first.
type BundledProvider struct {
	fsys fs.FS
}

// NewBundledProvider creates a provider over an embedded asset filesystem
// whose payloads live under content/.
func NewBundledProvider(fsys fs.FS) *BundledProvider {
	return &BundledProvider{fsys: fsys}
}

// NewBundledProviderFromAssets creates a provider over the content snapshots
// compiled into the binary.
func NewBundledProviderFromAssets() *BundledProvider {
	return NewBundledProvider(assets.Content)
}

func (p *BundledProvider) Name() string {
	return "bundled"
}

func (p *BundledProvider) Priority() int {
	return PriorityBundled
}

func (p *BundledProvider) assetPath(level content.Level) string {
	return path.Join("content", level.FileName())
}

// HasData reports whether the install-time asset set contains the level.
func (p *BundledProvider) HasData(_ context.Context, level content.Level) bool {
	_, err := fs.Stat(p.fsys, p.assetPath(level))
	return err == nil
}

// LoadContent reads and parses the bundled payload. No network, no mutation.
func (p *BundledProvider) LoadContent(_ context.Context, level content.Level) (*Result, error) {
	data, err := fs.ReadFile(p.fsys, p.assetPath(level))
	if err != nil {
		return nil, fmt.Errorf("fs.ReadFile(%s): %w", p.assetPath(level), ErrNotFound)
	}

	payload := content.Payload{Level: level, Data: data}
	parsed, err := content.Parse(payload)
	if err != nil {
		return nil, fmt.Errorf("content.Parse > %w", err)
	}
	payload.Version = parsed.Version
	return &Result{Content: parsed, Payload: payload}, nil
}
