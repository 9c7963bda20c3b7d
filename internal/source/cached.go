package source

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kioku-app/kioku/internal/content"
	"github.com/kioku-app/kioku/internal/content/store"
)

// DefaultCacheExpirationDays bounds how long a downloaded payload stays fresh.
const DefaultCacheExpirationDays = 30

// CachedProvider serves previously downloaded payloads from a FileStore for a
// bounded number of days. An expired entry is a load failure, never stale data
// silently served.
type CachedProvider struct {
	store      *store.FileStore
	expiration time.Duration
	now        func() time.Time
}

// NewCachedProvider creates a provider over the given store. A non-positive
// expirationDays falls back to DefaultCacheExpirationDays.
func NewCachedProvider(fileStore *store.FileStore, expirationDays int) *CachedProvider {
	if expirationDays <= 0 {
		expirationDays = DefaultCacheExpirationDays
	}
	return &CachedProvider{
		store:      fileStore,
		expiration: time.Duration(expirationDays) * 24 * time.Hour,
		now:        time.Now,
	}
}

func (p *CachedProvider) Name() string {
	return "cache"
}

func (p *CachedProvider) Priority() int {
	return PriorityCache
}

// HasData reports whether a cache record and matching payload both exist.
func (p *CachedProvider) HasData(_ context.Context, level content.Level) bool {
	return p.store.Exists(level)
}

// LoadContent returns the cached payload. Expiration is checked before any
// data is returned; an entry downloaded exactly the expiration window ago is
// already expired.
func (p *CachedProvider) LoadContent(_ context.Context, level content.Level) (*Result, error) {
	data, record, err := p.store.Read(level)
	if errors.Is(err, store.ErrNotCached) {
		return nil, fmt.Errorf("store.Read: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("store.Read > %w", err)
	}

	if p.now().Sub(record.DownloadedAt) >= p.expiration {
		return nil, fmt.Errorf("downloaded at %s: %w",
			record.DownloadedAt.Format(time.RFC3339), ErrCacheExpired)
	}

	payload := content.Payload{Level: level, Version: record.Version, Data: data}
	parsed, err := content.Parse(payload)
	if err != nil {
		return nil, fmt.Errorf("content.Parse > %w", err)
	}
	return &Result{Content: parsed, Payload: payload}, nil
}

// SaveData writes a payload and its cache record through to the store.
func (p *CachedProvider) SaveData(level content.Level, data []byte, version string) error {
	record := store.CacheRecord{
		Version:      version,
		DownloadedAt: p.now(),
		Level:        level,
	}
	if err := p.store.Write(level, data, record); err != nil {
		return fmt.Errorf("store.Write > %w", err)
	}
	return nil
}

// Touch rewrites the cache record with a fresh download timestamp, keeping
// the stored payload. Used when the manifest confirms the cached version is
// still current, so no download is needed.
func (p *CachedProvider) Touch(level content.Level, version string) error {
	data, _, err := p.store.Read(level)
	if err != nil {
		return fmt.Errorf("store.Read > %w", err)
	}
	return p.SaveData(level, data, version)
}

// ClearCache removes the cached entry for a level.
func (p *CachedProvider) ClearCache(level content.Level) error {
	if err := p.store.Delete(level); err != nil {
		return fmt.Errorf("store.Delete > %w", err)
	}
	return nil
}

// Record returns the cache metadata for a level, or nil when nothing is cached.
func (p *CachedProvider) Record(level content.Level) *store.CacheRecord {
	record, err := p.store.Record(level)
	if err != nil {
		return nil
	}
	return record
}

// Records lists all cache entries.
func (p *CachedProvider) Records() ([]store.CacheRecord, error) {
	return p.store.Records()
}

// Expired reports whether a record is past the provider's expiration window.
func (p *CachedProvider) Expired(record store.CacheRecord) bool {
	return p.now().Sub(record.DownloadedAt) >= p.expiration
}
