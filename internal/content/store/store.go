// Package store persists content payloads on disk together with cache metadata sidecars.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kioku-app/kioku/internal/content"
)

// recordSuffix is the sidecar file extension written next to each payload.
const recordSuffix = ".cache_info"

// ErrNotCached reports that a level has no complete cache entry.
var ErrNotCached = errors.New("level is not cached")

// CacheRecord is the metadata sidecar written alongside each cached payload.
type CacheRecord struct {
	Version      string        `json:"version"`
	DownloadedAt time.Time     `json:"downloadDate"`
	Level        content.Level `json:"level"`
}

// FileStore is addressable blob storage under a root directory. A payload is
// only readable while its sidecar record exists; a record without a payload
// (or the reverse) reads as absent.
type FileStore struct {
	rootDir string
}

// NewFileStore creates a FileStore rooted at the given directory.
func NewFileStore(rootDir string) *FileStore {
	return &FileStore{rootDir: rootDir}
}

func (s *FileStore) payloadPath(level content.Level) string {
	return filepath.Join(s.rootDir, level.FileName())
}

func (s *FileStore) recordPath(level content.Level) string {
	return filepath.Join(s.rootDir, level.FileName()+recordSuffix)
}

// Write stores a payload and its record together. If the record cannot be
// written the payload is removed so the entry never exists half-written.
func (s *FileStore) Write(level content.Level, data []byte, record CacheRecord) error {
	if err := os.MkdirAll(s.rootDir, 0755); err != nil {
		return fmt.Errorf("os.MkdirAll > %w", err)
	}

	payloadPath := s.payloadPath(level)
	if err := os.WriteFile(payloadPath, data, 0644); err != nil {
		return fmt.Errorf("os.WriteFile(payload) > %w", err)
	}

	encoded, err := json.Marshal(record)
	if err != nil {
		_ = os.Remove(payloadPath)
		return fmt.Errorf("json.Marshal(cache record) > %w", err)
	}
	if err := os.WriteFile(s.recordPath(level), encoded, 0644); err != nil {
		_ = os.Remove(payloadPath)
		return fmt.Errorf("os.WriteFile(cache record) > %w", err)
	}
	return nil
}

// Read returns the payload and record for a level. It fails closed: a missing
// or unreadable sidecar makes the whole entry absent.
func (s *FileStore) Read(level content.Level) ([]byte, *CacheRecord, error) {
	record, err := s.readRecord(level)
	if err != nil {
		return nil, nil, err
	}

	data, err := os.ReadFile(s.payloadPath(level))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil, fmt.Errorf("payload missing for record: %w", ErrNotCached)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("os.ReadFile(payload) > %w", err)
	}
	return data, record, nil
}

func (s *FileStore) readRecord(level content.Level) (*CacheRecord, error) {
	encoded, err := os.ReadFile(s.recordPath(level))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotCached
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(cache record) > %w", err)
	}

	var record CacheRecord
	if err := json.Unmarshal(encoded, &record); err != nil {
		return nil, fmt.Errorf("json.Unmarshal(cache record) > %w", err)
	}
	return &record, nil
}

// Record returns the metadata sidecar for a level without reading the payload.
// The payload must still exist for the entry to count.
func (s *FileStore) Record(level content.Level) (*CacheRecord, error) {
	record, err := s.readRecord(level)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(s.payloadPath(level)); err != nil {
		return nil, ErrNotCached
	}
	return record, nil
}

// Exists reports whether a complete entry (payload plus record) is stored.
func (s *FileStore) Exists(level content.Level) bool {
	_, err := s.Record(level)
	return err == nil
}

// Delete removes the payload and record for a level. Missing files are not an error.
func (s *FileStore) Delete(level content.Level) error {
	if err := os.Remove(s.payloadPath(level)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("os.Remove(payload) > %w", err)
	}
	if err := os.Remove(s.recordPath(level)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("os.Remove(cache record) > %w", err)
	}
	return nil
}

// Records lists all complete cache entries under the root directory.
func (s *FileStore) Records() ([]CacheRecord, error) {
	entries, err := os.ReadDir(s.rootDir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadDir > %w", err)
	}

	var records []CacheRecord
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), recordSuffix) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), recordSuffix)
		level, err := levelFromFileName(name)
		if err != nil {
			continue
		}
		record, err := s.Record(level)
		if err != nil {
			continue
		}
		records = append(records, *record)
	}
	return records, nil
}

func levelFromFileName(name string) (content.Level, error) {
	name = strings.TrimSuffix(name, ".json")
	_, level, found := strings.Cut(name, "_")
	if !found {
		return "", fmt.Errorf("unexpected payload file name: %q", name)
	}
	return content.ParseLevel(level)
}
