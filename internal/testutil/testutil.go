// Package testutil provides shared test helpers for creating config files and
// content fixtures.
package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kioku-app/kioku/internal/content"
)

// SetupTestConfig creates a minimal config file and all required directories
// for testing. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	dirs := []string{"cache", "profile", "reports"}
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}

	configContent := fmt.Sprintf(`content:
  cache_directory: %s
  cache_expiration_days: 30
profile:
  path: %s
reports:
  output_directory: %s
`,
		filepath.Join(tmpDir, "cache"),
		filepath.Join(tmpDir, "profile", "profile.yml"),
		filepath.Join(tmpDir, "reports"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SamplePayload returns a decodable content payload with the given version
// and one record per collection.
func SamplePayload(t *testing.T, version string) []byte {
	t.Helper()

	document := map[string]any{
		"version": version,
		"flashcards": []map[string]any{
			{"id": "card-1", "front": "水", "back": "water", "category": "vocabulary"},
		},
		"grammar_points": []map[string]any{
			{"id": "grammar-1", "title": "は (topic marker)"},
		},
		"kanji": []map[string]any{
			{"id": "kanji-1", "character": "水", "meaning": "water"},
		},
		"exercises": []map[string]any{
			{"id": "exercise-1", "prompt": "わたし___ 学生です。", "choices": []string{"は", "を"}, "answer_index": 0},
		},
	}
	data, err := json.Marshal(document)
	require.NoError(t, err)
	return data
}

// WriteCacheEntry writes a payload and its sidecar record into a cache
// directory, the way CachedProvider.SaveData would.
func WriteCacheEntry(t *testing.T, dir string, level content.Level, version string, downloadedAt time.Time) {
	t.Helper()

	require.NoError(t, os.MkdirAll(dir, 0755))
	payloadPath := filepath.Join(dir, level.FileName())
	require.NoError(t, os.WriteFile(payloadPath, SamplePayload(t, version), 0644))

	record := map[string]any{
		"version":      version,
		"downloadDate": downloadedAt.Format(time.RFC3339),
		"level":        level.String(),
	}
	encoded, err := json.Marshal(record)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(payloadPath+".cache_info", encoded, 0644))
}
