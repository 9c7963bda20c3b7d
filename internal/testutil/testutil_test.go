package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kioku-app/kioku/internal/content"
)

func TestSetupTestConfig(t *testing.T) {
	tmpDir := t.TempDir()
	got := SetupTestConfig(t, tmpDir)

	want := filepath.Join(tmpDir, "config.yml")
	assert.Equal(t, want, got)

	contents, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "cache_directory")
	assert.Contains(t, string(contents), "output_directory")

	for _, d := range []string{"cache", "profile", "reports"} {
		info, err := os.Stat(filepath.Join(tmpDir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir())
	}
}

func TestSamplePayload(t *testing.T) {
	var document map[string]any
	require.NoError(t, json.Unmarshal(SamplePayload(t, "2025.07.0"), &document))

	assert.Equal(t, "2025.07.0", document["version"])
	for _, key := range []string{"flashcards", "grammar_points", "kanji", "exercises"} {
		assert.Len(t, document[key], 1, key)
	}
}

func TestWriteCacheEntry(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	downloadedAt := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	WriteCacheEntry(t, dir, content.LevelN5, "2025.07.0", downloadedAt)

	_, err := os.Stat(filepath.Join(dir, "content_n5.json"))
	require.NoError(t, err)

	recordContents, err := os.ReadFile(filepath.Join(dir, "content_n5.json.cache_info"))
	require.NoError(t, err)

	var record map[string]string
	require.NoError(t, json.Unmarshal(recordContents, &record))
	assert.Equal(t, "2025.07.0", record["version"])
	assert.Equal(t, "n5", record["level"])
	assert.Equal(t, "2025-07-01T00:00:00Z", record["downloadDate"])
}
