package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kioku-app/kioku/internal/content"
)

func TestYAMLStore_LoadMissingFile(t *testing.T) {
	store := NewYAMLStore(filepath.Join(t.TempDir(), "profile.yml"))

	profile, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, content.LevelN5, profile.PreferredLevel)
	assert.Empty(t, profile.Name)
}

func TestYAMLStore_SaveAndLoad(t *testing.T) {
	// The directory does not exist yet; Save creates it.
	path := filepath.Join(t.TempDir(), "kioku", "profile.yml")
	store := NewYAMLStore(path)

	require.NoError(t, store.Save(&Profile{Name: "Aki", PreferredLevel: content.LevelN3}))

	profile, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "Aki", profile.Name)
	assert.Equal(t, content.LevelN3, profile.PreferredLevel)
}

func TestYAMLStore_LoadDefaultsEmptyLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yml")
	require.NoError(t, os.WriteFile(path, []byte("name: Aki\n"), 0644))

	profile, err := NewYAMLStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "Aki", profile.Name)
	assert.Equal(t, content.LevelN5, profile.PreferredLevel)
}

func TestYAMLStore_LoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yml")
	require.NoError(t, os.WriteFile(path, []byte(":\t:::"), 0644))

	_, err := NewYAMLStore(path).Load()
	assert.Error(t, err)
}
