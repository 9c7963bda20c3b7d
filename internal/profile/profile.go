// Package profile stores the learner profile, which supplies the preferred
// content level used to pick the initial level.
package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kioku-app/kioku/internal/content"
)

// Profile is the learner's local profile.
type Profile struct {
	Name           string        `yaml:"name,omitempty"`
	PreferredLevel content.Level `yaml:"preferred_level"`
}

// Store reads and writes the learner profile.
type Store interface {
	Load() (*Profile, error)
	Save(profile *Profile) error
}

// YAMLStore keeps the profile in a single YAML file.
type YAMLStore struct {
	path string
}

// NewYAMLStore creates a store at the given file path.
func NewYAMLStore(path string) *YAMLStore {
	return &YAMLStore{path: path}
}

// Load reads the profile. A missing file yields the default profile with the
// easiest level preferred.
func (s *YAMLStore) Load() (*Profile, error) {
	contents, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return &Profile{PreferredLevel: content.LevelN5}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile > %w", err)
	}

	var profile Profile
	if err := yaml.Unmarshal(contents, &profile); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal > %w", err)
	}
	if profile.PreferredLevel == "" {
		profile.PreferredLevel = content.LevelN5
	}
	return &profile, nil
}

// Save writes the profile, creating its directory when needed.
func (s *YAMLStore) Save(profile *Profile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("os.MkdirAll > %w", err)
	}

	contents, err := yaml.Marshal(profile)
	if err != nil {
		return fmt.Errorf("yaml.Marshal > %w", err)
	}
	if err := os.WriteFile(s.path, contents, 0644); err != nil {
		return fmt.Errorf("os.WriteFile > %w", err)
	}
	return nil
}
