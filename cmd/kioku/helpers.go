package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/pflag"

	"github.com/kioku-app/kioku/internal/analytics"
	"github.com/kioku-app/kioku/internal/config"
	"github.com/kioku-app/kioku/internal/content"
	"github.com/kioku-app/kioku/internal/content/store"
	"github.com/kioku-app/kioku/internal/database"
	"github.com/kioku-app/kioku/internal/profile"
	"github.com/kioku-app/kioku/internal/source"
	"github.com/kioku-app/kioku/schemas"
)

// levelValue is a --level flag restricted to the known content levels.
type levelValue content.Level

func (l *levelValue) Set(val string) error {
	level, err := content.ParseLevel(val)
	if err != nil {
		return err
	}
	*l = levelValue(level)
	return nil
}

func (l *levelValue) Type() string {
	return "level"
}

func (l *levelValue) String() string {
	return string(*l)
}

var _ pflag.Value = (*levelValue)(nil)

func levelFlagUsage() string {
	levels := content.Levels()
	names := make([]string, 0, len(levels))
	for _, level := range levels {
		names = append(names, level.String())
	}
	return "content level (" + strings.Join(names, ", ") + ")"
}

// buildProviders wires the provider tiers from the config. The remote tier is
// only registered when a manifest URL is configured.
func buildProviders(cfg *config.Config) (*source.Coordinator, *source.CachedProvider) {
	// Bundled snapshot comes from the application binary itself.
	bundled := source.NewBundledProviderFromAssets()
	cached := source.NewCachedProvider(
		store.NewFileStore(cfg.Content.CacheDirectory),
		cfg.Content.CacheExpirationDays,
	)

	providers := []source.Provider{bundled, cached}
	if cfg.Content.ManifestURL != "" {
		remote := source.NewRemoteProvider(
			cfg.Content.ManifestURL,
			source.NewHTTPProber(cfg.Content.ManifestURL),
		)
		providers = append(providers, remote)
	}
	return source.NewCoordinator(cached, providers...), cached
}

// buildRemoteProvider returns the remote tier alone, for commands that must
// bypass the fallback chain.
func buildRemoteProvider(cfg *config.Config) (*source.RemoteProvider, error) {
	if cfg.Content.ManifestURL == "" {
		return nil, fmt.Errorf("content.manifest_url is not configured (set KIOKU_MANIFEST_URL)")
	}
	return source.NewRemoteProvider(
		cfg.Content.ManifestURL,
		source.NewHTTPProber(cfg.Content.ManifestURL),
	), nil
}

// buildSink returns the configured analytics sink, defaulting to a no-op.
func buildSink(cfg *config.Config) analytics.Sink {
	if cfg.Analytics.Endpoint == "" {
		return analytics.NopSink{}
	}
	return analytics.NewHTTPSink(cfg.Analytics.Endpoint)
}

// openDatabase opens the connection and applies pending schema migrations.
func openDatabase(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database.Open > %w", err)
	}
	if err := database.Migrate(ctx, db, schemas.Migrations); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database.Migrate > %w", err)
	}
	return db, nil
}

// resolveLevel picks the content level: the explicit flag when given, the
// learner profile's preferred level otherwise. An explicit level different
// from the preference updates the profile and emits a level-change event.
func resolveLevel(cfg *config.Config, flagValue string, sink analytics.Sink) (content.Level, error) {
	profileStore := profile.NewYAMLStore(cfg.Profile.Path)
	learnerProfile, err := profileStore.Load()
	if err != nil {
		return "", fmt.Errorf("profileStore.Load > %w", err)
	}

	if flagValue == "" {
		return learnerProfile.PreferredLevel, nil
	}

	level, err := content.ParseLevel(flagValue)
	if err != nil {
		return "", err
	}

	if level != learnerProfile.PreferredLevel {
		previous := learnerProfile.PreferredLevel
		learnerProfile.PreferredLevel = level
		if err := profileStore.Save(learnerProfile); err != nil {
			return "", fmt.Errorf("profileStore.Save > %w", err)
		}
		sink.Track(analytics.Event{
			Name: "level_changed",
			Properties: map[string]string{
				"from": previous.String(),
				"to":   level.String(),
			},
		})
	}
	return level, nil
}
