package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kioku-app/kioku/internal/config"
	"github.com/kioku-app/kioku/internal/source"
)

func newContentCommand() *cobra.Command {
	contentCommand := &cobra.Command{
		Use:   "content",
		Short: "Content acquisition commands",
	}

	contentCommand.AddCommand(newContentShowCommand())
	contentCommand.AddCommand(newContentSyncCommand())

	return contentCommand
}

func newContentShowCommand() *cobra.Command {
	var levelFlag levelValue
	command := &cobra.Command{
		Use:   "show",
		Short: "Load content for a level and show what it contains",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			sink := buildSink(cfg)
			level, err := resolveLevel(cfg, string(levelFlag), sink)
			if err != nil {
				return err
			}

			coordinator, _ := buildProviders(cfg)
			parsed, err := coordinator.LoadContent(cmd.Context(), level)
			if err != nil {
				var exhausted *source.AllSourcesError
				if errors.As(err, &exhausted) {
					return fmt.Errorf("content unavailable for level %s: %w", level, err)
				}
				return err
			}

			fmt.Printf("Level %s (content version %s)\n", level, parsed.Version)
			fmt.Printf("  flashcards:     %d\n", len(parsed.Flashcards))
			fmt.Printf("  grammar points: %d\n", len(parsed.GrammarPoints))
			fmt.Printf("  kanji:          %d\n", len(parsed.Kanji))
			fmt.Printf("  exercises:      %d\n", len(parsed.Exercises))
			return nil
		},
	}
	command.Flags().Var(&levelFlag, "level", levelFlagUsage())
	return command
}

func newContentSyncCommand() *cobra.Command {
	var levelFlag levelValue
	command := &cobra.Command{
		Use:   "sync",
		Short: "Refresh the local cache from the remote origin",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			sink := buildSink(cfg)
			level, err := resolveLevel(cfg, string(levelFlag), sink)
			if err != nil {
				return err
			}

			remote, err := buildRemoteProvider(cfg)
			if err != nil {
				return err
			}
			_, cached := buildProviders(cfg)

			manifest, err := remote.Manifest(cmd.Context())
			if err != nil {
				return fmt.Errorf("remote.Manifest > %w", err)
			}

			// The manifest version is the sole authority on staleness: an
			// unchanged version means no download, even for an expired entry.
			if record := cached.Record(level); record != nil && record.Version == manifest.Version {
				if err := cached.Touch(level, manifest.Version); err != nil {
					return fmt.Errorf("cached.Touch > %w", err)
				}
				fmt.Printf("Level %s is already at version %s; cache refreshed without download.\n", level, manifest.Version)
				return nil
			}

			file, err := manifest.FileFor(level)
			if err != nil {
				return err
			}
			data, err := remote.Download(cmd.Context(), file)
			if err != nil {
				return fmt.Errorf("remote.Download > %w", err)
			}
			if err := cached.SaveData(level, data, manifest.Version); err != nil {
				return fmt.Errorf("cached.SaveData > %w", err)
			}

			fmt.Printf("Level %s synced to version %s.\n", level, manifest.Version)
			return nil
		},
	}
	command.Flags().Var(&levelFlag, "level", levelFlagUsage())
	return command
}
