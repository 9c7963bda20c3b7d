package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kioku-app/kioku/internal/config"
	"github.com/kioku-app/kioku/internal/content"
)

func newCacheCommand() *cobra.Command {
	cacheCommand := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and clear the local content cache",
	}

	cacheCommand.AddCommand(newCacheStatusCommand())
	cacheCommand.AddCommand(newCacheClearCommand())

	return cacheCommand
}

func newCacheStatusCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "status",
		Short: "Show cached levels, versions, and freshness",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			_, cached := buildProviders(cfg)
			records, err := cached.Records()
			if err != nil {
				return fmt.Errorf("cached.Records > %w", err)
			}
			if len(records) == 0 {
				fmt.Println("The content cache is empty.")
				return nil
			}

			for _, record := range records {
				freshness := "fresh"
				if cached.Expired(record) {
					freshness = "expired"
				}
				fmt.Printf("%s\tversion %s\tdownloaded %s\t%s\n",
					record.Level, record.Version,
					record.DownloadedAt.Format(time.RFC3339), freshness)
			}
			return nil
		},
	}
	return command
}

func newCacheClearCommand() *cobra.Command {
	var levelFlag levelValue
	command := &cobra.Command{
		Use:   "clear",
		Short: "Remove cached content for one level or all levels",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			_, cached := buildProviders(cfg)

			levels := content.Levels()
			if levelFlag != "" {
				levels = []content.Level{content.Level(levelFlag)}
			}

			for _, level := range levels {
				if err := cached.ClearCache(level); err != nil {
					return fmt.Errorf("cached.ClearCache(%s) > %w", level, err)
				}
			}
			fmt.Println("Cache cleared.")
			return nil
		},
	}
	command.Flags().Var(&levelFlag, "level", "content level to clear (default: all)")
	return command
}
