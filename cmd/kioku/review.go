package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kioku-app/kioku/internal/cli"
	"github.com/kioku-app/kioku/internal/config"
	"github.com/kioku-app/kioku/internal/review"
	"github.com/kioku-app/kioku/internal/source"
)

func newReviewCommand() *cobra.Command {
	reviewCommand := &cobra.Command{
		Use:   "review",
		Short: "Spaced-repetition review commands",
	}

	reviewCommand.AddCommand(newReviewDueCommand())
	reviewCommand.AddCommand(newReviewStartCommand())

	return reviewCommand
}

func newReviewDueCommand() *cobra.Command {
	var levelFlag levelValue
	command := &cobra.Command{
		Use:   "due",
		Short: "List the items due for review",
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

			db, err := openDatabase(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			repo := review.NewDBItemRepository(db)
			items, err := repo.FindByLevel(cmd.Context(), level)
			if err != nil {
				return fmt.Errorf("repo.FindByLevel > %w", err)
			}

			now := time.Now()
			due := review.DueItems(items, now)
			if len(due) == 0 {
				fmt.Println("Nothing is due for review.")
				return nil
			}

			for _, item := range due {
				dueAt := "never reviewed"
				if item.NextDueAt != nil {
					dueAt = item.NextDueAt.Format("2006-01-02")
				}
				fmt.Printf("%s\t%s\tdue %s\tstreak %d\n", item.ID, item.Front, dueAt, item.ConsecutiveSuccesses)
			}
			fmt.Printf("\n%d item(s) due.\n", len(due))
			return nil
		},
	}
	command.Flags().Var(&levelFlag, "level", levelFlagUsage())
	return command
}

func newReviewStartCommand() *cobra.Command {
	var levelFlag levelValue
	command := &cobra.Command{
		Use:   "start",
		Short: "Run an interactive review session over the due items",
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

			db, err := openDatabase(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			session := cli.NewReviewSession(review.NewDBItemRepository(db), sink, os.Stdin)
			return session.Run(cmd.Context(), parsed)
		},
	}
	command.Flags().Var(&levelFlag, "level", levelFlagUsage())
	return command
}
