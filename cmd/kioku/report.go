package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/kioku-app/kioku/internal/config"
	"github.com/kioku-app/kioku/internal/pdf"
	"github.com/kioku-app/kioku/internal/review"
	"github.com/kioku-app/kioku/internal/statistics"
)

func newReportCommand() *cobra.Command {
	reportCommand := &cobra.Command{
		Use:   "report",
		Short: "Progress report commands",
	}

	reportCommand.AddCommand(newReportExportCommand())

	return reportCommand
}

func newReportExportCommand() *cobra.Command {
	var levelFlag levelValue
	command := &cobra.Command{
		Use:   "export",
		Short: "Export a progress report as markdown and PDF",
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

			overview := statistics.BuildOverview(
				level, items, time.Now(),
				cfg.Review.UpcomingWindowDays,
				review.DefaultMasteryThresholds(),
			)
			report := statistics.RenderMarkdown(overview)

			if err := os.MkdirAll(cfg.Reports.OutputDirectory, 0755); err != nil {
				return fmt.Errorf("os.MkdirAll > %w", err)
			}
			markdownPath := filepath.Join(cfg.Reports.OutputDirectory,
				fmt.Sprintf("progress_%s_%s.md", level, time.Now().Format("20060102")))
			if err := os.WriteFile(markdownPath, []byte(report), 0644); err != nil {
				return fmt.Errorf("os.WriteFile > %w", err)
			}

			pdfPath, err := pdf.ConvertMarkdownToPDF(markdownPath)
			if err != nil {
				return fmt.Errorf("pdf.ConvertMarkdownToPDF > %w", err)
			}

			fmt.Printf("Report written to %s and %s\n", markdownPath, pdfPath)
			return nil
		},
	}
	command.Flags().Var(&levelFlag, "level", levelFlagUsage())
	return command
}
