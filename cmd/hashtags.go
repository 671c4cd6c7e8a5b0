// Package cmd defines and implements the CLI commands for the
// creator-toolkit executable.
package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/patelpranay97/creator-toolkit/internal/export"
	"github.com/patelpranay97/creator-toolkit/internal/progress"
	"github.com/patelpranay97/creator-toolkit/internal/trends"
)

// newHashtagsCmd creates and configures the 'hashtags' subcommand, which
// runs one trending-hashtag collection pass and writes the outputs.
func newHashtagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hashtags",
		Short: "Scrapes trending TikTok hashtags",
		Long: `Fetches trending hashtags from TikTok's Creative Center, trying the
structured API first, the server-rendered page second, and a curated
fallback table last. Writes hashtags.json for the website plus an
optional formatted workbook for review.`,

		RunE: runHashtagsCommand,
	}
}

func runHashtagsCommand(cmd *cobra.Command, _ []string) error {
	logger := resolveLogger(cmd.Context())

	cfg, err := trends.LoadConfig(viper.GetViper())
	if err != nil {
		return fmt.Errorf("load trends config: %w", err)
	}

	scraper := trends.NewScraper(
		cfg,
		trends.NewHashtagAPI(cfg, logger),
		trends.NewPageScraper(cfg, logger),
		progress.NewLogEmitter(logger),
		logger,
	)

	data, source := scraper.Run(cmd.Context())
	now := time.Now().UTC()
	meta := trends.NewMeta(cfg, source, now)

	jsonPath := viper.GetString("output.json_path")
	if err := export.NewJSONWriter(jsonPath, logger).Write(data, meta); err != nil {
		return fmt.Errorf("write hashtag dataset: %w", err)
	}

	// The workbook is a review artifact; failing to produce it must not
	// fail the run.
	if viper.GetBool("output.excel_enabled") {
		excelPath := viper.GetString("output.excel_path")
		if excelPath == "" {
			excelPath = export.DefaultExcelPath(now)
		}
		if err := export.NewExcelWriter(excelPath, logger).Write(data, meta, now); err != nil {
			logger.Warn("skipping workbook export", zap.Error(err))
		}
	}

	logger.Info("hashtag collection complete",
		zap.String("source", string(source)),
		zap.Int("categories", len(data)),
		zap.Int("total_hashtags", data.Total()),
	)
	return nil
}
