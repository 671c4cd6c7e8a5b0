package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/patelpranay97/creator-toolkit/internal/logging"
	"github.com/patelpranay97/creator-toolkit/pkg/config"
)

var cfgFile string

// loggerKeyType is the key for storing the logger in the context.
type loggerKeyType string

const loggerKey loggerKeyType = "logger"

// newRootCmd creates and configures the root command.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "creator-toolkit",
		Short: "Data collection tools for the creator-toolkit website.",
		Long: `creator-toolkit gathers the datasets the website serves to creators.
Each subcommand runs one collection pass and exits, so the tool can be
driven by cron or a CI schedule without any resident process.`,

		// This hook runs AFTER config is loaded but BEFORE the subcommand's
		// RunE, so every command sees a ready logger.
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cfgFile != "" {
				viper.SetConfigFile(cfgFile)
				if err := viper.ReadInConfig(); err != nil {
					return fmt.Errorf("read config file %s: %w", cfgFile, err)
				}
			}
			logger, err := logging.New(viper.GetBool("logging.development"))
			if err != nil {
				return fmt.Errorf("initialize logger: %w", err)
			}
			ctx := context.WithValue(cmd.Context(), loggerKey, logger)
			cmd.SetContext(ctx)
			return nil
		},

		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			resolveLogger(cmd.Context()).Sync() //nolint:errcheck // best-effort flush
		},
	}

	cobra.OnInitialize(config.InitConfig)

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default searches . and $HOME/.creator-toolkit)")

	cmd.AddCommand(newHashtagsCmd())

	return cmd
}

// resolveLogger returns the context logger, or a no-op logger when the
// command runs outside the root command's hooks (as in tests).
func resolveLogger(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(loggerKey).(*zap.Logger); ok && logger != nil {
		return logger
	}
	return zap.NewNop()
}

// Execute is the main entry point.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
