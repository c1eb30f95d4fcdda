// Command resultsctl runs lookups and source checks against the configured catalog
// without going through Telegram.
package main

import (
	"context"
	"fmt"
	"os"

	"exam_results_bot/internal/app"
	"exam_results_bot/internal/infra/bootstrap"
	"exam_results_bot/internal/infra/config"
	"exam_results_bot/internal/infra/logger"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

type cliState struct {
	cfg *config.AppConfig
}

func newRootCmd() *cobra.Command {
	state := &cliState{}
	var (
		catalogPath string
		dataDir     string
		logLevel    string
	)

	root := &cobra.Command{
		Use:           "resultsctl",
		Short:         "Look up exam results and check subject sources",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if catalogPath != "" {
				cfg.CatalogPath = catalogPath
			}
			if dataDir != "" {
				cfg.DataDir = dataDir
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			logger.InitWithOutput(cfg, cmd.ErrOrStderr())
			state.cfg = cfg
			return nil
		},
	}
	root.PersistentFlags().StringVar(&catalogPath, "catalog", "", "subject catalog YAML (overrides CATALOG_PATH)")
	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", "base directory for csv sources (overrides DATA_DIR)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")

	root.AddCommand(
		newLookupCmd(state),
		newSourcesCmd(state),
		newSubjectsCmd(state),
	)
	return root
}

// withService opens the lookup stack for the duration of fn.
func (s *cliState) withService(ctx context.Context, fn func(*app.LookupService) error) error {
	stack, err := bootstrap.NewLookupStack(ctx, s.cfg, nil, logger.Component("lookup"))
	if err != nil {
		return err
	}
	defer stack.Close()
	return fn(stack.Service)
}
