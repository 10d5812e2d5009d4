package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/finstitch/internal/contracts"
	"github.com/wonny/finstitch/internal/mapping"
	"github.com/wonny/finstitch/internal/stitch"
	"github.com/wonny/finstitch/pkg/config"
	"github.com/wonny/finstitch/pkg/logger"
)

var (
	// Global flags
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "finstitch",
	Short: "finstitch - 다중 공시 재무제표 스티칭 엔진",
	Long: `finstitch CLI

여러 공시의 재무제표를 하나의 표준화된 다기간 재무제표로 병합합니다.

Usage:
  go run ./cmd/finstitch [command]

Examples:
  go run ./cmd/finstitch stitch --input sources.json --type income_statement
  go run ./cmd/finstitch facts --input sources.json --type income_statement --concept Revenue --trend
  go run ./cmd/finstitch api`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// bootstrap loads config, logger, the mapping store and the stitcher.
// Shared by every subcommand.
func bootstrap() (*config.Config, *logger.Logger, *stitch.Stitcher, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	log := logger.New(cfg)

	builder := mapping.DefaultBuilder()
	if cfg.Stitch.MappingDir != "" {
		if err := builder.LoadDir(cfg.Stitch.MappingDir); err != nil {
			return nil, nil, nil, fmt.Errorf("load mapping dir: %w", err)
		}
	}
	store, err := builder.Build()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("build mapping store: %w", err)
	}

	stitcher := stitch.New(store, log,
		stitch.WithReferenceStrategy(contracts.ReferenceStrategy(cfg.Stitch.ReferenceStrategy)))

	return cfg, log, stitcher, nil
}
