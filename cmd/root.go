package cmd

import (
	"fmt"
	"os"

	"country-currency-api/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "country-currency-api",
	Short: "Country Currency API Service",
	Long: `Country Currency API aggregates country metadata and currency exchange
rates from external providers, derives an estimated GDP per country and
serves the merged records plus a rendered summary image over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding with debug level gives readable ISO8601
		// timestamps for CLI error output.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
