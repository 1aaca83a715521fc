package cmd

import (
	"context"
	"fmt"

	"country-currency-api/core/artifact"
	"country-currency-api/core/config"
	"country-currency-api/core/database"
	"country-currency-api/core/logger"
	"country-currency-api/feature/countries"
	countrymodels "country-currency-api/feature/countries/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// refreshCmd runs a single refresh pass without starting the HTTP server,
// useful for cron jobs and for seeding a fresh database.
var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Run one refresh pass and exit",
	Long: `Fetches countries and exchange rates from the external sources, merges
them into the database and regenerates the summary image, then exits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return err
		}
		if err := db.AutoMigrate(&countrymodels.Country{}, &countrymodels.AppStatus{}); err != nil {
			return err
		}

		store, err := artifact.NewStore(cfg.Artifact)
		if err != nil {
			return err
		}

		feature := countries.NewFeature(db, cfg.Sources, store, logg)
		outcome, err := feature.Service().Refresh(context.Background())
		if err != nil {
			return err
		}

		logg.Info("Refresh finished",
			zap.Int("processed", outcome.Processed),
			zap.Int("failed", len(outcome.Failures)),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(refreshCmd)
}
