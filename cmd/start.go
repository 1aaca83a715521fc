package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"country-currency-api/core/artifact"
	"country-currency-api/core/config"
	"country-currency-api/core/database"
	"country-currency-api/core/loader"
	"country-currency-api/core/logger"
	"country-currency-api/core/middleware/rayid"
	"country-currency-api/core/server"
	"country-currency-api/feature/countries"
	countrymodels "country-currency-api/feature/countries/models"
	"country-currency-api/feature/meta"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "country-currency-api/docs/swagger"
)

// @title Country Currency API
// @version 1.0.0
// @description API for country metadata, exchange rates and estimated GDP.
// @host localhost:3000
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the API server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		if !cfg.Server.IsValidEnvironment() {
			log.Fatalf("Invalid server environment: %q", cfg.Server.Environment)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := db.AutoMigrate(&countrymodels.Country{}, &countrymodels.AppStatus{}); err != nil {
			logg.Fatal("Failed to migrate schema", zap.Error(err))
		}
		logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

		// 4. Initialize Artifact Store
		store, err := artifact.NewStore(cfg.Artifact)
		if err != nil {
			logg.Fatal("Failed to create artifact store", zap.Error(err))
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
			ErrorHandler:          server.NewErrorHandler(cfg.Server, logg),
		})

		// Middleware Registration
		// RayID must be first so everything below is traceable.
		app.Use(rayid.New())
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger Documentation
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 6. Load Features
		mgr := loader.NewManager()
		mgr.Register(countries.NewFeature(db, cfg.Sources, store, logg))
		mgr.Register(meta.NewFeature())
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// Unknown routes answer with the endpoint catalog.
		app.Use(meta.NotFoundHandler)

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
