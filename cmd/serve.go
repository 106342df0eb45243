package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"mnp-alarm/core/loader"
	"mnp-alarm/core/logger"
	"mnp-alarm/core/metrics"
	"mnp-alarm/core/middleware/auth"
	"mnp-alarm/core/middleware/rayid"
	"mnp-alarm/feature/check"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "mnp-alarm/docs/swagger"
)

// @title MNP Alarm API
// @version 1.0
// @description Reconciles the ported-number reference set against live HLR lookups.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Starts the HTTP server exposing on-demand reconciliation runs, health and metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		a, err := newApp()
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		logg := a.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if err := a.cfg.Validate(); err != nil {
			logg.Fatal("Invalid configuration", zap.Error(err))
		}

		// 2. Metrics
		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		recorder := metrics.New(registry)

		// 3. Reconciliation dependencies
		source, err := a.source()
		if err != nil {
			logg.Fatal("Failed to create reference source", zap.Error(err))
		}
		engine, err := a.engine(recorder)
		if err != nil {
			logg.Fatal("Failed to create reconciliation engine", zap.Error(err))
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// 5. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(check.NewFeature(source, engine, logg))

		// RayID must be first to trace everything
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

		// Public routes
		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Everything registered after this point requires the API key
		app.Use(auth.New(auth.Config{ApiKey: a.cfg.Server.ApiKey}))

		loaded, err := mgr.LoadAll(app)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("address", a.cfg.Server.Address()), zap.Bool("auth", a.cfg.Server.AuthEnabled()))
			if err := app.Listen(a.cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
