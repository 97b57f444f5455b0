package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/agriadvisor/agriadvisor-go/pkg/advisory"
	"github.com/agriadvisor/agriadvisor-go/pkg/analysis"
	"github.com/agriadvisor/agriadvisor-go/pkg/api"
	"github.com/agriadvisor/agriadvisor-go/pkg/catalog"
	"github.com/agriadvisor/agriadvisor-go/pkg/chat"
	"github.com/agriadvisor/agriadvisor-go/pkg/config"
	"github.com/agriadvisor/agriadvisor-go/pkg/metadatastore"
	"github.com/agriadvisor/agriadvisor-go/pkg/news"
	"github.com/agriadvisor/agriadvisor-go/pkg/scheduler"
	"github.com/agriadvisor/agriadvisor-go/pkg/user"
	"github.com/agriadvisor/agriadvisor-go/pkg/weather"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the prediction retention scheduler",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return runServe(ctx, cfg, logger)
	},
}

func openStore(cfg *config.Config) (metadatastore.MetadataStore, error) {
	switch cfg.StoreDriver {
	case "memory":
		return metadatastore.NewMemoryStore(), nil
	case "sqlite":
		return metadatastore.NewSQLiteStore(cfg.DatabasePath)
	default:
		return nil, fmt.Errorf("unknown store driver: %s", cfg.StoreDriver)
	}
}

func runServe(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()
	logger.Info("metadata store ready", zap.String("driver", cfg.StoreDriver))

	cropFlow, err := advisory.FlowFromConfig(advisory.CropFlow(), cfg.CropFlow)
	if err != nil {
		return fmt.Errorf("crop flow: %w", err)
	}
	seedFlow, err := advisory.FlowFromConfig(advisory.SeedFlow(), cfg.SeedFlow)
	if err != nil {
		return fmt.Errorf("seed flow: %w", err)
	}

	newsService, err := news.NewService()
	if err != nil {
		return err
	}
	users := user.NewService(store)

	forecasts := weather.NewClient(cfg.WeatherURL, cfg.WeatherAPIKey, time.Duration(cfg.WeatherTimeout)*time.Second)
	if !forecasts.Configured() {
		logger.Warn("OPENWEATHER_API_KEY not set, weather forecasts disabled")
	}

	server := api.NewServer(cfg.Port, logger, store)
	api.RegisterRoutes(server, api.Handlers{
		Users:    api.NewUserHandler(users, logger),
		Advisory: api.NewAdvisoryHandler(advisory.NewService(store, users, catalog.Default, cropFlow, seedFlow), logger),
		Analysis: api.NewAnalysisHandler(analysis.NewService(users), logger),
		Weather:  api.NewWeatherHandler(forecasts, logger),
		News:     api.NewNewsHandler(newsService),
		Chat:     api.NewChatHandler(chat.NewService(store, users), logger),
		Catalog:  api.NewCatalogHandler(catalog.Default),
	})

	retention, err := scheduler.NewService(store, logger, cfg.RetentionSchedule, cfg.RetentionDays)
	if err != nil {
		return err
	}
	if err := retention.Start(); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(server.Start)
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := retention.Stop(shutdownCtx); err != nil {
			logger.Warn("retention scheduler did not stop cleanly", zap.Error(err))
		}
		return server.Shutdown(shutdownCtx)
	})

	logger.Info("agriadvisor started", zap.String("port", cfg.Port), zap.String("environment", cfg.Environment))
	return g.Wait()
}
