package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skincare-api/internal/config"
	"skincare-api/internal/database"
	"skincare-api/internal/handler"
	"skincare-api/internal/metrics"
	"skincare-api/internal/repository"
	"skincare-api/internal/router"
	"skincare-api/internal/routine"
	"skincare-api/internal/seed"
	"skincare-api/internal/service"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Str("store", cfg.Store.Backend).Msg("starting skincare API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	productRepo, closeStore, err := newProductRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	productService := service.NewProductService(productRepo, logger)
	routineService := service.NewRoutineService(productRepo, routine.NewPlanner(nil), m, logger)

	if err := importSeedFiles(ctx, cfg, productService, logger); err != nil {
		return err
	}

	productHandler := handler.NewProductHandler(productService, logger)
	routineHandler := handler.NewRoutineHandler(routineService, logger)

	mux := router.New(productHandler, routineHandler, m, logger)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// newProductRepository builds the configured store and a func releasing it.
func newProductRepository(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (repository.ProductRepository, func(), error) {
	if cfg.Store.Backend == config.StoreBackendMemory {
		logger.Warn().Msg("using in-memory product store, data is lost on restart")
		return repository.NewMemoryProductRepository(logger), func() {}, nil
	}

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := repository.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("failed to apply database schema: %w", err)
		}
		logger.Info().Msg("database schema ensured")
	}

	return repository.NewProductRepository(pool, logger), pool.Close, nil
}

// importSeedFiles adds the configured seed files to the catalogue, reading
// from S3 first when enabled.
func importSeedFiles(ctx context.Context, cfg *config.Config, products seed.ProductCatalog, logger zerolog.Logger) error {
	if len(cfg.Seed.Files) == 0 {
		return nil
	}

	fileLoader := seed.NewFileLoader(logger)
	var s3Loader seed.Loader
	if cfg.S3.Enabled {
		l, err := seed.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
		} else {
			s3Loader = l
		}
	}

	loader := seed.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, cfg.S3.Enabled, logger)

	if _, err := seed.NewImporter(loader, products, logger).Import(ctx, cfg.Seed.Files); err != nil {
		return fmt.Errorf("failed to import seed files: %w", err)
	}
	return nil
}
