package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	httpadapter "creative-hub/internal/adapter/http"
	"creative-hub/internal/adapter/memory"
	natsadapter "creative-hub/internal/adapter/nats"
	"creative-hub/internal/adapter/postgres"
	s3adapter "creative-hub/internal/adapter/s3"
	"creative-hub/internal/adapter/usecase"
	"creative-hub/internal/catalog"
	"creative-hub/internal/core/port"
	"creative-hub/internal/db"
	"creative-hub/internal/idgen"
)

// mockCreativeCount is how many demo creatives back the in-memory mode.
const mockCreativeCount = 24

func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
}

// serve wires the adapters selected by configuration, loads the creative
// collection and runs the HTTP server until ctx is cancelled.
func (a *app) serve(ctx context.Context) error {
	cfg, logger := a.cfg, a.logger

	var repo port.CreativeRepository
	if cfg.Psql.Enabled {
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return fmt.Errorf("database connection: %w", err)
		}
		defer pool.Close()
		repo = postgres.NewCreativeRepository(pool)
	}

	var events port.Publisher = natsadapter.NoopPublisher{}
	if cfg.NATS.URL != "" {
		pub, err := natsadapter.NewPublisher(cfg.NATS.URL)
		if err != nil {
			return fmt.Errorf("nats connect: %w", err)
		}
		events = pub
		logger.Info("publishing events to nats", slog.String("url", cfg.NATS.URL))
	}
	defer func() {
		if err := events.Close(); err != nil {
			logger.Error("close publisher", slog.Any("error", err))
		}
	}()

	var uploader port.Uploader
	if cfg.S3.Enabled() {
		up, err := s3adapter.NewUploader(ctx, cfg.S3)
		if err != nil {
			return fmt.Errorf("s3 uploader: %w", err)
		}
		uploader = up
		logger.Info("uploads enabled", slog.String("bucket", cfg.S3.Bucket))
	}

	cat, err := openCatalog(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	store := memory.NewCreativeStore()
	creatives := usecase.NewCreativeUseCase(store, repo, events, logger)
	if repo == nil {
		now := time.Now().UTC()
		creatives.WithMockData(db.MockCreatives(mockCreativeCount, now.UnixNano(), now))
	}
	if err = creatives.Load(ctx); err != nil {
		return err
	}

	jobIDs := idgen.New(idgen.JobPrefix)
	handler := httpadapter.NewHandler(httpadapter.Services{
		Creatives:      creatives,
		Jobs:           usecase.NewJobUseCase(memory.NewJobStore(jobIDs.Next), events, logger),
		Playables:      usecase.NewPlayableUseCase(store, logger),
		Catalog:        cat,
		Uploader:       uploader,
		MaxUploadBytes: cfg.S3.MaxUploadBytes,
		PresignTTL:     cfg.S3.PresignTTL,
	}, logger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		logger.Info("server gracefully stopped")
		return nil
	})
	if cfg.Catalog.Path != "" && cfg.Catalog.Watch {
		g.Go(func() error {
			if err := cat.Watch(gctx, cfg.Catalog.Path, logger); err != nil {
				// A broken watcher only loses hot reload.
				logger.Error("catalog watcher stopped", slog.Any("error", err))
			}
			return nil
		})
	}
	return g.Wait()
}

func openCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Open(path)
}
