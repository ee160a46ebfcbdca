package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"google.golang.org/api/option"

	"github.com/pquint/onice/external/nhlstats"
	"github.com/pquint/onice/internal/config"
	"github.com/pquint/onice/internal/infrastructure/objectstore"
	"github.com/pquint/onice/internal/infrastructure/ocr"
	"github.com/pquint/onice/internal/interfaces/httpapi"
	"github.com/pquint/onice/internal/platform/logging"
	"github.com/pquint/onice/internal/usecase"
)

// NewHTTPServer wires the collaborators into the upload pipeline. All
// clients are constructed once here and shared across requests; none of
// them holds per-call mutable state. The returned closer releases the
// Google clients.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *slog.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = slog.Default()
	}
	clientLogger := logging.Default()

	var googleOpts []option.ClientOption
	if cfg.GoogleCredentialsFile != "" {
		googleOpts = append(googleOpts, option.WithCredentialsFile(cfg.GoogleCredentialsFile))
	}

	store, err := objectstore.NewGCSStore(ctx, cfg.GCSBucket, clientLogger, googleOpts...)
	if err != nil {
		return nil, nil, fmt.Errorf("build object store: %w", err)
	}

	detector, err := ocr.NewVisionDetector(ctx, clientLogger, googleOpts...)
	if err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("build text detector: %w", err)
	}

	statsClient := nhlstats.NewClient(nhlstats.ClientConfig{
		HTTPClient: &http.Client{Timeout: cfg.NHLStatsTimeout},
		BaseURL:    cfg.NHLStatsBaseURL,
		Logger:     clientLogger,
	})

	scanSvc := usecase.NewScanService(store, detector, statsClient, logger)
	handler := httpapi.NewHandler(scanSvc, logger, cfg.MaxUploadBytes)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = store.Close()
		_ = detector.Close()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	closer := func() error {
		storeErr := store.Close()
		if err := detector.Close(); err != nil {
			return err
		}
		return storeErr
	}

	return server, closer, nil
}
