package httpapi

import (
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/pquint/onice/internal/usecase"
)

type Handler struct {
	scanService    *usecase.ScanService
	logger         *slog.Logger
	validator      *validator.Validate
	maxUploadBytes int64
}

func NewHandler(scanService *usecase.ScanService, logger *slog.Logger, maxUploadBytes int64) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		scanService:    scanService,
		logger:         logger,
		validator:      validator.New(),
		maxUploadBytes: maxUploadBytes,
	}
}
