package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pquint/onice/internal/domain/detection"
	"github.com/pquint/onice/internal/domain/roster"
	"github.com/pquint/onice/internal/domain/team"
)

type ScanInput struct {
	Filename string
	Data     []byte
}

// ScanResult is the outcome of one upload. TeamMatched=false means the
// detected text contained no known abbreviation and the client receives an
// empty object; no stats API call is made in that case.
type ScanResult struct {
	TeamMatched bool
	Team        team.ID
	Boxscore    roster.BoxscoreView
}

// ScanService runs the upload pipeline. Stages are strictly sequential: the
// object must exist and be publicly readable before detection, detection
// precedes resolution, resolution precedes the schedule lookup, and the
// boxscore fetch comes last.
type ScanService struct {
	store    ObjectStore
	detector TextDetector
	games    GameSource
	logger   *slog.Logger
}

func NewScanService(store ObjectStore, detector TextDetector, games GameSource, logger *slog.Logger) *ScanService {
	if logger == nil {
		logger = slog.Default()
	}

	return &ScanService{
		store:    store,
		detector: detector,
		games:    games,
		logger:   logger,
	}
}

func (s *ScanService) ScanImage(ctx context.Context, in ScanInput) (ScanResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScanService.ScanImage")
	defer span.End()

	if strings.TrimSpace(in.Filename) == "" {
		return ScanResult{}, fmt.Errorf("%w: filename is required", ErrInvalidInput)
	}
	if len(in.Data) == 0 {
		return ScanResult{}, fmt.Errorf("%w: file is empty", ErrInvalidInput)
	}

	publicURL, err := s.store.Store(ctx, in.Filename, in.Data)
	if err != nil {
		return ScanResult{}, fmt.Errorf("store upload: %w", err)
	}
	s.logger.InfoContext(ctx, "upload stored", "filename", in.Filename, "bytes", len(in.Data))

	annotations, err := s.detector.DetectText(ctx, publicURL)
	if err != nil {
		return ScanResult{}, fmt.Errorf("detect text: %w", err)
	}
	if len(annotations) == 0 {
		return ScanResult{}, fmt.Errorf("%w: %s", ErrNoTextInImage, in.Filename)
	}

	text := detection.AggregateText(annotations)
	teamIDs := team.ResolveText(text)
	if len(teamIDs) == 0 {
		s.logger.InfoContext(ctx, "no team abbreviation in detected text", "text_len", len(text))
		return ScanResult{}, nil
	}

	// Only the first match in reading order drives the lookup, even when
	// several team abbreviations are visible in the image.
	matched := teamIDs[0]

	sched, err := s.games.Schedule(ctx, matched)
	if err != nil {
		return ScanResult{}, fmt.Errorf("resolve schedule team=%d: %w", matched, err)
	}
	gameID, ok := sched.Current()
	if !ok {
		return ScanResult{}, fmt.Errorf("schedule for team=%d has no resolvable game", matched)
	}

	view, err := s.games.Boxscore(ctx, gameID)
	if err != nil {
		return ScanResult{}, fmt.Errorf("fetch boxscore game=%d: %w", gameID, err)
	}

	s.logger.InfoContext(ctx, "scan resolved", "team_id", int(matched), "game_id", int64(gameID))

	return ScanResult{TeamMatched: true, Team: matched, Boxscore: view}, nil
}
