package usecase

import (
	"context"

	"github.com/pquint/onice/internal/domain/detection"
	"github.com/pquint/onice/internal/domain/game"
	"github.com/pquint/onice/internal/domain/roster"
	"github.com/pquint/onice/internal/domain/team"
)

// ObjectStore persists an uploaded file and returns its public URL. Objects
// are written single-shot under the original filename; an existing object
// with the same name is overwritten.
type ObjectStore interface {
	Store(ctx context.Context, filename string, data []byte) (string, error)
}

// TextDetector runs OCR text detection against a publicly readable image URL.
type TextDetector interface {
	DetectText(ctx context.Context, imageURL string) ([]detection.Annotation, error)
}

// GameSource reads schedule and boxscore data from the stats API.
type GameSource interface {
	Schedule(ctx context.Context, teamID team.ID) (game.Schedule, error)
	Boxscore(ctx context.Context, gameID game.ID) (roster.BoxscoreView, error)
}
