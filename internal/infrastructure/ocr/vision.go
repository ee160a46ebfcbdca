// Package ocr detects text in stored images via the Google Vision API.
package ocr

import (
	"context"
	"fmt"

	vision "cloud.google.com/go/vision/apiv1"
	crerr "github.com/cockroachdb/errors"
	"google.golang.org/api/option"

	"github.com/pquint/onice/internal/domain/detection"
	"github.com/pquint/onice/internal/platform/logging"
	"github.com/pquint/onice/internal/usecase"
)

// Vision caps TEXT_DETECTION results; the pipeline only consumes the first
// (aggregate) annotation, so the cap just bounds the response size.
const maxAnnotations = 50

type VisionDetector struct {
	client *vision.ImageAnnotatorClient
	logger *logging.Logger
}

var _ usecase.TextDetector = (*VisionDetector)(nil)

func NewVisionDetector(ctx context.Context, logger *logging.Logger, opts ...option.ClientOption) (*VisionDetector, error) {
	if logger == nil {
		logger = logging.Default()
	}

	client, err := vision.NewImageAnnotatorClient(ctx, opts...)
	if err != nil {
		return nil, crerr.Wrap(err, "create vision client")
	}

	return &VisionDetector{client: client, logger: logger}, nil
}

// DetectText runs text detection against a publicly readable image URL and
// returns the annotations in provider order.
func (d *VisionDetector) DetectText(ctx context.Context, imageURL string) ([]detection.Annotation, error) {
	annotations, err := d.client.DetectTexts(ctx, vision.NewImageFromURI(imageURL), nil, maxAnnotations)
	if err != nil {
		d.logger.ErrorContext(ctx, "vision text detection failed", "image_url", imageURL, "error", err)
		return nil, fmt.Errorf("%w: detect texts: %v", usecase.ErrDependencyUnavailable, err)
	}

	out := make([]detection.Annotation, 0, len(annotations))
	for _, a := range annotations {
		out = append(out, detection.Annotation{
			Description: a.GetDescription(),
			Locale:      a.GetLocale(),
		})
	}

	return out, nil
}

func (d *VisionDetector) Close() error {
	return d.client.Close()
}
