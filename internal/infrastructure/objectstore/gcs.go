// Package objectstore persists uploaded images in Google Cloud Storage.
package objectstore

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
	crerr "github.com/cockroachdb/errors"
	"google.golang.org/api/option"

	"github.com/pquint/onice/internal/platform/logging"
	"github.com/pquint/onice/internal/usecase"
)

const publicURLBase = "https://storage.googleapis.com"

// GCSStore writes uploads into a single configured bucket. Objects are named
// exactly after the uploaded file, with no sanitization and no collision
// handling: a second upload of the same name overwrites the first. The
// bucket must allow public reads so the OCR collaborator can fetch objects.
type GCSStore struct {
	client *storage.Client
	bucket string
	logger *logging.Logger
}

var _ usecase.ObjectStore = (*GCSStore)(nil)

func NewGCSStore(ctx context.Context, bucket string, logger *logging.Logger, opts ...option.ClientOption) (*GCSStore, error) {
	if bucket == "" {
		return nil, fmt.Errorf("bucket name cannot be empty")
	}
	if logger == nil {
		logger = logging.Default()
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, crerr.Wrap(err, "create storage client")
	}

	return &GCSStore{client: client, bucket: bucket, logger: logger}, nil
}

func (s *GCSStore) Store(ctx context.Context, filename string, data []byte) (string, error) {
	w := s.client.Bucket(s.bucket).Object(filename).NewWriter(ctx)
	w.PredefinedACL = "publicRead"

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		s.logger.ErrorContext(ctx, "gcs object write failed", "bucket", s.bucket, "object", filename, "error", err)
		return "", fmt.Errorf("%w: write object %s: %v", usecase.ErrDependencyUnavailable, filename, err)
	}
	if err := w.Close(); err != nil {
		s.logger.ErrorContext(ctx, "gcs object finalize failed", "bucket", s.bucket, "object", filename, "error", err)
		return "", fmt.Errorf("%w: finalize object %s: %v", usecase.ErrDependencyUnavailable, filename, err)
	}

	return fmt.Sprintf("%s/%s/%s", publicURLBase, s.bucket, filename), nil
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}
