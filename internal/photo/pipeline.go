package photo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"backend-surfbuddy/internal/observability"

	"go.uber.org/zap"
)

// ObjectStore is the minimal object-storage surface the pipeline needs. The
// production implementation wraps a GCS bucket; tests substitute an in-memory
// fake.
type ObjectStore interface {
	Put(ctx context.Context, path string, data []byte) error
	Remove(ctx context.Context, path string) error
}

// UploadError reports a failed photo transfer. It is the only error the data
// layer lets escape to the calling UI.
type UploadError struct {
	Path string
	Err  error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload %s: %v", e.Path, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// Pipeline uploads compressed photos to remote object storage and hands back
// stable reference URLs.
type Pipeline struct {
	store   ObjectStore
	baseURL string
	log     *zap.Logger
	now     func() time.Time
}

func NewPipeline(store ObjectStore, bucket string, log *zap.Logger) *Pipeline {
	return &Pipeline{
		store:   store,
		baseURL: "https://storage.googleapis.com/" + bucket,
		log:     log,
		now:     time.Now,
	}
}

// Upload stores data under a path namespaced by session and timestamp so
// repeated uploads never collide, and returns the reference URL.
func (p *Pipeline) Upload(ctx context.Context, data []byte, sessionID string) (string, error) {
	path := fmt.Sprintf("sessions/%s/%d.jpg", sessionID, p.now().UnixMilli())
	if err := p.store.Put(ctx, path, data); err != nil {
		observability.RecordPhotoUpload(false)
		return "", &UploadError{Path: path, Err: err}
	}
	observability.RecordPhotoUpload(true)
	return p.baseURL + "/" + path, nil
}

// Delete removes the remote object behind a reference URL. Deletion is best
// effort: unknown URLs and storage failures are logged and ignored, since
// detached photos are not otherwise tracked for cleanup.
func (p *Pipeline) Delete(ctx context.Context, referenceURL string) {
	path, ok := strings.CutPrefix(referenceURL, p.baseURL+"/")
	if !ok || path == "" {
		p.log.Warn("photo delete skipped, url not recognized", zap.String("url", referenceURL))
		return
	}
	if err := p.store.Remove(ctx, path); err != nil {
		p.log.Warn("photo delete failed", zap.String("path", path), zap.Error(err))
	}
}
