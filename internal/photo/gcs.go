package photo

import (
	"context"

	"cloud.google.com/go/storage"
)

// GCSBucket implements ObjectStore over a Google Cloud Storage bucket.
type GCSBucket struct {
	bucket *storage.BucketHandle
}

// Connect builds the GCS-backed object store; credentials come from the
// environment. Returns nil when no bucket is configured, which disables the
// photo routes.
func Connect(ctx context.Context, bucket string) (ObjectStore, error) {
	if bucket == "" {
		return nil, nil
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	return &GCSBucket{bucket: client.Bucket(bucket)}, nil
}

func (b *GCSBucket) Put(ctx context.Context, path string, data []byte) error {
	w := b.bucket.Object(path).NewWriter(ctx)
	w.ContentType = "image/jpeg"
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

func (b *GCSBucket) Remove(ctx context.Context, path string) error {
	return b.bucket.Object(path).Delete(ctx)
}
