package repositories

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// downloadTokenKey is the object metadata key Firebase Storage reads download tokens from.
const downloadTokenKey = "firebaseStorageDownloadTokens"

const downloadURLFormat = "https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media&token=%s"

// StorageBlobStore keeps uploaded images in the Firebase Storage bucket
type StorageBlobStore struct {
	Bucket *storage.BucketHandle
}

func NewStorageBlobStore(bucket *storage.BucketHandle) *StorageBlobStore {
	return &StorageBlobStore{Bucket: bucket}
}

func (s *StorageBlobStore) Upload(ctx context.Context, key string, r io.Reader, contentType string) error {
	w := s.Bucket.Object(key).NewWriter(ctx)
	w.ContentType = contentType
	w.Metadata = map[string]string{
		downloadTokenKey: uuid.NewString(),
	}

	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return fmt.Errorf("write object: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize object: %w", err)
	}
	return nil
}

// URL builds the public download URL from the object's download token.
func (s *StorageBlobStore) URL(ctx context.Context, key string) (string, error) {
	attrs, err := s.Bucket.Object(key).Attrs(ctx)
	if err != nil {
		return "", err
	}
	return DownloadURL(attrs.Bucket, key, attrs.Metadata[downloadTokenKey])
}

func (s *StorageBlobStore) Delete(ctx context.Context, key string) error {
	err := s.Bucket.Object(key).Delete(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil
	}
	return err
}

func DownloadURL(bucket, key, token string) (string, error) {
	if token == "" {
		return "", fmt.Errorf("object %s has no download token", key)
	}
	return fmt.Sprintf(downloadURLFormat, bucket, url.PathEscape(key), url.QueryEscape(token)), nil
}
