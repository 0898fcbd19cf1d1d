package storage

import (
	"context"
	"os"
	"path/filepath"
)

// ObjectStore abstracts the bucket operations the thumbnail store needs.
type ObjectStore interface {
	Ping(ctx context.Context) error
	EnsureBucket(ctx context.Context, bucket string) error
	PutObject(ctx context.Context, bucket, key string, data []byte, contentType string) error
	DeleteObject(ctx context.Context, bucket, key string) error
	// PublicURL returns the URL under which an uploaded object is served.
	PublicURL(bucket, key string) string
}

// LocalStore persists objects on disk. It stands in for the S3 store in
// development and tests.
type LocalStore struct {
	root    string
	baseURL string
}

func NewLocalStore(root, baseURL string) *LocalStore {
	if root == "" {
		root = filepath.Join(os.TempDir(), "teamfolio-store")
	}
	_ = os.MkdirAll(root, 0o755)
	return &LocalStore{root: root, baseURL: baseURL}
}

func (s *LocalStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.MkdirAll(s.root, 0o755)
}

func (s *LocalStore) EnsureBucket(ctx context.Context, bucket string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.MkdirAll(filepath.Join(s.root, bucket), 0o755)
}

func (s *LocalStore) PutObject(ctx context.Context, bucket, key string, data []byte, contentType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.EnsureBucket(ctx, bucket); err != nil {
		return err
	}
	fullPath := filepath.Join(s.root, bucket, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, data, 0o644)
}

func (s *LocalStore) DeleteObject(ctx context.Context, bucket, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.Remove(filepath.Join(s.root, bucket, filepath.FromSlash(key)))
}

func (s *LocalStore) PublicURL(bucket, key string) string {
	return s.baseURL + "/" + bucket + "/" + key
}
