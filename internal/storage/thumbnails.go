package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path"
	"strings"
	"sync"
	"time"
)

const (
	// BucketName is the public bucket holding uploaded images.
	BucketName = "project-thumbnails"

	// MaxUploadSize caps uploads at 5 MiB.
	MaxUploadSize = 5 * 1024 * 1024
)

var allowedMIMETypes = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// ThumbnailStore uploads admin-submitted images to the public bucket and
// returns their public URLs. The bucket is created lazily on first upload.
type ThumbnailStore struct {
	store ObjectStore

	mu      sync.Mutex
	ensured bool
}

func NewThumbnailStore(store ObjectStore) *ThumbnailStore {
	return &ThumbnailStore{store: store}
}

// Upload validates and stores an image, returning its public URL. The
// original filename only contributes its extension as a fallback when the
// MIME type is unknown to us.
func (t *ThumbnailStore) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty file")
	}
	if len(data) > MaxUploadSize {
		return "", fmt.Errorf("file exceeds %d byte limit", MaxUploadSize)
	}

	ext, ok := allowedMIMETypes[normalizeMIME(contentType)]
	if !ok {
		return "", fmt.Errorf("unsupported content type %q", contentType)
	}
	if fromName := strings.TrimPrefix(path.Ext(filename), "."); fromName != "" {
		ext = strings.ToLower(fromName)
	}

	if err := t.ensureBucket(ctx); err != nil {
		return "", fmt.Errorf("ensuring bucket: %w", err)
	}

	key := fmt.Sprintf("%d-%s.%s", time.Now().UnixMilli(), randomSuffix(), ext)
	if err := t.store.PutObject(ctx, BucketName, key, data, contentType); err != nil {
		return "", fmt.Errorf("uploading %s: %w", key, err)
	}

	return t.store.PublicURL(BucketName, key), nil
}

func (t *ThumbnailStore) ensureBucket(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.ensured {
		return nil
	}
	if err := t.store.EnsureBucket(ctx, BucketName); err != nil {
		return err
	}
	t.ensured = true
	return nil
}

func normalizeMIME(contentType string) string {
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}

func randomSuffix() string {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
