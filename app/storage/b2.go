package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kurin/blazer/b2"
)

// ErrPolicyViolation means the bucket refused the object, or the object is
// not something the bucket accepts.
var ErrPolicyViolation = errors.New("storage policy violation")

// ImageStore saves delivery photos and returns their public URL.
type ImageStore interface {
	Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error)
}

type B2Storage struct {
	Client *b2.Client
	Bucket *b2.Bucket
}

func NewB2Storage(ctx context.Context, accountID, appKey, bucketName string) (*B2Storage, error) {
	client, err := b2.NewClient(ctx, accountID, appKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create b2 client: %w", err)
	}

	bucket, err := client.Bucket(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to get bucket: %w", err)
	}

	return &B2Storage{Client: client, Bucket: bucket}, nil
}

func (s *B2Storage) Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	w := s.Bucket.Object(key).NewWriter(ctx).WithAttrs(&b2.Attrs{ContentType: contentType})

	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", classify(fmt.Errorf("failed to write object: %w", err))
	}
	if err := w.Close(); err != nil {
		return "", classify(fmt.Errorf("failed to close writer: %w", err))
	}

	return fmt.Sprintf("%s/file/%s/%s", s.Bucket.BaseURL(), s.Bucket.Name(), key), nil
}

// classify marks authorization refusals from B2 as policy violations.
func classify(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "unauthorized") || strings.Contains(msg, "forbidden") || strings.Contains(msg, "access_denied") {
		return fmt.Errorf("%w: %v", ErrPolicyViolation, err)
	}
	return err
}

// IsAllowedImage reports whether the bucket accepts this content type.
func IsAllowedImage(contentType string) bool {
	switch strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0])) {
	case "image/jpeg", "image/png", "image/webp", "image/gif", "image/heic":
		return true
	}
	return false
}
