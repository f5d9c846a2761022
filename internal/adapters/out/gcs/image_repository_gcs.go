// internal/adapters/out/gcs/image_repository_gcs.go
package gcs

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// ImageRepositoryGCS stores product and profile images as objects.
//
// Layout (single bucket):
// - products/{productoId}/<fileName>
// - profiles/{usuarioId}/<fileName>
//
// The bucket is expected to be publicly readable (uniform access via IAM),
// so uploaded objects are served straight from the public URL.
type ImageRepositoryGCS struct {
	Client *storage.Client
	Bucket string
	// Optional: if empty, uses https://storage.googleapis.com
	PublicBaseURL string
}

func NewImageRepositoryGCS(client *storage.Client, bucket string) *ImageRepositoryGCS {
	return &ImageRepositoryGCS{
		Client:        client,
		Bucket:        strings.TrimSpace(bucket),
		PublicBaseURL: "https://storage.googleapis.com",
	}
}

func (r *ImageRepositoryGCS) bucket() (*storage.BucketHandle, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("image_repository_gcs: storage client is nil")
	}
	b := strings.TrimSpace(r.Bucket)
	if b == "" {
		return nil, errors.New("image_repository_gcs: bucket is empty")
	}
	return r.Client.Bucket(b), nil
}

// UploadProductImage stores an image under products/{productoId}/ and
// returns its public URL. fileName may be empty; a uuid name is assigned.
func (r *ImageRepositoryGCS) UploadProductImage(ctx context.Context, productoID, fileName, contentType string, data []byte) (string, error) {
	return r.upload(ctx, "products/"+strings.TrimSpace(productoID), fileName, contentType, data)
}

// UploadProfilePhoto stores a profile photo under profiles/{usuarioId}/.
func (r *ImageRepositoryGCS) UploadProfilePhoto(ctx context.Context, usuarioID, fileName, contentType string, data []byte) (string, error) {
	return r.upload(ctx, "profiles/"+strings.TrimSpace(usuarioID), fileName, contentType, data)
}

func (r *ImageRepositoryGCS) upload(ctx context.Context, prefix, fileName, contentType string, data []byte) (string, error) {
	bh, err := r.bucket()
	if err != nil {
		return "", err
	}
	if strings.Trim(prefix, "/") == "" || strings.HasSuffix(prefix, "/") {
		return "", errors.New("image_repository_gcs: owner id is empty")
	}
	if len(data) == 0 {
		return "", errors.New("image_repository_gcs: image data is empty")
	}

	name := strings.TrimSpace(fileName)
	if name == "" {
		name = uuid.NewString()
	}
	// Drop any client-supplied directories.
	name = path.Base(name)

	objPath := prefix + "/" + name

	w := bh.Object(objPath).NewWriter(ctx)
	if ct := strings.TrimSpace(contentType); ct != "" {
		w.ContentType = ct
	}
	w.ChunkSize = 0
	w.Metadata = map[string]string{
		"uploadedAt": time.Now().UTC().Format(time.RFC3339),
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	return r.publicURL(objPath), nil
}

// Delete removes an object. A missing object counts as success.
func (r *ImageRepositoryGCS) Delete(ctx context.Context, objectPath string) error {
	bh, err := r.bucket()
	if err != nil {
		return err
	}
	obj := strings.TrimLeft(strings.TrimSpace(objectPath), "/")
	if obj == "" {
		return nil
	}
	if err := bh.Object(obj).Delete(ctx); err != nil && err != storage.ErrObjectNotExist {
		return err
	}
	return nil
}

func (r *ImageRepositoryGCS) publicURL(objectPath string) string {
	base := strings.TrimSpace(r.PublicBaseURL)
	if base == "" {
		base = "https://storage.googleapis.com"
	}
	// Encode path but keep "/" separators.
	parts := strings.Split(objectPath, "/")
	for i := range parts {
		parts[i] = url.PathEscape(parts[i])
	}
	encoded := strings.Join(parts, "/")
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(base, "/"), strings.TrimSpace(r.Bucket), encoded)
}
