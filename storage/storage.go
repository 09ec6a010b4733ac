// Package storage wraps the blob side of the content backend. It exposes a
// single BlobStore interface with two backends: a directory on the local
// filesystem and an S3-compatible bucket. Handlers depend only on the
// interface so the backend is a deployment decision.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/meridianmade/agency-site-backend/errs"
)

// Media type classification used across upload validation and listing.
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// PresignExpiry is how long an issued direct-upload URL stays valid.
const PresignExpiry = 10 * time.Minute

// Backend identifiers returned by BlobStore.Type.
const (
	BackendLocal = "local"
	BackendS3    = "s3"
)

// Object describes one stored blob.
type Object struct {
	Key       string    `json:"path"`
	Filename  string    `json:"filename"`
	URL       string    `json:"url"`
	MediaType string    `json:"media_type"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// PresignedUpload is the result of issuing a direct-upload URL. The caller
// PUTs the raw bytes to SignedURL; the object becomes readable at PublicURL.
type PresignedUpload struct {
	SignedURL string        `json:"signedUrl"`
	PublicURL string        `json:"publicUrl"`
	Key       string        `json:"path"`
	ExpiresIn time.Duration `json:"-"`
}

// BlobStore is the storage contract consumed by the media-library endpoints
// and the best-effort cleanup that runs on record deletion.
type BlobStore interface {
	// Upload validates the declared content type and size, writes the blob
	// under a collision-resistant key inside folder, and returns its metadata.
	Upload(ctx context.Context, folder, filename, contentType string, size int64, r io.Reader) (*Object, error)

	// List returns the blobs under the given key prefix, skipping anything
	// without a recognized image or video extension.
	List(ctx context.Context, prefix string) ([]Object, error)

	// Delete removes one blob by key.
	Delete(ctx context.Context, key string) error

	// PresignUpload issues a time-limited write URL so large files can bypass
	// this service entirely. Backends without signing support return an error.
	PresignUpload(ctx context.Context, folder, filename, contentType string) (*PresignedUpload, error)

	// PublicURL resolves a key to the URL the site serves it from.
	PublicURL(key string) string

	// KeyFromURL reverses PublicURL. Returns false when the URL does not
	// belong to this store.
	KeyFromURL(rawURL string) (string, bool)

	// Type returns the backend identifier (BackendLocal or BackendS3).
	Type() string
}

// Upload allow-lists keyed by declared content type.
var allowedImageTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

var allowedVideoTypes = map[string]bool{
	"video/mp4":       true,
	"video/webm":      true,
	"video/quicktime": true,
	"video/x-msvideo": true,
	"video/avi":       true,
	"video/mpeg":      true,
	"video/ogg":       true,
}

// Extension classification used when listing store contents, where no
// declared content type is available.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

var videoExtensions = map[string]bool{
	".mp4":  true,
	".webm": true,
	".mov":  true,
	".avi":  true,
	".mpeg": true,
	".mpg":  true,
	".ogg":  true,
	".ogv":  true,
}

// MediaTypeForContentType classifies a declared MIME type against the upload
// allow-lists.
func MediaTypeForContentType(contentType string) (string, bool) {
	// Strip any parameters, e.g. "image/svg+xml; charset=utf-8".
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	contentType = strings.TrimSpace(strings.ToLower(contentType))

	switch {
	case allowedImageTypes[contentType]:
		return MediaTypeImage, true
	case allowedVideoTypes[contentType]:
		return MediaTypeVideo, true
	}
	return "", false
}

// MediaTypeForFilename classifies a stored key by extension.
func MediaTypeForFilename(name string) (string, bool) {
	ext := strings.ToLower(path.Ext(name))
	switch {
	case imageExtensions[ext]:
		return MediaTypeImage, true
	case videoExtensions[ext]:
		return MediaTypeVideo, true
	}
	return "", false
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// SanitizeFilename replaces every character outside [a-zA-Z0-9.-] so keys are
// safe in URLs and on disk.
func SanitizeFilename(name string) string {
	name = path.Base(name)
	return unsafeFilenameChars.ReplaceAllString(name, "-")
}

// ObjectKey builds a collision-resistant key by prefixing the current
// timestamp in milliseconds to the sanitized filename. Collisions are avoided
// by the prefix rather than by checking existence.
func ObjectKey(folder, filename string) string {
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), SanitizeFilename(filename))
	if folder == "" {
		return name
	}
	return path.Join(folder, name)
}

// validateUpload checks the declared content type against the allow-lists and
// the declared size against the backend's per-media ceilings. It runs before
// any bytes are written.
func validateUpload(contentType string, size, maxImage, maxVideo int64) (string, error) {
	mediaType, ok := MediaTypeForContentType(contentType)
	if !ok {
		return "", errs.NewUnsupportedMediaTypeError(contentType)
	}

	max := maxImage
	if mediaType == MediaTypeVideo {
		max = maxVideo
	}
	if size > max {
		return "", errs.NewFileTooLargeError(size, max)
	}

	return mediaType, nil
}
