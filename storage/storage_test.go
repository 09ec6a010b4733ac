package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMediaTypeForContentType(t *testing.T) {
	tests := []struct {
		contentType string
		mediaType   string
		allowed     bool
	}{
		{"image/png", MediaTypeImage, true},
		{"image/jpeg", MediaTypeImage, true},
		{"IMAGE/PNG", MediaTypeImage, true},
		{"image/svg+xml; charset=utf-8", MediaTypeImage, true},
		{"video/mp4", MediaTypeVideo, true},
		{"video/quicktime", MediaTypeVideo, true},
		{"application/pdf", "", false},
		{"text/html", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		mediaType, ok := MediaTypeForContentType(tt.contentType)
		assert.Equal(t, tt.allowed, ok, "content type %q", tt.contentType)
		assert.Equal(t, tt.mediaType, mediaType, "content type %q", tt.contentType)
	}
}

func TestMediaTypeForFilename(t *testing.T) {
	tests := []struct {
		name      string
		mediaType string
		allowed   bool
	}{
		{"uploads/123-hero.png", MediaTypeImage, true},
		{"photo.JPG", MediaTypeImage, true},
		{"clip.mov", MediaTypeVideo, true},
		{"reel.webm", MediaTypeVideo, true},
		{"notes.txt", "", false},
		{"archive", "", false},
	}

	for _, tt := range tests {
		mediaType, ok := MediaTypeForFilename(tt.name)
		assert.Equal(t, tt.allowed, ok, "filename %q", tt.name)
		assert.Equal(t, tt.mediaType, mediaType, "filename %q", tt.name)
	}
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "hero-banner.png", SanitizeFilename("hero banner.png"))
	assert.Equal(t, "caf--menu.jpg", SanitizeFilename("café menu.jpg"))
	assert.Equal(t, "logo.svg", SanitizeFilename("logo.svg"))

	// Path components are stripped before sanitizing.
	assert.Equal(t, "passwd", SanitizeFilename("../../etc/passwd"))
	assert.Equal(t, "photo.png", SanitizeFilename("uploads/nested/photo.png"))
}

func TestObjectKey(t *testing.T) {
	key := ObjectKey("uploads", "my photo.png")

	assert.True(t, strings.HasPrefix(key, "uploads/"), "key %q should live under the folder", key)
	assert.True(t, strings.HasSuffix(key, "-my-photo.png"), "key %q should end with the sanitized name", key)

	// Without a folder the key is just the prefixed filename.
	bare := ObjectKey("", "logo.png")
	assert.NotContains(t, bare, "/")
	assert.True(t, strings.HasSuffix(bare, "-logo.png"))
}

func TestValidateUpload(t *testing.T) {
	mediaType, err := validateUpload("image/png", 1024, LocalMaxUploadSize, LocalMaxUploadSize)
	assert.NoError(t, err)
	assert.Equal(t, MediaTypeImage, mediaType)

	_, err = validateUpload("application/zip", 1024, LocalMaxUploadSize, LocalMaxUploadSize)
	assert.Error(t, err)

	_, err = validateUpload("image/png", LocalMaxUploadSize+1, LocalMaxUploadSize, LocalMaxUploadSize)
	assert.Error(t, err)

	// Videos are judged against the video ceiling, not the image one.
	mediaType, err = validateUpload("video/mp4", 60<<20, S3MaxImageSize, S3MaxVideoSize)
	assert.NoError(t, err)
	assert.Equal(t, MediaTypeVideo, mediaType)
}
