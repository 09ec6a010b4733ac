package api

import (
	"context"
	"io"
	"strings"

	"github.com/meridianmade/agency-site-backend/errs"
	"github.com/meridianmade/agency-site-backend/storage"
)

const fakeBlobBaseURL = "https://cdn.test"

// fakeBlobStore records deletes so tests can assert best-effort cleanup ran.
type fakeBlobStore struct {
	deleted []string
}

func (f *fakeBlobStore) Upload(ctx context.Context, folder, filename, contentType string, size int64, r io.Reader) (*storage.Object, error) {
	key := storage.ObjectKey(folder, filename)
	return &storage.Object{Key: key, Filename: filename, URL: f.PublicURL(key), Size: size}, nil
}

func (f *fakeBlobStore) List(ctx context.Context, prefix string) ([]storage.Object, error) {
	return []storage.Object{}, nil
}

func (f *fakeBlobStore) Delete(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeBlobStore) PresignUpload(ctx context.Context, folder, filename, contentType string) (*storage.PresignedUpload, error) {
	return nil, errs.NewDirectUploadUnsupportedError("fake")
}

func (f *fakeBlobStore) PublicURL(key string) string {
	return fakeBlobBaseURL + "/" + key
}

func (f *fakeBlobStore) KeyFromURL(rawURL string) (string, bool) {
	if strings.HasPrefix(rawURL, fakeBlobBaseURL+"/") {
		return strings.TrimPrefix(rawURL, fakeBlobBaseURL+"/"), true
	}
	return "", false
}

func (f *fakeBlobStore) Type() string { return storage.BackendS3 }
