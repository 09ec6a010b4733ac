package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/meridianmade/agency-site-backend/errs"
)

// LocalMaxUploadSize is the single ceiling for filesystem-backed uploads.
const LocalMaxUploadSize = 10 << 20 // 10MB

// LocalStore keeps blobs in a directory tree under root and serves them from
// baseURL (typically a static-file route on the same server).
type LocalStore struct {
	root    string
	baseURL string
	logger  zerolog.Logger
}

func NewLocalStore(root, baseURL string) *LocalStore {
	return &LocalStore{
		root:    filepath.Clean(root),
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  log.With().Str("storage", "local").Logger(),
	}
}

func (l *LocalStore) Type() string { return BackendLocal }

// Upload writes the blob under root. The declared size is validated up front
// and enforced again while copying, so a lying Content-Length cannot sneak an
// oversized file past the ceiling.
func (l *LocalStore) Upload(ctx context.Context, folder, filename, contentType string, size int64, r io.Reader) (*Object, error) {
	mediaType, err := validateUpload(contentType, size, LocalMaxUploadSize, LocalMaxUploadSize)
	if err != nil {
		return nil, err
	}

	key := ObjectKey(folder, filename)
	fullPath, err := l.resolve(key)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return nil, errs.NewStorageError("upload", err)
	}

	f, err := os.Create(fullPath)
	if err != nil {
		return nil, errs.NewStorageError("upload", err)
	}
	defer f.Close()

	written, err := io.Copy(f, io.LimitReader(r, LocalMaxUploadSize+1))
	if err != nil {
		os.Remove(fullPath)
		return nil, errs.NewStorageError("upload", err)
	}
	if written > LocalMaxUploadSize {
		os.Remove(fullPath)
		return nil, errs.NewFileTooLargeError(written, LocalMaxUploadSize)
	}

	return &Object{
		Key:       key,
		Filename:  path.Base(key),
		URL:       l.PublicURL(key),
		MediaType: mediaType,
		Size:      written,
	}, nil
}

// List scans the directory for the given prefix and returns entries with a
// recognized media extension.
func (l *LocalStore) List(ctx context.Context, prefix string) ([]Object, error) {
	dir, err := l.resolve(prefix)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return []Object{}, nil
	}
	if err != nil {
		return nil, errs.NewStorageError("list", err)
	}

	objects := make([]Object, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		mediaType, ok := MediaTypeForFilename(entry.Name())
		if !ok {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			l.logger.Warn().Err(err).Str("file", entry.Name()).Msg("skipping unreadable file")
			continue
		}

		key := entry.Name()
		if prefix != "" {
			key = path.Join(prefix, entry.Name())
		}
		objects = append(objects, Object{
			Key:       key,
			Filename:  entry.Name(),
			URL:       l.PublicURL(key),
			MediaType: mediaType,
			Size:      info.Size(),
			CreatedAt: info.ModTime(),
		})
	}

	return objects, nil
}

// Delete removes one blob. A missing file reports not-found so explicit
// library deletes can 404, while the record-cleanup path just logs it.
func (l *LocalStore) Delete(ctx context.Context, key string) error {
	fullPath, err := l.resolve(key)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return errs.NewNotFound("file")
		}
		return errs.NewStorageError("delete", err)
	}
	return nil
}

// PresignUpload is unsupported: there is no signer for plain files on disk.
func (l *LocalStore) PresignUpload(ctx context.Context, folder, filename, contentType string) (*PresignedUpload, error) {
	return nil, errs.NewDirectUploadUnsupportedError("local")
}

func (l *LocalStore) PublicURL(key string) string {
	return l.baseURL + "/" + key
}

func (l *LocalStore) KeyFromURL(rawURL string) (string, bool) {
	if l.baseURL != "" && strings.HasPrefix(rawURL, l.baseURL+"/") {
		return strings.TrimPrefix(rawURL, l.baseURL+"/"), true
	}
	return "", false
}

// resolve joins key onto root and rejects anything that escapes it.
func (l *LocalStore) resolve(key string) (string, error) {
	fullPath := filepath.Join(l.root, filepath.FromSlash(key))
	if fullPath != l.root && !strings.HasPrefix(fullPath, l.root+string(filepath.Separator)) {
		return "", errs.NewBadRequestError(fmt.Sprintf("invalid storage key: %s", key))
	}
	return fullPath, nil
}
