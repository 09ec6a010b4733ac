package api

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/meridianmade/agency-site-backend/storage"
)

// blobCleaner deletes the blob behind a stored public URL when its owning
// record goes away. Strictly fire-and-log: a cleanup failure never fails the
// record deletion, so orphaned blobs are possible and accepted.
type blobCleaner struct {
	store  storage.BlobStore
	logger zerolog.Logger
}

func newBlobCleaner(store storage.BlobStore) blobCleaner {
	return blobCleaner{
		store:  store,
		logger: log.With().Str("handlerName", "blobCleaner").Logger(),
	}
}

// CleanupURL parses the stored public URL back into a storage key and
// attempts the delete.
func (c blobCleaner) CleanupURL(ctx context.Context, rawURL string) {
	if rawURL == "" || c.store == nil {
		return
	}

	key, ok := c.store.KeyFromURL(rawURL)
	if !ok {
		c.logger.Debug().Str("url", rawURL).Msg("URL does not belong to the blob store, skipping cleanup")
		return
	}

	if err := c.store.Delete(ctx, key); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("Best-effort blob cleanup failed")
	}
}
