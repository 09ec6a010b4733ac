package api

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/meridianmade/agency-site-backend/errs"
	"github.com/meridianmade/agency-site-backend/storage"
)

// defaultUploadFolder is where admin uploads land unless the form says
// otherwise.
const defaultUploadFolder = "uploads"

// Multipart bodies are capped above the biggest cloud ceiling; per-media
// validation happens in the store.
const maxUploadBody = storage.S3MaxVideoSize + (1 << 20)

// libraryHandler manages the media library: direct uploads, listing, deletes
// and pre-signed direct-upload URLs.
type libraryHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     storage.BlobStore
}

func newLibraryHandler(store storage.BlobStore) libraryHandler {
	logger := log.With().Str("handlerName", "libraryHandler").Logger()

	return libraryHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
	}
}

// upload accepts one multipart file, validates its declared type and size,
// and writes it to the blob store.
func (h libraryHandler) upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBody)

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("missing file in multipart form"))
			return
		}
		defer file.Close()

		folder := r.FormValue("folder")
		if folder == "" {
			folder = defaultUploadFolder
		}

		contentType := header.Header.Get("Content-Type")
		object, err := h.store.Upload(r.Context(), folder, header.Filename, contentType, header.Size, file)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success":    true,
			"filename":   object.Filename,
			"path":       object.Key,
			"url":        object.URL,
			"media_type": object.MediaType,
			"size":       object.Size,
		})
	}
}

// list returns the current blob-store contents under ?folder= (default
// "uploads"), classified by media type.
func (h libraryHandler) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		folder := r.URL.Query().Get("folder")
		if folder == "" {
			folder = defaultUploadFolder
		}

		objects, err := h.store.List(r.Context(), folder)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"images":  objects,
		})
	}
}

// remove deletes one blob by ?filename=. A bare filename is resolved against
// the default upload folder; a value containing a slash is treated as a full
// key.
func (h libraryHandler) remove() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename := r.URL.Query().Get("filename")
		if filename == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing filename"))
			return
		}

		key := filename
		if !strings.Contains(filename, "/") {
			key = defaultUploadFolder + "/" + filename
		}

		if err := h.store.Delete(r.Context(), key); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
		})
	}
}

type createUploadURLInput struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Folder      string `json:"folder"`
}

// createUploadURL issues a time-limited pre-signed write URL. The file bytes
// never pass through this service: the caller PUTs them straight to the
// signed URL.
func (h libraryHandler) createUploadURL() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input createUploadURLInput
		if err := decodeJSONBody(r, &input); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if input.Filename == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("filename"))
			return
		}
		if input.ContentType == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("contentType"))
			return
		}
		if input.Folder == "" {
			input.Folder = defaultUploadFolder
		}

		presigned, err := h.store.PresignUpload(r.Context(), input.Folder, input.Filename, input.ContentType)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success":   true,
			"signedUrl": presigned.SignedURL,
			"publicUrl": presigned.PublicURL,
			"path":      presigned.Key,
			"filename":  strings.TrimPrefix(presigned.Key, input.Folder+"/"),
		})
	}
}
