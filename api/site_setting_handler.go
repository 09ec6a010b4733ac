package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/meridianmade/agency-site-backend/errs"
	"github.com/meridianmade/agency-site-backend/models"
)

type siteSettingStore interface {
	FindAll() ([]*models.SiteSetting, error)
	FindByKey(key string) (*models.SiteSetting, error)
	Upsert(setting *models.SiteSetting) error
	DeleteByKey(key string) error
}

// siteSettingHandler manages keyed singletons like the site logo and favicon.
// POST upserts by key; there is no PUT.
type siteSettingHandler struct {
	responder Responder
	logger    zerolog.Logger
	repo      siteSettingStore
	cleaner   blobCleaner
}

func newSiteSettingHandler(repo siteSettingStore, cleaner blobCleaner) siteSettingHandler {
	logger := log.With().Str("handlerName", "siteSettingHandler").Logger()

	return siteSettingHandler{
		responder: NewResponder(logger),
		logger:    logger,
		repo:      repo,
		cleaner:   cleaner,
	}
}

func (h siteSettingHandler) getSiteSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if key := r.URL.Query().Get("key"); key != "" {
			setting, err := h.repo.FindByKey(key)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find", "site setting", err))
				return
			}
			if setting == nil {
				h.responder.WriteError(w, errs.NewNotFoundError("site setting not found"))
				return
			}
			h.responder.WriteItem(w, setting)
			return
		}

		settings, err := h.repo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "site settings", err))
			return
		}
		if settings == nil {
			settings = []*models.SiteSetting{}
		}

		h.responder.WriteList(w, settings)
	}
}

type upsertSiteSettingInput struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Type  string `json:"type"`
}

// upsertSiteSetting creates the setting or replaces the value for an existing
// key in a single store call.
func (h siteSettingHandler) upsertSiteSetting() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input upsertSiteSettingInput
		if err := decodeJSONBody(r, &input); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if input.Key == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("key"))
			return
		}
		if input.Value == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("value"))
			return
		}
		if input.Type == "" {
			input.Type = "text"
		}

		setting := models.SiteSetting{
			ID:    uuid.New(),
			Key:   input.Key,
			Value: input.Value,
			Type:  input.Type,
		}

		if err := h.repo.Upsert(&setting); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("upsert", "site setting", err))
			return
		}

		// Reload so the response carries the row's real ID after a key conflict.
		persisted, err := h.repo.FindByKey(input.Key)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find upserted", "site setting", err))
			return
		}

		h.responder.WriteCreatedItem(w, persisted)
	}
}

// deleteSiteSetting removes a setting by key. Image-typed settings get
// best-effort blob cleanup since their value is a stored public URL.
func (h siteSettingHandler) deleteSiteSetting() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := r.URL.Query().Get("key")
		if key == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing key"))
			return
		}

		existing, err := h.repo.FindByKey(key)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "site setting", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("site setting not found"))
			return
		}

		if err := h.repo.DeleteByKey(key); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "site setting", err))
			return
		}

		if existing.Type == "image" {
			h.cleaner.CleanupURL(r.Context(), existing.Value)
		}

		h.responder.WriteMessage(w, "site setting deleted successfully")
	}
}
