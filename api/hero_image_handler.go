package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/meridianmade/agency-site-backend/errs"
	"github.com/meridianmade/agency-site-backend/models"
)

type heroImageStore interface {
	FindAll(category string, activeOnly bool) ([]*models.HeroImage, error)
	FindByID(id uuid.UUID) (*models.HeroImage, error)
	Add(image *models.HeroImage) error
	Update(id uuid.UUID, fields map[string]any) error
	Delete(id uuid.UUID) error
}

type heroImageHandler struct {
	responder Responder
	logger    zerolog.Logger
	repo      heroImageStore
	cleaner   blobCleaner
}

func newHeroImageHandler(repo heroImageStore, cleaner blobCleaner) heroImageHandler {
	logger := log.With().Str("handlerName", "heroImageHandler").Logger()

	return heroImageHandler{
		responder: NewResponder(logger),
		logger:    logger,
		repo:      repo,
		cleaner:   cleaner,
	}
}

// getHeroImages lists hero carousel slides ordered by sort order, optionally
// filtered by ?category= and ?active=true.
func (h heroImageHandler) getHeroImages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := r.URL.Query().Get("category")
		activeOnly := r.URL.Query().Get("active") == "true"

		images, err := h.repo.FindAll(category, activeOnly)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "hero images", err))
			return
		}
		if images == nil {
			images = []*models.HeroImage{}
		}

		h.responder.WriteList(w, images)
	}
}

type createHeroImageInput struct {
	Filename string  `json:"filename"`
	URL      *string `json:"url"`
	Category string  `json:"category"`
	Order    *int    `json:"order"`
	Active   *bool   `json:"active"`
}

func (h heroImageHandler) createHeroImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input createHeroImageInput
		if err := decodeJSONBody(r, &input); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if input.Filename == "" && (input.URL == nil || *input.URL == "") {
			h.responder.WriteError(w, errs.NewBadRequestError("either filename or url is required"))
			return
		}

		image := models.HeroImage{
			Filename: input.Filename,
			URL:      input.URL,
			Category: input.Category,
			Order:    orderOrDefault(input.Order),
			Active:   activeOrDefault(input.Active),
		}
		if image.ID == uuid.Nil {
			image.ID = uuid.New()
		}

		if err := h.repo.Add(&image); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "hero image", err))
			return
		}

		h.responder.WriteCreatedItem(w, image)
	}
}

type updateHeroImageInput struct {
	ID       uuid.UUID `json:"id"`
	Filename *string   `json:"filename"`
	URL      *string   `json:"url"`
	Category *string   `json:"category"`
	Order    *int      `json:"order"`
	Active   *bool     `json:"active"`
}

// updateHeroImage applies a partial update: only fields present in the body
// change, absence means "leave unchanged".
func (h heroImageHandler) updateHeroImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input updateHeroImageInput
		if err := decodeJSONBody(r, &input); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if input.ID == uuid.Nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("id"))
			return
		}

		existing, err := h.repo.FindByID(input.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "hero image", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("hero image not found"))
			return
		}

		// The merged record must still carry a source: clearing filename on a
		// row without a URL (or vice versa) would leave an unservable slide.
		merged := *existing
		if input.Filename != nil {
			merged.Filename = *input.Filename
		}
		if input.URL != nil {
			merged.URL = input.URL
		}
		if !merged.HasSource() {
			h.responder.WriteError(w, errs.NewBadRequestError("either filename or url is required"))
			return
		}

		fields := map[string]any{}
		if input.Filename != nil {
			fields["filename"] = *input.Filename
		}
		if input.URL != nil {
			fields["url"] = *input.URL
		}
		if input.Category != nil {
			fields["category"] = *input.Category
		}
		if input.Order != nil {
			fields["sort_order"] = *input.Order
		}
		if input.Active != nil {
			fields["active"] = *input.Active
		}

		if len(fields) > 0 {
			if err := h.repo.Update(input.ID, fields); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("update", "hero image", err))
				return
			}
		}

		updated, err := h.repo.FindByID(input.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "hero image", err))
			return
		}

		h.responder.WriteItem(w, updated)
	}
}

// deleteHeroImage removes the record, then best-effort deletes the blob its
// URL pointed at.
func (h heroImageHandler) deleteHeroImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := r.URL.Query().Get("id")
		if idStr == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing id"))
			return
		}

		id, err := uuid.Parse(idStr)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid id"))
			return
		}

		existing, err := h.repo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "hero image", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("hero image not found"))
			return
		}

		if err := h.repo.Delete(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "hero image", err))
			return
		}

		if existing.URL != nil {
			h.cleaner.CleanupURL(r.Context(), *existing.URL)
		}

		h.responder.WriteMessage(w, "hero image deleted successfully")
	}
}
