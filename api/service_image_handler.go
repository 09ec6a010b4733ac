package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/meridianmade/agency-site-backend/errs"
	"github.com/meridianmade/agency-site-backend/models"
)

type serviceImageStore interface {
	FindAll(serviceType string, activeOnly bool) ([]*models.ServiceImage, error)
	FindByID(id uuid.UUID) (*models.ServiceImage, error)
	FindBySlot(serviceType string, imageSlot int) (*models.ServiceImage, error)
	Upsert(image *models.ServiceImage) error
	Update(id uuid.UUID, fields map[string]any) error
	Delete(id uuid.UUID) error
}

// serviceImageHandler fills fixed image slots on the service pages. POSTing
// to an occupied (service_type, image_slot) pair replaces the slot's contents
// instead of inserting a second row.
type serviceImageHandler struct {
	responder Responder
	logger    zerolog.Logger
	repo      serviceImageStore
	cleaner   blobCleaner
}

func newServiceImageHandler(repo serviceImageStore, cleaner blobCleaner) serviceImageHandler {
	logger := log.With().Str("handlerName", "serviceImageHandler").Logger()

	return serviceImageHandler{
		responder: NewResponder(logger),
		logger:    logger,
		repo:      repo,
		cleaner:   cleaner,
	}
}

func (h serviceImageHandler) getServiceImages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serviceType := r.URL.Query().Get("service_type")
		activeOnly := r.URL.Query().Get("active") == "true"

		images, err := h.repo.FindAll(serviceType, activeOnly)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "service images", err))
			return
		}
		if images == nil {
			images = []*models.ServiceImage{}
		}

		h.responder.WriteList(w, images)
	}
}

type upsertServiceImageInput struct {
	ServiceType string  `json:"service_type"`
	ImageSlot   *int    `json:"image_slot"`
	ImageURL    string  `json:"image_url"`
	AltText     *string `json:"alt_text"`
	Order       *int    `json:"order"`
	Active      *bool   `json:"active"`
}

// upsertServiceImage creates or replaces the slot in a single conditional
// store call.
func (h serviceImageHandler) upsertServiceImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input upsertServiceImageInput
		if err := decodeJSONBody(r, &input); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if input.ServiceType == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("service_type"))
			return
		}
		if input.ImageSlot == nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("image_slot"))
			return
		}
		if input.ImageURL == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("image_url"))
			return
		}

		image := models.ServiceImage{
			ID:          uuid.New(),
			ServiceType: input.ServiceType,
			ImageSlot:   *input.ImageSlot,
			ImageURL:    input.ImageURL,
			AltText:     input.AltText,
			Order:       orderOrDefault(input.Order),
			Active:      activeOrDefault(input.Active),
			UpdatedAt:   time.Now(),
		}

		if err := h.repo.Upsert(&image); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("upsert", "service image", err))
			return
		}

		// Reload by slot so the response carries the surviving row's ID after
		// a conflict resolution.
		persisted, err := h.repo.FindBySlot(input.ServiceType, *input.ImageSlot)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find upserted", "service image", err))
			return
		}

		h.responder.WriteCreatedItem(w, persisted)
	}
}

type updateServiceImageInput struct {
	ID       uuid.UUID `json:"id"`
	ImageURL *string   `json:"image_url"`
	AltText  *string   `json:"alt_text"`
	Order    *int      `json:"order"`
	Active   *bool     `json:"active"`
}

func (h serviceImageHandler) updateServiceImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input updateServiceImageInput
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
			h.responder.WriteError(w, wrapDatabaseError("find", "service image", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("service image not found"))
			return
		}

		fields := map[string]any{}
		if input.ImageURL != nil {
			fields["image_url"] = *input.ImageURL
		}
		if input.AltText != nil {
			fields["alt_text"] = *input.AltText
		}
		if input.Order != nil {
			fields["sort_order"] = *input.Order
		}
		if input.Active != nil {
			fields["active"] = *input.Active
		}

		if len(fields) > 0 {
			if err := h.repo.Update(input.ID, fields); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("update", "service image", err))
				return
			}
		}

		updated, err := h.repo.FindByID(input.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "service image", err))
			return
		}

		h.responder.WriteItem(w, updated)
	}
}

func (h serviceImageHandler) deleteServiceImage() http.HandlerFunc {
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
			h.responder.WriteError(w, wrapDatabaseError("find", "service image", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("service image not found"))
			return
		}

		if err := h.repo.Delete(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "service image", err))
			return
		}

		h.cleaner.CleanupURL(r.Context(), existing.ImageURL)

		h.responder.WriteMessage(w, "service image deleted successfully")
	}
}
