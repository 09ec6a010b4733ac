package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"github.com/meridianmade/agency-site-backend/errs"
	"github.com/meridianmade/agency-site-backend/models"
)

type portfolioItemStore interface {
	FindAll(category string, activeOnly bool) ([]*models.PortfolioItem, error)
	FindByID(id uuid.UUID) (*models.PortfolioItem, error)
	Add(item *models.PortfolioItem) error
	Update(id uuid.UUID, fields map[string]any) error
	Delete(id uuid.UUID) error
}

type portfolioItemHandler struct {
	responder Responder
	logger    zerolog.Logger
	repo      portfolioItemStore
	cleaner   blobCleaner
}

func newPortfolioItemHandler(repo portfolioItemStore, cleaner blobCleaner) portfolioItemHandler {
	logger := log.With().Str("handlerName", "portfolioItemHandler").Logger()

	return portfolioItemHandler{
		responder: NewResponder(logger),
		logger:    logger,
		repo:      repo,
		cleaner:   cleaner,
	}
}

func (h portfolioItemHandler) getPortfolioItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := r.URL.Query().Get("category")
		activeOnly := r.URL.Query().Get("active") == "true"

		items, err := h.repo.FindAll(category, activeOnly)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "portfolio items", err))
			return
		}
		if items == nil {
			items = []*models.PortfolioItem{}
		}

		h.responder.WriteList(w, items)
	}
}

type createPortfolioItemInput struct {
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Client      string   `json:"client"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Year        string   `json:"year"`
	Services    []string `json:"services"`
	Order       *int     `json:"order"`
	Active      *bool    `json:"active"`
}

func (h portfolioItemHandler) createPortfolioItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input createPortfolioItemInput
		if err := decodeJSONBody(r, &input); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		required := map[string]string{
			"title":       input.Title,
			"category":    input.Category,
			"client":      input.Client,
			"description": input.Description,
			"image_url":   input.ImageURL,
			"year":        input.Year,
		}
		for field, value := range required {
			if value == "" {
				h.responder.WriteError(w, errs.NewMissingRequiredFieldError(field))
				return
			}
		}

		if input.Services == nil {
			input.Services = []string{}
		}

		item := models.PortfolioItem{
			ID:          uuid.New(),
			Title:       input.Title,
			Category:    input.Category,
			Client:      input.Client,
			Description: input.Description,
			ImageURL:    input.ImageURL,
			Year:        input.Year,
			Services:    datatypes.NewJSONSlice(input.Services),
			Order:       orderOrDefault(input.Order),
			Active:      activeOrDefault(input.Active),
		}

		if err := h.repo.Add(&item); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "portfolio item", err))
			return
		}

		h.responder.WriteCreatedItem(w, item)
	}
}

type updatePortfolioItemInput struct {
	ID          uuid.UUID `json:"id"`
	Title       *string   `json:"title"`
	Category    *string   `json:"category"`
	Client      *string   `json:"client"`
	Description *string   `json:"description"`
	ImageURL    *string   `json:"image_url"`
	Year        *string   `json:"year"`
	Services    *[]string `json:"services"`
	Order       *int      `json:"order"`
	Active      *bool     `json:"active"`
}

func (h portfolioItemHandler) updatePortfolioItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input updatePortfolioItemInput
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
			h.responder.WriteError(w, wrapDatabaseError("find", "portfolio item", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("portfolio item not found"))
			return
		}

		fields := map[string]any{}
		if input.Title != nil {
			fields["title"] = *input.Title
		}
		if input.Category != nil {
			fields["category"] = *input.Category
		}
		if input.Client != nil {
			fields["client"] = *input.Client
		}
		if input.Description != nil {
			fields["description"] = *input.Description
		}
		if input.ImageURL != nil {
			fields["image_url"] = *input.ImageURL
		}
		if input.Year != nil {
			fields["year"] = *input.Year
		}
		if input.Services != nil {
			fields["services"] = datatypes.NewJSONSlice(*input.Services)
		}
		if input.Order != nil {
			fields["sort_order"] = *input.Order
		}
		if input.Active != nil {
			fields["active"] = *input.Active
		}

		if len(fields) > 0 {
			if err := h.repo.Update(input.ID, fields); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("update", "portfolio item", err))
				return
			}
		}

		updated, err := h.repo.FindByID(input.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "portfolio item", err))
			return
		}

		h.responder.WriteItem(w, updated)
	}
}

func (h portfolioItemHandler) deletePortfolioItem() http.HandlerFunc {
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
			h.responder.WriteError(w, wrapDatabaseError("find", "portfolio item", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("portfolio item not found"))
			return
		}

		if err := h.repo.Delete(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "portfolio item", err))
			return
		}

		h.cleaner.CleanupURL(r.Context(), existing.ImageURL)

		h.responder.WriteMessage(w, "portfolio item deleted successfully")
	}
}
