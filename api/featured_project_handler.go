package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/meridianmade/agency-site-backend/errs"
	"github.com/meridianmade/agency-site-backend/models"
)

type featuredProjectStore interface {
	FindAll(category string, activeOnly bool) ([]*models.FeaturedProject, error)
	FindByID(id uuid.UUID) (*models.FeaturedProject, error)
	Add(project *models.FeaturedProject) error
	Update(id uuid.UUID, fields map[string]any) error
	Delete(id uuid.UUID) error
}

type featuredProjectHandler struct {
	responder Responder
	logger    zerolog.Logger
	repo      featuredProjectStore
	cleaner   blobCleaner
}

func newFeaturedProjectHandler(repo featuredProjectStore, cleaner blobCleaner) featuredProjectHandler {
	logger := log.With().Str("handlerName", "featuredProjectHandler").Logger()

	return featuredProjectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		repo:      repo,
		cleaner:   cleaner,
	}
}

func (h featuredProjectHandler) getFeaturedProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := r.URL.Query().Get("category")
		activeOnly := r.URL.Query().Get("active") == "true"

		projects, err := h.repo.FindAll(category, activeOnly)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "featured projects", err))
			return
		}
		if projects == nil {
			projects = []*models.FeaturedProject{}
		}

		h.responder.WriteList(w, projects)
	}
}

type createFeaturedProjectInput struct {
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Order       *int    `json:"order"`
	Active      *bool   `json:"active"`
	ClientName  *string `json:"client_name"`
	ProjectURL  *string `json:"project_url"`
}

func (h featuredProjectHandler) createFeaturedProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input createFeaturedProjectInput
		if err := decodeJSONBody(r, &input); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		required := map[string]string{
			"title":       input.Title,
			"category":    input.Category,
			"description": input.Description,
			"image_url":   input.ImageURL,
		}
		for field, value := range required {
			if value == "" {
				h.responder.WriteError(w, errs.NewMissingRequiredFieldError(field))
				return
			}
		}

		project := models.FeaturedProject{
			ID:          uuid.New(),
			Title:       input.Title,
			Category:    input.Category,
			Description: input.Description,
			ImageURL:    input.ImageURL,
			Order:       orderOrDefault(input.Order),
			Active:      activeOrDefault(input.Active),
			ClientName:  input.ClientName,
			ProjectURL:  input.ProjectURL,
		}

		if err := h.repo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "featured project", err))
			return
		}

		h.responder.WriteCreatedItem(w, project)
	}
}

type updateFeaturedProjectInput struct {
	ID          uuid.UUID `json:"id"`
	Title       *string   `json:"title"`
	Category    *string   `json:"category"`
	Description *string   `json:"description"`
	ImageURL    *string   `json:"image_url"`
	Order       *int      `json:"order"`
	Active      *bool     `json:"active"`
	ClientName  *string   `json:"client_name"`
	ProjectURL  *string   `json:"project_url"`
}

func (h featuredProjectHandler) updateFeaturedProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input updateFeaturedProjectInput
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
			h.responder.WriteError(w, wrapDatabaseError("find", "featured project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("featured project not found"))
			return
		}

		fields := map[string]any{}
		if input.Title != nil {
			fields["title"] = *input.Title
		}
		if input.Category != nil {
			fields["category"] = *input.Category
		}
		if input.Description != nil {
			fields["description"] = *input.Description
		}
		if input.ImageURL != nil {
			fields["image_url"] = *input.ImageURL
		}
		if input.Order != nil {
			fields["sort_order"] = *input.Order
		}
		if input.Active != nil {
			fields["active"] = *input.Active
		}
		if input.ClientName != nil {
			fields["client_name"] = *input.ClientName
		}
		if input.ProjectURL != nil {
			fields["project_url"] = *input.ProjectURL
		}

		if len(fields) > 0 {
			if err := h.repo.Update(input.ID, fields); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("update", "featured project", err))
				return
			}
		}

		updated, err := h.repo.FindByID(input.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "featured project", err))
			return
		}

		h.responder.WriteItem(w, updated)
	}
}

func (h featuredProjectHandler) deleteFeaturedProject() http.HandlerFunc {
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
			h.responder.WriteError(w, wrapDatabaseError("find", "featured project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("featured project not found"))
			return
		}

		if err := h.repo.Delete(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "featured project", err))
			return
		}

		h.cleaner.CleanupURL(r.Context(), existing.ImageURL)

		h.responder.WriteMessage(w, "featured project deleted successfully")
	}
}
