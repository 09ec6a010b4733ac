package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/meridianmade/agency-site-backend/errs"
	"github.com/meridianmade/agency-site-backend/models"
)

type clientLogoStore interface {
	FindAll(activeOnly bool) ([]*models.ClientLogo, error)
	FindByID(id uuid.UUID) (*models.ClientLogo, error)
	Add(logo *models.ClientLogo) error
	Update(id uuid.UUID, fields map[string]any) error
	Delete(id uuid.UUID) error
}

type clientLogoHandler struct {
	responder Responder
	logger    zerolog.Logger
	repo      clientLogoStore
	cleaner   blobCleaner
}

func newClientLogoHandler(repo clientLogoStore, cleaner blobCleaner) clientLogoHandler {
	logger := log.With().Str("handlerName", "clientLogoHandler").Logger()

	return clientLogoHandler{
		responder: NewResponder(logger),
		logger:    logger,
		repo:      repo,
		cleaner:   cleaner,
	}
}

func (h clientLogoHandler) getClientLogos() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		activeOnly := r.URL.Query().Get("active") == "true"

		logos, err := h.repo.FindAll(activeOnly)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "client logos", err))
			return
		}
		if logos == nil {
			logos = []*models.ClientLogo{}
		}

		h.responder.WriteList(w, logos)
	}
}

type createClientLogoInput struct {
	ClientName string  `json:"client_name"`
	LogoURL    string  `json:"logo_url"`
	Order      *int    `json:"order"`
	Active     *bool   `json:"active"`
	WebsiteURL *string `json:"website_url"`
}

func (h clientLogoHandler) createClientLogo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input createClientLogoInput
		if err := decodeJSONBody(r, &input); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if input.ClientName == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("client_name"))
			return
		}
		if input.LogoURL == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("logo_url"))
			return
		}

		logo := models.ClientLogo{
			ID:         uuid.New(),
			ClientName: input.ClientName,
			LogoURL:    input.LogoURL,
			Order:      orderOrDefault(input.Order),
			Active:     activeOrDefault(input.Active),
			WebsiteURL: input.WebsiteURL,
		}

		if err := h.repo.Add(&logo); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "client logo", err))
			return
		}

		h.responder.WriteCreatedItem(w, logo)
	}
}

type updateClientLogoInput struct {
	ID         uuid.UUID `json:"id"`
	ClientName *string   `json:"client_name"`
	LogoURL    *string   `json:"logo_url"`
	Order      *int      `json:"order"`
	Active     *bool     `json:"active"`
	WebsiteURL *string   `json:"website_url"`
}

func (h clientLogoHandler) updateClientLogo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input updateClientLogoInput
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
			h.responder.WriteError(w, wrapDatabaseError("find", "client logo", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("client logo not found"))
			return
		}

		fields := map[string]any{}
		if input.ClientName != nil {
			fields["client_name"] = *input.ClientName
		}
		if input.LogoURL != nil {
			fields["logo_url"] = *input.LogoURL
		}
		if input.Order != nil {
			fields["sort_order"] = *input.Order
		}
		if input.Active != nil {
			fields["active"] = *input.Active
		}
		if input.WebsiteURL != nil {
			fields["website_url"] = *input.WebsiteURL
		}

		if len(fields) > 0 {
			if err := h.repo.Update(input.ID, fields); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("update", "client logo", err))
				return
			}
		}

		updated, err := h.repo.FindByID(input.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "client logo", err))
			return
		}

		h.responder.WriteItem(w, updated)
	}
}

func (h clientLogoHandler) deleteClientLogo() http.HandlerFunc {
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
			h.responder.WriteError(w, wrapDatabaseError("find", "client logo", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("client logo not found"))
			return
		}

		if err := h.repo.Delete(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "client logo", err))
			return
		}

		h.cleaner.CleanupURL(r.Context(), existing.LogoURL)

		h.responder.WriteMessage(w, "client logo deleted successfully")
	}
}
