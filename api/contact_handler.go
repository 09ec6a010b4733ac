package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/meridianmade/agency-site-backend/errs"
	"github.com/meridianmade/agency-site-backend/models"
	"github.com/meridianmade/agency-site-backend/services"
)

type contactSubmissionStore interface {
	FindAll(status string) ([]*models.ContactSubmission, error)
	FindByID(id uuid.UUID) (*models.ContactSubmission, error)
	Add(submission *models.ContactSubmission) error
	Update(id uuid.UUID, fields map[string]any) error
	Delete(id uuid.UUID) error
}

// contactHandler backs the public contact form and the admin inbox. Creation
// is the only unauthenticated write in the API.
type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	repo      contactSubmissionStore
	notifier  *services.Notifier
}

func newContactHandler(repo contactSubmissionStore, notifier *services.Notifier) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		repo:      repo,
		notifier:  notifier,
	}
}

func (h contactHandler) getContactSubmissions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := r.URL.Query().Get("status")

		submissions, err := h.repo.FindAll(status)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact submissions", err))
			return
		}
		if submissions == nil {
			submissions = []*models.ContactSubmission{}
		}

		h.responder.WriteList(w, submissions)
	}
}

type createContactSubmissionInput struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone"`
	Service string  `json:"service"`
	Budget  *string `json:"budget"`
	Message string  `json:"message"`
}

func (h contactHandler) createContactSubmission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input createContactSubmissionInput
		if err := decodeJSONBody(r, &input); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		required := map[string]string{
			"name":    input.Name,
			"email":   input.Email,
			"service": input.Service,
			"message": input.Message,
		}
		for field, value := range required {
			if value == "" {
				h.responder.WriteError(w, errs.NewMissingRequiredFieldError(field))
				return
			}
		}
		if !validEmail(input.Email) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("email", "not a valid email address"))
			return
		}

		submission := models.ContactSubmission{
			ID:      uuid.New(),
			Name:    input.Name,
			Email:   input.Email,
			Phone:   input.Phone,
			Service: input.Service,
			Budget:  input.Budget,
			Message: input.Message,
			Status:  models.ContactStatusNew,
		}

		if err := h.repo.Add(&submission); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "contact submission", err))
			return
		}

		// Staff notification is best-effort and must not delay the response.
		go h.notifier.ContactSubmissionReceived(submission)

		h.responder.WriteCreatedItem(w, submission)
	}
}

type updateContactSubmissionInput struct {
	ID     uuid.UUID `json:"id"`
	Status *string   `json:"status"`
}

// updateContactSubmission changes the triage status. The three conventional
// values are new/read/replied but transitions are not enforced.
func (h contactHandler) updateContactSubmission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input updateContactSubmissionInput
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
			h.responder.WriteError(w, wrapDatabaseError("find", "contact submission", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("contact submission not found"))
			return
		}

		fields := map[string]any{}
		if input.Status != nil {
			fields["status"] = *input.Status
		}

		if len(fields) > 0 {
			if err := h.repo.Update(input.ID, fields); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("update", "contact submission", err))
				return
			}
		}

		updated, err := h.repo.FindByID(input.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "contact submission", err))
			return
		}

		h.responder.WriteItem(w, updated)
	}
}

func (h contactHandler) deleteContactSubmission() http.HandlerFunc {
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
			h.responder.WriteError(w, wrapDatabaseError("find", "contact submission", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("contact submission not found"))
			return
		}

		if err := h.repo.Delete(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "contact submission", err))
			return
		}

		h.responder.WriteMessage(w, "contact submission deleted successfully")
	}
}
