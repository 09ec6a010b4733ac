package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meridianmade/agency-site-backend/models"
)

type ContactSubmissionRepo struct {
	db *gorm.DB
}

func NewContactSubmissionRepo(db *gorm.DB) *ContactSubmissionRepo {
	return &ContactSubmissionRepo{db}
}

// FindAll returns contact submissions newest first, optionally filtered by
// status.
func (r *ContactSubmissionRepo) FindAll(status string) ([]*models.ContactSubmission, error) {
	query := r.db.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var submissions []*models.ContactSubmission
	err := query.Find(&submissions).Error
	return submissions, err
}

// FindByID returns a contact submission by its ID, or nil when no row matches.
func (r *ContactSubmissionRepo) FindByID(id uuid.UUID) (*models.ContactSubmission, error) {
	var submission models.ContactSubmission
	err := r.db.First(&submission, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

// Add inserts a new contact submission into the database
func (r *ContactSubmissionRepo) Add(submission *models.ContactSubmission) error {
	return r.db.Create(submission).Error
}

// Update applies the given column values to the submission with the given ID.
func (r *ContactSubmissionRepo) Update(id uuid.UUID, fields map[string]any) error {
	return r.db.Model(&models.ContactSubmission{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes a contact submission from the database by id
func (r *ContactSubmissionRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ContactSubmission{}, "id = ?", id).Error
}
