package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meridianmade/agency-site-backend/models"
)

type ClientLogoRepo struct {
	db *gorm.DB
}

func NewClientLogoRepo(db *gorm.DB) *ClientLogoRepo {
	return &ClientLogoRepo{db}
}

// FindAll returns client logos ordered by sort order, optionally filtered by
// active flag.
func (r *ClientLogoRepo) FindAll(activeOnly bool) ([]*models.ClientLogo, error) {
	query := r.db.Order("sort_order ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var logos []*models.ClientLogo
	err := query.Find(&logos).Error
	return logos, err
}

// FindByID returns a client logo by its ID, or nil when no row matches.
func (r *ClientLogoRepo) FindByID(id uuid.UUID) (*models.ClientLogo, error) {
	var logo models.ClientLogo
	err := r.db.First(&logo, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &logo, nil
}

// Add inserts a new client logo into the database
func (r *ClientLogoRepo) Add(logo *models.ClientLogo) error {
	return r.db.Create(logo).Error
}

// Update applies the given column values to the client logo with the given ID.
func (r *ClientLogoRepo) Update(id uuid.UUID, fields map[string]any) error {
	return r.db.Model(&models.ClientLogo{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes a client logo from the database by id
func (r *ClientLogoRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ClientLogo{}, "id = ?", id).Error
}
