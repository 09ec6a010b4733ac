package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/meridianmade/agency-site-backend/models"
)

type ServiceImageRepo struct {
	db *gorm.DB
}

func NewServiceImageRepo(db *gorm.DB) *ServiceImageRepo {
	return &ServiceImageRepo{db}
}

// FindAll returns service images ordered by sort order, optionally filtered
// by service type and active flag.
func (r *ServiceImageRepo) FindAll(serviceType string, activeOnly bool) ([]*models.ServiceImage, error) {
	query := r.db.Order("sort_order ASC")
	if serviceType != "" {
		query = query.Where("service_type = ?", serviceType)
	}
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var images []*models.ServiceImage
	err := query.Find(&images).Error
	return images, err
}

// FindByID returns a service image by its ID, or nil when no row matches.
func (r *ServiceImageRepo) FindByID(id uuid.UUID) (*models.ServiceImage, error) {
	var image models.ServiceImage
	err := r.db.First(&image, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// FindBySlot returns the image occupying the (service_type, image_slot) pair,
// or nil when the slot is empty.
func (r *ServiceImageRepo) FindBySlot(serviceType string, imageSlot int) (*models.ServiceImage, error) {
	var image models.ServiceImage
	err := r.db.First(&image, "service_type = ? AND image_slot = ?", serviceType, imageSlot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// Upsert inserts the image, or replaces the contents of an already-occupied
// (service_type, image_slot) slot. Uses the store's native conflict handling
// so the check and the write are a single round-trip.
func (r *ServiceImageRepo) Upsert(image *models.ServiceImage) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "service_type"}, {Name: "image_slot"}},
		DoUpdates: clause.AssignmentColumns([]string{"image_url", "alt_text", "sort_order", "active", "updated_at"}),
	}).Create(image).Error
}

// Update applies the given column values to the service image with the given ID.
func (r *ServiceImageRepo) Update(id uuid.UUID, fields map[string]any) error {
	return r.db.Model(&models.ServiceImage{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes a service image from the database by id
func (r *ServiceImageRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ServiceImage{}, "id = ?", id).Error
}
