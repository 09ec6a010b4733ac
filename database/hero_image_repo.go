package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meridianmade/agency-site-backend/models"
)

type HeroImageRepo struct {
	db *gorm.DB
}

func NewHeroImageRepo(db *gorm.DB) *HeroImageRepo {
	return &HeroImageRepo{db}
}

// FindAll returns hero images ordered by sort order, optionally filtered by
// category and active flag.
func (r *HeroImageRepo) FindAll(category string, activeOnly bool) ([]*models.HeroImage, error) {
	query := r.db.Order("sort_order ASC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var images []*models.HeroImage
	err := query.Find(&images).Error
	return images, err
}

// FindByID returns a hero image by its ID, or nil when no row matches.
func (r *HeroImageRepo) FindByID(id uuid.UUID) (*models.HeroImage, error) {
	var image models.HeroImage
	err := r.db.First(&image, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// Add inserts a new hero image into the database
func (r *HeroImageRepo) Add(image *models.HeroImage) error {
	return r.db.Create(image).Error
}

// Update applies the given column values to the hero image with the given ID.
// Columns absent from fields are left untouched.
func (r *HeroImageRepo) Update(id uuid.UUID, fields map[string]any) error {
	return r.db.Model(&models.HeroImage{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes a hero image from the database by id
func (r *HeroImageRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.HeroImage{}, "id = ?", id).Error
}
