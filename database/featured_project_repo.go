package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meridianmade/agency-site-backend/models"
)

type FeaturedProjectRepo struct {
	db *gorm.DB
}

func NewFeaturedProjectRepo(db *gorm.DB) *FeaturedProjectRepo {
	return &FeaturedProjectRepo{db}
}

// FindAll returns featured projects ordered by sort order, optionally filtered
// by category and active flag.
func (r *FeaturedProjectRepo) FindAll(category string, activeOnly bool) ([]*models.FeaturedProject, error) {
	query := r.db.Order("sort_order ASC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var projects []*models.FeaturedProject
	err := query.Find(&projects).Error
	return projects, err
}

// FindByID returns a featured project by its ID, or nil when no row matches.
func (r *FeaturedProjectRepo) FindByID(id uuid.UUID) (*models.FeaturedProject, error) {
	var project models.FeaturedProject
	err := r.db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new featured project into the database
func (r *FeaturedProjectRepo) Add(project *models.FeaturedProject) error {
	return r.db.Create(project).Error
}

// Update applies the given column values to the featured project with the
// given ID.
func (r *FeaturedProjectRepo) Update(id uuid.UUID, fields map[string]any) error {
	return r.db.Model(&models.FeaturedProject{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes a featured project from the database by id
func (r *FeaturedProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.FeaturedProject{}, "id = ?", id).Error
}
