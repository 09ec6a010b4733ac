package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meridianmade/agency-site-backend/models"
)

type PortfolioItemRepo struct {
	db *gorm.DB
}

func NewPortfolioItemRepo(db *gorm.DB) *PortfolioItemRepo {
	return &PortfolioItemRepo{db}
}

// FindAll returns portfolio items ordered by sort order, optionally filtered
// by category and active flag.
func (r *PortfolioItemRepo) FindAll(category string, activeOnly bool) ([]*models.PortfolioItem, error) {
	query := r.db.Order("sort_order ASC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var items []*models.PortfolioItem
	err := query.Find(&items).Error
	return items, err
}

// FindByID returns a portfolio item by its ID, or nil when no row matches.
func (r *PortfolioItemRepo) FindByID(id uuid.UUID) (*models.PortfolioItem, error) {
	var item models.PortfolioItem
	err := r.db.First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Add inserts a new portfolio item into the database
func (r *PortfolioItemRepo) Add(item *models.PortfolioItem) error {
	return r.db.Create(item).Error
}

// Update applies the given column values to the portfolio item with the given
// ID. GORM maintains updated_at on its own.
func (r *PortfolioItemRepo) Update(id uuid.UUID, fields map[string]any) error {
	return r.db.Model(&models.PortfolioItem{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes a portfolio item from the database by id
func (r *PortfolioItemRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.PortfolioItem{}, "id = ?", id).Error
}
