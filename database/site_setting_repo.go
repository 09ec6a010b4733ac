package database

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/meridianmade/agency-site-backend/models"
)

type SiteSettingRepo struct {
	db *gorm.DB
}

func NewSiteSettingRepo(db *gorm.DB) *SiteSettingRepo {
	return &SiteSettingRepo{db}
}

// FindAll returns every site setting, ordered by key for stable output.
func (r *SiteSettingRepo) FindAll() ([]*models.SiteSetting, error) {
	var settings []*models.SiteSetting
	err := r.db.Order("key ASC").Find(&settings).Error
	return settings, err
}

// FindByKey returns the setting for the given logical key, or nil when absent.
func (r *SiteSettingRepo) FindByKey(key string) (*models.SiteSetting, error) {
	var setting models.SiteSetting
	err := r.db.First(&setting, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// Upsert inserts the setting, or updates value and type in place when a row
// with the same key already exists. Single round-trip, no check-then-act.
func (r *SiteSettingRepo) Upsert(setting *models.SiteSetting) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "type"}),
	}).Create(setting).Error
}

// DeleteByKey removes the setting for the given logical key.
func (r *SiteSettingRepo) DeleteByKey(key string) error {
	return r.db.Delete(&models.SiteSetting{}, "key = ?", key).Error
}
