package models

import "github.com/google/uuid"

// SiteSetting is a single keyed value such as the site logo or favicon URL.
// One row exists per logical key; creation upserts on the key.
type SiteSetting struct {
	ID    uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Key   string    `json:"key" db:"key" gorm:"type:text;not null;uniqueIndex:idx_site_setting_key"`
	Value string    `json:"value" db:"value" gorm:"type:text;not null;default:''"`
	Type  string    `json:"type" db:"type" gorm:"type:text;not null;default:'text'"`
}
