package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PortfolioItem is a full case-study entry on the portfolio page.
type PortfolioItem struct {
	ID          uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title       string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Category    string                      `json:"category" db:"category" gorm:"type:text;not null"`
	Client      string                      `json:"client" db:"client" gorm:"type:text;not null"`
	Description string                      `json:"description" db:"description" gorm:"type:text;not null"`
	ImageURL    string                      `json:"image_url" db:"image_url" gorm:"type:text;not null"`
	Year        string                      `json:"year" db:"year" gorm:"type:text;not null"`
	Services    datatypes.JSONSlice[string] `json:"services" db:"services" gorm:"type:jsonb"`
	Order       int                         `json:"order" db:"sort_order" gorm:"column:sort_order;type:integer;not null;default:1"`
	Active      bool                        `json:"active" db:"active" gorm:"type:boolean;not null;default:true"`
	UpdatedAt   time.Time                   `json:"updated_at" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
