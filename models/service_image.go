package models

import (
	"time"

	"github.com/google/uuid"
)

// ServiceImage fills one fixed image slot on a service page. The
// (service_type, image_slot) pair is the natural key: posting to an occupied
// slot replaces its contents instead of inserting a duplicate row.
type ServiceImage struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ServiceType string    `json:"service_type" db:"service_type" gorm:"type:text;not null;uniqueIndex:idx_service_image_slot"`
	ImageSlot   int       `json:"image_slot" db:"image_slot" gorm:"type:integer;not null;uniqueIndex:idx_service_image_slot"`
	ImageURL    string    `json:"image_url" db:"image_url" gorm:"type:text;not null"`
	AltText     *string   `json:"alt_text,omitempty" db:"alt_text" gorm:"type:text"`
	Order       int       `json:"order" db:"sort_order" gorm:"column:sort_order;type:integer;not null;default:1"`
	Active      bool      `json:"active" db:"active" gorm:"type:boolean;not null;default:true"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
