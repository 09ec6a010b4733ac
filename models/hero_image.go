package models

import "github.com/google/uuid"

// HeroImage is one slide of the home-page hero carousel. Cloud-hosted images
// carry a URL; legacy locally-served files carry only a filename. At least one
// of the two must be non-empty.
type HeroImage struct {
	ID       uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Filename string    `json:"filename" db:"filename" gorm:"type:text"`
	URL      *string   `json:"url,omitempty" db:"url" gorm:"type:text"`
	Category string    `json:"category" db:"category" gorm:"type:text;not null;default:''"`
	Order    int       `json:"order" db:"sort_order" gorm:"column:sort_order;type:integer;not null;default:1"`
	Active   bool      `json:"active" db:"active" gorm:"type:boolean;not null;default:true"`
}

// HasSource reports whether the image has either a hosted URL or a local file.
func (h HeroImage) HasSource() bool {
	return h.Filename != "" || (h.URL != nil && *h.URL != "")
}
