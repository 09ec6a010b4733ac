package models

import "github.com/google/uuid"

// FeaturedProject is an entry in the featured-projects carousel on the home page.
type FeaturedProject struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Category    string    `json:"category" db:"category" gorm:"type:text;not null"`
	Description string    `json:"description" db:"description" gorm:"type:text;not null"`
	ImageURL    string    `json:"image_url" db:"image_url" gorm:"type:text;not null"`
	Order       int       `json:"order" db:"sort_order" gorm:"column:sort_order;type:integer;not null;default:1"`
	Active      bool      `json:"active" db:"active" gorm:"type:boolean;not null;default:true"`
	ClientName  *string   `json:"client_name,omitempty" db:"client_name" gorm:"type:text"`
	ProjectURL  *string   `json:"project_url,omitempty" db:"project_url" gorm:"type:text"`
}
