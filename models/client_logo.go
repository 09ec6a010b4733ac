package models

import "github.com/google/uuid"

// ClientLogo is one logo in the client marquee.
type ClientLogo struct {
	ID         uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ClientName string    `json:"client_name" db:"client_name" gorm:"type:text;not null"`
	LogoURL    string    `json:"logo_url" db:"logo_url" gorm:"type:text;not null"`
	Order      int       `json:"order" db:"sort_order" gorm:"column:sort_order;type:integer;not null;default:1"`
	Active     bool      `json:"active" db:"active" gorm:"type:boolean;not null;default:true"`
	WebsiteURL *string   `json:"website_url,omitempty" db:"website_url" gorm:"type:text"`
}
