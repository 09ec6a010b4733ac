package models

import (
	"time"

	"github.com/google/uuid"
)

// Contact submission status vocabulary. The values are conventional only;
// no transition rules are enforced.
const (
	ContactStatusNew     = "new"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
)

// ContactSubmission is one message sent through the public contact form.
type ContactSubmission struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null"`
	Phone     *string   `json:"phone,omitempty" db:"phone" gorm:"type:text"`
	Service   string    `json:"service" db:"service" gorm:"type:text;not null"`
	Budget    *string   `json:"budget,omitempty" db:"budget" gorm:"type:text"`
	Message   string    `json:"message" db:"message" gorm:"type:text;not null"`
	Status    string    `json:"status" db:"status" gorm:"type:text;not null;default:'new'"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
