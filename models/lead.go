package models

import (
	"time"

	"github.com/google/uuid"
)

// Lead is one email captured through a page's lead_form block.
type Lead struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PageID    uuid.UUID `gorm:"type:uuid;not null;index" json:"page_id"`
	Email     string    `gorm:"not null" json:"email"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}
