package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Page kinds determine the public route prefix ({origin}/p/... vs /b/...)
const (
	ProfilePage  = "profile"
	BusinessPage = "business"
)

// DemoPageID is the sentinel public id meaning "do not record telemetry"
// (editor preview / demo mode).
const DemoPageID = "demo"

// Page is the persisted landing/profile page document: an ordered block
// list plus theme and settings, addressed by its public slug.
type Page struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Slug          string          `gorm:"uniqueIndex;not null" json:"slug"`
	Kind          string          `gorm:"type:varchar(20);not null;default:'profile'" json:"kind"`
	OwnerID       *uuid.UUID      `gorm:"type:uuid;index" json:"owner_id,omitempty"`
	Nickname      string          `gorm:"index" json:"nickname,omitempty"`
	Content       json.RawMessage `gorm:"type:jsonb;not null;default:'[]'::jsonb" json:"-"`
	Theme         Theme           `gorm:"type:jsonb" json:"theme"`
	Settings      Settings        `gorm:"type:jsonb" json:"settings"`
	FeaturedOnTop bool            `gorm:"not null;default:false" json:"featured_on_top"`
	CreatedAt     time.Time       `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"deleted_at,omitempty"`

	// Blocks is the migrated view of Content, populated on load and
	// marshalled back into Content on save. Never read Content directly;
	// it may still hold a legacy document shape.
	Blocks BlockList `gorm:"-" json:"blocks"`
}

// RoutePrefix returns the public path segment for the page kind.
func (p *Page) RoutePrefix() string {
	if p.Kind == BusinessPage {
		return "b"
	}
	return "p"
}

// PublicID is the identifier handed to the renderers and telemetry. An
// unsaved page has no public id and renders in demo mode.
func (p *Page) PublicID() string {
	if p.ID == uuid.Nil {
		return DemoPageID
	}
	return p.ID.String()
}

// ResolvedTheme reconciles the two legacy theme locations.
func (p *Page) ResolvedTheme() Theme {
	return ResolveTheme(p.Theme, p.Settings)
}

// SyncContent serializes the in-memory block list back into the stored
// JSONB column before persisting.
func (p *Page) SyncContent() error {
	if p.Blocks == nil {
		p.Blocks = BlockList{}
	}
	data, err := json.Marshal(p.Blocks)
	if err != nil {
		return err
	}
	p.Content = data
	return nil
}

func (p *Page) FromJSON(data []byte) error {
	return json.Unmarshal(data, p)
}

func (p *Page) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}
