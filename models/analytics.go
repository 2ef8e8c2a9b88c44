package models

import (
	"time"

	"github.com/google/uuid"
)

type PageEventKind string

const (
	PageViewEvent PageEventKind = "page_view"
	ClickEvent    PageEventKind = "click"
)

// PageEvent is one raw engagement event row. ScrollDepth and TimeSpent
// are only ever attached to page_view rows and both are optional.
type PageEvent struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PageID      uuid.UUID     `gorm:"type:uuid;not null;index" json:"page_id"`
	Kind        PageEventKind `gorm:"type:varchar(20);not null" json:"kind"`
	URL         string        `json:"url,omitempty"`
	ScrollDepth *float64      `json:"scroll_depth,omitempty"`
	TimeSpent   *float64      `json:"time_spent,omitempty"`
	CreatedAt   time.Time     `gorm:"not null;default:now()" json:"created_at"`
}

// EngagementSummary is the derived metric set shown on the dashboard and
// in the editor header. All values are display-ready integers.
type EngagementSummary struct {
	Views        int `json:"views"`
	Clicks       int `json:"clicks"`
	ClickRate    int `json:"click_rate"`
	ReadRate     int `json:"read_rate"`
	AvgTimeSpent int `json:"avg_time_spent"`
}
