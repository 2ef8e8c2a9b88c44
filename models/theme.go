package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// Theme holds the visual treatment of a page. It historically lived both
// at the top level of the document and nested inside Settings; see
// ResolveTheme for how the two are reconciled.
type Theme struct {
	GradientPreset     string `json:"gradientPreset,omitempty"`
	BackgroundImageURL string `json:"backgroundImageUrl,omitempty"`
}

// Settings carries per-page configuration, including the legacy nested
// theme location and third-party analytics tag ids.
type Settings struct {
	AnalyticsTagIDs map[string]string `json:"analyticsTagIds,omitempty"`
	Theme           *Theme            `json:"theme,omitempty"`
}

// ResolveTheme produces the single canonical theme the renderers consume.
// Field by field, settings.theme wins when set, falling back to the
// top-level theme.
func ResolveTheme(top Theme, settings Settings) Theme {
	resolved := top
	if settings.Theme != nil {
		if settings.Theme.GradientPreset != "" {
			resolved.GradientPreset = settings.Theme.GradientPreset
		}
		if settings.Theme.BackgroundImageURL != "" {
			resolved.BackgroundImageURL = settings.Theme.BackgroundImageURL
		}
	}
	return resolved
}

// Value implements the driver.Valuer interface for JSONB storage
func (t Theme) Value() (driver.Value, error) {
	return json.Marshal(t)
}

// Scan implements the sql.Scanner interface for JSONB retrieval
func (t *Theme) Scan(value interface{}) error {
	if value == nil {
		*t = Theme{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, t)
}

// Value implements the driver.Valuer interface for JSONB storage
func (s Settings) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements the sql.Scanner interface for JSONB retrieval
func (s *Settings) Scan(value interface{}) error {
	if value == nil {
		*s = Settings{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, s)
}
