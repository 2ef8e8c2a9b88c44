package services

import (
	"errors"
	"log"
	"strings"

	"lp-maker/lpmaker/broker"
	"lp-maker/lpmaker/database"
	"lp-maker/lpmaker/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Actor identifies who is performing a mutation. Admins may change a
// locked nickname and toggle the featured flag.
type Actor struct {
	UserID  uuid.UUID
	IsAdmin bool
}

type PageServiceInterface interface {
	CreatePage(db *database.Database, pageData map[string]interface{}, actor Actor) (models.Page, error)
	GetPageBySlug(db *database.Database, slug string) (models.Page, error)
	UpdatePage(db *database.Database, slug string, pageData map[string]interface{}, actor Actor) (models.Page, error)
	ListPagesByOwner(db *database.Database, ownerID string) ([]models.Page, error)
	ListAllPages(db *database.Database) ([]models.Page, error)
}

type PageService struct{}

var PageServiceInstance PageServiceInterface = &PageService{}

// CreatePage seeds a new page either from a named template or from the
// canonical default seed. The slug is random; a template clone never
// shares a block or item id with any other page built from it.
func (s *PageService) CreatePage(db *database.Database, pageData map[string]interface{}, actor Actor) (models.Page, error) {
	page := models.Page{
		ID:   uuid.New(),
		Slug: newSlug(),
		Kind: models.ProfilePage,
	}

	if kind, ok := pageData["kind"].(string); ok && kind == models.BusinessPage {
		page.Kind = models.BusinessPage
	}

	if actor.UserID != uuid.Nil {
		ownerID := actor.UserID
		page.OwnerID = &ownerID
	}

	if name, ok := pageData["template"].(string); ok && name != "" {
		tmpl, found := models.TemplateByName(name)
		if !found {
			return models.Page{}, ErrNotFound
		}
		blocks, err := tmpl.Clone()
		if err != nil {
			return models.Page{}, err
		}
		page.Blocks = blocks
		page.Theme = tmpl.Theme
	} else {
		page.Blocks = DefaultSeed()
	}

	if nickname, ok := pageData["nickname"].(string); ok && nickname != "" {
		page.Nickname = nickname
	}

	if err := page.SyncContent(); err != nil {
		return models.Page{}, err
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Page{}, tx.Error
	}

	if page.Nickname != "" {
		var count int64
		if err := tx.Model(&models.Page{}).Where("nickname = ?", page.Nickname).Count(&count).Error; err != nil {
			tx.Rollback()
			return models.Page{}, err
		}
		if count > 0 {
			tx.Rollback()
			return models.Page{}, ErrNicknameTaken
		}
	}

	if err := tx.Create(&page).Error; err != nil {
		tx.Rollback()
		return models.Page{}, err
	}

	if err := tx.Commit().Error; err != nil {
		return models.Page{}, err
	}

	publishPageEvent("page.created", &page)
	return page, nil
}

// GetPageBySlug loads a page by slug or nickname and normalizes its
// stored content through the migrator, so callers always receive the
// current block schema regardless of how old the stored document is.
func (s *PageService) GetPageBySlug(db *database.Database, slug string) (models.Page, error) {
	var page models.Page
	if err := db.DB.Where("slug = ? OR nickname = ?", slug, slug).First(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Page{}, ErrPageNotFound
		}
		return models.Page{}, err
	}

	page.Blocks = MigrateContent(page.Content)
	return page, nil
}

// UpdatePage upserts the mutable parts of a page. Nickname immutability
// is enforced here rather than trusting the editor UI: once set, only an
// admin may change it.
func (s *PageService) UpdatePage(db *database.Database, slug string, pageData map[string]interface{}, actor Actor) (models.Page, error) {
	var page models.Page
	if err := db.DB.Where("slug = ?", slug).First(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Page{}, ErrPageNotFound
		}
		return models.Page{}, err
	}

	if page.OwnerID != nil && *page.OwnerID != actor.UserID && !actor.IsAdmin {
		return models.Page{}, ErrUnauthorized
	}

	if raw, exists := pageData["nickname"]; exists {
		nickname, ok := raw.(string)
		if !ok {
			return models.Page{}, ErrInvalidInput
		}
		if nickname != page.Nickname {
			if page.Nickname != "" && !actor.IsAdmin {
				return models.Page{}, ErrNicknameLocked
			}
			page.Nickname = nickname
		}
	}

	if blocks, exists := pageData["blocks"]; exists {
		page.Blocks = MigrateContent(blocks)
	} else {
		page.Blocks = MigrateContent(page.Content)
	}

	if rawTheme, exists := pageData["theme"]; exists {
		page.Theme = decodeTheme(rawTheme)
	}

	if rawSettings, exists := pageData["settings"]; exists {
		if m, ok := rawSettings.(map[string]interface{}); ok {
			page.Settings = decodeSettings(m)
		}
	}

	if featured, exists := pageData["featured_on_top"]; exists {
		if flag, ok := featured.(bool); ok && actor.IsAdmin {
			page.FeaturedOnTop = flag
		}
	}

	if err := page.SyncContent(); err != nil {
		return models.Page{}, err
	}

	if err := db.DB.Save(&page).Error; err != nil {
		return models.Page{}, err
	}

	publishPageEvent("page.updated", &page)
	return page, nil
}

func (s *PageService) ListPagesByOwner(db *database.Database, ownerID string) ([]models.Page, error) {
	var pages []models.Page
	err := db.DB.Where("owner_id = ?", ownerID).
		Order("featured_on_top DESC, created_at DESC").
		Find(&pages).Error
	if err != nil {
		return nil, err
	}

	for i := range pages {
		pages[i].Blocks = MigrateContent(pages[i].Content)
	}
	return pages, nil
}

// ListAllPages is the moderation view across owners, featured pages
// first, used to choose what gets the featured flag.
func (s *PageService) ListAllPages(db *database.Database) ([]models.Page, error) {
	var pages []models.Page
	err := db.DB.Order("featured_on_top DESC, created_at DESC").Find(&pages).Error
	if err != nil {
		return nil, err
	}

	for i := range pages {
		pages[i].Blocks = MigrateContent(pages[i].Content)
	}
	return pages, nil
}

// publishPageEvent notifies the preview hub and any other consumer that
// a page changed. Best-effort: a broker outage must never fail a save.
func publishPageEvent(eventType string, page *models.Page) {
	event, err := models.NewEvent(eventType, "page", map[string]interface{}{
		"id":   page.ID.String(),
		"slug": page.Slug,
	})
	if err != nil {
		log.Printf("Failed to build %s event: %v", eventType, err)
		return
	}

	data, err := event.ToJSON()
	if err != nil {
		log.Printf("Failed to encode %s event: %v", eventType, err)
		return
	}

	if err := broker.Publish(broker.PageUpdatedSubject, data); err != nil {
		log.Printf("Failed to publish %s event: %v", eventType, err)
	}
}

func decodeTheme(raw interface{}) models.Theme {
	theme := models.Theme{}
	if m, ok := raw.(map[string]interface{}); ok {
		if v, ok := m["gradientPreset"].(string); ok {
			theme.GradientPreset = v
		}
		if v, ok := m["backgroundImageUrl"].(string); ok {
			theme.BackgroundImageURL = v
		}
	}
	return theme
}

func decodeSettings(m map[string]interface{}) models.Settings {
	settings := models.Settings{}
	if tags, ok := m["analyticsTagIds"].(map[string]interface{}); ok {
		settings.AnalyticsTagIDs = make(map[string]string, len(tags))
		for k, v := range tags {
			if s, ok := v.(string); ok {
				settings.AnalyticsTagIDs[k] = s
			}
		}
	}
	if rawTheme, ok := m["theme"].(map[string]interface{}); ok {
		theme := decodeTheme(rawTheme)
		settings.Theme = &theme
	}
	return settings
}

// newSlug returns a short random public routing key.
func newSlug() string {
	return strings.SplitN(uuid.NewString(), "-", 2)[0]
}
