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

type LeadServiceInterface interface {
	SubmitLead(db *database.Database, slug string, email string) (models.Lead, error)
	ListLeadsByPage(db *database.Database, pageID string) ([]models.Lead, error)
}

type LeadService struct{}

var LeadServiceInstance LeadServiceInterface = &LeadService{}

// SubmitLead stores one captured email for the page behind slug. Unlike
// telemetry this is a user-initiated action, so failures surface to the
// caller for a retry affordance.
func (s *LeadService) SubmitLead(db *database.Database, slug string, email string) (models.Lead, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return models.Lead{}, ErrInvalidInput
	}

	var page models.Page
	if err := db.DB.Where("slug = ? OR nickname = ?", slug, slug).First(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Lead{}, ErrPageNotFound
		}
		return models.Lead{}, err
	}

	lead := models.Lead{
		ID:     uuid.New(),
		PageID: page.ID,
		Email:  email,
	}

	if err := db.DB.Create(&lead).Error; err != nil {
		return models.Lead{}, err
	}

	go publishLead(&lead)
	return lead, nil
}

func (s *LeadService) ListLeadsByPage(db *database.Database, pageID string) ([]models.Lead, error) {
	var leads []models.Lead
	if err := db.DB.Where("page_id = ?", pageID).Order("created_at DESC").Find(&leads).Error; err != nil {
		return nil, err
	}
	return leads, nil
}

func publishLead(lead *models.Lead) {
	envelope, err := models.NewEvent("lead.submitted", "lead", lead)
	if err != nil {
		log.Printf("Failed to build lead event: %v", err)
		return
	}

	data, err := envelope.ToJSON()
	if err != nil {
		log.Printf("Failed to encode lead event: %v", err)
		return
	}

	if err := broker.Publish(broker.LeadSubmittedSubject, data); err != nil {
		log.Printf("Failed to publish lead event: %v", err)
	}
}
