package services

import (
	"log"

	"lp-maker/lpmaker/broker"
	"lp-maker/lpmaker/database"
	"lp-maker/lpmaker/models"

	"github.com/google/uuid"
)

type TelemetryServiceInterface interface {
	RecordEvent(db *database.Database, eventData map[string]interface{}) error
}

type TelemetryService struct{}

var TelemetryServiceInstance TelemetryServiceInterface = &TelemetryService{}

// RecordEvent persists one raw engagement event. The demo sentinel page
// id is skipped entirely: no row, no broker message, no error. Broker
// fanout after the insert is fire-and-forget.
func (s *TelemetryService) RecordEvent(db *database.Database, eventData map[string]interface{}) error {
	pageIDStr, ok := eventData["page_id"].(string)
	if !ok || pageIDStr == "" {
		return ErrInvalidInput
	}
	if pageIDStr == models.DemoPageID {
		return nil
	}

	pageID, err := uuid.Parse(pageIDStr)
	if err != nil {
		return ErrInvalidInput
	}

	kindStr, _ := eventData["kind"].(string)
	kind := models.PageEventKind(kindStr)
	if kind != models.PageViewEvent && kind != models.ClickEvent {
		return ErrInvalidInput
	}

	event := models.PageEvent{
		ID:     uuid.New(),
		PageID: pageID,
		Kind:   kind,
	}

	if url, ok := eventData["url"].(string); ok {
		event.URL = url
	}
	if depth, ok := eventData["scroll_depth"].(float64); ok {
		event.ScrollDepth = &depth
	}
	if spent, ok := eventData["time_spent"].(float64); ok {
		event.TimeSpent = &spent
	}

	if err := db.DB.Create(&event).Error; err != nil {
		return err
	}

	go publishTelemetry(&event)
	return nil
}

func publishTelemetry(event *models.PageEvent) {
	subject := broker.PageViewedSubject
	if event.Kind == models.ClickEvent {
		subject = broker.PageClickedSubject
	}

	envelope, err := models.NewEvent(string(event.Kind), "page_event", event)
	if err != nil {
		log.Printf("Failed to build telemetry event: %v", err)
		return
	}

	data, err := envelope.ToJSON()
	if err != nil {
		log.Printf("Failed to encode telemetry event: %v", err)
		return
	}

	if err := broker.Publish(subject, data); err != nil {
		log.Printf("Failed to publish telemetry event: %v", err)
	}
}
