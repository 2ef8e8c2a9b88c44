package services

import (
	"math"

	"lp-maker/lpmaker/database"
	"lp-maker/lpmaker/models"
)

// readThreshold is the scroll depth (percent) past which a page view
// counts as a read.
const readThreshold = 90.0

type AnalyticsServiceInterface interface {
	GetPageSummary(db *database.Database, pageID string) (models.EngagementSummary, error)
}

type AnalyticsService struct{}

var AnalyticsServiceInstance AnalyticsServiceInterface = &AnalyticsService{}

// Aggregate derives display metrics from raw event rows. Pure and total:
// empty input yields the all-zero summary and no input can make it fail.
func Aggregate(events []models.PageEvent) models.EngagementSummary {
	summary := models.EngagementSummary{}

	reads := 0
	timeTotal := 0.0
	timeCount := 0

	for _, e := range events {
		switch e.Kind {
		case models.PageViewEvent:
			summary.Views++
			if e.ScrollDepth != nil && *e.ScrollDepth >= readThreshold {
				reads++
			}
			if e.TimeSpent != nil {
				timeTotal += *e.TimeSpent
				timeCount++
			}
		case models.ClickEvent:
			summary.Clicks++
		}
	}

	if summary.Views > 0 {
		summary.ClickRate = int(math.Round(float64(summary.Clicks) / float64(summary.Views) * 100))
		summary.ReadRate = int(math.Round(float64(reads) / float64(summary.Views) * 100))
	}
	if timeCount > 0 {
		summary.AvgTimeSpent = int(math.Round(timeTotal / float64(timeCount)))
	}

	return summary
}

// GetPageSummary pulls the raw rows for a page and aggregates them.
func (s *AnalyticsService) GetPageSummary(db *database.Database, pageID string) (models.EngagementSummary, error) {
	var events []models.PageEvent
	if err := db.DB.Where("page_id = ?", pageID).Find(&events).Error; err != nil {
		return models.EngagementSummary{}, err
	}
	return Aggregate(events), nil
}
