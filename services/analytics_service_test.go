package services

import (
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"lp-maker/lpmaker/models"
	"lp-maker/lpmaker/testutils"
)

func ptr(v float64) *float64 { return &v }

func TestAggregate_EmptyInput(t *testing.T) {
	summary := Aggregate(nil)
	assert.Equal(t, models.EngagementSummary{}, summary)
}

func TestAggregate_TypicalTraffic(t *testing.T) {
	events := make([]models.PageEvent, 0, 125)

	// 100 views: 40 deep reads, 60 shallow. Half of each group reports
	// time spent, alternating 30s and 44s.
	for i := 0; i < 100; i++ {
		e := models.PageEvent{Kind: models.PageViewEvent}
		if i < 40 {
			e.ScrollDepth = ptr(95)
		} else {
			e.ScrollDepth = ptr(50)
		}
		if i%2 == 0 {
			if i%4 == 0 {
				e.TimeSpent = ptr(30)
			} else {
				e.TimeSpent = ptr(44)
			}
		}
		events = append(events, e)
	}
	for i := 0; i < 25; i++ {
		events = append(events, models.PageEvent{Kind: models.ClickEvent, URL: "https://example.com"})
	}

	summary := Aggregate(events)

	assert.Equal(t, 100, summary.Views)
	assert.Equal(t, 25, summary.Clicks)
	assert.Equal(t, 25, summary.ClickRate)
	assert.Equal(t, 40, summary.ReadRate)
	assert.Equal(t, 37, summary.AvgTimeSpent)
}

func TestAggregate_ZeroViewsGuardsRates(t *testing.T) {
	events := []models.PageEvent{
		{Kind: models.ClickEvent},
		{Kind: models.ClickEvent},
	}

	summary := Aggregate(events)

	assert.Equal(t, 0, summary.Views)
	assert.Equal(t, 2, summary.Clicks)
	assert.Equal(t, 0, summary.ClickRate)
	assert.Equal(t, 0, summary.ReadRate)
	assert.Equal(t, 0, summary.AvgTimeSpent)
}

func TestAggregate_ThresholdBoundary(t *testing.T) {
	events := []models.PageEvent{
		{Kind: models.PageViewEvent, ScrollDepth: ptr(90)},
		{Kind: models.PageViewEvent, ScrollDepth: ptr(89.9)},
		{Kind: models.PageViewEvent},
	}

	summary := Aggregate(events)

	assert.Equal(t, 3, summary.Views)
	// Exactly 90 counts as a read; missing depth does not.
	assert.Equal(t, 33, summary.ReadRate)
}

func TestAggregate_AvgTimeSpentRounded(t *testing.T) {
	events := []models.PageEvent{
		{Kind: models.PageViewEvent, TimeSpent: ptr(30)},
		{Kind: models.PageViewEvent, TimeSpent: ptr(44)},
		{Kind: models.PageViewEvent, TimeSpent: ptr(38.2)},
	}

	// mean 37.4 rounds down
	assert.Equal(t, 37, Aggregate(events).AvgTimeSpent)

	// mean 37.5 rounds up
	events = append(events, models.PageEvent{Kind: models.PageViewEvent, TimeSpent: ptr(37.8)})
	assert.Equal(t, 38, Aggregate(events).AvgTimeSpent)
}

func TestAggregate_RatesRounded(t *testing.T) {
	events := []models.PageEvent{
		{Kind: models.PageViewEvent},
		{Kind: models.PageViewEvent},
		{Kind: models.PageViewEvent},
		{Kind: models.ClickEvent},
	}

	summary := Aggregate(events)
	assert.Equal(t, 33, summary.ClickRate)
}

func TestGetPageSummary_Success(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	pageID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "page_id", "kind", "url", "scroll_depth", "time_spent"}).
		AddRow(uuid.New().String(), pageID.String(), "page_view", "", 95.0, 40.0).
		AddRow(uuid.New().String(), pageID.String(), "click", "https://example.com", nil, nil)

	mock.ExpectQuery(`SELECT \* FROM "page_events" WHERE page_id = \$1`).
		WithArgs(pageID.String()).
		WillReturnRows(rows)

	service := &AnalyticsService{}
	summary, err := service.GetPageSummary(db, pageID.String())

	assert.NoError(t, err)
	assert.Equal(t, 1, summary.Views)
	assert.Equal(t, 1, summary.Clicks)
	assert.Equal(t, 100, summary.ClickRate)
	assert.Equal(t, 100, summary.ReadRate)
	assert.Equal(t, 40, summary.AvgTimeSpent)
	assert.NoError(t, mock.ExpectationsWereMet())
}
