package routes

import (
	"errors"
	"net/http"

	"lp-maker/lpmaker/database"
	"lp-maker/lpmaker/services"

	"github.com/gin-gonic/gin"
)

// RegisterEventRoutes wires the unauthenticated ingest endpoints: the
// telemetry beacon and the lead-capture form target. Both are called
// from rendered pages, including static exports.
func RegisterEventRoutes(group *gin.RouterGroup, db *database.Database, telemetryService services.TelemetryServiceInterface, leadService services.LeadServiceInterface) {
	group.POST("/events", func(c *gin.Context) { RecordEvent(c, db, telemetryService) })
	group.POST("/pages/:slug/leads", func(c *gin.Context) { SubmitLead(c, db, leadService) })
}

func RecordEvent(c *gin.Context, db *database.Database, telemetryService services.TelemetryServiceInterface) {
	var eventData map[string]interface{}
	if err := c.ShouldBindJSON(&eventData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := telemetryService.RecordEvent(db, eventData); err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event data"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"ok": true})
}

func SubmitLead(c *gin.Context, db *database.Database, leadService services.LeadServiceInterface) {
	// Accept both JSON bodies (live page) and form posts (static
	// export, which has no script runtime).
	email := c.PostForm("email")
	if email == "" {
		var body struct {
			Email string `json:"email"`
		}
		if err := c.ShouldBindJSON(&body); err == nil {
			email = body.Email
		}
	}

	lead, err := leadService.SubmitLead(db, c.Param("slug"), email)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "A valid email address is required"})
		case errors.Is(err, services.ErrPageNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": lead.ID})
}
