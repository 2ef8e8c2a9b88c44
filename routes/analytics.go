package routes

import (
	"errors"
	"net/http"

	"lp-maker/lpmaker/database"
	"lp-maker/lpmaker/services"

	"github.com/gin-gonic/gin"
)

// RegisterAnalyticsRoutes exposes the derived engagement summary and the
// captured leads for a page. Both require ownership of the page.
func RegisterAnalyticsRoutes(group *gin.RouterGroup, db *database.Database, pageService services.PageServiceInterface, analyticsService services.AnalyticsServiceInterface, leadService services.LeadServiceInterface) {
	group.GET("/pages/:slug/analytics", func(c *gin.Context) { GetPageAnalytics(c, db, pageService, analyticsService) })
	group.GET("/pages/:slug/leads", func(c *gin.Context) { ListPageLeads(c, db, pageService, leadService) })
}

func ownedPage(c *gin.Context, db *database.Database, pageService services.PageServiceInterface) (string, bool) {
	actor, ok := actorFromContext(c)
	if !ok {
		return "", false
	}

	page, err := pageService.GetPageBySlug(db, c.Param("slug"))
	if err != nil {
		if errors.Is(err, services.ErrPageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return "", false
	}

	if page.OwnerID != nil && *page.OwnerID != actor.UserID && !actor.IsAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to view this page's data"})
		return "", false
	}
	return page.ID.String(), true
}

func GetPageAnalytics(c *gin.Context, db *database.Database, pageService services.PageServiceInterface, analyticsService services.AnalyticsServiceInterface) {
	pageID, ok := ownedPage(c, db, pageService)
	if !ok {
		return
	}

	summary, err := analyticsService.GetPageSummary(db, pageID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func ListPageLeads(c *gin.Context, db *database.Database, pageService services.PageServiceInterface, leadService services.LeadServiceInterface) {
	pageID, ok := ownedPage(c, db, pageService)
	if !ok {
		return
	}

	leads, err := leadService.ListLeadsByPage(db, pageID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, leads)
}
