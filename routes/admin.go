package routes

import (
	"net/http"

	"lp-maker/lpmaker/database"
	"lp-maker/lpmaker/services"

	"github.com/gin-gonic/gin"
)

// RegisterAdminRoutes exposes the moderation surface: the full page
// catalog across owners, used to pick which pages get the featured
// flag. Callers must already have passed the admin gate.
func RegisterAdminRoutes(group *gin.RouterGroup, db *database.Database, pageService services.PageServiceInterface) {
	group.GET("/pages", func(c *gin.Context) { ListAllPages(c, db, pageService) })
}

func ListAllPages(c *gin.Context, db *database.Database, pageService services.PageServiceInterface) {
	pages, err := pageService.ListAllPages(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pages)
}
