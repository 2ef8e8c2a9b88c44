package routes

import (
	"errors"
	"net/http"

	"lp-maker/lpmaker/database"
	"lp-maker/lpmaker/models"
	"lp-maker/lpmaker/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func RegisterPageRoutes(group *gin.RouterGroup, db *database.Database, pageService services.PageServiceInterface) {
	group.GET("/pages", func(c *gin.Context) { ListPages(c, db, pageService) })
	group.POST("/pages", func(c *gin.Context) { CreatePage(c, db, pageService) })
	group.PUT("/pages/:slug", func(c *gin.Context) { UpdatePage(c, db, pageService) })
}

// RegisterPublicPageRoutes exposes the read-only endpoints the public
// page and the template picker use; no authentication required.
func RegisterPublicPageRoutes(group *gin.RouterGroup, db *database.Database, pageService services.PageServiceInterface) {
	group.GET("/pages/:slug", func(c *gin.Context) { GetPageBySlug(c, db, pageService) })
	group.GET("/templates", ListTemplates)
}

func actorFromContext(c *gin.Context) (services.Actor, bool) {
	userIDInterface, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return services.Actor{}, false
	}

	actor := services.Actor{UserID: userIDInterface.(uuid.UUID)}
	if isAdmin, exists := c.Get("isAdmin"); exists {
		actor.IsAdmin, _ = isAdmin.(bool)
	}
	return actor, true
}

func ListPages(c *gin.Context, db *database.Database, pageService services.PageServiceInterface) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	pages, err := pageService.ListPagesByOwner(db, actor.UserID.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pages)
}

func CreatePage(c *gin.Context, db *database.Database, pageService services.PageServiceInterface) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	pageData := map[string]interface{}{}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&pageData); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	page, err := pageService.CreatePage(db, pageData, actor)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
			return
		} else if errors.Is(err, services.ErrNicknameTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Nickname already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, page)
}

func GetPageBySlug(c *gin.Context, db *database.Database, pageService services.PageServiceInterface) {
	slug := c.Param("slug")

	page, err := pageService.GetPageBySlug(db, slug)
	if err != nil {
		if errors.Is(err, services.ErrPageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, page)
}

func UpdatePage(c *gin.Context, db *database.Database, pageService services.PageServiceInterface) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	var pageData map[string]interface{}
	if err := c.ShouldBindJSON(&pageData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := pageService.UpdatePage(db, c.Param("slug"), pageData, actor)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPageNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		case errors.Is(err, services.ErrUnauthorized):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to edit this page"})
		case errors.Is(err, services.ErrNicknameLocked):
			c.JSON(http.StatusConflict, gin.H{"error": "Nickname cannot be changed once set"})
		case errors.Is(err, services.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, page)
}

func ListTemplates(c *gin.Context) {
	names := models.TemplateNames()
	templates := make([]gin.H, 0, len(names))
	for _, name := range names {
		if tmpl, ok := models.TemplateByName(name); ok {
			templates = append(templates, gin.H{"name": tmpl.Name, "title": tmpl.Title})
		}
	}
	c.JSON(http.StatusOK, templates)
}
