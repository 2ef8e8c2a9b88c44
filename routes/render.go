package routes

import (
	"errors"
	"fmt"
	"net/http"

	"lp-maker/lpmaker/config"
	"lp-maker/lpmaker/database"
	"lp-maker/lpmaker/models"
	"lp-maker/lpmaker/render"
	"lp-maker/lpmaker/services"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

// RegisterRenderRoutes wires the public page routes and the export
// endpoints. /p/:slug serves profile pages, /b/:slug business pages;
// both render the same way, the prefix only shapes self-referential
// links.
func RegisterRenderRoutes(router *gin.Engine, db *database.Database, cfg config.Config, pageService services.PageServiceInterface) {
	router.GET("/p/:slug", func(c *gin.Context) { ServeLivePage(c, db, cfg, pageService) })
	router.GET("/b/:slug", func(c *gin.Context) { ServeLivePage(c, db, cfg, pageService) })

	api := router.Group("/api/v1")
	api.GET("/pages/:slug/export", func(c *gin.Context) { ExportPage(c, db, cfg, pageService, true) })
	api.GET("/pages/:slug/embed", func(c *gin.Context) { ExportPage(c, db, cfg, pageService, false) })
	api.GET("/pages/:slug/qrcode", func(c *gin.Context) { PageQRCode(c, db, cfg, pageService) })
}

func renderContext(page *models.Page, cfg config.Config) render.Context {
	ctx := render.Context{
		PageID:   page.PublicID(),
		Slug:     page.Slug,
		BasePath: cfg.PublicOrigin,
		APIBase:  cfg.APIOrigin,
		Theme:    page.ResolvedTheme(),
	}
	if services.QuizServiceInstance != nil {
		ctx.QuizLookup = services.QuizServiceInstance.GetQuizByIDOrSlug
	}
	return ctx
}

func loadPage(c *gin.Context, db *database.Database, pageService services.PageServiceInterface) (models.Page, bool) {
	page, err := pageService.GetPageBySlug(db, c.Param("slug"))
	if err != nil {
		if errors.Is(err, services.ErrPageNotFound) {
			c.String(http.StatusNotFound, "Page not found")
		} else {
			c.String(http.StatusInternalServerError, "Failed to load page")
		}
		return models.Page{}, false
	}
	return page, true
}

// ServeLivePage renders the tracked public page.
func ServeLivePage(c *gin.Context, db *database.Database, cfg config.Config, pageService services.PageServiceInterface) {
	page, ok := loadPage(c, db, pageService)
	if !ok {
		return
	}

	ctx := renderContext(&page, cfg)
	// Explicit preview requests render untracked.
	if c.Query("preview") == "1" {
		ctx.PageID = models.DemoPageID
	}

	nodes := render.PageNodes(page.Blocks, ctx)
	html := render.Live(render.PageTitle(&page), nodes, ctx)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// ExportPage serves the standalone static rendering, either as an
// attachment download or inline for iframe embedding.
func ExportPage(c *gin.Context, db *database.Database, cfg config.Config, pageService services.PageServiceInterface, download bool) {
	page, ok := loadPage(c, db, pageService)
	if !ok {
		return
	}

	ctx := renderContext(&page, cfg)
	nodes := render.PageNodes(page.Blocks, ctx)
	html := render.Static(render.PageTitle(&page), nodes, ctx)

	if download {
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.html"`, page.Slug))
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// PageQRCode returns a PNG QR code whose payload is the page's public
// URL. Callers may override the base origin, e.g. for a custom domain.
func PageQRCode(c *gin.Context, db *database.Database, cfg config.Config, pageService services.PageServiceInterface) {
	page, ok := loadPage(c, db, pageService)
	if !ok {
		return
	}

	base := c.Query("base")
	if base == "" {
		base = cfg.PublicOrigin
	}
	payload := fmt.Sprintf("%s/%s/%s", base, page.RoutePrefix(), page.Slug)

	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
