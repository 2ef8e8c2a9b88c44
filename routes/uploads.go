package routes

import (
	"errors"
	"io"
	"net/http"

	"lp-maker/lpmaker/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUploadBytes = 10 << 20 // 10 MiB

// RegisterUploadRoutes wires the image upload endpoint used by the
// editor's image, header and hero blocks.
func RegisterUploadRoutes(group *gin.RouterGroup, uploadService services.UploadServiceInterface) {
	group.POST("/uploads", func(c *gin.Context) { UploadImage(c, uploadService) })
}

func UploadImage(c *gin.Context, uploadService services.UploadServiceInterface) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A file field is required"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File exceeds the 10MB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
		return
	}

	// Random prefix keeps user-chosen names from colliding.
	name := uuid.NewString() + "-" + fileHeader.Filename
	url, err := uploadService.Upload(c.Request.Context(), data, "images", name)
	if err != nil {
		if errors.Is(err, services.ErrUploadConfig) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Upload storage is not configured"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}
