package routes

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"

	"decoriva-server/config"
)

// validateImageFile validates mimetype and size (<= 5MB)
func validateImageFile(h *multipart.FileHeader) bool {
	if h == nil || h.Size <= 0 || h.Size > 5*1024*1024 {
		return false
	}
	ext := strings.ToLower(filepath.Ext(h.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	default:
		return false
	}
}

// RegisterServiceMediaRoutes adds the catalog image upload endpoint
func RegisterServiceMediaRoutes(rg *gin.RouterGroup) {
	rg.POST("/services/image", uploadServiceImage)
}

// uploadServiceImage pushes a catalog image to Cloudinary and hands the
// secure URL back for the service create/update call.
func uploadServiceImage(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(10 << 20); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid form data",
			"message": "Expected a multipart upload",
		})
		return
	}

	header, err := c.FormFile("image")
	if err != nil || header == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "No file provided",
			"message": "An image file is required",
		})
		return
	}

	if !validateImageFile(header) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid image",
			"message": "Image must be jpg, png or webp and at most 5MB",
		})
		return
	}

	cfg := config.AppConfig.Cloudinary
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		log.Printf("❌ Cloudinary not configured")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Upload unavailable",
			"message": "Image uploads are not configured",
		})
		return
	}

	cloudinaryURL := fmt.Sprintf("cloudinary://%s:%s@%s", cfg.APIKey, cfg.APISecret, cfg.CloudName)
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		log.Printf("❌ Failed to initialize Cloudinary: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Upload unavailable",
			"message": "Image upload service failed to start",
		})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Unreadable file",
			"message": "Could not read the uploaded image",
		})
		return
	}
	defer file.Close()

	ow := true
	uf := true
	up, err := cld.Upload.Upload(context.Background(), file, uploader.UploadParams{
		Folder:         cfg.Folder,
		PublicID:       strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename)),
		Overwrite:      &ow,
		UniqueFilename: &uf,
		ResourceType:   "image",
	})
	if err != nil {
		log.Printf("❌ Image upload failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Upload failed",
			"message": "Failed to upload the image",
		})
		return
	}

	log.Printf("✅ Catalog image uploaded: %s", up.SecureURL)

	c.JSON(http.StatusOK, gin.H{
		"url": up.SecureURL,
	})
}
