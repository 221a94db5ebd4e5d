package routes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"decoriva-server/catalog"
	"decoriva-server/database"
	"decoriva-server/middleware"
	"decoriva-server/models"
)

// RegisterServiceRoutes registers the public catalog endpoints
func RegisterServiceRoutes(router *gin.RouterGroup) {
	router.GET("", getServices)
	router.GET("/", getServices)
	router.GET("/locations/category", getLocationsAndCategories)
	router.GET("/:id", getService)
}

// RegisterAdminServiceRoutes registers the catalog management endpoints
func RegisterAdminServiceRoutes(router *gin.RouterGroup) {
	router.POST("/services", createService)
	router.PATCH("/services/:id", updateService)
	router.DELETE("/services/:id", deleteService)
}

// parseCatalogQuery reads the filter parameters off the request.
func parseCatalogQuery(c *gin.Context) catalog.Query {
	q := catalog.Query{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Location: c.Query("location"),
	}
	if v, err := strconv.ParseFloat(c.Query("minPrice"), 64); err == nil {
		q.MinPrice = v
	}
	if v, err := strconv.ParseFloat(c.Query("maxPrice"), 64); err == nil {
		q.MaxPrice = v
	}
	if v, err := strconv.Atoi(c.Query("page")); err == nil {
		q.Page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		q.Limit = v
	}
	return q.Normalize()
}

// getServices serves both the featured strip and the filtered, paginated
// catalog. A request that asks only for a limit gets a bare array; once
// a page is requested the response carries the page count alongside.
func getServices(c *gin.Context) {
	q := parseCatalogQuery(c)

	featuredOnly := c.Query("page") == "" && c.Query("search") == "" &&
		c.Query("category") == "" && c.Query("location") == "" &&
		c.Query("minPrice") == "" && c.Query("maxPrice") == ""

	base := q.Apply(database.DB.Model(&models.Service{}))

	if featuredOnly {
		var featured []models.Service
		if err := base.Order("created_at DESC").Limit(q.Limit).Find(&featured).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to fetch services",
				"message": "Could not load the catalog",
			})
			return
		}
		c.JSON(http.StatusOK, featured)
		return
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch services",
			"message": "Could not load the catalog",
		})
		return
	}

	offset, totalPages, ok := catalog.Window(total, q.Page, q.Limit)
	if !ok {
		c.JSON(http.StatusOK, gin.H{
			"services":   []models.Service{},
			"totalPages": totalPages,
		})
		return
	}

	var services []models.Service
	if err := q.Apply(database.DB.Model(&models.Service{})).
		Order("created_at DESC").
		Offset(offset).
		Limit(q.Limit).
		Find(&services).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch services",
			"message": "Could not load the catalog",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"services":   services,
		"totalPages": totalPages,
	})
}

// getService returns a single catalog entry
func getService(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid service ID",
			"message": "Service ID must be numeric",
		})
		return
	}

	var service models.Service
	if err := database.DB.First(&service, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "Service not found",
				"message": "The requested service does not exist",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch service",
			"message": "Could not load the service",
		})
		return
	}

	c.JSON(http.StatusOK, service)
}

// getLocationsAndCategories returns the distinct filter values the
// catalog currently covers.
func getLocationsAndCategories(c *gin.Context) {
	var locations []string
	if err := database.DB.Model(&models.Service{}).
		Distinct("location").
		Order("location ASC").
		Pluck("location", &locations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch filters",
			"message": "Could not load locations",
		})
		return
	}

	var categories []string
	if err := database.DB.Model(&models.Service{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch filters",
			"message": "Could not load categories",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"locations":  locations,
		"categories": categories,
	})
}

// createService adds a catalog entry
func createService(c *gin.Context) {
	var req models.ServiceCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	admin, _ := middleware.CurrentUser(c)

	service := models.Service{
		Name:           req.Name,
		Category:       req.Category,
		Location:       req.Location,
		Cost:           req.Cost,
		Unit:           req.Unit,
		Description:    req.Description,
		ImageURL:       req.ImageURL,
		CreatedByEmail: admin.Email,
	}

	if err := database.DB.Create(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Service creation failed",
			"message": "Failed to add the service",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"insertedId": service.ID,
	})
}

// updateService applies a partial update to a catalog entry
func updateService(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid service ID",
			"message": "Service ID must be numeric",
		})
		return
	}

	var req struct {
		Name        *string  `json:"service_name"`
		Category    *string  `json:"category"`
		Location    *string  `json:"location"`
		Cost        *float64 `json:"cost"`
		Unit        *string  `json:"unit"`
		Description *string  `json:"description"`
		ImageURL    *string  `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Cost != nil {
		if *req.Cost <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid cost",
				"message": "Cost must be greater than zero",
			})
			return
		}
		updates["cost"] = *req.Cost
	}
	if req.Unit != nil {
		updates["unit"] = *req.Unit
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Empty update",
			"message": "No fields to update",
		})
		return
	}

	result := database.DB.Model(&models.Service{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Service update failed",
			"message": "Failed to update the service",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"modifiedCount": result.RowsAffected,
	})
}

// deleteService removes a catalog entry. Existing bookings keep their
// own snapshot of the service, so history is unaffected.
func deleteService(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid service ID",
			"message": "Service ID must be numeric",
		})
		return
	}

	result := database.DB.Delete(&models.Service{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Service deletion failed",
			"message": "Failed to delete the service",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"deletedCount": result.RowsAffected,
	})
}
