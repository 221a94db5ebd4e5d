package routes

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"decoriva-server/database"
	"decoriva-server/middleware"
	"decoriva-server/models"
)

// RegisterDecoratorRequestRoutes registers the application endpoint for
// signed-in users.
func RegisterDecoratorRequestRoutes(router *gin.RouterGroup) {
	router.POST("", applyAsDecorator)
	router.POST("/", applyAsDecorator)
}

// RegisterAdminDecoratorRequestRoutes registers the review endpoints
func RegisterAdminDecoratorRequestRoutes(router *gin.RouterGroup) {
	router.GET("/decorator-requests", getDecoratorRequests)
	router.PATCH("/decorator-requests/:id", decideDecoratorRequest)
}

// applyAsDecorator files an application to join the decorator pool
func applyAsDecorator(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	if user.Role != models.RoleUser {
		c.JSON(http.StatusConflict, gin.H{
			"error":   "Already privileged",
			"message": "Only regular users can apply as decorators",
		})
		return
	}

	var req models.DecoratorApplicationCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	var existing models.DecoratorApplication
	if err := database.DB.
		Where("applicant_email = ? AND status = ?", user.Email, models.ApplicationStatusPending).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"error":   "Application pending",
			"message": "You already have an application awaiting review",
		})
		return
	}

	photo := ""
	if user.PhotoURL != nil {
		photo = *user.PhotoURL
	}

	application := models.DecoratorApplication{
		ApplicantEmail: user.Email,
		Name:           user.Name,
		PhotoURL:       photo,
		Specialty:      req.Specialty,
		Experience:     req.Experience,
		Portfolio:      req.Portfolio,
		Status:         models.ApplicationStatusPending,
	}

	if err := database.DB.Create(&application).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Application failed",
			"message": "Failed to submit the application",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"insertedId": application.ID,
	})
}

// getDecoratorRequests lists applications for review
func getDecoratorRequests(c *gin.Context) {
	query := database.DB.Model(&models.DecoratorApplication{}).Order("applied_at DESC")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var applications []models.DecoratorApplication
	if err := query.Find(&applications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch applications",
			"message": "Could not load decorator applications",
		})
		return
	}

	c.JSON(http.StatusOK, applications)
}

// decideDecoratorRequest approves or rejects an application. Approval
// upgrades the applicant's role in the same transaction, so the
// application record and the account never disagree.
func decideDecoratorRequest(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid application ID",
			"message": "Application ID must be numeric",
		})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	decision, ok := models.ParseApplicationStatus(req.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid decision",
			"message": "Status must be approved or rejected",
		})
		return
	}

	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		var application models.DecoratorApplication
		if err := tx.First(&application, id).Error; err != nil {
			return err
		}

		if application.Status != models.ApplicationStatusPending {
			return errAlreadyDecided
		}

		if err := tx.Model(&application).Update("status", decision).Error; err != nil {
			return err
		}

		if decision == models.ApplicationStatusApproved {
			if err := tx.Model(&models.User{}).
				Where("email = ? AND role = ?", application.ApplicantEmail, models.RoleUser).
				Update("role", models.RoleDecorator).Error; err != nil {
				return err
			}
			log.Printf("✅ %s approved as decorator", application.ApplicantEmail)
		}

		return nil
	})
	if txErr != nil {
		switch {
		case errors.Is(txErr, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "Application not found",
				"message": "The requested application does not exist",
			})
		case errors.Is(txErr, errAlreadyDecided):
			c.JSON(http.StatusConflict, gin.H{
				"error":   "Already decided",
				"message": "This application has already been reviewed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Decision failed",
				"message": "Failed to record the decision",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"modifiedCount": 1,
	})
}

var errAlreadyDecided = errors.New("application already decided")
