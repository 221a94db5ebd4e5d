package routes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"decoriva-server/database"
	"decoriva-server/models"
)

// RegisterUserRoutes registers the public role lookup
func RegisterUserRoutes(router *gin.RouterGroup) {
	router.GET("/role/:email", getUserRole)
}

// RegisterAdminUserRoutes registers the user management endpoints
func RegisterAdminUserRoutes(router *gin.RouterGroup) {
	router.GET("/users", getAllUsers)
	router.PATCH("/users/role/:id", updateUserRole)
}

// resolveRole folds lookup failures into the plain user role. The UI
// only uses this to decide which dashboard to draw; real authority is
// re-checked on every protected call.
func resolveRole(role models.UserRole, err error) models.UserRole {
	if err != nil {
		return models.RoleUser
	}
	if _, ok := models.ParseRole(string(role)); !ok {
		return models.RoleUser
	}
	return role
}

// getUserRole answers "which dashboard does this email get"
func getUserRole(c *gin.Context) {
	email := c.Param("email")

	var user models.User
	err := database.DB.Select("role").Where("email = ?", email).First(&user).Error

	c.JSON(http.StatusOK, gin.H{
		"role": resolveRole(user.Role, err),
	})
}

// getAllUsers lists every account
func getAllUsers(c *gin.Context) {
	var users []models.User
	if err := database.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch users",
			"message": "Could not load users",
		})
		return
	}

	c.JSON(http.StatusOK, users)
}

// updateUserRole changes an account's role. Takes effect on the
// target's next request.
func updateUserRole(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid user ID",
			"message": "User ID must be numeric",
		})
		return
	}

	var req struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	role, ok := models.ParseRole(req.Role)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid role",
			"message": "Role must be user, decorator or admin",
		})
		return
	}

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "User not found",
				"message": "The requested user does not exist",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch user",
			"message": "Could not load the user",
		})
		return
	}

	result := database.DB.Model(&user).Update("role", role)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Role update failed",
			"message": "Failed to update the role",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"modifiedCount": result.RowsAffected,
	})
}
