package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"decoriva-server/database"
	"decoriva-server/models"
)

// RegisterAdminRoutes registers the dashboard endpoints
func RegisterAdminRoutes(router *gin.RouterGroup) {
	router.GET("/stats", getDashboardStats)
	router.GET("/decorators", getDecorators)
}

// getDashboardStats aggregates the headline numbers for the admin
// dashboard. Revenue counts every booking that made it past payment.
func getDashboardStats(c *gin.Context) {
	var userCount int64
	database.DB.Model(&models.User{}).Count(&userCount)

	var decoratorCount int64
	database.DB.Model(&models.User{}).Where("role = ?", models.RoleDecorator).Count(&decoratorCount)

	var serviceCount int64
	database.DB.Model(&models.Service{}).Count(&serviceCount)

	var bookingCount int64
	database.DB.Model(&models.Booking{}).Count(&bookingCount)

	var pendingCount int64
	database.DB.Model(&models.Booking{}).Where("status = ?", models.BookingStatusPending).Count(&pendingCount)

	var completedCount int64
	database.DB.Model(&models.Booking{}).Where("status = ?", models.BookingStatusCompleted).Count(&completedCount)

	var paidBookings []models.Booking
	database.DB.Select("price").Where("status <> ?", models.BookingStatusPending).Find(&paidBookings)

	revenue := decimal.Zero
	for _, b := range paidBookings {
		revenue = revenue.Add(decimal.NewFromFloat(b.Price))
	}

	c.JSON(http.StatusOK, gin.H{
		"users":             userCount,
		"decorators":        decoratorCount,
		"services":          serviceCount,
		"bookings":          bookingCount,
		"pendingBookings":   pendingCount,
		"completedBookings": completedCount,
		"revenue":           revenue.InexactFloat64(),
	})
}

// getDecorators lists the decorator pool for assignment pickers
func getDecorators(c *gin.Context) {
	var decorators []models.User
	if err := database.DB.
		Where("role = ? AND is_active = ?", models.RoleDecorator, true).
		Order("name ASC").
		Find(&decorators).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch decorators",
			"message": "Could not load the decorator pool",
		})
		return
	}

	c.JSON(http.StatusOK, decorators)
}
