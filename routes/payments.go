package routes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"decoriva-server/database"
	"decoriva-server/middleware"
	"decoriva-server/models"
	"decoriva-server/services"
)

// RegisterPaymentRoutes registers checkout and verification endpoints
func RegisterPaymentRoutes(router *gin.RouterGroup) {
	router.POST("/create-checkout-session", createCheckoutSession)
	router.POST("/verify", verifyPayment)
}

// createCheckoutSession opens a hosted checkout session for one of the
// caller's pending bookings.
func createCheckoutSession(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req struct {
		BookingID uint `json:"bookingId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	var booking models.Booking
	if err := database.DB.First(&booking, req.BookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "Booking not found",
				"message": "The requested booking does not exist",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch booking",
			"message": "Could not load the booking",
		})
		return
	}

	if booking.UserEmail != user.Email {
		c.JSON(http.StatusForbidden, gin.H{
			"error":   "Access denied",
			"message": "You can only pay for your own bookings",
		})
		return
	}

	paymentService := services.NewPaymentService()
	session, err := paymentService.CreateSession(&booking, user.Email)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotPayable) {
			c.JSON(http.StatusConflict, gin.H{
				"error":   "Booking not payable",
				"message": "This booking is not awaiting payment",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Checkout failed",
			"message": "Failed to open a checkout session",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionId": session.SessionID,
		"url":       session.URL,
	})
}

// verifyPayment settles a booking against its checkout session. The
// endpoint is idempotent: verifying a settled pair reports success.
func verifyPayment(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req struct {
		SessionID string `json:"sessionId" binding:"required"`
		BookingID uint   `json:"bookingId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	paymentService := services.NewPaymentService()
	if err := paymentService.Verify(req.SessionID, req.BookingID, user.Email); err != nil {
		switch {
		case errors.Is(err, services.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "Session not found",
				"message": "No checkout session matches this request",
			})
		case errors.Is(err, services.ErrVerificationMismatch):
			c.JSON(http.StatusConflict, gin.H{
				"error":   "Verification failed",
				"message": "The session and booking do not match",
			})
		case errors.Is(err, services.ErrSessionExpired):
			c.JSON(http.StatusConflict, gin.H{
				"error":   "Session expired",
				"message": "The checkout session has expired, start a new one",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Verification failed",
				"message": "Failed to verify the payment",
			})
		}
		return
	}

	if bookingHub != nil {
		var booking models.Booking
		if err := database.DB.First(&booking, req.BookingID).Error; err == nil {
			bookingHub.NotifyBookingUpdate(&booking)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}
