package routes

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"decoriva-server/database"
	"decoriva-server/lifecycle"
	"decoriva-server/middleware"
	"decoriva-server/models"
	ws "decoriva-server/websocket"
)

// bookingHub receives lifecycle pushes. Set once from main before the
// router starts serving.
var bookingHub *ws.Hub

// InitBookingHub wires the WebSocket hub into the booking handlers
func InitBookingHub(hub *ws.Hub) {
	bookingHub = hub
}

// RegisterBookingRoutes registers the booking endpoints
func RegisterBookingRoutes(router *gin.RouterGroup) {
	router.POST("", createBooking)
	router.POST("/", createBooking)
	router.GET("", getBookings)
	router.GET("/", getBookings)
	router.GET("/:id", getBooking)
	router.PATCH("/:id", patchBooking)
	router.DELETE("/:id", cancelBooking)
}

// bookingPrice totals the service cost and the frozen addon prices.
func bookingPrice(cost float64, addons []models.BookingAddon) float64 {
	total := decimal.NewFromFloat(cost)
	for _, addon := range addons {
		total = total.Add(decimal.NewFromFloat(addon.Price))
	}
	return total.InexactFloat64()
}

// createBooking places a new booking against a catalog service. The
// service details are snapshotted in, so later catalog edits never
// rewrite history.
func createBooking(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req models.BookingCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	if err := lifecycle.ValidateCreate(req.Date, req.Address, time.Now()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid booking",
			"message": "The event date must not be in the past and an address is required",
		})
		return
	}

	var service models.Service
	if err := database.DB.First(&service, req.ServiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "Service not found",
				"message": "The requested service does not exist",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to load service",
			"message": "Could not verify the booked service",
		})
		return
	}

	booking := models.Booking{
		ServiceID:   service.ID,
		ServiceName: service.Name,
		ImageURL:    service.ImageURL,
		Price:       bookingPrice(service.Cost, req.Addons),
		UserEmail:   user.Email,
		UserName:    user.Name,
		Date:        req.Date,
		Address:     req.Address,
		Notes:       req.Notes,
		Addons:      req.Addons,
		CouponCode:  req.CouponCode,
		Status:      models.BookingStatusPending,
	}

	if err := database.DB.Create(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Booking creation failed",
			"message": "Failed to place the booking",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"insertedId": booking.ID,
	})
}

// getBookings lists bookings scoped to the caller's role: customers see
// their own, decorators see their assignments, admins see everything.
func getBookings(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	query := database.DB.Model(&models.Booking{}).Order("created_at DESC")

	switch user.Role {
	case models.RoleAdmin:
		// unrestricted
	case models.RoleDecorator:
		query = query.Where("decorator_email = ?", user.Email)
	default:
		query = query.Where("user_email = ?", user.Email)
	}

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch bookings",
			"message": "Could not load bookings",
		})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// loadBookingForActor fetches a booking the caller is allowed to see.
func loadBookingForActor(c *gin.Context, user models.User) (*models.Booking, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid booking ID",
			"message": "Booking ID must be numeric",
		})
		return nil, false
	}

	var booking models.Booking
	if err := database.DB.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "Booking not found",
				"message": "The requested booking does not exist",
			})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch booking",
			"message": "Could not load the booking",
		})
		return nil, false
	}

	visible := user.Role == models.RoleAdmin ||
		booking.UserEmail == user.Email ||
		(booking.DecoratorEmail != nil && *booking.DecoratorEmail == user.Email)
	if !visible {
		c.JSON(http.StatusForbidden, gin.H{
			"error":   "Access denied",
			"message": "You do not have access to this booking",
		})
		return nil, false
	}

	return &booking, true
}

// getBooking returns a single booking
func getBooking(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	booking, ok := loadBookingForActor(c, user)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, booking)
}

// BookingPatchRequest is the mutable surface of a booking update
type BookingPatchRequest struct {
	Status         *string `json:"status"`
	DecoratorEmail *string `json:"decoratorEmail"`
}

// patchBooking advances a booking through its lifecycle or assigns a
// decorator. Authority is judged against a fresh read of the row.
func patchBooking(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req BookingPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid booking ID",
			"message": "Booking ID must be numeric",
		})
		return
	}

	patch := lifecycle.Patch{DecoratorEmail: req.DecoratorEmail}
	if req.Status != nil {
		status := models.BookingStatus(*req.Status)
		patch.Status = &status
	}

	actor := lifecycle.Actor{Email: user.Email, Role: user.Role}

	var booking models.Booking
	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(lockForUpdate()).First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return lifecycle.ErrNotFound
			}
			return err
		}

		if err := lifecycle.Authorize(&booking, actor, patch); err != nil {
			return err
		}

		lifecycle.Apply(&booking, patch)
		return tx.Save(&booking).Error
	})
	if txErr != nil {
		respondLifecycleError(c, txErr)
		return
	}

	if bookingHub != nil {
		bookingHub.NotifyBookingUpdate(&booking)
	}

	c.JSON(http.StatusOK, gin.H{
		"modifiedCount": 1,
		"status":        booking.Status,
	})
}

// cancelBooking removes a pending booking. Only the owner may cancel,
// and only before payment.
func cancelBooking(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid booking ID",
			"message": "Booking ID must be numeric",
		})
		return
	}

	actor := lifecycle.Actor{Email: user.Email, Role: user.Role}

	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.Clauses(lockForUpdate()).First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return lifecycle.ErrNotFound
			}
			return err
		}

		if err := lifecycle.ValidateCancel(&booking, actor); err != nil {
			return err
		}

		return tx.Delete(&booking).Error
	})
	if txErr != nil {
		respondLifecycleError(c, txErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"deletedCount": 1,
	})
}

// respondLifecycleError maps lifecycle sentinels onto HTTP statuses
func respondLifecycleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, lifecycle.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid update",
			"message": "The requested change is malformed",
		})
	case errors.Is(err, lifecycle.ErrAuthorization):
		c.JSON(http.StatusForbidden, gin.H{
			"error":   "Not allowed",
			"message": "You are not allowed to make this change",
		})
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{
			"error":   "Invalid transition",
			"message": "The booking cannot move to the requested status",
		})
	case errors.Is(err, lifecycle.ErrNotCancellable):
		c.JSON(http.StatusConflict, gin.H{
			"error":   "Not cancellable",
			"message": "Only pending bookings can be cancelled",
		})
	case errors.Is(err, lifecycle.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Booking not found",
			"message": "The requested booking does not exist",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Update failed",
			"message": "Failed to apply the change",
		})
	}
}

// lockForUpdate serializes concurrent patches on the same booking row
func lockForUpdate() clause.Locking {
	return clause.Locking{Strength: "UPDATE"}
}
