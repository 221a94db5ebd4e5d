package websocket

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"decoriva-server/database"
	"decoriva-server/models"
	"decoriva-server/utils"
)

// BookingUpdate is the payload pushed when a booking changes state
type BookingUpdate struct {
	BookingID      uint                 `json:"bookingId"`
	ServiceName    string               `json:"serviceName"`
	Status         models.BookingStatus `json:"status"`
	DecoratorEmail *string              `json:"decoratorEmail,omitempty"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

// BookingHandler upgrades authenticated clients onto the hub
type BookingHandler struct {
	hub *Hub
}

// NewBookingHandler creates a booking WebSocket handler
func NewBookingHandler(hub *Hub) *BookingHandler {
	return &BookingHandler{hub: hub}
}

// HandleBookings upgrades the connection. Browsers cannot set headers on
// the WebSocket handshake, so the access token rides in the query string.
func (bh *BookingHandler) HandleBookings(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Missing token",
			"message": "A token query parameter is required",
		})
		return
	}

	claims, err := utils.VerifyToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Invalid token",
			"message": "Token is invalid or expired",
		})
		return
	}

	var user models.User
	if err := database.DB.First(&user, claims.UserID).Error; err != nil || !user.IsActive {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Invalid token",
			"message": "User not found or deactivated",
		})
		return
	}

	ServeWebSocket(bh.hub, c.Writer, c.Request, user.Email, string(user.Role))
}

// NotifyBookingUpdate pushes a status change to everyone who cares about
// the booking: its customer, its assigned decorator and all admins.
func (h *Hub) NotifyBookingUpdate(booking *models.Booking) {
	message := &Message{
		Type:      "booking_update",
		Timestamp: time.Now(),
		Data: BookingUpdate{
			BookingID:      booking.ID,
			ServiceName:    booking.ServiceName,
			Status:         booking.Status,
			DecoratorEmail: booking.DecoratorEmail,
			UpdatedAt:      booking.UpdatedAt,
		},
	}

	h.SendToEmail(booking.UserEmail, message)
	if booking.DecoratorEmail != nil {
		h.SendToEmail(*booking.DecoratorEmail, message)
	}
	h.sendToRole(string(models.RoleAdmin), message)

	log.Printf("📡 Booking %d update (%s) pushed", booking.ID, booking.Status)
}
