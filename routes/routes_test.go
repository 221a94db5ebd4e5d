package routes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"decoriva-server/models"
)

func TestResolveRoleFailsOpenToUser(t *testing.T) {
	role := resolveRole("", gorm.ErrRecordNotFound)
	assert.Equal(t, models.RoleUser, role)

	role = resolveRole(models.RoleAdmin, errors.New("connection refused"))
	assert.Equal(t, models.RoleUser, role)
}

func TestResolveRoleRejectsUnknownValues(t *testing.T) {
	role := resolveRole(models.UserRole("superadmin"), nil)
	assert.Equal(t, models.RoleUser, role)
}

func TestResolveRoleKeepsValidRoles(t *testing.T) {
	assert.Equal(t, models.RoleAdmin, resolveRole(models.RoleAdmin, nil))
	assert.Equal(t, models.RoleDecorator, resolveRole(models.RoleDecorator, nil))
	assert.Equal(t, models.RoleUser, resolveRole(models.RoleUser, nil))
}

func TestBookingPriceSumsAddons(t *testing.T) {
	price := bookingPrice(500, []models.BookingAddon{
		{Name: "Fresh flower upgrade", Price: 100},
	})
	assert.Equal(t, 600.0, price)
}

func TestBookingPriceWithoutAddons(t *testing.T) {
	assert.Equal(t, 500.0, bookingPrice(500, nil))
}

func TestBookingPriceAvoidsFloatDrift(t *testing.T) {
	price := bookingPrice(0.1, []models.BookingAddon{
		{Name: "a", Price: 0.2},
	})
	assert.Equal(t, 0.3, price)
}
