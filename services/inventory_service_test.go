package services

import (
	"testing"

	"reservation-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryValidity(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db)
	seedRoom(t, db, hotel.ID, 1, models.CategoryEconomy, 2, 100)
	customer := seedCustomer(t, db, "Alice")

	inv := NewInventoryService(db)

	assert.True(t, inv.IsValidHotel(hotel.ID))
	assert.False(t, inv.IsValidHotel(hotel.ID+99))
	assert.True(t, inv.IsValidRoom(hotel.ID, 1))
	assert.False(t, inv.IsValidRoom(hotel.ID, 2))
	assert.True(t, inv.IsValidCustomer(customer.ID))
	assert.False(t, inv.IsValidCustomer(customer.ID+99))
	assert.False(t, inv.IsCustomerCurrentlyStaying(customer.ID))
}

func TestOccupancyTracksOpenStay(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db)
	seedRoom(t, db, hotel.ID, 1, models.CategoryEconomy, 2, 100)
	customer := seedCustomer(t, db, "Alice")

	inv := NewInventoryService(db)
	svc := NewReservationService(db, NewBillingService(db))

	assert.False(t, inv.IsRoomOccupied(hotel.ID, 1))
	assert.True(t, inv.IsRoomAvailable(hotel.ID, 1))

	_, err := svc.CheckIn(hotel.ID, 1, customer.ID, 1, models.PaymentCash, nil)
	require.NoError(t, err)

	assert.True(t, inv.IsRoomOccupied(hotel.ID, 1))
	assert.False(t, inv.IsRoomAvailable(hotel.ID, 1))
	assert.True(t, inv.IsCustomerCurrentlyStaying(customer.ID))

	_, err = svc.CheckOut(hotel.ID, 1)
	require.NoError(t, err)

	assert.False(t, inv.IsRoomOccupied(hotel.ID, 1))
	assert.True(t, inv.IsRoomAvailable(hotel.ID, 1))
	assert.False(t, inv.IsCustomerCurrentlyStaying(customer.ID))
}

// A vacant Presidential room is only available when a free Room Service
// AND a free Catering staff member both exist at the hotel.
func TestPresidentialAvailabilityConjunction(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db)
	seedRoom(t, db, hotel.ID, 100, models.CategoryPresidential, 4, 500)

	inv := NewInventoryService(db)

	assert.False(t, inv.IsRoomAvailable(hotel.ID, 100), "no staff at all")

	seedStaff(t, db, hotel.ID, models.JobRoomService, "RS")
	assert.False(t, inv.IsRoomAvailable(hotel.ID, 100), "room service alone is not enough")

	seedStaff(t, db, hotel.ID, models.JobCatering, "Cat")
	assert.True(t, inv.IsRoomAvailable(hotel.ID, 100))
}

func TestPresidentialAvailabilityDropsWhenPairDedicatedElsewhere(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db)
	seedRoom(t, db, hotel.ID, 100, models.CategoryPresidential, 4, 500)
	seedRoom(t, db, hotel.ID, 101, models.CategoryPresidential, 4, 500)
	customer := seedCustomer(t, db, "Alice")
	seedStaff(t, db, hotel.ID, models.JobRoomService, "RS")
	seedStaff(t, db, hotel.ID, models.JobCatering, "Cat")

	inv := NewInventoryService(db)
	svc := NewReservationService(db, NewBillingService(db))

	require.True(t, inv.IsRoomAvailable(hotel.ID, 101))

	_, err := svc.CheckIn(hotel.ID, 100, customer.ID, 1, models.PaymentCash, nil)
	require.NoError(t, err)

	// the only pair is now dedicated to room 100, so the vacant 101 is
	// reported unavailable even though it is physically empty
	assert.False(t, inv.IsRoomAvailable(hotel.ID, 101))
}
