package services

import (
	"errors"
	"testing"

	"reservation-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInAndCheckOutEconomyRoom(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db)
	seedRoom(t, db, hotel.ID, 1, models.CategoryEconomy, 1, 100)
	customer := seedCustomer(t, db, "Alice")

	billing := NewBillingService(db)
	svc := NewReservationService(db, billing)
	inventory := NewInventoryService(db)

	stay, err := svc.CheckIn(hotel.ID, 1, customer.ID, 1, models.PaymentCash, nil)
	require.NoError(t, err)
	require.NotZero(t, stay.ID)
	assert.NotEmpty(t, stay.ReferenceCode)
	assert.Nil(t, stay.CheckOutTime)
	assert.Nil(t, stay.EndDate)
	assert.True(t, inventory.IsRoomOccupied(hotel.ID, 1))

	// second check-in to the same room is rejected
	_, err = svc.CheckIn(hotel.ID, 1, customer.ID, 1, models.PaymentCash, nil)
	require.ErrorIs(t, err, ErrRoomOccupied)

	backdateStay(t, db, stay.ID, 3)

	receipt, err := svc.CheckOut(hotel.ID, 1)
	require.NoError(t, err)
	requireDecimal(t, "300", receipt.AmountOwed)

	var closed models.Stay
	require.NoError(t, db.First(&closed, stay.ID).Error)
	require.NotNil(t, closed.CheckOutTime)
	require.NotNil(t, closed.EndDate)
	require.NotNil(t, closed.AmountOwed)
	requireDecimal(t, "300", *closed.AmountOwed)
	assert.False(t, inventory.IsRoomOccupied(hotel.ID, 1))
}

func TestCheckInRejectsUnknownEntities(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db)
	seedRoom(t, db, hotel.ID, 1, models.CategoryEconomy, 2, 100)
	customer := seedCustomer(t, db, "Bob")

	svc := NewReservationService(db, NewBillingService(db))

	_, err := svc.CheckIn(hotel.ID+99, 1, customer.ID, 1, models.PaymentCash, nil)
	assert.ErrorIs(t, err, ErrHotelNotFound)

	_, err = svc.CheckIn(hotel.ID, 42, customer.ID, 1, models.PaymentCash, nil)
	assert.ErrorIs(t, err, ErrRoomNotFound)

	_, err = svc.CheckIn(hotel.ID, 1, customer.ID+99, 1, models.PaymentCash, nil)
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	_, err = svc.CheckIn(hotel.ID, 1, customer.ID, 1, "Barter", nil)
	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
}

func TestCheckInOccupancyExceededCreatesNoStay(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db)
	seedRoom(t, db, hotel.ID, 1, models.CategoryEconomy, 1, 100)
	customer := seedCustomer(t, db, "Carol")

	svc := NewReservationService(db, NewBillingService(db))

	_, err := svc.CheckIn(hotel.ID, 1, customer.ID, 2, models.PaymentCash, nil)
	require.ErrorIs(t, err, ErrOccupancyExceeded)

	var n int64
	db.Model(&models.Stay{}).Count(&n)
	assert.Zero(t, n, "rejected check-in must not leave a stay row")
}

func TestCheckInCardRequiresAllDetails(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db)
	seedRoom(t, db, hotel.ID, 1, models.CategoryEconomy, 2, 100)
	customer := seedCustomer(t, db, "Dave")

	svc := NewReservationService(db, NewBillingService(db))

	_, err := svc.CheckIn(hotel.ID, 1, customer.ID, 1, models.PaymentCard, nil)
	assert.ErrorIs(t, err, ErrCardDetailsMissing)

	_, err = svc.CheckIn(hotel.ID, 1, customer.ID, 1, models.PaymentCard,
		&CardDetails{CardType: "VISA", CardNumber: "4111"})
	assert.ErrorIs(t, err, ErrCardDetailsMissing)

	stay, err := svc.CheckIn(hotel.ID, 1, customer.ID, 1, models.PaymentCard,
		&CardDetails{CardType: "VISA", CardNumber: "4111", BillingAddress: "2 Side St"})
	require.NoError(t, err)
	require.NotNil(t, stay.CardType)
	assert.Equal(t, "VISA", *stay.CardType)
}

func TestPresidentialCheckInDedicatesStaffPair(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db)
	seedRoom(t, db, hotel.ID, 100, models.CategoryPresidential, 4, 500)
	customer := seedCustomer(t, db, "Eve")

	rs1 := seedStaff(t, db, hotel.ID, models.JobRoomService, "RS One")
	seedStaff(t, db, hotel.ID, models.JobRoomService, "RS Two")
	cat1 := seedStaff(t, db, hotel.ID, models.JobCatering, "Cat One")

	svc := NewReservationService(db, NewBillingService(db))

	_, err := svc.CheckIn(hotel.ID, 100, customer.ID, 2, models.PaymentCash, nil)
	require.NoError(t, err)

	var room models.Room
	require.NoError(t, db.Where("hotel_id = ? AND room_number = ?", hotel.ID, 100).First(&room).Error)
	require.NotNil(t, room.DedicatedRoomServiceID)
	require.NotNil(t, room.DedicatedCateringID)
	// lowest-ID first
	assert.Equal(t, rs1.ID, *room.DedicatedRoomServiceID)
	assert.Equal(t, cat1.ID, *room.DedicatedCateringID)
}

func TestPresidentialCheckInWithoutStaffStillSucceeds(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db)
	seedRoom(t, db, hotel.ID, 100, models.CategoryPresidential, 4, 500)
	customer := seedCustomer(t, db, "Frank")
	// catering exists, room service doesn't: no pair, nothing dedicated
	seedStaff(t, db, hotel.ID, models.JobCatering, "Cat Only")

	svc := NewReservationService(db, NewBillingService(db))
	inventory := NewInventoryService(db)

	stay, err := svc.CheckIn(hotel.ID, 100, customer.ID, 2, models.PaymentCash, nil)
	require.NoError(t, err, "check-in proceeds even with no dedicated staff available")
	assert.Nil(t, stay.CheckOutTime)

	var room models.Room
	require.NoError(t, db.Where("hotel_id = ? AND room_number = ?", hotel.ID, 100).First(&room).Error)
	assert.Nil(t, room.DedicatedRoomServiceID, "dedicated fields are both-or-nothing")
	assert.Nil(t, room.DedicatedCateringID)

	// the same shortage makes the room unavailable to anyone else
	assert.False(t, inventory.IsRoomAvailable(hotel.ID, 100))
}

func TestCheckOutClearsDedicatedStaffRegardless(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db)
	seedRoom(t, db, hotel.ID, 100, models.CategoryPresidential, 4, 500)
	customer := seedCustomer(t, db, "Grace")
	seedStaff(t, db, hotel.ID, models.JobRoomService, "RS")
	seedStaff(t, db, hotel.ID, models.JobCatering, "Cat")

	svc := NewReservationService(db, NewBillingService(db))

	_, err := svc.CheckIn(hotel.ID, 100, customer.ID, 2, models.PaymentCash, nil)
	require.NoError(t, err)

	_, err = svc.CheckOut(hotel.ID, 100)
	require.NoError(t, err)

	var room models.Room
	require.NoError(t, db.Where("hotel_id = ? AND room_number = ?", hotel.ID, 100).First(&room).Error)
	assert.Nil(t, room.DedicatedRoomServiceID)
	assert.Nil(t, room.DedicatedCateringID)

	// checking out an unoccupied room is a caller error
	_, err = svc.CheckOut(hotel.ID, 100)
	assert.ErrorIs(t, err, ErrNoOpenStay)
}

// A checkout whose staff release fails must roll back the close too: a
// committed closed stay with dedicated fields still set would strand the
// staff pair forever.
func TestCheckOutRollsBackWhenStaffReleaseFails(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db)
	seedRoom(t, db, hotel.ID, 100, models.CategoryPresidential, 4, 500)
	customer := seedCustomer(t, db, "Helen")
	seedStaff(t, db, hotel.ID, models.JobRoomService, "RS")
	seedStaff(t, db, hotel.ID, models.JobCatering, "Cat")

	svc := NewReservationService(db, NewBillingService(db))

	stay, err := svc.CheckIn(hotel.ID, 100, customer.ID, 2, models.PaymentCash, nil)
	require.NoError(t, err)

	failTable(t, db, "rooms", "update")

	_, err = svc.CheckOut(hotel.ID, 100)
	require.Error(t, err)

	var reloaded models.Stay
	require.NoError(t, db.First(&reloaded, stay.ID).Error)
	assert.Nil(t, reloaded.CheckOutTime, "failed release must roll back the close")
	assert.Nil(t, reloaded.EndDate)

	var room models.Room
	require.NoError(t, db.Where("hotel_id = ? AND room_number = ?", hotel.ID, 100).First(&room).Error)
	assert.NotNil(t, room.DedicatedRoomServiceID, "stay is still open, staff still dedicated")
	assert.NotNil(t, room.DedicatedCateringID)
}

// A failed staff lookup is not an empty pool: the check-in must abort
// rather than commit with null dedicated fields while a free pair exists.
func TestPresidentialCheckInAbortsWhenStaffLookupFails(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db)
	seedRoom(t, db, hotel.ID, 100, models.CategoryPresidential, 4, 500)
	customer := seedCustomer(t, db, "Ivan")
	seedStaff(t, db, hotel.ID, models.JobRoomService, "RS")
	seedStaff(t, db, hotel.ID, models.JobCatering, "Cat")

	svc := NewReservationService(db, NewBillingService(db))

	failTable(t, db, "staffs", "query")

	_, err := svc.CheckIn(hotel.ID, 100, customer.ID, 2, models.PaymentCash, nil)
	require.Error(t, err)
	assert.False(t, IsRejection(err))

	var n int64
	db.Model(&models.Stay{}).Count(&n)
	assert.Zero(t, n, "aborted check-in must not leave a stay row")
}

// Store failures on the stay insert surface as infrastructure errors, not
// as the room-not-assigned rejection.
func TestCheckInInsertFailureIsNotARejection(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db)
	seedRoom(t, db, hotel.ID, 1, models.CategoryEconomy, 2, 100)
	customer := seedCustomer(t, db, "Judy")

	svc := NewReservationService(db, NewBillingService(db))

	failTable(t, db, "stays", "create")

	_, err := svc.CheckIn(hotel.ID, 1, customer.ID, 1, models.PaymentCash, nil)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrRoomNotAssigned))
	assert.False(t, IsRejection(err))
}

func TestRoomReusableAfterCheckOut(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db)
	seedRoom(t, db, hotel.ID, 1, models.CategoryDeluxe, 2, 150)
	alice := seedCustomer(t, db, "Alice")
	bob := seedCustomer(t, db, "Bob")

	svc := NewReservationService(db, NewBillingService(db))

	_, err := svc.CheckIn(hotel.ID, 1, alice.ID, 1, models.PaymentCash, nil)
	require.NoError(t, err)
	_, err = svc.CheckOut(hotel.ID, 1)
	require.NoError(t, err)

	stay, err := svc.CheckIn(hotel.ID, 1, bob.ID, 2, models.PaymentCash, nil)
	require.NoError(t, err)
	assert.Equal(t, bob.ID, stay.CustomerID)
}
