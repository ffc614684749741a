package services

import (
	"testing"

	"reservation-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateHotelManagerMustBeManager(t *testing.T) {
	db := newTestDB(t)
	other := seedHotel(t, db)
	desk := seedStaff(t, db, other.ID, models.JobFrontDesk, "Desk")
	mgr := seedStaff(t, db, other.ID, models.JobManager, "Mgr")

	svc := NewHotelService(db)

	_, err := svc.CreateHotel("Lakeside", "2 Shore Dr", "555-0003", &desk.ID)
	assert.ErrorIs(t, err, ErrNotAManager)

	bogus := mgr.ID + 99
	_, err = svc.CreateHotel("Lakeside", "2 Shore Dr", "555-0003", &bogus)
	assert.ErrorIs(t, err, ErrStaffNotFound)

	hotel, err := svc.CreateHotel("Lakeside", "2 Shore Dr", "555-0003", &mgr.ID)
	require.NoError(t, err)
	require.NotNil(t, hotel.ManagerID)
	assert.Equal(t, mgr.ID, *hotel.ManagerID)
}

func TestChangeManager(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db)
	mgr := seedStaff(t, db, hotel.ID, models.JobManager, "Mgr")
	desk := seedStaff(t, db, hotel.ID, models.JobFrontDesk, "Desk")

	svc := NewHotelService(db)

	require.NoError(t, svc.ChangeManager(hotel.ID, mgr.ID))

	err := svc.ChangeManager(hotel.ID, desk.ID)
	assert.ErrorIs(t, err, ErrNotAManager)

	err = svc.ChangeManager(hotel.ID+99, mgr.ID)
	assert.ErrorIs(t, err, ErrHotelNotFound)

	listed, err := svc.GetHotels()
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.NotNil(t, listed[0].Manager)
	assert.Equal(t, mgr.ID, listed[0].Manager.ID)
}

func TestDeleteHotelBlockedByOpenStay(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db)
	seedRoom(t, db, hotel.ID, 1, models.CategoryEconomy, 2, 100)
	customer := seedCustomer(t, db, "Alice")

	resv := NewReservationService(db, NewBillingService(db))
	svc := NewHotelService(db)

	_, err := resv.CheckIn(hotel.ID, 1, customer.ID, 1, models.PaymentCash, nil)
	require.NoError(t, err)

	err = svc.DeleteHotel(hotel.ID)
	assert.ErrorIs(t, err, ErrHotelHasOpenStays)

	// still there
	var n int64
	db.Model(&models.Hotel{}).Count(&n)
	assert.EqualValues(t, 1, n)
}

// The open-stay guard fails closed: a broken count blocks the delete
// instead of reading as zero open stays.
func TestDeleteHotelGuardFailsClosed(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db)

	svc := NewHotelService(db)

	failTable(t, db, "stays", "query")

	err := svc.DeleteHotel(hotel.ID)
	require.Error(t, err)
	assert.False(t, IsRejection(err))

	var n int64
	db.Model(&models.Hotel{}).Count(&n)
	assert.EqualValues(t, 1, n, "hotel survives a failed guard check")
}

func TestDeleteHotelCascades(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db)
	seedRoom(t, db, hotel.ID, 1, models.CategoryEconomy, 2, 100)
	customer := seedCustomer(t, db, "Alice")
	staff := seedStaff(t, db, hotel.ID, models.JobRoomService, "RS")

	resv := NewReservationService(db, NewBillingService(db))
	records := NewServiceRecordService(db)
	svc := NewHotelService(db)

	_, err := resv.CheckIn(hotel.ID, 1, customer.ID, 1, models.PaymentCash, nil)
	require.NoError(t, err)
	_, err = records.EnterService(hotel.ID, 1, staff.ID, models.ServiceRoomService)
	require.NoError(t, err)
	_, err = resv.CheckOut(hotel.ID, 1)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteHotel(hotel.ID))

	var hotels, rooms, stays, provided int64
	db.Model(&models.Hotel{}).Count(&hotels)
	db.Model(&models.Room{}).Count(&rooms)
	db.Model(&models.Stay{}).Count(&stays)
	db.Model(&models.ProvidedService{}).Count(&provided)
	assert.Zero(t, hotels)
	assert.Zero(t, rooms)
	assert.Zero(t, stays)
	assert.Zero(t, provided)

	// staff survive, unhomed
	var kept models.Staff
	require.NoError(t, db.First(&kept, staff.ID).Error)
	assert.Nil(t, kept.HotelID)

	err = svc.DeleteHotel(hotel.ID)
	assert.ErrorIs(t, err, ErrHotelNotFound)
}
