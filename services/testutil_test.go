package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"reservation-backend/config"
	"reservation-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database per test. The shared-cache
// DSN keyed by test name keeps every pooled connection on the same store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.SeedDatabase(db)
	return db
}

func seedHotel(t *testing.T, db *gorm.DB) models.Hotel {
	t.Helper()
	hotel := models.Hotel{
		Name:    "Grand Plaza",
		Address: fmt.Sprintf("1 Main St (%s)", t.Name()),
		Phone:   fmt.Sprintf("555-%s", t.Name()),
	}
	require.NoError(t, db.Create(&hotel).Error)
	return hotel
}

func seedRoom(t *testing.T, db *gorm.DB, hotelID uint, number int, category string, maxOcc int, rate int64) models.Room {
	t.Helper()
	room := models.Room{
		HotelID:      hotelID,
		RoomNumber:   number,
		Category:     category,
		MaxOccupancy: maxOcc,
		NightlyRate:  decimal.NewFromInt(rate),
	}
	require.NoError(t, db.Create(&room).Error)
	return room
}

func seedStaff(t *testing.T, db *gorm.DB, hotelID uint, jobTitle, name string) models.Staff {
	t.Helper()
	staff := models.Staff{FullName: name, JobTitle: jobTitle, HotelID: &hotelID}
	require.NoError(t, db.Create(&staff).Error)
	return staff
}

func seedCustomer(t *testing.T, db *gorm.DB, name string) models.Customer {
	t.Helper()
	customer := models.Customer{FullName: name, Email: name + "@example.com"}
	require.NoError(t, db.Create(&customer).Error)
	return customer
}

// backdateStay shifts a stay's start date so checkout computes a known
// night count.
func backdateStay(t *testing.T, db *gorm.DB, stayID uint, nights int) {
	t.Helper()
	start := time.Now().UTC().AddDate(0, 0, -nights)
	require.NoError(t, db.Model(&models.Stay{}).
		Where("id = ?", stayID).
		Update("start_date", start).Error)
}

var errStoreDown = errors.New("store unavailable")

// failTable makes every statement of one kind against one table fail,
// simulating a store outage mid-transaction. The database is per-test, so
// no cleanup is needed.
func failTable(t *testing.T, db *gorm.DB, table, op string) {
	t.Helper()
	name := fmt.Sprintf("test:fail_%s_%s", table, op)
	hook := func(tx *gorm.DB) {
		if tx.Statement.Table == table {
			_ = tx.AddError(errStoreDown)
		}
	}
	var err error
	switch op {
	case "query":
		err = db.Callback().Query().Before("gorm:query").Register(name, hook)
	case "create":
		err = db.Callback().Create().Before("gorm:create").Register(name, hook)
	case "update":
		err = db.Callback().Update().Before("gorm:update").Register(name, hook)
	default:
		t.Fatalf("unsupported statement kind %q", op)
	}
	require.NoError(t, err)
}

func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, got.Equal(decimal.RequireFromString(want)),
		"expected %s, got %s", want, got.String())
}
