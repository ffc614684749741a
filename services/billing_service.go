package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"reservation-backend/models"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var loyaltyDiscountRate = decimal.NewFromFloat(0.05)

// BillingService produces itemized receipts for closed stays and persists
// the amount owed. Recomputation always prices services from the CURRENT
// cost table, so a cost change followed by re-billing changes the amount.
type BillingService struct {
	DB *gorm.DB
}

func NewBillingService(db *gorm.DB) *BillingService {
	return &BillingService{DB: db}
}

// ItemizedReceipt computes and persists the bill for a closed stay.
// Idempotent: recomputation overwrites the same fields.
func (b *BillingService) ItemizedReceipt(stayID uint) (*models.Receipt, error) {
	var receipt *models.Receipt
	txErr := b.DB.Transaction(func(tx *gorm.DB) error {
		var stay models.Stay
		if err := tx.First(&stay, stayID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStayNotFound
			}
			return err
		}
		r, err := b.receiptTx(tx, &stay)
		if err != nil {
			return err
		}
		receipt = r
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return receipt, nil
}

// BackfillAmounts recomputes every closed stay whose amount owed was never
// set. Returns how many stays were billed.
func (b *BillingService) BackfillAmounts() (int, error) {
	var ids []uint
	if err := b.DB.Model(&models.Stay{}).
		Where("check_out_time IS NOT NULL AND amount_owed IS NULL").
		Order("id ASC").
		Pluck("id", &ids).Error; err != nil {
		return 0, fmt.Errorf("failed to list unbilled stays: %w", err)
	}

	billed := 0
	for _, id := range ids {
		if _, err := b.ItemizedReceipt(id); err != nil {
			return billed, err
		}
		billed++
	}
	return billed, nil
}

// receiptTx does the actual work against the caller's transaction; checkout
// calls it inside the same unit that closes the stay.
func (b *BillingService) receiptTx(tx *gorm.DB, stay *models.Stay) (*models.Receipt, error) {
	if stay.CheckOutTime == nil || stay.EndDate == nil {
		return nil, ErrStayStillOpen
	}

	var room models.Room
	if err := tx.
		Where("hotel_id = ? AND room_number = ?", stay.HotelID, stay.RoomNumber).
		First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	nights := wholeNights(stay.StartDate, *stay.EndDate)
	nightsTotal := room.NightlyRate.Mul(decimal.NewFromInt(int64(nights)))

	lines := []models.ReceiptLine{{
		Item:     "Nightly charge",
		Qty:      nights,
		UnitCost: room.NightlyRate,
		Total:    nightsTotal,
	}}
	subtotal := nightsTotal

	type svcRow struct {
		ServiceName string
		Qty         int
	}
	var rows []svcRow
	if err := tx.Model(&models.ProvidedService{}).
		Select("service_name, COUNT(*) AS qty").
		Where("stay_id = ?", stay.ID).
		Group("service_name").
		Order("service_name ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate services: %w", err)
	}

	for _, row := range rows {
		var st models.ServiceType
		if err := tx.First(&st, "name = ?", row.ServiceName).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrServiceTypeNotFound
			}
			return nil, err
		}
		total := st.Cost.Mul(decimal.NewFromInt(int64(row.Qty)))
		lines = append(lines, models.ReceiptLine{
			Item:     row.ServiceName,
			Qty:      row.Qty,
			UnitCost: st.Cost,
			Total:    total,
		})
		subtotal = subtotal.Add(total)
	}

	// 5% off the total, iff paid with the hotel's own branded card. Applied
	// once to the sum, never per line.
	discount := decimal.Zero
	if stay.PaymentMethod == models.PaymentCard &&
		stay.CardType != nil && *stay.CardType == models.CardTypeHotel {
		discount = subtotal.Mul(loyaltyDiscountRate).Round(2)
	}
	amountOwed := subtotal.Sub(discount).Round(2)

	receipt := &models.Receipt{
		StayID:     stay.ID,
		Lines:      lines,
		Subtotal:   subtotal,
		Discount:   discount,
		AmountOwed: amountOwed,
	}

	snapshot, err := json.Marshal(receipt)
	if err != nil {
		return nil, fmt.Errorf("failed to encode receipt: %w", err)
	}

	if err := tx.Model(&models.Stay{}).
		Where("id = ?", stay.ID).
		Updates(map[string]interface{}{
			"amount_owed": amountOwed,
			"receipt":     datatypes.JSON(snapshot),
		}).Error; err != nil {
		return nil, err
	}

	return receipt, nil
}

// wholeNights is the calendar-date difference: a Monday 14:00 check-in and
// Thursday 10:00 checkout is 3 nights.
func wholeNights(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	n := int(e.Sub(s).Hours() / 24)
	if n < 0 {
		n = 0
	}
	return n
}
