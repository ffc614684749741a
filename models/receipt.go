package models

import (
	"github.com/shopspring/decimal"
)

type ReceiptLine struct {
	Item     string          `json:"item"`
	Qty      int             `json:"qty"`
	UnitCost decimal.Decimal `json:"unitCost"`
	Total    decimal.Decimal `json:"total"`
}

// Receipt is the itemized bill for one stay: a nightly-charge line plus one
// aggregated line per distinct service consumed. Discount is the amount
// subtracted from the subtotal, zero unless the stay was paid with the
// hotel's branded card.
type Receipt struct {
	StayID     uint            `json:"stayId"`
	Lines      []ReceiptLine   `json:"lines"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Discount   decimal.Decimal `json:"discount"`
	AmountOwed decimal.Decimal `json:"amountOwed"`
}
