package controllers

import (
	"net/http"
	"strconv"

	"reservation-backend/services"
	"reservation-backend/utils"

	"github.com/gin-gonic/gin"
)

type BillingController struct {
	Billing *services.BillingService
}

func NewBillingController(billing *services.BillingService) *BillingController {
	return &BillingController{Billing: billing}
}

// GetReceipt recomputes and returns the itemized receipt for a closed stay.
// Safe to call repeatedly; it overwrites the same amount-owed field.
func (ctl *BillingController) GetReceipt(c *gin.Context) {
	stayID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid stay id")
		return
	}

	receipt, err := ctl.Billing.ItemizedReceipt(uint(stayID))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, receipt)
}

// Backfill bills every closed stay whose amount owed was never set.
func (ctl *BillingController) Backfill(c *gin.Context) {
	billed, err := ctl.Billing.BackfillAmounts()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"billed": billed})
}
