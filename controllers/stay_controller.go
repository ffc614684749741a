package controllers

import (
	"errors"
	"net/http"

	"reservation-backend/services"
	"reservation-backend/utils"

	"github.com/gin-gonic/gin"
)

type StayController struct {
	Reservations *services.ReservationService
}

func NewStayController(reservations *services.ReservationService) *StayController {
	return &StayController{Reservations: reservations}
}

type checkInPayload struct {
	HotelID       uint   `json:"hotelId" binding:"required"`
	RoomNumber    int    `json:"roomNumber" binding:"required"`
	CustomerID    uint   `json:"customerId" binding:"required"`
	NumGuests     int    `json:"numGuests" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`

	// required together when paymentMethod is Card
	CardType       string `json:"cardType"`
	CardNumber     string `json:"cardNumber"`
	BillingAddress string `json:"billingAddress"`
}

func (ctl *StayController) CheckIn(c *gin.Context) {
	var payload checkInPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	var card *services.CardDetails
	if payload.CardType != "" || payload.CardNumber != "" || payload.BillingAddress != "" {
		card = &services.CardDetails{
			CardType:       payload.CardType,
			CardNumber:     payload.CardNumber,
			BillingAddress: payload.BillingAddress,
		}
	}

	stay, err := ctl.Reservations.CheckIn(
		payload.HotelID,
		payload.RoomNumber,
		payload.CustomerID,
		payload.NumGuests,
		payload.PaymentMethod,
		card,
	)
	if err != nil {
		// A guarded update that affected no rows gets its actionable
		// guidance here rather than a generic failure.
		if errors.Is(err, services.ErrRoomNotAssigned) {
			utils.JSONError(c, http.StatusConflict,
				"room not assigned: dedicated staff could not be attached to the stay; retry the check-in")
			return
		}
		handleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, stay)
}

type checkOutPayload struct {
	HotelID    uint `json:"hotelId" binding:"required"`
	RoomNumber int  `json:"roomNumber" binding:"required"`
}

func (ctl *StayController) CheckOut(c *gin.Context) {
	var payload checkOutPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	receipt, err := ctl.Reservations.CheckOut(payload.HotelID, payload.RoomNumber)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, receipt)
}

func (ctl *StayController) GetOpenStays(c *gin.Context) {
	stays, err := ctl.Reservations.OpenStays()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stays)
}
