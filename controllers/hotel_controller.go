package controllers

import (
	"net/http"
	"strconv"

	"reservation-backend/services"
	"reservation-backend/utils"

	"github.com/gin-gonic/gin"
)

type HotelController struct {
	Hotels *services.HotelService
}

func NewHotelController(hotels *services.HotelService) *HotelController {
	return &HotelController{Hotels: hotels}
}

type createHotelPayload struct {
	Name      string `json:"name" binding:"required"`
	Address   string `json:"address" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	ManagerID *uint  `json:"managerId"`
}

func (ctl *HotelController) CreateHotel(c *gin.Context) {
	var payload createHotelPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	hotel, err := ctl.Hotels.CreateHotel(payload.Name, payload.Address, payload.Phone, payload.ManagerID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, hotel)
}

func (ctl *HotelController) GetHotels(c *gin.Context) {
	hotels, err := ctl.Hotels.GetHotels()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotels)
}

type changeManagerPayload struct {
	StaffID uint `json:"staffId" binding:"required"`
}

func (ctl *HotelController) ChangeManager(c *gin.Context) {
	hotelID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid hotel id")
		return
	}

	var payload changeManagerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	if err := ctl.Hotels.ChangeManager(uint(hotelID), payload.StaffID); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "manager updated")
}

func (ctl *HotelController) DeleteHotel(c *gin.Context) {
	hotelID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid hotel id")
		return
	}

	if err := ctl.Hotels.DeleteHotel(uint(hotelID)); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "hotel deleted")
}
