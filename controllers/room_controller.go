package controllers

import (
	"net/http"
	"strconv"

	"reservation-backend/services"
	"reservation-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type RoomController struct {
	Rooms     *services.RoomService
	Inventory *services.InventoryService
}

func NewRoomController(rooms *services.RoomService, inventory *services.InventoryService) *RoomController {
	return &RoomController{Rooms: rooms, Inventory: inventory}
}

type createRoomPayload struct {
	HotelID      uint   `json:"hotelId" binding:"required"`
	RoomNumber   int    `json:"roomNumber" binding:"required"`
	Category     string `json:"category" binding:"required"`
	MaxOccupancy int    `json:"maxOccupancy" binding:"required"`
	NightlyRate  string `json:"nightlyRate" binding:"required"`
}

func (ctl *RoomController) CreateRoom(c *gin.Context) {
	var payload createRoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	rate, err := decimal.NewFromString(payload.NightlyRate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid nightly rate")
		return
	}

	room, err := ctl.Rooms.CreateRoom(payload.HotelID, payload.RoomNumber, payload.Category, payload.MaxOccupancy, rate)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

func (ctl *RoomController) GetRooms(c *gin.Context) {
	hotelID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid hotel id")
		return
	}

	rooms, err := ctl.Rooms.GetRooms(uint(hotelID))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// GetAvailability exposes the availability predicate, including the
// Presidential dedicated-staff conjunction.
func (ctl *RoomController) GetAvailability(c *gin.Context) {
	hotelID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid hotel id")
		return
	}
	roomNumber, err := strconv.Atoi(c.Param("roomNumber"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room number")
		return
	}

	if !ctl.Inventory.IsValidRoom(uint(hotelID), roomNumber) {
		utils.JSONError(c, http.StatusNotFound, "room_not_found")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"occupied":  ctl.Inventory.IsRoomOccupied(uint(hotelID), roomNumber),
		"available": ctl.Inventory.IsRoomAvailable(uint(hotelID), roomNumber),
	})
}

type updateRatePayload struct {
	NightlyRate string `json:"nightlyRate" binding:"required"`
}

func (ctl *RoomController) UpdateNightlyRate(c *gin.Context) {
	hotelID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid hotel id")
		return
	}
	roomNumber, err := strconv.Atoi(c.Param("roomNumber"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room number")
		return
	}

	var payload updateRatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	rate, err := decimal.NewFromString(payload.NightlyRate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid nightly rate")
		return
	}

	if err := ctl.Rooms.UpdateNightlyRate(uint(hotelID), roomNumber, rate); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "nightly rate updated")
}
