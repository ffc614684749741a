package controllers

import (
	"net/http"
	"strconv"

	"reservation-backend/services"
	"reservation-backend/utils"

	"github.com/gin-gonic/gin"
)

type StaffController struct {
	Staff *services.StaffService
}

func NewStaffController(staff *services.StaffService) *StaffController {
	return &StaffController{Staff: staff}
}

type createStaffPayload struct {
	FullName string `json:"fullName" binding:"required"`
	JobTitle string `json:"jobTitle" binding:"required"`
	Phone    string `json:"phone"`
	HotelID  *uint  `json:"hotelId"`
}

func (ctl *StaffController) CreateStaff(c *gin.Context) {
	var payload createStaffPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	staff, err := ctl.Staff.CreateStaff(payload.FullName, payload.JobTitle, payload.Phone, payload.HotelID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, staff)
}

func (ctl *StaffController) GetStaff(c *gin.Context) {
	var hotelID *uint
	if raw := c.Query("hotelId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid hotel id")
			return
		}
		id := uint(parsed)
		hotelID = &id
	}

	staff, err := ctl.Staff.GetStaff(hotelID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, staff)
}

type updateStaffPayload struct {
	Field   string `json:"field" binding:"required"`
	Value   string `json:"value"`
	HotelID *uint  `json:"hotelId"`
}

// UpdateStaff changes exactly one field per call; the field name is parsed
// into the closed StaffField set before anything runs.
func (ctl *StaffController) UpdateStaff(c *gin.Context) {
	staffID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid staff id")
		return
	}

	var payload updateStaffPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	field, err := services.ParseStaffField(payload.Field)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if err := ctl.Staff.UpdateStaff(uint(staffID), field, payload.Value, payload.HotelID); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "staff updated")
}

func (ctl *StaffController) DeleteStaff(c *gin.Context) {
	staffID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid staff id")
		return
	}

	if err := ctl.Staff.DeleteStaff(uint(staffID)); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "staff deleted")
}
