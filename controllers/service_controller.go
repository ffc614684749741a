package controllers

import (
	"net/http"
	"strconv"

	"reservation-backend/services"
	"reservation-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ServiceController struct {
	Records *services.ServiceRecordService
	Types   *services.ServiceTypeService
}

func NewServiceController(records *services.ServiceRecordService, types *services.ServiceTypeService) *ServiceController {
	return &ServiceController{Records: records, Types: types}
}

// GetEligibleStaff lists staff the front desk may pick for a service; the
// same predicate gates the insert, so a listed candidate is never rejected
// at write time.
func (ctl *ServiceController) GetEligibleStaff(c *gin.Context) {
	hotelID, err := strconv.ParseUint(c.Query("hotelId"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid hotel id")
		return
	}
	roomNumber, err := strconv.Atoi(c.Query("roomNumber"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room number")
		return
	}
	serviceName := c.Query("service")

	staff, err := ctl.Records.EligibleStaff(uint(hotelID), roomNumber, serviceName)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, staff)
}

type enterServicePayload struct {
	HotelID     uint   `json:"hotelId" binding:"required"`
	RoomNumber  int    `json:"roomNumber" binding:"required"`
	StaffID     uint   `json:"staffId" binding:"required"`
	ServiceName string `json:"serviceName" binding:"required"`
}

func (ctl *ServiceController) EnterService(c *gin.Context) {
	var payload enterServicePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	record, err := ctl.Records.EnterService(payload.HotelID, payload.RoomNumber, payload.StaffID, payload.ServiceName)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, record)
}

type updateServiceStaffPayload struct {
	StaffID uint `json:"staffId" binding:"required"`
}

func (ctl *ServiceController) UpdateServiceStaff(c *gin.Context) {
	recordID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid service record id")
		return
	}

	var payload updateServiceStaffPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	if err := ctl.Records.UpdateServiceStaff(uint(recordID), payload.StaffID); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "service record updated")
}

func (ctl *ServiceController) GetServiceTypes(c *gin.Context) {
	types, err := ctl.Types.GetServiceTypes()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, types)
}

type updateCostPayload struct {
	Cost string `json:"cost" binding:"required"`
}

func (ctl *ServiceController) UpdateServiceCost(c *gin.Context) {
	name := c.Param("name")

	var payload updateCostPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	cost, err := decimal.NewFromString(payload.Cost)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid cost")
		return
	}

	if err := ctl.Types.UpdateCost(name, cost); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "service cost updated")
}
