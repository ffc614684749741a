package controllers

import (
	"errors"
	"net/http"
	"strings"

	"reservation-backend/services"
	"reservation-backend/utils"

	"github.com/gin-gonic/gin"
	mysql "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
)

func statusForRejection(err error) int {
	switch {
	case errors.Is(err, services.ErrHotelNotFound),
		errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrCustomerNotFound),
		errors.Is(err, services.ErrStaffNotFound),
		errors.Is(err, services.ErrStayNotFound),
		errors.Is(err, services.ErrServiceRecordNotFound),
		errors.Is(err, services.ErrServiceTypeNotFound),
		errors.Is(err, services.ErrNoOpenStay):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrRoomOccupied),
		errors.Is(err, services.ErrHotelHasOpenStays),
		errors.Is(err, services.ErrCustomerHasOpenStay),
		errors.Is(err, services.ErrStaffDedicated),
		errors.Is(err, services.ErrStaffManagesHotel):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// constraintMessage turns store-level constraint violations into readable
// reasons instead of leaking driver errors.
func constraintMessage(err error) (string, bool) {
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		switch merr.Number {
		case 1062:
			return "duplicate value: address, phone, username or manager is already in use", true
		case 1451, 1452:
			return "operation conflicts with existing related records", true
		}
	}
	lower := strings.ToLower(err.Error())
	if strings.Contains(lower, "duplicate") || strings.Contains(lower, "unique") {
		return "duplicate value: address, phone, username or manager is already in use", true
	}
	return "", false
}

// handleServiceError maps errors onto the API taxonomy: business rejections
// to 4xx with their reason, constraint violations to 409 with a readable
// message, everything else to an opaque 500 (the transaction has already
// rolled back).
func handleServiceError(c *gin.Context, err error) {
	if services.IsRejection(err) {
		utils.JSONError(c, statusForRejection(err), err.Error())
		return
	}
	if msg, ok := constraintMessage(err); ok {
		utils.JSONError(c, http.StatusConflict, msg)
		return
	}
	logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("unexpected service error")
	utils.JSONError(c, http.StatusInternalServerError, "internal_error")
}
