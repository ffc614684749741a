package controllers

import (
	"net/http"
	"strconv"
	"time"

	"reservation-backend/services"
	"reservation-backend/utils"

	"github.com/gin-gonic/gin"
)

type CustomerController struct {
	Customers *services.CustomerService
}

func NewCustomerController(customers *services.CustomerService) *CustomerController {
	return &CustomerController{Customers: customers}
}

type createCustomerPayload struct {
	FullName    string `json:"fullName" binding:"required"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	DateOfBirth string `json:"dateOfBirth"`
}

func (ctl *CustomerController) CreateCustomer(c *gin.Context) {
	var payload createCustomerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	var dob *time.Time
	if payload.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", payload.DateOfBirth)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid dateOfBirth, expected YYYY-MM-DD")
			return
		}
		dob = &parsed
	}

	customer, err := ctl.Customers.CreateCustomer(payload.FullName, payload.Phone, payload.Email, dob)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, customer)
}

func (ctl *CustomerController) GetCustomers(c *gin.Context) {
	customers, err := ctl.Customers.GetCustomers()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customers)
}

func (ctl *CustomerController) DeleteCustomer(c *gin.Context) {
	customerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid customer id")
		return
	}

	if err := ctl.Customers.DeleteCustomer(uint(customerID)); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "customer deleted")
}
