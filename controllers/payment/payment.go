package paymentControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/day-cohort-70/Bangazon-API-team-3/httperr"
	"github.com/day-cohort-70/Bangazon-API-team-3/middleware"
	"github.com/day-cohort-70/Bangazon-API-team-3/models"
)

type CreatePaymentRequest struct {
	MerchantName   string `json:"merchant_name" binding:"required"`
	AccountNumber  string `json:"account_number" binding:"required"`
	ExpirationDate string `json:"expiration_date"`
}

// POST /paymenttypes
func CreatePayment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreatePaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.Respond(c, httperr.InvalidArgument("merchant_name and account_number are required"))
			return
		}

		payment := models.Payment{
			MerchantName:   req.MerchantName,
			AccountNumber:  req.AccountNumber,
			ExpirationDate: req.ExpirationDate,
			CustomerID:     middleware.CustomerID(c),
		}
		if err := db.Create(&payment).Error; err != nil {
			httperr.Respond(c, httperr.Unavailable("failed to create payment type", err))
			return
		}
		c.JSON(http.StatusCreated, payment)
	}
}

// GET /paymenttypes
func GetPayments(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payments []models.Payment
		if err := db.Where("customer_id = ?", middleware.CustomerID(c)).
			Order("id").Find(&payments).Error; err != nil {
			httperr.Respond(c, httperr.Unavailable("failed to list payment types", err))
			return
		}
		c.JSON(http.StatusOK, payments)
	}
}

// GET /paymenttypes/:id
func GetPaymentByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			httperr.Respond(c, httperr.InvalidArgument("Invalid payment type id"))
			return
		}

		var payment models.Payment
		dbErr := db.Where("id = ? AND customer_id = ?", id, middleware.CustomerID(c)).
			First(&payment).Error
		if dbErr != nil {
			if errors.Is(dbErr, gorm.ErrRecordNotFound) {
				httperr.Respond(c, httperr.NotFound("Payment type not found"))
				return
			}
			httperr.Respond(c, httperr.Unavailable("failed to load payment type", dbErr))
			return
		}
		c.JSON(http.StatusOK, payment)
	}
}
