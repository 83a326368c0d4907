package orderControllers

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

type CompleteOrderRequest struct {
	PaymentType uint `json:"payment_type" binding:"required"`
}

// -------- Core Logic --------

// Complete transitions an open order to completed with the given
// payment. The transition is a single conditional update: only a row
// that is still open matches, so racing completions cannot both
// succeed and the first payment reference is never overwritten.
func Complete(db *gorm.DB, customerID, orderID, paymentID uint) (*models.Order, *httperr.Error) {
	var payment models.Payment
	err := db.Where("id = ? AND customer_id = ?", paymentID, customerID).
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Payment type not found")
		}
		return nil, httperr.Unavailable("failed to load payment type", err)
	}

	res := db.Model(&models.Order{}).
		Where("id = ? AND customer_id = ? AND state = ?", orderID, customerID, models.OrderStateOpen).
		Updates(map[string]interface{}{
			"state":      models.OrderStateCompleted,
			"payment_id": paymentID,
		})
	if res.Error != nil {
		return nil, httperr.Unavailable("failed to complete order", res.Error)
	}

	var order models.Order
	if err := db.Where("id = ? AND customer_id = ?", orderID, customerID).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Order not found")
		}
		return nil, httperr.Unavailable("failed to load order", err)
	}

	if res.RowsAffected == 0 {
		// The order exists but was not open: it has already been paid
		// for, by this request's loser or an earlier one.
		return nil, httperr.Conflict("Order has already been completed")
	}
	return &order, nil
}

// -------- Handlers --------

// PUT /orders/:id
func CompleteOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
		if err != nil {
			httperr.Respond(c, httperr.InvalidArgument("Invalid order id"))
			return
		}

		var req CompleteOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.Respond(c, httperr.InvalidArgument("payment_type is required"))
			return
		}

		order, appErr := Complete(db, middleware.CustomerID(c), uint(orderID), req.PaymentType)
		if appErr != nil {
			httperr.Respond(c, appErr)
			return
		}

		broadcastCompletedOrder(*order)
		c.Status(http.StatusNoContent)
	}
}

// GET /orders/:id
func GetOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
		if err != nil {
			httperr.Respond(c, httperr.InvalidArgument("Invalid order id"))
			return
		}

		var order models.Order
		dbErr := db.Preload("LineItems.Product").
			Where("id = ? AND customer_id = ?", orderID, middleware.CustomerID(c)).
			First(&order).Error
		if dbErr != nil {
			if errors.Is(dbErr, gorm.ErrRecordNotFound) {
				httperr.Respond(c, httperr.NotFound("Order not found"))
				return
			}
			httperr.Respond(c, httperr.Unavailable("failed to load order", dbErr))
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /orders
func ListOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("LineItems.Product").
			Where("customer_id = ?", middleware.CustomerID(c)).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			httperr.Respond(c, httperr.Unavailable("failed to list orders", err))
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
