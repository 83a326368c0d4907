package lineitemControllers

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

type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity"`
}

// UpdateQuantity sets the absolute quantity of a line item in the
// customer's open order. The order scoping doubles as the ownership
// check, a line item in someone else's cart is simply not found.
func UpdateQuantity(db *gorm.DB, customerID, lineItemID uint, quantity int) (*models.LineItem, *httperr.Error) {
	var order models.Order
	err := db.Where("customer_id = ? AND state = ?", customerID, models.OrderStateOpen).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("No open order found")
		}
		return nil, httperr.Unavailable("failed to load open order", err)
	}

	var item models.LineItem
	err = db.Preload("Product").
		Where("id = ? AND order_id = ?", lineItemID, order.ID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Product not found in cart")
		}
		return nil, httperr.Unavailable("failed to load line item", err)
	}

	if quantity <= 0 {
		return nil, httperr.InvalidArgument("Invalid quantity. Please provide a positive integer.")
	}

	item.Quantity = quantity
	if err := db.Model(&models.LineItem{}).Where("id = ?", item.ID).
		Update("quantity", quantity).Error; err != nil {
		return nil, httperr.Unavailable("failed to update quantity", err)
	}
	return &item, nil
}

// -------- Handlers --------

// PUT /lineitems/:id
func Update(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			httperr.Respond(c, httperr.InvalidArgument("Invalid line item id"))
			return
		}

		var req UpdateQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
			httperr.Respond(c, httperr.InvalidArgument("Invalid quantity. Please provide a positive integer."))
			return
		}

		item, appErr := UpdateQuantity(db, middleware.CustomerID(c), uint(id), *req.Quantity)
		if appErr != nil {
			httperr.Respond(c, appErr)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":  "Quantity updated",
			"product":  item.Product.Name,
			"quantity": item.Quantity,
		})
	}
}

// GET /lineitems/:id
func Get(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			httperr.Respond(c, httperr.InvalidArgument("Invalid line item id"))
			return
		}

		// Scoped to the calling customer's orders, open or completed.
		var item models.LineItem
		dbErr := db.Preload("Product.Category").
			Joins("JOIN orders ON orders.id = line_items.order_id").
			Where("line_items.id = ? AND orders.customer_id = ?", id, middleware.CustomerID(c)).
			First(&item).Error
		if dbErr != nil {
			if errors.Is(dbErr, gorm.ErrRecordNotFound) {
				httperr.Respond(c, httperr.NotFound("Line item not found"))
				return
			}
			httperr.Respond(c, httperr.Unavailable("failed to load line item", dbErr))
			return
		}

		c.JSON(http.StatusOK, item)
	}
}
