package cartControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/day-cohort-70/Bangazon-API-team-3/httperr"
	"github.com/day-cohort-70/Bangazon-API-team-3/middleware"
	"github.com/day-cohort-70/Bangazon-API-team-3/models"
)

type AddItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  *int `json:"quantity"`
}

// CartProduct is the product display data embedded in a cart line item.
type CartProduct struct {
	ID          uint         `json:"id"`
	Name        string       `json:"name"`
	Price       float64      `json:"price"`
	Description string       `json:"description"`
	Quantity    int          `json:"quantity"`
	Location    string       `json:"location"`
	Category    CartCategory `json:"category"`
}

type CartCategory struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type CartLineItem struct {
	ID           uint        `json:"id"`
	Product      CartProduct `json:"product"`
	CartQuantity int         `json:"cart_quantity"`
}

// CartDocument is the view-cart response. Size counts distinct line
// items, not summed quantities.
type CartDocument struct {
	ID          uint           `json:"id"`
	CreatedDate *time.Time     `json:"created_date"`
	PaymentType *uint          `json:"payment_type"`
	Customer    uint           `json:"customer"`
	LineItems   []CartLineItem `json:"lineitems"`
	Size        int            `json:"size"`
}

// -------- Core Logic --------

// GetOrCreateOpenOrder returns the customer's open order, creating one
// if none exists. The partial unique index on orders serializes racing
// creates: the loser sees a duplicate-key error and re-reads the
// winner's row.
func GetOrCreateOpenOrder(db *gorm.DB, customerID uint) (*models.Order, *httperr.Error) {
	var order models.Order
	err := db.Where("customer_id = ? AND state = ?", customerID, models.OrderStateOpen).
		First(&order).Error
	if err == nil {
		return &order, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.Unavailable("failed to load open order", err)
	}

	order = models.Order{CustomerID: customerID, State: models.OrderStateOpen}
	if err := db.Create(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := db.Where("customer_id = ? AND state = ?", customerID, models.OrderStateOpen).
				First(&order).Error; err != nil {
				return nil, httperr.Unavailable("failed to load open order", err)
			}
			return &order, nil
		}
		return nil, httperr.Unavailable("failed to create open order", err)
	}
	return &order, nil
}

// AddProduct puts quantity units of a product into the customer's cart.
// A repeat add increments the existing line item in a single upsert so
// concurrent adds never lose an increment.
func AddProduct(db *gorm.DB, customerID, productID uint, quantity int) *httperr.Error {
	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.NotFound("Product not found")
		}
		return httperr.Unavailable("failed to load product", err)
	}

	order, appErr := GetOrCreateOpenOrder(db, customerID)
	if appErr != nil {
		return appErr
	}

	item := models.LineItem{OrderID: order.ID, ProductID: product.ID, Quantity: quantity}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "order_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"quantity": gorm.Expr("quantity + ?", quantity)}),
	}).Create(&item).Error
	if err != nil {
		return httperr.Unavailable("failed to add product to cart", err)
	}
	return nil
}

// RemoveProduct deletes the line item for a product from the open
// order. The order itself survives, an empty cart is still a cart.
func RemoveProduct(db *gorm.DB, customerID, productID uint) *httperr.Error {
	var order models.Order
	err := db.Where("customer_id = ? AND state = ?", customerID, models.OrderStateOpen).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.NotFound("No open order found")
		}
		return httperr.Unavailable("failed to load open order", err)
	}

	res := db.Where("order_id = ? AND product_id = ?", order.ID, productID).
		Delete(&models.LineItem{})
	if res.Error != nil {
		return httperr.Unavailable("failed to remove product from cart", res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.NotFound("Product not found in cart")
	}
	return nil
}

// ViewCart builds the cart document for the customer. A customer with
// no open order gets an empty document, never an error.
func ViewCart(db *gorm.DB, customerID uint) (*CartDocument, *httperr.Error) {
	var order models.Order
	err := db.Preload("LineItems.Product.Category").
		Where("customer_id = ? AND state = ?", customerID, models.OrderStateOpen).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &CartDocument{
				Customer:  customerID,
				LineItems: []CartLineItem{},
			}, nil
		}
		return nil, httperr.Unavailable("failed to load cart", err)
	}

	doc := CartDocument{
		ID:          order.ID,
		CreatedDate: &order.CreatedAt,
		PaymentType: order.PaymentID,
		Customer:    order.CustomerID,
		LineItems:   make([]CartLineItem, 0, len(order.LineItems)),
	}
	for _, item := range order.LineItems {
		doc.LineItems = append(doc.LineItems, CartLineItem{
			ID: item.ID,
			Product: CartProduct{
				ID:          item.Product.ID,
				Name:        item.Product.Name,
				Price:       item.Product.Price,
				Description: item.Product.Description,
				Quantity:    item.Product.Quantity,
				Location:    item.Product.Location,
				Category: CartCategory{
					ID:   item.Product.Category.ID,
					Name: item.Product.Category.Name,
				},
			},
			CartQuantity: item.Quantity,
		})
	}
	doc.Size = len(doc.LineItems)
	return &doc, nil
}

// -------- Handlers --------

// POST /cart
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.Respond(c, httperr.InvalidArgument("product_id is required"))
			return
		}

		quantity := 1
		if req.Quantity != nil {
			if *req.Quantity <= 0 {
				httperr.Respond(c, httperr.InvalidArgument("Invalid quantity. Please provide a positive integer."))
				return
			}
			quantity = *req.Quantity
		}

		if appErr := AddProduct(db, middleware.CustomerID(c), req.ProductID, quantity); appErr != nil {
			httperr.Respond(c, appErr)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// GET /cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, appErr := ViewCart(db, middleware.CustomerID(c))
		if appErr != nil {
			httperr.Respond(c, appErr)
			return
		}
		c.JSON(http.StatusOK, doc)
	}
}

// DELETE /cart/:product_id
func RemoveFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			httperr.Respond(c, httperr.InvalidArgument("Invalid product id"))
			return
		}

		if appErr := RemoveProduct(db, middleware.CustomerID(c), uint(productID)); appErr != nil {
			httperr.Respond(c, appErr)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
