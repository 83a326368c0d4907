package models

import "time"

type OrderState string

const (
	// An open order is the customer's active shopping cart.
	OrderStateOpen OrderState = "open"
	// A completed order has been paid for; it never reopens.
	OrderStateCompleted OrderState = "completed"
)

type Order struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`
	// The partial unique index is what makes get-or-create safe under
	// concurrent requests: the database refuses a second open order for
	// the same customer, the application only has to retry the lookup.
	CustomerID uint       `gorm:"not null;index:idx_orders_open_customer,unique,where:state = 'open'" json:"customer"`
	Customer   Customer   `gorm:"foreignKey:CustomerID" json:"-"`
	State      OrderState `gorm:"type:VARCHAR(20);not null;default:'open'" json:"state"`
	PaymentID  *uint      `json:"payment_type"`
	Payment    *Payment   `gorm:"foreignKey:PaymentID" json:"-"`
	LineItems  []LineItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"lineitems"`
	CreatedAt  time.Time  `json:"created_date"`
}

func (o *Order) Completed() bool {
	return o.State == OrderStateCompleted
}

type LineItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint    `gorm:"not null;uniqueIndex:idx_lineitems_order_product" json:"order"`
	ProductID uint    `gorm:"not null;uniqueIndex:idx_lineitems_order_product" json:"-"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	// Units of the product in the order. Always positive; repeat adds
	// increment it, an explicit update replaces it.
	Quantity int `gorm:"not null;default:1" json:"cart_quantity"`
}
