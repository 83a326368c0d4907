package models

import "time"

type Like struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID uint      `gorm:"not null;uniqueIndex:idx_likes_customer_product" json:"customer"`
	Customer   Customer  `gorm:"foreignKey:CustomerID" json:"-"`
	ProductID  uint      `gorm:"not null;uniqueIndex:idx_likes_customer_product" json:"product"`
	Product    Product   `gorm:"foreignKey:ProductID" json:"-"`
	CreatedAt  time.Time `json:"created_date"`
}
