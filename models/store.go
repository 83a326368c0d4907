package models

import "time"

type Store struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	SellerID    uint      `gorm:"index;not null" json:"seller_id"`
	Seller      Customer  `gorm:"foreignKey:SellerID" json:"-"`
	CreatedAt   time.Time `json:"created_date"`
}
