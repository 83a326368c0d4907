package models

import "time"

type Payment struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	MerchantName   string    `gorm:"not null" json:"merchant_name"`
	AccountNumber  string    `gorm:"not null" json:"account_number"`
	ExpirationDate string    `json:"expiration_date"`
	CustomerID     uint      `gorm:"index;not null" json:"customer"`
	Customer       Customer  `gorm:"foreignKey:CustomerID" json:"-"`
	CreatedAt      time.Time `json:"create_date"`
}
