package models

import "time"

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Price       float64   `gorm:"not null" json:"price"`
	Description string    `json:"description"`
	Quantity    int       `gorm:"not null" json:"quantity"` // units in stock
	Location    string    `json:"location"`
	ImagePath   string    `json:"image_path"`
	CategoryID  uint      `gorm:"index" json:"category_id"`
	Category    Category  `gorm:"foreignKey:CategoryID" json:"category"`
	StoreID     uint      `gorm:"index" json:"store_id"`
	Store       Store     `gorm:"foreignKey:StoreID" json:"-"`
	CreatedAt   time.Time `json:"created_date"`
}
