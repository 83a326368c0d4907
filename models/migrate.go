package models

import "gorm.io/gorm"

// Migrate creates or updates every table the API uses. Shared between
// main and the test helpers so both run against the same schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Customer{},
		&Category{},
		&Store{},
		&Product{},
		&Payment{},
		&Order{},
		&LineItem{},
		&Like{},
	)
}
