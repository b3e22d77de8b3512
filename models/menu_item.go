package models

import "time"

// MenuItem is priced in integer minor units. Changing PriceCents never
// touches OrderItem rows created earlier.
type MenuItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	RestaurantID uint      `gorm:"not null;index" json:"restaurant_id"`
	Name         string    `gorm:"type:varchar(200);not null" json:"name"`
	Description  *string   `gorm:"type:text" json:"description"`
	PriceCents   int64     `gorm:"not null" json:"price_cents"`
	IsAvailable  bool      `gorm:"not null" json:"is_available"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}
