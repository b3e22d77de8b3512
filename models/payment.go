package models

import (
	"time"
)

const DefaultPaymentProvider = "mock"

// Payment records money received for an order. Rows are never updated or
// deleted except through the order's cascade.
type Payment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OrderID     uint      `gorm:"not null;index" json:"order_id"`
	Provider    string    `gorm:"type:varchar(40);not null;default:'mock'" json:"provider"`
	AmountCents int64     `gorm:"not null" json:"amount_cents"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}
