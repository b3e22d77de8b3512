package models

import "time"

type Order struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	RestaurantID uint        `gorm:"not null;index" json:"restaurant_id"`
	Status       OrderStatus `gorm:"type:varchar(40);not null;default:'created'" json:"status"`
	TotalCents   int64       `gorm:"not null" json:"total_cents"`
	CreatedAt    time.Time   `gorm:"not null" json:"created_at"`
	Items        []OrderItem `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"items"`
	// Payments are write-only from the order's point of view
	Payments []Payment `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// ItemsTotal recomputes the sum of line totals. TotalCents is fixed at
// creation, so this is only used to check the invariant.
func (o *Order) ItemsTotal() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.LineTotal()
	}
	return total
}
