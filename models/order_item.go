package models

type OrderItem struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OrderID uint `gorm:"not null;index" json:"-"`
	// MenuItem is only declared for the RESTRICT foreign key; it is never preloaded
	MenuItemID     uint      `gorm:"not null;index" json:"menu_item_id"`
	MenuItem       *MenuItem `gorm:"foreignKey:MenuItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Quantity       int       `gorm:"not null" json:"quantity"`
	PriceCentsEach int64     `gorm:"not null" json:"price_cents_each"`
}

func (i OrderItem) LineTotal() int64 {
	return int64(i.Quantity) * i.PriceCentsEach
}
