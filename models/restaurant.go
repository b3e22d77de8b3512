package models

import "time"

type Restaurant struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"type:varchar(200);not null" json:"name"`
	Description *string    `gorm:"type:text" json:"description"`
	IsActive    bool       `gorm:"not null" json:"is_active"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	MenuItems   []MenuItem `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Orders      []Order    `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
