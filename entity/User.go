package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email     string `gorm:"uniqueIndex;not null" json:"email"`
	Password  string `json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `gorm:"not null;default:'customer'" json:"role"`

	// Relations — preload only when needed
	CookedItems  []OrderItem `gorm:"foreignKey:CookerID" json:"-"`
	ServedOrders []Order     `gorm:"foreignKey:ServerID" json:"-"`
}
