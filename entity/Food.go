package entity

import (
	"gorm.io/gorm"
)

type Food struct {
	gorm.Model
	Name    string `gorm:"not null" json:"name"`
	Price   int64  `json:"price"` // smallest currency unit
	PrepMin int    `json:"prepMin"`
	Picture string `json:"picture"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"` // preload only on detail

	Ingredients []Ingredient `gorm:"many2many:food_ingredients;" json:"ingredients,omitempty"`
	OrderItems  []OrderItem  `json:"-"`
}
