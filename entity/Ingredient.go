package entity

import (
	"gorm.io/gorm"
)

type Ingredient struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	Foods []Food `gorm:"many2many:food_ingredients;" json:"-"`
}
