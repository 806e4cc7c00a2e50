package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name         string `gorm:"uniqueIndex;not null" json:"name"`
	DisplayOrder int    `json:"displayOrder"`

	Foods []Food `json:"foods,omitempty"`
}
