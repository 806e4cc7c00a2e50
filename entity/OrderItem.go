package entity

import (
	"time"
)

// Item statuses. PENDING -> IN_PROGRESS -> COMPLETED; CANCELLED is terminal
// from any non-COMPLETED state.
const (
	ItemPending    = "PENDING"
	ItemInProgress = "IN_PROGRESS"
	ItemCompleted  = "COMPLETED"
	ItemCancelled  = "CANCELLED"
)

type OrderItem struct {
	ID string `gorm:"primaryKey" json:"id"`

	OrderID string `gorm:"not null;index" json:"orderId"`
	Order   *Order `json:"-"`

	FoodID uint `gorm:"not null" json:"foodId"`
	Food   Food `json:"food"`

	Quantity int    `gorm:"not null" json:"quantity"`
	Status   string `gorm:"not null;default:'PENDING'" json:"status"`

	// Who first took the item into preparation. Set exactly once, on the
	// PENDING -> IN_PROGRESS transition, and never cleared.
	CookerID *uint `json:"cookerId"`
	Cooker   *User `json:"-"`

	RemovedIngredients []Ingredient `gorm:"many2many:order_item_removed_ingredients;" json:"removedIngredients"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
