package entity

import (
	"time"
)

// Payment status of an order. Set to PAID only by reconciling against the
// payment gateway, never from client input.
const (
	PaymentPending = "PENDING"
	PaymentPaid    = "PAID"
	PaymentFailed  = "FAILED"
)

type Order struct {
	// Opaque id generated by the engine at creation time.
	ID string `gorm:"primaryKey" json:"id"`
	// Human-facing sequential counter, assigned inside the creation
	// transaction.
	Number uint `gorm:"uniqueIndex;not null" json:"number"`

	// Checkout session reference, immutable after creation.
	CheckoutSessionID string `gorm:"not null" json:"-"`
	PaymentStatus     string `gorm:"not null;default:'PENDING'" json:"paymentStatus"`

	// The staff member who handed the order off; nil until completion.
	ServerID *uint `json:"serverId"`
	Server   *User `json:"-"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
