package services

import "errors"

// Failure taxonomy of the fulfillment engine. Controllers map these onto
// HTTP statuses; nothing is retried or recovered silently.
var (
	// not-found
	ErrFoodNotFound       = errors.New("food not found")
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrItemNotFound       = errors.New("order item not found")
	ErrSessionNotFound    = errors.New("checkout session not found")

	// precondition-failed
	ErrEmptyCart           = errors.New("cart is empty")
	ErrInvalidQuantity     = errors.New("quantity must be positive")
	ErrPaymentNotCompleted = errors.New("payment not completed")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrItemsNotCompleted   = errors.New("order has items not completed")

	// conflict: another cooker won the claim race
	ErrItemAlreadyClaimed = errors.New("item already claimed")
)
