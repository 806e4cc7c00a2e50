package services

import "context"

// CheckoutLine is one order line handed to the payment provider. Prices are
// re-derived from the catalog on the gateway side; the engine never trusts
// client-supplied amounts.
type CheckoutLine struct {
	FoodID   uint
	Quantity int
}

// CheckoutSession is the provider's hosted-payment object for one order.
type CheckoutSession struct {
	ID  string
	URL string
}

// SessionState is the tagged result of a session lookup. The provider's raw
// payload never leaves the adapter.
type SessionState int

const (
	SessionComplete SessionState = iota
	SessionIncomplete
	SessionNotFound
)

// PaymentGateway is the engine's sole source of truth for "was this order
// paid". Errors are transport failures; a missing session is SessionNotFound
// with a nil error.
type PaymentGateway interface {
	CreateSession(ctx context.Context, orderID string, lines []CheckoutLine) (*CheckoutSession, error)
	RetrieveSession(ctx context.Context, sessionID string) (SessionState, error)
}
