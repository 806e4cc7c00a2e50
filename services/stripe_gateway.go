package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/BillyRonico412/brestau-sub000/repository"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

var ErrStripeClientInitFailed = errors.New("failed to initialize Stripe client")

// StripeGateway implements PaymentGateway on top of Stripe Checkout.
type StripeGateway struct {
	client     *client.API
	menuRepo   *repository.MenuRepository
	successURL string
	cancelURL  string
	currency   string
}

func NewStripeGateway(secretKey string, menuRepo *repository.MenuRepository, successURL, cancelURL, currency string) (*StripeGateway, error) {
	if secretKey == "" {
		return nil, ErrStripeClientInitFailed
	}
	sc := client.New(secretKey, nil)
	return &StripeGateway{
		client:     sc,
		menuRepo:   menuRepo,
		successURL: successURL,
		cancelURL:  cancelURL,
		currency:   currency,
	}, nil
}

// CreateSession opens a hosted Checkout Session for the given order. Unit
// amounts come from the catalog, keyed by food id.
func (g *StripeGateway) CreateSession(ctx context.Context, orderID string, lines []CheckoutLine) (*CheckoutSession, error) {
	items := make([]*stripe.CheckoutSessionLineItemParams, 0, len(lines))
	for _, l := range lines {
		f, err := g.menuRepo.GetFoodBasics(l.FoodID)
		if err != nil {
			return nil, fmt.Errorf("resolve food %d: %w", l.FoodID, err)
		}
		items = append(items, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(int64(l.Quantity)),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(g.currency),
				UnitAmount: stripe.Int64(f.Price),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(f.Name),
				},
			},
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:         items,
		ClientReferenceID: stripe.String(orderID),
		SuccessURL:        stripe.String(g.successURL),
		CancelURL:         stripe.String(g.cancelURL),
	}
	params.Context = ctx

	sess, err := g.client.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	return &CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}

// RetrieveSession reports the live state of a session. A missing session is
// SessionNotFound, not an error.
func (g *StripeGateway) RetrieveSession(ctx context.Context, sessionID string) (SessionState, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	sess, err := g.client.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		var serr *stripe.Error
		if errors.As(err, &serr) && serr.Code == stripe.ErrorCodeResourceMissing {
			return SessionNotFound, nil
		}
		return SessionIncomplete, fmt.Errorf("retrieve checkout session: %w", err)
	}

	if sess.Status == stripe.CheckoutSessionStatusComplete {
		return SessionComplete, nil
	}
	return SessionIncomplete, nil
}
