package services

import (
	"context"
	"errors"

	"github.com/BillyRonico412/brestau-sub000/entity"
	"github.com/BillyRonico412/brestau-sub000/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderService owns order creation (gated on payment-session issuance) and
// the payment-reconciling read path.
type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	MenuRepo *repository.MenuRepository
	Gateway  PaymentGateway
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, menuRepo *repository.MenuRepository, gateway PaymentGateway) *OrderService {
	return &OrderService{DB: db, Repo: repo, MenuRepo: menuRepo, Gateway: gateway}
}

// ----- DTOs from Controller -----

type CartLine struct {
	FoodID               uint   `json:"foodId" binding:"required"`
	Qty                  int    `json:"qty" binding:"required,min=1"`
	RemovedIngredientIDs []uint `json:"removedIngredientIds"`
}

type CreateOrderRes struct {
	OrderID     string `json:"orderId"`
	CheckoutURL string `json:"checkoutUrl"`
}

// Create turns a cart into a durable order. A checkout session is requested
// first; the order and its items are persisted in one transaction only once
// the session exists. A gateway failure therefore leaves no rows behind.
func (s *OrderService) Create(ctx context.Context, cartLines []CartLine) (*CreateOrderRes, error) {
	if len(cartLines) == 0 {
		return nil, ErrEmptyCart
	}

	// Resolve everything before the external call so an unknown food or
	// ingredient fails fast.
	type lineTmp struct {
		foodID  uint
		qty     int
		removed []entity.Ingredient
	}
	tmp := make([]lineTmp, 0, len(cartLines))
	gwLines := make([]CheckoutLine, 0, len(cartLines))

	for _, l := range cartLines {
		if l.Qty <= 0 {
			return nil, ErrInvalidQuantity
		}
		if _, err := s.MenuRepo.GetFoodBasics(l.FoodID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrFoodNotFound
			}
			return nil, err
		}
		removed, allFound, err := s.MenuRepo.GetIngredients(l.RemovedIngredientIDs)
		if err != nil {
			return nil, err
		}
		if !allFound {
			return nil, ErrIngredientNotFound
		}
		tmp = append(tmp, lineTmp{foodID: l.FoodID, qty: l.Qty, removed: removed})
		gwLines = append(gwLines, CheckoutLine{FoodID: l.FoodID, Quantity: l.Qty})
	}

	orderID := uuid.NewString()

	// Session issuance is the precondition for persistence, never the
	// reverse.
	session, err := s.Gateway.CreateSession(ctx, orderID, gwLines)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		number, err := s.Repo.NextOrderNumber(tx)
		if err != nil {
			return err
		}
		order := entity.Order{
			ID:                orderID,
			Number:            number,
			CheckoutSessionID: session.ID,
			PaymentStatus:     entity.PaymentPending,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, t := range tmp {
			oi := entity.OrderItem{
				ID:                 uuid.NewString(),
				OrderID:            order.ID,
				FoodID:             t.foodID,
				Quantity:           t.qty,
				Status:             entity.ItemPending,
				RemovedIngredients: t.removed,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateOrderRes{OrderID: orderID, CheckoutURL: session.URL}, nil
}

// GetWithPaymentCheck answers "what is in this order, and did the customer
// actually pay" by re-fetching the live session instead of trusting stored
// state. Callers downstream (kitchen, floor) go through this gate before
// treating an order as real. Safe to retry.
func (s *OrderService) GetWithPaymentCheck(ctx context.Context, orderID string) (*entity.Order, error) {
	order, err := s.Repo.GetOrderWithItems(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	state, err := s.Gateway.RetrieveSession(ctx, order.CheckoutSessionID)
	if err != nil {
		return nil, err
	}
	switch state {
	case SessionNotFound:
		// A session must exist once an order does; treat like a missing
		// order.
		return nil, ErrSessionNotFound
	case SessionIncomplete:
		return nil, ErrPaymentNotCompleted
	}

	// First successful reconciliation records PAID; guarded, so re-reads
	// are no-ops.
	if order.PaymentStatus == entity.PaymentPending {
		if _, err := s.Repo.MarkPaidIfPending(orderID); err != nil {
			return nil, err
		}
		order.PaymentStatus = entity.PaymentPaid
	}

	return order, nil
}
