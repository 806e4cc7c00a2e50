package services

import (
	"errors"

	"github.com/BillyRonico412/brestau-sub000/entity"
	"github.com/BillyRonico412/brestau-sub000/repository"

	"gorm.io/gorm"
)

// FulfillmentNotifier receives item updates after a successful transition,
// e.g. to push them to kitchen displays. May be nil.
type FulfillmentNotifier interface {
	OrderItemChanged(item *entity.OrderItem)
}

// FulfillmentService is the per-item state machine and the order hand-off.
type FulfillmentService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	Notifier FulfillmentNotifier
}

func NewFulfillmentService(db *gorm.DB, repo *repository.OrderRepository, notifier FulfillmentNotifier) *FulfillmentService {
	return &FulfillmentService{DB: db, Repo: repo, Notifier: notifier}
}

// UpdateItemStatus applies one transition of the item state machine:
//
//	PENDING -> IN_PROGRESS   claim; records the acting cooker, exclusive
//	IN_PROGRESS -> COMPLETED any staff member; cooker stays as claimed
//	PENDING | IN_PROGRESS -> CANCELLED
//
// Every transition is a conditional UPDATE guarded on the expected prior
// status, so concurrent writers cannot both win.
func (s *FulfillmentService) UpdateItemStatus(itemID, newStatus string, actingUserID uint) (*entity.OrderItem, error) {
	var affected int64
	var err error

	switch newStatus {
	case entity.ItemInProgress:
		affected, err = s.Repo.ClaimItem(itemID, actingUserID)
		if err != nil {
			return nil, err
		}
		if affected == 0 {
			return nil, s.classifyClaimFailure(itemID)
		}
	case entity.ItemCompleted:
		affected, err = s.Repo.UpdateItemStatusGuard(itemID, []string{entity.ItemInProgress}, entity.ItemCompleted)
		if err != nil {
			return nil, err
		}
		if affected == 0 {
			return nil, s.classifyGuardFailure(itemID)
		}
	case entity.ItemCancelled:
		affected, err = s.Repo.UpdateItemStatusGuard(itemID, []string{entity.ItemPending, entity.ItemInProgress}, entity.ItemCancelled)
		if err != nil {
			return nil, err
		}
		if affected == 0 {
			return nil, s.classifyGuardFailure(itemID)
		}
	default:
		return nil, ErrInvalidTransition
	}

	item, err := s.Repo.GetItem(itemID)
	if err != nil {
		return nil, err
	}
	if s.Notifier != nil {
		s.Notifier.OrderItemChanged(item)
	}
	return item, nil
}

// classifyClaimFailure distinguishes "someone else claimed it" from an
// illegal transition, so clients can refresh and show the new owner instead
// of blindly retrying.
func (s *FulfillmentService) classifyClaimFailure(itemID string) error {
	item, err := s.Repo.GetItem(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrItemNotFound
		}
		return err
	}
	if item.Status == entity.ItemInProgress {
		return ErrItemAlreadyClaimed
	}
	return ErrInvalidTransition
}

func (s *FulfillmentService) classifyGuardFailure(itemID string) error {
	_, err := s.Repo.GetItem(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrItemNotFound
		}
		return err
	}
	return ErrInvalidTransition
}

// CompleteOrder records the hand-off: once every item is COMPLETED, the
// acting server is written on the order. Re-invocation re-assigns the
// server; it is harmless and deliberately not guarded.
func (s *FulfillmentService) CompleteOrder(orderID string, serverID uint) (*entity.Order, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := s.Repo.GetOrder(tx, orderID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		remaining, err := s.Repo.CountItemsNotCompleted(tx, orderID)
		if err != nil {
			return err
		}
		if remaining > 0 {
			return ErrItemsNotCompleted
		}
		return s.Repo.AssignServer(tx, orderID, serverID)
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.GetOrderWithItems(orderID)
}
