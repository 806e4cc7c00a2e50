package services

import (
	"context"
	"testing"

	"github.com/BillyRonico412/brestau-sub000/entity"
	"github.com/BillyRonico412/brestau-sub000/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordingNotifier struct {
	items []*entity.OrderItem
}

func (n *recordingNotifier) OrderItemChanged(item *entity.OrderItem) {
	n.items = append(n.items, item)
}

func newFulfillment(db *gorm.DB) *FulfillmentService {
	return NewFulfillmentService(db, repository.NewOrderRepository(db), nil)
}

// seedOrderWithItems writes an order with one item per given status.
func seedOrderWithItems(t *testing.T, db *gorm.DB, foodID uint, statuses ...string) (entity.Order, []entity.OrderItem) {
	t.Helper()
	order := entity.Order{
		ID:                uuid.NewString(),
		Number:            1,
		CheckoutSessionID: "cs_seed",
		PaymentStatus:     entity.PaymentPaid,
	}
	require.NoError(t, db.Create(&order).Error)

	items := make([]entity.OrderItem, 0, len(statuses))
	for _, st := range statuses {
		oi := entity.OrderItem{
			ID:       uuid.NewString(),
			OrderID:  order.ID,
			FoodID:   foodID,
			Quantity: 1,
			Status:   st,
		}
		require.NoError(t, db.Create(&oi).Error)
		items = append(items, oi)
	}
	return order, items
}

func TestClaimSetsStatusAndCooker(t *testing.T) {
	db := newTestDB(t)
	burger, _, _ := seedCatalog(t, db)
	cooker := seedUser(t, db, "cooker")
	_, items := seedOrderWithItems(t, db, burger.ID, entity.ItemPending)
	svc := newFulfillment(db)

	item, err := svc.UpdateItemStatus(items[0].ID, entity.ItemInProgress, cooker.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ItemInProgress, item.Status)
	require.NotNil(t, item.CookerID)
	assert.Equal(t, cooker.ID, *item.CookerID)
}

func TestClaimIsExclusive(t *testing.T) {
	db := newTestDB(t)
	burger, _, _ := seedCatalog(t, db)
	cookerA := seedUser(t, db, "cooker")
	cookerB := seedUser(t, db, "cooker")
	_, items := seedOrderWithItems(t, db, burger.ID, entity.ItemPending)
	svc := newFulfillment(db)

	_, err := svc.UpdateItemStatus(items[0].ID, entity.ItemInProgress, cookerA.ID)
	require.NoError(t, err)

	// the second claim loses with a conflict, not a silent re-assignment
	_, err = svc.UpdateItemStatus(items[0].ID, entity.ItemInProgress, cookerB.ID)
	assert.ErrorIs(t, err, ErrItemAlreadyClaimed)

	var stored entity.OrderItem
	require.NoError(t, db.First(&stored, "id = ?", items[0].ID).Error)
	require.NotNil(t, stored.CookerID)
	assert.Equal(t, cookerA.ID, *stored.CookerID)
}

func TestTransitionLegality(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		wantErr error
	}{
		{"pending to in_progress", entity.ItemPending, entity.ItemInProgress, nil},
		{"in_progress to completed", entity.ItemInProgress, entity.ItemCompleted, nil},
		{"pending to cancelled", entity.ItemPending, entity.ItemCancelled, nil},
		{"in_progress to cancelled", entity.ItemInProgress, entity.ItemCancelled, nil},
		{"pending to completed skips preparation", entity.ItemPending, entity.ItemCompleted, ErrInvalidTransition},
		{"completed is terminal for in_progress", entity.ItemCompleted, entity.ItemInProgress, ErrInvalidTransition},
		{"completed is terminal for cancelled", entity.ItemCompleted, entity.ItemCancelled, ErrInvalidTransition},
		{"cancelled is terminal", entity.ItemCancelled, entity.ItemInProgress, ErrInvalidTransition},
		{"cancelled cannot complete", entity.ItemCancelled, entity.ItemCompleted, ErrInvalidTransition},
		{"pending is not a target", entity.ItemInProgress, entity.ItemPending, ErrInvalidTransition},
		{"unknown status", entity.ItemPending, "BURNED", ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			burger, _, _ := seedCatalog(t, db)
			cooker := seedUser(t, db, "cooker")
			_, items := seedOrderWithItems(t, db, burger.ID, tt.from)
			svc := newFulfillment(db)

			_, err := svc.UpdateItemStatus(items[0].ID, tt.to, cooker.ID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateItemStatusUnknownItem(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	cooker := seedUser(t, db, "cooker")
	svc := newFulfillment(db)

	_, err := svc.UpdateItemStatus("missing-item", entity.ItemInProgress, cooker.ID)
	assert.ErrorIs(t, err, ErrItemNotFound)
	_, err = svc.UpdateItemStatus("missing-item", entity.ItemCompleted, cooker.ID)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestAnyStaffMayCompleteButCookerIsKept(t *testing.T) {
	db := newTestDB(t)
	burger, _, _ := seedCatalog(t, db)
	cookerA := seedUser(t, db, "cooker")
	cookerB := seedUser(t, db, "cooker")
	_, items := seedOrderWithItems(t, db, burger.ID, entity.ItemPending)
	svc := newFulfillment(db)

	_, err := svc.UpdateItemStatus(items[0].ID, entity.ItemInProgress, cookerA.ID)
	require.NoError(t, err)

	// B finishes A's plate; ownership does not change
	item, err := svc.UpdateItemStatus(items[0].ID, entity.ItemCompleted, cookerB.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ItemCompleted, item.Status)
	require.NotNil(t, item.CookerID)
	assert.Equal(t, cookerA.ID, *item.CookerID)
}

func TestNotifierReceivesSuccessfulTransitionsOnly(t *testing.T) {
	db := newTestDB(t)
	burger, _, _ := seedCatalog(t, db)
	cooker := seedUser(t, db, "cooker")
	_, items := seedOrderWithItems(t, db, burger.ID, entity.ItemPending)

	notifier := &recordingNotifier{}
	svc := NewFulfillmentService(db, repository.NewOrderRepository(db), notifier)

	_, err := svc.UpdateItemStatus(items[0].ID, entity.ItemInProgress, cooker.ID)
	require.NoError(t, err)
	_, err = svc.UpdateItemStatus(items[0].ID, entity.ItemInProgress, cooker.ID)
	require.Error(t, err)

	require.Len(t, notifier.items, 1)
	assert.Equal(t, entity.ItemInProgress, notifier.items[0].Status)
}

func TestCompleteOrderRequiresAllItemsCompleted(t *testing.T) {
	db := newTestDB(t)
	burger, _, _ := seedCatalog(t, db)
	server := seedUser(t, db, "server")
	order, items := seedOrderWithItems(t, db, burger.ID, entity.ItemCompleted, entity.ItemPending)
	svc := newFulfillment(db)

	_, err := svc.CompleteOrder(order.ID, server.ID)
	assert.ErrorIs(t, err, ErrItemsNotCompleted)

	var stored entity.Order
	require.NoError(t, db.First(&stored, "id = ?", order.ID).Error)
	assert.Nil(t, stored.ServerID)

	// finish the remaining item, then hand-off succeeds
	require.NoError(t, db.Model(&entity.OrderItem{}).
		Where("id = ?", items[1].ID).
		Update("status", entity.ItemCompleted).Error)

	done, err := svc.CompleteOrder(order.ID, server.ID)
	require.NoError(t, err)
	require.NotNil(t, done.ServerID)
	assert.Equal(t, server.ID, *done.ServerID)
}

func TestCompleteOrderNotFound(t *testing.T) {
	db := newTestDB(t)
	server := seedUser(t, db, "server")
	svc := newFulfillment(db)

	_, err := svc.CompleteOrder("missing-order", server.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestCompleteOrderReassignsServerOnReinvocation(t *testing.T) {
	db := newTestDB(t)
	burger, _, _ := seedCatalog(t, db)
	serverA := seedUser(t, db, "server")
	serverB := seedUser(t, db, "server")
	order, _ := seedOrderWithItems(t, db, burger.ID, entity.ItemCompleted)
	svc := newFulfillment(db)

	done, err := svc.CompleteOrder(order.ID, serverA.ID)
	require.NoError(t, err)
	assert.Equal(t, serverA.ID, *done.ServerID)

	done, err = svc.CompleteOrder(order.ID, serverB.ID)
	require.NoError(t, err)
	assert.Equal(t, serverB.ID, *done.ServerID)
}

// Full walk-through of the workflow: create, pay, claim, finish, hand off.
func TestFulfillmentScenario(t *testing.T) {
	db := newTestDB(t)
	burger, _, _ := seedCatalog(t, db)
	cookerA := seedUser(t, db, "cooker")
	cookerB := seedUser(t, db, "cooker")
	server := seedUser(t, db, "server")

	gw := &fakeGateway{state: SessionIncomplete}
	orderSvc := newOrderService(db, gw)
	fulfillSvc := newFulfillment(db)

	out, err := orderSvc.Create(context.Background(), []CartLine{{FoodID: burger.ID, Qty: 2}})
	require.NoError(t, err)

	gw.state = SessionComplete
	order, err := orderSvc.GetWithPaymentCheck(context.Background(), out.OrderID)
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	itemID := order.Items[0].ID

	_, err = fulfillSvc.UpdateItemStatus(itemID, entity.ItemInProgress, cookerA.ID)
	require.NoError(t, err)
	item, err := fulfillSvc.UpdateItemStatus(itemID, entity.ItemCompleted, cookerB.ID)
	require.NoError(t, err)
	assert.Equal(t, cookerA.ID, *item.CookerID)

	done, err := fulfillSvc.CompleteOrder(out.OrderID, server.ID)
	require.NoError(t, err)
	assert.Equal(t, server.ID, *done.ServerID)
}
