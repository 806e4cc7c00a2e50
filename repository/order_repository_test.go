package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/BillyRonico412/brestau-sub000/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.Ingredient{}, &entity.Food{},
		&entity.Order{}, &entity.OrderItem{},
	))
	return db
}

func seedItem(t *testing.T, db *gorm.DB, status string) entity.OrderItem {
	t.Helper()
	cat := entity.Category{Name: "Cat " + t.Name()}
	require.NoError(t, db.Create(&cat).Error)
	food := entity.Food{Name: "Food", Price: 100, CategoryID: cat.ID}
	require.NoError(t, db.Create(&food).Error)

	order := entity.Order{ID: uuid.NewString(), Number: 1, CheckoutSessionID: "cs_x"}
	require.NoError(t, db.Create(&order).Error)

	item := entity.OrderItem{ID: uuid.NewString(), OrderID: order.ID, FoodID: food.ID, Quantity: 1, Status: status}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func TestClaimItemAffectsExactlyOnce(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	item := seedItem(t, db, entity.ItemPending)

	affected, err := repo.ClaimItem(item.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	// second claim hits the guard
	affected, err = repo.ClaimItem(item.ID, 8)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)

	stored, err := repo.GetItem(item.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ItemInProgress, stored.Status)
	require.NotNil(t, stored.CookerID)
	assert.Equal(t, uint(7), *stored.CookerID)
}

func TestUpdateItemStatusGuard(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	item := seedItem(t, db, entity.ItemPending)

	// not in the allowed from-set
	affected, err := repo.UpdateItemStatusGuard(item.ID, []string{entity.ItemInProgress}, entity.ItemCompleted)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)

	affected, err = repo.UpdateItemStatusGuard(item.ID, []string{entity.ItemPending, entity.ItemInProgress}, entity.ItemCancelled)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
}

func TestNextOrderNumberIsMonotonic(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	n, err := repo.NextOrderNumber(db)
	require.NoError(t, err)
	assert.Equal(t, uint(1), n)

	require.NoError(t, db.Create(&entity.Order{ID: uuid.NewString(), Number: n, CheckoutSessionID: "cs_1"}).Error)

	n, err = repo.NextOrderNumber(db)
	require.NoError(t, err)
	assert.Equal(t, uint(2), n)
}

func TestMarkPaidIfPending(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	order := entity.Order{ID: uuid.NewString(), Number: 1, CheckoutSessionID: "cs_1"}
	require.NoError(t, db.Create(&order).Error)

	affected, err := repo.MarkPaidIfPending(order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = repo.MarkPaidIfPending(order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}
