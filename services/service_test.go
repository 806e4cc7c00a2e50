package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/BillyRonico412/brestau-sub000/entity"
	"github.com/BillyRonico412/brestau-sub000/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a fresh in-memory database, one per test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.Ingredient{}, &entity.Food{},
		&entity.Order{}, &entity.OrderItem{},
	))
	return db
}

// fakeGateway substitutes Stripe in tests.
type fakeGateway struct {
	createErr   error
	retrieveErr error
	state       SessionState

	created     int
	lastOrderID string
	lastLines   []CheckoutLine
}

func (g *fakeGateway) CreateSession(_ context.Context, orderID string, lines []CheckoutLine) (*CheckoutSession, error) {
	if g.createErr != nil {
		return nil, g.createErr
	}
	g.created++
	g.lastOrderID = orderID
	g.lastLines = lines
	return &CheckoutSession{
		ID:  fmt.Sprintf("cs_test_%d", g.created),
		URL: fmt.Sprintf("https://checkout.example/pay/cs_test_%d", g.created),
	}, nil
}

func (g *fakeGateway) RetrieveSession(_ context.Context, _ string) (SessionState, error) {
	if g.retrieveErr != nil {
		return SessionIncomplete, g.retrieveErr
	}
	return g.state, nil
}

// seedCatalog inserts a category, two foods and an ingredient attached to
// the first food.
func seedCatalog(t *testing.T, db *gorm.DB) (burger, drink entity.Food, onion entity.Ingredient) {
	t.Helper()
	cat := entity.Category{Name: "Test", DisplayOrder: 1}
	require.NoError(t, db.Create(&cat).Error)

	onion = entity.Ingredient{Name: "Onion"}
	require.NoError(t, db.Create(&onion).Error)

	burger = entity.Food{Name: "Burger", Price: 950, PrepMin: 8, CategoryID: cat.ID, Ingredients: []entity.Ingredient{onion}}
	require.NoError(t, db.Create(&burger).Error)

	drink = entity.Food{Name: "Lemonade", Price: 350, PrepMin: 2, CategoryID: cat.ID}
	require.NoError(t, db.Create(&drink).Error)
	return burger, drink, onion
}

func seedUser(t *testing.T, db *gorm.DB, role string) entity.User {
	t.Helper()
	u := entity.User{
		Email:    fmt.Sprintf("%s-%d@test.local", role, seedUserSeq(db)),
		Password: "x",
		Role:     role,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func seedUserSeq(db *gorm.DB) int64 {
	var n int64
	db.Model(&entity.User{}).Count(&n)
	return n
}

func newOrderService(db *gorm.DB, gw PaymentGateway) *OrderService {
	return NewOrderService(db, repository.NewOrderRepository(db), repository.NewMenuRepository(db), gw)
}
