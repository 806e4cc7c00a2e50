package repository

import (
	"github.com/BillyRonico412/brestau-sub000/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Omit("Items").Create(o).Error
}

// NextOrderNumber returns the next human-facing counter value. Must run
// inside the same transaction as the order insert.
func (r *OrderRepository) NextOrderNumber(tx *gorm.DB) (uint, error) {
	var row struct{ MaxNumber uint }
	err := tx.Model(&entity.Order{}).
		Select("COALESCE(MAX(number), 0) AS max_number").
		Scan(&row).Error
	if err != nil {
		return 0, err
	}
	return row.MaxNumber + 1, nil
}

func (r *OrderRepository) GetOrder(tx *gorm.DB, orderID string) (*entity.Order, error) {
	var o entity.Order
	if err := tx.First(&o, "id = ?", orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetOrderWithItems loads the order plus items, each item's food and its
// removed-ingredients set (the read-enrichment join for order lookup).
func (r *OrderRepository) GetOrderWithItems(orderID string) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.created_at ASC") }).
		Preload("Items.Food").
		Preload("Items.RemovedIngredients").
		First(&o, "id = ?", orderID).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// MarkPaidIfPending flips payment status PENDING -> PAID. Guarded so repeated
// reconciliations are no-ops.
func (r *OrderRepository) MarkPaidIfPending(orderID string) (int64, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ? AND payment_status = ?", orderID, entity.PaymentPending).
		Update("payment_status", entity.PaymentPaid)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) AssignServer(tx *gorm.DB, orderID string, serverID uint) error {
	return tx.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("server_id", serverID).Error
}

// ---------------- Order Items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetItem(itemID string) (*entity.OrderItem, error) {
	var oi entity.OrderItem
	err := r.DB.
		Preload("Food").
		Preload("RemovedIngredients").
		First(&oi, "id = ?", itemID).Error
	if err != nil {
		return nil, err
	}
	return &oi, nil
}

// ClaimItem is the exclusive PENDING -> IN_PROGRESS transition. Status and
// cooker are written in one conditional UPDATE; with two concurrent claims
// exactly one sees RowsAffected == 1.
func (r *OrderRepository) ClaimItem(itemID string, cookerID uint) (int64, error) {
	res := r.DB.Model(&entity.OrderItem{}).
		Where("id = ? AND status = ? AND cooker_id IS NULL", itemID, entity.ItemPending).
		Updates(map[string]any{
			"status":    entity.ItemInProgress,
			"cooker_id": cookerID,
		})
	return res.RowsAffected, res.Error
}

// UpdateItemStatusGuard performs a guarded transition: the row is updated
// only if its current status is one of fromStatuses.
func (r *OrderRepository) UpdateItemStatusGuard(itemID string, fromStatuses []string, to string) (int64, error) {
	res := r.DB.Model(&entity.OrderItem{}).
		Where("id = ? AND status IN ?", itemID, fromStatuses).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// CountItemsNotCompleted backs the order hand-off precondition.
func (r *OrderRepository) CountItemsNotCompleted(tx *gorm.DB, orderID string) (int64, error) {
	var count int64
	err := tx.Model(&entity.OrderItem{}).
		Where("order_id = ? AND status <> ?", orderID, entity.ItemCompleted).
		Count(&count).Error
	return count, err
}
