package repository

import (
	"gorm.io/gorm"

	"github.com/olvera93/FoodApp/entity"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetByID(id uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("OrderItems").Preload("OrderItems.Menu").Preload("User").First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// LockByID loads the order row FOR UPDATE so concurrent payment
// callbacks for the same order serialize.
func (r *OrderRepository) LockByID(tx *gorm.DB, id uint) (*entity.Order, error) {
	var o entity.Order
	err := lockForUpdate(tx).First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) Save(tx *gorm.DB, o *entity.Order) error {
	return tx.Save(o).Error
}

// UpdateStatusGuard flips the order status only when the current value
// matches, returning the affected-row count for conflict detection.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND order_status = ?", orderID, from).
		Update("order_status", to)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) ListAll(status *entity.OrderStatus, page, size int) ([]entity.Order, int64, error) {
	q := r.DB.Model(&entity.Order{})
	if status != nil {
		q = q.Where("order_status = ?", *status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []entity.Order
	err := q.Preload("OrderItems").
		Order("id DESC").
		Offset(page * size).
		Limit(size).
		Find(&orders).Error
	return orders, total, err
}

func (r *OrderRepository) ListForUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("user_id = ?", userID).
		Preload("OrderItems").
		Order("id DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) CreateItem(tx *gorm.DB, item *entity.OrderItem) error {
	return tx.Create(item).Error
}

// HasDeliveredMenu reports whether the user has a delivered order
// containing the menu item. Used to gate reviews.
func (r *OrderRepository) HasDeliveredMenu(userID, menuID uint) (uint, error) {
	var orderID uint
	err := r.DB.Model(&entity.Order{}).
		Select("orders.id").
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Where("orders.user_id = ? AND orders.order_status = ? AND order_items.menu_id = ?",
			userID, entity.OrderDelivered, menuID).
		Limit(1).
		Scan(&orderID).Error
	return orderID, err
}
