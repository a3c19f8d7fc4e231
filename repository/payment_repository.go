package repository

import (
	"gorm.io/gorm"

	"github.com/olvera93/FoodApp/entity"
)

type PaymentRepository struct{ DB *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{DB: db} }

// Create appends one reconciliation record. Rows are never updated or
// deleted afterwards.
func (r *PaymentRepository) Create(tx *gorm.DB, p *entity.Payment) error {
	return tx.Create(p).Error
}

func (r *PaymentRepository) GetByID(id uint) (*entity.Payment, error) {
	var p entity.Payment
	err := r.DB.Preload("Order").Preload("Order.OrderItems").First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) ListAll() ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.DB.Order("id DESC").Find(&payments).Error
	return payments, err
}

func (r *PaymentRepository) ListForOrder(orderID uint) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.DB.Where("order_id = ?", orderID).Order("id DESC").Find(&payments).Error
	return payments, err
}
