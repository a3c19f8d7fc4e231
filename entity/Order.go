package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is an immutable snapshot of a cart at checkout time. TotalAmount
// is computed once from the frozen item subtotals and never recomputed.
type Order struct {
	gorm.Model
	OrderDate   time.Time       `json:"orderDate"`
	TotalAmount decimal.Decimal `json:"totalAmount" gorm:"type:decimal(10,2)"`

	OrderStatus   OrderStatus   `json:"orderStatus"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	OrderItems []OrderItem `json:"orderItems" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Payments   []Payment   `json:"-"`
}
