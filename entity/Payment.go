package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment is an append-only audit row: one row per reconciliation
// attempt, never updated or deleted.
type Payment struct {
	gorm.Model
	Amount        decimal.Decimal `json:"amount" gorm:"type:decimal(10,2)"`
	Gateway       PaymentGateway  `json:"gateway"`
	TransactionID string          `json:"transactionId"`
	Success       bool            `json:"success"`
	FailureReason string          `json:"failureReason,omitempty"`
	PaymentDate   time.Time       `json:"paymentDate"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`
}
