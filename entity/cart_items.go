package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartItem holds a price snapshot taken when the menu item was first
// added; repeated adds merge into the same row and keep that snapshot.
type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId" gorm:"uniqueIndex:idx_cart_menu"`
	Cart   Cart `json:"-"`

	MenuID uint `json:"menuId" gorm:"uniqueIndex:idx_cart_menu"`
	Menu   Menu `json:"menu"`

	Quantity     int             `json:"quantity"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit" gorm:"type:decimal(10,2)"`
	SubTotal     decimal.Decimal `json:"subTotal" gorm:"type:decimal(10,2)"`
}
