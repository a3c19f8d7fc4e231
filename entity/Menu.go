package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Menu struct {
	gorm.Model
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	ImageURL    string          `json:"imageUrl"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"`

	// preload only on menu detail; stripped from cart projections
	Reviews []Review `json:"reviews,omitempty"`
}
