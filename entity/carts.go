package entity

import (
	"gorm.io/gorm"
)

// Cart is created lazily on first add and survives a clear: only its
// items are deleted, the row stays for reuse.
type Cart struct {
	gorm.Model
	UserID uint `json:"userId" gorm:"uniqueIndex"`
	User   User `json:"-"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
