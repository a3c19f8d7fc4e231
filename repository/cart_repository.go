package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/olvera93/FoodApp/entity"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetCartWithItems returns the user's cart with items and menus
// preloaded, or gorm.ErrRecordNotFound when the user has no cart yet.
func (r *CartRepository) GetCartWithItems(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.Menu").
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// LockCart loads the user's cart row FOR UPDATE so concurrent
// mutations against the same cart serialize.
func (r *CartRepository) LockCart(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := lockForUpdate(tx).
		Where("user_id = ?", userID).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// LockOrCreateCart is LockCart, but creates the (empty) cart row on
// first use.
func (r *CartRepository) LockOrCreateCart(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	c, err := r.LockCart(tx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		created := entity.Cart{UserID: userID}
		if err := tx.Create(&created).Error; err != nil {
			return nil, err
		}
		return &created, nil
	}
	return c, err
}

func (r *CartRepository) GetItems(tx *gorm.DB, cartID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := tx.Where("cart_id = ?", cartID).Find(&items).Error
	return items, err
}

func (r *CartRepository) GetItemByMenu(tx *gorm.DB, cartID, menuID uint) (*entity.CartItem, error) {
	var item entity.CartItem
	err := tx.Where("cart_id = ? AND menu_id = ?", cartID, menuID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) GetItemByID(tx *gorm.DB, itemID uint) (*entity.CartItem, error) {
	var item entity.CartItem
	err := tx.First(&item, itemID).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) SaveItem(tx *gorm.DB, item *entity.CartItem) error {
	return tx.Save(item).Error
}

func (r *CartRepository) CreateItem(tx *gorm.DB, item *entity.CartItem) error {
	return tx.Create(item).Error
}

func (r *CartRepository) DeleteItem(tx *gorm.DB, itemID uint) error {
	return tx.Unscoped().Delete(&entity.CartItem{}, itemID).Error
}

// ClearItems removes every item and leaves the cart row in place.
func (r *CartRepository) ClearItems(tx *gorm.DB, cartID uint) error {
	return tx.Unscoped().Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error
}
