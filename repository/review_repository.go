package repository

import (
	"gorm.io/gorm"

	"github.com/olvera93/FoodApp/entity"
)

type ReviewRepository struct{ DB *gorm.DB }

func NewReviewRepository(db *gorm.DB) *ReviewRepository { return &ReviewRepository{DB: db} }

func (r *ReviewRepository) Create(rev *entity.Review) error {
	return r.DB.Create(rev).Error
}

func (r *ReviewRepository) ListByMenu(menuID uint) ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.DB.Where("menu_id = ?", menuID).Order("id DESC").Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) ExistsForOrderMenu(userID, orderID, menuID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Review{}).
		Where("user_id = ? AND order_id = ? AND menu_id = ?", userID, orderID, menuID).
		Count(&count).Error
	return count > 0, err
}
