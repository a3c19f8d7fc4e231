package repository

import (
	"gorm.io/gorm"

	"github.com/olvera93/FoodApp/entity"
)

type NotificationRepository struct{ DB *gorm.DB }

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Create(n *entity.Notification) error {
	return r.DB.Create(n).Error
}

func (r *NotificationRepository) List() ([]entity.Notification, error) {
	var rows []entity.Notification
	err := r.DB.Order("id DESC").Find(&rows).Error
	return rows, err
}
