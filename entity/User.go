package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"uniqueIndex"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"-"`

	Roles []Role `json:"roles" gorm:"many2many:user_roles;"`

	Cart   *Cart   `json:"-"`
	Orders []Order `json:"-"`
}
