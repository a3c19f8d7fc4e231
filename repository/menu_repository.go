package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/olvera93/FoodApp/entity"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

func (r *MenuRepository) GetByID(id uint) (*entity.Menu, error) {
	var m entity.Menu
	if err := r.DB.Preload("Reviews").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// GetBasics loads a menu row without relations, for price lookups.
func (r *MenuRepository) GetBasics(id uint) (*entity.Menu, error) {
	var m entity.Menu
	if err := r.DB.Select("id", "name", "price", "category_id").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// List applies the two explicit filters: category equality and a
// case-insensitive match over name/description.
func (r *MenuRepository) List(categoryID *uint, search string) ([]entity.Menu, error) {
	q := r.DB.Model(&entity.Menu{})
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	if s := strings.TrimSpace(search); s != "" {
		term := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", term, term)
	}

	var menus []entity.Menu
	err := q.Order("id DESC").Find(&menus).Error
	return menus, err
}

func (r *MenuRepository) Create(m *entity.Menu) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) Save(m *entity.Menu) error {
	return r.DB.Save(m).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Menu{}, id).Error
}
