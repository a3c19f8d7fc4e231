package services

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/olvera93/FoodApp/entity"
	"github.com/olvera93/FoodApp/pkg/apperr"
	"github.com/olvera93/FoodApp/repository"
)

// MenuService is the catalog collaborator: it resolves menu items and
// their current prices for the cart, and carries the admin CRUD.
type MenuService struct {
	Repo         *repository.MenuRepository
	CategoryRepo *repository.CategoryRepository
}

func NewMenuService(repo *repository.MenuRepository, catRepo *repository.CategoryRepository) *MenuService {
	return &MenuService{Repo: repo, CategoryRepo: catRepo}
}

type MenuIn struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	ImageURL    string          `json:"imageUrl"`
	CategoryID  uint            `json:"categoryId" binding:"required"`
}

func (s *MenuService) Create(in *MenuIn) (*entity.Menu, error) {
	if _, err := s.CategoryRepo.GetByID(in.CategoryID); err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.NotFound("category not found")
		}
		return nil, err
	}
	if in.Price.IsNegative() || in.Price.IsZero() {
		return nil, apperr.InvalidArgument("price must be positive")
	}

	m := entity.Menu{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		CategoryID:  in.CategoryID,
	}
	if err := s.Repo.Create(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

type MenuUpdateIn struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	ImageURL    *string          `json:"imageUrl"`
	CategoryID  *uint            `json:"categoryId"`
}

func (s *MenuService) Update(id uint, in *MenuUpdateIn) (*entity.Menu, error) {
	m, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if in.CategoryID != nil {
		if _, err := s.CategoryRepo.GetByID(*in.CategoryID); err != nil {
			if repository.IsNotFound(err) {
				return nil, apperr.NotFound("category not found")
			}
			return nil, err
		}
		m.CategoryID = *in.CategoryID
	}
	if in.Name != nil && *in.Name != "" {
		m.Name = *in.Name
	}
	if in.Description != nil && *in.Description != "" {
		m.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() || in.Price.IsZero() {
			return nil, apperr.InvalidArgument("price must be positive")
		}
		m.Price = *in.Price
	}
	if in.ImageURL != nil {
		m.ImageURL = *in.ImageURL
	}

	if err := s.Repo.Save(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MenuService) GetByID(id uint) (*entity.Menu, error) {
	m, err := s.Repo.GetByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.NotFound("menu item not found")
		}
		return nil, err
	}
	// newest reviews first
	sort.Slice(m.Reviews, func(i, j int) bool { return m.Reviews[i].ID > m.Reviews[j].ID })
	return m, nil
}

func (s *MenuService) List(categoryID *uint, search string) ([]entity.Menu, error) {
	return s.Repo.List(categoryID, search)
}

func (s *MenuService) Delete(id uint) error {
	if _, err := s.Repo.GetByID(id); err != nil {
		if repository.IsNotFound(err) {
			return apperr.NotFound("menu item not found")
		}
		return err
	}
	return s.Repo.Delete(id)
}
