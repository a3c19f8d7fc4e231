package services

import (
	"github.com/olvera93/FoodApp/entity"
	"github.com/olvera93/FoodApp/pkg/apperr"
	"github.com/olvera93/FoodApp/repository"
)

type CategoryService struct {
	Repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{Repo: repo}
}

type CategoryIn struct {
	Name string `json:"name" binding:"required"`
}

func (s *CategoryService) Create(in *CategoryIn) (*entity.Category, error) {
	c := entity.Category{Name: in.Name}
	if err := s.Repo.Create(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CategoryService) Update(id uint, in *CategoryIn) (*entity.Category, error) {
	c, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	c.Name = in.Name
	if err := s.Repo.Save(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) GetByID(id uint) (*entity.Category, error) {
	c, err := s.Repo.GetByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.NotFound("category not found")
		}
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) List() ([]entity.Category, error) {
	return s.Repo.List()
}

func (s *CategoryService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}
