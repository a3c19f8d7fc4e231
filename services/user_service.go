package services

import (
	"github.com/olvera93/FoodApp/entity"
	"github.com/olvera93/FoodApp/pkg/apperr"
	"github.com/olvera93/FoodApp/repository"
)

type UserService struct {
	Repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{Repo: repo}
}

func (s *UserService) Me(userID uint) (*entity.User, error) {
	user, err := s.Repo.GetByID(userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}
	return user, nil
}

type UpdateMeIn struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

func (s *UserService) UpdateMe(userID uint, in *UpdateMeIn) (*entity.User, error) {
	user, err := s.Me(userID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil && *in.Name != "" {
		user.Name = *in.Name
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Address != nil {
		user.Address = *in.Address
	}

	if err := s.Repo.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) List() ([]entity.User, error) {
	return s.Repo.List()
}
