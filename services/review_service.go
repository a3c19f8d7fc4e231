package services

import (
	"github.com/olvera93/FoodApp/entity"
	"github.com/olvera93/FoodApp/pkg/apperr"
	"github.com/olvera93/FoodApp/repository"
)

type ReviewService struct {
	Repo      *repository.ReviewRepository
	OrderRepo *repository.OrderRepository
	MenuRepo  *repository.MenuRepository
}

func NewReviewService(repo *repository.ReviewRepository, orderRepo *repository.OrderRepository, menuRepo *repository.MenuRepository) *ReviewService {
	return &ReviewService{Repo: repo, OrderRepo: orderRepo, MenuRepo: menuRepo}
}

type ReviewIn struct {
	MenuID  uint   `json:"menuId" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// Create accepts a review only for menu items the caller actually
// received in a delivered order.
func (s *ReviewService) Create(userID uint, in *ReviewIn) (*entity.Review, error) {
	if in.Rating < 1 || in.Rating > 10 {
		return nil, apperr.InvalidArgument("rating must be between 1 and 10")
	}

	if _, err := s.MenuRepo.GetBasics(in.MenuID); err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.NotFound("menu item not found")
		}
		return nil, err
	}

	orderID, err := s.OrderRepo.HasDeliveredMenu(userID, in.MenuID)
	if err != nil {
		return nil, err
	}
	if orderID == 0 {
		return nil, apperr.PreconditionFailed("you can only review items from delivered orders")
	}

	exists, err := s.Repo.ExistsForOrderMenu(userID, orderID, in.MenuID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("you already reviewed this item")
	}

	review := entity.Review{
		Rating:  in.Rating,
		Comment: in.Comment,
		UserID:  userID,
		MenuID:  in.MenuID,
		OrderID: orderID,
	}
	if err := s.Repo.Create(&review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *ReviewService) ListByMenu(menuID uint) ([]entity.Review, error) {
	return s.Repo.ListByMenu(menuID)
}
