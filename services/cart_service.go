package services

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/olvera93/FoodApp/entity"
	"github.com/olvera93/FoodApp/pkg/apperr"
	"github.com/olvera93/FoodApp/repository"
)

// CartService owns the customer's mutable pre-purchase selection. Every
// mutation locks the caller's cart row inside a transaction so rapid
// concurrent calls serialize instead of losing updates. The cart is
// always located by the caller's identity, never by a client-supplied id.
type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

type CartView struct {
	ID          uint              `json:"id"`
	Items       []entity.CartItem `json:"items"`
	TotalAmount decimal.Decimal   `json:"totalAmount"`
}

// AddItem puts qty units of a menu item into the caller's cart. The
// unit price is snapshotted from the catalog only when the row is first
// created; repeated adds merge into the existing row and keep the
// original snapshot.
func (s *CartService) AddItem(userID, menuID uint, quantity int) error {
	if quantity <= 0 {
		return apperr.InvalidArgument("quantity must be a positive integer")
	}

	menu, err := s.MenuRepo.GetBasics(menuID)
	if err != nil {
		if repository.IsNotFound(err) {
			return apperr.NotFound("menu item %d not found", menuID)
		}
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.LockOrCreateCart(tx, userID)
		if err != nil {
			return err
		}

		item, err := s.CartRepo.GetItemByMenu(tx, cart.ID, menuID)
		if err == nil {
			item.Quantity += quantity
			item.SubTotal = item.PricePerUnit.Mul(decimal.NewFromInt(int64(item.Quantity)))
			return s.CartRepo.SaveItem(tx, item)
		}
		if !repository.IsNotFound(err) {
			return err
		}

		row := entity.CartItem{
			CartID:       cart.ID,
			MenuID:       menu.ID,
			Quantity:     quantity,
			PricePerUnit: menu.Price,
			SubTotal:     menu.Price.Mul(decimal.NewFromInt(int64(quantity))),
		}
		return s.CartRepo.CreateItem(tx, &row)
	})
}

// IncrementItem bumps the matching cart line by one.
func (s *CartService) IncrementItem(userID, menuID uint) error {
	return s.adjustQuantity(userID, menuID, +1)
}

// DecrementItem lowers the matching cart line by one; reaching zero
// removes the line instead of keeping a non-positive quantity.
func (s *CartService) DecrementItem(userID, menuID uint) error {
	return s.adjustQuantity(userID, menuID, -1)
}

func (s *CartService) adjustQuantity(userID, menuID uint, delta int) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.LockCart(tx, userID)
		if err != nil {
			if repository.IsNotFound(err) {
				return apperr.NotFound("cart not found for user")
			}
			return err
		}

		item, err := s.CartRepo.GetItemByMenu(tx, cart.ID, menuID)
		if err != nil {
			if repository.IsNotFound(err) {
				return apperr.NotFound("menu item %d not in cart", menuID)
			}
			return err
		}

		item.Quantity += delta
		if item.Quantity <= 0 {
			return s.CartRepo.DeleteItem(tx, item.ID)
		}
		item.SubTotal = item.PricePerUnit.Mul(decimal.NewFromInt(int64(item.Quantity)))
		return s.CartRepo.SaveItem(tx, item)
	})
}

// RemoveItem deletes one cart line by its id. Lines belonging to another
// user's cart are reported as not found, identical to a missing line.
func (s *CartService) RemoveItem(userID, cartItemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.LockCart(tx, userID)
		if err != nil {
			if repository.IsNotFound(err) {
				return apperr.NotFound("cart not found for user")
			}
			return err
		}

		item, err := s.CartRepo.GetItemByID(tx, cartItemID)
		if err != nil {
			if repository.IsNotFound(err) {
				return apperr.NotFound("cart item %d not found", cartItemID)
			}
			return err
		}
		if item.CartID != cart.ID {
			return apperr.NotFound("cart item does not belong to this user's cart")
		}

		return s.CartRepo.DeleteItem(tx, item.ID)
	})
}

// Clear removes every item and keeps the empty cart row for reuse.
func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.LockCart(tx, userID)
		if err != nil {
			if repository.IsNotFound(err) {
				return apperr.NotFound("cart not found for user")
			}
			return err
		}
		return s.CartRepo.ClearItems(tx, cart.ID)
	})
}

// Get returns the cart with its computed total. Review data nested
// under the menu projection is stripped: it has no business here.
func (s *CartService) Get(userID uint) (*CartView, error) {
	cart, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.NotFound("cart not found for user")
		}
		return nil, err
	}

	total := decimal.Zero
	for i := range cart.Items {
		total = total.Add(cart.Items[i].SubTotal)
		cart.Items[i].Menu.Reviews = nil
	}

	return &CartView{ID: cart.ID, Items: cart.Items, TotalAmount: total}, nil
}
