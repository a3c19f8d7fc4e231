package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/olvera93/FoodApp/entity"
	"github.com/olvera93/FoodApp/pkg/apperr"
	"github.com/olvera93/FoodApp/repository"
)

// OrderService converts carts into immutable orders and answers order
// queries. Checkout runs as one transaction: snapshot the cart, persist
// the order and its frozen items, clear the cart. A concurrent second
// checkout serializes behind the cart row lock and then fails on the
// empty cart.
type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	UserRepo *repository.UserRepository
	Notifier *NotificationService

	PaymentLinkBase string
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	userRepo *repository.UserRepository,
	notifier *NotificationService,
	paymentLinkBase string,
) *OrderService {
	return &OrderService{
		DB: db, Repo: repo, CartRepo: cartRepo, UserRepo: userRepo,
		Notifier: notifier, PaymentLinkBase: paymentLinkBase,
	}
}

// PlaceOrderFromCart freezes the caller's cart into a new order. The
// committed prices are the cart's snapshot prices; the catalog is not
// consulted again, so later price changes never affect an in-flight cart.
func (s *OrderService) PlaceOrderFromCart(userID uint) (*entity.Order, error) {
	customer, err := s.UserRepo.GetByID(userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}
	if customer.Address == "" {
		return nil, apperr.PreconditionFailed("delivery address not present for the user")
	}

	var order entity.Order
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.LockCart(tx, userID)
		if err != nil {
			if repository.IsNotFound(err) {
				return apperr.NotFound("cart not found for the user")
			}
			return err
		}

		items, err := s.CartRepo.GetItems(tx, cart.ID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return apperr.InvalidArgument("cart is empty")
		}

		total := decimal.Zero
		for _, it := range items {
			total = total.Add(it.SubTotal)
		}

		order = entity.Order{
			OrderDate:     time.Now(),
			TotalAmount:   total,
			OrderStatus:   entity.OrderInitialized,
			PaymentStatus: entity.PaymentPending,
			UserID:        userID,
		}
		if err := s.Repo.Create(tx, &order); err != nil {
			return err
		}

		for _, it := range items {
			frozen := entity.OrderItem{
				OrderID:      order.ID,
				MenuID:       it.MenuID,
				Quantity:     it.Quantity,
				PricePerUnit: it.PricePerUnit,
				SubTotal:     it.SubTotal,
			}
			if err := s.Repo.CreateItem(tx, &frozen); err != nil {
				return err
			}
		}

		return s.CartRepo.ClearItems(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}

	// Outside the transaction on purpose: a failed mail must not roll
	// back the checkout.
	s.Notifier.Dispatch(NotificationIn{
		Recipient: customer.Email,
		Subject:   fmt.Sprintf("Order Received - Order #%d", order.ID),
		Body: fmt.Sprintf(
			"<p>Hi %s,</p><p>Your order #%d for $%s has been received.</p><p><a href=%q>Pay now</a> to confirm your order.</p>",
			customer.Name, order.ID, order.TotalAmount.StringFixed(2),
			fmt.Sprintf("%s?orderId=%d", s.PaymentLinkBase, order.ID),
		),
		IsHTML: true,
	})

	return &order, nil
}

func (s *OrderService) GetOrderByID(id uint) (*entity.Order, error) {
	order, err := s.Repo.GetByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}
	return order, nil
}

type OrderPage struct {
	Orders []entity.Order `json:"orders"`
	Total  int64          `json:"total"`
	Page   int            `json:"page"`
	Size   int            `json:"size"`
}

func (s *OrderService) GetAllOrders(status *entity.OrderStatus, page, size int) (*OrderPage, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 || size > 100 {
		size = 20
	}
	orders, total, err := s.Repo.ListAll(status, page, size)
	if err != nil {
		return nil, err
	}
	return &OrderPage{Orders: orders, Total: total, Page: page, Size: size}, nil
}

func (s *OrderService) GetMyOrders(userID uint) ([]entity.Order, error) {
	return s.Repo.ListForUser(userID)
}

// UpdateOrderStatus applies the administrative transitions:
// CONFIRMED -> ON_THE_WAY -> DELIVERED, plus forcing FAILED. Payment
// outcomes (CONFIRMED, CANCELLED) are reserved for reconciliation and
// rejected here.
func (s *OrderService) UpdateOrderStatus(orderID uint, to entity.OrderStatus) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		order, err := s.Repo.LockByID(tx, orderID)
		if err != nil {
			if repository.IsNotFound(err) {
				return apperr.NotFound("order not found")
			}
			return err
		}

		switch to {
		case entity.OrderOnTheWay:
			return s.guardedTransition(tx, order.ID, entity.OrderConfirmed, to)
		case entity.OrderDelivered:
			return s.guardedTransition(tx, order.ID, entity.OrderOnTheWay, to)
		case entity.OrderFailed:
			order.OrderStatus = entity.OrderFailed
			return s.Repo.Save(tx, order)
		default:
			return apperr.InvalidArgument("status %s cannot be set administratively", to)
		}
	})
}

func (s *OrderService) guardedTransition(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) error {
	affected, err := s.Repo.UpdateStatusGuard(tx, orderID, from, to)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.Conflict("order is not %s", from)
	}
	return nil
}
