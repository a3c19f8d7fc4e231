package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/olvera93/FoodApp/entity"
	"github.com/olvera93/FoodApp/gateway"
	"github.com/olvera93/FoodApp/pkg/apperr"
	"github.com/olvera93/FoodApp/repository"
)

// PaymentService requests payment authorizations from the gateway and
// reconciles final payment outcomes back into order state.
type PaymentService struct {
	DB        *gorm.DB
	Repo      *repository.PaymentRepository
	OrderRepo *repository.OrderRepository
	UserRepo  *repository.UserRepository
	Gateway   gateway.PaymentGateway
	Notifier  *NotificationService

	Currency string
}

func NewPaymentService(
	db *gorm.DB,
	repo *repository.PaymentRepository,
	orderRepo *repository.OrderRepository,
	userRepo *repository.UserRepository,
	gw gateway.PaymentGateway,
	notifier *NotificationService,
	currency string,
) *PaymentService {
	return &PaymentService{
		DB: db, Repo: repo, OrderRepo: orderRepo, UserRepo: userRepo,
		Gateway: gw, Notifier: notifier, Currency: currency,
	}
}

// InitializePayment validates the client-submitted amount against the
// order total and asks the gateway for an authorization handle. The
// comparison is exact: any non-zero delta is rejected, which blocks
// client-side amount tampering.
func (s *PaymentService) InitializePayment(ctx context.Context, orderID uint, amount *decimal.Decimal) (string, error) {
	order, err := s.OrderRepo.GetByID(orderID)
	if err != nil {
		if repository.IsNotFound(err) {
			return "", apperr.NotFound("order not found")
		}
		return "", err
	}

	if order.PaymentStatus == entity.PaymentCompleted {
		return "", apperr.Conflict("payment already made for this order")
	}
	if amount == nil {
		return "", apperr.InvalidArgument("amount is required")
	}
	if !order.TotalAmount.Equal(*amount) {
		return "", apperr.InvalidArgument("payment amount does not tally, please contact customer support")
	}

	minorUnits := amount.Mul(decimal.NewFromInt(100)).IntPart()
	handle, err := s.Gateway.CreateAuthorization(ctx, minorUnits, s.Currency, map[string]string{
		"orderId": fmt.Sprintf("%d", orderID),
	})
	if err != nil {
		if errors.Is(err, apperr.ErrProcessing) {
			return "", err
		}
		return "", apperr.Processing("error creating payment transaction: %v", err)
	}
	return handle, nil
}

// UpdatePaymentForOrder records one reconciliation outcome. The payment
// row is always appended (the log is append-only), but an order whose
// payment status is already terminal is never re-transitioned and never
// re-notified: retried gateway callbacks are answered with a conflict.
func (s *PaymentService) UpdatePaymentForOrder(orderID uint, amount decimal.Decimal, transactionID string, success bool, failureReason string) error {
	var (
		order       entity.Order
		alreadyDone bool
		paidAt      = time.Now()
	)

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		locked, err := s.OrderRepo.LockByID(tx, orderID)
		if err != nil {
			if repository.IsNotFound(err) {
				return apperr.NotFound("order not found")
			}
			return err
		}
		order = *locked

		row := entity.Payment{
			Amount:        amount,
			Gateway:       entity.GatewayStripe,
			TransactionID: transactionID,
			Success:       success,
			PaymentDate:   paidAt,
			OrderID:       order.ID,
		}
		if !success {
			row.FailureReason = failureReason
		}
		if err := s.Repo.Create(tx, &row); err != nil {
			return err
		}

		if order.PaymentStatus.Terminal() {
			alreadyDone = true
			return nil
		}

		if success {
			locked.PaymentStatus = entity.PaymentCompleted
			locked.OrderStatus = entity.OrderConfirmed
		} else {
			locked.PaymentStatus = entity.PaymentFailed
			locked.OrderStatus = entity.OrderCancelled
		}
		return s.OrderRepo.Save(tx, locked)
	})
	if err != nil {
		return err
	}

	if alreadyDone {
		log.Printf("payment: duplicate callback for order %d (tx %s), state already %s",
			orderID, transactionID, order.PaymentStatus)
		return apperr.Conflict("payment for order %d already %s", orderID, order.PaymentStatus)
	}

	customer, err := s.UserRepo.GetByID(order.UserID)
	if err != nil {
		// The reconciliation itself committed; only the receipt is lost.
		log.Printf("payment: load customer for order %d failed: %v", orderID, err)
		return nil
	}

	if success {
		s.Notifier.Dispatch(NotificationIn{
			Recipient: customer.Email,
			Subject:   fmt.Sprintf("Payment Successful - Order #%d", order.ID),
			Body: fmt.Sprintf(
				"<p>Hi %s,</p><p>Your payment of $%s for order #%d succeeded.</p><p>Transaction: %s<br>Date: %s</p>",
				customer.Name, amount.StringFixed(2), order.ID,
				transactionID, paidAt.Format("Jan 02, 2006 03:04 PM"),
			),
			IsHTML: true,
		})
	} else {
		s.Notifier.Dispatch(NotificationIn{
			Recipient: customer.Email,
			Subject:   fmt.Sprintf("Payment Failed - Order #%d", order.ID),
			Body: fmt.Sprintf(
				"<p>Hi %s,</p><p>Your payment of $%s for order #%d failed.</p><p>Reason: %s</p>",
				customer.Name, amount.StringFixed(2), order.ID, failureReason,
			),
			IsHTML: true,
		})
	}

	return nil
}

func (s *PaymentService) GetAllPayments() ([]entity.Payment, error) {
	return s.Repo.ListAll()
}

func (s *PaymentService) GetPaymentByID(id uint) (*entity.Payment, error) {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.NotFound("payment not found")
		}
		return nil, err
	}
	return p, nil
}
