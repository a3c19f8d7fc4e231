package services

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/olvera93/FoodApp/configs"
	"github.com/olvera93/FoodApp/entity"
	"github.com/olvera93/FoodApp/mailer"
	"github.com/olvera93/FoodApp/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, configs.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, address string) *entity.User {
	t.Helper()
	u := entity.User{Name: "Test User", Email: email, Address: address, Password: "x"}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func seedMenu(t *testing.T, db *gorm.DB, name, price string) *entity.Menu {
	t.Helper()
	cat := entity.Category{Name: "Cat " + name}
	require.NoError(t, db.Create(&cat).Error)
	m := entity.Menu{Name: name, Description: name + " dish", Price: decimal.RequireFromString(price), CategoryID: cat.ID}
	require.NoError(t, db.Create(&m).Error)
	return &m
}

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// recordingMailer captures outbound mail; Err, when set, makes every
// send fail.
type recordingMailer struct {
	mu   sync.Mutex
	Err  error
	Sent []mailer.Message
}

func (m *recordingMailer) Send(msg mailer.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, msg)
	return nil
}

func (m *recordingMailer) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Sent)
}

func (m *recordingMailer) Last() mailer.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Sent[len(m.Sent)-1]
}

type authCall struct {
	AmountMinor int64
	Currency    string
	Metadata    map[string]string
}

// fakeGateway records authorization requests and returns a fixed handle.
type fakeGateway struct {
	Handle string
	Err    error
	Calls  []authCall
}

func (g *fakeGateway) CreateAuthorization(_ context.Context, amountMinor int64, currency string, metadata map[string]string) (string, error) {
	g.Calls = append(g.Calls, authCall{AmountMinor: amountMinor, Currency: currency, Metadata: metadata})
	if g.Err != nil {
		return "", g.Err
	}
	return g.Handle, nil
}

type fixture struct {
	DB       *gorm.DB
	Mailer   *recordingMailer
	Gateway  *fakeGateway
	Notifier *NotificationService

	Cart    *CartService
	Order   *OrderService
	Payment *PaymentService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)

	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	m := &recordingMailer{}
	gw := &fakeGateway{Handle: "cs_test_secret"}
	notifier := NewNotificationService(notificationRepo, m)

	return &fixture{
		DB:       db,
		Mailer:   m,
		Gateway:  gw,
		Notifier: notifier,
		Cart:     NewCartService(db, cartRepo, menuRepo),
		Order:    NewOrderService(db, orderRepo, cartRepo, userRepo, notifier, "http://localhost:3000/pay"),
		Payment:  NewPaymentService(db, paymentRepo, orderRepo, userRepo, gw, notifier, "usd"),
	}
}
