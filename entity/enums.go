package entity

type OrderStatus string

const (
	OrderInitialized OrderStatus = "INITIALIZED"
	OrderConfirmed   OrderStatus = "CONFIRMED"
	OrderOnTheWay    OrderStatus = "ON_THE_WAY"
	OrderDelivered   OrderStatus = "DELIVERED"
	OrderCancelled   OrderStatus = "CANCELLED"
	OrderFailed      OrderStatus = "FAILED"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
)

// Terminal reports whether the payment status can no longer change.
func (s PaymentStatus) Terminal() bool {
	return s == PaymentCompleted || s == PaymentFailed
}

type PaymentGateway string

const (
	GatewayStripe PaymentGateway = "STRIPE"
)

type NotificationType string

const (
	NotificationEmail NotificationType = "EMAIL"
)
