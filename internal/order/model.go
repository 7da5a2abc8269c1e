package order

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/razeAb/resturant-system-sub001/internal/cart"
)

// Item is one order line as submitted to the kitchen. Field names follow
// the order wire contract.
type Item struct {
	Product    string          `json:"product"`
	Title      string          `json:"title"`
	Price      decimal.Decimal `json:"price"`
	Image      string          `json:"img"`
	Quantity   int             `json:"quantity"`
	IsWeighted bool            `json:"isWeighted"`
	Vegetables []string        `json:"vegetables"`
	Additions  []cart.Addition `json:"additions"`
	Comment    string          `json:"comment"`
}

type PaymentDetails struct {
	Method string `json:"method"`
}

const (
	PaymentCash = "Cash"
	PaymentVisa = "Visa"
	PaymentBit  = "Bit"
)

const (
	DeliveryPickup   = "Pickup"
	DeliveryDelivery = "Delivery"
	DeliveryEatIn    = "EatIn"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusReady     = "ready"
	StatusDelivered = "delivered"
	StatusCanceled  = "canceled"
)

// allowedTransitions is the staff dashboard's status flow. Delivered and
// canceled are terminal.
var allowedTransitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCanceled},
	StatusConfirmed: {StatusReady, StatusCanceled},
	StatusReady:     {StatusDelivered, StatusCanceled},
}

func CanTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Order struct {
	ID             string          `json:"id"`
	User           string          `json:"user,omitempty"`  // set for authenticated checkout
	Phone          string          `json:"phone,omitempty"` // set for guest checkout
	Items          []Item          `json:"items"`
	TotalPrice     decimal.Decimal `json:"totalPrice"`
	DeliveryOption string          `json:"deliveryOption"`
	Payment        PaymentDetails  `json:"paymentDetails"`
	Status         string          `json:"status"`
	CouponUsed     string          `json:"couponUsed,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}
