package order

import (
	"errors"
	"regexp"
)

var (
	ErrInvalidPhone    = errors.New("phone must match 05XXXXXXXX")
	ErrNoItems         = errors.New("order has no valid items")
	ErrInvalidDelivery = errors.New("invalid delivery option")
	ErrInvalidPayment  = errors.New("invalid payment method")
	ErrNoIdentity      = errors.New("either user or phone is required")
)

var (
	phonePattern     = regexp.MustCompile(`^05\d{8}$`)
	productIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)
)

func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

func ValidProductID(id string) bool {
	return productIDPattern.MatchString(id)
}

// FilterItems silently drops lines that fail the product-id format or
// quantity check. The remaining payload is what gets submitted.
func FilterItems(items []Item) []Item {
	valid := make([]Item, 0, len(items))
	for _, it := range items {
		if !ValidProductID(it.Product) {
			continue
		}
		if it.Quantity <= 0 {
			continue
		}
		valid = append(valid, it)
	}
	return valid
}

// Validate blocks submission on any hard error; no partial submit.
// Items are assumed to be already filtered.
func Validate(o *Order) error {
	if o.User == "" && o.Phone == "" {
		return ErrNoIdentity
	}
	if o.User == "" && !ValidPhone(o.Phone) {
		return ErrInvalidPhone
	}
	if len(o.Items) == 0 {
		return ErrNoItems
	}

	switch o.DeliveryOption {
	case DeliveryPickup, DeliveryDelivery, DeliveryEatIn:
	default:
		return ErrInvalidDelivery
	}

	switch o.Payment.Method {
	case PaymentCash, PaymentVisa, PaymentBit:
	default:
		return ErrInvalidPayment
	}
	return nil
}
