package order

import (
	"context"
	"log"
	"time"

	"github.com/razeAb/resturant-system-sub001/internal/cart"
)

// Loyalty mutates the customer's reward counters. Called only from the
// checkout path, never from eligibility evaluation.
type Loyalty interface {
	RecordOrder(ctx context.Context, userID string) error
	MarkDrinkCouponUsed(ctx context.Context, userID string) error
	ResetLoyalty(ctx context.Context, userID string) error
}

type Service struct {
	repo    Repository
	carts   *cart.Store
	loyalty Loyalty
}

func NewService(repo Repository, carts *cart.Store, loyalty Loyalty) *Service {
	return &Service{repo: repo, carts: carts, loyalty: loyalty}
}

type CheckoutInput struct {
	SessionKey     string
	UserID         string // empty for guest checkout
	Phone          string // required for guest checkout
	DeliveryOption string
	PaymentMethod  string
}

// build assembles the order payload from the session cart. Lines failing
// the product-id or quantity checks are silently dropped; the total still
// reflects the whole cart, which is the price the shopper saw.
func (s *Service) build(in CheckoutInput) (*Order, *cart.Cart, error) {
	c := s.carts.Get(in.SessionKey)
	if c.Empty() {
		return nil, nil, ErrNoItems
	}

	items := make([]Item, 0, len(c.Lines()))
	for _, l := range c.Lines() {
		items = append(items, Item{
			Product:    l.ProductRef,
			Title:      l.Title,
			Price:      l.UnitPrice,
			Image:      l.Image,
			Quantity:   l.Quantity,
			IsWeighted: l.Weighted,
			Vegetables: l.Vegetables,
			Additions:  l.Additions,
			Comment:    l.Comment,
		})
	}

	o := &Order{
		User:           in.UserID,
		Phone:          in.Phone,
		Items:          FilterItems(items),
		TotalPrice:     c.Total(),
		DeliveryOption: in.DeliveryOption,
		Payment:        PaymentDetails{Method: in.PaymentMethod},
		Status:         StatusPending,
		CreatedAt:      time.Now(),
	}
	if coupon := c.Coupon(); coupon.State == cart.CouponApplied {
		o.CouponUsed = string(coupon.Reward)
	}

	if err := Validate(o); err != nil {
		return nil, nil, err
	}
	return o, c, nil
}

// Checkout persists the order and only then applies the local side
// effects: loyalty counters and cart teardown. A failed submission leaves
// the cart and profile untouched.
func (s *Service) Checkout(ctx context.Context, in CheckoutInput) (*Order, error) {
	o, c, err := s.build(in)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	if o.User != "" && s.loyalty != nil {
		s.applyLoyalty(ctx, o)
	}

	c.Clear()
	s.carts.Drop(in.SessionKey)
	return o, nil
}

func (s *Service) applyLoyalty(ctx context.Context, o *Order) {
	if err := s.loyalty.RecordOrder(ctx, o.User); err != nil {
		log.Printf("loyalty: record order for %s: %v", o.User, err)
	}

	switch o.CouponUsed {
	case string(cart.RewardDrink):
		if err := s.loyalty.MarkDrinkCouponUsed(ctx, o.User); err != nil {
			log.Printf("loyalty: mark drink coupon for %s: %v", o.User, err)
		}
	case string(cart.RewardSide):
		if err := s.loyalty.ResetLoyalty(ctx, o.User); err != nil {
			log.Printf("loyalty: reset counters for %s: %v", o.User, err)
		}
	}
}

// WhatsAppCheckout validates the same payload but hands the order to the
// shopper as a pre-filled wa.me link instead of persisting it. The
// restaurant receives it in the chat; the backend never stores it.
func (s *Service) WhatsAppCheckout(in CheckoutInput, businessPhone string) (string, error) {
	o, c, err := s.build(in)
	if err != nil {
		return "", err
	}

	link := DeepLink(o, businessPhone)

	c.Clear()
	s.carts.Drop(in.SessionKey)
	return link, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, status string) ([]*Order, error) {
	return s.repo.List(ctx, status)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]*Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

// UpdateStatus enforces the dashboard's transition rules.
func (s *Service) UpdateStatus(ctx context.Context, id string, status string) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanTransition(o.Status, status) {
		return nil, ErrBadTransition
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	o.Status = status
	return o, nil
}
