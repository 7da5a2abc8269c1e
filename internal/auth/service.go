package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/razeAb/resturant-system-sub001/internal/cart"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Service struct {
	repo UserRepository
}

func NewService(repo UserRepository) *Service {
	return &Service{repo: repo}
}

// REGISTER
func (s *Service) Register(name, email, phone, password string) (*User, error) {
	if name == "" || email == "" || password == "" {
		return nil, errors.New("missing required fields")
	}

	exists, err := s.repo.ExistsByEmail(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.New("email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return nil, err
	}

	user := &User{
		Name:     name,
		Email:    email,
		Phone:    phone,
		Password: string(hashedPassword),
		Role:     RoleCustomer,
	}

	if err := s.repo.Save(user); err != nil {
		return nil, err
	}

	return user, nil
}

// LOGIN
func (s *Service) Login(email, password string) (*User, error) {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword(
		[]byte(user.Password),
		[]byte(password),
	)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// --------------------------------------------------
// Loyalty profile (cart.ProfileSource)
// --------------------------------------------------

func (s *Service) Profile(ctx context.Context, userID string) (cart.Profile, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return cart.Profile{}, err
	}
	return cart.Profile{
		OrderCount:      user.OrderCount,
		UsedDrinkCoupon: user.UsedDrinkCoupon,
	}, nil
}

// --------------------------------------------------
// Loyalty mutations (order.Loyalty), checkout path only
// --------------------------------------------------

func (s *Service) RecordOrder(ctx context.Context, userID string) error {
	return s.repo.IncrementOrderCount(ctx, userID)
}

func (s *Service) MarkDrinkCouponUsed(ctx context.Context, userID string) error {
	return s.repo.SetDrinkCouponUsed(ctx, userID, true)
}

func (s *Service) ResetLoyalty(ctx context.Context, userID string) error {
	return s.repo.ResetLoyalty(ctx, userID)
}
