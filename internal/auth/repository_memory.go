package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type InMemoryUserRepository struct {
	users map[string]*User // keyed by email
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users: make(map[string]*User),
	}
}

func (r *InMemoryUserRepository) Save(user *User) error {
	// Generate UUID if not already set
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.users[user.Email] = user
	return nil
}

func (r *InMemoryUserRepository) ExistsByEmail(email string) (bool, error) {
	_, exists := r.users[email]
	return exists, nil
}

func (r *InMemoryUserRepository) FindByEmail(email string) (*User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, errors.New("user not found")
	}
	return user, nil
}

func (r *InMemoryUserRepository) FindByID(_ context.Context, id string) (*User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errors.New("user not found")
}

func (r *InMemoryUserRepository) IncrementOrderCount(ctx context.Context, userID string) error {
	u, err := r.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	u.OrderCount++
	return nil
}

func (r *InMemoryUserRepository) SetDrinkCouponUsed(ctx context.Context, userID string, used bool) error {
	u, err := r.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	u.UsedDrinkCoupon = used
	return nil
}

func (r *InMemoryUserRepository) ResetLoyalty(ctx context.Context, userID string) error {
	u, err := r.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	u.OrderCount = 0
	u.UsedDrinkCoupon = false
	return nil
}
