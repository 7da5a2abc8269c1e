package auth

import "context"

// UserRepository defines the data-access contract.
// Service depends ONLY on this interface.
type UserRepository interface {
	Save(user *User) error
	ExistsByEmail(email string) (bool, error)
	FindByEmail(email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)

	// Loyalty counters, mutated from the checkout path only.
	IncrementOrderCount(ctx context.Context, userID string) error
	SetDrinkCouponUsed(ctx context.Context, userID string, used bool) error
	ResetLoyalty(ctx context.Context, userID string) error
}
