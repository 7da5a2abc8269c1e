package auth

import (
	"context"
	"errors"
	"testing"
)

// unreachableUserRepository simulates a database that is down: every lookup
// fails with a transport error.
type unreachableUserRepository struct {
	*InMemoryUserRepository
	err error
}

func (r *unreachableUserRepository) ExistsByEmail(email string) (bool, error) {
	return false, r.err
}

func TestPasswordIsHashedBeforeSaving(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	password := "Password@123"

	_, err := service.Register("Test User", "test@example.com", "0512345678", password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := repo.users["test@example.com"]
	if user == nil {
		t.Fatalf("user not found")
	}

	if user.Password == password {
		t.Fatalf("password was stored in plain text")
	}
	if user.Role != RoleCustomer {
		t.Errorf("expected CUSTOMER role, got %s", user.Role)
	}
}

func TestRegister_LookupFailureIsNotTreatedAsNewEmail(t *testing.T) {
	dbDown := errors.New("connection refused")
	repo := &unreachableUserRepository{
		InMemoryUserRepository: NewInMemoryUserRepository(),
		err:                    dbDown,
	}
	service := NewService(repo)

	_, err := service.Register("Test User", "test@example.com", "", "Password@123")
	if !errors.Is(err, dbDown) {
		t.Fatalf("expected the lookup error, got %v", err)
	}
	if len(repo.users) != 0 {
		t.Error("expected no user saved when the uniqueness check fails")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	service.Register("Test User", "test@example.com", "", "Password@123")

	if _, err := service.Login("test@example.com", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestProfile_ReflectsLoyaltyCounters(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)
	ctx := context.Background()

	user, _ := service.Register("Test User", "test@example.com", "", "Password@123")

	for i := 0; i < 6; i++ {
		if err := service.RecordOrder(ctx, user.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	profile, err := service.Profile(ctx, user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.OrderCount != 6 {
		t.Errorf("expected order count 6, got %d", profile.OrderCount)
	}
	if profile.UsedDrinkCoupon {
		t.Error("expected drink coupon unused")
	}

	service.MarkDrinkCouponUsed(ctx, user.ID)
	profile, _ = service.Profile(ctx, user.ID)
	if !profile.UsedDrinkCoupon {
		t.Error("expected drink coupon marked used")
	}

	service.ResetLoyalty(ctx, user.ID)
	profile, _ = service.Profile(ctx, user.ID)
	if profile.OrderCount != 0 || profile.UsedDrinkCoupon {
		t.Errorf("expected counters reset, got %+v", profile)
	}
}
