package order

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("order not found")
	ErrBadTransition = errors.New("status transition not allowed")
)

// Repository defines all database operations for orders.
type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context, status string) ([]*Order, error)
	ListByUser(ctx context.Context, userID string) ([]*Order, error)
	UpdateStatus(ctx context.Context, id string, status string) error
}
