package product

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("product not found")

// Repository defines all database operations for the catalog.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Product, error)
	ListAvailable(ctx context.Context) ([]*Product, error)
	ListAll(ctx context.Context) ([]*Product, error)
	SetAvailability(ctx context.Context, id string, available bool) error
	SetImage(ctx context.Context, id string, url string) error
}
