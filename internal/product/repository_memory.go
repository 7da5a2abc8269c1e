package product

import (
	"context"
	"sort"
	"time"
)

// InMemoryRepository backs tests and local runs without postgres.
type InMemoryRepository struct {
	products map[string]*Product
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{products: make(map[string]*Product)}
}

func (r *InMemoryRepository) Create(_ context.Context, p *Product) error {
	if p.ID == "" {
		p.ID = NewID()
	}
	p.CreatedAt = time.Now()

	stored := *p
	r.products[p.ID] = &stored
	return nil
}

func (r *InMemoryRepository) Update(_ context.Context, p *Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return ErrNotFound
	}
	stored := *p
	r.products[p.ID] = &stored
	return nil
}

func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *InMemoryRepository) GetByID(_ context.Context, id string) (*Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *InMemoryRepository) ListAvailable(ctx context.Context) ([]*Product, error) {
	all, _ := r.ListAll(ctx)
	available := all[:0]
	for _, p := range all {
		if p.Available {
			available = append(available, p)
		}
	}
	return available, nil
}

func (r *InMemoryRepository) ListAll(_ context.Context) ([]*Product, error) {
	out := make([]*Product, 0, len(r.products))
	for _, p := range r.products {
		copied := *p
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Title < out[j].Title
	})
	return out, nil
}

func (r *InMemoryRepository) SetAvailability(_ context.Context, id string, available bool) error {
	p, ok := r.products[id]
	if !ok {
		return ErrNotFound
	}
	p.Available = available
	return nil
}

func (r *InMemoryRepository) SetImage(_ context.Context, id string, url string) error {
	p, ok := r.products[id]
	if !ok {
		return ErrNotFound
	}
	p.Image = url
	return nil
}
