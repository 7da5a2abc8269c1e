package product

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Storage uploads product photos and returns their public URL.
type Storage interface {
	Upload(ctx context.Context, key string, contentType string, file multipart.File) (string, error)
}

type Service struct {
	repo    Repository
	storage Storage
}

func NewService(repo Repository, storage Storage) *Service {
	return &Service{repo: repo, storage: storage}
}

func validate(p *Product) error {
	if p.Title == "" {
		return errors.New("title is required")
	}
	if p.Category == "" {
		return errors.New("category is required")
	}
	if p.Price.LessThanOrEqual(decimal.Zero) {
		return errors.New("price must be positive")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, p *Product) error {
	if err := validate(p); err != nil {
		return err
	}
	p.Available = true
	return s.repo.Create(ctx, p)
}

func (s *Service) Update(ctx context.Context, p *Product) error {
	if err := validate(p); err != nil {
		return err
	}
	return s.repo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Get(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) SetAvailability(ctx context.Context, id string, available bool) error {
	return s.repo.SetAvailability(ctx, id, available)
}

// Menu returns available products grouped by category, in category order.
type MenuSection struct {
	Category string     `json:"category"`
	Products []*Product `json:"products"`
}

func (s *Service) Menu(ctx context.Context) ([]MenuSection, error) {
	products, err := s.repo.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}

	var sections []MenuSection
	index := map[string]int{}
	for _, p := range products {
		i, ok := index[p.Category]
		if !ok {
			i = len(sections)
			index[p.Category] = i
			sections = append(sections, MenuSection{Category: p.Category})
		}
		sections[i].Products = append(sections[i].Products, p)
	}
	return sections, nil
}

func (s *Service) ListAll(ctx context.Context) ([]*Product, error) {
	return s.repo.ListAll(ctx)
}

var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// UploadImage stores a product photo and records its public URL.
func (s *Service) UploadImage(
	ctx context.Context,
	id string,
	file multipart.File,
	filename string,
	contentType string,
) (string, error) {

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExt[ext] {
		return "", errors.New("image type not allowed")
	}

	key := fmt.Sprintf("products/%s/%s%s", id, uuid.New().String(), ext)

	url, err := s.storage.Upload(ctx, key, contentType, file)
	if err != nil {
		return "", err
	}

	if err := s.repo.SetImage(ctx, id, url); err != nil {
		return "", err
	}
	return url, nil
}
