package product

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, p *Product) error {
	if p.ID == "" {
		p.ID = NewID()
	}

	options, err := json.Marshal(map[string]interface{}{
		"vegetables": p.Vegetables,
		"additions":  p.Additions,
	})
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO products (id, title, description, price, category, is_weighted, options, img, available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, p.ID, p.Title, p.Description, p.Price.String(), p.Category,
		p.Weighted, options, p.Image, p.Available,
	)
	return err
}

func (r *PostgresRepository) Update(ctx context.Context, p *Product) error {
	options, err := json.Marshal(map[string]interface{}{
		"vegetables": p.Vegetables,
		"additions":  p.Additions,
	})
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE products
		SET title=$1, description=$2, price=$3, category=$4, is_weighted=$5, options=$6, available=$7
		WHERE id=$8
	`, p.Title, p.Description, p.Price.String(), p.Category,
		p.Weighted, options, p.Available, p.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Product, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, title, description, price::text, category, is_weighted, options, img, available, created_at
		FROM products WHERE id=$1
	`, id)

	p, err := scanProduct(row)
	if err != nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (r *PostgresRepository) ListAvailable(ctx context.Context) ([]*Product, error) {
	return r.list(ctx, `
		SELECT id, title, description, price::text, category, is_weighted, options, img, available, created_at
		FROM products WHERE available = TRUE ORDER BY category, title
	`)
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]*Product, error) {
	return r.list(ctx, `
		SELECT id, title, description, price::text, category, is_weighted, options, img, available, created_at
		FROM products ORDER BY category, title
	`)
}

func (r *PostgresRepository) list(ctx context.Context, query string) ([]*Product, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE products SET available=$1 WHERE id=$2`, available, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) SetImage(ctx context.Context, id string, url string) error {
	tag, err := r.db.Exec(ctx, `UPDATE products SET img=$1 WHERE id=$2`, url, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (*Product, error) {
	var (
		p       Product
		price   string
		options []byte
	)

	if err := row.Scan(
		&p.ID, &p.Title, &p.Description, &price, &p.Category,
		&p.Weighted, &options, &p.Image, &p.Available, &p.CreatedAt,
	); err != nil {
		return nil, err
	}

	// NUMERIC round-trips as text so the price never passes through a float.
	var err error
	p.Price, err = decimal.NewFromString(price)
	if err != nil {
		return nil, err
	}

	var opts struct {
		Vegetables []string `json:"vegetables"`
		Additions  []Option `json:"additions"`
	}
	if len(options) > 0 {
		if err := json.Unmarshal(options, &opts); err != nil {
			return nil, err
		}
	}
	p.Vegetables = opts.Vegetables
	p.Additions = opts.Additions

	return &p, nil
}
