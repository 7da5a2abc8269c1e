package order

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
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

func (r *PostgresRepository) Create(ctx context.Context, o *Order) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}

	items, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}

	var user interface{}
	if o.User != "" {
		user = o.User
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO orders (id, user_id, phone, items, total_price, delivery_option, payment_method, status, coupon_used, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, o.ID, user, o.Phone, items, o.TotalPrice.String(),
		o.DeliveryOption, o.Payment.Method, o.Status, o.CouponUsed, o.CreatedAt,
	)
	return err
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Order, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, phone, items, total_price::text, delivery_option, payment_method, status, coupon_used, created_at
		FROM orders WHERE id=$1
	`, id)

	o, err := scanOrder(row)
	if err != nil {
		return nil, ErrNotFound
	}
	return o, nil
}

func (r *PostgresRepository) List(ctx context.Context, status string) ([]*Order, error) {
	query := `
		SELECT id, user_id, phone, items, total_price::text, delivery_option, payment_method, status, coupon_used, created_at
		FROM orders
	`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status=$1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, phone, items, total_price::text, delivery_option, payment_method, status, coupon_used, created_at
		FROM orders WHERE user_id=$1 ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	tag, err := r.db.Exec(ctx, `UPDATE orders SET status=$1 WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func collectOrders(rows pgx.Rows) ([]*Order, error) {
	var orders []*Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func scanOrder(row pgx.Row) (*Order, error) {
	var (
		o     Order
		user  *string
		items []byte
		total string
	)

	if err := row.Scan(
		&o.ID, &user, &o.Phone, &items, &total, &o.DeliveryOption,
		&o.Payment.Method, &o.Status, &o.CouponUsed, &o.CreatedAt,
	); err != nil {
		return nil, err
	}

	if user != nil {
		o.User = *user
	}
	// NUMERIC round-trips as text so the total never passes through a float.
	var err error
	o.TotalPrice, err = decimal.NewFromString(total)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, err
	}
	return &o, nil
}
