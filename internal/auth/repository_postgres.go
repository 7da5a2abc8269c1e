package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Save(user *User) error {
	// Generate UUID if not already set
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	query := `
		INSERT INTO users (id, name, email, phone, password, role)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(context.Background(), query,
		user.ID, user.Name, user.Email, user.Phone, user.Password, user.Role,
	)
	return err
}

func (r *PostgresUserRepository) ExistsByEmail(email string) (bool, error) {
	query := `SELECT 1 FROM users WHERE email=$1 LIMIT 1`
	row := r.db.QueryRow(context.Background(), query, email)

	var exists int
	if err := row.Scan(&exists); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *PostgresUserRepository) FindByEmail(email string) (*User, error) {
	query := `
		SELECT id, name, email, phone, password, role, order_count, used_drink_coupon
		FROM users WHERE email=$1
	`
	row := r.db.QueryRow(context.Background(), query, email)

	user := &User{}
	if err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.Phone, &user.Password,
		&user.Role, &user.OrderCount, &user.UsedDrinkCoupon,
	); err != nil {
		return nil, errors.New("user not found")
	}
	return user, nil
}

func (r *PostgresUserRepository) FindByID(ctx context.Context, id string) (*User, error) {
	query := `
		SELECT id, name, email, phone, password, role, order_count, used_drink_coupon
		FROM users WHERE id=$1
	`
	row := r.db.QueryRow(ctx, query, id)

	user := &User{}
	if err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.Phone, &user.Password,
		&user.Role, &user.OrderCount, &user.UsedDrinkCoupon,
	); err != nil {
		return nil, errors.New("user not found")
	}
	return user, nil
}

// --------------------------------------------------
// Loyalty counters
// --------------------------------------------------

func (r *PostgresUserRepository) IncrementOrderCount(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET order_count = order_count + 1 WHERE id = $1
	`, userID)
	return err
}

func (r *PostgresUserRepository) SetDrinkCouponUsed(ctx context.Context, userID string, used bool) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET used_drink_coupon = $1 WHERE id = $2
	`, used, userID)
	return err
}

func (r *PostgresUserRepository) ResetLoyalty(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET order_count = 0, used_drink_coupon = FALSE WHERE id = $1
	`, userID)
	return err
}
