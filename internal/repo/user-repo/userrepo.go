package userrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vkarpale/wagerhall/internal/domain"
	"github.com/vkarpale/wagerhall/internal/pg"
)

var ErrNotFound = errors.New("account not found")

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

const userColumns = `id, username, email, password_hash, balance, role, is_verified, last_login_at, created_at`

func (r *Repository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.Balance, &user.Role, &user.IsVerified, &user.LastLoginAt, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't scan user row", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (username, email, password_hash, role)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + userColumns
	role := user.Role
	if role == "" {
		role = domain.RoleUser
	}
	row := r.db.QueryRow(ctx, query, user.Username, user.Email, user.PasswordHash, role)
	created, err := r.scanUser(row)
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *Repository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, username))
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

// GetForUpdate locks the account row for the duration of the surrounding
// transaction, serializing concurrent units of work on the same account.
func (r *Repository) GetForUpdate(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 FOR UPDATE`
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

// AdjustBalance applies a relative delta in a single statement. Application
// code never writes an absolute balance computed from a prior read.
func (r *Repository) AdjustBalance(ctx context.Context, id string, delta decimal.Decimal) (decimal.Decimal, error) {
	query := `
        UPDATE users
        SET balance = balance + $1
        WHERE id = $2
        RETURNING balance
    `
	var balance decimal.Decimal
	err := r.db.QueryRow(ctx, query, delta, id).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, ErrNotFound
	}
	if err != nil {
		zap.L().Error("can't adjust balance", zap.String("userID", id), zap.Error(err))
		return decimal.Zero, err
	}
	return balance, nil
}

func (r *Repository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE users SET last_login_at = $1 WHERE id = $2`
	if _, err := r.db.Exec(ctx, query, at, id); err != nil {
		zap.L().Error("can't update last login", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateProfile(ctx context.Context, id, username, email string) (*domain.User, error) {
	query := `
        UPDATE users
        SET username = $1, email = $2
        WHERE id = $3
        RETURNING ` + userColumns
	user, err := r.scanUser(r.db.QueryRow(ctx, query, username, email, id))
	if err != nil {
		zap.L().Error("can't update profile", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}
