package transactionrepo

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vkarpale/wagerhall/internal/domain"
	"github.com/vkarpale/wagerhall/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

type Filter struct {
	Type   string
	Limit  int
	Offset int
}

func (r *Repository) Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	query := `
        INSERT INTO transactions (user_id, amount, type, status, payment_method, payment_id, description)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at
    `
	row := r.db.QueryRow(ctx, query, txn.UserID, txn.Amount, txn.Type, txn.Status,
		txn.PaymentMethod, txn.PaymentID, txn.Description)
	if err := row.Scan(&txn.ID, &txn.CreatedAt); err != nil {
		zap.L().Error("can't create transaction", zap.Error(err))
		return nil, err
	}
	return txn, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID string, f Filter) ([]domain.Transaction, error) {
	query := `
        SELECT id, user_id, amount, type, status, payment_method, payment_id, description, created_at
        FROM transactions
        WHERE user_id = $1
    `
	args := []any{userID}
	if f.Type != "" {
		args = append(args, f.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var txn domain.Transaction
		err := rows.Scan(&txn.ID, &txn.UserID, &txn.Amount, &txn.Type, &txn.Status,
			&txn.PaymentMethod, &txn.PaymentID, &txn.Description, &txn.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func (r *Repository) CountByUser(ctx context.Context, userID string, f Filter) (int, error) {
	query := `SELECT COUNT(*) FROM transactions WHERE user_id = $1`
	args := []any{userID}
	if f.Type != "" {
		args = append(args, f.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}

	var total int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		zap.L().Error("can't count transactions", zap.Error(err))
		return 0, err
	}
	return total, nil
}

// SumCompletedByUser returns the signed sum of completed ledger entries for an
// account. For a consistent ledger it equals the account balance.
func (r *Repository) SumCompletedByUser(ctx context.Context, userID string) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM transactions
        WHERE user_id = $1 AND status = 'completed'
    `
	var sum decimal.Decimal
	if err := r.db.QueryRow(ctx, query, userID).Scan(&sum); err != nil {
		zap.L().Error("can't sum transactions", zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}
