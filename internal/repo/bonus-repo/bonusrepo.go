package bonusrepo

import (
	"context"

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

const bonusColumns = `id, user_id, amount, type, description, status, wagering_requirement, wagering_remaining, expires_at, created_at`

func (r *Repository) Create(ctx context.Context, bonus *domain.Bonus) (*domain.Bonus, error) {
	query := `
        INSERT INTO bonuses (user_id, amount, type, description, status, wagering_requirement, wagering_remaining, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at
    `
	row := r.db.QueryRow(ctx, query, bonus.UserID, bonus.Amount, bonus.Type, bonus.Description,
		bonus.Status, bonus.WageringRequirement, bonus.WageringRemaining, bonus.ExpiresAt)
	if err := row.Scan(&bonus.ID, &bonus.CreatedAt); err != nil {
		zap.L().Error("can't create bonus", zap.Error(err))
		return nil, err
	}
	return bonus, nil
}

// FindActiveForUpdate returns the account's consumable bonuses oldest-first,
// locked for the surrounding transaction. Expiry is evaluated here, not by a
// background sweep: rows past expires_at are simply excluded.
func (r *Repository) FindActiveForUpdate(ctx context.Context, userID string) ([]domain.Bonus, error) {
	query := `
        SELECT ` + bonusColumns + `
        FROM bonuses
        WHERE user_id = $1 AND status = 'active' AND wagering_remaining > 0 AND expires_at > NOW()
        ORDER BY created_at ASC
        FOR UPDATE
    `
	return r.list(ctx, query, userID)
}

func (r *Repository) ListActiveByUser(ctx context.Context, userID string) ([]domain.Bonus, error) {
	query := `
        SELECT ` + bonusColumns + `
        FROM bonuses
        WHERE user_id = $1 AND status = 'active' AND expires_at > NOW()
        ORDER BY created_at DESC
    `
	return r.list(ctx, query, userID)
}

// ConsumeWagering decrements a bonus's remaining requirement and flips it to
// used in the same statement once the remainder reaches zero.
func (r *Repository) ConsumeWagering(ctx context.Context, bonusID string, amount decimal.Decimal) (*domain.Bonus, error) {
	query := `
        UPDATE bonuses
        SET wagering_remaining = wagering_remaining - $1,
            status = CASE WHEN wagering_remaining - $1 <= 0 THEN 'used' ELSE status END
        WHERE id = $2
        RETURNING ` + bonusColumns
	var bonus domain.Bonus
	row := r.db.QueryRow(ctx, query, amount, bonusID)
	err := row.Scan(&bonus.ID, &bonus.UserID, &bonus.Amount, &bonus.Type, &bonus.Description,
		&bonus.Status, &bonus.WageringRequirement, &bonus.WageringRemaining, &bonus.ExpiresAt, &bonus.CreatedAt)
	if err != nil {
		zap.L().Error("can't consume wagering", zap.String("bonusID", bonusID), zap.Error(err))
		return nil, err
	}
	return &bonus, nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Bonus, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't query bonuses", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bonuses []domain.Bonus
	for rows.Next() {
		var bonus domain.Bonus
		err := rows.Scan(&bonus.ID, &bonus.UserID, &bonus.Amount, &bonus.Type, &bonus.Description,
			&bonus.Status, &bonus.WageringRequirement, &bonus.WageringRemaining, &bonus.ExpiresAt, &bonus.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan bonus row", zap.Error(err))
			return nil, err
		}
		bonuses = append(bonuses, bonus)
	}
	return bonuses, nil
}
