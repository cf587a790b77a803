package betrepo

import (
	"context"
	"fmt"

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

// Filter narrows bet listings. Zero values mean "no filter".
type Filter struct {
	Status   string
	GameType string
	Limit    int
	Offset   int
}

func (r *Repository) Create(ctx context.Context, bet *domain.Bet) (*domain.Bet, error) {
	query := `
        INSERT INTO bets (user_id, amount, game_type, bet_details, outcome, payout, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at
    `
	row := r.db.QueryRow(ctx, query, bet.UserID, bet.Amount, bet.GameType,
		bet.BetDetails, bet.Outcome, bet.Payout, bet.Status)
	if err := row.Scan(&bet.ID, &bet.CreatedAt); err != nil {
		zap.L().Error("can't create bet", zap.Error(err))
		return nil, err
	}
	return bet, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID string, f Filter) ([]domain.Bet, error) {
	query := `
        SELECT id, user_id, amount, game_type, bet_details, outcome, payout, status, created_at
        FROM bets
        WHERE user_id = $1
    `
	args := []any{userID}
	query, args = appendFilters(query, args, f)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list bets", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bets []domain.Bet
	for rows.Next() {
		var bet domain.Bet
		err := rows.Scan(&bet.ID, &bet.UserID, &bet.Amount, &bet.GameType,
			&bet.BetDetails, &bet.Outcome, &bet.Payout, &bet.Status, &bet.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan bet row", zap.Error(err))
			return nil, err
		}
		bets = append(bets, bet)
	}
	return bets, nil
}

func (r *Repository) CountByUser(ctx context.Context, userID string, f Filter) (int, error) {
	query := `SELECT COUNT(*) FROM bets WHERE user_id = $1`
	args := []any{userID}
	query, args = appendFilters(query, args, f)

	var total int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		zap.L().Error("can't count bets", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func appendFilters(query string, args []any, f Filter) (string, []any) {
	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if f.GameType != "" {
		args = append(args, f.GameType)
		query += fmt.Sprintf(" AND game_type = $%d", len(args))
	}
	return query, args
}
