package bonusservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vkarpale/wagerhall/internal/cache"
	"github.com/vkarpale/wagerhall/internal/domain"
	"github.com/vkarpale/wagerhall/internal/pg"
)

//go:generate mockgen -source=bonusservice.go -destination=bonusservice_mock.go -package=bonusservice

type BonusRepo interface {
	Create(ctx context.Context, bonus *domain.Bonus) (*domain.Bonus, error)
	FindActiveForUpdate(ctx context.Context, userID string) ([]domain.Bonus, error)
	ConsumeWagering(ctx context.Context, bonusID string, amount decimal.Decimal) (*domain.Bonus, error)
	ListActiveByUser(ctx context.Context, userID string) ([]domain.Bonus, error)
}

type UserRepo interface {
	GetForUpdate(ctx context.Context, id string) (*domain.User, error)
	AdjustBalance(ctx context.Context, id string, delta decimal.Decimal) (decimal.Decimal, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
}

type IdempotencyStore interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidAmount    = errors.New("invalid bonus amount")
	ErrInvalidType      = errors.New("invalid bonus type")
	ErrDuplicateRequest = errors.New("duplicate bonus request")
)

var (
	defaultWageringMultiplier = decimal.NewFromInt(10)
	defaultTTL                = 7 * 24 * time.Hour

	signupBonusAmount = decimal.NewFromInt(10)

	depositBonusRate       = decimal.NewFromFloat(0.5)
	depositBonusCap        = decimal.NewFromInt(100)
	depositBonusMultiplier = decimal.NewFromInt(15)
	depositBonusTTL        = 14 * 24 * time.Hour
)

type Service struct {
	bonusRepo BonusRepo
	userRepo  UserRepo
	txnRepo   TransactionRepo
	txManager pg.TXManager
	idem      IdempotencyStore
}

func New(bonusRepo BonusRepo, userRepo UserRepo, txnRepo TransactionRepo, txManager pg.TXManager, idem IdempotencyStore) *Service {
	return &Service{
		bonusRepo: bonusRepo,
		userRepo:  userRepo,
		txnRepo:   txnRepo,
		txManager: txManager,
		idem:      idem,
	}
}

// IssueParams describes a bonus grant. Zero WageringMultiplier and TTL fall
// back to 10x and 7 days. IdempotencyKey, when set, guarantees at most one
// grant per key across concurrent duplicate calls.
type IssueParams struct {
	UserID             string
	Amount             decimal.Decimal
	Type               string
	Description        string
	WageringMultiplier decimal.Decimal
	TTL                time.Duration
	IdempotencyKey     string
}

// Issue credits a bonus: the bonus row, the balance credit and the ledger
// entry commit as one unit of work.
func (s *Service) Issue(ctx context.Context, p IssueParams) (*domain.Bonus, error) {
	if !p.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	switch p.Type {
	case domain.BonusTypeSignup, domain.BonusTypeDeposit, domain.BonusTypeReferral, domain.BonusTypeLoyalty:
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidType, p.Type)
	}

	idemKey := ""
	if p.IdempotencyKey != "" {
		idemKey = fmt.Sprintf(cache.KeyBonusIssue, p.IdempotencyKey)
		ok, err := s.idem.Acquire(ctx, idemKey, cache.TTLBonusIssue)
		if err != nil {
			zap.L().Error("idempotency check failed", zap.Error(err))
			return nil, err
		}
		if !ok {
			return nil, ErrDuplicateRequest
		}
	}

	multiplier := p.WageringMultiplier
	if multiplier.IsZero() {
		multiplier = defaultWageringMultiplier
	}
	ttl := p.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}
	description := p.Description
	if description == "" {
		description = capitalize(p.Type) + " bonus"
	}

	requirement := p.Amount.Mul(multiplier).Round(2)
	bonus := &domain.Bonus{
		UserID:              p.UserID,
		Amount:              p.Amount,
		Type:                p.Type,
		Description:         description,
		Status:              domain.BonusStatusActive,
		WageringRequirement: requirement,
		WageringRemaining:   requirement,
		ExpiresAt:           time.Now().Add(ttl),
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.GetForUpdate(ctx, p.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}

		if _, err := s.bonusRepo.Create(ctx, bonus); err != nil {
			return err
		}
		if _, err := s.userRepo.AdjustBalance(ctx, p.UserID, p.Amount); err != nil {
			return err
		}
		_, err = s.txnRepo.Create(ctx, &domain.Transaction{
			UserID:      p.UserID,
			Amount:      p.Amount,
			Type:        domain.TxnTypeBonus,
			Status:      domain.TxnStatusCompleted,
			Description: capitalize(p.Type) + " bonus credited",
		})
		return err
	})
	if err != nil {
		// Nothing was credited, so the key must not block a retry.
		if idemKey != "" {
			if relErr := s.idem.Release(ctx, idemKey); relErr != nil {
				zap.L().Error("can't release idempotency key", zap.Error(relErr))
			}
		}
		zap.L().Error("can't issue bonus", zap.String("userID", p.UserID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("bonus issued",
		zap.String("userID", p.UserID),
		zap.String("type", p.Type),
		zap.String("amount", p.Amount.String()))
	return bonus, nil
}

// SignupBonus grants the welcome bonus issued after registration.
func (s *Service) SignupBonus(ctx context.Context, userID string) (*domain.Bonus, error) {
	return s.Issue(ctx, IssueParams{
		UserID:      userID,
		Amount:      signupBonusAmount,
		Type:        domain.BonusTypeSignup,
		Description: "Welcome bonus",
	})
}

// DepositBonus grants 50% of the deposit capped at 100, with a stricter 15x
// wagering requirement over 14 days.
func (s *Service) DepositBonus(ctx context.Context, userID string, depositAmount decimal.Decimal) (*domain.Bonus, error) {
	amount := depositAmount.Mul(depositBonusRate)
	if amount.GreaterThan(depositBonusCap) {
		amount = depositBonusCap
	}
	return s.Issue(ctx, IssueParams{
		UserID:             userID,
		Amount:             amount.Round(2),
		Type:               domain.BonusTypeDeposit,
		Description:        "50% deposit bonus",
		WageringMultiplier: depositBonusMultiplier,
		TTL:                depositBonusTTL,
	})
}

// UpdateWageringProgress consumes wagerAmount across the account's active,
// unexpired bonuses oldest-first. A bonus flips to used the moment its
// remaining requirement reaches zero. No active bonuses makes this a no-op.
func (s *Service) UpdateWageringProgress(ctx context.Context, userID string, wagerAmount decimal.Decimal) error {
	if !wagerAmount.IsPositive() {
		return nil
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		bonuses, err := s.bonusRepo.FindActiveForUpdate(ctx, userID)
		if err != nil {
			return err
		}

		remaining := wagerAmount
		for _, bonus := range bonuses {
			if !remaining.IsPositive() {
				break
			}
			consume := decimal.Min(remaining, bonus.WageringRemaining)
			if _, err := s.bonusRepo.ConsumeWagering(ctx, bonus.ID, consume); err != nil {
				return err
			}
			remaining = remaining.Sub(consume)
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't update wagering progress", zap.String("userID", userID), zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) ListActive(ctx context.Context, userID string) ([]domain.Bonus, error) {
	bonuses, err := s.bonusRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		zap.L().Error("can't list bonuses", zap.Error(err))
		return nil, err
	}
	return bonuses, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
