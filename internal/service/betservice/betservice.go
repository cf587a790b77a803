package betservice

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vkarpale/wagerhall/internal/bonusqueue"
	"github.com/vkarpale/wagerhall/internal/domain"
	"github.com/vkarpale/wagerhall/internal/game"
	"github.com/vkarpale/wagerhall/internal/pg"
	betrepo "github.com/vkarpale/wagerhall/internal/repo/bet-repo"
)

//go:generate mockgen -source=betservice.go -destination=betservice_mock.go -package=betservice

type UserRepo interface {
	GetForUpdate(ctx context.Context, id string) (*domain.User, error)
	AdjustBalance(ctx context.Context, id string, delta decimal.Decimal) (decimal.Decimal, error)
}

type BetRepo interface {
	Create(ctx context.Context, bet *domain.Bet) (*domain.Bet, error)
	ListByUser(ctx context.Context, userID string, f betrepo.Filter) ([]domain.Bet, error)
	CountByUser(ctx context.Context, userID string, f betrepo.Filter) (int, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
}

type Queue interface {
	Enqueue(e bonusqueue.Event)
}

var (
	ErrInvalidAmount       = errors.New("invalid bet amount")
	ErrUserNotFound        = errors.New("user not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// globalRand draws from the shared, lock-protected math/rand source.
type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }

type Service struct {
	userRepo  UserRepo
	betRepo   BetRepo
	txnRepo   TransactionRepo
	txManager pg.TXManager
	queue     Queue
	rng       game.Rand
}

func New(userRepo UserRepo, betRepo BetRepo, txnRepo TransactionRepo, txManager pg.TXManager, queue Queue) *Service {
	return &Service{
		userRepo:  userRepo,
		betRepo:   betRepo,
		txnRepo:   txnRepo,
		txManager: txManager,
		queue:     queue,
		rng:       globalRand{},
	}
}

// WithRand replaces the draw source, used by tests for deterministic replay.
func (s *Service) WithRand(rng game.Rand) *Service {
	s.rng = rng
	return s
}

// PlaceBet runs the whole settlement as one unit of work: balance check, draw,
// bet row, stake debit and win credit commit together or not at all. The
// account row is locked first, so two concurrent bets on one account cannot
// both pass the sufficiency check against a stale balance.
func (s *Service) PlaceBet(ctx context.Context, userID string, amount decimal.Decimal, gameType string, details json.RawMessage) (*domain.Bet, *game.Result, decimal.Decimal, error) {
	if !amount.IsPositive() {
		return nil, nil, decimal.Zero, ErrInvalidAmount
	}

	var (
		bet     *domain.Bet
		result  *game.Result
		balance decimal.Decimal
	)

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}
		if user.Balance.LessThan(amount) {
			return ErrInsufficientBalance
		}

		result, err = game.Evaluate(gameType, details, amount, s.rng)
		if err != nil {
			return err
		}

		status := domain.BetStatusLost
		if result.Won {
			status = domain.BetStatusWon
		}
		bet, err = s.betRepo.Create(ctx, &domain.Bet{
			UserID:     userID,
			Amount:     amount,
			GameType:   gameType,
			BetDetails: details,
			Outcome:    result.Outcome,
			Payout:     result.Payout,
			Status:     status,
		})
		if err != nil {
			return err
		}

		balance, err = s.userRepo.AdjustBalance(ctx, userID, amount.Neg())
		if err != nil {
			return err
		}
		_, err = s.txnRepo.Create(ctx, &domain.Transaction{
			UserID:      userID,
			Amount:      amount.Neg(),
			Type:        domain.TxnTypeBet,
			Status:      domain.TxnStatusCompleted,
			Description: "Bet on " + gameType,
		})
		if err != nil {
			return err
		}

		if result.Payout.IsPositive() {
			balance, err = s.userRepo.AdjustBalance(ctx, userID, result.Payout)
			if err != nil {
				return err
			}
			_, err = s.txnRepo.Create(ctx, &domain.Transaction{
				UserID:      userID,
				Amount:      result.Payout,
				Type:        domain.TxnTypeWin,
				Status:      domain.TxnStatusCompleted,
				Description: "Win from " + gameType,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't place bet", zap.String("userID", userID), zap.Error(err))
		return nil, nil, decimal.Zero, err
	}

	// wagering progress is best-effort and deliberately outside the unit of
	// work: its failure never rolls back a settled bet
	s.queue.Enqueue(bonusqueue.Event{Kind: bonusqueue.KindWager, UserID: userID, Amount: amount})

	zap.L().Info("bet settled",
		zap.String("userID", userID),
		zap.String("gameType", gameType),
		zap.String("stake", amount.String()),
		zap.Bool("won", result.Won))
	return bet, result, balance, nil
}

func (s *Service) Games() []game.Info {
	return game.List()
}

func (s *Service) ListBets(ctx context.Context, userID string, f betrepo.Filter) ([]domain.Bet, int, error) {
	total, err := s.betRepo.CountByUser(ctx, userID, f)
	if err != nil {
		zap.L().Error("can't count bets", zap.Error(err))
		return nil, 0, err
	}
	bets, err := s.betRepo.ListByUser(ctx, userID, f)
	if err != nil {
		zap.L().Error("can't list bets", zap.Error(err))
		return nil, 0, err
	}
	return bets, total, nil
}
