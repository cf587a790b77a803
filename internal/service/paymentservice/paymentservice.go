package paymentservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vkarpale/wagerhall/internal/bonusqueue"
	"github.com/vkarpale/wagerhall/internal/cache"
	"github.com/vkarpale/wagerhall/internal/domain"
	"github.com/vkarpale/wagerhall/internal/gateway"
	"github.com/vkarpale/wagerhall/internal/pg"
	transactionrepo "github.com/vkarpale/wagerhall/internal/repo/transaction-repo"
	"github.com/vkarpale/wagerhall/pkg/validate"
)

//go:generate mockgen -source=paymentservice.go -destination=paymentservice_mock.go -package=paymentservice

type UserRepo interface {
	GetForUpdate(ctx context.Context, id string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	AdjustBalance(ctx context.Context, id string, delta decimal.Decimal) (decimal.Decimal, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
	ListByUser(ctx context.Context, userID string, f transactionrepo.Filter) ([]domain.Transaction, error)
	CountByUser(ctx context.Context, userID string, f transactionrepo.Filter) (int, error)
	SumCompletedByUser(ctx context.Context, userID string) (decimal.Decimal, error)
}

type Gateway interface {
	CreateOrder(ctx context.Context, amount decimal.Decimal, currency, receipt string) (*gateway.Order, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

type IdempotencyStore interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

type Queue interface {
	Enqueue(e bonusqueue.Event)
}

var (
	ErrAmountTooLow        = errors.New("amount below minimum")
	ErrUserNotFound        = errors.New("user not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidSignature    = errors.New("invalid payment signature")
	ErrDuplicateRequest    = errors.New("duplicate deposit confirmation")
	ErrInvalidCardNumber   = errors.New("invalid card number")
)

// minAmount is the floor for both deposits and withdrawals, in currency units.
var minAmount = decimal.NewFromInt(100)

const currency = "INR"

type Service struct {
	userRepo  UserRepo
	txnRepo   TransactionRepo
	gateway   Gateway
	idem      IdempotencyStore
	txManager pg.TXManager
	queue     Queue
}

func New(userRepo UserRepo, txnRepo TransactionRepo, gw Gateway, idem IdempotencyStore, txManager pg.TXManager, queue Queue) *Service {
	return &Service{
		userRepo:  userRepo,
		txnRepo:   txnRepo,
		gateway:   gw,
		idem:      idem,
		txManager: txManager,
		queue:     queue,
	}
}

// CreateDepositOrder registers a deposit intent with the payment provider.
// No ledger mutation happens until the provider confirms.
func (s *Service) CreateDepositOrder(ctx context.Context, userID string, amount decimal.Decimal) (*gateway.Order, error) {
	if amount.LessThan(minAmount) {
		return nil, ErrAmountTooLow
	}

	order, err := s.gateway.CreateOrder(ctx, amount, currency, depositReceipt(userID, time.Now()))
	if err != nil {
		zap.L().Error("can't create deposit order", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("deposit order created",
		zap.String("userID", userID), zap.String("orderID", order.ID))
	return order, nil
}

func depositReceipt(userID string, now time.Time) string {
	uid := userID
	if len(uid) > 8 {
		uid = uid[:8]
	}
	ts := strconv.FormatInt(now.Unix(), 10)
	if len(ts) > 6 {
		ts = ts[len(ts)-6:]
	}
	return fmt.Sprintf("dep_%s_%s", uid, ts)
}

type DepositConfirmation struct {
	OrderID   string
	PaymentID string
	Signature string
	Amount    decimal.Decimal
}

// ConfirmDeposit verifies the provider signature and credits the account. The
// ledger entry and the balance credit commit as one unit of work; the order id
// is claimed first so a duplicate callback cannot credit twice.
func (s *Service) ConfirmDeposit(ctx context.Context, userID string, conf DepositConfirmation) (*domain.Transaction, decimal.Decimal, error) {
	if !s.gateway.VerifySignature(conf.OrderID, conf.PaymentID, conf.Signature) {
		zap.L().Warn("deposit signature mismatch",
			zap.String("userID", userID), zap.String("orderID", conf.OrderID))
		return nil, decimal.Zero, ErrInvalidSignature
	}

	idemKey := fmt.Sprintf(cache.KeyDepositConfirm, conf.OrderID)
	ok, err := s.idem.Acquire(ctx, idemKey, cache.TTLDepositConfirm)
	if err != nil {
		zap.L().Error("idempotency check failed", zap.Error(err))
		return nil, decimal.Zero, err
	}
	if !ok {
		return nil, decimal.Zero, ErrDuplicateRequest
	}

	var (
		txn     *domain.Transaction
		balance decimal.Decimal
	)
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}

		txn, err = s.txnRepo.Create(ctx, &domain.Transaction{
			UserID:        userID,
			Amount:        conf.Amount,
			Type:          domain.TxnTypeDeposit,
			Status:        domain.TxnStatusCompleted,
			PaymentMethod: "razorpay",
			PaymentID:     conf.PaymentID,
			Description:   "Deposit via Razorpay",
		})
		if err != nil {
			return err
		}
		balance, err = s.userRepo.AdjustBalance(ctx, userID, conf.Amount)
		return err
	})
	if err != nil {
		// free the key so the provider's retry can succeed
		if relErr := s.idem.Release(ctx, idemKey); relErr != nil {
			zap.L().Error("can't release idempotency key", zap.Error(relErr))
		}
		zap.L().Error("can't confirm deposit", zap.String("userID", userID), zap.Error(err))
		return nil, decimal.Zero, err
	}

	// deposit bonus is best-effort, outside the unit of work
	s.queue.Enqueue(bonusqueue.Event{Kind: bonusqueue.KindDeposit, UserID: userID, Amount: conf.Amount})

	zap.L().Info("deposit confirmed",
		zap.String("userID", userID),
		zap.String("orderID", conf.OrderID),
		zap.String("amount", conf.Amount.String()))
	return txn, balance, nil
}

type PayoutDetails struct {
	Method     string
	CardNumber string
}

// RequestWithdrawal reserves funds: the balance debit and the pending ledger
// entry commit together. A withdrawal equal to the full balance succeeds and
// leaves the balance at exactly zero; actual payout runs out of band.
func (s *Service) RequestWithdrawal(ctx context.Context, userID string, amount decimal.Decimal, details PayoutDetails) (*domain.Transaction, decimal.Decimal, error) {
	if amount.LessThan(minAmount) {
		return nil, decimal.Zero, ErrAmountTooLow
	}
	if details.CardNumber != "" && !validate.IsCardNumber(details.CardNumber) {
		return nil, decimal.Zero, ErrInvalidCardNumber
	}

	var (
		txn     *domain.Transaction
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

		txn, err = s.txnRepo.Create(ctx, &domain.Transaction{
			UserID:        userID,
			Amount:        amount.Neg(),
			Type:          domain.TxnTypeWithdrawal,
			Status:        domain.TxnStatusPending,
			PaymentMethod: details.Method,
			Description:   "Withdrawal request",
		})
		if err != nil {
			return err
		}
		balance, err = s.userRepo.AdjustBalance(ctx, userID, amount.Neg())
		return err
	})
	if err != nil {
		zap.L().Error("can't request withdrawal", zap.String("userID", userID), zap.Error(err))
		return nil, decimal.Zero, err
	}

	zap.L().Info("withdrawal requested",
		zap.String("userID", userID), zap.String("amount", amount.String()))
	return txn, balance, nil
}

func (s *Service) ListTransactions(ctx context.Context, userID string, f transactionrepo.Filter) ([]domain.Transaction, int, error) {
	total, err := s.txnRepo.CountByUser(ctx, userID, f)
	if err != nil {
		zap.L().Error("can't count transactions", zap.Error(err))
		return nil, 0, err
	}
	txns, err := s.txnRepo.ListByUser(ctx, userID, f)
	if err != nil {
		zap.L().Error("can't list transactions", zap.Error(err))
		return nil, 0, err
	}
	return txns, total, nil
}

// AuditReport compares an account balance against the signed sum of its
// completed ledger entries.
type AuditReport struct {
	UserID          string          `json:"userId"`
	Balance         decimal.Decimal `json:"balance"`
	TransactionsSum decimal.Decimal `json:"transactionsSum"`
	Balanced        bool            `json:"balanced"`
}

// AuditBalance verifies the ledger audit invariant for one account.
func (s *Service) AuditBalance(ctx context.Context, userID string) (*AuditReport, error) {
	var (
		user *domain.User
		sum  decimal.Decimal
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = s.userRepo.FindByID(gCtx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		sum, err = s.txnRepo.SumCompletedByUser(gCtx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("can't audit balance", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return &AuditReport{
		UserID:          userID,
		Balance:         user.Balance,
		TransactionsSum: sum,
		Balanced:        user.Balance.Equal(sum),
	}, nil
}
