package bonusqueue

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vkarpale/wagerhall/internal/domain"
)

const handleTimeout = 30 * time.Second

//go:generate mockgen -source=worker.go -destination=worker_mock.go -package=bonusqueue

// BonusService is the slice of the bonus engine the worker drives.
type BonusService interface {
	SignupBonus(ctx context.Context, userID string) (*domain.Bonus, error)
	DepositBonus(ctx context.Context, userID string, depositAmount decimal.Decimal) (*domain.Bonus, error)
	UpdateWageringProgress(ctx context.Context, userID string, wagerAmount decimal.Decimal) error
}

type Worker struct {
	queue   *Queue
	bonuses BonusService
	pool    WorkerPoolI
}

func NewWorker(queue *Queue, bonuses BonusService, poolSize int) *Worker {
	return &Worker{
		queue:   queue,
		bonuses: bonuses,
		pool:    NewWorkerPool(poolSize),
	}
}

func (w *Worker) Start(ctx context.Context) {
	zap.L().Info("Bonus worker started")
	go w.run(ctx)
}

func (w *Worker) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping bonus worker")
			w.pool.Close()
			return
		case event := <-w.queue.Events():
			if err := w.pool.AddTask(ctx, func() error {
				return w.handle(event)
			}); err != nil {
				zap.L().Warn("can't schedule bonus event", zap.Error(err))
			}
		}
	}
}

// handle runs detached from the request that produced the event. The bonus
// service re-reads current state inside its own transaction, so events
// arriving after the triggering response has been sent are fine.
func (w *Worker) handle(event Event) error {
	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	switch event.Kind {
	case KindSignup:
		_, err := w.bonuses.SignupBonus(ctx, event.UserID)
		return err
	case KindWager:
		return w.bonuses.UpdateWageringProgress(ctx, event.UserID, event.Amount)
	case KindDeposit:
		_, err := w.bonuses.DepositBonus(ctx, event.UserID, event.Amount)
		return err
	default:
		return fmt.Errorf("unknown bonus event kind: %s", event.Kind)
	}
}
