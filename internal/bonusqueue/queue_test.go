package bonusqueue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/vkarpale/wagerhall/internal/domain"
)

func TestQueueEnqueueDropsWhenFull(t *testing.T) {
	queue := NewQueue(1)

	queue.Enqueue(Event{Kind: KindWager, UserID: "u1", Amount: decimal.NewFromInt(10)})
	// does not block even though the buffer is full
	queue.Enqueue(Event{Kind: KindWager, UserID: "u2", Amount: decimal.NewFromInt(20)})

	first := <-queue.Events()
	assert.Equal(t, "u1", first.UserID)

	select {
	case e := <-queue.Events():
		t.Fatalf("expected second event to be dropped, got %+v", e)
	default:
	}
}

func TestWorkerDispatchesEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	bonuses := NewMockBonusService(ctrl)

	var wg sync.WaitGroup
	wg.Add(3)

	bonuses.EXPECT().SignupBonus(gomock.Any(), "u1").
		DoAndReturn(func(ctx context.Context, userID string) (*domain.Bonus, error) {
			wg.Done()
			return nil, nil
		})
	bonuses.EXPECT().UpdateWageringProgress(gomock.Any(), "u1", gomock.Any()).
		DoAndReturn(func(ctx context.Context, userID string, amount decimal.Decimal) error {
			assert.True(t, amount.Equal(decimal.NewFromInt(50)))
			wg.Done()
			return nil
		})
	bonuses.EXPECT().DepositBonus(gomock.Any(), "u1", gomock.Any()).
		DoAndReturn(func(ctx context.Context, userID string, amount decimal.Decimal) (*domain.Bonus, error) {
			wg.Done()
			return nil, nil
		})

	queue := NewQueue(10)
	worker := NewWorker(queue, bonuses, 2)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	worker.Start(ctx)

	queue.Enqueue(Event{Kind: KindSignup, UserID: "u1"})
	queue.Enqueue(Event{Kind: KindWager, UserID: "u1", Amount: decimal.NewFromInt(50)})
	queue.Enqueue(Event{Kind: KindDeposit, UserID: "u1", Amount: decimal.NewFromInt(500)})

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not process all events in time")
	}
}

func TestWorkerSwallowsHandlerErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	bonuses := NewMockBonusService(ctrl)

	var wg sync.WaitGroup
	wg.Add(2)

	// the first event fails, the second must still be processed
	bonuses.EXPECT().UpdateWageringProgress(gomock.Any(), "u1", gomock.Any()).
		DoAndReturn(func(ctx context.Context, userID string, amount decimal.Decimal) error {
			wg.Done()
			return assert.AnError
		})
	bonuses.EXPECT().UpdateWageringProgress(gomock.Any(), "u2", gomock.Any()).
		DoAndReturn(func(ctx context.Context, userID string, amount decimal.Decimal) error {
			wg.Done()
			return nil
		})

	queue := NewQueue(10)
	worker := NewWorker(queue, bonuses, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	worker.Start(ctx)

	queue.Enqueue(Event{Kind: KindWager, UserID: "u1", Amount: decimal.NewFromInt(1)})
	queue.Enqueue(Event{Kind: KindWager, UserID: "u2", Amount: decimal.NewFromInt(1)})

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not process events in time")
	}
}
