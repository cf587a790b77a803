// Package bonusqueue decouples bonus side effects from the request units of
// work that trigger them. Delivery is best-effort: events are attempted once
// and failures are only logged, never retried or surfaced to the caller.
package bonusqueue

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Kind string

const (
	KindSignup  Kind = "signup"
	KindWager   Kind = "wager"
	KindDeposit Kind = "deposit"
)

type Event struct {
	Kind   Kind
	UserID string
	Amount decimal.Decimal
}

type Queue struct {
	ch chan Event
}

func NewQueue(size int) *Queue {
	return &Queue{ch: make(chan Event, size)}
}

// Enqueue never blocks the caller. A full queue drops the event: wagering
// progress accuracy is secondary to settlement latency.
func (q *Queue) Enqueue(e Event) {
	select {
	case q.ch <- e:
	default:
		zap.L().Warn("bonus queue full, dropping event",
			zap.String("kind", string(e.Kind)), zap.String("userID", e.UserID))
	}
}

func (q *Queue) Events() <-chan Event {
	return q.ch
}
