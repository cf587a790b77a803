package betservice

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/vkarpale/wagerhall/internal/bonusqueue"
	"github.com/vkarpale/wagerhall/internal/domain"
	"github.com/vkarpale/wagerhall/internal/game"
	"github.com/vkarpale/wagerhall/internal/pg"
	betrepo "github.com/vkarpale/wagerhall/internal/repo/bet-repo"
)

func NewMock(t *testing.T) (*Service, *MockUserRepo, *MockBetRepo, *MockTransactionRepo, *pg.MockTXManager, *MockQueue) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockUserRepo(ctrl)
	betRepo := NewMockBetRepo(ctrl)
	txnRepo := NewMockTransactionRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	queue := NewMockQueue(ctrl)
	service := New(userRepo, betRepo, txnRepo, txManager, queue)
	return service, userRepo, betRepo, txnRepo, txManager, queue
}

// fixedRand replays a scripted sequence of draws.
type fixedRand struct {
	values []int
	pos    int
}

func (r *fixedRand) Intn(n int) int {
	v := r.values[r.pos%len(r.values)]
	r.pos++
	return v % n
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestPlaceBetWin(t *testing.T) {
	service, userRepo, betRepo, txnRepo, txManager, queue := NewMock(t)
	userID := "7a4b0000-0000-0000-0000-000000000001"
	stake := decimal.NewFromInt(100)
	details := json.RawMessage(`{"choice":"heads"}`)

	// draw 0 lands heads, so a heads bet pays 195.00
	service.WithRand(&fixedRand{values: []int{0}})

	passthroughTx(txManager)
	userRepo.EXPECT().GetForUpdate(gomock.Any(), userID).
		Return(&domain.User{ID: userID, Balance: decimal.NewFromInt(500)}, nil)
	betRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, bet *domain.Bet) (*domain.Bet, error) {
			assert.Equal(t, domain.BetStatusWon, bet.Status)
			assert.True(t, bet.Payout.Equal(decimal.NewFromInt(195)))
			bet.ID = "bet-1"
			return bet, nil
		})
	gomock.InOrder(
		userRepo.EXPECT().AdjustBalance(gomock.Any(), userID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, delta decimal.Decimal) (decimal.Decimal, error) {
				assert.True(t, delta.Equal(decimal.NewFromInt(-100)))
				return decimal.NewFromInt(400), nil
			}),
		userRepo.EXPECT().AdjustBalance(gomock.Any(), userID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, delta decimal.Decimal) (decimal.Decimal, error) {
				assert.True(t, delta.Equal(decimal.NewFromInt(195)))
				return decimal.NewFromInt(595), nil
			}),
	)
	txnRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
			assert.Equal(t, domain.TxnTypeBet, txn.Type)
			return txn, nil
		})
	txnRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
			assert.Equal(t, domain.TxnTypeWin, txn.Type)
			assert.True(t, txn.Amount.Equal(decimal.NewFromInt(195)))
			return txn, nil
		})
	queue.EXPECT().Enqueue(bonusqueue.Event{Kind: bonusqueue.KindWager, UserID: userID, Amount: stake})

	bet, result, balance, err := service.PlaceBet(context.Background(), userID, stake, game.TypeCoinFlip, details)
	assert.NoError(t, err)
	assert.Equal(t, "bet-1", bet.ID)
	assert.True(t, result.Won)
	assert.True(t, balance.Equal(decimal.NewFromInt(595)))
}

func TestPlaceBetLoss(t *testing.T) {
	service, userRepo, betRepo, txnRepo, txManager, queue := NewMock(t)
	userID := "7a4b0000-0000-0000-0000-000000000002"
	stake := decimal.NewFromInt(50)

	// draw 1 lands tails against a heads bet
	service.WithRand(&fixedRand{values: []int{1}})

	passthroughTx(txManager)
	userRepo.EXPECT().GetForUpdate(gomock.Any(), userID).
		Return(&domain.User{ID: userID, Balance: decimal.NewFromInt(50)}, nil)
	betRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, bet *domain.Bet) (*domain.Bet, error) {
			assert.Equal(t, domain.BetStatusLost, bet.Status)
			assert.True(t, bet.Payout.IsZero())
			return bet, nil
		})
	userRepo.EXPECT().AdjustBalance(gomock.Any(), userID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, delta decimal.Decimal) (decimal.Decimal, error) {
			assert.True(t, delta.Equal(decimal.NewFromInt(-50)))
			return decimal.Zero, nil
		})
	txnRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
			return txn, nil
		})
	queue.EXPECT().Enqueue(gomock.Any())

	_, result, balance, err := service.PlaceBet(context.Background(), userID, stake, game.TypeCoinFlip, json.RawMessage(`{"choice":"heads"}`))
	assert.NoError(t, err)
	assert.False(t, result.Won)
	assert.True(t, balance.IsZero())
}

func TestPlaceBetErrors(t *testing.T) {
	userID := "7a4b0000-0000-0000-0000-000000000003"

	tests := []struct {
		name          string
		amount        decimal.Decimal
		gameType      string
		details       json.RawMessage
		prepareMock   func(userRepo *MockUserRepo, betRepo *MockBetRepo, txManager *pg.MockTXManager)
		expectedError error
	}{
		{
			name:          "Zero stake",
			amount:        decimal.Zero,
			gameType:      game.TypeCoinFlip,
			details:       json.RawMessage(`{"choice":"heads"}`),
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "Negative stake",
			amount:        decimal.NewFromInt(-10),
			gameType:      game.TypeCoinFlip,
			details:       json.RawMessage(`{"choice":"heads"}`),
			expectedError: ErrInvalidAmount,
		},
		{
			name:     "Unknown user",
			amount:   decimal.NewFromInt(10),
			gameType: game.TypeCoinFlip,
			details:  json.RawMessage(`{"choice":"heads"}`),
			prepareMock: func(userRepo *MockUserRepo, betRepo *MockBetRepo, txManager *pg.MockTXManager) {
				passthroughTx(txManager)
				userRepo.EXPECT().GetForUpdate(gomock.Any(), userID).Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name:     "Insufficient balance",
			amount:   decimal.NewFromInt(100),
			gameType: game.TypeCoinFlip,
			details:  json.RawMessage(`{"choice":"heads"}`),
			prepareMock: func(userRepo *MockUserRepo, betRepo *MockBetRepo, txManager *pg.MockTXManager) {
				passthroughTx(txManager)
				userRepo.EXPECT().GetForUpdate(gomock.Any(), userID).
					Return(&domain.User{ID: userID, Balance: decimal.NewFromInt(99)}, nil)
			},
			expectedError: ErrInsufficientBalance,
		},
		{
			name:     "Unknown game",
			amount:   decimal.NewFromInt(10),
			gameType: "blackjack",
			details:  json.RawMessage(`{}`),
			prepareMock: func(userRepo *MockUserRepo, betRepo *MockBetRepo, txManager *pg.MockTXManager) {
				passthroughTx(txManager)
				userRepo.EXPECT().GetForUpdate(gomock.Any(), userID).
					Return(&domain.User{ID: userID, Balance: decimal.NewFromInt(100)}, nil)
			},
			expectedError: game.ErrUnknownGame,
		},
		{
			name:     "Invalid params",
			amount:   decimal.NewFromInt(10),
			gameType: game.TypeCoinFlip,
			details:  json.RawMessage(`{"choice":"edge"}`),
			prepareMock: func(userRepo *MockUserRepo, betRepo *MockBetRepo, txManager *pg.MockTXManager) {
				passthroughTx(txManager)
				userRepo.EXPECT().GetForUpdate(gomock.Any(), userID).
					Return(&domain.User{ID: userID, Balance: decimal.NewFromInt(100)}, nil)
			},
			expectedError: game.ErrInvalidParams,
		},
		{
			name:     "Bet row failure leaves balance untouched",
			amount:   decimal.NewFromInt(10),
			gameType: game.TypeCoinFlip,
			details:  json.RawMessage(`{"choice":"heads"}`),
			prepareMock: func(userRepo *MockUserRepo, betRepo *MockBetRepo, txManager *pg.MockTXManager) {
				passthroughTx(txManager)
				userRepo.EXPECT().GetForUpdate(gomock.Any(), userID).
					Return(&domain.User{ID: userID, Balance: decimal.NewFromInt(100)}, nil)
				betRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo, betRepo, _, txManager, _ := NewMock(t)
			service.WithRand(&fixedRand{values: []int{0}})
			if tt.prepareMock != nil {
				tt.prepareMock(userRepo, betRepo, txManager)
			}

			bet, result, balance, err := service.PlaceBet(context.Background(), userID, tt.amount, tt.gameType, tt.details)
			assert.Error(t, err)
			if errors.Is(tt.expectedError, game.ErrUnknownGame) || errors.Is(tt.expectedError, game.ErrInvalidParams) {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			}
			assert.Nil(t, bet)
			assert.Nil(t, result)
			assert.True(t, balance.IsZero())
		})
	}
}

func TestPlaceBetRollbackSkipsQueue(t *testing.T) {
	service, userRepo, _, _, txManager, _ := NewMock(t)
	userID := "7a4b0000-0000-0000-0000-000000000004"

	// the unit of work fails wholesale; no wagering event may leak out
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).Return(errors.New("tx aborted"))
	_ = userRepo

	_, _, _, err := service.PlaceBet(context.Background(), userID, decimal.NewFromInt(10), game.TypeCoinFlip, json.RawMessage(`{"choice":"heads"}`))
	assert.Error(t, err)
}

func TestListBets(t *testing.T) {
	userID := "7a4b0000-0000-0000-0000-000000000005"
	filter := betrepo.Filter{Limit: 10}

	tests := []struct {
		name        string
		prepareMock func(betRepo *MockBetRepo)
		expectErr   bool
		total       int
	}{
		{
			name: "Lists with total",
			prepareMock: func(betRepo *MockBetRepo) {
				betRepo.EXPECT().CountByUser(gomock.Any(), userID, filter).Return(2, nil)
				betRepo.EXPECT().ListByUser(gomock.Any(), userID, filter).Return([]domain.Bet{{ID: "b1"}, {ID: "b2"}}, nil)
			},
			total: 2,
		},
		{
			name: "Count failure",
			prepareMock: func(betRepo *MockBetRepo) {
				betRepo.EXPECT().CountByUser(gomock.Any(), userID, filter).Return(0, errors.New("db error"))
			},
			expectErr: true,
		},
		{
			name: "List failure",
			prepareMock: func(betRepo *MockBetRepo) {
				betRepo.EXPECT().CountByUser(gomock.Any(), userID, filter).Return(2, nil)
				betRepo.EXPECT().ListByUser(gomock.Any(), userID, filter).Return(nil, errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, betRepo, _, _, _ := NewMock(t)
			tt.prepareMock(betRepo)

			bets, total, err := service.ListBets(context.Background(), userID, filter)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, bets, total)
				assert.Equal(t, tt.total, total)
			}
		})
	}
}

func TestGames(t *testing.T) {
	service, _, _, _, _, _ := NewMock(t)
	games := service.Games()
	assert.Len(t, games, 4)
}
