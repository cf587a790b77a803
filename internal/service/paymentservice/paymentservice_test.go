package paymentservice

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/vkarpale/wagerhall/internal/bonusqueue"
	"github.com/vkarpale/wagerhall/internal/domain"
	"github.com/vkarpale/wagerhall/internal/gateway"
	"github.com/vkarpale/wagerhall/internal/pg"
	transactionrepo "github.com/vkarpale/wagerhall/internal/repo/transaction-repo"
)

func NewMock(t *testing.T) (*Service, *MockUserRepo, *MockTransactionRepo, *MockGateway, *MockIdempotencyStore, *pg.MockTXManager, *MockQueue) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockUserRepo(ctrl)
	txnRepo := NewMockTransactionRepo(ctrl)
	gw := NewMockGateway(ctrl)
	idem := NewMockIdempotencyStore(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	queue := NewMockQueue(ctrl)
	service := New(userRepo, txnRepo, gw, idem, txManager, queue)
	return service, userRepo, txnRepo, gw, idem, txManager, queue
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestCreateDepositOrder(t *testing.T) {
	userID := "9c2d0000-0000-0000-0000-000000000001"

	tests := []struct {
		name          string
		amount        decimal.Decimal
		prepareMock   func(gw *MockGateway)
		expectedOrder *gateway.Order
		expectedError error
	}{
		{
			name:   "Registers order with provider",
			amount: decimal.NewFromInt(500),
			prepareMock: func(gw *MockGateway) {
				gw.EXPECT().CreateOrder(gomock.Any(), decimal.NewFromInt(500), "INR", gomock.Any()).
					DoAndReturn(func(_ context.Context, amount decimal.Decimal, _, receipt string) (*gateway.Order, error) {
						assert.True(t, strings.HasPrefix(receipt, "dep_9c2d0000_"))
						return &gateway.Order{ID: "order_1", Amount: amount, Currency: "INR"}, nil
					})
			},
			expectedOrder: &gateway.Order{ID: "order_1", Amount: decimal.NewFromInt(500), Currency: "INR"},
		},
		{
			name:          "Below the minimum",
			amount:        decimal.NewFromInt(99),
			expectedError: ErrAmountTooLow,
		},
		{
			name:   "Provider down",
			amount: decimal.NewFromInt(500),
			prepareMock: func(gw *MockGateway) {
				gw.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, gateway.ErrUnavailable)
			},
			expectedError: gateway.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _, gw, _, _, _ := NewMock(t)
			if tt.prepareMock != nil {
				tt.prepareMock(gw)
			}

			order, err := service.CreateDepositOrder(context.Background(), userID, tt.amount)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, order)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedOrder, order)
			}
		})
	}
}

func TestConfirmDeposit(t *testing.T) {
	userID := "9c2d0000-0000-0000-0000-000000000002"
	conf := DepositConfirmation{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: "sig",
		Amount:    decimal.NewFromInt(500),
	}

	tests := []struct {
		name          string
		prepareMock   func(userRepo *MockUserRepo, txnRepo *MockTransactionRepo, gw *MockGateway, idem *MockIdempotencyStore, txManager *pg.MockTXManager, queue *MockQueue)
		expectedError error
	}{
		{
			name: "Credits once and enqueues the bonus event",
			prepareMock: func(userRepo *MockUserRepo, txnRepo *MockTransactionRepo, gw *MockGateway, idem *MockIdempotencyStore, txManager *pg.MockTXManager, queue *MockQueue) {
				gw.EXPECT().VerifySignature("order_1", "pay_1", "sig").Return(true)
				idem.EXPECT().Acquire(gomock.Any(), "deposit:confirm:order_1", gomock.Any()).Return(true, nil)
				passthroughTx(txManager)
				userRepo.EXPECT().GetForUpdate(gomock.Any(), userID).
					Return(&domain.User{ID: userID, Balance: decimal.NewFromInt(100)}, nil)
				txnRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
						assert.Equal(t, domain.TxnTypeDeposit, txn.Type)
						assert.Equal(t, domain.TxnStatusCompleted, txn.Status)
						assert.Equal(t, "pay_1", txn.PaymentID)
						return txn, nil
					})
				userRepo.EXPECT().AdjustBalance(gomock.Any(), userID, decimal.NewFromInt(500)).
					Return(decimal.NewFromInt(600), nil)
				queue.EXPECT().Enqueue(bonusqueue.Event{Kind: bonusqueue.KindDeposit, UserID: userID, Amount: conf.Amount})
			},
		},
		{
			name: "Rejects a bad signature before any state change",
			prepareMock: func(userRepo *MockUserRepo, txnRepo *MockTransactionRepo, gw *MockGateway, idem *MockIdempotencyStore, txManager *pg.MockTXManager, queue *MockQueue) {
				gw.EXPECT().VerifySignature("order_1", "pay_1", "sig").Return(false)
			},
			expectedError: ErrInvalidSignature,
		},
		{
			name: "Rejects a duplicate callback",
			prepareMock: func(userRepo *MockUserRepo, txnRepo *MockTransactionRepo, gw *MockGateway, idem *MockIdempotencyStore, txManager *pg.MockTXManager, queue *MockQueue) {
				gw.EXPECT().VerifySignature("order_1", "pay_1", "sig").Return(true)
				idem.EXPECT().Acquire(gomock.Any(), "deposit:confirm:order_1", gomock.Any()).Return(false, nil)
			},
			expectedError: ErrDuplicateRequest,
		},
		{
			name: "Releases the key when the credit fails",
			prepareMock: func(userRepo *MockUserRepo, txnRepo *MockTransactionRepo, gw *MockGateway, idem *MockIdempotencyStore, txManager *pg.MockTXManager, queue *MockQueue) {
				gw.EXPECT().VerifySignature("order_1", "pay_1", "sig").Return(true)
				idem.EXPECT().Acquire(gomock.Any(), "deposit:confirm:order_1", gomock.Any()).Return(true, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
				idem.EXPECT().Release(gomock.Any(), "deposit:confirm:order_1").Return(nil)
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo, txnRepo, gw, idem, txManager, queue := NewMock(t)
			tt.prepareMock(userRepo, txnRepo, gw, idem, txManager, queue)

			txn, balance, err := service.ConfirmDeposit(context.Background(), userID, conf)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, txn)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, txn)
				assert.True(t, balance.Equal(decimal.NewFromInt(600)))
			}
		})
	}
}

func TestRequestWithdrawal(t *testing.T) {
	userID := "9c2d0000-0000-0000-0000-000000000003"

	tests := []struct {
		name            string
		amount          decimal.Decimal
		details         PayoutDetails
		prepareMock     func(userRepo *MockUserRepo, txnRepo *MockTransactionRepo, txManager *pg.MockTXManager)
		expectedBalance decimal.Decimal
		expectedError   error
	}{
		{
			name:    "Reserves funds and leaves a pending entry",
			amount:  decimal.NewFromInt(200),
			details: PayoutDetails{Method: "bank_transfer"},
			prepareMock: func(userRepo *MockUserRepo, txnRepo *MockTransactionRepo, txManager *pg.MockTXManager) {
				passthroughTx(txManager)
				userRepo.EXPECT().GetForUpdate(gomock.Any(), userID).
					Return(&domain.User{ID: userID, Balance: decimal.NewFromInt(500)}, nil)
				txnRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
						assert.Equal(t, domain.TxnTypeWithdrawal, txn.Type)
						assert.Equal(t, domain.TxnStatusPending, txn.Status)
						assert.True(t, txn.Amount.Equal(decimal.NewFromInt(-200)))
						return txn, nil
					})
				userRepo.EXPECT().AdjustBalance(gomock.Any(), userID, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, delta decimal.Decimal) (decimal.Decimal, error) {
						assert.True(t, delta.Equal(decimal.NewFromInt(-200)))
						return decimal.NewFromInt(300), nil
					})
			},
			expectedBalance: decimal.NewFromInt(300),
		},
		{
			name:    "Whole balance withdraws to exactly zero",
			amount:  decimal.NewFromInt(500),
			details: PayoutDetails{Method: "bank_transfer"},
			prepareMock: func(userRepo *MockUserRepo, txnRepo *MockTransactionRepo, txManager *pg.MockTXManager) {
				passthroughTx(txManager)
				userRepo.EXPECT().GetForUpdate(gomock.Any(), userID).
					Return(&domain.User{ID: userID, Balance: decimal.NewFromInt(500)}, nil)
				txnRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
						return txn, nil
					})
				userRepo.EXPECT().AdjustBalance(gomock.Any(), userID, gomock.Any()).
					Return(decimal.Zero, nil)
			},
			expectedBalance: decimal.Zero,
		},
		{
			name:          "Below the minimum",
			amount:        decimal.NewFromInt(50),
			details:       PayoutDetails{Method: "bank_transfer"},
			expectedError: ErrAmountTooLow,
		},
		{
			name:          "Luhn check rejects a bad card",
			amount:        decimal.NewFromInt(200),
			details:       PayoutDetails{Method: "card", CardNumber: "4111111111111112"},
			expectedError: ErrInvalidCardNumber,
		},
		{
			name:    "One unit over the balance fails",
			amount:  decimal.NewFromInt(501),
			details: PayoutDetails{Method: "bank_transfer"},
			prepareMock: func(userRepo *MockUserRepo, txnRepo *MockTransactionRepo, txManager *pg.MockTXManager) {
				passthroughTx(txManager)
				userRepo.EXPECT().GetForUpdate(gomock.Any(), userID).
					Return(&domain.User{ID: userID, Balance: decimal.NewFromInt(500)}, nil)
			},
			expectedError: ErrInsufficientBalance,
		},
		{
			name:    "Unknown user",
			amount:  decimal.NewFromInt(200),
			details: PayoutDetails{Method: "bank_transfer"},
			prepareMock: func(userRepo *MockUserRepo, txnRepo *MockTransactionRepo, txManager *pg.MockTXManager) {
				passthroughTx(txManager)
				userRepo.EXPECT().GetForUpdate(gomock.Any(), userID).Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo, txnRepo, _, _, txManager, _ := NewMock(t)
			if tt.prepareMock != nil {
				tt.prepareMock(userRepo, txnRepo, txManager)
			}

			txn, balance, err := service.RequestWithdrawal(context.Background(), userID, tt.amount, tt.details)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, txn)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, txn)
				assert.True(t, balance.Equal(tt.expectedBalance))
			}
		})
	}
}

func TestRequestWithdrawalValidCard(t *testing.T) {
	service, userRepo, txnRepo, _, _, txManager, _ := NewMock(t)
	userID := "9c2d0000-0000-0000-0000-000000000004"

	passthroughTx(txManager)
	userRepo.EXPECT().GetForUpdate(gomock.Any(), userID).
		Return(&domain.User{ID: userID, Balance: decimal.NewFromInt(1000)}, nil)
	txnRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
			assert.Equal(t, "card", txn.PaymentMethod)
			return txn, nil
		})
	userRepo.EXPECT().AdjustBalance(gomock.Any(), userID, gomock.Any()).
		Return(decimal.NewFromInt(800), nil)

	_, balance, err := service.RequestWithdrawal(context.Background(), userID, decimal.NewFromInt(200),
		PayoutDetails{Method: "card", CardNumber: "4111111111111111"})
	assert.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(800)))
}

func TestListTransactions(t *testing.T) {
	userID := "9c2d0000-0000-0000-0000-000000000005"
	filter := transactionrepo.Filter{Type: domain.TxnTypeDeposit, Limit: 10}

	tests := []struct {
		name        string
		prepareMock func(txnRepo *MockTransactionRepo)
		expectErr   bool
	}{
		{
			name: "Lists with total",
			prepareMock: func(txnRepo *MockTransactionRepo) {
				txnRepo.EXPECT().CountByUser(gomock.Any(), userID, filter).Return(1, nil)
				txnRepo.EXPECT().ListByUser(gomock.Any(), userID, filter).Return([]domain.Transaction{{ID: "t1"}}, nil)
			},
		},
		{
			name: "Count failure",
			prepareMock: func(txnRepo *MockTransactionRepo) {
				txnRepo.EXPECT().CountByUser(gomock.Any(), userID, filter).Return(0, errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, txnRepo, _, _, _, _ := NewMock(t)
			tt.prepareMock(txnRepo)

			txns, total, err := service.ListTransactions(context.Background(), userID, filter)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, total)
				assert.Len(t, txns, 1)
			}
		})
	}
}

func TestAuditBalance(t *testing.T) {
	userID := "9c2d0000-0000-0000-0000-000000000006"

	tests := []struct {
		name        string
		prepareMock func(userRepo *MockUserRepo, txnRepo *MockTransactionRepo)
		expected    *AuditReport
		expectErr   bool
	}{
		{
			name: "Balanced account",
			prepareMock: func(userRepo *MockUserRepo, txnRepo *MockTransactionRepo) {
				userRepo.EXPECT().FindByID(gomock.Any(), userID).
					Return(&domain.User{ID: userID, Balance: decimal.NewFromInt(300)}, nil)
				txnRepo.EXPECT().SumCompletedByUser(gomock.Any(), userID).
					Return(decimal.NewFromInt(300), nil)
			},
			expected: &AuditReport{
				UserID:          userID,
				Balance:         decimal.NewFromInt(300),
				TransactionsSum: decimal.NewFromInt(300),
				Balanced:        true,
			},
		},
		{
			name: "Drifted account",
			prepareMock: func(userRepo *MockUserRepo, txnRepo *MockTransactionRepo) {
				userRepo.EXPECT().FindByID(gomock.Any(), userID).
					Return(&domain.User{ID: userID, Balance: decimal.NewFromInt(300)}, nil)
				txnRepo.EXPECT().SumCompletedByUser(gomock.Any(), userID).
					Return(decimal.NewFromInt(250), nil)
			},
			expected: &AuditReport{
				UserID:          userID,
				Balance:         decimal.NewFromInt(300),
				TransactionsSum: decimal.NewFromInt(250),
				Balanced:        false,
			},
		},
		{
			name: "Unknown user",
			prepareMock: func(userRepo *MockUserRepo, txnRepo *MockTransactionRepo) {
				userRepo.EXPECT().FindByID(gomock.Any(), userID).Return(nil, nil)
				txnRepo.EXPECT().SumCompletedByUser(gomock.Any(), userID).
					Return(decimal.Zero, nil)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo, txnRepo, _, _, _, _ := NewMock(t)
			tt.prepareMock(userRepo, txnRepo)

			report, err := service.AuditBalance(context.Background(), userID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, report)
			}
		})
	}
}
