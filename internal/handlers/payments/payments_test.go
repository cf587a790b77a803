package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/vkarpale/wagerhall/internal/domain"
	"github.com/vkarpale/wagerhall/internal/dto"
	"github.com/vkarpale/wagerhall/internal/gateway"
	"github.com/vkarpale/wagerhall/internal/service/paymentservice"
	pkgauth "github.com/vkarpale/wagerhall/pkg/auth"
)

func NewMock(t *testing.T) (*PaymentHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func withUser(req *http.Request, userID string) *http.Request {
	ctx := context.WithValue(req.Context(), pkgauth.UserIDKey, userID)
	return req.WithContext(ctx)
}

func TestCreateDepositHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Creates the provider order",
			body: `{"amount":"500"}`,
			prepareMock: func() {
				service.EXPECT().CreateDepositOrder(gomock.Any(), "u1", gomock.Any()).
					Return(&gateway.Order{ID: "order_1", Amount: decimal.NewFromInt(500), Currency: "INR"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Amount below minimum",
			body: `{"amount":"50"}`,
			prepareMock: func() {
				service.EXPECT().CreateDepositOrder(gomock.Any(), "u1", gomock.Any()).
					Return(nil, paymentservice.ErrAmountTooLow)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Provider unavailable",
			body: `{"amount":"500"}`,
			prepareMock: func() {
				service.EXPECT().CreateDepositOrder(gomock.Any(), "u1", gomock.Any()).
					Return(nil, gateway.ErrUnavailable)
			},
			expectedCode: http.StatusBadGateway,
		},
		{
			name:         "Invalid request body",
			body:         `{invalid`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withUser(httptest.NewRequest("POST", "/api/transactions/deposit/create", bytes.NewReader([]byte(tt.body))), "u1")
			rr := httptest.NewRecorder()
			handler.CreateDeposit(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.DepositCreateResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "order_1", resp.Order.ID)
			}
		})
	}
}

func TestVerifyDepositHandler(t *testing.T) {
	handler, service := NewMock(t)
	body := `{"orderId":"order_1","paymentId":"pay_1","signature":"sig","amount":"500"}`

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Credits the deposit",
			prepareMock: func() {
				service.EXPECT().ConfirmDeposit(gomock.Any(), "u1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, conf paymentservice.DepositConfirmation) (*domain.Transaction, decimal.Decimal, error) {
						assert.Equal(t, "order_1", conf.OrderID)
						assert.Equal(t, "pay_1", conf.PaymentID)
						return &domain.Transaction{ID: "t1", Type: domain.TxnTypeDeposit}, decimal.NewFromInt(600), nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid signature",
			prepareMock: func() {
				service.EXPECT().ConfirmDeposit(gomock.Any(), "u1", gomock.Any()).
					Return(nil, decimal.Zero, paymentservice.ErrInvalidSignature)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Duplicate confirmation",
			prepareMock: func() {
				service.EXPECT().ConfirmDeposit(gomock.Any(), "u1", gomock.Any()).
					Return(nil, decimal.Zero, paymentservice.ErrDuplicateRequest)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withUser(httptest.NewRequest("POST", "/api/transactions/deposit/verify", bytes.NewReader([]byte(body))), "u1")
			rr := httptest.NewRecorder()
			handler.VerifyDeposit(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestWithdrawHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Reserves the payout",
			body: `{"amount":"200","method":"bank_transfer"}`,
			prepareMock: func() {
				service.EXPECT().RequestWithdrawal(gomock.Any(), "u1", gomock.Any(),
					paymentservice.PayoutDetails{Method: "bank_transfer"}).
					Return(&domain.Transaction{ID: "t1", Status: domain.TxnStatusPending}, decimal.NewFromInt(300), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Insufficient balance",
			body: `{"amount":"1000","method":"bank_transfer"}`,
			prepareMock: func() {
				service.EXPECT().RequestWithdrawal(gomock.Any(), "u1", gomock.Any(), gomock.Any()).
					Return(nil, decimal.Zero, paymentservice.ErrInsufficientBalance)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Bad card number",
			body: `{"amount":"200","method":"card","cardNumber":"123"}`,
			prepareMock: func() {
				service.EXPECT().RequestWithdrawal(gomock.Any(), "u1", gomock.Any(), gomock.Any()).
					Return(nil, decimal.Zero, paymentservice.ErrInvalidCardNumber)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withUser(httptest.NewRequest("POST", "/api/transactions/withdrawal", bytes.NewReader([]byte(tt.body))), "u1")
			rr := httptest.NewRecorder()
			handler.Withdraw(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestGetTransactionsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ListTransactions(gomock.Any(), "u1", gomock.Any()).
		Return([]domain.Transaction{{ID: "t1"}, {ID: "t2"}}, 2, nil)

	req := withUser(httptest.NewRequest("GET", "/api/transactions?type=deposit", nil), "u1")
	rr := httptest.NewRecorder()
	handler.GetTransactions(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp dto.TransactionListResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Transactions, 2)
}

func TestAuditBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		userID       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Reports a balanced ledger",
			userID: "u1",
			prepareMock: func() {
				service.EXPECT().AuditBalance(gomock.Any(), "u1").
					Return(&paymentservice.AuditReport{
						UserID:          "u1",
						Balance:         decimal.NewFromInt(300),
						TransactionsSum: decimal.NewFromInt(300),
						Balanced:        true,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Unknown user",
			userID: "ghost",
			prepareMock: func() {
				service.EXPECT().AuditBalance(gomock.Any(), "ghost").
					Return(nil, paymentservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("userID", tt.userID)
			req := httptest.NewRequest("GET", "/api/transactions/audit/"+tt.userID, nil)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			rr := httptest.NewRecorder()
			handler.AuditBalance(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var report paymentservice.AuditReport
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&report))
				assert.True(t, report.Balanced)
			}
		})
	}
}
