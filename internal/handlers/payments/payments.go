package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/vkarpale/wagerhall/internal/domain"
	"github.com/vkarpale/wagerhall/internal/dto"
	"github.com/vkarpale/wagerhall/internal/gateway"
	transactionrepo "github.com/vkarpale/wagerhall/internal/repo/transaction-repo"
	"github.com/vkarpale/wagerhall/internal/service/paymentservice"
	pkgauth "github.com/vkarpale/wagerhall/pkg/auth"
	"github.com/vkarpale/wagerhall/pkg/utils"
)

//go:generate mockgen -source=payments.go -destination=payments_mock.go -package=payments

type Service interface {
	CreateDepositOrder(ctx context.Context, userID string, amount decimal.Decimal) (*gateway.Order, error)
	ConfirmDeposit(ctx context.Context, userID string, conf paymentservice.DepositConfirmation) (*domain.Transaction, decimal.Decimal, error)
	RequestWithdrawal(ctx context.Context, userID string, amount decimal.Decimal, details paymentservice.PayoutDetails) (*domain.Transaction, decimal.Decimal, error)
	ListTransactions(ctx context.Context, userID string, f transactionrepo.Filter) ([]domain.Transaction, int, error)
	AuditBalance(ctx context.Context, userID string) (*paymentservice.AuditReport, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

const defaultPageSize = 20

// CreateDeposit godoc
//
//	@Summary		Create a deposit order
//	@Description	Register a deposit intent with the payment provider; no balance change yet
//	@Tags			Transactions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DepositCreateRequestDTO	true	"Deposit amount"
//	@Success		200		{object}	dto.DepositCreateResponseDTO
//	@Failure		400		{object}	utils.Response	"Amount below minimum"
//	@Failure		502		{object}	utils.Response	"Payment provider unavailable"
//	@Security		BearerAuth
//	@Router			/api/transactions/deposit/create [post]
func (h *PaymentHandler) CreateDeposit(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(pkgauth.UserIDKey).(string)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.DepositCreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.paymentService.CreateDepositOrder(r.Context(), userID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrAmountTooLow):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, gateway.ErrUnavailable):
			utils.RespondWithError(w, http.StatusBadGateway, "Payment provider unavailable")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DepositCreateResponseDTO{
		Message: "Deposit order created",
		Order:   dto.NewOrderDTO(order),
	})
}

// VerifyDeposit godoc
//
//	@Summary		Confirm a deposit
//	@Description	Verify the provider signature and credit the account exactly once per order
//	@Tags			Transactions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DepositVerifyRequestDTO	true	"Provider confirmation"
//	@Success		200		{object}	dto.DepositVerifyResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid signature"
//	@Failure		409		{object}	utils.Response	"Deposit already processed"
//	@Security		BearerAuth
//	@Router			/api/transactions/deposit/verify [post]
func (h *PaymentHandler) VerifyDeposit(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(pkgauth.UserIDKey).(string)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.DepositVerifyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	txn, balance, err := h.paymentService.ConfirmDeposit(r.Context(), userID, paymentservice.DepositConfirmation{
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
		Amount:    req.Amount,
	})
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrInvalidSignature):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, paymentservice.ErrDuplicateRequest):
			utils.RespondWithError(w, http.StatusConflict, "Deposit already processed")
		case errors.Is(err, paymentservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DepositVerifyResponseDTO{
		Message:     "Deposit successful",
		Transaction: dto.NewTransactionDTO(txn),
		Balance:     balance,
	})
}

// Withdraw godoc
//
//	@Summary		Request a withdrawal
//	@Description	Reserve funds and record a pending payout
//	@Tags			Transactions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawalRequestDTO	true	"Withdrawal request"
//	@Success		200		{object}	dto.WithdrawalResponseDTO
//	@Failure		400		{object}	utils.Response	"Amount below minimum or insufficient balance"
//	@Failure		422		{object}	utils.Response	"Invalid card number"
//	@Security		BearerAuth
//	@Router			/api/transactions/withdrawal [post]
func (h *PaymentHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(pkgauth.UserIDKey).(string)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.WithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	txn, balance, err := h.paymentService.RequestWithdrawal(r.Context(), userID, req.Amount, paymentservice.PayoutDetails{
		Method:     req.Method,
		CardNumber: req.CardNumber,
	})
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrAmountTooLow),
			errors.Is(err, paymentservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, paymentservice.ErrInvalidCardNumber):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, paymentservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WithdrawalResponseDTO{
		Message:     "Withdrawal request submitted",
		Transaction: dto.NewTransactionDTO(txn),
		Balance:     balance,
	})
}

// GetTransactions godoc
//
//	@Summary		List the user's transactions
//	@Tags			Transactions
//	@Produce		json
//	@Param			type	query		string	false	"Filter by transaction type"
//	@Param			limit	query		int		false	"Page size"
//	@Param			offset	query		int		false	"Page offset"
//	@Success		200		{object}	dto.TransactionListResponseDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/transactions [get]
func (h *PaymentHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(pkgauth.UserIDKey).(string)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	filter := transactionrepo.Filter{
		Type:   r.URL.Query().Get("type"),
		Limit:  queryInt(r, "limit", defaultPageSize),
		Offset: queryInt(r, "offset", 0),
	}

	txns, total, err := h.paymentService.ListTransactions(r.Context(), userID, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	list := make([]dto.TransactionDTO, 0, len(txns))
	for i := range txns {
		list = append(list, dto.NewTransactionDTO(&txns[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TransactionListResponseDTO{Total: total, Transactions: list})
}

// AuditBalance godoc
//
//	@Summary		Audit an account's ledger
//	@Description	Compare an account balance against the signed sum of its completed transactions
//	@Tags			Transactions
//	@Produce		json
//	@Param			userID	path		string	true	"Account id"
//	@Success		200		{object}	paymentservice.AuditReport
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Security		BearerAuth
//	@Router			/api/transactions/audit/{userID} [get]
func (h *PaymentHandler) AuditBalance(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing user id")
		return
	}

	report, err := h.paymentService.AuditBalance(r.Context(), userID)
	if err != nil {
		if errors.Is(err, paymentservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, report)
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
