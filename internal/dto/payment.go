package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vkarpale/wagerhall/internal/domain"
	"github.com/vkarpale/wagerhall/internal/gateway"
)

type DepositCreateRequestDTO struct {
	Amount decimal.Decimal `json:"amount" validate:"required"`
}

type OrderDTO struct {
	ID       string          `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func NewOrderDTO(order *gateway.Order) OrderDTO {
	return OrderDTO{
		ID:       order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
	}
}

type DepositCreateResponseDTO struct {
	Message string   `json:"message"`
	Order   OrderDTO `json:"order"`
}

type DepositVerifyRequestDTO struct {
	OrderID   string          `json:"orderId" validate:"required"`
	PaymentID string          `json:"paymentId" validate:"required"`
	Signature string          `json:"signature" validate:"required"`
	Amount    decimal.Decimal `json:"amount" validate:"required"`
}

type TransactionDTO struct {
	ID            string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	PaymentID     string          `json:"paymentId,omitempty"`
	Description   string          `json:"description"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func NewTransactionDTO(txn *domain.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:            txn.ID,
		Amount:        txn.Amount,
		Type:          txn.Type,
		Status:        txn.Status,
		PaymentMethod: txn.PaymentMethod,
		PaymentID:     txn.PaymentID,
		Description:   txn.Description,
		CreatedAt:     txn.CreatedAt,
	}
}

type DepositVerifyResponseDTO struct {
	Message     string          `json:"message"`
	Transaction TransactionDTO  `json:"transaction"`
	Balance     decimal.Decimal `json:"balance"`
}

type WithdrawalRequestDTO struct {
	Amount     decimal.Decimal `json:"amount" validate:"required"`
	Method     string          `json:"method" validate:"required"`
	CardNumber string          `json:"cardNumber" validate:"omitempty"`
}

type WithdrawalResponseDTO struct {
	Message     string          `json:"message"`
	Transaction TransactionDTO  `json:"transaction"`
	Balance     decimal.Decimal `json:"balance"`
}

type TransactionListResponseDTO struct {
	Total        int              `json:"total"`
	Transactions []TransactionDTO `json:"transactions"`
}
