package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vkarpale/wagerhall/internal/domain"
	"github.com/vkarpale/wagerhall/internal/game"
)

type PlaceBetRequestDTO struct {
	Amount     decimal.Decimal `json:"amount" validate:"required"`
	GameType   string          `json:"gameType" validate:"required"`
	BetDetails json.RawMessage `json:"betDetails" validate:"required"`
}

type BetDTO struct {
	ID         string          `json:"id"`
	Amount     decimal.Decimal `json:"amount"`
	GameType   string          `json:"gameType"`
	BetDetails json.RawMessage `json:"betDetails"`
	Outcome    string          `json:"outcome"`
	Payout     decimal.Decimal `json:"payout"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
}

func NewBetDTO(bet *domain.Bet) BetDTO {
	return BetDTO{
		ID:         bet.ID,
		Amount:     bet.Amount,
		GameType:   bet.GameType,
		BetDetails: bet.BetDetails,
		Outcome:    bet.Outcome,
		Payout:     bet.Payout,
		Status:     bet.Status,
		CreatedAt:  bet.CreatedAt,
	}
}

type PlaceBetResponseDTO struct {
	Message string          `json:"message"`
	Bet     BetDTO          `json:"bet"`
	Result  *game.Result    `json:"result"`
	Balance decimal.Decimal `json:"balance"`
}

type BetListResponseDTO struct {
	Total int      `json:"total"`
	Bets  []BetDTO `json:"bets"`
}

type GameListResponseDTO struct {
	Games []game.Info `json:"games"`
}
