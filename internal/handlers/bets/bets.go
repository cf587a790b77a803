package bets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/vkarpale/wagerhall/internal/domain"
	"github.com/vkarpale/wagerhall/internal/dto"
	"github.com/vkarpale/wagerhall/internal/game"
	betrepo "github.com/vkarpale/wagerhall/internal/repo/bet-repo"
	"github.com/vkarpale/wagerhall/internal/service/betservice"
	pkgauth "github.com/vkarpale/wagerhall/pkg/auth"
	"github.com/vkarpale/wagerhall/pkg/utils"
)

//go:generate mockgen -source=bets.go -destination=bets_mock.go -package=bets

type Service interface {
	PlaceBet(ctx context.Context, userID string, amount decimal.Decimal, gameType string, details json.RawMessage) (*domain.Bet, *game.Result, decimal.Decimal, error)
	Games() []game.Info
	ListBets(ctx context.Context, userID string, f betrepo.Filter) ([]domain.Bet, int, error)
}

type BetHandler struct {
	betService Service
}

func New(betService Service) *BetHandler {
	return &BetHandler{
		betService: betService,
	}
}

const defaultPageSize = 20

// PlaceBet godoc
//
//	@Summary		Place a bet
//	@Description	Settle a casino bet; stake, outcome and payout commit atomically
//	@Tags			Bets
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PlaceBetRequestDTO	true	"Bet request body"
//	@Success		201		{object}	dto.PlaceBetResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid stake, game or bet details"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/bets [post]
func (h *BetHandler) PlaceBet(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(pkgauth.UserIDKey).(string)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.PlaceBetRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	bet, result, balance, err := h.betService.PlaceBet(r.Context(), userID, req.Amount, req.GameType, req.BetDetails)
	if err != nil {
		switch {
		case errors.Is(err, betservice.ErrInvalidAmount),
			errors.Is(err, game.ErrUnknownGame),
			errors.Is(err, game.ErrInvalidParams),
			errors.Is(err, betservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, betservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	message := "Better luck next time"
	if result.Won {
		message = "Congratulations, you won!"
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.PlaceBetResponseDTO{
		Message: message,
		Bet:     dto.NewBetDTO(bet),
		Result:  result,
		Balance: balance,
	})
}

// GetGames godoc
//
//	@Summary		List available games
//	@Tags			Bets
//	@Produce		json
//	@Success		200	{object}	dto.GameListResponseDTO
//	@Security		BearerAuth
//	@Router			/api/bets/games [get]
func (h *BetHandler) GetGames(w http.ResponseWriter, _ *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dto.GameListResponseDTO{Games: h.betService.Games()})
}

// GetBets godoc
//
//	@Summary		List the user's bets
//	@Tags			Bets
//	@Produce		json
//	@Param			status		query		string	false	"Filter by bet status"
//	@Param			gameType	query		string	false	"Filter by game"
//	@Param			limit		query		int		false	"Page size"
//	@Param			offset		query		int		false	"Page offset"
//	@Success		200			{object}	dto.BetListResponseDTO
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/bets [get]
func (h *BetHandler) GetBets(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(pkgauth.UserIDKey).(string)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	filter := betrepo.Filter{
		Status:   r.URL.Query().Get("status"),
		GameType: r.URL.Query().Get("gameType"),
		Limit:    queryInt(r, "limit", defaultPageSize),
		Offset:   queryInt(r, "offset", 0),
	}

	bets, total, err := h.betService.ListBets(r.Context(), userID, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	list := make([]dto.BetDTO, 0, len(bets))
	for i := range bets {
		list = append(list, dto.NewBetDTO(&bets[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BetListResponseDTO{Total: total, Bets: list})
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
