package bonuses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/vkarpale/wagerhall/internal/domain"
	"github.com/vkarpale/wagerhall/internal/dto"
	"github.com/vkarpale/wagerhall/internal/service/bonusservice"
	pkgauth "github.com/vkarpale/wagerhall/pkg/auth"
	"github.com/vkarpale/wagerhall/pkg/utils"
)

//go:generate mockgen -source=bonuses.go -destination=bonuses_mock.go -package=bonuses

type Service interface {
	Issue(ctx context.Context, p bonusservice.IssueParams) (*domain.Bonus, error)
	ListActive(ctx context.Context, userID string) ([]domain.Bonus, error)
}

type BonusHandler struct {
	bonusService Service
}

func New(bonusService Service) *BonusHandler {
	return &BonusHandler{
		bonusService: bonusService,
	}
}

// CreateBonus godoc
//
//	@Summary		Grant a bonus to an account
//	@Description	Admin-only manual bonus grant with an optional custom wagering multiplier and idempotency key
//	@Tags			Bonuses
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateBonusRequestDTO	true	"Bonus grant"
//	@Success		201		{object}	dto.CreateBonusResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		409		{object}	utils.Response	"Duplicate idempotency key"
//	@Security		BearerAuth
//	@Router			/api/bonuses/create [post]
func (h *BonusHandler) CreateBonus(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBonusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	bonus, err := h.bonusService.Issue(r.Context(), bonusservice.IssueParams{
		UserID:             req.UserID,
		Amount:             req.Amount,
		Type:               req.Type,
		Description:        req.Description,
		WageringMultiplier: req.WageringMultiplier,
		TTL:                time.Duration(req.TTLHours) * time.Hour,
		IdempotencyKey:     req.IdempotencyKey,
	})
	if err != nil {
		switch {
		case errors.Is(err, bonusservice.ErrInvalidAmount), errors.Is(err, bonusservice.ErrInvalidType):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, bonusservice.ErrDuplicateRequest):
			utils.RespondWithError(w, http.StatusConflict, "Bonus already granted for this key")
		case errors.Is(err, bonusservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CreateBonusResponseDTO{
		Message: "Bonus successfully created",
		Bonus:   dto.NewBonusDTO(bonus),
	})
}

// GetMyBonuses godoc
//
//	@Summary		List the user's active bonuses
//	@Tags			Bonuses
//	@Produce		json
//	@Success		200	{object}	dto.BonusListResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/bonuses/my-bonuses [get]
func (h *BonusHandler) GetMyBonuses(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(pkgauth.UserIDKey).(string)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	bonuses, err := h.bonusService.ListActive(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	list := make([]dto.BonusDTO, 0, len(bonuses))
	for i := range bonuses {
		list = append(list, dto.NewBonusDTO(&bonuses[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BonusListResponseDTO{Bonuses: list})
}
