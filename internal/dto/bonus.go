package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vkarpale/wagerhall/internal/domain"
)

type BonusDTO struct {
	ID                  string          `json:"id"`
	Amount              decimal.Decimal `json:"amount"`
	Type                string          `json:"type"`
	Description         string          `json:"description"`
	Status              string          `json:"status"`
	WageringRequirement decimal.Decimal `json:"wageringRequirement"`
	WageringRemaining   decimal.Decimal `json:"wageringRemaining"`
	ExpiresAt           time.Time       `json:"expiresAt"`
	CreatedAt           time.Time       `json:"createdAt"`
}

func NewBonusDTO(bonus *domain.Bonus) BonusDTO {
	return BonusDTO{
		ID:                  bonus.ID,
		Amount:              bonus.Amount,
		Type:                bonus.Type,
		Description:         bonus.Description,
		Status:              bonus.Status,
		WageringRequirement: bonus.WageringRequirement,
		WageringRemaining:   bonus.WageringRemaining,
		ExpiresAt:           bonus.ExpiresAt,
		CreatedAt:           bonus.CreatedAt,
	}
}

type CreateBonusRequestDTO struct {
	UserID             string          `json:"userId" validate:"required"`
	Amount             decimal.Decimal `json:"amount" validate:"required"`
	Type               string          `json:"type" validate:"required"`
	Description        string          `json:"description"`
	WageringMultiplier decimal.Decimal `json:"wageringMultiplier"`
	TTLHours           int             `json:"ttlHours"`
	IdempotencyKey     string          `json:"idempotencyKey"`
}

type CreateBonusResponseDTO struct {
	Message string   `json:"message"`
	Bonus   BonusDTO `json:"bonus"`
}

type BonusListResponseDTO struct {
	Bonuses []BonusDTO `json:"bonuses"`
}
