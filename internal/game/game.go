// Package game implements the outcome engine: pure payout evaluation for the
// supported casino games over an injected random draw source.
package game

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TypeCoinFlip = "coinFlip"
	TypeDiceRoll = "diceRoll"
	TypeRoulette = "roulette"
	TypeSlots    = "slots"
)

var (
	ErrUnknownGame   = errors.New("unknown game type")
	ErrInvalidParams = errors.New("invalid bet details")
)

// Rand is the draw source injected per evaluation. *math/rand.Rand satisfies
// it; tests use fixed sequences for deterministic replay.
type Rand interface {
	Intn(n int) int
}

// Result describes a settled outcome. Payout is stake times the game
// multiplier rounded to 2 decimal places, zero on loss. ID identifies one
// evaluation so clients can correlate a result with its bet response.
type Result struct {
	ID      string          `json:"gameId"`
	Outcome string          `json:"outcome"`
	Payout  decimal.Decimal `json:"payout"`
	Won     bool            `json:"won"`
	Value   int             `json:"resultValue,omitempty"`
	Color   string          `json:"resultColor,omitempty"`
	Reels   []string        `json:"reels,omitempty"`
}

// evenMoneyMultiplier is the 1.95x payout used by every near-coin-odds bet
// (the 0.05 shortfall from 2x is the house edge).
var evenMoneyMultiplier = decimal.NewFromFloat(1.95)

func payout(stake, multiplier decimal.Decimal, won bool) decimal.Decimal {
	if !won {
		return decimal.Zero
	}
	return stake.Mul(multiplier).Round(2)
}

// Evaluate validates params for the given game, performs one random draw and
// returns the settled result tagged with a fresh id. It mutates no shared
// state.
func Evaluate(gameType string, params json.RawMessage, stake decimal.Decimal, rng Rand) (*Result, error) {
	res, err := settle(gameType, params, stake, rng)
	if err != nil {
		return nil, err
	}
	res.ID = uuid.NewString()
	return &res, nil
}

func settle(gameType string, params json.RawMessage, stake decimal.Decimal, rng Rand) (Result, error) {
	switch gameType {
	case TypeCoinFlip:
		p, err := parseCoinFlipParams(params)
		if err != nil {
			return Result{}, err
		}
		return settleCoinFlip(drawCoinFlip(rng), p, stake), nil
	case TypeDiceRoll:
		p, err := parseDiceParams(params)
		if err != nil {
			return Result{}, err
		}
		return settleDice(drawDice(rng), p, stake), nil
	case TypeRoulette:
		p, err := parseRouletteParams(params)
		if err != nil {
			return Result{}, err
		}
		return settleRoulette(drawRoulette(rng), p, stake), nil
	case TypeSlots:
		return settleSlots(drawReels(rng), stake), nil
	default:
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownGame, gameType)
	}
}

type Info struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// List returns the available games for the games endpoint.
func List() []Info {
	return []Info{
		{ID: TypeCoinFlip, Name: "Coin Flip"},
		{ID: TypeDiceRoll, Name: "Dice Roll"},
		{ID: TypeRoulette, Name: "Roulette"},
		{ID: TypeSlots, Name: "Slots"},
	}
}
