package game

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	rouletteBetStraight = "straight"
	rouletteBetRed      = "red"
	rouletteBetBlack    = "black"
	rouletteBetEven     = "even"
	rouletteBetOdd      = "odd"
	rouletteBetLow      = "low"
	rouletteBetHigh     = "high"
)

var straightMultiplier = decimal.NewFromInt(35)

// redNumbers of a European wheel. Zero is green: neither red nor black,
// neither even nor odd.
var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

type rouletteParams struct {
	Type   string `json:"type"`
	Number int    `json:"number"`
}

func parseRouletteParams(raw json.RawMessage) (rouletteParams, error) {
	var p rouletteParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("%w: %s", ErrInvalidParams, err)
	}
	switch p.Type {
	case rouletteBetRed, rouletteBetBlack, rouletteBetEven, rouletteBetOdd, rouletteBetLow, rouletteBetHigh:
	case rouletteBetStraight:
		if p.Number < 0 || p.Number > 36 {
			return p, fmt.Errorf("%w: straight bets need a number from 0 to 36", ErrInvalidParams)
		}
	default:
		return p, fmt.Errorf("%w: unknown roulette bet type %q", ErrInvalidParams, p.Type)
	}
	return p, nil
}

func drawRoulette(rng Rand) int {
	return rng.Intn(37)
}

func settleRoulette(pocket int, p rouletteParams, stake decimal.Decimal) Result {
	isRed := redNumbers[pocket]
	isBlack := pocket != 0 && !isRed

	var won bool
	multiplier := evenMoneyMultiplier

	switch p.Type {
	case rouletteBetStraight:
		won = pocket == p.Number
		multiplier = straightMultiplier
	case rouletteBetRed:
		won = isRed
	case rouletteBetBlack:
		won = isBlack
	case rouletteBetEven:
		won = pocket != 0 && pocket%2 == 0
	case rouletteBetOdd:
		won = pocket%2 != 0
	case rouletteBetLow:
		won = pocket >= 1 && pocket <= 18
	case rouletteBetHigh:
		won = pocket >= 19
	}

	color := "green"
	if isRed {
		color = "red"
	} else if isBlack {
		color = "black"
	}

	return Result{
		Outcome: fmt.Sprintf("Landed on %d (%s)", pocket, titleColor(color)),
		Payout:  payout(stake, multiplier, won),
		Won:     won,
		Value:   pocket,
		Color:   color,
	}
}

func titleColor(c string) string {
	switch c {
	case "red":
		return "Red"
	case "black":
		return "Black"
	default:
		return "Green"
	}
}
