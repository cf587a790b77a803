package game

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	diceBetExact = "exact"
	diceBetHigh  = "high"
	diceBetLow   = "low"
)

// exactMultiplier pays 1/6 odds with the house edge applied.
var exactMultiplier = decimal.NewFromFloat(5.85)

type diceParams struct {
	Type   string `json:"type"`
	Number int    `json:"number"`
}

func parseDiceParams(raw json.RawMessage) (diceParams, error) {
	var p diceParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("%w: %s", ErrInvalidParams, err)
	}
	switch p.Type {
	case diceBetHigh, diceBetLow:
	case diceBetExact:
		if p.Number < 1 || p.Number > 6 {
			return p, fmt.Errorf("%w: exact dice bets need a number from 1 to 6", ErrInvalidParams)
		}
	default:
		return p, fmt.Errorf(`%w: type must be "exact", "high" or "low"`, ErrInvalidParams)
	}
	return p, nil
}

func drawDice(rng Rand) int {
	return rng.Intn(6) + 1
}

func settleDice(roll int, p diceParams, stake decimal.Decimal) Result {
	var won bool
	multiplier := evenMoneyMultiplier

	switch p.Type {
	case diceBetExact:
		won = roll == p.Number
		multiplier = exactMultiplier
	case diceBetHigh:
		won = roll >= 4
	case diceBetLow:
		won = roll <= 3
	}

	return Result{
		Outcome: fmt.Sprintf("Rolled %d", roll),
		Payout:  payout(stake, multiplier, won),
		Won:     won,
		Value:   roll,
	}
}
