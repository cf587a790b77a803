package game

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	faceHeads = "heads"
	faceTails = "tails"
)

type coinFlipParams struct {
	Choice string `json:"choice"`
}

func parseCoinFlipParams(raw json.RawMessage) (coinFlipParams, error) {
	var p coinFlipParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("%w: %s", ErrInvalidParams, err)
	}
	if p.Choice != faceHeads && p.Choice != faceTails {
		return p, fmt.Errorf(`%w: choice must be "heads" or "tails"`, ErrInvalidParams)
	}
	return p, nil
}

func drawCoinFlip(rng Rand) string {
	if rng.Intn(2) == 0 {
		return faceHeads
	}
	return faceTails
}

func settleCoinFlip(face string, p coinFlipParams, stake decimal.Decimal) Result {
	won := face == p.Choice
	return Result{
		Outcome: face,
		Payout:  payout(stake, evenMoneyMultiplier, won),
		Won:     won,
	}
}
