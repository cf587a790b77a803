package game

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	slotSymbols = []string{"cherry", "lemon", "orange", "grape", "diamond", "seven"}
	slotWeights = []int{45, 35, 25, 15, 5, 3}

	// jackpot multipliers for three of a kind, per symbol
	slotJackpots = map[string]decimal.Decimal{
		"cherry":  decimal.NewFromInt(5),
		"lemon":   decimal.NewFromInt(10),
		"orange":  decimal.NewFromInt(15),
		"grape":   decimal.NewFromInt(25),
		"diamond": decimal.NewFromInt(50),
		"seven":   decimal.NewFromInt(100),
	}

	pairMultiplier = decimal.NewFromFloat(1.5)

	slotTotalWeight = func() int {
		total := 0
		for _, w := range slotWeights {
			total += w
		}
		return total
	}()
)

// drawSymbol samples the weighted symbol alphabet by inverse CDF over the
// cumulative weights (total 128).
func drawSymbol(rng Rand) string {
	n := rng.Intn(slotTotalWeight)
	sum := 0
	for i, w := range slotWeights {
		sum += w
		if n < sum {
			return slotSymbols[i]
		}
	}
	return slotSymbols[0]
}

func drawReels(rng Rand) [3]string {
	return [3]string{drawSymbol(rng), drawSymbol(rng), drawSymbol(rng)}
}

func settleSlots(reels [3]string, stake decimal.Decimal) Result {
	var won bool
	var amount decimal.Decimal

	switch {
	case reels[0] == reels[1] && reels[1] == reels[2]:
		won = true
		amount = payout(stake, slotJackpots[reels[0]], true)
	case reels[0] == reels[1] || reels[1] == reels[2]:
		// two adjacent matching symbols
		won = true
		amount = payout(stake, pairMultiplier, true)
	}

	return Result{
		Outcome: strings.Join(reels[:], " "),
		Payout:  amount,
		Won:     won,
		Reels:   reels[:],
	}
}
