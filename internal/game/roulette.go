package game

import (
	"math/rand/v2"
)

type BetKind int

const (
	BetRed BetKind = iota
	BetBlack
	BetEven
	BetOdd
	BetNumber
)

// WheelSequence is the physical slot order of a single-zero European wheel.
// The draw is uniform over slots, so the ordering does not bias any number;
// it is kept canonical for display.
var WheelSequence = []int{
	0, 32, 15, 19, 4, 21, 2, 25, 17,
	34, 6, 27, 13, 36, 11, 30, 8,
	23, 10, 5, 24, 16, 33, 1, 20,
	14, 31, 9, 22, 18, 29, 7, 28,
	12, 35, 3, 26,
}

var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

func IsRed(n int) bool {
	return redNumbers[n]
}

type SpinResult struct {
	Number   int
	Won      bool
	Winnings int
}

// SpinRoulette debits the bet, draws one slot, and on a win re-credits the
// full bet times the multiplier (the stake itself is part of the payout).
// ErrInsufficientFunds leaves the player untouched.
func SpinRoulette(p *Player, kind BetKind, pick int, bet int, rng *rand.Rand) (SpinResult, error) {
	if p.Money < bet {
		return SpinResult{}, ErrInsufficientFunds
	}
	p.Money -= bet
	number := WheelSequence[rng.IntN(len(WheelSequence))]
	res := settleBet(kind, pick, bet, number)
	p.Money += res.Winnings
	return res, nil
}

func settleBet(kind BetKind, pick int, bet int, number int) SpinResult {
	res := SpinResult{Number: number, Won: betWins(kind, pick, number)}
	if res.Won {
		res.Winnings = bet * payoutMultiplier(kind)
	}
	return res
}

// Zero wins neither even nor odd; the house keeps every outside bet when the
// ball lands on 0. The exclusion is written out on both parities so the rule
// reads the same for each.
func betWins(kind BetKind, pick int, number int) bool {
	switch kind {
	case BetRed:
		return redNumbers[number]
	case BetBlack:
		return number != 0 && !redNumbers[number]
	case BetEven:
		return number != 0 && number%2 == 0
	case BetOdd:
		return number != 0 && number%2 == 1
	case BetNumber:
		return number == pick
	default:
		return false
	}
}

func payoutMultiplier(kind BetKind) int {
	if kind == BetNumber {
		return 36
	}
	return 2
}
