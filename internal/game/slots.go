package game

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"time"
)

// SlotMachine draws three reels independently and uniformly after a fixed
// real-time spin delay. The delay is polled against a stored deadline; the
// frame loop never blocks on it.
type SlotMachine struct {
	Cost     int
	Delay    time.Duration
	Payouts  map[string]int
	Reels    [3]string
	Spinning bool
	SpinEnds time.Time

	symbols []string
	rng     *rand.Rand
}

func NewSlotMachine(cfg SlotConfig, rng *rand.Rand) *SlotMachine {
	symbols := make([]string, 0, len(cfg.Payouts))
	for symbol := range cfg.Payouts {
		symbols = append(symbols, symbol)
	}
	// Stable draw order regardless of map iteration.
	sort.Strings(symbols)
	s := &SlotMachine{
		Cost:    cfg.Cost,
		Delay:   cfg.Delay(),
		Payouts: cfg.Payouts,
		symbols: symbols,
		rng:     rng,
	}
	s.Reels = [3]string{"?", "?", "?"}
	return s
}

// Spin debits the cost and arms the spin deadline. A no-op while already
// spinning; an insufficient balance reports without mutating anything.
func (s *SlotMachine) Spin(p *Player, now time.Time) string {
	if s.Spinning {
		return ""
	}
	if p.Money < s.Cost {
		return "Not enough money!"
	}
	p.Money -= s.Cost
	s.Spinning = true
	s.SpinEnds = now.Add(s.Delay)
	s.Reels = [3]string{"?", "?", "?"}
	return "Spinning..."
}

// Resolve finishes a due spin: three uniform draws, win iff all match, total
// loss of stake otherwise. Returns false while no spin is due.
func (s *SlotMachine) Resolve(p *Player, now time.Time) (string, bool) {
	if !s.Spinning || now.Before(s.SpinEnds) {
		return "", false
	}
	s.Spinning = false
	for i := range s.Reels {
		s.Reels[i] = s.symbols[s.rng.IntN(len(s.symbols))]
	}
	if s.Reels[0] == s.Reels[1] && s.Reels[1] == s.Reels[2] {
		payout := s.Payouts[s.Reels[0]]
		p.Money += payout
		return fmt.Sprintf("3x %s! You won $%d!", s.Reels[0], payout), true
	}
	return "No match. You lost.", true
}
