package game

import (
	"errors"
	"time"
)

var (
	// ErrInsufficientFunds is reported to the player and leaves state untouched.
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNoLoan            = errors.New("no active loan")
)

// Loan is a cash advance with a hard repayment deadline. Missing the
// deadline is the game's fail state, not a balance adjustment.
type Loan struct {
	Principal int
	Deadline  time.Time
}

// Player owns the money balance and at most one active loan. Position and
// appearance live in the gui layer; this is the economy the screens mutate.
type Player struct {
	Money  int
	Outfit int
	Loan   *Loan
}

func NewPlayer(startingMoney int) *Player {
	return &Player{Money: startingMoney}
}

// StartLoan credits amount immediately and arms the deadline. Taking a
// second loan while one is active is a silent no-op.
func (p *Player) StartLoan(amount int, duration time.Duration, now time.Time) {
	if p.LoanActive() || amount <= 0 {
		return
	}
	p.Money += amount
	p.Loan = &Loan{
		Principal: amount,
		Deadline:  now.Add(duration),
	}
}

// RepayLoan debits the principal and clears the loan. Repayment may never
// push the balance below zero.
func (p *Player) RepayLoan() error {
	if !p.LoanActive() {
		return ErrNoLoan
	}
	if p.Money < p.Loan.Principal {
		return ErrInsufficientFunds
	}
	p.Money -= p.Loan.Principal
	p.Loan = nil
	return nil
}

func (p *Player) LoanActive() bool {
	return p.Loan != nil
}

func (p *Player) LoanTimeLeft(now time.Time) time.Duration {
	if !p.LoanActive() {
		return 0
	}
	left := p.Loan.Deadline.Sub(now)
	if left < 0 {
		return 0
	}
	return left
}

// LoanOverdue is true strictly after the deadline. It stays true until the
// caller transitions to game over; clearing the loan is the only reset.
func (p *Player) LoanOverdue(now time.Time) bool {
	return p.LoanActive() && now.After(p.Loan.Deadline)
}
