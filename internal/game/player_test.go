package game

import (
	"errors"
	"testing"
	"time"
)

func TestStartLoanCreditsMoneyAndArmsDeadline(t *testing.T) {
	now := time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)
	p := NewPlayer(1000)

	p.StartLoan(500, time.Minute, now)

	if p.Money != 1500 {
		t.Fatalf("expected 1500 after loan credit, got %d", p.Money)
	}
	if !p.LoanActive() {
		t.Fatalf("expected active loan")
	}
	if p.Loan.Principal != 500 {
		t.Fatalf("expected principal 500, got %d", p.Loan.Principal)
	}
	if !p.Loan.Deadline.Equal(now.Add(time.Minute)) {
		t.Fatalf("expected deadline one minute out, got %v", p.Loan.Deadline)
	}
}

func TestSecondLoanWhileActiveIsNoOp(t *testing.T) {
	now := time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)
	p := NewPlayer(1000)

	p.StartLoan(500, time.Minute, now)
	p.StartLoan(1000, 2*time.Minute, now)

	if p.Money != 1500 {
		t.Fatalf("expected money to increase by exactly 500, got %d", p.Money)
	}
	if p.Loan.Principal != 500 {
		t.Fatalf("expected first loan to survive, got principal %d", p.Loan.Principal)
	}
}

func TestRepayLoanInsufficientFundsLeavesLoanActive(t *testing.T) {
	now := time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)
	p := NewPlayer(0)
	p.StartLoan(500, time.Minute, now)
	p.Money = 200

	err := p.RepayLoan()
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if p.Money != 200 {
		t.Fatalf("expected money untouched, got %d", p.Money)
	}
	if !p.LoanActive() {
		t.Fatalf("expected loan to remain active after failed repayment")
	}
}

func TestRepayLoanDebitsPrincipalAndClears(t *testing.T) {
	now := time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)
	p := NewPlayer(100)
	p.StartLoan(500, time.Minute, now)

	if err := p.RepayLoan(); err != nil {
		t.Fatalf("repay: %v", err)
	}
	if p.Money != 100 {
		t.Fatalf("expected balance back to 100 after repayment, got %d", p.Money)
	}
	if p.LoanActive() {
		t.Fatalf("expected loan cleared")
	}
}

func TestRepayLoanWithoutLoan(t *testing.T) {
	p := NewPlayer(1000)
	if err := p.RepayLoan(); !errors.Is(err, ErrNoLoan) {
		t.Fatalf("expected ErrNoLoan, got %v", err)
	}
}

func TestLoanOverdueStrictlyAfterDeadline(t *testing.T) {
	start := time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)
	p := NewPlayer(1000)
	p.StartLoan(500, time.Minute, start)
	deadline := start.Add(time.Minute)

	if p.LoanOverdue(deadline.Add(-time.Millisecond)) {
		t.Fatalf("loan must not be overdue one millisecond before the deadline")
	}
	if p.LoanOverdue(deadline) {
		t.Fatalf("loan must not be overdue exactly at the deadline")
	}
	if !p.LoanOverdue(deadline.Add(time.Millisecond)) {
		t.Fatalf("loan must be overdue strictly after the deadline")
	}
}

func TestLoanTimeLeftClampsAtZero(t *testing.T) {
	start := time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)
	p := NewPlayer(1000)

	if p.LoanTimeLeft(start) != 0 {
		t.Fatalf("expected zero time left without a loan")
	}

	p.StartLoan(500, time.Minute, start)
	if got := p.LoanTimeLeft(start.Add(20 * time.Second)); got != 40*time.Second {
		t.Fatalf("expected 40s left, got %v", got)
	}
	if got := p.LoanTimeLeft(start.Add(5 * time.Minute)); got != 0 {
		t.Fatalf("expected time left clamped to zero past the deadline, got %v", got)
	}
}
