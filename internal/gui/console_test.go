package gui

import (
	"strings"
	"testing"
	"time"
)

func lastLog(t *testing.T, ui *gameUI) string {
	t.Helper()
	if len(ui.console.log) == 0 {
		t.Fatal("console log is empty")
	}
	return ui.console.log[len(ui.console.log)-1]
}

func TestConsoleBalance(t *testing.T) {
	ui := newTestUI(t)

	ui.execConsole("balance", ui.now())
	if got := lastLog(t, ui); got != "You have $1000." {
		t.Fatalf("unexpected balance line: %q", got)
	}
}

func TestConsoleGoRequestsTransition(t *testing.T) {
	ui := newTestUI(t)
	ui.console.open = true

	ui.execConsole("go bank", ui.now())

	if ui.pending == nil || ui.pending.target != screenBank {
		t.Fatalf("expected pending bank transition, got %+v", ui.pending)
	}
	if ui.console.open {
		t.Fatal("console should close when walking off")
	}
}

func TestConsoleGoUnknownRoom(t *testing.T) {
	ui := newTestUI(t)

	ui.execConsole("go vault", ui.now())

	if ui.pending != nil {
		t.Fatalf("unknown room must not transition, got %+v", ui.pending)
	}
	if !strings.Contains(lastLog(t, ui), "vault") {
		t.Fatalf("expected room name in the complaint, got %q", lastLog(t, ui))
	}
}

func TestConsoleNearMissSuggests(t *testing.T) {
	ui := newTestUI(t)

	ui.execConsole("balnce", ui.now())

	if !strings.Contains(lastLog(t, ui), "Did you mean") {
		t.Fatalf("expected a suggestion, got %q", lastLog(t, ui))
	}
	if len(ui.console.log) > 0 && strings.Contains(lastLog(t, ui), "You have $") {
		t.Fatal("near-miss must not execute the command")
	}
}

func TestConsoleLoanAndRepay(t *testing.T) {
	ui := newTestUI(t)
	now := ui.now()

	ui.execConsole("loan", now)
	if got := lastLog(t, ui); got != "No loan outstanding." {
		t.Fatalf("unexpected loan status: %q", got)
	}

	ui.execConsole("repay", now)
	if !strings.Contains(lastLog(t, ui), "no active loan") {
		t.Fatalf("expected no-loan complaint, got %q", lastLog(t, ui))
	}

	ui.player.StartLoan(500, time.Minute, now)
	ui.execConsole("loan", now.Add(15*time.Second))
	if got := lastLog(t, ui); got != "Loan of $500, 45s left to repay." {
		t.Fatalf("unexpected loan status: %q", got)
	}

	ui.execConsole("repay", now)
	if got := lastLog(t, ui); got != "Loan repaid." {
		t.Fatalf("unexpected repay response: %q", got)
	}
	if ui.player.LoanActive() || ui.player.Money != 1000 {
		t.Fatalf("expected cleared loan at $1000, got $%d", ui.player.Money)
	}
}

func TestConsoleQuit(t *testing.T) {
	ui := newTestUI(t)

	ui.execConsole("quit", ui.now())
	if !ui.quit {
		t.Fatal("quit command should stop the loop")
	}
}

func TestConsoleLogCapped(t *testing.T) {
	ui := newTestUI(t)
	for i := 0; i < consoleLogCap*2; i++ {
		ui.console.append("line")
	}
	if len(ui.console.log) != consoleLogCap {
		t.Fatalf("expected capped log of %d, got %d", consoleLogCap, len(ui.console.log))
	}
}

func TestRoomForName(t *testing.T) {
	cases := map[string]screen{
		"floor":     screenFloor,
		"casino":    screenFloor,
		"bank":      screenBank,
		"roulette":  screenRoulette,
		"blackjack": screenBlackjack,
		"cards":     screenBlackjack,
		"slots":     screenSlots,
		"wardrobe":  screenWardrobe,
	}
	for name, want := range cases {
		got, ok := roomForName(name)
		if !ok || got != want {
			t.Fatalf("roomForName(%q) = %v, %v", name, got, ok)
		}
	}
	if _, ok := roomForName("gameover"); ok {
		t.Fatal("game over must not be walkable")
	}
}
