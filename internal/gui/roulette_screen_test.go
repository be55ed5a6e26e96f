package gui

import (
	"strings"
	"testing"

	"github.com/lowkeygames/casino-nights/internal/game"
)

func TestBetMenuSingleNumberQueuesPicker(t *testing.T) {
	ui := newTestUI(t)
	ui.enterScreen(transition{target: screenRoulette})

	ui.openBetMenu()
	if len(ui.dlg.choices) != 6 {
		t.Fatalf("expected five bet kinds plus cancel, got %v", ui.dlg.choices)
	}

	ui.dlg.selected = 4 // Single Number
	ui.dlg.confirm()
	if ui.dlg.visible {
		t.Fatal("picker must wait for the next drain, not open mid-confirm")
	}

	ui.dlg.drain()
	if !ui.dlg.visible || len(ui.dlg.choices) != 37 {
		t.Fatalf("expected 37-number picker, got %d choices", len(ui.dlg.choices))
	}
	if ui.dlg.choices[0] != "0" || ui.dlg.choices[36] != "36" {
		t.Fatalf("picker should run 0..36, got %s..%s", ui.dlg.choices[0], ui.dlg.choices[36])
	}
}

func TestNumberPickerSpinsAndDefersResult(t *testing.T) {
	ui := newTestUI(t)
	ui.enterScreen(transition{target: screenRoulette})

	ui.openNumberMenu()
	ui.dlg.selected = 17
	ui.dlg.confirm()

	// The wheel spun at confirm time: stake gone, winnings (if any) credited.
	if ui.player.Money != 950 && ui.player.Money != 950+50*36 {
		t.Fatalf("unexpected balance after number bet: %d", ui.player.Money)
	}

	ui.dlg.drain()
	if !ui.dlg.visible || len(ui.dlg.lines) != 2 {
		t.Fatalf("expected deferred two-line result, got %v", ui.dlg.lines)
	}
	if !strings.HasPrefix(ui.dlg.lines[0], "Ball landed on") {
		t.Fatalf("expected landing line first, got %q", ui.dlg.lines[0])
	}
}

func TestOutsideBetBookkeeping(t *testing.T) {
	ui := newTestUI(t)
	ui.enterScreen(transition{target: screenRoulette})

	for i := 0; i < 20; i++ {
		before := ui.player.Money
		ui.spinRouletteBet(game.BetRed, 0)
		after := ui.player.Money
		if after != before-ui.roulette.bet && after != before+ui.roulette.bet {
			t.Fatalf("spin %d: balance moved %d -> %d, want lose stake or double it", i, before, after)
		}
		ui.dlg.drain()
		ui.dlg.dismiss()
	}
}

func TestSpinWithoutFundsShowsMessageOnly(t *testing.T) {
	ui := newTestUI(t)
	ui.enterScreen(transition{target: screenRoulette})
	ui.player.Money = 10

	ui.spinRouletteBet(game.BetRed, 0)

	if ui.player.Money != 10 {
		t.Fatalf("broke player must not be charged, got %d", ui.player.Money)
	}
	ui.dlg.drain()
	if !ui.dlg.visible || !strings.Contains(ui.dlg.lines[0], "enough money") {
		t.Fatalf("expected insufficient-funds box, got %v", ui.dlg.lines)
	}
}

func TestDescribeNumberColours(t *testing.T) {
	if got := describeNumber(0); got != "0 (green)" {
		t.Fatalf("zero is green, got %q", got)
	}
	if got := describeNumber(1); got != "1 (red)" {
		t.Fatalf("one is red, got %q", got)
	}
	if got := describeNumber(2); got != "2 (black)" {
		t.Fatalf("two is black, got %q", got)
	}
}
