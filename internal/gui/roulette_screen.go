package gui

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lowkeygames/casino-nights/internal/game"
)

type rouletteState struct {
	bet     int
	message string
}

func newRouletteState(minBet int) rouletteState {
	return rouletteState{bet: minBet, message: "E to place a bet"}
}

func (ui *gameUI) updateRoulette(now time.Time) {
	if ui.dlg.visible {
		ui.dlg.handleInput()
		ui.checkLoan(now)
		return
	}

	switch {
	case rl.IsKeyPressed(rl.KeyEscape):
		ui.requestTransition(screenFloor)
	case rl.IsKeyPressed(rl.KeyUp):
		ui.roulette.bet += ui.conf.RouletteBetStep
	case rl.IsKeyPressed(rl.KeyDown):
		if ui.roulette.bet-ui.conf.RouletteBetStep >= ui.conf.RouletteMinBet {
			ui.roulette.bet -= ui.conf.RouletteBetStep
		}
	case rl.IsKeyPressed(rl.KeyE):
		ui.openBetMenu()
	}

	ui.checkLoan(now)
}

// openBetMenu is the first of up to three chained dialogues: bet kind, then
// (for a single number) the number picker, then the spin result. The wheel
// spins the moment the bet is confirmed; only the telling is deferred.
func (ui *gameUI) openBetMenu() {
	ui.dlg.open(
		[]string{fmt.Sprintf("Roulette - choose your bet ($%d):", ui.roulette.bet)},
		[]string{"Red", "Black", "Even", "Odd", "Single Number", "Cancel"},
		func(choice int) {
			switch choice {
			case 0:
				ui.spinRouletteBet(game.BetRed, 0)
			case 1:
				ui.spinRouletteBet(game.BetBlack, 0)
			case 2:
				ui.spinRouletteBet(game.BetEven, 0)
			case 3:
				ui.spinRouletteBet(game.BetOdd, 0)
			case 4:
				ui.dlg.enqueue(ui.openNumberMenu)
			}
		},
	)
}

func (ui *gameUI) openNumberMenu() {
	choices := make([]string, 37)
	for i := range choices {
		choices[i] = strconv.Itoa(i)
	}
	ui.dlg.open(
		[]string{"Pick a number:"},
		choices,
		func(choice int) {
			ui.spinRouletteBet(game.BetNumber, choice)
		},
	)
}

func (ui *gameUI) spinRouletteBet(kind game.BetKind, pick int) {
	res, err := game.SpinRoulette(ui.player, kind, pick, ui.roulette.bet, ui.rng)
	if err != nil {
		if errors.Is(err, game.ErrInsufficientFunds) {
			ui.dlg.enqueue(func() { ui.dlg.openInfo("You don't have enough money!") })
		}
		return
	}
	landed := fmt.Sprintf("Ball landed on %s.", describeNumber(res.Number))
	verdict := "You lost your bet."
	if res.Won {
		verdict = fmt.Sprintf("You WON $%d!", res.Winnings)
	}
	ui.dlg.enqueue(func() { ui.dlg.openInfo(landed, verdict) })
}

func describeNumber(n int) string {
	if n == 0 {
		return "0 (green)"
	}
	if game.IsRed(n) {
		return fmt.Sprintf("%d (red)", n)
	}
	return fmt.Sprintf("%d (black)", n)
}

func (ui *gameUI) drawRoulette(now time.Time) {
	rl.DrawRectangle(0, 0, ui.width, ui.height, colorFelt)

	panel := rl.NewRectangle(160, 120, 480, 280)
	drawPanel(panel, "Roulette")
	rl.DrawText(fmt.Sprintf("Current bet: $%d", ui.roulette.bet), 190, 180, 24, colorText)
	rl.DrawText("UP/DOWN adjust bet", 190, 240, 20, colorDim)
	rl.DrawText("E place a bet  ESC walk away", 190, 270, 20, colorDim)
	rl.DrawText(ui.roulette.message, 190, 330, 20, colorAccent)

	ui.drawHUD(now)
}
