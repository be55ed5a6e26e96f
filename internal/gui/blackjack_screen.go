package gui

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lowkeygames/casino-nights/internal/game"
)

type blackjackState struct {
	table   *game.Blackjack
	message string
}

func newBlackjackState(bet int, rng *rand.Rand) blackjackState {
	return blackjackState{
		table:   game.NewBlackjack(bet, rng),
		message: "Press SPACE to deal",
	}
}

func (ui *gameUI) updateBlackjack(now time.Time) {
	switch {
	case rl.IsKeyPressed(rl.KeyEscape):
		ui.requestTransition(screenFloor)
	case rl.IsKeyPressed(rl.KeySpace):
		if msg := ui.blackjack.table.StartRound(ui.player); msg != "" {
			ui.blackjack.message = msg
		}
	case rl.IsKeyPressed(rl.KeyH):
		if msg := ui.blackjack.table.Hit(ui.player); msg != "" {
			ui.blackjack.message = msg
		}
	case rl.IsKeyPressed(rl.KeyS):
		if msg := ui.blackjack.table.Stand(ui.player); msg != "" {
			ui.blackjack.message = msg
		}
	}

	ui.checkLoan(now)
}

func (ui *gameUI) drawBlackjack(now time.Time) {
	rl.DrawRectangle(0, 0, ui.width, ui.height, colorFelt)
	table := ui.blackjack.table

	panel := rl.NewRectangle(120, 100, 560, 320)
	drawPanel(panel, fmt.Sprintf("Blackjack - $%d a hand", table.Bet))

	dealer := table.DealerHand
	if table.InProgress && len(dealer) > 0 {
		// Hole card stays hidden until the round resolves.
		rl.DrawText("Dealer: "+handString(dealer[:1])+" [?]", 150, 160, 22, colorText)
	} else {
		rl.DrawText(fmt.Sprintf("Dealer: %s (%d)", handString(dealer), game.HandValue(dealer)), 150, 160, 22, colorText)
	}
	rl.DrawText(fmt.Sprintf("You: %s (%d)", handString(table.PlayerHand), game.HandValue(table.PlayerHand)), 150, 220, 22, colorText)

	rl.DrawText(ui.blackjack.message, 150, 300, 22, colorAccent)

	if table.InProgress {
		rl.DrawText("H hit  S stand", 150, 370, 20, colorDim)
	} else {
		rl.DrawText("SPACE deal  ESC walk away", 150, 370, 20, colorDim)
	}
	ui.drawHUD(now)
}

func handString(hand []int) string {
	if len(hand) == 0 {
		return "-"
	}
	parts := make([]string, len(hand))
	for i, card := range hand {
		if card == 11 {
			parts[i] = "A"
		} else {
			parts[i] = strconv.Itoa(card)
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}
