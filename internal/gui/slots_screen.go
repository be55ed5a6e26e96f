package gui

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lowkeygames/casino-nights/internal/game"
)

type slotsState struct {
	machine *game.SlotMachine
	message string
}

func newSlotsState(cfg game.SlotConfig, rng *rand.Rand) slotsState {
	return slotsState{
		machine: game.NewSlotMachine(cfg, rng),
		message: fmt.Sprintf("SPACE to spin ($%d)", cfg.Cost),
	}
}

func (ui *gameUI) updateSlots(now time.Time) {
	if msg, done := ui.slots.machine.Resolve(ui.player, now); done {
		ui.slots.message = msg
	}

	switch {
	case rl.IsKeyPressed(rl.KeyEscape):
		ui.requestTransition(screenFloor)
	case rl.IsKeyPressed(rl.KeySpace):
		if msg := ui.slots.machine.Spin(ui.player, now); msg != "" {
			ui.slots.message = msg
		}
	}

	ui.checkLoan(now)
}

func (ui *gameUI) drawSlots(now time.Time) {
	rl.DrawRectangle(0, 0, ui.width, ui.height, rl.NewColor(55, 20, 70, 255))

	panel := rl.NewRectangle(160, 120, 480, 300)
	drawPanel(panel, "Slots")

	for i, symbol := range ui.slots.machine.Reels {
		reel := rl.NewRectangle(200+float32(i)*140, 180, 120, 90)
		rl.DrawRectangleRec(reel, colorPanel)
		rl.DrawRectangleLinesEx(reel, 2, colorBorder)
		drawTextCentered(symbol, reel, 34, 22, colorText)
	}

	rl.DrawText(ui.slots.message, 200, 310, 22, colorAccent)
	rl.DrawText(payoutLine(ui.slots.machine.Payouts), 200, 350, 18, colorDim)
	rl.DrawText("SPACE spin  ESC walk away", 200, 380, 20, colorDim)

	ui.drawHUD(now)
}

func payoutLine(payouts map[string]int) string {
	symbols := make([]string, 0, len(payouts))
	for s := range payouts {
		symbols = append(symbols, s)
	}
	sort.Slice(symbols, func(i, j int) bool { return payouts[symbols[i]] < payouts[symbols[j]] })
	line := "3x pays:"
	for _, s := range symbols {
		line += fmt.Sprintf("  %s $%d", s, payouts[s])
	}
	return line
}
