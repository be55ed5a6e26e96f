package gui

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// floorState is the casino floor hub: walkable area with one station per
// game, the bank door on the top wall, and the wardrobe.
type floorState struct {
	doorRect      rl.Rectangle
	blackjackRect rl.Rectangle
	rouletteRect  rl.Rectangle
	slotRect      rl.Rectangle
	wardrobeRect  rl.Rectangle
}

func newFloorState() floorState {
	return floorState{
		doorRect:      rl.NewRectangle(350, 0, 100, 20),
		blackjackRect: rl.NewRectangle(100, 120, 80, 60),
		rouletteRect:  rl.NewRectangle(250, 120, 80, 60),
		slotRect:      rl.NewRectangle(400, 120, 80, 60),
		wardrobeRect:  rl.NewRectangle(620, 420, 80, 60),
	}
}

func (ui *gameUI) updateFloor(now time.Time) {
	if ui.dlg.visible {
		ui.dlg.handleInput()
		ui.checkLoan(now)
		return
	}
	if ui.updateConsole(now) {
		ui.checkLoan(now)
		return
	}

	ui.sprite.move(ui.width, ui.height)

	if rl.CheckCollisionRecs(ui.sprite.rect(), ui.floor.doorRect) {
		ui.requestTransition(screenBank)
	}

	if rl.IsKeyPressed(rl.KeyE) {
		me := ui.sprite.rect()
		switch {
		case rl.CheckCollisionRecs(me, ui.floor.blackjackRect):
			ui.requestTransition(screenBlackjack)
		case rl.CheckCollisionRecs(me, ui.floor.rouletteRect):
			ui.requestTransition(screenRoulette)
		case rl.CheckCollisionRecs(me, ui.floor.slotRect):
			ui.requestTransition(screenSlots)
		case rl.CheckCollisionRecs(me, ui.floor.wardrobeRect):
			ui.requestTransition(screenWardrobe)
		}
	}

	ui.checkLoan(now)
}

func (ui *gameUI) drawFloor(now time.Time) {
	rl.DrawRectangle(0, 0, ui.width, ui.height, colorCarpet)

	drawStation(ui.floor.blackjackRect, "Blackjack", colorFelt)
	drawStation(ui.floor.rouletteRect, "Roulette", colorFelt)
	drawStation(ui.floor.slotRect, "Slots", rl.NewColor(90, 40, 110, 255))
	drawStation(ui.floor.wardrobeRect, "Wardrobe", rl.NewColor(70, 50, 30, 255))

	rl.DrawRectangleRec(ui.floor.doorRect, colorBorder)
	drawTextCentered("BANK", ui.floor.doorRect, 2, 16, colorPanel)

	ui.sprite.draw(ui.player.Outfit)
	ui.drawHUD(now)
	rl.DrawText("WASD to walk, E to play, ` for the pit boss", 16, ui.height-28, 18, colorDim)
}

func drawStation(rect rl.Rectangle, label string, clr rl.Color) {
	rl.DrawRectangleRec(rect, clr)
	rl.DrawRectangleLinesEx(rect, 2, colorBorder)
	drawTextCentered(label, rect, int32(rect.Height)+6, 16, colorText)
}
