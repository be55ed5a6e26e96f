package gui

import rl "github.com/gen2brain/raylib-go/raylib"

func (ui *gameUI) updateGameOver() {
	switch {
	case rl.IsKeyPressed(rl.KeyR):
		ui.requestRestart()
	case rl.IsKeyPressed(rl.KeyEscape):
		ui.quit = true
	}
}

func (ui *gameUI) drawGameOver() {
	full := rl.NewRectangle(0, 0, float32(ui.width), float32(ui.height))
	drawTextCentered("GAME OVER", full, ui.height/2-60, 48, colorDanger)
	drawTextCentered("The debt collectors caught up with you.", full, ui.height/2+4, 20, colorText)
	drawTextCentered("R to try again, ESC to quit", full, ui.height/2+40, 20, colorDim)
}
