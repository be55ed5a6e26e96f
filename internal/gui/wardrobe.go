package gui

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type outfit struct {
	name  string
	color rl.Color
}

var outfits = []outfit{
	{"Street", rl.NewColor(200, 60, 60, 255)},
	{"Tuxedo", rl.NewColor(30, 30, 36, 255)},
	{"Velvet", rl.NewColor(120, 30, 90, 255)},
	{"Gold Lame", rl.NewColor(218, 170, 40, 255)},
	{"Navy Suit", rl.NewColor(40, 56, 110, 255)},
	{"Emerald", rl.NewColor(24, 130, 70, 255)},
	{"Ivory", rl.NewColor(230, 224, 200, 255)},
	{"Scarlet", rl.NewColor(180, 26, 40, 255)},
	{"Charcoal", rl.NewColor(70, 70, 76, 255)},
	{"Teal", rl.NewColor(28, 130, 140, 255)},
	{"Mauve", rl.NewColor(150, 110, 150, 255)},
	{"Copper", rl.NewColor(170, 100, 50, 255)},
	{"Slate", rl.NewColor(100, 110, 130, 255)},
	{"Rose", rl.NewColor(220, 130, 150, 255)},
	{"Lime", rl.NewColor(140, 190, 60, 255)},
	{"Midnight", rl.NewColor(20, 22, 50, 255)},
}

const wardrobeCols = 4

func outfitColor(idx int) rl.Color {
	if idx < 0 || idx >= len(outfits) {
		return outfits[0].color
	}
	return outfits[idx].color
}

type wardrobeState struct {
	selected int
}

func newWardrobeState(current int) wardrobeState {
	return wardrobeState{selected: clampInt(current, 0, len(outfits)-1)}
}

// moveSelection walks the 4x4 grid without wrapping; moves off an edge are
// ignored.
func (w *wardrobeState) moveSelection(dx, dy int) {
	col := w.selected % wardrobeCols
	row := w.selected / wardrobeCols
	rows := (len(outfits) + wardrobeCols - 1) / wardrobeCols

	col += dx
	row += dy
	if col < 0 || col >= wardrobeCols || row < 0 || row >= rows {
		return
	}
	idx := row*wardrobeCols + col
	if idx >= len(outfits) {
		return
	}
	w.selected = idx
}

func (ui *gameUI) updateWardrobe(now time.Time) {
	switch {
	case rl.IsKeyPressed(rl.KeyEscape):
		ui.requestTransition(screenFloor)
	case rl.IsKeyPressed(rl.KeyLeft):
		ui.wardrobe.moveSelection(-1, 0)
	case rl.IsKeyPressed(rl.KeyRight):
		ui.wardrobe.moveSelection(1, 0)
	case rl.IsKeyPressed(rl.KeyUp):
		ui.wardrobe.moveSelection(0, -1)
	case rl.IsKeyPressed(rl.KeyDown):
		ui.wardrobe.moveSelection(0, 1)
	case rl.IsKeyPressed(rl.KeyE) || rl.IsKeyPressed(rl.KeyEnter):
		ui.player.Outfit = ui.wardrobe.selected
		ui.requestTransition(screenFloor)
	}

	ui.checkLoan(now)
}

func (ui *gameUI) drawWardrobe(now time.Time) {
	rl.DrawRectangle(0, 0, ui.width, ui.height, rl.NewColor(45, 35, 28, 255))

	panel := rl.NewRectangle(180, 100, 440, 400)
	drawPanel(panel, "Wardrobe")

	for i, o := range outfits {
		col := i % wardrobeCols
		row := i / wardrobeCols
		swatch := rl.NewRectangle(220+float32(col)*100, 160+float32(row)*80, 70, 50)
		rl.DrawRectangleRec(swatch, o.color)
		border := colorBorder
		width := float32(2)
		if i == ui.wardrobe.selected {
			border = colorHiliter
			width = 4
		}
		rl.DrawRectangleLinesEx(swatch, width, border)
	}

	rl.DrawText(outfits[ui.wardrobe.selected].name, 220, 510, 22, colorAccent)
	rl.DrawText("Arrows browse  E wear it  ESC leave", 220, 545, 18, colorDim)

	ui.drawHUD(now)
}
