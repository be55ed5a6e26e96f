package gui

import rl "github.com/gen2brain/raylib-go/raylib"

var (
	colorBG      = rl.NewColor(12, 10, 18, 255)
	colorFelt    = rl.NewColor(10, 92, 34, 255)
	colorCarpet  = rl.NewColor(34, 16, 44, 255)
	colorPanel   = rl.NewColor(24, 20, 34, 255)
	colorBorder  = rl.NewColor(212, 175, 55, 255)
	colorText    = rl.NewColor(236, 232, 220, 255)
	colorDim     = rl.NewColor(150, 144, 158, 255)
	colorAccent  = rl.NewColor(255, 214, 90, 255)
	colorWarn    = rl.NewColor(255, 170, 60, 255)
	colorDanger  = rl.NewColor(220, 60, 50, 255)
	colorHiliter = rl.NewColor(255, 255, 120, 255)
)

func drawPanel(rect rl.Rectangle, title string) {
	rl.DrawRectangleRounded(rect, 0.04, 8, colorPanel)
	rl.DrawRectangleRoundedLinesEx(rect, 0.04, 8, 2, colorBorder)
	if title != "" {
		rl.DrawText(title, int32(rect.X)+12, int32(rect.Y)+8, 20, colorAccent)
	}
}

func drawTextCentered(text string, rect rl.Rectangle, yOffset int32, fontSize int32, clr rl.Color) {
	width := rl.MeasureText(text, fontSize)
	x := int32(rect.X + (rect.Width-float32(width))/2)
	rl.DrawText(text, x, int32(rect.Y)+yOffset, fontSize, clr)
}

func drawLines(rect rl.Rectangle, y int32, size int32, lines []string, clr rl.Color) {
	for i, line := range lines {
		rl.DrawText(line, int32(rect.X)+14, int32(rect.Y)+y+int32(i)*(size+6), size, clr)
	}
}
