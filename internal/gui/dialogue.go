package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// dialogue is the single modal box layered over whichever screen is active.
// While visible it owns all input. A nil choice list makes it an info box
// dismissed by any key; otherwise Up/Down move the highlight with wraparound
// and Enter/E invoke the callback exactly once.
type dialogue struct {
	visible  bool
	lines    []string
	choices  []string
	selected int
	callback func(choice int)
	queue    []func()
}

func (d *dialogue) open(lines []string, choices []string, callback func(int)) {
	d.visible = true
	d.lines = lines
	d.choices = choices
	d.selected = 0
	d.callback = callback
}

func (d *dialogue) openInfo(lines ...string) {
	d.open(lines, nil, nil)
}

// enqueue defers an open until the current box has been dismissed. Opening
// directly from inside another box's callback is fine too, since confirm
// closes before it invokes; the queue is for follow-ups that should wait a
// frame so the player sees each box on its own.
func (d *dialogue) enqueue(fn func()) {
	d.queue = append(d.queue, fn)
}

func (d *dialogue) drain() {
	if d.visible || len(d.queue) == 0 {
		return
	}
	fn := d.queue[0]
	d.queue = d.queue[1:]
	fn()
}

func (d *dialogue) navigate(delta int) {
	if len(d.choices) == 0 {
		return
	}
	d.selected = wrapIndex(d.selected+delta, len(d.choices))
}

// confirm closes the box before invoking the callback, so a callback that
// opens a new dialogue is not immediately closed by the teardown of the old
// one.
func (d *dialogue) confirm() {
	cb := d.callback
	choice := d.selected
	d.close()
	if cb != nil {
		cb(choice)
	}
}

func (d *dialogue) dismiss() {
	d.close()
}

func (d *dialogue) close() {
	d.visible = false
	d.lines = nil
	d.choices = nil
	d.selected = 0
	d.callback = nil
}

func (d *dialogue) reset() {
	d.close()
	d.queue = nil
}

func (d *dialogue) handleInput() {
	if !d.visible {
		return
	}
	if len(d.choices) == 0 {
		if rl.GetKeyPressed() != 0 {
			d.dismiss()
		}
		return
	}
	switch {
	case rl.IsKeyPressed(rl.KeyUp):
		d.navigate(-1)
	case rl.IsKeyPressed(rl.KeyDown):
		d.navigate(1)
	case rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) || rl.IsKeyPressed(rl.KeyE):
		d.confirm()
	case rl.IsKeyPressed(rl.KeyEscape):
		d.dismiss()
	}
}

func (d *dialogue) draw(width, height int32) {
	if !d.visible {
		return
	}
	rows := len(d.lines) + len(d.choices)
	boxH := float32(60 + rows*26)
	if boxH < 120 {
		boxH = 120
	}
	if boxH > float32(height)-80 {
		boxH = float32(height) - 80
	}
	box := rl.NewRectangle(float32(width)/2-260, float32(height)-boxH-30, 520, boxH)

	rl.DrawRectangle(0, 0, width, height, rl.NewColor(0, 0, 0, 120))
	drawPanel(box, "")

	y := int32(16)
	for _, line := range d.lines {
		rl.DrawText(line, int32(box.X)+16, int32(box.Y)+y, 20, colorText)
		y += 26
	}
	visible := maxVisibleChoices(int(boxH), len(d.lines))
	start := choiceWindowStart(d.selected, len(d.choices), visible)
	for i := start; i < len(d.choices) && i < start+visible; i++ {
		clr := colorDim
		prefix := "  "
		if i == d.selected {
			clr = colorHiliter
			prefix = "> "
		}
		rl.DrawText(prefix+d.choices[i], int32(box.X)+16, int32(box.Y)+y, 20, clr)
		y += 26
	}
}

func maxVisibleChoices(boxH, lineCount int) int {
	rows := (boxH-60)/26 - lineCount
	if rows < 1 {
		rows = 1
	}
	return rows
}

// choiceWindowStart scrolls long choice lists (the 0-36 number picker) so
// the highlight stays in view.
func choiceWindowStart(selected, total, visible int) int {
	if total <= visible {
		return 0
	}
	start := selected - visible/2
	return clampInt(start, 0, total-visible)
}
