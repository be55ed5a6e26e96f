package gui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lowkeygames/casino-nights/internal/parser"
)

const consoleLogCap = 50

// console is the pit-boss command line, toggled with backquote on the
// casino floor. Commands go through the fuzzy parser so near-miss typing
// gets a suggestion instead of a shrug.
type console struct {
	open   bool
	input  string
	log    []string
	parser *parser.Parser
}

func newConsole(p *parser.Parser) console {
	return console{parser: p}
}

func (c *console) close() {
	c.open = false
	c.input = ""
}

func (c *console) append(msg string) {
	c.log = append(c.log, msg)
	if len(c.log) > consoleLogCap {
		c.log = c.log[len(c.log)-consoleLogCap:]
	}
}

// updateConsole handles the toggle and, while open, owns keyboard input.
// Returns true when the console consumed this frame's input.
func (ui *gameUI) updateConsole(now time.Time) bool {
	if rl.IsKeyPressed(rl.KeyGrave) {
		ui.console.open = !ui.console.open
		ui.console.input = ""
		return ui.console.open
	}
	if !ui.console.open {
		return false
	}

	captureTextInput(&ui.console.input, 60)
	if rl.IsKeyPressed(rl.KeyEscape) {
		ui.console.close()
		return true
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
		line := ui.console.input
		ui.console.input = ""
		if line != "" {
			ui.execConsole(line, now)
		}
	}
	return true
}

func (ui *gameUI) execConsole(line string, now time.Time) {
	ui.console.append("> " + line)

	intent := ui.console.parser.Parse(line)
	if intent.Kind != parser.Command {
		if intent.Clarify != nil {
			ui.console.append(intent.Clarify.Prompt)
		} else {
			ui.console.append("Unknown command. Try: help")
		}
		return
	}

	switch intent.Verb {
	case "help":
		for _, cmd := range ui.console.parser.Commands() {
			ui.console.append("  " + cmd.Usage)
		}
	case "balance":
		ui.console.append(fmt.Sprintf("You have $%d.", ui.player.Money))
	case "loan":
		if !ui.player.LoanActive() {
			ui.console.append("No loan outstanding.")
			break
		}
		left := int(ui.player.LoanTimeLeft(now).Seconds())
		ui.console.append(fmt.Sprintf("Loan of $%d, %ds left to repay.", ui.player.Loan.Principal, left))
	case "repay":
		if err := ui.player.RepayLoan(); err != nil {
			ui.console.append("Can't do that: " + err.Error())
			break
		}
		ui.console.append("Loan repaid.")
	case "go":
		target, ok := roomForName(intent.Args[0])
		if !ok {
			ui.console.append(fmt.Sprintf("No room called %q here.", intent.Args[0]))
			break
		}
		ui.console.close()
		ui.requestTransition(target)
	case "quit":
		ui.quit = true
	}
}

func roomForName(name string) (screen, bool) {
	switch name {
	case "floor", "casino":
		return screenFloor, true
	case "bank":
		return screenBank, true
	case "roulette":
		return screenRoulette, true
	case "blackjack", "cards":
		return screenBlackjack, true
	case "slots", "slot":
		return screenSlots, true
	case "wardrobe":
		return screenWardrobe, true
	}
	return screenFloor, false
}

func (c *console) draw(width, height int32) {
	if !c.open {
		return
	}
	box := rl.NewRectangle(10, float32(height)-210, float32(width)-20, 200)
	drawPanel(box, "Pit Boss")

	const visible = 5
	start := 0
	if len(c.log) > visible {
		start = len(c.log) - visible
	}
	drawLines(box, 36, 18, c.log[start:], colorDim)

	rl.DrawText("> "+c.input+"_", int32(box.X)+14, int32(box.Y+box.Height)-30, 18, colorText)
}
