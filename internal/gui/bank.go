package gui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lowkeygames/casino-nights/internal/game"
)

type bankState struct {
	npcRect  rl.Rectangle
	doorRect rl.Rectangle
}

func newBankState() bankState {
	return bankState{
		npcRect:  rl.NewRectangle(360, 200, 80, 100),
		doorRect: rl.NewRectangle(350, 580, 100, 20),
	}
}

func (ui *gameUI) updateBank(now time.Time) {
	if ui.dlg.visible {
		ui.dlg.handleInput()
		ui.checkLoan(now)
		return
	}

	ui.sprite.move(ui.width, ui.height)

	if rl.IsKeyPressed(rl.KeyEscape) {
		ui.sprite.setPos(bankExitX, bankExitY)
		ui.requestTransition(screenFloor)
	}

	if rl.IsKeyPressed(rl.KeyE) {
		me := ui.sprite.rect()
		switch {
		case rl.CheckCollisionRecs(me, ui.bank.npcRect):
			ui.openTellerMenu(now)
		case rl.CheckCollisionRecs(me, ui.bank.doorRect):
			ui.sprite.setPos(bankExitX, bankExitY)
			ui.requestTransition(screenFloor)
		}
	}

	ui.checkLoan(now)
}

// openTellerMenu builds the teller dialogue from the configured loan offers.
// With no loan outstanding every offer is on the table; with one active the
// only business is repayment.
func (ui *gameUI) openTellerMenu(now time.Time) {
	if ui.player.LoanActive() {
		left := int(ui.player.LoanTimeLeft(now).Seconds())
		ui.dlg.open(
			[]string{fmt.Sprintf("You owe $%d. %ds left.", ui.player.Loan.Principal, left)},
			[]string{fmt.Sprintf("Repay $%d", ui.player.Loan.Principal), "Leave"},
			func(choice int) {
				if choice != 0 {
					return
				}
				if err := ui.player.RepayLoan(); err != nil {
					ui.dlg.openInfo("You don't have enough money!")
					return
				}
				ui.dlg.openInfo("Loan repaid. Pleasure doing business.")
			},
		)
		return
	}

	offers := ui.conf.Loans
	choices := make([]string, 0, len(offers)+1)
	for _, o := range offers {
		choices = append(choices, fmt.Sprintf("Borrow $%d (%ds to repay)", o.Amount, o.Seconds))
	}
	choices = append(choices, "Leave")
	ui.dlg.open(
		[]string{"Welcome to the bank. Need a loan?"},
		choices,
		func(choice int) {
			if choice < 0 || choice >= len(offers) {
				return
			}
			ui.takeLoan(offers[choice])
		},
	)
}

func (ui *gameUI) takeLoan(offer game.LoanOffer) {
	now := ui.now()
	ui.player.StartLoan(offer.Amount, offer.Term(), now)
	ui.dlg.openInfo(fmt.Sprintf("Here's $%d. Repay it within %d seconds.", offer.Amount, offer.Seconds))
}

func (ui *gameUI) drawBank(now time.Time) {
	rl.DrawRectangle(0, 0, ui.width, ui.height, rl.NewColor(42, 42, 52, 255))

	rl.DrawRectangleRec(ui.bank.npcRect, rl.NewColor(60, 90, 150, 255))
	rl.DrawRectangleLinesEx(ui.bank.npcRect, 2, colorBorder)
	drawTextCentered("Teller", ui.bank.npcRect, int32(ui.bank.npcRect.Height)+6, 16, colorText)

	rl.DrawRectangleRec(ui.bank.doorRect, colorBorder)
	drawTextCentered("EXIT", ui.bank.doorRect, 2, 16, colorPanel)

	ui.sprite.draw(ui.player.Outfit)
	ui.drawHUD(now)
	rl.DrawText("E to talk to the teller", 16, ui.height-28, 18, colorDim)
}
