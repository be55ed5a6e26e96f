package gui

import (
	"fmt"
	"math/rand/v2"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lowkeygames/casino-nights/internal/game"
	"github.com/lowkeygames/casino-nights/internal/parser"
)

// AppConfig carries build metadata and launch flags through to the UI.
type AppConfig struct {
	Version    string
	Commit     string
	BuildDate  string
	ConfigPath string
	Seed       int64
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	ui, err := newGameUI(a.cfg)
	if err != nil {
		return err
	}
	return ui.run()
}

type screen int

const (
	screenFloor screen = iota
	screenBank
	screenRoulette
	screenBlackjack
	screenSlots
	screenWardrobe
	screenGameOver
)

// transition is a one-shot screen change request. It is consumed exactly
// once per frame, after the active screen's update and before rendering, so
// a frame never renders a half-switched screen.
type transition struct {
	target      screen
	freshPlayer bool
}

type gameUI struct {
	cfg  AppConfig
	conf game.Config

	width  int32
	height int32
	quit   bool

	screen  screen
	pending *transition

	player *game.Player
	sprite avatar
	rng    *rand.Rand
	now    func() time.Time

	dlg     dialogue
	console console

	floor     floorState
	bank      bankState
	roulette  rouletteState
	blackjack blackjackState
	slots     slotsState
	wardrobe  wardrobeState
}

const (
	floorSpawnX = 400
	floorSpawnY = 300
	bankEntryX  = 380
	bankEntryY  = 520
	bankExitX   = 380
	bankExitY   = 40
)

func newGameUI(cfg AppConfig) (*gameUI, error) {
	conf, err := game.LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	ui := &gameUI{
		cfg:    cfg,
		conf:   conf,
		width:  800,
		height: 600,
		rng:    game.NewRNG(seed),
		now:    time.Now,
	}
	ui.player = game.NewPlayer(conf.StartingMoney)
	ui.sprite = newAvatar(floorSpawnX, floorSpawnY)
	ui.console = newConsole(parser.New())
	ui.enterScreen(transition{target: screenFloor})
	return ui, nil
}

func (ui *gameUI) run() error {
	rl.InitWindow(ui.width, ui.height, "Casino Nights")
	defer rl.CloseWindow()
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)

	for !ui.quit && !rl.WindowShouldClose() {
		now := ui.now()
		ui.update(now)

		rl.BeginDrawing()
		rl.ClearBackground(colorBG)
		ui.draw(now)
		rl.EndDrawing()
	}
	return nil
}

func (ui *gameUI) update(now time.Time) {
	ui.dlg.drain()

	switch ui.screen {
	case screenFloor:
		ui.updateFloor(now)
	case screenBank:
		ui.updateBank(now)
	case screenRoulette:
		ui.updateRoulette(now)
	case screenBlackjack:
		ui.updateBlackjack(now)
	case screenSlots:
		ui.updateSlots(now)
	case screenWardrobe:
		ui.updateWardrobe(now)
	case screenGameOver:
		ui.updateGameOver()
	}

	ui.applyPendingTransition()
}

func (ui *gameUI) draw(now time.Time) {
	switch ui.screen {
	case screenFloor:
		ui.drawFloor(now)
	case screenBank:
		ui.drawBank(now)
	case screenRoulette:
		ui.drawRoulette(now)
	case screenBlackjack:
		ui.drawBlackjack(now)
	case screenSlots:
		ui.drawSlots(now)
	case screenWardrobe:
		ui.drawWardrobe(now)
	case screenGameOver:
		ui.drawGameOver()
	}

	ui.dlg.draw(ui.width, ui.height)
	if ui.screen == screenFloor {
		ui.console.draw(ui.width, ui.height)
	}
}

func (ui *gameUI) requestTransition(target screen) {
	ui.pending = &transition{target: target}
}

func (ui *gameUI) requestRestart() {
	ui.pending = &transition{target: screenFloor, freshPlayer: true}
}

// applyPendingTransition consumes at most one queued transition per frame.
func (ui *gameUI) applyPendingTransition() {
	if ui.pending == nil {
		return
	}
	t := *ui.pending
	ui.pending = nil
	ui.enterScreen(t)
}

func (ui *gameUI) enterScreen(t transition) {
	if t.freshPlayer {
		ui.player = game.NewPlayer(ui.conf.StartingMoney)
		ui.sprite = newAvatar(floorSpawnX, floorSpawnY)
	}

	ui.dlg.reset()
	ui.console.close()

	switch t.target {
	case screenFloor:
		ui.floor = newFloorState()
	case screenBank:
		ui.bank = newBankState()
		ui.sprite.setPos(bankEntryX, bankEntryY)
	case screenRoulette:
		ui.roulette = newRouletteState(ui.conf.RouletteMinBet)
	case screenBlackjack:
		ui.blackjack = newBlackjackState(ui.conf.BlackjackBet, ui.rng)
	case screenSlots:
		ui.slots = newSlotsState(ui.conf.Slots, ui.rng)
	case screenWardrobe:
		ui.wardrobe = newWardrobeState(ui.player.Outfit)
	}
	ui.screen = t.target
}

// checkLoan forces game over once the loan deadline has passed. Every
// gameplay screen calls it so a deadline can never be outrun by standing
// at a table.
func (ui *gameUI) checkLoan(now time.Time) {
	if ui.player.LoanOverdue(now) {
		ui.requestTransition(screenGameOver)
	}
}

func (ui *gameUI) drawHUD(now time.Time) {
	rl.DrawText(fmt.Sprintf("$%d", ui.player.Money), 16, 12, 24, colorAccent)
	if ui.player.LoanActive() {
		left := int(ui.player.LoanTimeLeft(now).Seconds())
		clr := colorWarn
		if left <= 10 {
			clr = colorDanger
		}
		rl.DrawText(fmt.Sprintf("Loan $%d due in %ds", ui.player.Loan.Principal, left), 16, 40, 20, clr)
	}
}

func wrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// captureTextInput appends typed printable characters to buf and handles
// backspace, up to limit runes.
func captureTextInput(buf *string, limit int) {
	for {
		ch := rl.GetCharPressed()
		if ch == 0 {
			break
		}
		if ch >= 32 && ch < 127 && len(*buf) < limit {
			*buf += string(rune(ch))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(*buf) > 0 {
		*buf = (*buf)[:len(*buf)-1]
	}
}
