// Package paintdrop implements Paint Drop: paint buckets fall from the sky
// and the player slides a catcher along the ground to collect them. Missing a
// single bucket ends the game.
//
// Pacing, placement and scoring live in the round subpackage; this package is
// the host that turns them into ticks, positions and pixels.
package paintdrop

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/paintdrop/internal/config"
	"github.com/vovakirdan/paintdrop/internal/core"
	"github.com/vovakirdan/paintdrop/internal/games/paintdrop/round"
	"github.com/vovakirdan/paintdrop/internal/registry"
)

// Visual characters for rendering
const (
	GroundChar  = '═'
	CatcherChar = '▀'
	BucketChar  = '▄'
	SplatChar   = '▬'
)

// catchFlash is how long the points popup stays above the catcher.
const catchFlash = 400 * time.Millisecond

// Layout rows
const (
	hudRow   = 0
	spawnRow = 2
)

// Game implements Paint Drop on top of a round.Controller.
type Game struct {
	ctrl    *round.Controller
	buckets *BucketManager
	rng     *rand.Rand
	runtime core.RuntimeConfig
	cfg     config.PaintDropConfig

	playerX   float64       // Catcher center in field units
	dt        time.Duration // Duration of one tick
	spawnIn   time.Duration // Time until the next drop
	advanceIn time.Duration // Time until the next level starts
	paused    bool
	tickCount int

	flashIn   time.Duration // Time left on the catch popup
	flashText string
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a new Paint Drop game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "paintdrop"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Paint Drop"
}

// Reset loads configuration and returns to the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	g.runtime = runtime

	cfg, err := config.LoadPaintDrop(configPath)
	if err != nil {
		cfg = config.DefaultPaintDropConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPaintDropPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	ctrl, err := round.New(roundConfig(cfg), g.rng)
	if err != nil {
		// The loader validated the config, so only the hard-coded defaults remain.
		g.cfg = config.DefaultPaintDropConfig()
		ctrl, err = round.New(roundConfig(g.cfg), g.rng)
		if err != nil {
			panic(err)
		}
	}
	g.ctrl = ctrl

	if g.buckets == nil {
		g.buckets = NewBucketManager()
	}
	g.buckets.Clear()

	g.dt = time.Second / time.Duration(runtime.TickRate)
	g.playerX = g.cfg.Field.Width / 2
	g.spawnIn = 0
	g.advanceIn = 0
	g.paused = false
	g.tickCount = 0
	g.flashIn = 0
}

// Resize adapts the game to a new terminal size without touching the round.
// Positions live in field units, so only the column mapping changes.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
}

// roundConfig builds the controller configuration from the game config.
func roundConfig(cfg config.PaintDropConfig) round.Config {
	return round.Config{
		MinX:         0,
		MaxX:         cfg.Field.Width,
		Margin:       cfg.Field.Margin,
		MinCadence:   config.Seconds(cfg.Timing.MinCadence),
		MaxCadence:   config.Seconds(cfg.Timing.MaxCadence),
		FallDuration: config.Seconds(cfg.Timing.FallDuration),
	}
}

// must panics on controller contract violations, which are bugs in this host.
func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	state := g.ctrl.State()

	if in.Has(core.ActionConfirm) && (state == round.StateIdle || state == round.StateGameOver) {
		g.startGame()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.ctrl.InProgress() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	if g.flashIn > 0 {
		g.flashIn -= g.dt
	}
	g.movePlayer(in)
	g.buckets.Update(g.dt)

	switch state {
	case round.StateSpawning:
		g.spawnDue()
		g.resolveContacts()
	case round.StateLevelComplete:
		g.advanceIn -= g.dt
		if g.advanceIn <= 0 {
			must(g.ctrl.AdvanceLevel())
			g.spawnIn = g.ctrl.Cadence()
		}
	}

	return core.StepResult{State: g.State()}
}

// startGame begins a fresh game from the title or game over screen.
func (g *Game) startGame() {
	must(g.ctrl.StartNewGame())
	g.buckets.Clear()
	g.playerX = g.cfg.Field.Width / 2
	g.spawnIn = g.ctrl.Cadence()
	g.paused = false
	g.flashIn = 0
}

// movePlayer slides the catcher, keeping it inside the field.
func (g *Game) movePlayer(in core.InputFrame) {
	if !g.ctrl.InProgress() {
		return
	}
	if in.Has(core.ActionLeft) {
		g.playerX -= g.cfg.Player.Speed
	}
	if in.Has(core.ActionRight) {
		g.playerX += g.cfg.Player.Speed
	}
	g.playerX = core.ClampF(g.playerX, 0, g.cfg.Field.Width)
}

// spawnDue produces every drop whose cadence slot has come up.
func (g *Game) spawnDue() {
	g.spawnIn -= g.dt
	for g.spawnIn <= 0 && g.ctrl.Remaining() > 0 {
		d, err := g.ctrl.NextDrop()
		must(err)
		g.buckets.Spawn(d)
		g.spawnIn += g.ctrl.Cadence()
	}
}

// resolveContacts turns bucket positions into contacts for the controller.
func (g *Game) resolveContacts() {
	catcher := g.playerRect()
	floor := g.floorRow()

	for i := 0; i < g.buckets.Len(); {
		b := g.buckets.Buckets()[i]
		rect := g.bucketRect(b)

		other := round.CategoryNone
		switch {
		case rect.Y >= catcher.Y && rect.OverlapsX(catcher):
			other = round.CategoryPlayer
		case rect.Y >= floor:
			other = round.CategoryForeground
		}
		if other == round.CategoryNone {
			i++
			continue
		}

		contact, levelDone, err := g.ctrl.HandleContact(other, round.CategoryCollectible)
		must(err)

		if contact == round.ContactMissed {
			// The splat stays on the ground and pops with the leftovers
			g.buckets.MarkMissed(i)
			g.buckets.Freeze(config.Seconds(g.cfg.Timing.PopDelay), config.Seconds(g.cfg.Timing.PopStagger))
			g.playerX = g.cfg.Field.Width / 2
			return
		}

		g.buckets.Remove(i)
		g.flashIn = catchFlash
		g.flashText = fmt.Sprintf("+%d", g.ctrl.Level())
		if levelDone {
			g.advanceIn = config.Seconds(g.cfg.Timing.LevelDelay)
		}
	}
}

// floorRow returns the row of the ground line.
func (g *Game) floorRow() int {
	return core.Max(g.runtime.ScreenH-g.cfg.Field.Ground, spawnRow+3)
}

// column maps a field position to a screen column.
func (g *Game) column(x float64) int {
	maxCol := float64(core.Max(g.runtime.ScreenW-1, 0))
	return int(core.Remap(x, 0, g.cfg.Field.Width, 0, maxCol) + 0.5)
}

// playerRect returns the catcher's rectangle in screen coordinates.
func (g *Game) playerRect() core.Rect {
	w := g.cfg.Player.Width
	return core.NewRect(g.column(g.playerX)-w/2, g.floorRow()-1, w, 1)
}

// bucketRect returns a bucket's rectangle in screen coordinates.
func (g *Game) bucketRect(b Bucket) core.Rect {
	w := g.cfg.Bucket.Width
	span := float64(g.floorRow() - spawnRow)
	y := spawnRow + int(b.Progress()*span)
	return core.NewRect(g.column(b.Drop.X)-w/2, y, w, 1)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	floor := g.floorRow()
	dst.DrawHLine(0, floor, dst.Width(), GroundChar, core.ColorWhite)

	for _, b := range g.buckets.Buckets() {
		g.drawBucket(dst, b)
	}
	g.drawCatcher(dst)
	if g.flashIn > 0 {
		r := g.playerRect()
		dst.DrawTextColor(r.X+(r.W-len(g.flashText))/2, r.Y-1, g.flashText, core.ColorBrightYellow)
	}

	dst.DrawTextColor(2, hudRow, fmt.Sprintf(" Round: %d ", g.ctrl.Level()), core.ColorCyan)
	scoreText := fmt.Sprintf(" Score: %d ", g.ctrl.Score())
	dst.DrawTextColor(dst.Width()-len(scoreText)-2, hudRow, scoreText, core.ColorBrightYellow)

	switch {
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.ctrl.State() == round.StateIdle:
		g.drawCenteredMessage(dst, "PAINT DROP", "Press SPACE to start")
	case g.ctrl.State() == round.StateLevelComplete:
		g.drawCenteredMessage(dst, "GET READY!", fmt.Sprintf("Round %d coming up", g.ctrl.Level()+1))
	case g.ctrl.State() == round.StateGameOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  SPACE to try again", g.ctrl.Score()))
	}
}

// paintColors maps bucket paint to screen colors.
var paintColors = map[round.Paint]core.Color{
	round.PaintNone:   core.ColorWhite,
	round.PaintRed:    core.ColorRed,
	round.PaintBlue:   core.ColorBlue,
	round.PaintYellow: core.ColorYellow,
	round.PaintGray:   core.ColorGray,
}

// drawBucket renders a bucket with its countdown label above it.
func (g *Game) drawBucket(dst *core.Screen, b Bucket) {
	r := g.bucketRect(b)
	color := paintColors[b.Drop.Paint]
	if b.Missed {
		w := r.W + 4
		dst.DrawHLine(r.X+r.W/2-w/2, g.floorRow(), w, SplatChar, color)
		return
	}
	dst.DrawHLine(r.X, r.Y, r.W, BucketChar, color)

	label := fmt.Sprintf("%d", b.Drop.Label)
	dst.DrawTextColor(r.X+(r.W-len(label))/2, r.Y-1, label, core.ColorWhite)
}

// drawCatcher renders the player's catcher.
func (g *Game) drawCatcher(dst *core.Screen) {
	r := g.playerRect()
	dst.DrawHLine(r.X, r.Y, r.W, CatcherChar, core.ColorBrightGreen)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.ctrl.Score(),
		Level:    g.ctrl.Level(),
		GameOver: g.ctrl.State() == round.StateGameOver,
		Paused:   g.paused,
	}
}

// Playing reports whether a game is under way, including the pause
// between rounds.
func (g *Game) Playing() bool {
	return g.ctrl.InProgress()
}

// Round exposes the controller snapshot, mainly for tests and logging.
func (g *Game) Round() round.Snapshot {
	return g.ctrl.Snapshot()
}

// Register the game with the registry
func init() {
	registry.Register("paintdrop", func() registry.Game {
		return New()
	})
}
