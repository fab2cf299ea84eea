package paintdrop

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/paintdrop/internal/core"
	"github.com/vovakirdan/paintdrop/internal/games/paintdrop/round"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func confirm() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	return in
}

// track moves the catcher under the lowest bucket, or away from it.
func track(g *Game, catch bool) {
	bs := g.buckets.Buckets()
	if len(bs) == 0 {
		return
	}
	x := bs[0].Drop.X
	if !catch {
		if x < g.cfg.Field.Width/2 {
			x = g.cfg.Field.Width
		} else {
			x = 0
		}
	}
	g.playerX = x
}

func TestGameResetShowsTitle(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	st := g.State()
	if st.GameOver || st.Paused || st.Score != 0 || st.Level != 1 {
		t.Errorf("State() after Reset = %+v", st)
	}
	if g.Round().State != round.StateIdle {
		t.Errorf("round state = %v, expected Idle", g.Round().State)
	}

	// Ticking on the title screen does nothing
	for i := 0; i < 120; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.buckets.Len() != 0 {
		t.Error("no buckets should spawn before the game starts")
	}
}

func TestGameSpawnsOnCadence(t *testing.T) {
	g := New()
	g.Reset(testRuntime(2))
	g.Step(confirm())

	cadence := g.Round().Cadence
	ticks := int(cadence/g.dt) + 1
	for i := 0; i < ticks; i++ {
		g.Step(core.NewInputFrame())
	}

	if g.Round().Spawned != 1 {
		t.Errorf("Spawned = %d after one cadence, expected 1", g.Round().Spawned)
	}
	if b := g.buckets.Buckets()[0]; b.Drop.Label != 10 {
		t.Errorf("first bucket label = %d, expected 10", b.Drop.Label)
	}
}

func TestGameCatchAllAdvancesLevel(t *testing.T) {
	g := New()
	g.Reset(testRuntime(3))
	g.Step(confirm())

	sawComplete := false
	for i := 0; i < 60*60 && g.State().Level == 1; i++ {
		track(g, true)
		g.Step(core.NewInputFrame())
		if g.Round().State == round.StateLevelComplete {
			sawComplete = true
		}
		if g.State().GameOver {
			t.Fatalf("missed a bucket at tick %d while tracking", i)
		}
	}

	if !sawComplete {
		t.Error("level 1 should pass through LevelComplete")
	}
	snap := g.Round()
	if snap.Level != 2 || snap.Score != 10 || snap.Planned != 20 {
		t.Errorf("after level 1: %+v", snap)
	}
}

func TestGameLevelDelay(t *testing.T) {
	g := New()
	g.Reset(testRuntime(4))
	g.Step(confirm())

	for i := 0; i < 60*60 && g.Round().State != round.StateLevelComplete; i++ {
		track(g, true)
		g.Step(core.NewInputFrame())
	}
	if g.Round().State != round.StateLevelComplete {
		t.Fatal("level 1 was not completed")
	}

	delayTicks := 0
	for g.Round().State == round.StateLevelComplete {
		g.Step(core.NewInputFrame())
		delayTicks++
		if delayTicks > 1000 {
			t.Fatal("level never advanced")
		}
	}

	waited := time.Duration(delayTicks) * g.dt
	if waited < 2250*time.Millisecond || waited > 2250*time.Millisecond+2*g.dt {
		t.Errorf("waited %v between levels, expected about 2.25s", waited)
	}
}

func TestGameMissEndsGame(t *testing.T) {
	g := New()
	g.Reset(testRuntime(5))
	g.Step(confirm())

	for i := 0; i < 60*10 && !g.State().GameOver; i++ {
		track(g, false)
		g.Step(core.NewInputFrame())
	}

	st := g.State()
	if !st.GameOver {
		t.Fatal("dodging every bucket should end the game")
	}
	if st.Score != 0 {
		t.Errorf("Score = %d, expected 0", st.Score)
	}
	if !g.buckets.Frozen() {
		t.Error("leftover buckets should freeze after a miss")
	}
	if g.playerX != g.cfg.Field.Width/2 {
		t.Errorf("catcher at %v after a miss, expected it back at center", g.playerX)
	}

	// The missed bucket stays on the ground as a splat until it pops
	splat := false
	for _, b := range g.buckets.Buckets() {
		splat = splat || b.Missed
	}
	if !splat {
		t.Fatal("missed bucket should stay on screen right after game over")
	}
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.ContainsRune(screen.Row(g.floorRow()), SplatChar) {
		t.Errorf("floor row %q should show the splat", screen.Row(g.floorRow()))
	}

	// Leftovers pop within the configured delay plus stagger
	for i := 0; i < 60*5; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.buckets.Len() != 0 {
		t.Errorf("%d buckets left after pop delay", g.buckets.Len())
	}

	// Space starts a fresh game
	g.Step(confirm())
	if g.State().GameOver || g.Round().State != round.StateSpawning {
		t.Errorf("confirm after game over should restart, state %v", g.Round().State)
	}
}

func TestGamePause(t *testing.T) {
	g := New()
	g.Reset(testRuntime(6))

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	// No pausing on the title screen
	g.Step(pause)
	if g.State().Paused {
		t.Error("pause should be ignored before the game starts")
	}

	g.Step(confirm())
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	ticks := g.tickCount
	for i := 0; i < 100; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.tickCount != ticks || g.Round().Spawned != 0 {
		t.Error("paused game should not advance")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestGamePlayerStaysInField(t *testing.T) {
	g := New()
	g.Reset(testRuntime(7))
	g.Step(confirm())

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	for i := 0; i < 200; i++ {
		g.Step(left)
	}
	if g.playerX != 0 {
		t.Errorf("playerX = %v, expected clamp at 0", g.playerX)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() []float64 {
		g := New()
		g.Reset(testRuntime(12345))
		g.Step(confirm())
		var xs []float64
		for i := 0; i < 60*8; i++ {
			track(g, true)
			g.Step(core.NewInputFrame())
			for _, b := range g.buckets.Buckets() {
				if len(xs) < 10 && b.Age == g.dt {
					xs = append(xs, b.Drop.X)
				}
			}
		}
		return xs
	}

	a, b := run(), run()
	if len(a) == 0 || len(a) != len(b) {
		t.Fatalf("runs spawned %d and %d drops", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("drop %d: %v != %v", i, a[i], b[i])
		}
	}
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime(8))
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"PAINT DROP", "Press SPACE to start", "Round: 1", "Score: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("title screen missing %q", want)
		}
	}
	if !strings.Contains(screen.Row(g.floorRow()), string(GroundChar)) {
		t.Error("ground line missing")
	}

	g.Step(confirm())
	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame())
	}
	g.Render(screen)
	if strings.Contains(screen.String(), "PAINT DROP") {
		t.Error("title banner should disappear once the game starts")
	}
	if !strings.Contains(screen.String(), "10") {
		t.Error("first bucket should show its countdown label")
	}
}

func TestGameResizeKeepsRound(t *testing.T) {
	g := New()
	g.Reset(testRuntime(3))
	g.Step(confirm())
	for i := 0; i < 70; i++ {
		g.Step(core.NewInputFrame())
	}
	before := g.Round()

	g.Resize(120, 40)

	if g.Round() != before {
		t.Errorf("Resize() changed the round: %+v -> %+v", before, g.Round())
	}
	if g.floorRow() != 38 {
		t.Errorf("floorRow() = %d after resize, expected 38", g.floorRow())
	}
	if g.column(g.cfg.Field.Width) != 119 {
		t.Errorf("column(width) = %d, expected 119", g.column(g.cfg.Field.Width))
	}
}

func TestGameCatchShowsPoints(t *testing.T) {
	g := New()
	g.Reset(testRuntime(8))
	g.Step(confirm())

	for i := 0; i < 60*5 && g.Round().Collected == 0; i++ {
		track(g, true)
		g.Step(core.NewInputFrame())
	}
	if g.Round().Collected != 1 {
		t.Fatalf("Collected = %d, expected one catch", g.Round().Collected)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "+1") {
		t.Error("a catch should flash the points above the catcher")
	}

	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}
	g.Render(screen)
	if strings.Contains(screen.String(), "+1") {
		t.Error("the catch popup should fade")
	}
}
