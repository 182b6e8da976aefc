package main

import (
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/flappy/assets"
	"github.com/milk9111/flappy/autopilot"
	"github.com/milk9111/flappy/input"
	"github.com/milk9111/flappy/prefabs"
	"github.com/milk9111/flappy/render"
	"github.com/milk9111/flappy/sim"
	"github.com/milk9111/flappy/sound"
)

type Mode int

const (
	ModeTitle Mode = iota
	ModePlaying
	ModePaused
	ModeOver
)

func (m Mode) String() string {
	switch m {
	case ModeTitle:
		return "title"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeOver:
		return "over"
	default:
		return "unknown"
	}
}

type Options struct {
	Debug     bool
	Seed      int64 // 0 picks a fresh seed every run
	Autopilot bool
	Script    string
	Watch     bool
	Mute      bool
}

type Game struct {
	opts Options

	set      *prefabs.Set
	imgs     *assets.Images
	renderer *render.Renderer
	sounds   *sound.Player
	input    *input.Keyboard
	pilot    *autopilot.Autopilot
	watcher  *prefabs.Watcher
	// pending holds reloaded specs until the next run starts.
	pending *prefabs.Set

	loop *sim.Loop
	seed int64
	mode Mode
	best int

	pauseUI   *ebitenui.UI
	overUI    *ebitenui.UI
	overLabel *widget.Text

	quit bool
}

func NewGame(opts Options) (*Game, error) {
	set, err := prefabs.LoadSet()
	if err != nil {
		return nil, err
	}

	g := &Game{opts: opts, input: input.NewKeyboard()}
	if err := g.build(set); err != nil {
		return nil, err
	}
	if !opts.Mute {
		g.sounds = sound.NewPlayer()
	}

	if opts.Autopilot {
		pilot, err := autopilot.Load(opts.Script)
		if err != nil {
			return nil, err
		}
		g.pilot = pilot
	}

	if opts.Watch {
		w, err := prefabs.NewWatcher()
		if err != nil {
			log.Printf("game: prefab watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.newRun()
	return g, nil
}

// build creates everything derived from the specs: sprites, masks, the
// renderer and the menus.
func (g *Game) build(set *prefabs.Set) error {
	imgs := assets.BuildImages(set)
	renderer, err := render.New(set, imgs)
	if err != nil {
		return err
	}
	if g.opts.Debug {
		renderer.EnableDebug()
	}

	g.set = set
	g.imgs = imgs
	g.renderer = renderer
	g.pauseUI = NewPauseUI(g)
	g.overUI, g.overLabel = NewGameOverUI(g)
	return nil
}

func (g *Game) newRun() {
	if g.pending != nil {
		if err := g.build(g.pending); err != nil {
			log.Printf("game: keeping previous prefabs: %v", err)
		} else {
			log.Printf("game: applied reloaded prefabs")
		}
		g.pending = nil
	}

	g.seed = g.opts.Seed
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}
	loop, err := sim.NewLoop(sim.Config{
		Tuning:   g.set.Tuning(),
		Random:   sim.NewRandom(g.seed),
		BirdMask: g.imgs.BirdMask,
		PipeMask: g.imgs.PipeMask,
	})
	if err != nil {
		// LoadSet already validated the tuning.
		log.Fatalf("game: %v", err)
	}
	g.loop = loop
	if g.pilot != nil {
		g.pilot.Reset()
	}
	g.setMode(ModeTitle)
}

func (g *Game) setMode(m Mode) {
	if g.mode != m {
		log.Printf("game: %s -> %s", g.mode, m)
	}
	g.mode = m
}

func (g *Game) Update() error {
	g.input.Update()
	g.applyChanges()

	if g.quit || g.input.QuitPressed {
		return ebiten.Termination
	}

	switch g.mode {
	case ModeTitle:
		if g.pilot != nil || g.input.JumpPressed {
			g.setMode(ModePlaying)
			g.step()
		}
	case ModePlaying:
		if g.input.PausePressed {
			g.setMode(ModePaused)
			return nil
		}
		g.step()
	case ModePaused:
		if g.input.PausePressed {
			g.setMode(ModePlaying)
			return nil
		}
		g.pauseUI.Update()
	case ModeOver:
		if g.input.ConfirmPressed {
			g.newRun()
			return nil
		}
		g.overUI.Update()
	}
	return nil
}

// step runs exactly one simulation tick.
func (g *Game) step() {
	var src sim.Source = g.input
	if g.pilot != nil {
		src = g.pilot
	}
	out := g.loop.Step(src.Poll(g.loop.Snapshot()))

	if out.Jumped {
		g.sounds.Play(sound.Flap)
	}
	if out.Scored {
		g.sounds.Play(sound.Point)
	}
	if out.Ended {
		g.sounds.Play(sound.Hit)
		g.finishRun(out)
	}
}

func (g *Game) finishRun(out sim.Outcome) {
	score := g.loop.Score()
	if score > g.best {
		g.best = score
	}
	log.Printf("game: run over seed=%d ticks=%d score=%d cause=%s", g.seed, out.Tick, score, out.Cause)
	g.overLabel.Label = gameOverText(score, g.best)
	g.setMode(ModeOver)

	if g.pilot != nil {
		g.newRun()
	}
}

// applyChanges picks up edited prefabs between ticks.
func (g *Game) applyChanges() {
	if g.watcher == nil {
		return
	}
	for _, c := range g.watcher.Poll() {
		switch c.Kind {
		case prefabs.ChangeSpec:
			set, err := prefabs.LoadSet()
			if err != nil {
				log.Printf("game: reload %s: %v", c.Path, err)
				continue
			}
			g.pending = set
			log.Printf("game: %s changed, applies on next run", c.Path)
		case prefabs.ChangeScript:
			if g.pilot == nil {
				continue
			}
			if err := g.pilot.Reload(); err != nil {
				log.Printf("game: reload %s: %v", c.Path, err)
				continue
			}
			log.Printf("game: autopilot script reloaded")
		}
	}
	select {
	case err := <-g.watcher.Errors:
		if err != nil {
			log.Printf("game: prefab watcher: %v", err)
		}
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.loop.Snapshot())

	switch g.mode {
	case ModeTitle:
		g.renderer.DrawBanner(screen, "Flappy", "Space, click or tap to flap")
	case ModePlaying:
		g.renderer.DrawScore(screen, g.loop.Score())
	case ModePaused:
		g.renderer.DrawScore(screen, g.loop.Score())
		g.pauseUI.Draw(screen)
	case ModeOver:
		g.overUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return g.set.World.Width, g.set.World.Height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) resume() {
	g.setMode(ModePlaying)
}

func (g *Game) restart() {
	g.newRun()
}

func (g *Game) requestQuit() {
	g.quit = true
}
