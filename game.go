package main

import (
	"context"
	"fmt"
	"image"
	"log"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/pursuit/assets"
	"github.com/milk9111/pursuit/avatar"
	"github.com/milk9111/pursuit/difficulty"
	"github.com/milk9111/pursuit/loop"
	"github.com/milk9111/pursuit/prefabs"
	"github.com/milk9111/pursuit/pursuer"
	"github.com/milk9111/pursuit/render"
	"golang.org/x/image/colornames"
	"golang.org/x/sync/errgroup"
)

const debugDamage = 10

type Options struct {
	ConfigPath string
	Seed       uint64
	Debug      bool
}

type Game struct {
	frames     int
	debug      bool
	configPath string

	width, height float64

	queue      *loop.Queue
	avatar     *avatar.Avatar
	avatarImg  *ebiten.Image
	pursuers   *pursuer.Controller
	ramp       *difficulty.Ramp
	rampScript string
	rampEvery  time.Duration
	watcher    *prefabs.Watcher

	ui            *ebitenui.UI
	intervalLabel *widget.Text
	hud           *hud

	paused bool
	quit   bool

	clipboardReady bool
}

// NewGame loads the arena and textures, then starts the pursuer controller.
func NewGame(ctx context.Context, opts Options) (*Game, error) {
	var (
		spec      *prefabs.ArenaSpec
		avatarSrc image.Image
	)
	eg, _ := errgroup.WithContext(ctx)
	eg.Go(func() error {
		s, err := prefabs.LoadArenaSpec(opts.ConfigPath)
		if err != nil {
			return err
		}
		spec = s
		return nil
	})
	eg.Go(func() error {
		img, err := assets.DecodeImage(assets.AvatarTexture)
		if err != nil {
			return err
		}
		avatarSrc = img
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("game: startup: %w", err)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = spec.Seed
	}

	g := &Game{
		debug:      opts.Debug,
		configPath: opts.ConfigPath,
		width:      spec.Viewport.Width,
		height:     spec.Viewport.Height,
		queue:      loop.NewQueue(),
		avatarImg:  ebiten.NewImageFromImage(avatarSrc),
	}

	b := avatarSrc.Bounds()
	g.avatar = avatar.New(cp.Vector{X: g.width / 2, Y: g.height / 2}, float64(b.Dx()), float64(b.Dy()), spec.Avatar.Speed, spec.Avatar.Health)
	g.avatar.Health.RegenPerSecond = spec.Avatar.RegenPerSecond
	if g.debug {
		g.avatar.Health.OnDamage = func(h *avatar.Health, amount int) {
			log.Printf("game: avatar took %d damage, health %d/%d", amount, h.Current, h.Max)
		}
	}

	interval, ok := spec.SpawnInterval()
	if !ok {
		if spec.Pursuer.SpawnIntervalMS != 0 {
			log.Printf("game: ignoring spawn_interval_ms %v", spec.Pursuer.SpawnIntervalMS)
		}
		interval = 0
	}
	g.pursuers = pursuer.NewController(pursuer.Config{
		Viewport:      pursuer.FixedViewport{W: g.width, H: g.height},
		Avatar:        g.avatar,
		SpawnInterval: interval,
		Rand:          rand.New(rand.NewPCG(seed, seed)),
		Dispatch:      g.queue.Dispatch,
	})
	if s := spec.Pursuer.Speed; s != 0 && !g.pursuers.SetSpeed(s) {
		log.Printf("game: ignoring pursuer speed %v", s)
	}

	var tint render.TintFunc
	if spec.Pursuer.Tint {
		tint = render.RandomTint(rand.New(rand.NewPCG(seed, seed+1)))
	}
	if err := g.pursuers.Init(ctx, assets.PursuerTemplate(tint)); err != nil {
		g.queue.Close()
		return nil, fmt.Errorf("game: %w", err)
	}

	g.rampEvery = spec.RampEvery()
	g.loadRamp(spec.Difficulty.Script)

	watchDirs := []string{prefabs.Dir, filepath.Join(prefabs.Dir, "scripts")}
	if opts.ConfigPath != "" {
		watchDirs = append(watchDirs, filepath.Dir(opts.ConfigPath))
	}
	if w, err := prefabs.NewWatcher(watchDirs...); err != nil {
		log.Printf("game: hot reload disabled: %v", err)
	} else {
		g.watcher = w
	}

	g.hud = newHUD()
	g.ui, g.intervalLabel = NewPauseUI(g)
	return g, nil
}

func (g *Game) Update() error {
	g.frames++

	g.queue.Drain()
	g.reload()

	in := readInput()
	if in.Pause {
		g.setPaused(!g.paused)
	}
	if g.quit {
		return ebiten.Termination
	}
	if g.paused {
		g.ui.Update()
		return nil
	}

	g.avatar.Move(in.Move, g.width, g.height)
	if in.Damage {
		g.avatar.Health.TakeDamage(debugDamage)
	}
	if in.Snapshot {
		g.copySnapshot()
	}

	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}

	g.pursuers.Update()
	g.avatar.Health.Tick(tps)

	dt := time.Second / time.Duration(tps)
	if d, ok := g.ramp.Advance(dt, g.pursuers.Len(), g.pursuers.SpawnInterval()); ok {
		g.pursuers.SetSpawnInterval(d)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Darkslategray)

	render.DrawPopulation(screen, g.pursuers.Population())
	render.DrawCentered(screen, g.avatarImg, g.avatar.Position(), nil)

	g.hud.Draw(screen, g)
	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return g.width, g.height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close stops spawning and releases every pursuer.
func (g *Game) Close() {
	g.pursuers.Destroy()
	g.queue.Close()
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) setPaused(paused bool) {
	if g.paused == paused {
		return
	}
	g.paused = paused
	if paused {
		g.pursuers.Pause()
	} else {
		g.pursuers.Resume()
	}
	g.refreshPanel()
}

func (g *Game) loadRamp(script string) {
	g.rampScript = script
	if script == "" {
		g.ramp = nil
		return
	}
	r, err := difficulty.Load(script, g.rampEvery)
	if err != nil {
		log.Printf("game: difficulty ramp disabled: %v", err)
		return
	}
	r.Continue(g.ramp)
	g.ramp = r
}

// reload applies edited arena specs and scripts on the loop goroutine.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("game: watch: %v", err)
		}
	default:
	}

	for _, path := range g.watcher.Poll() {
		if strings.HasSuffix(path, ".tengo") {
			if g.rampScript != "" && filepath.Base(path) == filepath.Base(g.rampScript) {
				g.loadRamp(g.rampScript)
				log.Printf("game: reloaded %s", path)
			}
			continue
		}
		if !g.isArenaFile(path) {
			continue
		}

		spec, err := prefabs.LoadArenaSpec(g.configPath)
		if err != nil {
			log.Printf("game: reload %s: %v", path, err)
			continue
		}
		g.applySpec(spec)
		log.Printf("game: reloaded %s", path)
	}
}

func (g *Game) isArenaFile(path string) bool {
	want := prefabs.DiskPath(prefabs.ArenaFile)
	if g.configPath != "" {
		want = g.configPath
	}
	return filepath.Clean(path) == filepath.Clean(want)
}

// applySpec re-applies the tunable parts of an arena spec. Viewport and seed
// only take effect on restart.
func (g *Game) applySpec(spec *prefabs.ArenaSpec) {
	if d, ok := spec.SpawnInterval(); ok {
		g.pursuers.SetSpawnInterval(d)
	} else {
		log.Printf("game: ignoring spawn_interval_ms %v", spec.Pursuer.SpawnIntervalMS)
	}
	if !g.pursuers.SetSpeed(spec.Pursuer.Speed) {
		log.Printf("game: ignoring pursuer speed %v", spec.Pursuer.Speed)
	}
	if spec.Avatar.Health > 0 {
		g.avatar.Health.SetMax(spec.Avatar.Health)
	}
	g.avatar.Health.RegenPerSecond = spec.Avatar.RegenPerSecond

	g.rampEvery = spec.RampEvery()
	if spec.Difficulty.Script != g.rampScript {
		g.loadRamp(spec.Difficulty.Script)
	} else if g.ramp != nil {
		g.ramp.Every = g.rampEvery
	}
	g.refreshPanel()
}
