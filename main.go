package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	seed := flag.Uint64("seed", 0, "random seed for spawn placement (0 uses the arena seed)")
	configPath := flag.String("config", "", "arena YAML file (default prefabs/arena.yaml, falling back to the embedded copy)")
	flag.Parse()

	log.SetPrefix(fmt.Sprintf("[%s] ", uuid.NewString()[:8]))

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	game, err := NewGame(context.Background(), Options{
		ConfigPath: *configPath,
		Seed:       *seed,
		Debug:      *debug,
	})
	if err != nil {
		log.Fatal(err)
	}

	w, h := game.LayoutF(0, 0)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(int(w), int(h))
	ebiten.SetWindowTitle("pursuit")

	err = ebiten.RunGame(game)
	game.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
