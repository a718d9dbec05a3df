package main

import (
	"log"

	"github.com/milk9111/pursuit/prefabs"
	"golang.design/x/clipboard"
)

// copySnapshot puts a YAML dump of the population on the system clipboard.
func (g *Game) copySnapshot() {
	b, err := prefabs.NewSnapshot(g.pursuers, g.avatar).Encode()
	if err != nil {
		log.Printf("game: snapshot: %v", err)
		return
	}

	if !g.clipboardReady {
		if err := clipboard.Init(); err != nil {
			log.Printf("game: clipboard unavailable: %v", err)
			return
		}
		g.clipboardReady = true
	}

	clipboard.Write(clipboard.FmtText, b)
	log.Printf("game: copied snapshot of %d pursuers", g.pursuers.Len())
}
