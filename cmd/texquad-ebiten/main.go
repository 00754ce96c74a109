// Command texquad-ebiten is texquad running on ebiten.
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"go.creack.net/texquad/cli"
	"go.creack.net/texquad/internal/ebitenview"
)

func main() {
	cfg, err := cli.ParseConfig()
	if err != nil {
		log.Fatalf("Failed to parse cli config: %s.", err)
	}

	game, err := ebitenview.New(cfg)
	if err != nil {
		log.Fatalf("Failed to load game: %s.", err)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
