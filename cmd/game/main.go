package main

import (
	"flag"
	"log"

	"github.com/Garsondee/penalty-kick/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	var seed int64
	var scale float64
	flag.Int64Var(&seed, "seed", 0, "RNG seed for AI choices (0 = time-based)")
	flag.Float64Var(&scale, "scale", 1, "window scale factor")
	flag.Parse()

	g, err := game.New(game.DefaultConfig(), seed)
	if err != nil {
		log.Fatal(err)
	}
	w, h := g.Layout(0, 0)
	ebiten.SetWindowTitle("Penalty Kick")
	ebiten.SetWindowSize(int(float64(w)*scale), int(float64(h)*scale))
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
