package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/flappy/autopilot"
)

func main() {
	debug := flag.Bool("debug", false, "draw silhouettes, broadphase boxes and tick stats")
	seed := flag.Int64("seed", 0, "pipe gap seed (0 picks a new seed every run)")
	pilot := flag.Bool("autopilot", false, "let a tengo script fly the bird")
	script := flag.String("script", autopilot.DefaultScript, "autopilot script in prefabs/scripts/ (basename, .tengo optional)")
	watch := flag.Bool("watch", false, "reload prefabs and scripts when they change on disk")
	scale := flag.Float64("scale", 1, "window scale")
	mute := flag.Bool("mute", false, "disable sound effects")
	flag.Parse()

	game, err := NewGame(Options{
		Debug:     *debug,
		Seed:      *seed,
		Autopilot: *pilot,
		Script:    *script,
		Watch:     *watch,
		Mute:      *mute,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	world := game.set.World
	ebiten.SetTPS(world.TickRate)
	ebiten.SetWindowSize(int(world.Width*(*scale)), int(world.Height*(*scale)))
	ebiten.SetWindowTitle("flappy")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
