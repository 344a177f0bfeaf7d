package main

import (
	"flag"
	"log"
	"log/slog"

	"github.com/golangdaddy/joyride/pkg/game"
	"github.com/golangdaddy/joyride/pkg/road"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	var opts game.Options
	flag.StringVar(&opts.ConfigPath, "config", "", "road config JSON file")
	flag.StringVar(&opts.TrackPath, "track", "", "track file to race on instead of assets/tracks")
	flag.StringVar(&opts.SavePath, "save", "joyride_save.json", "save file")
	flag.Int64Var(&opts.Seed, "seed", 0, "random seed, 0 picks one from the clock")
	debug := flag.Bool("debug", false, "log road simulation events")
	flag.Parse()

	if *debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
		road.SetLogger(slog.Default())
	}

	g, err := game.NewGame(opts)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(game.ScreenWidth*4, game.ScreenHeight*4)
	ebiten.SetWindowTitle("Joyride")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
