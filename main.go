package main

import (
	"flag"
	"log"
	"math/rand/v2"

	"github.com/iburimskiy/heart-burst/internal/config"
	"github.com/iburimskiy/heart-burst/internal/game"
)

func main() {
	cfgPath := flag.String("config", "", "YAML config file, reloaded on change")
	music := flag.String("music", "", "background music file (wav, mp3 or flac)")
	seed := flag.Uint64("seed", 0, "random seed for the burst and floaters, 0 for a random one")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("main: %v", err)
	}
	if *music != "" {
		cfg.Music.Path = *music
	}

	opts := game.Options{ConfigPath: *cfgPath}
	if *seed != 0 {
		opts.Rand = rand.New(rand.NewPCG(*seed, *seed))
	}

	if err := game.Run(game.New(cfg, opts)); err != nil {
		log.Fatalf("main: %v", err)
	}
}
