package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"dilemma/config"
	"dilemma/experiments"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	trials := flag.Int("trials", 0, "override the number of trials")
	seed := flag.Uint64("seed", 0, "override the random seed (0 = time-based)")
	verbose := flag.Bool("verbose", false, "log per-trial progress")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if !*verbose {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}
	if *trials > 0 {
		cfg.Trials = *trials
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	results, err := experiments.Run(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}

	for _, r := range results {
		fmt.Printf("%s: %.6f\n", r.Strategy, r.Weight)
	}
}
