package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"settlers/experiments"
)

func main() {
	experiment := flag.String("experiment", "self_play", "experiment to run: self_play or throughput")
	debug := flag.Bool("debug", false, "enable per-action debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	switch *experiment {
	case "self_play":
		experiments.RunSelfPlayExperiment()
	case "throughput":
		experiments.RunThroughputExperiment()
	default:
		log.Fatal().Str("experiment", *experiment).Msg("unknown experiment")
	}
}
