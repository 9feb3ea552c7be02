// Package experiments runs bot-vs-bot self-play batches and stores their
// outcomes. The batches double as a soak test for the rules core: every
// game must terminate with a winner, from nothing but legal actions.
package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"settlers/bot"
	"settlers/engine"
	"settlers/experiments/metrics"
	"settlers/game"
)

const (
	// NumGames is the batch size per player count.
	NumGames = 30
	// BaseSeed keeps batches reproducible; game i uses BaseSeed+i.
	BaseSeed = 1000
)

var playerCounts = []int{2, 3, 4}

// RunSelfPlayExperiment plays NumGames seeded games at every supported
// table size and writes the records and a summary as CSV.
func RunSelfPlayExperiment() {
	collector := &metrics.Collector{}

	log.Info().Msg("starting self_play experiment...")
	for _, n := range playerCounts {
		for i := 0; i < NumGames; i++ {
			seed := uint64(BaseSeed + i)
			record, err := RunGame(seed, n)
			if err != nil {
				log.Error().Err(err).Uint64("seed", seed).Int("players", n).
					Msg("game failed")
				continue
			}
			collector.Add(record)
			log.Info().Uint64("seed", seed).Int("players", n).
				Int("winner", record.Winner).Int("turns", record.Turns).
				Msg("game complete")
		}
	}
	summary := collector.Summarize()
	log.Info().Int("games", summary.Games).Float64("mean_turns", summary.MeanTurns).
		Msg("completed self_play experiment")

	writer, err := metrics.NewWriter("self_play")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create experiment writer")
	}
	if err := writer.WriteGameRecords(collector.Records()); err != nil {
		log.Fatal().Err(err).Msg("failed to write game records")
	}
	if err := writer.WriteSummary(summary); err != nil {
		log.Fatal().Err(err).Msg("failed to write summary")
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored experiment results")
}

// RunGame plays one all-bot game to completion and reports its record.
func RunGame(seed uint64, players int) (metrics.GameRecord, error) {
	names := make([]string, players)
	for i := range names {
		names[i] = fmt.Sprintf("bot-%d", i)
	}
	e, err := engine.New(game.Config{Seed: seed, Players: names, Rules: game.DefaultRules()})
	if err != nil {
		return metrics.GameRecord{}, err
	}
	for seat := 0; seat < players; seat++ {
		if err := e.RegisterBot(seat, engine.StrategyFunc(bot.Choose)); err != nil {
			return metrics.GameRecord{}, err
		}
	}

	// generous bound: finished games stay well under this
	const maxActions = 100000

	start := time.Now()
	for !e.State().IsOver() {
		applied, _ := e.TickBots()
		if applied == 0 || e.State().ActionCount > maxActions {
			return metrics.GameRecord{}, fmt.Errorf("game %d stalled in phase %s after %d actions",
				seed, e.State().Phase, e.State().ActionCount)
		}
	}
	final := e.State()

	return metrics.GameRecord{
		Seed:        seed,
		Players:     players,
		Winner:      final.Winner,
		WinnerScore: final.VictoryPoints(final.Winner),
		Turns:       final.Turn,
		Actions:     final.ActionCount,
		Duration:    time.Since(start),
	}, nil
}
