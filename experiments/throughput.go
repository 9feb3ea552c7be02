package experiments

import (
	"time"

	"github.com/rs/zerolog/log"
)

// RunThroughputExperiment measures how many actions per second the
// engine sustains at each table size, over a short seeded batch.
func RunThroughputExperiment() {
	const numGames = 10

	for _, n := range playerCounts {
		var actions uint64
		var elapsed time.Duration
		for i := 0; i < numGames; i++ {
			record, err := RunGame(uint64(BaseSeed+i), n)
			if err != nil {
				log.Error().Err(err).Int("players", n).Msg("throughput game failed")
				continue
			}
			actions += record.Actions
			elapsed += record.Duration
		}
		if elapsed == 0 {
			continue
		}
		log.Info().Int("players", n).
			Uint64("actions", actions).
			Float64("actions_per_second", float64(actions)/elapsed.Seconds()).
			Msg("throughput")
	}
}
