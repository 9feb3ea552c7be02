package experiments

import (
	"testing"

	"github.com/stretchr/testify/require"

	"settlers/experiments/metrics"
)

func TestRunGameTerminates(t *testing.T) {
	record, err := RunGame(77, 3)
	require.NoError(t, err, "A seeded self-play game should run to completion")
	require.GreaterOrEqual(t, record.Winner, 0)
	require.Less(t, record.Winner, 3)
	require.GreaterOrEqual(t, record.WinnerScore, 10)
	require.Greater(t, record.Turns, 0)
	require.Greater(t, record.Actions, uint64(0))
}

func TestRunGameIsReproducible(t *testing.T) {
	a, err := RunGame(123, 4)
	require.NoError(t, err)
	b, err := RunGame(123, 4)
	require.NoError(t, err)

	require.Equal(t, a.Winner, b.Winner, "The same seed replays the same game")
	require.Equal(t, a.Turns, b.Turns)
	require.Equal(t, a.Actions, b.Actions)
}

func TestCollectorSummarize(t *testing.T) {
	c := &metrics.Collector{}
	c.Add(metrics.GameRecord{Seed: 1, Players: 3, Winner: 0, Turns: 40})
	c.Add(metrics.GameRecord{Seed: 2, Players: 3, Winner: 0, Turns: 60})
	c.Add(metrics.GameRecord{Seed: 3, Players: 3, Winner: 2, Turns: 50})

	s := c.Summarize()
	require.Equal(t, 3, s.Games)
	require.Equal(t, 2, s.WinsBySeat[0])
	require.Equal(t, 0, s.WinsBySeat[1], "Winless seats still appear")
	require.Equal(t, 1, s.WinsBySeat[2])
	require.InDelta(t, 50.0, s.MeanTurns, 0.01)

	records := c.Records()
	require.Len(t, records, 3)
	require.Equal(t, 1, records[0].ID, "Records are numbered as they arrive")
}
