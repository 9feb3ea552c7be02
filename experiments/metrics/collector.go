// Package metrics collects and stores self-play experiment results.
package metrics

import (
	"sync"
	"time"
)

// GameRecord is the outcome of one self-play game.
type GameRecord struct {
	ID          int
	Seed        uint64
	Players     int
	Winner      int // seat index
	WinnerScore int
	Turns       int
	Actions     uint64
	Duration    time.Duration
}

// Collector gathers records from concurrently running games.
type Collector struct {
	mu      sync.Mutex
	records []GameRecord
}

// Add stores one finished game.
func (c *Collector) Add(r GameRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r.ID = len(c.records) + 1
	c.records = append(c.records, r)
}

// Records returns a copy of everything collected so far.
func (c *Collector) Records() []GameRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]GameRecord, len(c.records))
	copy(out, c.records)
	return out
}

// Summary aggregates the collected games.
type Summary struct {
	Games       int
	WinsBySeat  map[int]int
	TotalTurns  int
	TotalTime   time.Duration
	MeanTurns   float64
	MeanSeconds float64
}

// Summarize folds the records into per-seat win counts and averages.
func (c *Collector) Summarize() Summary {
	records := c.Records()
	s := Summary{Games: len(records), WinsBySeat: make(map[int]int)}
	seats := 0
	for _, r := range records {
		s.WinsBySeat[r.Winner]++
		s.TotalTurns += r.Turns
		s.TotalTime += r.Duration
		if r.Players > seats {
			seats = r.Players
		}
	}
	for seat := 0; seat < seats; seat++ {
		if _, ok := s.WinsBySeat[seat]; !ok {
			s.WinsBySeat[seat] = 0
		}
	}
	if s.Games > 0 {
		s.MeanTurns = float64(s.TotalTurns) / float64(s.Games)
		s.MeanSeconds = s.TotalTime.Seconds() / float64(s.Games)
	}
	return s
}
