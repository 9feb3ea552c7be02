package engine

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"settlers/bot"
	"settlers/game"
)

/**
Engine driver:
- Submit serializes mutations and surfaces validation errors unchanged
- TickBots drains bot seats until a human must act or the game ends
- a tick in progress makes re-entrant ticks no-ops
- all-bot games run to completion under the iteration cap
*/

func newEngine(t *testing.T, players int, seed uint64) *Engine {
	t.Helper()
	names := []string{"ada", "bob", "cyd", "dee"}[:players]
	e, err := New(game.Config{Seed: seed, Players: names, Rules: game.DefaultRules()})
	require.NoError(t, err, "Engine construction should succeed")
	require.NotEmpty(t, e.ID, "Every engine gets an id")
	return e
}

func TestZeroSeedDrawsAFreshWorld(t *testing.T) {
	a := newEngine(t, 2, 0)
	b := newEngine(t, 2, 0)

	require.NotZero(t, a.State().Seed, "An omitted seed is filled in")
	require.NotZero(t, b.State().Seed)
	require.NotEqual(t, a.State().Seed, b.State().Seed, "Each engine draws its own seed")

	replay, err := game.NewGame(game.Config{
		Seed:    a.State().Seed,
		Players: []string{"ada", "bob"},
		Rules:   game.DefaultRules(),
	})
	require.NoError(t, err)
	require.Equal(t, a.State().Hash(), replay.Hash(), "The drawn seed replays the same world")
}

func TestSubmitAppliesAndRejects(t *testing.T) {
	e := newEngine(t, 3, 5)

	state := e.State()
	vertices := state.LegalSetupVertices()
	require.NotEmpty(t, vertices)

	_, _, err := e.Submit(1, game.SetupSettlementAction{Vertex: vertices[0]})
	require.Error(t, err, "Out-of-turn submissions are rejected")
	require.Equal(t, state, e.State(), "A rejected action leaves the state untouched")

	next, events, err := e.Submit(0, game.SetupSettlementAction{Vertex: vertices[0]})
	require.NoError(t, err)
	require.NotEmpty(t, events, "An accepted action reports its events")
	require.Equal(t, game.SetupRoadPhase, next.Phase)
	require.Equal(t, next, e.State(), "Submit advances the engine state")
}

func TestRegisterBotValidatesSeat(t *testing.T) {
	e := newEngine(t, 2, 5)
	err := e.RegisterBot(7, StrategyFunc(bot.Choose))
	require.Error(t, err, "Unknown seats cannot get a bot")
	require.NoError(t, e.RegisterBot(1, StrategyFunc(bot.Choose)))
}

func TestTickBotsStopsAtHumanSeat(t *testing.T) {
	e := newEngine(t, 3, 9)
	// seat 0 is human, the rest are bots; nobody moves until seat 0 does
	require.NoError(t, e.RegisterBot(1, StrategyFunc(bot.Choose)))
	require.NoError(t, e.RegisterBot(2, StrategyFunc(bot.Choose)))

	applied, _ := e.TickBots()
	require.Zero(t, applied, "Setup starts at the human seat")

	vertices := e.State().LegalSetupVertices()
	_, _, err := e.Submit(0, game.SetupSettlementAction{Vertex: vertices[0]})
	require.NoError(t, err)
	roads := e.State().LegalSetupRoads()
	_, _, err = e.Submit(0, game.SetupRoadAction{Edge: roads[0]})
	require.NoError(t, err)

	applied, events := e.TickBots()
	require.Equal(t, 8, applied,
		"Seats 1 and 2 place twice each (snake order 1,2,2,1), two actions per placement")
	require.NotEmpty(t, events)
	require.Equal(t, game.SetupSettlementPhase, e.State().Phase)
	require.Equal(t, 0, e.State().Current, "The draft parks at the human's second placement")
}

func TestTickBotsRunsFullGame(t *testing.T) {
	e := newEngine(t, 4, 21)
	for seat := 0; seat < 4; seat++ {
		require.NoError(t, e.RegisterBot(seat, StrategyFunc(bot.Choose)))
	}

	total := 0
	for i := 0; i < 10 && !e.State().IsOver(); i++ {
		applied, _ := e.TickBots()
		if applied == 0 {
			break
		}
		total += applied
	}

	final := e.State()
	require.True(t, final.IsOver(), "An all-bot game runs to completion")
	require.NotEqual(t, game.NoPlayer, final.Winner)
	require.GreaterOrEqual(t, final.VictoryPoints(final.Winner), final.Rules.VictoryTarget)
	require.Greater(t, total, 0)
}

func TestTickBotsReentrancyGuard(t *testing.T) {
	e := newEngine(t, 2, 3)

	release := make(chan struct{})
	entered := make(chan struct{})
	var once sync.Once

	// a strategy that parks the first tick so a second one can try to enter
	require.NoError(t, e.RegisterBot(0, StrategyFunc(func(gs *game.GameState, seat int) (game.Action, bool) {
		once.Do(func() {
			close(entered)
			<-release
		})
		return bot.Choose(gs, seat)
	})))

	var inner int
	done := make(chan struct{})
	go func() {
		defer close(done)
		e.TickBots()
	}()

	<-entered
	inner, _ = e.TickBots()
	require.Zero(t, inner, "A tick already in progress swallows re-entrant calls")
	close(release)
	<-done
}

func TestViewForRedacts(t *testing.T) {
	e := newEngine(t, 2, 13)
	view := e.ViewFor(0)
	require.Equal(t, 0, view.Viewer)
	require.Equal(t, 25, view.DeckSize, "The deck is exposed only as a size")
	require.Nil(t, view.Players[1].Hand, "Opposing hands are hidden")
	require.NotNil(t, view.Players[0].Hand, "The viewer sees its own hand")
}
