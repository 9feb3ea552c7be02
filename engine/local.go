// Package engine drives one game instance. The rules core is pure; the
// engine adds the serialization point around it (one action at a time,
// whoever submits it) and the loop that lets bot seats act. Many engines
// can run in parallel, one per game, with nothing shared between them.
package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	uuid "github.com/satori/go.uuid"

	"settlers/game"
)

// Strategy decides a bot seat's next action. Implementations must be
// pure: the engine may call Choose any number of times between applies.
type Strategy interface {
	Choose(gs *game.GameState, seat int) (game.Action, bool)
}

// StrategyFunc adapts a plain function to Strategy.
type StrategyFunc func(gs *game.GameState, seat int) (game.Action, bool)

func (f StrategyFunc) Choose(gs *game.GameState, seat int) (game.Action, bool) {
	return f(gs, seat)
}

// MaxBotActions caps one TickBots call. A finished game takes well under
// a thousand actions; hitting the cap means strategy and validator
// disagree in a loop, and stopping beats spinning.
const MaxBotActions = 5000

// Engine serializes all mutations of one game. Human actions arrive via
// Submit; bot seats act when TickBots runs. The state handed out by
// State and Submit is immutable, so callers may read it without holding
// any lock.
type Engine struct {
	ID string

	mu      sync.Mutex
	state   *game.GameState
	bots    map[int]Strategy
	ticking bool

	logger zerolog.Logger
}

// New generates the world from cfg and wraps it in an engine. A zero
// seed means the caller does not care; the engine draws one from the
// clock and records it on the state, so the game stays replayable.
func New(cfg game.Config) (*Engine, error) {
	for cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	state, err := game.NewGame(cfg)
	if err != nil {
		return nil, err
	}
	id := uuid.NewV4().String()
	return &Engine{
		ID:     id,
		state:  state,
		bots:   make(map[int]Strategy),
		logger: log.With().Str("game", id).Logger(),
	}, nil
}

// RegisterBot puts a strategy in charge of a seat. Seats without a
// strategy are human seats; the engine waits for their Submit calls.
func (e *Engine) RegisterBot(seat int, s Strategy) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.state.ValidSeat(seat) {
		return fmt.Errorf("seat %d is not in this game", seat)
	}
	e.bots[seat] = s
	return nil
}

// State returns the current immutable state.
func (e *Engine) State() *game.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// ViewFor returns the redacted snapshot for one seat, ready to send to
// its client.
func (e *Engine) ViewFor(seat int) game.View {
	return e.State().ViewFor(seat)
}

// Submit validates and applies one action for seat. It is the only
// mutation path; concurrent submitters queue on the engine lock. On
// success the new state and the action's events are returned for
// broadcasting; on rejection the error carries the stable reason.
func (e *Engine) Submit(seat int, a game.Action) (*game.GameState, []game.Event, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.submitLocked(seat, a)
}

func (e *Engine) submitLocked(seat int, a game.Action) (*game.GameState, []game.Event, error) {
	next, events, err := e.state.Apply(seat, a)
	if err != nil {
		e.logger.Debug().Int("seat", seat).Str("action", a.Name()).
			Err(err).Msg("action rejected")
		return nil, nil, err
	}
	e.state = next
	e.logger.Info().Int("seat", seat).Str("action", a.Name()).
		Stringer("phase", next.Phase).Msg("action applied")
	return next, events, nil
}

// TickBots lets registered bots act until it is a human seat's move, the
// game ends, or the iteration cap trips. It returns the number of bot
// actions applied plus every event they produced, for broadcasting. A
// tick already in progress makes re-entrant calls return immediately;
// whoever holds the flag will drain the bots.
func (e *Engine) TickBots() (int, []game.Event) {
	e.mu.Lock()
	if e.ticking {
		e.mu.Unlock()
		return 0, nil
	}
	e.ticking = true
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.ticking = false
		e.mu.Unlock()
	}()

	applied := 0
	var events []game.Event
	for applied < MaxBotActions {
		// Choose runs on an immutable snapshot, outside the lock, so a
		// slow strategy never blocks Submit.
		seat, act, ok := e.nextBotAction(e.State())
		if !ok {
			break
		}
		_, evs, err := e.Submit(seat, act)
		if err != nil {
			// The strategy disagreed with the validator. This is a bug in
			// the strategy; stop the loop rather than retry forever.
			e.logger.Warn().Int("seat", seat).Str("action", act.Name()).
				Err(err).Msg("bot chose an illegal action, stopping tick")
			break
		}
		events = append(events, evs...)
		applied++
	}
	if applied == MaxBotActions {
		e.logger.Warn().Int("cap", MaxBotActions).Msg("bot tick hit the iteration cap")
	}
	return applied, events
}

// nextBotAction finds a bot seat with something to do in the given
// snapshot. The current seat goes first; the others only ever owe
// out-of-turn moves (discards, trade responses).
func (e *Engine) nextBotAction(gs *game.GameState) (int, game.Action, bool) {
	if gs.IsOver() {
		return 0, nil, false
	}
	e.mu.Lock()
	bots := make(map[int]Strategy, len(e.bots))
	for seat, s := range e.bots {
		bots[seat] = s
	}
	e.mu.Unlock()

	order := make([]int, 0, gs.NumPlayers())
	order = append(order, gs.Current)
	for seat := 0; seat < gs.NumPlayers(); seat++ {
		if seat != gs.Current {
			order = append(order, seat)
		}
	}
	for _, seat := range order {
		s, isBot := bots[seat]
		if !isBot {
			continue
		}
		if act, ok := s.Choose(gs, seat); ok {
			return seat, act, true
		}
		// strategy passed; the enumerator is the fallback of last resort
		if legal := gs.LegalActions(seat); len(legal) > 0 && seat == gs.Current {
			return seat, legal[0], true
		}
	}
	return 0, nil, false
}
