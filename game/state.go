package game

import (
	"fmt"

	"settlers/board"
)

// Phase is the current stage of the turn state machine. Exactly one phase
// is active at a time and it whitelists the actions Apply will accept.
type Phase int

const (
	SetupSettlementPhase Phase = iota // current seat places a free settlement
	SetupRoadPhase                    // current seat roads the settlement just placed
	PreRollPhase                      // current seat must roll (or lead with a knight)
	DiscardPhase                      // seats over the hand limit discard after a 7
	MoveRobberPhase                   // current seat relocates the robber
	StealResourcePhase                // current seat picks a victim at the robber hex
	MainPhase                         // build, trade, play cards, end turn
	RoadBuildingPhase                 // free road placements from the road building card
	GameOverPhase                     // terminal, no actions accepted
)

var phaseNames = [...]string{
	"setup-settlement", "setup-road", "pre-roll", "discard",
	"move-robber", "steal-resource", "main", "road-building", "game-over",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("phase(%d)", int(p))
	}
	return phaseNames[p]
}

// NoPlayer marks "no seat" in holder fields and steal lists.
const NoPlayer = -1

// GameState is the single source of truth for one game. It is replaced
// wholesale on every accepted action, never mutated in place: Apply copies,
// mutates the copy and returns it. The Graph pointer is shared across
// copies since the topology is static.
type GameState struct {
	Seed  uint64       // world seed, drives all in-game randomness
	Rules Rules        // numeric knobs, fixed at creation
	Graph *board.Graph // static topology, shared not copied

	Tiles  map[board.Hex]Tile // terrain and number token per hex
	Ports  []Port             // nine harbors on perimeter edges
	Robber board.Hex          // hex currently blocked by the robber

	Buildings map[board.Vertex]Building // at most one building per vertex
	Roads     map[board.Edge]Road       // at most one road per edge

	Players []PlayerState // seats in play order
	Current int           // seat expected to act
	Phase   Phase
	Turn    int // increments when play returns to seat 0

	SetupIndex         int           // 0..2N-1 position in the snake draft
	PendingSetupVertex *board.Vertex // settlement awaiting its setup road

	LastRoll int       // most recent dice total, 0 before the first roll of a turn
	DevDeck  []DevCard // draw pile, top at index 0

	PendingTrade *TradeOffer // at most one open peer trade

	MustDiscard      []int // seats still owing a discard, in seat order
	StealCandidates  []int // seats that can be robbed at the robber hex
	PhaseAfterRobber Phase // phase to resume once the robber settles

	LongestRoadHolder int // NoPlayer until someone reaches the minimum
	LongestRoadLen    int
	LargestArmyHolder int
	LargestArmySize   int

	FreeRoads int // road placements still owed by a road building card

	ActionCount uint64  // accepted actions so far, seeds per-action randomness
	Log         []Event // append-only domain event log
	Winner      int     // NoPlayer until the game ends
}

// Copy returns a deep copy of the state. Every mutable collection is
// cloned; only the static Graph is shared.
func (gs GameState) Copy() *GameState {
	tilesCopy := make(map[board.Hex]Tile, len(gs.Tiles))
	for h, t := range gs.Tiles {
		tilesCopy[h] = t
	}

	portsCopy := make([]Port, len(gs.Ports))
	copy(portsCopy, gs.Ports)

	buildingsCopy := make(map[board.Vertex]Building, len(gs.Buildings))
	for v, b := range gs.Buildings {
		buildingsCopy[v] = b
	}

	roadsCopy := make(map[board.Edge]Road, len(gs.Roads))
	for e, r := range gs.Roads {
		roadsCopy[e] = r
	}

	playersCopy := make([]PlayerState, len(gs.Players))
	for i, p := range gs.Players {
		playersCopy[i] = p.Copy()
	}

	deckCopy := make([]DevCard, len(gs.DevDeck))
	copy(deckCopy, gs.DevDeck)

	mustDiscardCopy := make([]int, len(gs.MustDiscard))
	copy(mustDiscardCopy, gs.MustDiscard)

	candidatesCopy := make([]int, len(gs.StealCandidates))
	copy(candidatesCopy, gs.StealCandidates)

	logCopy := make([]Event, len(gs.Log))
	copy(logCopy, gs.Log)

	clone := gs
	clone.Tiles = tilesCopy
	clone.Ports = portsCopy
	clone.Buildings = buildingsCopy
	clone.Roads = roadsCopy
	clone.Players = playersCopy
	clone.DevDeck = deckCopy
	clone.MustDiscard = mustDiscardCopy
	clone.StealCandidates = candidatesCopy
	clone.Log = logCopy

	if gs.PendingSetupVertex != nil {
		v := *gs.PendingSetupVertex
		clone.PendingSetupVertex = &v
	}
	if gs.PendingTrade != nil {
		clone.PendingTrade = gs.PendingTrade.Copy()
	}
	return &clone
}

// NumPlayers returns the number of seats.
func (gs *GameState) NumPlayers() int { return len(gs.Players) }

// Player returns a pointer into the Players slice; mutations through it
// are only safe on a fresh copy.
func (gs *GameState) Player(seat int) *PlayerState { return &gs.Players[seat] }

// CurrentPlayer returns the seat expected to act.
func (gs *GameState) CurrentPlayer() *PlayerState { return &gs.Players[gs.Current] }

// ValidSeat reports whether seat indexes a player.
func (gs *GameState) ValidSeat(seat int) bool {
	return seat >= 0 && seat < len(gs.Players)
}

// BuildingAt returns the building on v, if any.
func (gs *GameState) BuildingAt(v board.Vertex) (Building, bool) {
	b, ok := gs.Buildings[v]
	return b, ok
}

// RoadAt returns the road on e, if any.
func (gs *GameState) RoadAt(e board.Edge) (Road, bool) {
	r, ok := gs.Roads[e]
	return r, ok
}

// TileAt returns the tile on h. The zero Tile is returned for hexes off
// the island.
func (gs *GameState) TileAt(h board.Hex) Tile { return gs.Tiles[h] }

// IsOver reports whether the game has ended.
func (gs *GameState) IsOver() bool { return gs.Phase == GameOverPhase }

// setupSeat maps a snake draft index onto a seat: 0..N-1 forward, then
// N-1..0 backward.
func (gs *GameState) setupSeat(index int) int {
	n := gs.NumPlayers()
	if index < n {
		return index
	}
	return 2*n - 1 - index
}

// SetupComplete reports whether the snake draft has finished.
func (gs *GameState) SetupComplete() bool {
	return gs.SetupIndex >= 2*gs.NumPlayers()
}

// secondSetupRound reports whether the draft index is in the backward
// half, where settlement placement grants starting resources.
func (gs *GameState) secondSetupRound() bool {
	return gs.SetupIndex >= gs.NumPlayers()
}

// record appends a domain event to the state log.
func (gs *GameState) record(e Event) {
	gs.Log = append(gs.Log, e)
}
