package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"settlers/board"
)

// fixedState builds a known, unshuffled world for tests: the terrain
// multiset laid down in spiral order (so the desert lands on the center
// hex and hosts the robber), tokens in spiral order, an unshuffled dev
// deck, no ports, empty hands, full stock. Tests adjust phase and fields
// directly before acting through Apply.
func fixedState(n int) *GameState {
	graph := board.New(board.StandardRadius)
	rules := DefaultRules()

	players := make([]PlayerState, n)
	for i := range players {
		players[i] = NewPlayerState(i, fmt.Sprintf("id-%d", i), fmt.Sprintf("player-%d", i), rules)
	}

	tiles := make(map[board.Hex]Tile, len(graph.Hexes))
	var robber board.Hex
	tokenIdx := 0
	for i, h := range graph.Spiral() {
		tile := Tile{Hex: h, Terrain: terrainMultiset[i]}
		if tile.Terrain == Desert {
			robber = h
		} else {
			tile.Token = tokenSpiral[tokenIdx]
			tokenIdx++
		}
		tiles[h] = tile
	}

	return &GameState{
		Seed:              42,
		Rules:             rules,
		Graph:             graph,
		Tiles:             tiles,
		Robber:            robber,
		Buildings:         make(map[board.Vertex]Building),
		Roads:             make(map[board.Edge]Road),
		Players:           players,
		Phase:             SetupSettlementPhase,
		DevDeck:           newDevDeck(),
		LongestRoadHolder: NoPlayer,
		LargestArmyHolder: NoPlayer,
		Winner:            NoPlayer,
	}
}

// mainState positions the fixed world at seat 0's main phase, as if setup
// and the first roll already happened.
func mainState(n int) *GameState {
	gs := fixedState(n)
	gs.Phase = MainPhase
	gs.Turn = 1
	gs.SetupIndex = 2 * n
	gs.LastRoll = 6
	return gs
}

// mustApply applies an action that the test requires to be legal.
func mustApply(t *testing.T, gs *GameState, seat int, a Action) *GameState {
	t.Helper()
	next, _, err := gs.Apply(seat, a)
	require.NoError(t, err, "Action %s by seat %d should be legal", a.Name(), seat)
	return next
}

// roadChain lays length connected roads for seat starting from a vertex,
// walking fresh adjacent vertices, and returns the visited vertices. The
// roads are written directly onto the state.
func roadChain(t *testing.T, gs *GameState, seat int, start board.Vertex, length int) []board.Vertex {
	t.Helper()
	visited := []board.Vertex{start}
	at := start
	for len(visited) <= length {
		extended := false
		for _, next := range gs.Graph.VertexAdjacent[at] {
			if containsVertex(visited, next) {
				continue
			}
			e, ok := edgeBetween(gs.Graph, at, next)
			require.True(t, ok, "Adjacent vertices should share an edge")
			if _, taken := gs.Roads[e]; taken {
				continue
			}
			gs.Roads[e] = Road{Owner: seat}
			visited = append(visited, next)
			at = next
			extended = true
			break
		}
		require.True(t, extended, "Chain should be extendable to %d edges", length)
	}
	return visited
}

func containsVertex(list []board.Vertex, v board.Vertex) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

// edgeBetween finds the edge joining two adjacent vertices.
func edgeBetween(g *board.Graph, a, b board.Vertex) (board.Edge, bool) {
	for _, e := range g.VertexEdges[a] {
		if g.OtherEndpoint(e, a) == b {
			return e, true
		}
	}
	return board.Edge{}, false
}

// giveHand overwrites a seat's hand.
func giveHand(gs *GameState, seat int, hand ResourceSet) {
	gs.Players[seat].Hand = hand
}
