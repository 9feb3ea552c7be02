package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"settlers/board"
)

/**
Route & army arbiter:
- a plain chain counts its edges; the five-edge minimum gates the bonus
- an opposing building cuts a chain at its vertex
- cycles may revisit vertices but never an edge
- ties leave the bonus with the sitting holder, or with nobody
*/

func TestLongestRoadChainAndBonus(t *testing.T) {
	gs := mainState(2)
	start := board.Vertex{H: board.Hex{Q: -2, R: 0}, D: board.North}
	visited := roadChain(t, gs, 0, start, 4)
	require.Equal(t, 4, gs.LongestRoadLength(0))

	gs.updateLongestRoad()
	require.Equal(t, NoPlayer, gs.LongestRoadHolder, "Four edges stay under the minimum")

	// a fifth edge extending the chain end, through an applied action
	giveHand(gs, 0, RoadCost)
	last := visited[len(visited)-1]
	var fifth board.Edge
	found := false
	for _, adj := range gs.Graph.VertexAdjacent[last] {
		if containsVertex(visited, adj) {
			continue
		}
		e, ok := edgeBetween(gs.Graph, last, adj)
		require.True(t, ok)
		if _, taken := gs.Roads[e]; !taken {
			fifth, found = e, true
			break
		}
	}
	require.True(t, found, "The chain should be extendable")
	next := mustApply(t, gs, 0, BuildRoadAction{Edge: fifth})

	require.GreaterOrEqual(t, next.LongestRoadLength(0), 5)
	require.Equal(t, 0, next.LongestRoadHolder, "Five connected edges claim the bonus")
	require.GreaterOrEqual(t, next.LongestRoadLen, 5)
}

func TestOpposingBuildingCutsARoad(t *testing.T) {
	gs := mainState(2)
	start := board.Vertex{H: board.Hex{Q: 0, R: -2}, D: board.South}
	visited := roadChain(t, gs, 1, start, 3)
	require.Equal(t, 3, gs.LongestRoadLength(1))

	// an opposing settlement on the first interior vertex splits the chain
	gs.Buildings[visited[1]] = Building{Kind: SettlementBuilding, Owner: 0}
	require.Equal(t, 2, gs.LongestRoadLength(1),
		"The longer remaining segment survives the cut")
}

func TestLongestRoadAllowsCyclesButNotEdgeReuse(t *testing.T) {
	gs := mainState(2)
	// the six edges around one hex form a cycle of length 6
	h := board.Hex{Q: 0, R: 0}
	for _, e := range gs.Graph.HexEdges[h] {
		gs.Roads[e] = Road{Owner: 0}
	}
	require.Equal(t, 6, gs.LongestRoadLength(0),
		"A loop is walked once around, no edge twice")
}

func TestLongestRoadTieKeepsTheHolder(t *testing.T) {
	gs := mainState(2)
	aStart := board.Vertex{H: board.Hex{Q: -2, R: 0}, D: board.North}
	bStart := board.Vertex{H: board.Hex{Q: 2, R: 0}, D: board.South}
	roadChain(t, gs, 0, aStart, 5)
	gs.updateLongestRoad()
	require.Equal(t, 0, gs.LongestRoadHolder, "First to five holds the bonus")

	roadChain(t, gs, 1, bStart, 5)
	gs.updateLongestRoad()
	require.Equal(t, 0, gs.LongestRoadHolder, "A tie leaves the bonus with the holder")
	require.Equal(t, 5, gs.LongestRoadLen)
}

func TestLongestRoadTieAmongNonHoldersIsVacant(t *testing.T) {
	gs := mainState(3)
	roadChain(t, gs, 0, board.Vertex{H: board.Hex{Q: -2, R: 0}, D: board.North}, 5)
	roadChain(t, gs, 1, board.Vertex{H: board.Hex{Q: 2, R: 0}, D: board.South}, 5)

	// both reach five at once with no sitting holder
	gs.updateLongestRoad()
	require.Equal(t, NoPlayer, gs.LongestRoadHolder,
		"A fresh tie between non-holders leaves the bonus vacant")
	require.Zero(t, gs.LongestRoadLen)
}

func TestLargestArmyArbitration(t *testing.T) {
	gs := mainState(3)

	gs.Players[0].PlayedKnights = 2
	gs.updateLargestArmy()
	require.Equal(t, NoPlayer, gs.LargestArmyHolder, "Two knights stay under the minimum")

	gs.Players[0].PlayedKnights = 3
	gs.updateLargestArmy()
	require.Equal(t, 0, gs.LargestArmyHolder)
	require.Equal(t, 3, gs.LargestArmySize)

	// a tie at three keeps the holder
	gs.Players[1].PlayedKnights = 3
	gs.updateLargestArmy()
	require.Equal(t, 0, gs.LargestArmyHolder, "A tie leaves the bonus with the holder")

	// a strict overtake moves it
	gs.Players[1].PlayedKnights = 4
	gs.updateLargestArmy()
	require.Equal(t, 1, gs.LargestArmyHolder)
	require.Equal(t, 4, gs.LargestArmySize)
}
