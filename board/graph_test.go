package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewStandardBoardCounts(t *testing.T) {
	g := New(2)

	require.Len(t, g.Hexes, 19, "radius-2 island should have 19 hexes")
	require.Len(t, g.Vertices, 54, "radius-2 island should have 54 vertices")
	require.Len(t, g.Edges, 72, "radius-2 island should have 72 edges")
	require.Len(t, g.Perimeter, 30, "radius-2 island should have 30 coast edges")
}

func TestEdgeEndpointsAreMutuallyAdjacent(t *testing.T) {
	g := New(2)

	for _, e := range g.Edges {
		ends := g.EdgeVertices[e]
		require.NotEqual(t, ends[0], ends[1], "edge %s endpoints must differ", e)
		require.Contains(t, g.VertexAdjacent[ends[0]], ends[1],
			"endpoint %s should list %s as adjacent", ends[0], ends[1])
		require.Contains(t, g.VertexAdjacent[ends[1]], ends[0],
			"endpoint %s should list %s as adjacent", ends[1], ends[0])
		require.Contains(t, g.VertexEdges[ends[0]], e, "endpoint should list its edge")
		require.Contains(t, g.VertexEdges[ends[1]], e, "endpoint should list its edge")
	}
}

func TestVertexDegrees(t *testing.T) {
	g := New(2)

	interior := 0
	for _, v := range g.Vertices {
		hexes := len(g.VertexHexes[v])
		require.GreaterOrEqual(t, hexes, 1, "vertex %s should touch at least one hex", v)
		require.LessOrEqual(t, hexes, 3, "vertex %s should touch at most three hexes", v)
		if hexes == 3 {
			interior++
		}

		edges := len(g.VertexEdges[v])
		require.GreaterOrEqual(t, edges, 2, "vertex %s should have at least two edges", v)
		require.LessOrEqual(t, edges, 3, "vertex %s should have at most three edges", v)

		require.Equal(t, edges, len(g.VertexAdjacent[v]),
			"vertex %s adjacent-vertex count should match edge count", v)
	}
	// Every vertex not on the coast touches exactly three hexes.
	require.Equal(t, 24, interior, "radius-2 island has 24 interior vertices")
}

func TestHexCornersAndSides(t *testing.T) {
	g := New(2)

	for _, h := range g.Hexes {
		corners := g.HexVertices[h]
		seen := make(map[Vertex]bool)
		for _, v := range corners {
			require.False(t, seen[v], "hex %s lists corner %s twice", h, v)
			seen[v] = true
			require.Contains(t, g.VertexHexes[v], h, "corner should list its hex")
		}

		sides := g.HexEdges[h]
		for i, e := range sides {
			// Side i runs between corner i and corner i+1.
			a, b := corners[i], corners[(i+1)%6]
			require.True(t, g.Touches(e, a) && g.Touches(e, b),
				"side %s of hex %s should connect corners %s and %s", e, h, a, b)
			require.Contains(t, g.EdgeHexes[e], h, "side should list its hex")
		}
	}
}

func TestSpiralVisitsEveryHexOnce(t *testing.T) {
	g := New(2)

	sp := g.Spiral()
	require.Len(t, sp, len(g.Hexes))
	seen := make(map[Hex]bool)
	for _, h := range sp {
		require.False(t, seen[h], "spiral visits %s twice", h)
		seen[h] = true
		require.True(t, g.Contains(h))
	}
	require.Equal(t, Hex{}, sp[len(sp)-1], "spiral should end at the center")
}

func TestPerimeterSortedByAngle(t *testing.T) {
	g := New(2)

	for i := 1; i < len(g.Perimeter); i++ {
		require.Less(t, g.Perimeter[i-1].Angle(), g.Perimeter[i].Angle(),
			"coast edges should be sorted by polar angle")
	}
	for _, e := range g.Perimeter {
		require.Len(t, g.EdgeHexes[e], 1, "coast edge %s should border exactly one hex", e)
	}
}

func TestDistance(t *testing.T) {
	require.Equal(t, 0, Distance(Hex{}, Hex{}))
	require.Equal(t, 1, Distance(Hex{}, Hex{Q: 1, R: 0}))
	require.Equal(t, 2, Distance(Hex{}, Hex{Q: 1, R: 1}))
	require.Equal(t, 2, Distance(Hex{Q: -1, R: 0}, Hex{Q: 1, R: 0}))
}
