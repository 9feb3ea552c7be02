package board

import "sort"

// StandardRadius is the island radius of the standard board.
const StandardRadius = 2

// Graph is the complete topology of an island: every hex, vertex, and edge,
// plus all adjacency relations between them. Build one with New and treat it
// as immutable; game states share a single Graph.
type Graph struct {
	Radius int

	// Feature lists in a fixed, deterministic order (hexes follow the
	// generation spiral; vertices and edges follow first-seen order along
	// that spiral). Iterate these instead of the maps whenever ordering
	// can leak into game outcomes.
	Hexes    []Hex
	Vertices []Vertex
	Edges    []Edge

	// Adjacency. Every relation is symmetric: if A lists B, B lists A.
	HexVertices    map[Hex][6]Vertex
	HexEdges       map[Hex][6]Edge
	VertexHexes    map[Vertex][]Hex    // 1–3 island hexes
	VertexEdges    map[Vertex][]Edge   // 2–3
	VertexAdjacent map[Vertex][]Vertex // 2–3
	EdgeVertices   map[Edge][2]Vertex
	EdgeHexes      map[Edge][]Hex // 1–2 island hexes

	// Perimeter edges (exactly one adjacent island hex), sorted by polar
	// angle of their midpoint around the board center. Ports live here.
	Perimeter []Edge

	spiral []Hex
}

// New builds the island graph for the given radius. Radius 2 is the
// standard board: 19 hexes, 54 vertices, 72 edges.
func New(radius int) *Graph {
	g := &Graph{
		Radius:         radius,
		HexVertices:    make(map[Hex][6]Vertex),
		HexEdges:       make(map[Hex][6]Edge),
		VertexHexes:    make(map[Vertex][]Hex),
		VertexEdges:    make(map[Vertex][]Edge),
		VertexAdjacent: make(map[Vertex][]Vertex),
		EdgeVertices:   make(map[Edge][2]Vertex),
		EdgeHexes:      make(map[Edge][]Hex),
	}
	g.spiral = spiral(radius)
	g.Hexes = append(g.Hexes, g.spiral...)

	seenVertex := make(map[Vertex]bool)
	seenEdge := make(map[Edge]bool)

	for _, h := range g.Hexes {
		corners := cornersOf(h)
		sides := sidesOf(h)
		g.HexVertices[h] = corners
		g.HexEdges[h] = sides

		for _, v := range corners {
			if !seenVertex[v] {
				seenVertex[v] = true
				g.Vertices = append(g.Vertices, v)
			}
			g.VertexHexes[v] = appendHexOnce(g.VertexHexes[v], h)
		}
		for _, e := range sides {
			if !seenEdge[e] {
				seenEdge[e] = true
				g.Edges = append(g.Edges, e)
				ends := e.Endpoints()
				g.EdgeVertices[e] = ends
				g.VertexEdges[ends[0]] = append(g.VertexEdges[ends[0]], e)
				g.VertexEdges[ends[1]] = append(g.VertexEdges[ends[1]], e)
				g.VertexAdjacent[ends[0]] = append(g.VertexAdjacent[ends[0]], ends[1])
				g.VertexAdjacent[ends[1]] = append(g.VertexAdjacent[ends[1]], ends[0])
			}
			g.EdgeHexes[e] = appendHexOnce(g.EdgeHexes[e], h)
		}
	}

	for _, e := range g.Edges {
		if len(g.EdgeHexes[e]) == 1 {
			g.Perimeter = append(g.Perimeter, e)
		}
	}
	sort.Slice(g.Perimeter, func(i, j int) bool {
		return g.Perimeter[i].Angle() < g.Perimeter[j].Angle()
	})

	return g
}

func appendHexOnce(s []Hex, h Hex) []Hex {
	for _, x := range s {
		if x == h {
			return s
		}
	}
	return append(s, h)
}

// Contains reports whether h is an island hex.
func (g *Graph) Contains(h Hex) bool {
	_, ok := g.HexVertices[h]
	return ok
}

// HasVertex reports whether v is a vertex of this board.
func (g *Graph) HasVertex(v Vertex) bool {
	_, ok := g.VertexHexes[v]
	return ok
}

// HasEdge reports whether e is an edge of this board.
func (g *Graph) HasEdge(e Edge) bool {
	_, ok := g.EdgeVertices[e]
	return ok
}

// OtherEndpoint returns the endpoint of e that is not v.
func (g *Graph) OtherEndpoint(e Edge, v Vertex) Vertex {
	ends := g.EdgeVertices[e]
	if ends[0] == v {
		return ends[1]
	}
	return ends[0]
}

// Touches reports whether v is an endpoint of e.
func (g *Graph) Touches(e Edge, v Vertex) bool {
	ends := g.EdgeVertices[e]
	return ends[0] == v || ends[1] == v
}

// Spiral returns the island hexes outermost-ring-first, ending at the
// center. Terrain and number tokens are laid along this order.
func (g *Graph) Spiral() []Hex {
	out := make([]Hex, len(g.spiral))
	copy(out, g.spiral)
	return out
}
