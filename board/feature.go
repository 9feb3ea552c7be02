package board

import (
	"fmt"
	"math"
)

// VertexDir selects one of the two vertices a hex canonically owns.
type VertexDir uint8

const (
	North VertexDir = iota
	South
)

func (d VertexDir) String() string {
	if d == North {
		return "N"
	}
	return "S"
}

// Vertex identifies a building spot. Every vertex on the board has exactly
// one canonical identity: it is the North or South corner of a single hex
// (for coastal vertices that hex may lie outside the island).
type Vertex struct {
	H Hex       `json:"hex"`
	D VertexDir `json:"dir"`
}

func (v Vertex) String() string { return fmt.Sprintf("%s/%s", v.H, v.D) }

// Position returns the cartesian location of the vertex.
func (v Vertex) Position() (x, y float64) {
	x, y = v.H.Center()
	if v.D == North {
		return x, y + 1
	}
	return x, y - 1
}

// EdgeDir selects one of the three edges a hex canonically owns.
type EdgeDir uint8

const (
	NorthEast EdgeDir = iota
	East
	SouthEast
)

func (d EdgeDir) String() string {
	switch d {
	case NorthEast:
		return "NE"
	case East:
		return "E"
	default:
		return "SE"
	}
}

// Edge identifies a road spot. As with vertices, each edge has exactly one
// canonical identity: the NE, E, or SE side of a single hex.
type Edge struct {
	H Hex     `json:"hex"`
	D EdgeDir `json:"dir"`
}

func (e Edge) String() string { return fmt.Sprintf("%s/%s", e.H, e.D) }

// Endpoints returns the two vertices the edge connects. The identities are
// already canonical; no further normalization is needed.
func (e Edge) Endpoints() [2]Vertex {
	switch e.D {
	case NorthEast:
		return [2]Vertex{
			{H: e.H, D: North},
			{H: e.H.Neighbor(dirNE), D: South},
		}
	case East:
		return [2]Vertex{
			{H: e.H.Neighbor(dirNE), D: South},
			{H: e.H.Neighbor(dirSE), D: North},
		}
	default: // SouthEast
		return [2]Vertex{
			{H: e.H.Neighbor(dirSE), D: North},
			{H: e.H, D: South},
		}
	}
}

// hexesOf returns the two hexes an edge borders (one may be sea).
func (e Edge) hexesOf() [2]Hex {
	switch e.D {
	case NorthEast:
		return [2]Hex{e.H, e.H.Neighbor(dirNE)}
	case East:
		return [2]Hex{e.H, e.H.Neighbor(dirE)}
	default:
		return [2]Hex{e.H, e.H.Neighbor(dirSE)}
	}
}

// Midpoint returns the cartesian midpoint of the edge.
func (e Edge) Midpoint() (x, y float64) {
	ends := e.Endpoints()
	x0, y0 := ends[0].Position()
	x1, y1 := ends[1].Position()
	return (x0 + x1) / 2, (y0 + y1) / 2
}

// Angle returns the polar angle of the edge midpoint around the board
// center, in [0, 2π). Used to space ports around the coast.
func (e Edge) Angle() float64 {
	x, y := e.Midpoint()
	a := math.Atan2(y, x)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// cornersOf returns the six corner vertices of a hex, clockwise from the
// north corner.
func cornersOf(h Hex) [6]Vertex {
	return [6]Vertex{
		{H: h, D: North},
		{H: h.Neighbor(dirNE), D: South},
		{H: h.Neighbor(dirSE), D: North},
		{H: h, D: South},
		{H: h.Neighbor(dirSW), D: North},
		{H: h.Neighbor(dirNW), D: South},
	}
}

// sidesOf returns the six edges of a hex in canonical identity, clockwise
// starting with the side between the north and north-east corners. Side i
// connects corner i and corner (i+1)%6 of cornersOf.
func sidesOf(h Hex) [6]Edge {
	return [6]Edge{
		{H: h, D: NorthEast},
		{H: h, D: East},
		{H: h, D: SouthEast},
		{H: h.Neighbor(dirSW), D: NorthEast},
		{H: h.Neighbor(dirW), D: East},
		{H: h.Neighbor(dirNW), D: SouthEast},
	}
}
