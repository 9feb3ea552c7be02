// Package board builds the static topology of the island: hexes, the
// vertices where buildings sit, the edges where roads sit, and every
// adjacency relation between them. The graph is computed once per board
// size and treated as a constant afterwards; nothing in it depends on a
// seed.
package board

import (
	"fmt"
	"math"
)

// Hex is an axial hex-grid coordinate (pointy-top orientation).
// The third cube coordinate is implicit: s = -q - r.
type Hex struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// S returns the implicit third cube coordinate.
func (h Hex) S() int { return -h.Q - h.R }

func (h Hex) String() string { return fmt.Sprintf("(%d,%d)", h.Q, h.R) }

// Axial direction offsets, indexed E, NE, NW, W, SW, SE.
var hexDirections = [6]Hex{
	{Q: 1, R: 0},  // E
	{Q: 1, R: -1}, // NE
	{Q: 0, R: -1}, // NW
	{Q: -1, R: 0}, // W
	{Q: -1, R: 1}, // SW
	{Q: 0, R: 1},  // SE
}

const (
	dirE = iota
	dirNE
	dirNW
	dirW
	dirSW
	dirSE
)

func (h Hex) add(o Hex) Hex { return Hex{Q: h.Q + o.Q, R: h.R + o.R} }

// Neighbor returns the adjacent hex in direction d (0..5: E, NE, NW, W, SW, SE).
func (h Hex) Neighbor(d int) Hex { return h.add(hexDirections[d]) }

// Neighbors returns the six adjacent hex coordinates.
func (h Hex) Neighbors() [6]Hex {
	var out [6]Hex
	for i := range hexDirections {
		out[i] = h.Neighbor(i)
	}
	return out
}

// Distance returns the hex-grid distance between two coordinates.
func Distance(a, b Hex) int {
	dq := absInt(a.Q - b.Q)
	dr := absInt(a.R - b.R)
	ds := absInt(a.S() - b.S())
	return maxInt(dq, maxInt(dr, ds))
}

// Center returns the cartesian center of the hex for unit-size tiles.
// +x is east, +y is north.
func (h Hex) Center() (x, y float64) {
	x = math.Sqrt(3) * (float64(h.Q) + float64(h.R)/2)
	y = -1.5 * float64(h.R)
	return x, y
}

// ring returns the hexes at exactly `radius` steps from the origin,
// walking the ring in a fixed order. radius 0 yields just the origin.
func ring(radius int) []Hex {
	if radius == 0 {
		return []Hex{{}}
	}
	out := make([]Hex, 0, 6*radius)
	h := Hex{Q: -radius, R: radius} // SW corner of the ring
	for d := 0; d < 6; d++ {
		for i := 0; i < radius; i++ {
			out = append(out, h)
			h = h.Neighbor(d)
		}
	}
	return out
}

// spiral returns every hex within `radius` of the origin, outermost ring
// first, ending at the center. The order is fixed; the world generator
// lays terrain and number tokens along it.
func spiral(radius int) []Hex {
	var out []Hex
	for k := radius; k >= 0; k-- {
		out = append(out, ring(k)...)
	}
	return out
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
