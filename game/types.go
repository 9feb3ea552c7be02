// Package game implements the rules core: world generation, the phase state
// machine, action validation and application, production, trading, the
// longest-road and largest-army arbiters, and victory evaluation. A
// GameState is never mutated in place; Apply returns a fresh copy.
package game

import (
	"fmt"
	"strings"

	"settlers/board"
)

// Resource is one of the five tradable resource kinds.
type Resource int

const (
	Brick Resource = iota
	Lumber
	Wool
	Grain
	Ore
	NumResources = 5
)

var resourceNames = [NumResources]string{"brick", "lumber", "wool", "grain", "ore"}

func (r Resource) String() string {
	if r < 0 || int(r) >= NumResources {
		return fmt.Sprintf("resource(%d)", int(r))
	}
	return resourceNames[r]
}

// Valid reports whether r names a real resource.
func (r Resource) Valid() bool { return r >= 0 && int(r) < NumResources }

// ResourceSet is a bundle of resources, one non-negative count per kind.
// It is a small value type; copies are cheap and intentional.
type ResourceSet [NumResources]int

// NewResourceSet builds a set from (resource, count) pairs expressed as a
// map literal, for readable call sites.
func NewResourceSet(counts map[Resource]int) ResourceSet {
	var s ResourceSet
	for r, n := range counts {
		s[r] += n
	}
	return s
}

// Total returns the number of cards in the bundle.
func (s ResourceSet) Total() int {
	sum := 0
	for _, n := range s {
		sum += n
	}
	return sum
}

// Add returns s plus o.
func (s ResourceSet) Add(o ResourceSet) ResourceSet {
	for i, n := range o {
		s[i] += n
	}
	return s
}

// Sub returns s minus o. Callers must check Contains first; Sub does not
// clamp.
func (s ResourceSet) Sub(o ResourceSet) ResourceSet {
	for i, n := range o {
		s[i] -= n
	}
	return s
}

// Contains reports whether s has at least o of every resource.
func (s ResourceSet) Contains(o ResourceSet) bool {
	for i, n := range o {
		if s[i] < n {
			return false
		}
	}
	return true
}

// IsEmpty reports whether the bundle holds no cards.
func (s ResourceSet) IsEmpty() bool { return s.Total() == 0 }

// NonNegative reports whether every count is >= 0.
func (s ResourceSet) NonNegative() bool {
	for _, n := range s {
		if n < 0 {
			return false
		}
	}
	return true
}

func (s ResourceSet) String() string {
	parts := make([]string, 0, NumResources)
	for i, n := range s {
		if n != 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, Resource(i)))
		}
	}
	if len(parts) == 0 {
		return "nothing"
	}
	return strings.Join(parts, ", ")
}

// Terrain is a hex tile kind. Every terrain but desert produces one
// resource.
type Terrain int

const (
	Hills     Terrain = iota // brick
	Forest                   // lumber
	Pasture                  // wool
	Fields                   // grain
	Mountains                // ore
	Desert                   // nothing
)

var terrainNames = [...]string{"hills", "forest", "pasture", "fields", "mountains", "desert"}

func (t Terrain) String() string {
	if t < 0 || int(t) >= len(terrainNames) {
		return fmt.Sprintf("terrain(%d)", int(t))
	}
	return terrainNames[t]
}

// Produces returns the resource the terrain yields, and false for desert.
func (t Terrain) Produces() (Resource, bool) {
	switch t {
	case Hills:
		return Brick, true
	case Forest:
		return Lumber, true
	case Pasture:
		return Wool, true
	case Fields:
		return Grain, true
	case Mountains:
		return Ore, true
	default:
		return 0, false
	}
}

// Tile is one hex of the generated island.
type Tile struct {
	Hex     board.Hex `json:"hex"`
	Terrain Terrain   `json:"terrain"`
	Token   int       `json:"token"` // dice number, 0 for the desert
}

// PipCount is the production weight of a number token: 6 - |7 - token|.
// Token 0 (desert) weighs nothing.
func PipCount(token int) int {
	if token == 0 {
		return 0
	}
	return 6 - absInt(7-token)
}

// PortType is a trade ratio grant. Generic ports trade any resource 3:1;
// resource ports trade their specific resource 2:1.
type PortType int

const (
	GenericPort PortType = iota
	BrickPort
	LumberPort
	WoolPort
	GrainPort
	OrePort
)

func (p PortType) String() string {
	if p == GenericPort {
		return "3:1"
	}
	r, _ := p.Resource()
	return "2:1 " + r.String()
}

// Resource returns the resource a 2:1 port serves, and false for generic.
func (p PortType) Resource() (Resource, bool) {
	switch p {
	case BrickPort:
		return Brick, true
	case LumberPort:
		return Lumber, true
	case WoolPort:
		return Wool, true
	case GrainPort:
		return Grain, true
	case OrePort:
		return Ore, true
	default:
		return 0, false
	}
}

// Port is a harbor on a coast edge; buildings on either endpoint vertex
// grant the port's ratio to their owner.
type Port struct {
	Type     PortType        `json:"type"`
	Edge     board.Edge      `json:"edge"`
	Vertices [2]board.Vertex `json:"vertices"`
}

// BuildingKind distinguishes the two building types a vertex can hold.
type BuildingKind int

const (
	SettlementBuilding BuildingKind = iota
	CityBuilding
)

func (k BuildingKind) String() string {
	if k == CityBuilding {
		return "city"
	}
	return "settlement"
}

// Building occupies a vertex.
type Building struct {
	Kind  BuildingKind `json:"kind"`
	Owner int          `json:"owner"` // seat index
}

// Road occupies an edge.
type Road struct {
	Owner int `json:"owner"`
}

// DevCard is a development card kind.
type DevCard int

const (
	Knight DevCard = iota
	VictoryPointCard
	RoadBuildingCard
	YearOfPlentyCard
	MonopolyCard
)

var devCardNames = [...]string{"knight", "victory point", "road building", "year of plenty", "monopoly"}

func (c DevCard) String() string {
	if c < 0 || int(c) >= len(devCardNames) {
		return fmt.Sprintf("devcard(%d)", int(c))
	}
	return devCardNames[c]
}

// Fixed build costs.
var (
	RoadCost       = ResourceSet{1, 1, 0, 0, 0} // brick, lumber
	SettlementCost = ResourceSet{1, 1, 1, 1, 0} // brick, lumber, wool, grain
	CityCost       = ResourceSet{0, 0, 0, 2, 3} // grain x2, ore x3
	DevCardCost    = ResourceSet{0, 0, 1, 1, 1} // wool, grain, ore
)

// terrainMultiset is the fixed 19-tile island composition.
var terrainMultiset = []Terrain{
	Forest, Forest, Forest, Forest,
	Pasture, Pasture, Pasture, Pasture,
	Fields, Fields, Fields, Fields,
	Hills, Hills, Hills,
	Mountains, Mountains, Mountains,
	Desert,
}

// tokenSpiral is the fixed number-token layout, assigned along the hex
// spiral to every non-desert tile.
var tokenSpiral = []int{5, 2, 6, 3, 8, 10, 9, 12, 11, 4, 8, 10, 9, 4, 5, 6, 3, 11}

// portMultiset is the fixed nine-harbor composition.
var portMultiset = []PortType{
	GenericPort, GenericPort, GenericPort, GenericPort,
	BrickPort, LumberPort, WoolPort, GrainPort, OrePort,
}

// devCardKinds fixes an iteration order for dev card maps.
var devCardKinds = []DevCard{Knight, VictoryPointCard, RoadBuildingCard, YearOfPlentyCard, MonopolyCard}

// devDeckComposition is the fixed 25-card development deck.
var devDeckComposition = map[DevCard]int{
	Knight:           14,
	VictoryPointCard: 5,
	RoadBuildingCard: 2,
	YearOfPlentyCard: 2,
	MonopolyCard:     2,
}

func newDevDeck() []DevCard {
	deck := make([]DevCard, 0, 25)
	for _, kind := range devCardKinds {
		for i := 0; i < devDeckComposition[kind]; i++ {
			deck = append(deck, kind)
		}
	}
	return deck
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
