package game

import (
	"fmt"

	uuid "github.com/satori/go.uuid"
	"golang.org/x/exp/rand"

	"settlers/board"
)

// Config describes the game to generate.
type Config struct {
	Seed    uint64   `yaml:"seed"`
	Players []string `yaml:"players"` // display names, one per seat before shuffling
	// PlayerIDs are the callers' stable identities, paired with Players
	// by index. Empty means fresh uuids.
	PlayerIDs []string `yaml:"playerIds"`
	Rules     Rules    `yaml:"rules"`
}

// NewGame generates a complete initial state from the seed: terrain and
// number tokens, ports, the shuffled dev deck and the seating order. The
// same seed always yields the same world. The returned state is in the
// first setup phase with seat 0 to act.
func NewGame(cfg Config) (*GameState, error) {
	if err := cfg.Rules.Validate(); err != nil {
		return nil, err
	}
	n := len(cfg.Players)
	if n < cfg.Rules.MinPlayers || n > cfg.Rules.MaxPlayers {
		return nil, fmt.Errorf("need %d to %d players, got %d", cfg.Rules.MinPlayers, cfg.Rules.MaxPlayers, n)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	graph := board.New(board.StandardRadius)

	tiles, robber := rollTerrain(rng, graph)
	ports := placePorts(rng, graph)

	deck := newDevDeck()
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	if len(cfg.PlayerIDs) != 0 && len(cfg.PlayerIDs) != n {
		return nil, fmt.Errorf("need one player id per player, got %d for %d", len(cfg.PlayerIDs), n)
	}
	ids := make([]string, n)
	for i := range ids {
		if i < len(cfg.PlayerIDs) {
			ids[i] = cfg.PlayerIDs[i]
		} else {
			ids[i] = uuid.NewV4().String()
		}
	}

	names := make([]string, n)
	copy(names, cfg.Players)
	rng.Shuffle(n, func(i, j int) {
		names[i], names[j] = names[j], names[i]
		ids[i], ids[j] = ids[j], ids[i]
	})

	players := make([]PlayerState, n)
	for seat := range players {
		players[seat] = NewPlayerState(seat, ids[seat], names[seat], cfg.Rules)
	}

	gs := &GameState{
		Seed:              cfg.Seed,
		Rules:             cfg.Rules,
		Graph:             graph,
		Tiles:             tiles,
		Ports:             ports,
		Robber:            robber,
		Buildings:         make(map[board.Vertex]Building),
		Roads:             make(map[board.Edge]Road),
		Players:           players,
		Current:           0,
		Phase:             SetupSettlementPhase,
		LongestRoadHolder: NoPlayer,
		LargestArmyHolder: NoPlayer,
		Winner:            NoPlayer,
	}
	return gs, nil
}

// rollTerrain shuffles the terrain multiset onto the hex spiral and walks
// the fixed token sequence over the non-desert tiles. The desert gets no
// token and hosts the starting robber.
func rollTerrain(rng *rand.Rand, graph *board.Graph) (map[board.Hex]Tile, board.Hex) {
	terrains := make([]Terrain, len(terrainMultiset))
	copy(terrains, terrainMultiset)
	rng.Shuffle(len(terrains), func(i, j int) {
		terrains[i], terrains[j] = terrains[j], terrains[i]
	})

	tiles := make(map[board.Hex]Tile, len(terrains))
	var robber board.Hex
	tokenIdx := 0
	for i, h := range graph.Spiral() {
		t := Tile{Hex: h, Terrain: terrains[i]}
		if t.Terrain == Desert {
			robber = h
		} else {
			t.Token = tokenSpiral[tokenIdx]
			tokenIdx++
		}
		tiles[h] = t
	}
	return tiles, robber
}

// placePorts spreads the nine-harbor multiset over the coast, picking
// evenly spaced edges from the angle-sorted perimeter.
func placePorts(rng *rand.Rand, graph *board.Graph) []Port {
	types := make([]PortType, len(portMultiset))
	copy(types, portMultiset)
	rng.Shuffle(len(types), func(i, j int) {
		types[i], types[j] = types[j], types[i]
	})

	perimeter := graph.Perimeter
	ports := make([]Port, len(types))
	for i := range types {
		edge := perimeter[i*len(perimeter)/len(types)]
		ports[i] = Port{
			Type:     types[i],
			Edge:     edge,
			Vertices: graph.EdgeVertices[edge],
		}
	}
	return ports
}
