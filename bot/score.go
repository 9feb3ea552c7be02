package bot

import (
	"settlers/board"
	"settlers/game"
)

// Heuristic weights. Tuned by self-play, not derived from anything.
const (
	settlementPipWeight      = 3
	settlementVarietyWeight  = 2
	settlementPortBonus      = 3
	robberOpponentWeight     = 5
	tradeAcceptanceThreshold = 0.6
)

// keepPriority ranks resources by how reluctant the bot is to part with
// them: ore and grain fuel cities and dev cards, the rest are roughly
// interchangeable. Lower values are discarded first.
var keepPriority = [game.NumResources]int{
	game.Brick:  1,
	game.Lumber: 1,
	game.Wool:   1,
	game.Grain:  2,
	game.Ore:    3,
}

// settlementScore rates a vertex as a settlement spot: production weight
// of the surrounding tiles, variety of resources, and a bonus for sitting
// on a harbor.
func settlementScore(gs *game.GameState, v board.Vertex) int {
	pips := 0
	var kinds [game.NumResources]bool
	for _, h := range gs.Graph.VertexHexes[v] {
		tile := gs.TileAt(h)
		pips += game.PipCount(tile.Token)
		if r, ok := tile.Terrain.Produces(); ok {
			kinds[r] = true
		}
	}
	distinct := 0
	for _, present := range kinds {
		if present {
			distinct++
		}
	}
	score := settlementPipWeight*pips + settlementVarietyWeight*distinct
	if onPort(gs, v) {
		score += settlementPortBonus
	}
	return score
}

func onPort(gs *game.GameState, v board.Vertex) bool {
	for _, p := range gs.Ports {
		if p.Vertices[0] == v || p.Vertices[1] == v {
			return true
		}
	}
	return false
}

// robberScore rates a destination hex: hurting opponents is worth more
// than raw production, and a hex touching the bot's own buildings is
// never considered.
func robberScore(gs *game.GameState, h board.Hex, seat int) (int, bool) {
	opponents := 0
	for _, v := range gs.Graph.HexVertices[h] {
		b, occupied := gs.BuildingAt(v)
		if !occupied {
			continue
		}
		if b.Owner == seat {
			return 0, false
		}
		if b.Kind == game.CityBuilding {
			opponents += 2
		} else {
			opponents++
		}
	}
	return robberOpponentWeight*opponents + game.PipCount(gs.TileAt(h).Token), true
}

// robberOnOwnHex reports whether the robber currently blocks a tile the
// seat has built on.
func robberOnOwnHex(gs *game.GameState, seat int) bool {
	for _, v := range gs.Graph.HexVertices[gs.Robber] {
		if b, occupied := gs.BuildingAt(v); occupied && b.Owner == seat {
			return true
		}
	}
	return false
}

// goal is one of the things the bot saves toward, in preference order.
type goal struct {
	name string
	cost game.ResourceSet
}

// goals lists what the seat can still usefully buy, preferred first.
func goals(gs *game.GameState, seat int) []goal {
	p := gs.Player(seat)
	var out []goal
	if p.CitiesLeft > 0 && len(gs.LegalCityVertices(seat)) > 0 {
		out = append(out, goal{"city", game.CityCost})
	}
	if p.SettlementsLeft > 0 {
		out = append(out, goal{"settlement", game.SettlementCost})
	}
	if len(gs.DevDeck) > 0 {
		out = append(out, goal{"dev-card", game.DevCardCost})
	}
	if p.RoadsLeft > 0 {
		out = append(out, goal{"road", game.RoadCost})
	}
	return out
}

// missingFor returns what the hand still lacks toward a cost.
func missingFor(hand, cost game.ResourceSet) game.ResourceSet {
	var missing game.ResourceSet
	for r, n := range cost {
		if hand[r] < n {
			missing[r] = n - hand[r]
		}
	}
	return missing
}

// cheapestGoal picks the goal the seat is closest to affording. Ties fall
// to the preference order of goals.
func cheapestGoal(gs *game.GameState, seat int) (goal, game.ResourceSet, bool) {
	hand := gs.Player(seat).Hand
	var best goal
	var bestMissing game.ResourceSet
	found := false
	for _, g := range goals(gs, seat) {
		missing := missingFor(hand, g.cost)
		if !found || missing.Total() < bestMissing.Total() {
			best, bestMissing, found = g, missing, true
		}
	}
	return best, bestMissing, found
}

// needWeights values each resource for seat: everything is worth
// something, resources missing from the cheapest goal are worth more.
func needWeights(gs *game.GameState, seat int) [game.NumResources]int {
	var weights [game.NumResources]int
	for r := range weights {
		weights[r] = 1
	}
	if _, missing, ok := cheapestGoal(gs, seat); ok {
		for r, n := range missing {
			if n > 0 {
				weights[r] = 2
			}
		}
	}
	return weights
}

// bundleValue prices a bundle under the given weights.
func bundleValue(bundle game.ResourceSet, weights [game.NumResources]int) int {
	value := 0
	for r, n := range bundle {
		value += n * weights[r]
	}
	return value
}

// discardFor assembles the owed discard, dropping low keep-priority cards
// first and spreading drops across equally cheap piles.
func discardFor(hand game.ResourceSet, owed int) game.ResourceSet {
	var drop game.ResourceSet
	for owed > 0 {
		pick := -1
		for r := 0; r < game.NumResources; r++ {
			if hand[r] == 0 {
				continue
			}
			if pick < 0 || keepPriority[r] < keepPriority[pick] ||
				(keepPriority[r] == keepPriority[pick] && hand[r] > hand[pick]) {
				pick = r
			}
		}
		if pick < 0 {
			break
		}
		hand[pick]--
		drop[pick]++
		owed--
	}
	return drop
}
