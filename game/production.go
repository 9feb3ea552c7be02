package game

import "settlers/board"

// produce hands out resources for a dice total: every building on a corner
// of a matching, unblocked tile earns its owner one resource, two for a
// city. One pass over the tiles, batched per seat so each player gets a
// single production event.
func (gs *GameState) produce(total int) []Event {
	gains := make([]ResourceSet, len(gs.Players))
	for _, h := range gs.Graph.Hexes {
		tile := gs.Tiles[h]
		if tile.Token != total || h == gs.Robber {
			continue
		}
		res, ok := tile.Terrain.Produces()
		if !ok {
			continue
		}
		for _, v := range gs.Graph.HexVertices[h] {
			b, occupied := gs.Buildings[v]
			if !occupied {
				continue
			}
			if b.Kind == CityBuilding {
				gains[b.Owner][res] += 2
			} else {
				gains[b.Owner][res]++
			}
		}
	}

	var events []Event
	for seat := range gains {
		if gains[seat].IsEmpty() {
			continue
		}
		gs.Players[seat].Hand = gs.Players[seat].Hand.Add(gains[seat])
		events = append(events, producedEvent(seat, gains[seat]))
	}
	return events
}

// setupProduction returns one resource per producing hex adjacent to the
// vertex, granted for the second setup settlement.
func (gs *GameState) setupProduction(v board.Vertex) ResourceSet {
	var gained ResourceSet
	for _, h := range gs.Graph.VertexHexes[v] {
		if res, ok := gs.Tiles[h].Terrain.Produces(); ok {
			gained[res]++
		}
	}
	return gained
}

// DiscardCount returns how many cards a hand of the given size owes after
// a 7: half rounded down, or zero at or under the hand limit.
func (gs *GameState) DiscardCount(handSize int) int {
	if handSize <= gs.Rules.HandLimit {
		return 0
	}
	return handSize / 2
}

// discardSeats lists the seats over the hand limit, in seat order.
func (gs *GameState) discardSeats() []int {
	var seats []int
	for seat := range gs.Players {
		if gs.DiscardCount(gs.Players[seat].HandSize()) > 0 {
			seats = append(seats, seat)
		}
	}
	return seats
}

// stealCandidatesAt lists the seats the mover may rob at hex: owners of
// buildings on its corners that hold at least one card, in seat order.
func (gs *GameState) stealCandidatesAt(hex board.Hex, mover int) []int {
	seen := make(map[int]bool)
	for _, v := range gs.Graph.HexVertices[hex] {
		if b, ok := gs.Buildings[v]; ok {
			seen[b.Owner] = true
		}
	}
	var seats []int
	for seat := range gs.Players {
		if seat == mover || !seen[seat] {
			continue
		}
		if gs.Players[seat].HandSize() > 0 {
			seats = append(seats, seat)
		}
	}
	return seats
}
