package game

import "settlers/board"

// LongestRoadLength returns the longest simple path, in edges, through
// seat's road network. A vertex holding an opposing building blocks
// continuation: a path may end there but not pass through. Cycles are
// legal as long as no edge repeats, so the search tracks visited edges,
// not vertices.
func (gs *GameState) LongestRoadLength(seat int) int {
	best := 0
	used := make(map[board.Edge]bool)
	for _, e := range gs.Graph.Edges {
		if r, ok := gs.Roads[e]; !ok || r.Owner != seat {
			continue
		}
		for _, start := range gs.Graph.EdgeVertices[e] {
			if l := gs.walkRoads(seat, start, used); l > best {
				best = l
			}
		}
	}
	return best
}

// walkRoads extends a path from the given vertex over every unused own
// edge, backtracking as it goes. Starting at a blocked vertex is fine;
// only moving beyond one is not.
func (gs *GameState) walkRoads(seat int, at board.Vertex, used map[board.Edge]bool) int {
	best := 0
	for _, e := range gs.Graph.VertexEdges[at] {
		if used[e] {
			continue
		}
		if r, ok := gs.Roads[e]; !ok || r.Owner != seat {
			continue
		}
		used[e] = true
		length := 1
		next := gs.Graph.OtherEndpoint(e, at)
		if b, occupied := gs.Buildings[next]; !occupied || b.Owner == seat {
			length += gs.walkRoads(seat, next, used)
		}
		used[e] = false
		if length > best {
			best = length
		}
	}
	return best
}

// updateLongestRoad recomputes every seat's longest road and re-awards
// the bonus: strict maximum at or above the rules minimum wins it; on a
// tie the sitting holder keeps it if still tied, otherwise it lapses.
// Returns events when the holder or recorded length changes.
func (gs *GameState) updateLongestRoad() []Event {
	lengths := make([]int, len(gs.Players))
	max := 0
	for seat := range gs.Players {
		lengths[seat] = gs.LongestRoadLength(seat)
		if lengths[seat] > max {
			max = lengths[seat]
		}
	}

	holder := NoPlayer
	length := 0
	if max >= gs.Rules.LongestRoadMin {
		leaders := make([]int, 0, len(gs.Players))
		for seat, l := range lengths {
			if l == max {
				leaders = append(leaders, seat)
			}
		}
		length = max
		switch {
		case len(leaders) == 1:
			holder = leaders[0]
		case gs.LongestRoadHolder != NoPlayer && lengths[gs.LongestRoadHolder] == max:
			holder = gs.LongestRoadHolder
		default:
			// contested among non-holders: nobody gets it
			length = 0
		}
	}

	if holder == gs.LongestRoadHolder && length == gs.LongestRoadLen {
		return nil
	}
	gs.LongestRoadHolder = holder
	gs.LongestRoadLen = length
	return []Event{longestRoadEvent(holder, length)}
}

// updateLargestArmy applies the same arbitration to played knights.
func (gs *GameState) updateLargestArmy() []Event {
	max := 0
	for seat := range gs.Players {
		if gs.Players[seat].PlayedKnights > max {
			max = gs.Players[seat].PlayedKnights
		}
	}
	if max < gs.Rules.LargestArmyMin {
		return nil
	}

	holder := NoPlayer
	leaders := make([]int, 0, len(gs.Players))
	for seat := range gs.Players {
		if gs.Players[seat].PlayedKnights == max {
			leaders = append(leaders, seat)
		}
	}
	switch {
	case len(leaders) == 1:
		holder = leaders[0]
	case gs.LargestArmyHolder != NoPlayer && gs.Players[gs.LargestArmyHolder].PlayedKnights == max:
		holder = gs.LargestArmyHolder
	}

	size := max
	if holder == NoPlayer {
		size = 0
	}
	if holder == gs.LargestArmyHolder && size == gs.LargestArmySize {
		return nil
	}
	gs.LargestArmyHolder = holder
	gs.LargestArmySize = size
	if holder == NoPlayer {
		return nil
	}
	return []Event{largestArmyEvent(holder, size)}
}
