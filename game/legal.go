package game

import (
	"fmt"

	"settlers/board"
	"settlers/utils"
)

// CanPlaceSettlement checks vertex legality for seat: on the board, empty,
// distance rule satisfied, and when connected is true, touched by one of
// the seat's roads. Setup placements pass connected=false.
func (gs *GameState) CanPlaceSettlement(v board.Vertex, seat int, connected bool) error {
	if !gs.Graph.HasVertex(v) {
		return fmt.Errorf("vertex %s is not on the board", v)
	}
	if _, occupied := gs.Buildings[v]; occupied {
		return fmt.Errorf("vertex %s is already occupied", v)
	}
	for _, adj := range gs.Graph.VertexAdjacent[v] {
		if _, occupied := gs.Buildings[adj]; occupied {
			return fmt.Errorf("vertex %s violates the distance rule", v)
		}
	}
	if connected && !gs.hasRoadAt(v, seat) {
		return fmt.Errorf("vertex %s does not touch one of your roads", v)
	}
	return nil
}

// hasRoadAt reports whether seat owns a road on an edge incident to v.
func (gs *GameState) hasRoadAt(v board.Vertex, seat int) bool {
	for _, e := range gs.Graph.VertexEdges[v] {
		if r, ok := gs.Roads[e]; ok && r.Owner == seat {
			return true
		}
	}
	return false
}

// CanPlaceRoad checks edge legality for seat: on the board, empty, and
// connected to the seat's network at an endpoint. An endpoint connects
// through the seat's own building, or through an incident own road as
// long as no opposing building sits on that endpoint.
func (gs *GameState) CanPlaceRoad(e board.Edge, seat int) error {
	if !gs.Graph.HasEdge(e) {
		return fmt.Errorf("edge %s is not on the board", e)
	}
	if _, occupied := gs.Roads[e]; occupied {
		return fmt.Errorf("edge %s already has a road", e)
	}
	for _, v := range gs.Graph.EdgeVertices[e] {
		if b, occupied := gs.Buildings[v]; occupied {
			if b.Owner == seat {
				return nil
			}
			continue // opposing building blocks connection through v
		}
		if gs.hasRoadAt(v, seat) {
			return nil
		}
	}
	return fmt.Errorf("edge %s does not connect to your network", e)
}

// CanUpgradeCity checks that v holds the seat's own settlement.
func (gs *GameState) CanUpgradeCity(v board.Vertex, seat int) error {
	b, occupied := gs.Buildings[v]
	if !occupied {
		return fmt.Errorf("vertex %s has no settlement to upgrade", v)
	}
	if b.Owner != seat {
		return fmt.Errorf("the building at %s is not yours", v)
	}
	if b.Kind != SettlementBuilding {
		return fmt.Errorf("vertex %s already holds a city", v)
	}
	return nil
}

// LegalSetupVertices lists every vertex a setup settlement can take, in
// board order.
func (gs *GameState) LegalSetupVertices() []board.Vertex {
	var out []board.Vertex
	for _, v := range gs.Graph.Vertices {
		if gs.CanPlaceSettlement(v, gs.Current, false) == nil {
			out = append(out, v)
		}
	}
	return out
}

// LegalSetupRoads lists the free edges around the settlement awaiting its
// road.
func (gs *GameState) LegalSetupRoads() []board.Edge {
	if gs.PendingSetupVertex == nil {
		return nil
	}
	var out []board.Edge
	for _, e := range gs.Graph.VertexEdges[*gs.PendingSetupVertex] {
		if _, occupied := gs.Roads[e]; !occupied {
			out = append(out, e)
		}
	}
	return out
}

// LegalSettlementVertices lists every vertex seat could build on now,
// ignoring cost and stock.
func (gs *GameState) LegalSettlementVertices(seat int) []board.Vertex {
	var out []board.Vertex
	for _, v := range gs.Graph.Vertices {
		if gs.CanPlaceSettlement(v, seat, true) == nil {
			out = append(out, v)
		}
	}
	return out
}

// LegalRoadEdges lists every edge seat could road now, ignoring cost and
// stock.
func (gs *GameState) LegalRoadEdges(seat int) []board.Edge {
	var out []board.Edge
	for _, e := range gs.Graph.Edges {
		if gs.CanPlaceRoad(e, seat) == nil {
			out = append(out, e)
		}
	}
	return out
}

// LegalCityVertices lists seat's settlements eligible for upgrade.
func (gs *GameState) LegalCityVertices(seat int) []board.Vertex {
	var out []board.Vertex
	for _, v := range gs.Graph.Vertices {
		if gs.CanUpgradeCity(v, seat) == nil {
			out = append(out, v)
		}
	}
	return out
}

// LegalRobberHexes lists every hex the robber can move to.
func (gs *GameState) LegalRobberHexes() []board.Hex {
	var out []board.Hex
	for _, h := range gs.Graph.Hexes {
		if h != gs.Robber {
			out = append(out, h)
		}
	}
	return out
}

// mustDiscardIndex returns seat's position in the discard queue, or -1.
func (gs *GameState) mustDiscardIndex(seat int) int {
	return utils.FindIndex(gs.MustDiscard, seat)
}

// defaultDiscard builds a canonical discard of n cards, dropping from the
// largest piles first. Used by the enumerator; the bot has its own
// priorities.
func defaultDiscard(hand ResourceSet, n int) ResourceSet {
	var drop ResourceSet
	for n > 0 {
		biggest := 0
		for r := 1; r < NumResources; r++ {
			if hand[r] > hand[biggest] {
				biggest = r
			}
		}
		if hand[biggest] == 0 {
			break
		}
		hand[biggest]--
		drop[biggest]++
		n--
	}
	return drop
}

// LegalActions enumerates actions seat could submit right now, in a
// deterministic order. The list is exhaustive for every phase except two
// deliberate cuts: it proposes a single canonical discard rather than
// every half-hand combination, and it never authors peer trade offers.
func (gs *GameState) LegalActions(seat int) []Action {
	if !gs.ValidSeat(seat) || gs.Phase == GameOverPhase {
		return nil
	}
	var out []Action

	switch gs.Phase {
	case SetupSettlementPhase:
		if seat != gs.Current {
			return nil
		}
		for _, v := range gs.LegalSetupVertices() {
			out = append(out, SetupSettlementAction{Vertex: v})
		}

	case SetupRoadPhase:
		if seat != gs.Current {
			return nil
		}
		for _, e := range gs.LegalSetupRoads() {
			out = append(out, SetupRoadAction{Edge: e})
		}

	case PreRollPhase:
		if seat != gs.Current {
			return nil
		}
		if gs.canPlayDevCard(seat, Knight) {
			out = append(out, PlayKnightAction{})
		}
		out = append(out, RollDiceAction{})

	case DiscardPhase:
		if gs.mustDiscardIndex(seat) < 0 {
			return nil
		}
		hand := gs.Player(seat).Hand
		out = append(out, DiscardAction{Resources: defaultDiscard(hand, gs.DiscardCount(hand.Total()))})

	case MoveRobberPhase:
		if seat != gs.Current {
			return nil
		}
		for _, h := range gs.LegalRobberHexes() {
			out = append(out, MoveRobberAction{Hex: h})
		}

	case StealResourcePhase:
		if seat != gs.Current {
			return nil
		}
		for _, target := range gs.StealCandidates {
			out = append(out, StealResourceAction{Target: target})
		}

	case RoadBuildingPhase:
		if seat != gs.Current {
			return nil
		}
		for _, e := range gs.LegalRoadEdges(seat) {
			out = append(out, BuildRoadAction{Edge: e})
		}

	case MainPhase:
		out = gs.legalMainActions(seat)
	}
	return out
}

// legalMainActions enumerates the main phase, where respondents to an
// open trade may act out of turn.
func (gs *GameState) legalMainActions(seat int) []Action {
	var out []Action
	p := gs.Player(seat)

	if seat != gs.Current {
		t := gs.PendingTrade
		if t == nil || t.From == seat || t.HasResponded(seat) {
			return nil
		}
		if p.Hand.Contains(t.Request) {
			out = append(out, AcceptTradeAction{})
		}
		out = append(out, RejectTradeAction{})
		return out
	}

	if p.CitiesLeft > 0 && p.Hand.Contains(CityCost) {
		for _, v := range gs.LegalCityVertices(seat) {
			out = append(out, BuildCityAction{Vertex: v})
		}
	}
	if p.SettlementsLeft > 0 && p.Hand.Contains(SettlementCost) {
		for _, v := range gs.LegalSettlementVertices(seat) {
			out = append(out, BuildSettlementAction{Vertex: v})
		}
	}
	if p.RoadsLeft > 0 && p.Hand.Contains(RoadCost) {
		for _, e := range gs.LegalRoadEdges(seat) {
			out = append(out, BuildRoadAction{Edge: e})
		}
	}
	if len(gs.DevDeck) > 0 && p.Hand.Contains(DevCardCost) {
		out = append(out, BuyDevCardAction{})
	}

	if gs.canPlayDevCard(seat, Knight) {
		out = append(out, PlayKnightAction{})
	}
	if gs.canPlayDevCard(seat, RoadBuildingCard) && p.RoadsLeft > 0 {
		out = append(out, PlayRoadBuildingAction{})
	}
	if gs.canPlayDevCard(seat, YearOfPlentyCard) {
		for first := 0; first < NumResources; first++ {
			for second := first; second < NumResources; second++ {
				out = append(out, PlayYearOfPlentyAction{First: Resource(first), Second: Resource(second)})
			}
		}
	}
	if gs.canPlayDevCard(seat, MonopolyCard) {
		for r := 0; r < NumResources; r++ {
			out = append(out, PlayMonopolyAction{Resource: Resource(r)})
		}
	}

	// Minimal bank trades: one ratio bundle of a held resource for one
	// card of another.
	for give := 0; give < NumResources; give++ {
		ratio := gs.TradeRatio(seat, Resource(give))
		if p.Hand[give] < ratio {
			continue
		}
		for receive := 0; receive < NumResources; receive++ {
			if receive == give {
				continue
			}
			var giveSet, receiveSet ResourceSet
			giveSet[give] = ratio
			receiveSet[receive] = 1
			out = append(out, BankTradeAction{Give: giveSet, Receive: receiveSet})
		}
	}

	if t := gs.PendingTrade; t != nil && t.From == seat {
		for _, partner := range t.Accepted {
			if gs.Player(partner).Hand.Contains(t.Request) && p.Hand.Contains(t.Offer) {
				out = append(out, ConfirmTradeAction{Partner: partner})
			}
		}
		out = append(out, CancelTradeAction{})
	}

	out = append(out, EndTurnAction{})
	return out
}

// canPlayDevCard reports whether seat may play the card now: holds a copy
// bought on an earlier turn and has not played a dev card this turn.
func (gs *GameState) canPlayDevCard(seat int, card DevCard) bool {
	p := gs.Player(seat)
	return p.DevCards[card] > 0 && !p.PlayedDevThisTurn
}
