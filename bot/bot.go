// Package bot is a stateless heuristic player. Choose maps a game state
// and a seat to the action the bot would submit; it never mutates the
// state and may be called speculatively. The driving loop owns the
// serialization and the re-entrancy guard.
package bot

import (
	"settlers/board"
	"settlers/game"
)

// Choose returns the bot's next action for seat, or false when the seat
// has nothing to do (not its move, or the game is over). The returned
// action is always drawn from the legal set, so the caller can apply it
// without a fallback of its own.
func Choose(gs *game.GameState, seat int) (game.Action, bool) {
	if gs.IsOver() || !gs.ValidSeat(seat) {
		return nil, false
	}

	switch gs.Phase {
	case game.SetupSettlementPhase:
		if seat != gs.Current {
			return nil, false
		}
		return chooseSetupSettlement(gs, seat)
	case game.SetupRoadPhase:
		if seat != gs.Current {
			return nil, false
		}
		return chooseSetupRoad(gs)
	case game.PreRollPhase:
		if seat != gs.Current {
			return nil, false
		}
		return choosePreRoll(gs, seat)
	case game.DiscardPhase:
		return chooseDiscard(gs, seat)
	case game.MoveRobberPhase:
		if seat != gs.Current {
			return nil, false
		}
		return chooseRobberHex(gs, seat)
	case game.StealResourcePhase:
		if seat != gs.Current {
			return nil, false
		}
		return chooseStealTarget(gs), true
	case game.RoadBuildingPhase:
		if seat != gs.Current {
			return nil, false
		}
		return chooseExpansionRoad(gs, seat)
	case game.MainPhase:
		return chooseMain(gs, seat)
	}
	return nil, false
}

func chooseSetupSettlement(gs *game.GameState, seat int) (game.Action, bool) {
	best, ok := pickVertex(gs, gs.LegalSetupVertices())
	if !ok {
		return fallback(gs, seat)
	}
	return game.SetupSettlementAction{Vertex: best}, true
}

// chooseSetupRoad points the free road at the most promising unoccupied
// far endpoint, seeding the next expansion.
func chooseSetupRoad(gs *game.GameState) (game.Action, bool) {
	pending := gs.PendingSetupVertex
	edges := gs.LegalSetupRoads()
	if pending == nil || len(edges) == 0 {
		return fallback(gs, gs.Current)
	}
	best := edges[0]
	bestScore := -1
	for _, e := range edges {
		far := gs.Graph.OtherEndpoint(e, *pending)
		if _, occupied := gs.BuildingAt(far); occupied {
			continue
		}
		if s := settlementScore(gs, far); s > bestScore {
			best, bestScore = e, s
		}
	}
	return game.SetupRoadAction{Edge: best}, true
}

// choosePreRoll leads with a knight when the robber squats on one of the
// bot's own tiles, otherwise rolls.
func choosePreRoll(gs *game.GameState, seat int) (game.Action, bool) {
	if robberOnOwnHex(gs, seat) && gs.Validate(seat, game.PlayKnightAction{}) == nil {
		return game.PlayKnightAction{}, true
	}
	return game.RollDiceAction{}, true
}

func chooseDiscard(gs *game.GameState, seat int) (game.Action, bool) {
	p := gs.Player(seat)
	owed := gs.DiscardCount(p.HandSize())
	act := game.DiscardAction{Resources: discardFor(p.Hand, owed)}
	if gs.Validate(seat, act) != nil {
		return nil, false
	}
	return act, true
}

func chooseRobberHex(gs *game.GameState, seat int) (game.Action, bool) {
	best := board.Hex{}
	bestScore := -1
	for _, h := range gs.LegalRobberHexes() {
		score, ok := robberScore(gs, h, seat)
		if ok && score > bestScore {
			best, bestScore = h, score
		}
	}
	if bestScore < 0 {
		// every hex touches own buildings; take the first legal one
		return fallback(gs, seat)
	}
	return game.MoveRobberAction{Hex: best}, true
}

// chooseStealTarget robs the seat that looks closest to winning, breaking
// ties toward the fattest hand.
func chooseStealTarget(gs *game.GameState) game.Action {
	best := gs.StealCandidates[0]
	for _, c := range gs.StealCandidates[1:] {
		cScore, bScore := gs.PublicScore(c), gs.PublicScore(best)
		if cScore > bScore ||
			(cScore == bScore && gs.Player(c).HandSize() > gs.Player(best).HandSize()) {
			best = c
		}
	}
	return game.StealResourceAction{Target: best}
}

// chooseExpansionRoad picks the legal road whose fresh endpoint scores
// best as a future settlement.
func chooseExpansionRoad(gs *game.GameState, seat int) (game.Action, bool) {
	edges := gs.LegalRoadEdges(seat)
	if len(edges) == 0 {
		return fallback(gs, seat)
	}
	best := edges[0]
	bestScore := -1
	for _, e := range edges {
		for _, v := range gs.Graph.EdgeVertices[e] {
			if _, occupied := gs.BuildingAt(v); occupied {
				continue
			}
			if s := settlementScore(gs, v); s > bestScore {
				best, bestScore = e, s
			}
		}
	}
	return game.BuildRoadAction{Edge: best}, true
}

// chooseMain is the build-trade-end priority chain. Out of turn it only
// answers an open trade.
func chooseMain(gs *game.GameState, seat int) (game.Action, bool) {
	if seat != gs.Current {
		return respondToTrade(gs, seat)
	}
	// bots never author offers; withdraw anything left open
	if t := gs.PendingTrade; t != nil && t.From == seat {
		return game.CancelTradeAction{}, true
	}

	if act, ok := tryBuildCity(gs, seat); ok {
		return act, true
	}
	if act, ok := tryBuildSettlement(gs, seat); ok {
		return act, true
	}
	if act, ok := tryBuildRoad(gs, seat); ok {
		return act, true
	}
	if gs.Validate(seat, game.BuyDevCardAction{}) == nil {
		return game.BuyDevCardAction{}, true
	}
	if act, ok := tryPlayDevCard(gs, seat); ok {
		return act, true
	}
	if act, ok := tryBankTrade(gs, seat); ok {
		return act, true
	}
	return game.EndTurnAction{}, true
}

func tryBuildCity(gs *game.GameState, seat int) (game.Action, bool) {
	if !gs.Player(seat).Hand.Contains(game.CityCost) {
		return nil, false
	}
	best, ok := pickVertex(gs, gs.LegalCityVertices(seat))
	if !ok {
		return nil, false
	}
	act := game.BuildCityAction{Vertex: best}
	return act, gs.Validate(seat, act) == nil
}

func tryBuildSettlement(gs *game.GameState, seat int) (game.Action, bool) {
	if !gs.Player(seat).Hand.Contains(game.SettlementCost) {
		return nil, false
	}
	best, ok := pickVertex(gs, gs.LegalSettlementVertices(seat))
	if !ok {
		return nil, false
	}
	act := game.BuildSettlementAction{Vertex: best}
	return act, gs.Validate(seat, act) == nil
}

// tryBuildRoad extends the network only while settlements are still worth
// chasing and spare cards cover the cost.
func tryBuildRoad(gs *game.GameState, seat int) (game.Action, bool) {
	p := gs.Player(seat)
	if p.SettlementsLeft == 0 || !p.Hand.Contains(game.RoadCost) {
		return nil, false
	}
	// keep roading only while no settlement spot is already reachable
	if len(gs.LegalSettlementVertices(seat)) > 0 {
		return nil, false
	}
	act, ok := chooseExpansionRoad(gs, seat)
	if !ok {
		return nil, false
	}
	road, isRoad := act.(game.BuildRoadAction)
	if !isRoad || gs.Validate(seat, road) != nil {
		return nil, false
	}
	return road, true
}

// tryPlayDevCard plays a held card when it clearly helps right now.
func tryPlayDevCard(gs *game.GameState, seat int) (game.Action, bool) {
	if robberOnOwnHex(gs, seat) && gs.Validate(seat, game.PlayKnightAction{}) == nil {
		return game.PlayKnightAction{}, true
	}
	if gs.Validate(seat, game.PlayRoadBuildingAction{}) == nil &&
		gs.Player(seat).SettlementsLeft > 0 && len(gs.LegalRoadEdges(seat)) > 0 {
		return game.PlayRoadBuildingAction{}, true
	}
	if act, ok := tryYearOfPlenty(gs, seat); ok {
		return act, true
	}
	if act, ok := tryMonopoly(gs, seat); ok {
		return act, true
	}
	return nil, false
}

func tryYearOfPlenty(gs *game.GameState, seat int) (game.Action, bool) {
	_, missing, ok := cheapestGoal(gs, seat)
	if !ok || missing.IsEmpty() {
		return nil, false
	}
	picks := make([]game.Resource, 0, 2)
	for r, n := range missing {
		for ; n > 0 && len(picks) < 2; n-- {
			picks = append(picks, game.Resource(r))
		}
	}
	if len(picks) == 1 {
		picks = append(picks, picks[0])
	}
	act := game.PlayYearOfPlentyAction{First: picks[0], Second: picks[1]}
	return act, gs.Validate(seat, act) == nil
}

// tryMonopoly calls the steal only when opponents jointly hold enough of
// a resource the bot needs to make burning the card worthwhile.
func tryMonopoly(gs *game.GameState, seat int) (game.Action, bool) {
	_, missing, ok := cheapestGoal(gs, seat)
	if !ok {
		return nil, false
	}
	for r, n := range missing {
		if n == 0 {
			continue
		}
		held := 0
		for other := 0; other < gs.NumPlayers(); other++ {
			if other != seat {
				held += gs.Player(other).Hand[r]
			}
		}
		if held < 3 {
			continue
		}
		act := game.PlayMonopolyAction{Resource: game.Resource(r)}
		if gs.Validate(seat, act) == nil {
			return act, true
		}
	}
	return nil, false
}

// tryBankTrade converts surplus toward the cheapest unmet goal at the
// seat's best ratio.
func tryBankTrade(gs *game.GameState, seat int) (game.Action, bool) {
	g, missing, ok := cheapestGoal(gs, seat)
	if !ok || missing.IsEmpty() {
		return nil, false
	}
	hand := gs.Player(seat).Hand
	for give := 0; give < game.NumResources; give++ {
		ratio := gs.TradeRatio(seat, game.Resource(give))
		spare := hand[give] - g.cost[give]
		if spare < ratio {
			continue
		}
		for receive, n := range missing {
			if n == 0 || receive == give {
				continue
			}
			var giveSet, receiveSet game.ResourceSet
			giveSet[give] = ratio
			receiveSet[receive] = 1
			act := game.BankTradeAction{Give: giveSet, Receive: receiveSet}
			if gs.Validate(seat, act) == nil {
				return act, true
			}
		}
	}
	return nil, false
}

// respondToTrade weighs an open offer by need: accept when the cards
// received cover enough of the value of the cards given away.
func respondToTrade(gs *game.GameState, seat int) (game.Action, bool) {
	t := gs.PendingTrade
	if t == nil || t.From == seat || t.HasResponded(seat) {
		return nil, false
	}
	if gs.Validate(seat, game.AcceptTradeAction{}) == nil {
		weights := needWeights(gs, seat)
		received := float64(bundleValue(t.Offer, weights))
		given := float64(bundleValue(t.Request, weights))
		if received >= tradeAcceptanceThreshold*given {
			return game.AcceptTradeAction{}, true
		}
	}
	if gs.Validate(seat, game.RejectTradeAction{}) == nil {
		return game.RejectTradeAction{}, true
	}
	return nil, false
}

// pickVertex returns the best-scoring vertex of a candidate list.
func pickVertex(gs *game.GameState, candidates []board.Vertex) (board.Vertex, bool) {
	if len(candidates) == 0 {
		return board.Vertex{}, false
	}
	best := candidates[0]
	bestScore := settlementScore(gs, best)
	for _, v := range candidates[1:] {
		if s := settlementScore(gs, v); s > bestScore {
			best, bestScore = v, s
		}
	}
	return best, true
}

// fallback guarantees progress: the first enumerated legal action, or
// nothing when the seat genuinely cannot act.
func fallback(gs *game.GameState, seat int) (game.Action, bool) {
	legal := gs.LegalActions(seat)
	if len(legal) == 0 {
		return nil, false
	}
	return legal[0], true
}
