package game

import "golang.org/x/exp/rand"

// Apply validates the action and, if legal, returns a fresh successor
// state plus the domain events the action produced. On a rejected action
// the receiver is returned unchanged with no events. Apply never mutates
// the receiver.
func (gs *GameState) Apply(seat int, a Action) (*GameState, []Event, error) {
	if err := gs.Validate(seat, a); err != nil {
		return gs, nil, err
	}

	next := gs.Copy()
	rng := next.actionRNG()
	next.ActionCount++

	var events []Event
	switch act := a.(type) {
	case SetupSettlementAction:
		events = next.applySetupSettlement(seat, act)
	case SetupRoadAction:
		events = next.applySetupRoad(seat, act)
	case RollDiceAction:
		events = next.applyRollDice(seat, rng)
	case DiscardAction:
		events = next.applyDiscard(seat, act)
	case MoveRobberAction:
		events = next.applyMoveRobber(seat, act)
	case StealResourceAction:
		events = next.applySteal(seat, act, rng)
	case BuildRoadAction:
		events = next.applyBuildRoad(seat, act)
	case BuildSettlementAction:
		events = next.applyBuildSettlement(seat, act)
	case BuildCityAction:
		events = next.applyBuildCity(seat, act)
	case BuyDevCardAction:
		events = next.applyBuyDevCard(seat)
	case PlayKnightAction:
		events = next.applyPlayKnight(seat)
	case PlayRoadBuildingAction:
		events = next.applyPlayRoadBuilding(seat)
	case PlayYearOfPlentyAction:
		events = next.applyYearOfPlenty(seat, act)
	case PlayMonopolyAction:
		events = next.applyMonopoly(seat, act)
	case BankTradeAction:
		events = next.applyBankTrade(seat, act)
	case OfferTradeAction:
		events = next.applyOfferTrade(seat, act)
	case AcceptTradeAction:
		events = next.applyAcceptTrade(seat)
	case RejectTradeAction:
		events = next.applyRejectTrade(seat)
	case ConfirmTradeAction:
		events = next.applyConfirmTrade(seat, act)
	case CancelTradeAction:
		events = next.applyCancelTrade(seat)
	case EndTurnAction:
		events = next.applyEndTurn(seat)
	}

	events = append(events, next.checkVictory(seat)...)
	for _, e := range events {
		next.record(e)
	}
	return next, events, nil
}

func (gs *GameState) applySetupSettlement(seat int, act SetupSettlementAction) []Event {
	p := gs.Player(seat)
	gs.Buildings[act.Vertex] = Building{Kind: SettlementBuilding, Owner: seat}
	p.SettlementsLeft--

	events := []Event{settlementPlacedEvent(seat, act.Vertex, true)}
	if gs.secondSetupRound() {
		gained := gs.setupProduction(act.Vertex)
		if !gained.IsEmpty() {
			p.Hand = p.Hand.Add(gained)
			events = append(events, producedEvent(seat, gained))
		}
	}

	v := act.Vertex
	gs.PendingSetupVertex = &v
	gs.Phase = SetupRoadPhase
	return events
}

func (gs *GameState) applySetupRoad(seat int, act SetupRoadAction) []Event {
	gs.Roads[act.Edge] = Road{Owner: seat}
	gs.Player(seat).RoadsLeft--
	gs.PendingSetupVertex = nil

	events := []Event{roadPlacedEvent(seat, act.Edge, true)}
	gs.SetupIndex++
	if gs.SetupComplete() {
		gs.Phase = PreRollPhase
		gs.Current = 0
		gs.Turn = 1
	} else {
		gs.Current = gs.setupSeat(gs.SetupIndex)
		gs.Phase = SetupSettlementPhase
	}
	return events
}

func (gs *GameState) applyRollDice(seat int, rng *rand.Rand) []Event {
	_, _, total := rollDice(rng)
	gs.LastRoll = total
	events := []Event{diceRolledEvent(seat, total)}

	if total == 7 {
		gs.PhaseAfterRobber = MainPhase
		gs.MustDiscard = gs.discardSeats()
		for _, s := range gs.MustDiscard {
			events = append(events, mustDiscardEvent(s, gs.DiscardCount(gs.Player(s).HandSize())))
		}
		if len(gs.MustDiscard) > 0 {
			gs.Phase = DiscardPhase
		} else {
			gs.Phase = MoveRobberPhase
		}
		return events
	}

	events = append(events, gs.produce(total)...)
	gs.Phase = MainPhase
	return events
}

func (gs *GameState) applyDiscard(seat int, act DiscardAction) []Event {
	p := gs.Player(seat)
	p.Hand = p.Hand.Sub(act.Resources)

	idx := gs.mustDiscardIndex(seat)
	gs.MustDiscard = append(gs.MustDiscard[:idx], gs.MustDiscard[idx+1:]...)
	if len(gs.MustDiscard) == 0 {
		gs.Phase = MoveRobberPhase
	}
	return []Event{discardedEvent(seat, act.Resources)}
}

func (gs *GameState) applyMoveRobber(seat int, act MoveRobberAction) []Event {
	gs.Robber = act.Hex
	events := []Event{robberMovedEvent(seat, act.Hex)}

	gs.StealCandidates = gs.stealCandidatesAt(act.Hex, seat)
	if len(gs.StealCandidates) > 0 {
		gs.Phase = StealResourcePhase
	} else {
		gs.Phase = gs.PhaseAfterRobber
	}
	return events
}

func (gs *GameState) applySteal(seat int, act StealResourceAction, rng *rand.Rand) []Event {
	victim := gs.Player(act.Target)
	pick := rng.Intn(victim.HandSize())
	for r := 0; r < NumResources; r++ {
		if pick < victim.Hand[r] {
			victim.Hand[r]--
			gs.Player(seat).Hand[r]++
			break
		}
		pick -= victim.Hand[r]
	}

	gs.StealCandidates = nil
	gs.Phase = gs.PhaseAfterRobber
	return []Event{stolenEvent(seat, act.Target)}
}

func (gs *GameState) applyBuildRoad(seat int, act BuildRoadAction) []Event {
	p := gs.Player(seat)
	free := gs.Phase == RoadBuildingPhase
	if free {
		gs.FreeRoads--
	} else {
		p.Hand = p.Hand.Sub(RoadCost)
	}
	gs.Roads[act.Edge] = Road{Owner: seat}
	p.RoadsLeft--

	events := []Event{roadPlacedEvent(seat, act.Edge, false)}
	if free && (gs.FreeRoads == 0 || p.RoadsLeft == 0 || !gs.legalRoadEdgeExists(seat)) {
		// remaining free roads are forfeited when the network is boxed in
		gs.FreeRoads = 0
		gs.Phase = MainPhase
	}
	events = append(events, gs.updateLongestRoad()...)
	return events
}

func (gs *GameState) applyBuildSettlement(seat int, act BuildSettlementAction) []Event {
	p := gs.Player(seat)
	p.Hand = p.Hand.Sub(SettlementCost)
	gs.Buildings[act.Vertex] = Building{Kind: SettlementBuilding, Owner: seat}
	p.SettlementsLeft--

	events := []Event{settlementPlacedEvent(seat, act.Vertex, false)}
	// a new building can cut an opponent's road in two
	events = append(events, gs.updateLongestRoad()...)
	return events
}

func (gs *GameState) applyBuildCity(seat int, act BuildCityAction) []Event {
	p := gs.Player(seat)
	p.Hand = p.Hand.Sub(CityCost)
	gs.Buildings[act.Vertex] = Building{Kind: CityBuilding, Owner: seat}
	p.CitiesLeft--
	p.SettlementsLeft++ // the settlement piece returns to stock
	return []Event{cityBuiltEvent(seat, act.Vertex)}
}

func (gs *GameState) applyBuyDevCard(seat int) []Event {
	p := gs.Player(seat)
	p.Hand = p.Hand.Sub(DevCardCost)
	card := gs.DevDeck[0]
	gs.DevDeck = gs.DevDeck[1:]
	p.NewDevCards[card]++
	return []Event{devBoughtEvent(seat)}
}

func (gs *GameState) applyPlayKnight(seat int) []Event {
	p := gs.Player(seat)
	p.DevCards[Knight]--
	p.PlayedKnights++
	p.PlayedDevThisTurn = true

	events := []Event{devPlayedEvent(seat, Knight)}
	events = append(events, gs.updateLargestArmy()...)

	gs.PhaseAfterRobber = gs.Phase
	gs.Phase = MoveRobberPhase
	return events
}

func (gs *GameState) applyPlayRoadBuilding(seat int) []Event {
	p := gs.Player(seat)
	p.DevCards[RoadBuildingCard]--
	p.PlayedDevThisTurn = true

	gs.FreeRoads = 2
	if p.RoadsLeft < 2 {
		gs.FreeRoads = p.RoadsLeft
	}
	gs.Phase = RoadBuildingPhase
	if !gs.legalRoadEdgeExists(seat) {
		// nowhere to build: the grant is lost immediately
		gs.FreeRoads = 0
		gs.Phase = MainPhase
	}
	return []Event{devPlayedEvent(seat, RoadBuildingCard)}
}

func (gs *GameState) applyYearOfPlenty(seat int, act PlayYearOfPlentyAction) []Event {
	p := gs.Player(seat)
	p.DevCards[YearOfPlentyCard]--
	p.PlayedDevThisTurn = true
	p.Hand[act.First]++
	p.Hand[act.Second]++

	var gained ResourceSet
	gained[act.First]++
	gained[act.Second]++
	return []Event{devPlayedEvent(seat, YearOfPlentyCard), producedEvent(seat, gained)}
}

func (gs *GameState) applyMonopoly(seat int, act PlayMonopolyAction) []Event {
	p := gs.Player(seat)
	p.DevCards[MonopolyCard]--
	p.PlayedDevThisTurn = true

	taken := 0
	for other := range gs.Players {
		if other == seat {
			continue
		}
		n := gs.Players[other].Hand[act.Resource]
		gs.Players[other].Hand[act.Resource] = 0
		taken += n
	}
	p.Hand[act.Resource] += taken

	events := []Event{devPlayedEvent(seat, MonopolyCard)}
	if taken > 0 {
		var gained ResourceSet
		gained[act.Resource] = taken
		events = append(events, producedEvent(seat, gained))
	}
	return events
}

func (gs *GameState) applyBankTrade(seat int, act BankTradeAction) []Event {
	p := gs.Player(seat)
	p.Hand = p.Hand.Sub(act.Give).Add(act.Receive)
	return []Event{bankTradeEvent(seat, act.Give, act.Receive)}
}

func (gs *GameState) applyOfferTrade(seat int, act OfferTradeAction) []Event {
	gs.PendingTrade = &TradeOffer{From: seat, Offer: act.Offer, Request: act.Request}
	return []Event{newEvent(EventTradeOffered, seat, "player %d offers %s for %s", seat, act.Offer, act.Request)}
}

func (gs *GameState) applyAcceptTrade(seat int) []Event {
	gs.PendingTrade.Accepted = append(gs.PendingTrade.Accepted, seat)
	return []Event{newEvent(EventTradeAccepted, seat, "player %d accepts the open trade", seat)}
}

func (gs *GameState) applyRejectTrade(seat int) []Event {
	gs.PendingTrade.Rejected = append(gs.PendingTrade.Rejected, seat)
	return []Event{newEvent(EventTradeRejected, seat, "player %d rejects the open trade", seat)}
}

func (gs *GameState) applyConfirmTrade(seat int, act ConfirmTradeAction) []Event {
	t := gs.PendingTrade
	proposer := gs.Player(seat)
	partner := gs.Player(act.Partner)
	proposer.Hand = proposer.Hand.Sub(t.Offer).Add(t.Request)
	partner.Hand = partner.Hand.Sub(t.Request).Add(t.Offer)
	gs.PendingTrade = nil
	return []Event{newEvent(EventTradeConfirmed, seat,
		"player %d trades %s to player %d for %s", seat, t.Offer, act.Partner, t.Request)}
}

func (gs *GameState) applyCancelTrade(seat int) []Event {
	gs.PendingTrade = nil
	return []Event{newEvent(EventTradeCancelled, seat, "player %d withdraws the open trade", seat)}
}

func (gs *GameState) applyEndTurn(seat int) []Event {
	p := gs.Player(seat)
	for _, kind := range devCardKinds {
		if n := p.NewDevCards[kind]; n > 0 {
			p.DevCards[kind] += n
			delete(p.NewDevCards, kind)
		}
	}
	p.PlayedDevThisTurn = false

	gs.PendingTrade = nil
	gs.LastRoll = 0
	gs.FreeRoads = 0

	gs.Current = (gs.Current + 1) % gs.NumPlayers()
	if gs.Current == 0 {
		gs.Turn++
	}
	gs.Phase = PreRollPhase
	return []Event{turnEndedEvent(seat, gs.Current)}
}

// legalRoadEdgeExists is a cheaper existence check than materializing the
// full edge list.
func (gs *GameState) legalRoadEdgeExists(seat int) bool {
	for _, e := range gs.Graph.Edges {
		if gs.CanPlaceRoad(e, seat) == nil {
			return true
		}
	}
	return false
}
