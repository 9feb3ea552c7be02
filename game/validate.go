package game

import "fmt"

// Validate checks whether seat may submit the action in the current
// state. It returns nil when Apply would accept, and a stable,
// user-displayable reason when it would not. Malformed input (off-board
// features, unknown seats) is reported the same way, never panicked on.
func (gs *GameState) Validate(seat int, a Action) error {
	if gs.Phase == GameOverPhase {
		return fmt.Errorf("the game is over")
	}
	if !gs.ValidSeat(seat) {
		return fmt.Errorf("seat %d is not in this game", seat)
	}

	switch act := a.(type) {
	case SetupSettlementAction:
		if err := gs.requireTurn(seat, SetupSettlementPhase); err != nil {
			return err
		}
		if gs.Player(seat).SettlementsLeft <= 0 {
			return fmt.Errorf("no settlement pieces left")
		}
		return gs.CanPlaceSettlement(act.Vertex, seat, false)

	case SetupRoadAction:
		if err := gs.requireTurn(seat, SetupRoadPhase); err != nil {
			return err
		}
		if gs.Player(seat).RoadsLeft <= 0 {
			return fmt.Errorf("no road pieces left")
		}
		if !gs.Graph.HasEdge(act.Edge) {
			return fmt.Errorf("edge %s is not on the board", act.Edge)
		}
		if _, occupied := gs.Roads[act.Edge]; occupied {
			return fmt.Errorf("edge %s already has a road", act.Edge)
		}
		if gs.PendingSetupVertex == nil || !gs.Graph.Touches(act.Edge, *gs.PendingSetupVertex) {
			return fmt.Errorf("setup road must touch the settlement just placed")
		}
		return nil

	case RollDiceAction:
		return gs.requireTurn(seat, PreRollPhase)

	case DiscardAction:
		if gs.Phase != DiscardPhase {
			return fmt.Errorf("discard is not legal during %s", gs.Phase)
		}
		if gs.mustDiscardIndex(seat) < 0 {
			return fmt.Errorf("seat %d owes no discard", seat)
		}
		if !act.Resources.NonNegative() {
			return fmt.Errorf("discard counts must not be negative")
		}
		p := gs.Player(seat)
		owed := gs.DiscardCount(p.HandSize())
		if act.Resources.Total() != owed {
			return fmt.Errorf("must discard exactly %d cards, got %d", owed, act.Resources.Total())
		}
		if !p.Hand.Contains(act.Resources) {
			return fmt.Errorf("cannot discard cards you do not hold")
		}
		return nil

	case MoveRobberAction:
		if err := gs.requireTurn(seat, MoveRobberPhase); err != nil {
			return err
		}
		if !gs.Graph.Contains(act.Hex) {
			return fmt.Errorf("hex %s is not on the board", act.Hex)
		}
		if act.Hex == gs.Robber {
			return fmt.Errorf("the robber must move to a different hex")
		}
		return nil

	case StealResourceAction:
		if err := gs.requireTurn(seat, StealResourcePhase); err != nil {
			return err
		}
		for _, s := range gs.StealCandidates {
			if s == act.Target {
				return nil
			}
		}
		return fmt.Errorf("seat %d cannot be robbed here", act.Target)

	case BuildRoadAction:
		if gs.Phase == RoadBuildingPhase {
			if seat != gs.Current {
				return fmt.Errorf("not your turn")
			}
		} else if err := gs.requireTurn(seat, MainPhase); err != nil {
			return err
		} else if !gs.Player(seat).Hand.Contains(RoadCost) {
			return fmt.Errorf("cannot afford a road (%s)", RoadCost)
		}
		if gs.Player(seat).RoadsLeft <= 0 {
			return fmt.Errorf("no road pieces left")
		}
		return gs.CanPlaceRoad(act.Edge, seat)

	case BuildSettlementAction:
		if err := gs.requireTurn(seat, MainPhase); err != nil {
			return err
		}
		p := gs.Player(seat)
		if p.SettlementsLeft <= 0 {
			return fmt.Errorf("no settlement pieces left")
		}
		if !p.Hand.Contains(SettlementCost) {
			return fmt.Errorf("cannot afford a settlement (%s)", SettlementCost)
		}
		return gs.CanPlaceSettlement(act.Vertex, seat, true)

	case BuildCityAction:
		if err := gs.requireTurn(seat, MainPhase); err != nil {
			return err
		}
		p := gs.Player(seat)
		if p.CitiesLeft <= 0 {
			return fmt.Errorf("no city pieces left")
		}
		if !p.Hand.Contains(CityCost) {
			return fmt.Errorf("cannot afford a city (%s)", CityCost)
		}
		return gs.CanUpgradeCity(act.Vertex, seat)

	case BuyDevCardAction:
		if err := gs.requireTurn(seat, MainPhase); err != nil {
			return err
		}
		if len(gs.DevDeck) == 0 {
			return fmt.Errorf("the development deck is empty")
		}
		if !gs.Player(seat).Hand.Contains(DevCardCost) {
			return fmt.Errorf("cannot afford a development card (%s)", DevCardCost)
		}
		return nil

	case PlayKnightAction:
		if gs.Phase != PreRollPhase && gs.Phase != MainPhase {
			return fmt.Errorf("a knight cannot be played during %s", gs.Phase)
		}
		if seat != gs.Current {
			return fmt.Errorf("not your turn")
		}
		return gs.requirePlayableCard(seat, Knight)

	case PlayRoadBuildingAction:
		if err := gs.requireTurn(seat, MainPhase); err != nil {
			return err
		}
		if gs.Player(seat).RoadsLeft <= 0 {
			return fmt.Errorf("no road pieces left")
		}
		return gs.requirePlayableCard(seat, RoadBuildingCard)

	case PlayYearOfPlentyAction:
		if err := gs.requireTurn(seat, MainPhase); err != nil {
			return err
		}
		if !act.First.Valid() || !act.Second.Valid() {
			return fmt.Errorf("year of plenty needs two real resources")
		}
		return gs.requirePlayableCard(seat, YearOfPlentyCard)

	case PlayMonopolyAction:
		if err := gs.requireTurn(seat, MainPhase); err != nil {
			return err
		}
		if !act.Resource.Valid() {
			return fmt.Errorf("monopoly needs a real resource")
		}
		return gs.requirePlayableCard(seat, MonopolyCard)

	case BankTradeAction:
		if err := gs.requireTurn(seat, MainPhase); err != nil {
			return err
		}
		if !act.Give.NonNegative() || !act.Receive.NonNegative() {
			return fmt.Errorf("trade bundles must not be negative")
		}
		for r := 0; r < NumResources; r++ {
			if act.Give[r] > 0 && act.Receive[r] > 0 {
				return fmt.Errorf("cannot trade %s for itself", Resource(r))
			}
		}
		if !gs.Player(seat).Hand.Contains(act.Give) {
			return fmt.Errorf("cannot give cards you do not hold")
		}
		yield, err := gs.bankTradeYield(seat, act.Give)
		if err != nil {
			return err
		}
		if act.Receive.Total() != yield {
			return fmt.Errorf("the bank owes %d cards for %s, asked for %d", yield, act.Give, act.Receive.Total())
		}
		return nil

	case OfferTradeAction:
		if err := gs.requireTurn(seat, MainPhase); err != nil {
			return err
		}
		if gs.PendingTrade != nil {
			return fmt.Errorf("another trade is already open")
		}
		if !act.Offer.NonNegative() || !act.Request.NonNegative() {
			return fmt.Errorf("trade bundles must not be negative")
		}
		if act.Offer.IsEmpty() || act.Request.IsEmpty() {
			return fmt.Errorf("a trade needs cards on both sides")
		}
		if !gs.Player(seat).Hand.Contains(act.Offer) {
			return fmt.Errorf("cannot offer cards you do not hold")
		}
		return nil

	case AcceptTradeAction:
		t, err := gs.requireOpenTrade(MainPhase)
		if err != nil {
			return err
		}
		if seat == t.From {
			return fmt.Errorf("cannot accept your own offer")
		}
		if t.HasResponded(seat) {
			return fmt.Errorf("seat %d already responded", seat)
		}
		if !gs.Player(seat).Hand.Contains(t.Request) {
			return fmt.Errorf("cannot cover the requested cards (%s)", t.Request)
		}
		return nil

	case RejectTradeAction:
		t, err := gs.requireOpenTrade(MainPhase)
		if err != nil {
			return err
		}
		if seat == t.From {
			return fmt.Errorf("cannot reject your own offer")
		}
		if t.HasResponded(seat) {
			return fmt.Errorf("seat %d already responded", seat)
		}
		return nil

	case ConfirmTradeAction:
		t, err := gs.requireOpenTrade(MainPhase)
		if err != nil {
			return err
		}
		if seat != t.From {
			return fmt.Errorf("only the proposer confirms a trade")
		}
		if !gs.ValidSeat(act.Partner) || !t.HasAccepted(act.Partner) {
			return fmt.Errorf("seat %d has not accepted the offer", act.Partner)
		}
		if !gs.Player(seat).Hand.Contains(t.Offer) {
			return fmt.Errorf("you no longer hold the offered cards")
		}
		if !gs.Player(act.Partner).Hand.Contains(t.Request) {
			return fmt.Errorf("seat %d no longer covers the requested cards", act.Partner)
		}
		return nil

	case CancelTradeAction:
		t, err := gs.requireOpenTrade(MainPhase)
		if err != nil {
			return err
		}
		if seat != t.From {
			return fmt.Errorf("only the proposer cancels a trade")
		}
		return nil

	case EndTurnAction:
		return gs.requireTurn(seat, MainPhase)

	default:
		return fmt.Errorf("unknown action %q", act.Name())
	}
}

// requireTurn checks the active phase and that seat is the current
// player.
func (gs *GameState) requireTurn(seat int, phase Phase) error {
	if gs.Phase != phase {
		return fmt.Errorf("legal only during %s, the game is in %s", phase, gs.Phase)
	}
	if seat != gs.Current {
		return fmt.Errorf("not your turn")
	}
	return nil
}

// requirePlayableCard checks the once-per-turn dev card rules.
func (gs *GameState) requirePlayableCard(seat int, card DevCard) error {
	p := gs.Player(seat)
	if p.PlayedDevThisTurn {
		return fmt.Errorf("already played a development card this turn")
	}
	if p.DevCards[card] == 0 {
		if p.NewDevCards[card] > 0 {
			return fmt.Errorf("a %s bought this turn is not playable yet", card)
		}
		return fmt.Errorf("no %s card to play", card)
	}
	return nil
}

// requireOpenTrade checks the phase and that a peer trade is open.
func (gs *GameState) requireOpenTrade(phase Phase) (*TradeOffer, error) {
	if gs.Phase != phase {
		return nil, fmt.Errorf("trading is not legal during %s", gs.Phase)
	}
	if gs.PendingTrade == nil {
		return nil, fmt.Errorf("no trade is open")
	}
	return gs.PendingTrade, nil
}
