package game

import "settlers/board"

// Action is one move a seat can submit. The concrete types below form a
// closed set; Validate and Apply dispatch on them exhaustively.
type Action interface {
	// Name is the stable identifier used in events and error messages.
	Name() string
	isAction()
}

// SetupSettlementAction places a free settlement during the snake draft.
type SetupSettlementAction struct {
	Vertex board.Vertex `json:"vertex"`
}

// SetupRoadAction roads the settlement just placed during the draft.
type SetupRoadAction struct {
	Edge board.Edge `json:"edge"`
}

// RollDiceAction rolls for production; total 7 triggers the robber.
type RollDiceAction struct{}

// DiscardAction drops half the hand after a 7. Legal for any seat listed
// in MustDiscard, not only the current player.
type DiscardAction struct {
	Resources ResourceSet `json:"resources"`
}

// MoveRobberAction relocates the robber to a different hex.
type MoveRobberAction struct {
	Hex board.Hex `json:"hex"`
}

// StealResourceAction takes one random card from a player at the robber
// hex.
type StealResourceAction struct {
	Target int `json:"target"`
}

// BuildRoadAction places a road. In RoadBuildingPhase the road is free;
// in MainPhase it costs RoadCost.
type BuildRoadAction struct {
	Edge board.Edge `json:"edge"`
}

// BuildSettlementAction places a settlement for SettlementCost.
type BuildSettlementAction struct {
	Vertex board.Vertex `json:"vertex"`
}

// BuildCityAction upgrades an own settlement to a city for CityCost.
type BuildCityAction struct {
	Vertex board.Vertex `json:"vertex"`
}

// BuyDevCardAction draws the top card of the dev deck for DevCardCost.
type BuyDevCardAction struct{}

// PlayKnightAction plays a knight: army grows and the robber moves. Also
// legal before rolling.
type PlayKnightAction struct{}

// PlayRoadBuildingAction grants up to two free road placements.
type PlayRoadBuildingAction struct{}

// PlayYearOfPlentyAction takes two chosen resources from the bank.
type PlayYearOfPlentyAction struct {
	First  Resource `json:"first"`
	Second Resource `json:"second"`
}

// PlayMonopolyAction takes every card of one resource from all opponents.
type PlayMonopolyAction struct {
	Resource Resource `json:"resource"`
}

// BankTradeAction exchanges with the bank at the seat's best ratio.
type BankTradeAction struct {
	Give    ResourceSet `json:"give"`
	Receive ResourceSet `json:"receive"`
}

// OfferTradeAction opens a peer trade from the current player.
type OfferTradeAction struct {
	Offer   ResourceSet `json:"offer"`
	Request ResourceSet `json:"request"`
}

// AcceptTradeAction marks the acting seat willing to take the open offer.
type AcceptTradeAction struct{}

// RejectTradeAction declines the open offer.
type RejectTradeAction struct{}

// ConfirmTradeAction executes the open offer with a seat that accepted.
type ConfirmTradeAction struct {
	Partner int `json:"partner"`
}

// CancelTradeAction withdraws the proposer's open offer.
type CancelTradeAction struct{}

// EndTurnAction passes play to the next seat.
type EndTurnAction struct{}

func (SetupSettlementAction) Name() string  { return "setup-settlement" }
func (SetupRoadAction) Name() string        { return "setup-road" }
func (RollDiceAction) Name() string         { return "roll-dice" }
func (DiscardAction) Name() string          { return "discard" }
func (MoveRobberAction) Name() string       { return "move-robber" }
func (StealResourceAction) Name() string    { return "steal-resource" }
func (BuildRoadAction) Name() string        { return "build-road" }
func (BuildSettlementAction) Name() string  { return "build-settlement" }
func (BuildCityAction) Name() string        { return "build-city" }
func (BuyDevCardAction) Name() string       { return "buy-dev-card" }
func (PlayKnightAction) Name() string       { return "play-knight" }
func (PlayRoadBuildingAction) Name() string { return "play-road-building" }
func (PlayYearOfPlentyAction) Name() string { return "play-year-of-plenty" }
func (PlayMonopolyAction) Name() string     { return "play-monopoly" }
func (BankTradeAction) Name() string        { return "bank-trade" }
func (OfferTradeAction) Name() string       { return "offer-trade" }
func (AcceptTradeAction) Name() string      { return "accept-trade" }
func (RejectTradeAction) Name() string      { return "reject-trade" }
func (ConfirmTradeAction) Name() string     { return "confirm-trade" }
func (CancelTradeAction) Name() string      { return "cancel-trade" }
func (EndTurnAction) Name() string          { return "end-turn" }

func (SetupSettlementAction) isAction()  {}
func (SetupRoadAction) isAction()        {}
func (RollDiceAction) isAction()         {}
func (DiscardAction) isAction()          {}
func (MoveRobberAction) isAction()       {}
func (StealResourceAction) isAction()    {}
func (BuildRoadAction) isAction()        {}
func (BuildSettlementAction) isAction()  {}
func (BuildCityAction) isAction()        {}
func (BuyDevCardAction) isAction()       {}
func (PlayKnightAction) isAction()       {}
func (PlayRoadBuildingAction) isAction() {}
func (PlayYearOfPlentyAction) isAction() {}
func (PlayMonopolyAction) isAction()     {}
func (BankTradeAction) isAction()        {}
func (OfferTradeAction) isAction()       {}
func (AcceptTradeAction) isAction()      {}
func (RejectTradeAction) isAction()      {}
func (ConfirmTradeAction) isAction()     {}
func (CancelTradeAction) isAction()      {}
func (EndTurnAction) isAction()          {}
