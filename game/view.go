package game

import "settlers/board"

// View is the snapshot of a game one viewer is allowed to see: the seed
// and deck order never leave the engine, opposing hands and dev cards
// collapse to counts, and hidden victory points stay hidden. Feature maps
// are keyed by the printable vertex/edge forms so the view serializes
// cleanly.
type View struct {
	Viewer int `json:"viewer"` // NoPlayer for spectators

	Tiles  []Tile    `json:"tiles"`
	Ports  []Port    `json:"ports"`
	Robber board.Hex `json:"robber"`

	Buildings map[string]Building `json:"buildings"`
	Roads     map[string]Road     `json:"roads"`

	Players []PlayerView `json:"players"`
	Current int          `json:"current"`
	Phase   string       `json:"phase"`
	Turn    int          `json:"turn"`

	LastRoll int `json:"lastRoll"`
	DeckSize int `json:"deckSize"`

	PendingTrade    *TradeOffer `json:"pendingTrade,omitempty"`
	MustDiscard     []int       `json:"mustDiscard,omitempty"`
	StealCandidates []int       `json:"stealCandidates,omitempty"`
	FreeRoads       int         `json:"freeRoads,omitempty"`

	LongestRoadHolder int `json:"longestRoadHolder"`
	LongestRoadLen    int `json:"longestRoadLen"`
	LargestArmyHolder int `json:"largestArmyHolder"`
	LargestArmySize   int `json:"largestArmySize"`

	Winner int     `json:"winner"`
	Events []Event `json:"events"`
}

// PlayerView is one seat as seen by the viewer. Hand and dev card detail
// appear only on the viewer's own entry.
type PlayerView struct {
	Seat  int    `json:"seat"`
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`

	HandCount    int            `json:"handCount"`
	Hand         *ResourceSet   `json:"hand,omitempty"`
	DevCardCount int            `json:"devCardCount"`
	DevCards     map[string]int `json:"devCards,omitempty"`
	NewDevCards  map[string]int `json:"newDevCards,omitempty"`

	PlayedKnights   int `json:"playedKnights"`
	SettlementsLeft int `json:"settlementsLeft"`
	CitiesLeft      int `json:"citiesLeft"`
	RoadsLeft       int `json:"roadsLeft"`

	// Score hides victory point cards for everyone but the viewer.
	Score int `json:"score"`
}

// ViewFor builds the redacted snapshot for one seat. Pass NoPlayer for a
// spectator view with every hidden zone collapsed.
func (gs *GameState) ViewFor(viewer int) View {
	view := View{
		Viewer:            viewer,
		Tiles:             make([]Tile, 0, len(gs.Graph.Hexes)),
		Ports:             append([]Port(nil), gs.Ports...),
		Robber:            gs.Robber,
		Buildings:         make(map[string]Building, len(gs.Buildings)),
		Roads:             make(map[string]Road, len(gs.Roads)),
		Players:           make([]PlayerView, len(gs.Players)),
		Current:           gs.Current,
		Phase:             gs.Phase.String(),
		Turn:              gs.Turn,
		LastRoll:          gs.LastRoll,
		DeckSize:          len(gs.DevDeck),
		MustDiscard:       append([]int(nil), gs.MustDiscard...),
		StealCandidates:   append([]int(nil), gs.StealCandidates...),
		FreeRoads:         gs.FreeRoads,
		LongestRoadHolder: gs.LongestRoadHolder,
		LongestRoadLen:    gs.LongestRoadLen,
		LargestArmyHolder: gs.LargestArmyHolder,
		LargestArmySize:   gs.LargestArmySize,
		Winner:            gs.Winner,
		Events:            append([]Event(nil), gs.Log...),
	}
	for _, h := range gs.Graph.Hexes {
		view.Tiles = append(view.Tiles, gs.Tiles[h])
	}
	for v, b := range gs.Buildings {
		view.Buildings[v.String()] = b
	}
	for e, r := range gs.Roads {
		view.Roads[e.String()] = r
	}
	if gs.PendingTrade != nil {
		view.PendingTrade = gs.PendingTrade.Copy()
	}

	for seat := range gs.Players {
		view.Players[seat] = gs.playerViewFor(seat, viewer)
	}
	return view
}

func (gs *GameState) playerViewFor(seat, viewer int) PlayerView {
	p := gs.Player(seat)
	pv := PlayerView{
		Seat:            p.Seat,
		ID:              p.ID,
		Name:            p.Name,
		Color:           p.Color,
		HandCount:       p.HandSize(),
		DevCardCount:    p.DevCardCount(),
		PlayedKnights:   p.PlayedKnights,
		SettlementsLeft: p.SettlementsLeft,
		CitiesLeft:      p.CitiesLeft,
		RoadsLeft:       p.RoadsLeft,
		Score:           gs.PublicScore(seat),
	}
	if seat != viewer {
		return pv
	}

	hand := p.Hand
	pv.Hand = &hand
	pv.DevCards = make(map[string]int)
	pv.NewDevCards = make(map[string]int)
	for _, kind := range devCardKinds {
		if n := p.DevCards[kind]; n > 0 {
			pv.DevCards[kind.String()] = n
		}
		if n := p.NewDevCards[kind]; n > 0 {
			pv.NewDevCards[kind.String()] = n
		}
	}
	pv.Score = gs.VictoryPoints(seat)
	return pv
}

// PublicScore is the victory point total visible to everyone: buildings
// and bonuses, without hidden victory point cards. Opponent modelling
// (the bot's steal targeting) works from this, not the true total.
func (gs *GameState) PublicScore(seat int) int {
	settlements, cities := gs.BuildingCounts(seat)
	score := settlements + 2*cities
	if gs.LongestRoadHolder == seat {
		score += 2
	}
	if gs.LargestArmyHolder == seat {
		score += 2
	}
	return score
}
