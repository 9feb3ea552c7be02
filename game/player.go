package game

// PlayerState is everything owned by one seat. Buildings and roads live on
// the board maps in GameState; here we track the hand, the dev cards and
// the remaining piece stock.
type PlayerState struct {
	Seat int `json:"seat"`
	// ID is the stable external identity the caller keys connections on;
	// it survives the seating shuffle.
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Color string      `json:"color"`
	Hand  ResourceSet `json:"hand"`

	// DevCards are playable; NewDevCards were bought this turn and become
	// playable when the turn ends.
	DevCards    map[DevCard]int `json:"devCards"`
	NewDevCards map[DevCard]int `json:"newDevCards"`

	PlayedKnights     int  `json:"playedKnights"`
	PlayedDevThisTurn bool `json:"playedDevThisTurn"`

	SettlementsLeft int `json:"settlementsLeft"`
	CitiesLeft      int `json:"citiesLeft"`
	RoadsLeft       int `json:"roadsLeft"`
}

// seatColors is the fixed palette, assigned by seat after the seating
// shuffle.
var seatColors = []string{"red", "blue", "white", "orange"}

// NewPlayerState returns a seat with full piece stock and an empty hand.
func NewPlayerState(seat int, id, name string, rules Rules) PlayerState {
	return PlayerState{
		Seat:            seat,
		ID:              id,
		Name:            name,
		Color:           seatColors[seat%len(seatColors)],
		DevCards:        make(map[DevCard]int),
		NewDevCards:     make(map[DevCard]int),
		SettlementsLeft: rules.SettlementStock,
		CitiesLeft:      rules.CityStock,
		RoadsLeft:       rules.RoadStock,
	}
}

// Copy returns a deep copy; the dev card maps are cloned.
func (p PlayerState) Copy() PlayerState {
	clone := p
	clone.DevCards = make(map[DevCard]int, len(p.DevCards))
	for k, n := range p.DevCards {
		clone.DevCards[k] = n
	}
	clone.NewDevCards = make(map[DevCard]int, len(p.NewDevCards))
	for k, n := range p.NewDevCards {
		clone.NewDevCards[k] = n
	}
	return clone
}

// DevCardCount returns the total number of dev cards held, including ones
// bought this turn.
func (p PlayerState) DevCardCount() int {
	total := 0
	for _, n := range p.DevCards {
		total += n
	}
	for _, n := range p.NewDevCards {
		total += n
	}
	return total
}

// HandSize returns the number of resource cards held.
func (p PlayerState) HandSize() int { return p.Hand.Total() }
