package game

import (
	"fmt"

	"settlers/board"
)

// EventType tags a domain event for the broadcast layer.
type EventType string

const (
	EventSetupSettlement   EventType = "setup-settlement-placed"
	EventSetupRoad         EventType = "setup-road-placed"
	EventDiceRolled        EventType = "dice-rolled"
	EventResourcesProduced EventType = "resources-produced"
	EventMustDiscard       EventType = "must-discard"
	EventDiscarded         EventType = "discarded"
	EventRobberMoved       EventType = "robber-moved"
	EventResourceStolen    EventType = "resource-stolen"
	EventSettlementBuilt   EventType = "settlement-built"
	EventCityBuilt         EventType = "city-built"
	EventRoadBuilt         EventType = "road-built"
	EventDevCardBought     EventType = "dev-card-bought"
	EventDevCardPlayed     EventType = "dev-card-played"
	EventBankTrade         EventType = "bank-trade"
	EventTradeOffered      EventType = "trade-offered"
	EventTradeAccepted     EventType = "trade-accepted"
	EventTradeRejected     EventType = "trade-rejected"
	EventTradeConfirmed    EventType = "trade-confirmed"
	EventTradeCancelled    EventType = "trade-cancelled"
	EventLongestRoad       EventType = "longest-road"
	EventLargestArmy       EventType = "largest-army"
	EventTurnEnded         EventType = "turn-ended"
	EventGameOver          EventType = "game-over"
)

// Event is one entry of the append-only game log, also returned by Apply
// for the caller to broadcast. Seat is the acting or affected player,
// NoPlayer when neither applies.
type Event struct {
	Type EventType `json:"type"`
	Seat int       `json:"seat"`
	Text string    `json:"text"`
}

func (e Event) String() string { return string(e.Type) + ": " + e.Text }

func newEvent(t EventType, seat int, format string, args ...interface{}) Event {
	return Event{Type: t, Seat: seat, Text: fmt.Sprintf(format, args...)}
}

func settlementPlacedEvent(seat int, v board.Vertex, setup bool) Event {
	if setup {
		return newEvent(EventSetupSettlement, seat, "player %d placed a setup settlement at %s", seat, v)
	}
	return newEvent(EventSettlementBuilt, seat, "player %d built a settlement at %s", seat, v)
}

func roadPlacedEvent(seat int, e board.Edge, setup bool) Event {
	if setup {
		return newEvent(EventSetupRoad, seat, "player %d placed a setup road at %s", seat, e)
	}
	return newEvent(EventRoadBuilt, seat, "player %d built a road at %s", seat, e)
}

func diceRolledEvent(seat, total int) Event {
	return newEvent(EventDiceRolled, seat, "player %d rolled %d", seat, total)
}

func producedEvent(seat int, gained ResourceSet) Event {
	return newEvent(EventResourcesProduced, seat, "player %d received %s", seat, gained)
}

func mustDiscardEvent(seat, count int) Event {
	return newEvent(EventMustDiscard, seat, "player %d must discard %d cards", seat, count)
}

func discardedEvent(seat int, dropped ResourceSet) Event {
	return newEvent(EventDiscarded, seat, "player %d discarded %s", seat, dropped)
}

func robberMovedEvent(seat int, hex board.Hex) Event {
	return newEvent(EventRobberMoved, seat, "player %d moved the robber to %s", seat, hex)
}

// stolenEvent deliberately omits the resource; the view layer decides who
// may learn it.
func stolenEvent(seat, victim int) Event {
	return newEvent(EventResourceStolen, seat, "player %d stole a card from player %d", seat, victim)
}

func cityBuiltEvent(seat int, v board.Vertex) Event {
	return newEvent(EventCityBuilt, seat, "player %d upgraded to a city at %s", seat, v)
}

func devBoughtEvent(seat int) Event {
	return newEvent(EventDevCardBought, seat, "player %d bought a development card", seat)
}

func devPlayedEvent(seat int, card DevCard) Event {
	return newEvent(EventDevCardPlayed, seat, "player %d played %s", seat, card)
}

func bankTradeEvent(seat int, give, receive ResourceSet) Event {
	return newEvent(EventBankTrade, seat, "player %d traded %s to the bank for %s", seat, give, receive)
}

func longestRoadEvent(seat, length int) Event {
	if seat == NoPlayer {
		return newEvent(EventLongestRoad, seat, "longest road bonus is unclaimed")
	}
	return newEvent(EventLongestRoad, seat, "player %d holds the longest road (%d)", seat, length)
}

func largestArmyEvent(seat, size int) Event {
	return newEvent(EventLargestArmy, seat, "player %d holds the largest army (%d)", seat, size)
}

func turnEndedEvent(seat, next int) Event {
	return newEvent(EventTurnEnded, seat, "player %d ended the turn, player %d to act", seat, next)
}

func gameOverEvent(seat, points int) Event {
	return newEvent(EventGameOver, seat, "player %d wins with %d points", seat, points)
}
