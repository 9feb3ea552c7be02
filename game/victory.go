package game

// BuildingCounts tallies seat's settlements and cities on the board.
func (gs *GameState) BuildingCounts(seat int) (settlements, cities int) {
	for _, b := range gs.Buildings {
		if b.Owner != seat {
			continue
		}
		if b.Kind == CityBuilding {
			cities++
		} else {
			settlements++
		}
	}
	return settlements, cities
}

// VictoryPoints computes seat's total: one per settlement, two per city,
// two for each held bonus, one per victory point card including cards
// drawn this turn.
func (gs *GameState) VictoryPoints(seat int) int {
	settlements, cities := gs.BuildingCounts(seat)
	points := settlements + 2*cities
	if gs.LongestRoadHolder == seat {
		points += 2
	}
	if gs.LargestArmyHolder == seat {
		points += 2
	}
	p := gs.Player(seat)
	points += p.DevCards[VictoryPointCard] + p.NewDevCards[VictoryPointCard]
	return points
}

// checkVictory ends the game if any seat reached the target. The acting
// seat is checked first so it wins outright when an action pushes two
// seats over at once (a building cut can hand the road bonus elsewhere).
func (gs *GameState) checkVictory(actor int) []Event {
	if gs.Phase == GameOverPhase {
		return nil
	}
	order := make([]int, 0, len(gs.Players))
	if gs.ValidSeat(actor) {
		order = append(order, actor)
	}
	for seat := range gs.Players {
		if seat != actor {
			order = append(order, seat)
		}
	}
	for _, seat := range order {
		points := gs.VictoryPoints(seat)
		if points >= gs.Rules.VictoryTarget {
			gs.Winner = seat
			gs.Phase = GameOverPhase
			return []Event{gameOverEvent(seat, points)}
		}
	}
	return nil
}
