package game

import (
	"fmt"

	"settlers/utils"
)

// TradeOffer is the single open peer trade. Offer is what the proposer
// gives, Request what they want back. Other seats accept or reject; the
// proposer then confirms with one accepting partner or cancels.
type TradeOffer struct {
	From     int         `json:"from"`
	Offer    ResourceSet `json:"offer"`
	Request  ResourceSet `json:"request"`
	Accepted []int       `json:"accepted"`
	Rejected []int       `json:"rejected"`
}

// Copy returns a deep copy of the offer.
func (t *TradeOffer) Copy() *TradeOffer {
	clone := *t
	clone.Accepted = make([]int, len(t.Accepted))
	copy(clone.Accepted, t.Accepted)
	clone.Rejected = make([]int, len(t.Rejected))
	copy(clone.Rejected, t.Rejected)
	return &clone
}

// HasAccepted reports whether seat already accepted the offer.
func (t *TradeOffer) HasAccepted(seat int) bool {
	return utils.Contains(t.Accepted, seat)
}

// HasResponded reports whether seat already accepted or rejected.
func (t *TradeOffer) HasResponded(seat int) bool {
	return t.HasAccepted(seat) || utils.Contains(t.Rejected, seat)
}

// hasPortAccess reports whether seat owns a building on either vertex the
// port serves.
func (gs *GameState) hasPortAccess(p Port, seat int) bool {
	for _, v := range p.Vertices {
		if b, ok := gs.Buildings[v]; ok && b.Owner == seat {
			return true
		}
	}
	return false
}

// TradeRatio returns the cheapest bank ratio seat holds for resource r:
// 2 with the matching resource port, 3 with any generic port, else 4.
func (gs *GameState) TradeRatio(seat int, r Resource) int {
	ratio := 4
	for _, p := range gs.Ports {
		if !gs.hasPortAccess(p, seat) {
			continue
		}
		if p.Type == GenericPort {
			if ratio > 3 {
				ratio = 3
			}
			continue
		}
		if pr, _ := p.Type.Resource(); pr == r {
			return 2
		}
	}
	return ratio
}

// TradeRatios returns the per-resource bank ratios for seat.
func (gs *GameState) TradeRatios(seat int) [NumResources]int {
	var ratios [NumResources]int
	for r := 0; r < NumResources; r++ {
		ratios[r] = gs.TradeRatio(seat, Resource(r))
	}
	return ratios
}

// bankTradeYield returns how many cards the bank owes for the given
// bundle at seat's ratios. Each resource must be given in whole ratio
// multiples.
func (gs *GameState) bankTradeYield(seat int, give ResourceSet) (int, error) {
	yield := 0
	for r, n := range give {
		if n == 0 {
			continue
		}
		if n < 0 {
			return 0, fmt.Errorf("negative %s in bank trade", Resource(r))
		}
		ratio := gs.TradeRatio(seat, Resource(r))
		if n%ratio != 0 {
			return 0, fmt.Errorf("%d %s does not divide by the %d:1 ratio", n, Resource(r), ratio)
		}
		yield += n / ratio
	}
	if yield == 0 {
		return 0, fmt.Errorf("bank trade gives nothing")
	}
	return yield, nil
}
