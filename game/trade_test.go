package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

/**
Trading:
- bank ratios: 4:1 bare, 3:1 with any generic port, 2:1 with the matching
  resource port; mixed-bundle trades must divide per resource
- peer protocol: offer (current seat, both sides non-empty, covered) ->
  accept/reject once per other seat, accept requires covering the request
  -> confirm with an accepting partner swaps the bundles, cancel or end
  of turn clears the offer
*/

// portState gives seat 0 a settlement on the first port's edge.
func portState(t *testing.T, portType PortType) *GameState {
	t.Helper()
	gs := mainState(2)
	edge := gs.Graph.Perimeter[0]
	ends := gs.Graph.EdgeVertices[edge]
	gs.Ports = []Port{{Type: portType, Edge: edge, Vertices: ends}}
	gs.Buildings[ends[0]] = Building{Kind: SettlementBuilding, Owner: 0}
	return gs
}

func TestTradeRatios(t *testing.T) {
	t.Run("no ports", func(t *testing.T) {
		gs := mainState(2)
		for r := 0; r < NumResources; r++ {
			require.Equal(t, 4, gs.TradeRatio(0, Resource(r)), "Bare seats trade 4:1")
		}
	})

	t.Run("generic port", func(t *testing.T) {
		gs := portState(t, GenericPort)
		for r := 0; r < NumResources; r++ {
			require.Equal(t, 3, gs.TradeRatio(0, Resource(r)), "A generic port grants 3:1 on everything")
		}
		require.Equal(t, 4, gs.TradeRatio(1, Brick), "Ports only serve their buildings' owner")
	})

	t.Run("resource port", func(t *testing.T) {
		gs := portState(t, OrePort)
		require.Equal(t, 2, gs.TradeRatio(0, Ore), "The matching resource trades 2:1")
		require.Equal(t, 4, gs.TradeRatio(0, Brick), "Other resources are unaffected")
	})
}

func TestBankTrade(t *testing.T) {
	gs := mainState(2)
	giveHand(gs, 0, ResourceSet{8, 0, 0, 0, 0})

	next := mustApply(t, gs, 0, BankTradeAction{
		Give:    ResourceSet{8, 0, 0, 0, 0},
		Receive: ResourceSet{0, 1, 0, 0, 1},
	})
	require.Zero(t, next.Player(0).Hand[Brick], "The given bundle should leave the hand")
	require.Equal(t, 1, next.Player(0).Hand[Lumber])
	require.Equal(t, 1, next.Player(0).Hand[Ore])

	_, _, err := gs.Apply(0, BankTradeAction{
		Give:    ResourceSet{6, 0, 0, 0, 0},
		Receive: ResourceSet{0, 1, 0, 0, 0},
	})
	require.Error(t, err, "A bundle off the ratio should be rejected")

	_, _, err = gs.Apply(0, BankTradeAction{
		Give:    ResourceSet{4, 0, 0, 0, 0},
		Receive: ResourceSet{0, 2, 0, 0, 0},
	})
	require.Error(t, err, "Asking for more than the bank owes should be rejected")

	_, _, err = gs.Apply(0, BankTradeAction{
		Give:    ResourceSet{0, 4, 0, 0, 0},
		Receive: ResourceSet{1, 0, 0, 0, 0},
	})
	require.Error(t, err, "Giving cards not held should be rejected")

	err = gs.Validate(0, BankTradeAction{
		Give:    ResourceSet{4, 0, 0, 0, 0},
		Receive: ResourceSet{1, 0, 0, 0, 0},
	})
	require.Error(t, err, "Trading a resource for itself should be rejected")
	require.Contains(t, err.Error(), "for itself")

	err = gs.Validate(0, BankTradeAction{
		Give:    ResourceSet{8, 0, 0, 0, 0},
		Receive: ResourceSet{1, 1, 0, 0, 0},
	})
	require.Error(t, err, "A mixed receive overlapping the give should be rejected")
}

func TestBankTradeUsesPortRatio(t *testing.T) {
	gs := portState(t, WoolPort)
	giveHand(gs, 0, ResourceSet{0, 0, 4, 0, 0})

	next := mustApply(t, gs, 0, BankTradeAction{
		Give:    ResourceSet{0, 0, 4, 0, 0},
		Receive: ResourceSet{0, 0, 0, 2, 0},
	})
	require.Equal(t, 2, next.Player(0).Hand[Grain], "Four wool at 2:1 buys two cards")
}

func TestPeerTradeLifecycle(t *testing.T) {
	gs := mainState(3)
	giveHand(gs, 0, ResourceSet{2, 0, 0, 0, 0})
	giveHand(gs, 1, ResourceSet{0, 0, 0, 1, 0})
	offer := OfferTradeAction{Offer: ResourceSet{2, 0, 0, 0, 0}, Request: ResourceSet{0, 0, 0, 1, 0}}

	gs = mustApply(t, gs, 0, offer)
	require.NotNil(t, gs.PendingTrade, "The offer should open")

	_, _, err := gs.Apply(0, offer)
	require.Error(t, err, "Only one trade may be open")

	_, _, err = gs.Apply(0, AcceptTradeAction{})
	require.Error(t, err, "The proposer cannot accept its own offer")

	_, _, err = gs.Apply(2, AcceptTradeAction{})
	require.Error(t, err, "Accepting without covering the request should be rejected")

	gs = mustApply(t, gs, 2, RejectTradeAction{})
	_, _, err = gs.Apply(2, RejectTradeAction{})
	require.Error(t, err, "A seat responds only once")

	gs = mustApply(t, gs, 1, AcceptTradeAction{})
	require.Equal(t, []int{1}, gs.PendingTrade.Accepted)
	require.Equal(t, []int{2}, gs.PendingTrade.Rejected)

	_, _, err = gs.Apply(0, ConfirmTradeAction{Partner: 2})
	require.Error(t, err, "Confirming with a seat that rejected should fail")

	next := mustApply(t, gs, 0, ConfirmTradeAction{Partner: 1})
	require.Nil(t, next.PendingTrade, "A confirmed trade should close")
	require.Equal(t, 2, next.Player(1).Hand[Brick], "The partner should receive the offered bundle")
	require.Equal(t, 1, next.Player(0).Hand[Grain], "The proposer should receive the requested bundle")
	require.Zero(t, next.Player(0).Hand[Brick])
	require.Zero(t, next.Player(1).Hand[Grain])
}

func TestPeerTradeCancel(t *testing.T) {
	gs := mainState(2)
	giveHand(gs, 0, ResourceSet{1, 0, 0, 0, 0})
	gs = mustApply(t, gs, 0, OfferTradeAction{
		Offer:   ResourceSet{1, 0, 0, 0, 0},
		Request: ResourceSet{0, 0, 0, 0, 1},
	})

	_, _, err := gs.Apply(1, CancelTradeAction{})
	require.Error(t, err, "Only the proposer cancels")

	next := mustApply(t, gs, 0, CancelTradeAction{})
	require.Nil(t, next.PendingTrade, "A cancelled trade should close")
	require.Equal(t, 1, next.Player(0).Hand[Brick], "Cancelling moves no cards")
}

func TestOfferTradeValidation(t *testing.T) {
	gs := mainState(2)
	giveHand(gs, 0, ResourceSet{1, 0, 0, 0, 0})

	_, _, err := gs.Apply(0, OfferTradeAction{Offer: ResourceSet{1, 0, 0, 0, 0}})
	require.Error(t, err, "A one-sided trade should be rejected")

	_, _, err = gs.Apply(0, OfferTradeAction{
		Offer:   ResourceSet{0, 2, 0, 0, 0},
		Request: ResourceSet{0, 0, 0, 0, 1},
	})
	require.Error(t, err, "Offering cards not held should be rejected")

	_, _, err = gs.Apply(1, OfferTradeAction{
		Offer:   ResourceSet{1, 0, 0, 0, 0},
		Request: ResourceSet{0, 0, 0, 0, 1},
	})
	require.Error(t, err, "Only the current seat may author an offer")
}
