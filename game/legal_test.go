package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

/**
Legal action enumerator:
- everything enumerated passes Validate, in every phase it covers
- the enumerator respects whose move it is, including out-of-turn
  discards and trade responses
- a finished game enumerates nothing
*/

// requireAllLegal validates every enumerated action for every seat.
func requireAllLegal(t *testing.T, gs *GameState) {
	t.Helper()
	for seat := 0; seat < gs.NumPlayers(); seat++ {
		for _, act := range gs.LegalActions(seat) {
			require.NoError(t, gs.Validate(seat, act),
				"Enumerated %s for seat %d in %s must validate", act.Name(), seat, gs.Phase)
		}
	}
}

func TestEnumeratedActionsAlwaysValidate(t *testing.T) {
	t.Run("setup", func(t *testing.T) {
		gs := fixedState(3)
		requireAllLegal(t, gs)
		require.NotEmpty(t, gs.LegalActions(0), "The opening seat has placements")
		require.Empty(t, gs.LegalActions(1), "Waiting seats have nothing")
	})

	t.Run("pre-roll", func(t *testing.T) {
		gs := fixedState(3)
		gs.Phase = PreRollPhase
		gs.SetupIndex = 6
		gs.Players[0].DevCards[Knight] = 1
		requireAllLegal(t, gs)
		require.Len(t, gs.LegalActions(0), 2, "A held knight joins the roll")
	})

	t.Run("discard queue", func(t *testing.T) {
		gs := fixedState(3)
		gs.Phase = DiscardPhase
		gs.SetupIndex = 6
		gs.MustDiscard = []int{1, 2}
		gs.PhaseAfterRobber = MainPhase
		giveHand(gs, 1, ResourceSet{5, 5, 0, 0, 0})
		giveHand(gs, 2, ResourceSet{3, 3, 3, 0, 0})
		requireAllLegal(t, gs)
		require.Empty(t, gs.LegalActions(0), "The roller owes nothing")
		require.NotEmpty(t, gs.LegalActions(1))
		require.NotEmpty(t, gs.LegalActions(2), "Every listed seat can act, not only the current one")
	})

	t.Run("main with a rich hand", func(t *testing.T) {
		gs := mainState(3)
		giveHand(gs, 0, ResourceSet{6, 4, 2, 3, 3})
		gs.Players[0].DevCards[YearOfPlentyCard] = 1
		requireAllLegal(t, gs)
	})

	t.Run("main with an open trade", func(t *testing.T) {
		gs := mainState(3)
		giveHand(gs, 0, ResourceSet{2, 0, 0, 0, 0})
		giveHand(gs, 1, ResourceSet{0, 1, 0, 0, 0})
		gs.PendingTrade = &TradeOffer{
			From:     0,
			Offer:    ResourceSet{1, 0, 0, 0, 0},
			Request:  ResourceSet{0, 1, 0, 0, 0},
			Accepted: []int{1},
		}
		requireAllLegal(t, gs)

		names := make(map[string]bool)
		for _, act := range gs.LegalActions(0) {
			names[act.Name()] = true
		}
		require.True(t, names["confirm-trade"], "An accepted offer can be confirmed")
		require.True(t, names["cancel-trade"])
		require.Empty(t, gs.LegalActions(1), "A responded seat is done with the trade")

		for _, act := range gs.LegalActions(2) {
			require.Contains(t, []string{"reject-trade"}, act.Name(),
				"Seat 2 cannot cover the request, so it may only reject")
		}
	})

	t.Run("robber phases", func(t *testing.T) {
		gs := fixedState(3)
		gs.Phase = MoveRobberPhase
		gs.SetupIndex = 6
		gs.PhaseAfterRobber = MainPhase
		requireAllLegal(t, gs)
		require.Len(t, gs.LegalActions(0), len(gs.Graph.Hexes)-1,
			"Every hex but the robber's own is a destination")
	})

	t.Run("game over", func(t *testing.T) {
		gs := mainState(2)
		gs.Phase = GameOverPhase
		gs.Winner = 0
		require.Empty(t, gs.LegalActions(0))
		require.Empty(t, gs.LegalActions(1))
	})
}
