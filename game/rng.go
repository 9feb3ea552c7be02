package game

import (
	"encoding/binary"
	"hash/fnv"

	"golang.org/x/exp/rand"
)

// actionRNG returns the random stream for the next accepted action. The
// stream is derived from the world seed and the running action count, so a
// replay of the same action sequence reproduces every dice roll and steal
// byte for byte, no matter how many times states were copied in between.
func (gs *GameState) actionRNG() *rand.Rand {
	hasher := fnv.New64a()
	binary.Write(hasher, binary.LittleEndian, gs.Seed)
	binary.Write(hasher, binary.LittleEndian, gs.ActionCount)
	return rand.New(rand.NewSource(hasher.Sum64()))
}

// rollDice returns two fair dice and their total.
func rollDice(rng *rand.Rand) (d1, d2, total int) {
	d1 = rng.Intn(6) + 1
	d2 = rng.Intn(6) + 1
	return d1, d2, d1 + d2
}

// StateHash is a 64-bit digest of the dynamic state, for replay checks.
type StateHash uint64

// Hash digests every dynamic field. Map contents are folded in the board
// graph's deterministic order so identical states always hash identically.
func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, gs.Seed)
	binary.Write(hasher, binary.LittleEndian, int64(gs.Current))
	binary.Write(hasher, binary.LittleEndian, int64(gs.Phase))
	binary.Write(hasher, binary.LittleEndian, int64(gs.Turn))
	binary.Write(hasher, binary.LittleEndian, int64(gs.SetupIndex))
	binary.Write(hasher, binary.LittleEndian, int64(gs.LastRoll))
	binary.Write(hasher, binary.LittleEndian, int64(gs.Robber.Q))
	binary.Write(hasher, binary.LittleEndian, int64(gs.Robber.R))
	binary.Write(hasher, binary.LittleEndian, gs.ActionCount)

	for _, v := range gs.Graph.Vertices {
		if b, ok := gs.Buildings[v]; ok {
			binary.Write(hasher, binary.LittleEndian, int64(b.Kind))
			binary.Write(hasher, binary.LittleEndian, int64(b.Owner))
		} else {
			binary.Write(hasher, binary.LittleEndian, int64(-1))
		}
	}
	for _, e := range gs.Graph.Edges {
		if r, ok := gs.Roads[e]; ok {
			binary.Write(hasher, binary.LittleEndian, int64(r.Owner))
		} else {
			binary.Write(hasher, binary.LittleEndian, int64(-1))
		}
	}

	for i := range gs.Players {
		p := &gs.Players[i]
		for _, n := range p.Hand {
			binary.Write(hasher, binary.LittleEndian, int64(n))
		}
		for _, kind := range devCardKinds {
			binary.Write(hasher, binary.LittleEndian, int64(p.DevCards[kind]))
			binary.Write(hasher, binary.LittleEndian, int64(p.NewDevCards[kind]))
		}
		binary.Write(hasher, binary.LittleEndian, int64(p.PlayedKnights))
		binary.Write(hasher, binary.LittleEndian, int64(p.SettlementsLeft))
		binary.Write(hasher, binary.LittleEndian, int64(p.CitiesLeft))
		binary.Write(hasher, binary.LittleEndian, int64(p.RoadsLeft))
	}

	for _, card := range gs.DevDeck {
		binary.Write(hasher, binary.LittleEndian, int64(card))
	}

	binary.Write(hasher, binary.LittleEndian, int64(gs.LongestRoadHolder))
	binary.Write(hasher, binary.LittleEndian, int64(gs.LongestRoadLen))
	binary.Write(hasher, binary.LittleEndian, int64(gs.LargestArmyHolder))
	binary.Write(hasher, binary.LittleEndian, int64(gs.LargestArmySize))
	binary.Write(hasher, binary.LittleEndian, int64(gs.FreeRoads))
	binary.Write(hasher, binary.LittleEndian, int64(gs.Winner))

	return StateHash(hasher.Sum64())
}
