package battle

import (
	"math/rand/v2"
	"testing"
)

// scriptedRand replays fixed draws, reduced modulo n. It falls back to 0
// once the script runs out.
type scriptedRand struct {
	draws []int
	calls int
}

func (s *scriptedRand) IntN(n int) int {
	if s.calls >= len(s.draws) {
		s.calls++
		return 0
	}
	v := s.draws[s.calls] % n
	s.calls++
	return v
}

// rolls converts 1..100 percentage rolls into IntN(100) draws.
func rolls(pcts ...int) *scriptedRand {
	draws := make([]int, len(pcts))
	for i, p := range pcts {
		draws[i] = p - 1
	}
	return &scriptedRand{draws: draws}
}

func seeded(t *testing.T) *rand.Rand {
	t.Helper()
	return rand.New(rand.NewPCG(42, 1024))
}

var tackle = NewMove("Tackle", Normal).Power(40).CritChance(0).Build()

func newMon(typ Type, base BaseStats, level int, moves ...*Move) *Combatant {
	return NewCombatant("Testmon", typ, base, level, moves...)
}

func even(v int) BaseStats {
	return BaseStats{HP: v, Attack: v, Defense: v, Speed: v}
}
