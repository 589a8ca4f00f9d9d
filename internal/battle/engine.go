package battle

// DefaultMaxRounds caps an encounter whose combatants cannot finish each
// other off (for example two parties holding only status moves).
const DefaultMaxRounds = 1000

// State is the status of an encounter between side one and side two.
type State int

const (
	InProgress State = iota
	CombatantOneDefeated
	CombatantTwoDefeated
)

func (s State) String() string {
	switch s {
	case CombatantOneDefeated:
		return "one_defeated"
	case CombatantTwoDefeated:
		return "two_defeated"
	default:
		return "in_progress"
	}
}

// Chooser picks the move c uses this turn. It returns nil when c has no
// usable move.
type Chooser func(r Rand, c *Combatant) *Move

// RandomMove picks uniformly among c's moves.
func RandomMove(r Rand, c *Combatant) *Move {
	if len(c.moves) == 0 {
		return nil
	}
	return c.moves[r.IntN(len(c.moves))]
}

// FirstMove always picks c's first move slot.
func FirstMove(_ Rand, c *Combatant) *Move {
	if len(c.moves) == 0 {
		return nil
	}
	return c.moves[0]
}

// Turn is one executed move, reported to Engine.Observe.
type Turn struct {
	Round   int
	Actor   *Combatant
	Target  *Combatant
	Move    *Move
	Outcome Outcome
}

// Engine runs encounters. The zero value is not usable: Rand is required.
type Engine struct {
	Rand      Rand
	Choose    Chooser
	Observe   func(Turn)
	MaxRounds int
}

func NewEngine(r Rand) *Engine {
	return &Engine{Rand: r, Choose: RandomMove, MaxRounds: DefaultMaxRounds}
}

// Apply resolves a single move use with the engine's random source.
func (e *Engine) Apply(m *Move, user, opponent *Combatant) Outcome {
	return Apply(e.Rand, m, user, opponent)
}

// TurnOrder returns a and b in acting order: strictly higher Speed first,
// ties broken by a fresh coin flip.
func (e *Engine) TurnOrder(a, b *Combatant) (first, second *Combatant) {
	sa, sb := a.Speed(), b.Speed()
	switch {
	case sa > sb:
		return a, b
	case sb > sa:
		return b, a
	case e.Rand.IntN(2) == 0:
		return a, b
	default:
		return b, a
	}
}

// Duel fights two single combatants as they are, without resting them.
func (e *Engine) Duel(a, b *Combatant) State {
	return e.fight(&wildSide{c: a}, &wildSide{c: b})
}

// WildBattle rests both sides and fights t's party against wild. On victory
// the rested wild combatant joins t's party if there is room.
func (e *Engine) WildBattle(t *Trainer, wild *Combatant) bool {
	t.Rest()
	wild.Rest()
	if e.fight(&trainerSide{t: t}, &wildSide{c: wild}) != CombatantTwoDefeated {
		return false
	}
	wild.Rest()
	t.Add(wild)
	return true
}

// TrainerBattle rests both parties and fights them to the end. When both
// parties are empty a is treated as defeated first.
func (e *Engine) TrainerBattle(a, b *Trainer) *Trainer {
	a.Rest()
	b.Rest()
	if e.fight(&trainerSide{t: a}, &trainerSide{t: b}) == CombatantOneDefeated {
		return b
	}
	return a
}

type side interface {
	active() *Combatant
	health() float64
}

type trainerSide struct{ t *Trainer }

func (s *trainerSide) active() *Combatant { return s.t.Lead() }

func (s *trainerSide) health() float64 {
	hp, maxHP := 0, 0
	for _, c := range s.t.party {
		hp += c.HP()
		maxHP += c.MaxHP()
	}
	if maxHP == 0 {
		return 0
	}
	return float64(hp) / float64(maxHP)
}

type wildSide struct{ c *Combatant }

func (s *wildSide) active() *Combatant {
	if s.c == nil || s.c.Fainted() {
		return nil
	}
	return s.c
}

func (s *wildSide) health() float64 {
	if s.c == nil || s.c.MaxHP() == 0 {
		return 0
	}
	return float64(s.c.HP()) / float64(s.c.MaxHP())
}

func (e *Engine) fight(one, two side) State {
	limit := e.MaxRounds
	if limit <= 0 {
		limit = DefaultMaxRounds
	}
	for round := 1; ; round++ {
		a, b := one.active(), two.active()
		switch {
		case a == nil:
			return CombatantOneDefeated
		case b == nil:
			return CombatantTwoDefeated
		case round > limit:
			if one.health() >= two.health() {
				return CombatantTwoDefeated
			}
			return CombatantOneDefeated
		}

		first, second := e.TurnOrder(a, b)
		e.act(round, first, second)
		if !first.Fainted() && !second.Fainted() {
			e.act(round, second, first)
		}
	}
}

func (e *Engine) act(round int, actor, target *Combatant) {
	choose := e.Choose
	if choose == nil {
		choose = RandomMove
	}
	m := choose(e.Rand, actor)
	if m == nil {
		return
	}
	out := Apply(e.Rand, m, actor, target)
	if e.Observe != nil {
		e.Observe(Turn{Round: round, Actor: actor, Target: target, Move: m, Outcome: out})
	}
}
