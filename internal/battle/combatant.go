package battle

// MaxMoves is the number of move slots a combatant has.
const MaxMoves = 4

// Combatant is a battling creature. HP and stages persist across moves
// within a battle and are reset by Rest.
type Combatant struct {
	Species  string
	Nickname string
	Type     Type

	base  BaseStats
	level int
	moves []*Move

	maxHP   int
	hp      int
	attack  int
	defense int
	speed   int

	stages [StatSpeed + 1]int
}

// NewCombatant derives all stats for the given level and attaches up to
// MaxMoves moves. Nil moves are ignored.
func NewCombatant(species string, typ Type, base BaseStats, level int, moves ...*Move) *Combatant {
	c := &Combatant{
		Species: species,
		Type:    typ,
		base:    base,
		level:   normalizeLevel(level),
	}
	for _, m := range moves {
		if m == nil || len(c.moves) == MaxMoves {
			continue
		}
		c.moves = append(c.moves, m)
	}
	c.maxHP = MaxHP(base.HP, c.level)
	c.attack = RawStat(base.Attack, c.level)
	c.defense = RawStat(base.Defense, c.level)
	c.speed = RawStat(base.Speed, c.level)
	c.Rest()
	return c
}

// Name is the nickname when set, the species otherwise.
func (c *Combatant) Name() string {
	if c.Nickname != "" {
		return c.Nickname
	}
	return c.Species
}

func (c *Combatant) Level() int      { return c.level }
func (c *Combatant) Base() BaseStats { return c.base }
func (c *Combatant) HP() int         { return c.hp }
func (c *Combatant) MaxHP() int      { return c.maxHP }
func (c *Combatant) Fainted() bool   { return c.hp == 0 }

// Moves returns a copy of the move slots.
func (c *Combatant) Moves() []*Move {
	out := make([]*Move, len(c.moves))
	copy(out, c.moves)
	return out
}

// RawAttack, RawDefense and RawSpeed ignore stage modifiers.
func (c *Combatant) RawAttack() int  { return c.attack }
func (c *Combatant) RawDefense() int { return c.defense }
func (c *Combatant) RawSpeed() int   { return c.speed }

func (c *Combatant) Attack() int  { return applyStage(c.attack, c.stages[StatAttack]) }
func (c *Combatant) Defense() int { return applyStage(c.defense, c.stages[StatDefense]) }
func (c *Combatant) Speed() int   { return applyStage(c.speed, c.stages[StatSpeed]) }

// AttackForCrit ignores attack drops but keeps attack boosts.
func (c *Combatant) AttackForCrit() int {
	if c.stages[StatAttack] <= 0 {
		return c.attack
	}
	return c.Attack()
}

// DefenseForCrit ignores defense boosts but keeps defense drops.
func (c *Combatant) DefenseForCrit() int {
	if c.stages[StatDefense] >= 0 {
		return c.defense
	}
	return c.Defense()
}

// Stage returns the current stage counter of s; StatNone is always 0.
func (c *Combatant) Stage(s Stat) int {
	if s <= StatNone || s > StatSpeed {
		return 0
	}
	return c.stages[s]
}

// ApplyStageChange adds delta to the stage of s, saturating at
// [MinStage, MaxStage].
func (c *Combatant) ApplyStageChange(s Stat, delta int) {
	if s <= StatNone || s > StatSpeed {
		return
	}
	c.stages[s] = clamp(c.stages[s]+delta, MinStage, MaxStage)
}

func (c *Combatant) ResetStages() {
	c.stages = [StatSpeed + 1]int{}
}

// Damage removes at least 1 HP, never going below 0.
func (c *Combatant) Damage(n int) {
	c.hp = clamp(c.hp-max(n, 1), 0, c.maxHP)
}

// Heal restores at least 1 HP, never going above MaxHP.
func (c *Combatant) Heal(n int) {
	c.hp = clamp(c.hp+max(n, 1), 0, c.maxHP)
}

// Rest restores full HP and clears all stages.
func (c *Combatant) Rest() {
	c.hp = c.maxHP
	c.ResetStages()
}
