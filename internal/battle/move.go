package battle

const (
	DefaultAccuracy   = 100
	DefaultCritChance = 6
	minHealFraction   = 0.01
)

// Target says which side a move's stat-stage effect lands on.
type Target int

const (
	TargetOpponent Target = iota
	TargetSelf
)

func (t Target) String() string {
	if t == TargetSelf {
		return "self"
	}
	return "opponent"
}

// Move is an immutable move description shared across battles. Damaging,
// status, heal and hybrid moves differ only in which fields are set.
type Move struct {
	name         string
	typ          Type
	power        int
	accuracy     int
	critChance   int
	effectChance int
	effectStat   Stat
	effectStages int
	effectTarget Target
	healFraction float64
}

func (m *Move) Name() string          { return m.name }
func (m *Move) Type() Type            { return m.typ }
func (m *Move) Power() int            { return m.power }
func (m *Move) Accuracy() int         { return m.accuracy }
func (m *Move) CritChance() int       { return m.critChance }
func (m *Move) EffectChance() int     { return m.effectChance }
func (m *Move) EffectStat() Stat      { return m.effectStat }
func (m *Move) EffectStages() int     { return m.effectStages }
func (m *Move) EffectTarget() Target  { return m.effectTarget }
func (m *Move) HealFraction() float64 { return m.healFraction }
func (m *Move) Damaging() bool        { return m.power > 0 }
func (m *Move) hasEffect() bool       { return m.effectStat != StatNone && m.effectStages != 0 }
func (m *Move) targetsSelf() bool     { return m.effectTarget == TargetSelf }
func (m *Move) healAmount(c *Combatant) int {
	return int(m.healFraction * float64(c.MaxHP()))
}

// MoveBuilder configures a Move. Out-of-range inputs are clamped, never
// rejected.
type MoveBuilder struct {
	m Move
}

// NewMove starts a move with full accuracy, the default crit chance and no
// effect or heal.
func NewMove(name string, typ Type) *MoveBuilder {
	return &MoveBuilder{m: Move{
		name:       name,
		typ:        typ,
		accuracy:   DefaultAccuracy,
		critChance: DefaultCritChance,
	}}
}

func (b *MoveBuilder) Power(p int) *MoveBuilder {
	b.m.power = max(p, 0)
	return b
}

func (b *MoveBuilder) Accuracy(a int) *MoveBuilder {
	b.m.accuracy = clamp(a, 1, 100)
	return b
}

func (b *MoveBuilder) CritChance(c int) *MoveBuilder {
	b.m.critChance = clamp(c, 0, 100)
	return b
}

// Effect sets a stat-stage change of stages (clamped to ±6) applied to
// target. chance below 1 becomes 1.
func (b *MoveBuilder) Effect(stat Stat, stages int, target Target, chance int) *MoveBuilder {
	b.m.effectStat = stat
	b.m.effectStages = clamp(stages, MinStage, MaxStage)
	b.m.effectTarget = target
	b.m.effectChance = clamp(chance, 1, 100)
	return b
}

// Heal sets the fraction of the user's max HP restored on use; fractions
// below 0.01 become 0.01.
func (b *MoveBuilder) Heal(fraction float64) *MoveBuilder {
	if fraction < minHealFraction {
		fraction = minHealFraction
	}
	if fraction > 1 {
		fraction = 1
	}
	b.m.healFraction = fraction
	return b
}

// Build returns the configured move. The builder may be reused; later
// changes do not affect moves already built.
func (b *MoveBuilder) Build() *Move {
	m := b.m
	return &m
}
