package battle

import "math"

const (
	critMultiplier = 1.5
	stabMultiplier = 1.5
)

// Rand is the random source every roll is drawn from. *math/rand/v2.Rand
// satisfies it.
type Rand interface {
	IntN(n int) int
}

// Outcome records what a single move use did.
type Outcome struct {
	Hit           bool
	Crit          bool
	Damage        int
	EffectApplied bool
	EffectTarget  Target
	Healed        int
}

// Any reports whether the move changed anything.
func (o Outcome) Any() bool {
	return o.Damage > 0 || o.EffectApplied || o.Healed > 0
}

// percentRoll draws uniformly from [1,100].
func percentRoll(r Rand) int {
	return r.IntN(100) + 1
}

// chance resolves a percentage check: 100 always passes, below 1 never.
func chance(r Rand, pct int) bool {
	switch {
	case pct >= 100:
		return true
	case pct < 1:
		return false
	default:
		return percentRoll(r) <= pct
	}
}

// Apply resolves move m used by user against opponent, mutating both.
func Apply(r Rand, m *Move, user, opponent *Combatant) Outcome {
	var out Outcome
	hit := m.accuracy >= 100 || percentRoll(r) <= m.accuracy

	if m.Damaging() {
		if !hit {
			return out
		}
		out.Hit = true
		out.Crit = chance(r, m.critChance)
		out.Damage = computeDamage(m, user, opponent, out.Crit)
		opponent.Damage(out.Damage)

		if m.hasEffect() {
			if m.targetsSelf() {
				user.ApplyStageChange(m.effectStat, m.effectStages)
				out.EffectApplied, out.EffectTarget = true, TargetSelf
			} else if chance(r, m.effectChance) {
				opponent.ApplyStageChange(m.effectStat, m.effectStages)
				out.EffectApplied, out.EffectTarget = true, TargetOpponent
			}
		}
		out.Healed = selfHeal(m, user)
		return out
	}

	if m.targetsSelf() {
		out.Hit = true
		if m.hasEffect() {
			user.ApplyStageChange(m.effectStat, m.effectStages)
			out.EffectApplied, out.EffectTarget = true, TargetSelf
		}
		out.Healed = selfHeal(m, user)
		return out
	}

	if !hit {
		return out
	}
	out.Hit = true
	if m.hasEffect() {
		opponent.ApplyStageChange(m.effectStat, m.effectStages)
		out.EffectApplied, out.EffectTarget = true, TargetOpponent
	}
	out.Healed = selfHeal(m, user)
	return out
}

func selfHeal(m *Move, user *Combatant) int {
	if m.healFraction <= 0 {
		return 0
	}
	before := user.HP()
	user.Heal(m.healAmount(user))
	return user.HP() - before
}

// computeDamage implements the classic formula: an integer base of
// ((2L/5+2)*P*A/D)/50+2 scaled by crit, STAB and type multipliers, floor 1.
func computeDamage(m *Move, user, opponent *Combatant, crit bool) int {
	atk, def := user.Attack(), opponent.Defense()
	if crit {
		atk, def = user.AttackForCrit(), opponent.DefenseForCrit()
	}
	return DamageFor(user.Level(), m.power, atk, def, crit, user.Type == m.typ, Effectiveness(m.typ, opponent.Type))
}

// DamageFor evaluates the damage formula for explicit inputs.
func DamageFor(level, power, atk, def int, crit, stab bool, typeMul float64) int {
	def = max(def, 1)
	base := (2*level/5+2)*power*atk/def/50 + 2

	d := float64(base)
	if crit {
		d *= critMultiplier
	}
	if stab {
		d *= stabMultiplier
	}
	d *= typeMul
	return max(1, int(math.Floor(d)))
}
