package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxHP_FormulaAndMonotonic(t *testing.T) {
	for _, base := range []int{1, 45, 100, 255} {
		prev := 0
		for level := 1; level <= 100; level++ {
			got := MaxHP(base, level)
			assert.Equal(t, 2*base*level/100+level+10, got, "base=%d level=%d", base, level)
			assert.Greater(t, got, prev, "maxHP must increase with level (base=%d level=%d)", base, level)
			prev = got
		}
	}
}

func TestLevelBelowOneIsCoerced(t *testing.T) {
	assert.Equal(t, MaxHP(50, 1), MaxHP(50, 0))
	assert.Equal(t, RawStat(50, 1), RawStat(50, -7))

	c := newMon(Normal, even(50), -3)
	assert.Equal(t, 1, c.Level())
}

func TestNewCombatant_DerivesStats(t *testing.T) {
	c := newMon(Fire, BaseStats{HP: 78, Attack: 84, Defense: 78, Speed: 100}, 50)

	assert.Equal(t, 78+50+10, c.MaxHP())
	assert.Equal(t, c.MaxHP(), c.HP())
	assert.Equal(t, 84+5, c.RawAttack())
	assert.Equal(t, 78+5, c.RawDefense())
	assert.Equal(t, 100+5, c.RawSpeed())
	for _, s := range []Stat{StatAttack, StatDefense, StatSpeed} {
		assert.Zero(t, c.Stage(s))
	}
}

func TestNewCombatant_KeepsAtMostFourMoves(t *testing.T) {
	c := newMon(Normal, even(50), 5, tackle, nil, tackle, tackle, tackle, tackle)
	assert.Len(t, c.Moves(), MaxMoves)
}

func TestStageMultiplier(t *testing.T) {
	assert.Equal(t, 1.0, StageMultiplier(0))
	assert.Equal(t, 1.5, StageMultiplier(1))
	assert.Equal(t, 4.0, StageMultiplier(6))
	assert.InDelta(t, 2.0/3.0, StageMultiplier(-1), 1e-12)
	assert.Equal(t, 0.25, StageMultiplier(-6))

	for s := MinStage; s < MaxStage; s++ {
		assert.Less(t, StageMultiplier(s), StageMultiplier(s+1), "multiplier must be monotonic at stage %d", s)
	}
}

func TestApplyStageChange_Saturates(t *testing.T) {
	c := newMon(Normal, even(80), 20)

	c.ApplyStageChange(StatAttack, 4)
	c.ApplyStageChange(StatAttack, 4)
	assert.Equal(t, MaxStage, c.Stage(StatAttack))

	c.ApplyStageChange(StatDefense, -20)
	assert.Equal(t, MinStage, c.Stage(StatDefense))

	c.ApplyStageChange(StatSpeed, -1)
	assert.Equal(t, -1, c.Stage(StatSpeed))

	c.ApplyStageChange(StatNone, 3)
	assert.Zero(t, c.Stage(StatNone))

	c.ResetStages()
	for _, s := range []Stat{StatAttack, StatDefense, StatSpeed} {
		assert.Zero(t, c.Stage(s))
	}
}

func TestEffectiveStatsTruncate(t *testing.T) {
	c := newMon(Normal, even(100), 10) // raw stats 25
	require.Equal(t, 25, c.RawAttack())

	c.ApplyStageChange(StatAttack, 1)
	assert.Equal(t, 37, c.Attack()) // 37.5

	c.ApplyStageChange(StatDefense, -1)
	assert.Equal(t, 16, c.Defense()) // 16.66

	c.ApplyStageChange(StatSpeed, -6)
	assert.Equal(t, 6, c.Speed()) // 6.25
}

func TestCritStatVariants(t *testing.T) {
	c := newMon(Normal, even(100), 10)

	c.ApplyStageChange(StatAttack, -2)
	assert.Equal(t, c.RawAttack(), c.AttackForCrit(), "crits ignore attack drops")
	c.ResetStages()
	c.ApplyStageChange(StatAttack, 2)
	assert.Equal(t, c.Attack(), c.AttackForCrit(), "crits keep attack boosts")
	assert.Greater(t, c.AttackForCrit(), c.RawAttack())

	c.ResetStages()
	c.ApplyStageChange(StatDefense, 3)
	assert.Equal(t, c.RawDefense(), c.DefenseForCrit(), "crits ignore defense boosts")
	c.ResetStages()
	c.ApplyStageChange(StatDefense, -3)
	assert.Equal(t, c.Defense(), c.DefenseForCrit(), "crits keep defense drops")
	assert.Less(t, c.DefenseForCrit(), c.RawDefense())
}

func TestDamageAndHealClamp(t *testing.T) {
	c := newMon(Normal, even(100), 10)
	full := c.MaxHP()

	for _, n := range []int{0, -5} {
		c.Damage(n)
		assert.Equal(t, full-1, c.HP(), "damage(%d) acts as damage(1)", n)
		c.Heal(n)
		assert.Equal(t, full, c.HP(), "heal(%d) acts as heal(1)", n)
	}

	c.Heal(1000)
	assert.Equal(t, full, c.HP())

	c.Damage(full * 3)
	assert.Zero(t, c.HP())
	assert.True(t, c.Fainted())
}

func TestRest(t *testing.T) {
	c := newMon(Normal, even(100), 10)
	c.Damage(10)
	c.ApplyStageChange(StatSpeed, 2)

	c.Rest()
	assert.Equal(t, c.MaxHP(), c.HP())
	assert.Zero(t, c.Stage(StatSpeed))
}

func TestName_PrefersNickname(t *testing.T) {
	c := newMon(Normal, even(10), 1)
	assert.Equal(t, "Testmon", c.Name())
	c.Nickname = "Sparky"
	assert.Equal(t, "Sparky", c.Name())
}
