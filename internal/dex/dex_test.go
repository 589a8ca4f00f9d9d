package dex

import (
	"os"
	"path/filepath"
	"testing"

	"arena/internal/battle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_CoversEveryType(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)

	seen := map[battle.Type]bool{}
	for _, key := range r.SpeciesKeys() {
		sp, ok := r.Species(key)
		require.True(t, ok, key)
		assert.NotEmpty(t, sp.Moves, key)
		assert.LessOrEqual(t, len(sp.Moves), battle.MaxMoves, key)
		seen[sp.Type] = true
	}
	for _, typ := range battle.Types() {
		assert.True(t, seen[typ], "no bundled species of type %s", typ)
	}
}

func TestDefault_MovesParsed(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)

	lash, ok := r.Move("Flame Lash")
	require.True(t, ok)
	assert.Equal(t, "Flame Lash", lash.Name())
	assert.Equal(t, battle.Fire, lash.Type())
	assert.Equal(t, 75, lash.Power())
	assert.Equal(t, 90, lash.Accuracy())
	assert.Equal(t, battle.StatDefense, lash.EffectStat())
	assert.Equal(t, -1, lash.EffectStages())
	assert.Equal(t, 20, lash.EffectChance())
	assert.Equal(t, battle.TargetOpponent, lash.EffectTarget())

	howl, ok := r.Move("howl")
	require.True(t, ok)
	assert.False(t, howl.Damaging())
	assert.Equal(t, battle.TargetSelf, howl.EffectTarget())
	assert.Equal(t, 100, howl.EffectChance())

	mend, ok := r.Move("MEND")
	require.True(t, ok)
	assert.Equal(t, 0.5, mend.HealFraction())
}

func TestNewCombatant(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)

	c, err := r.NewCombatant("  flamepup ", 12)
	require.NoError(t, err)
	assert.Equal(t, "Flamepup", c.Species)
	assert.Equal(t, battle.Fire, c.Type)
	assert.Equal(t, 12, c.Level())
	assert.Equal(t, battle.MaxHP(45, 12), c.MaxHP())
	assert.Len(t, c.Moves(), 4)

	other, err := r.NewCombatant("Flamepup", 12)
	require.NoError(t, err)
	assert.NotSame(t, c, other, "each call builds a fresh combatant")
	assert.Same(t, c.Moves()[0], other.Moves()[0], "moves are shared immutable values")

	_, err = r.NewCombatant("missingno", 5)
	assert.Error(t, err)
}

func TestSpecies_ReturnsCopyOfMoves(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)

	sp, _ := r.Species("budling")
	sp.Moves[0] = nil
	again, _ := r.Species("budling")
	assert.NotNil(t, again.Moves[0])
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no species", "moves:\n  tackle: {type: normal, power: 40}\n"},
		{"bad yaml", "species: [\n"},
		{"unknown move type", "moves:\n  zap: {type: plasma, power: 40}\nspecies:\n  a: {type: normal, base: {hp: 1, attack: 1, defense: 1, speed: 1}, moves: [zap]}\n"},
		{"unknown species type", "moves:\n  t: {type: normal, power: 40}\nspecies:\n  a: {type: cosmic, base: {hp: 1, attack: 1, defense: 1, speed: 1}, moves: [t]}\n"},
		{"unknown move ref", "moves:\n  t: {type: normal, power: 40}\nspecies:\n  a: {type: normal, base: {hp: 1, attack: 1, defense: 1, speed: 1}, moves: [nope]}\n"},
		{"too many moves", "moves:\n  t: {type: normal, power: 40}\nspecies:\n  a: {type: normal, base: {hp: 1, attack: 1, defense: 1, speed: 1}, moves: [t, t, t, t, t]}\n"},
		{"no moves", "species:\n  a: {type: normal, base: {hp: 1, attack: 1, defense: 1, speed: 1}, moves: []}\n"},
		{"zero base stat", "moves:\n  t: {type: normal, power: 40}\nspecies:\n  a: {type: normal, base: {hp: 0, attack: 1, defense: 1, speed: 1}, moves: [t]}\n"},
		{"case-folded duplicate", "moves:\n  t: {type: normal, power: 40}\nspecies:\n  Ace: {type: normal, base: {hp: 1, attack: 1, defense: 1, speed: 1}, moves: [t]}\n  ace: {type: normal, base: {hp: 1, attack: 1, defense: 1, speed: 1}, moves: [t]}\n"},
		{"bad stat", "moves:\n  t: {type: normal, effect: {stat: luck, stages: 1}}\nspecies:\n  a: {type: normal, base: {hp: 1, attack: 1, defense: 1, speed: 1}, moves: [t]}\n"},
		{"bad target", "moves:\n  t: {type: normal, effect: {stat: attack, stages: 1, target: everyone}}\nspecies:\n  a: {type: normal, base: {hp: 1, attack: 1, defense: 1, speed: 1}, moves: [t]}\n"},
		{"negative power", "moves:\n  t: {type: normal, power: -4}\nspecies:\n  a: {type: normal, base: {hp: 1, attack: 1, defense: 1, speed: 1}, moves: [t]}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestParse_ClampsLikeTheBuilder(t *testing.T) {
	doc := `moves:
  wild swing:
    type: normal
    power: 60
    accuracy: 400
    crit: -1
    effect: { stat: speed, stages: 9, target: self, chance: 0 }
    heal: 0.001
species:
  swinger:
    name: Swing King
    type: fighting
    base: { hp: 10, attack: 10, defense: 10, speed: 10 }
    moves: [Wild Swing]
`
	r, err := Parse([]byte(doc))
	require.NoError(t, err)

	m, ok := r.Move("wild swing")
	require.True(t, ok)
	assert.Equal(t, 100, m.Accuracy())
	assert.Zero(t, m.CritChance())
	assert.Equal(t, battle.MaxStage, m.EffectStages())
	assert.Equal(t, 1, m.EffectChance())
	assert.Equal(t, 0.01, m.HealFraction())

	sp, ok := r.Species("SWINGER")
	require.True(t, ok)
	assert.Equal(t, "Swing King", sp.Name)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dex.yaml")
	doc := "moves:\n  t: {type: water, power: 40}\nspecies:\n  drip: {type: water, base: {hp: 5, attack: 5, defense: 5, speed: 5}, moves: [t]}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	r, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"drip"}, r.SpeciesKeys())

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("species: {}\n"), 0o600))
	_, err = LoadFile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "flame lash", Key("  Flame   LASH "))
	assert.Equal(t, Key("Budling"), Key("BUDLING"))
}
