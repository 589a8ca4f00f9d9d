package battle

const (
	MinStage = -6
	MaxStage = 6
	MinLevel = 1
)

// Stat names a stage-modifiable stat. StatNone marks a move without a
// stat-stage effect.
type Stat int

const (
	StatNone Stat = iota
	StatAttack
	StatDefense
	StatSpeed
)

func (s Stat) String() string {
	switch s {
	case StatAttack:
		return "attack"
	case StatDefense:
		return "defense"
	case StatSpeed:
		return "speed"
	default:
		return "none"
	}
}

// BaseStats are the fixed per-species values every combatant of that
// species is derived from.
type BaseStats struct {
	HP      int `yaml:"hp"`
	Attack  int `yaml:"attack"`
	Defense int `yaml:"defense"`
	Speed   int `yaml:"speed"`
}

// MaxHP computes floor(2*base*level/100) + level + 10.
func MaxHP(base, level int) int {
	level = normalizeLevel(level)
	return 2*base*level/100 + level + 10
}

// RawStat computes floor(2*base*level/100) + 5 for Attack, Defense and Speed.
func RawStat(base, level int) int {
	level = normalizeLevel(level)
	return 2*base*level/100 + 5
}

// StageMultiplier maps a stage counter to its stat multiplier.
func StageMultiplier(stage int) float64 {
	stage = clamp(stage, MinStage, MaxStage)
	switch {
	case stage > 0:
		return float64(2+stage) / 2
	case stage < 0:
		return 2 / float64(2-stage)
	default:
		return 1.0
	}
}

func applyStage(raw, stage int) int {
	return int(float64(raw) * StageMultiplier(stage))
}

func normalizeLevel(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	return level
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
