package battle

import (
	"fmt"
	"strings"
)

// Type is an elemental type. Each combatant and each move carries exactly one.
type Type int

const (
	Normal Type = iota
	Fire
	Water
	Electric
	Grass
	Ice
	Fighting
	Poison
	Ground
	Flying
	Psychic
	Bug
	Rock
	Ghost
	Dragon
	Dark
	Steel
	Fairy

	numTypes
)

var typeNames = [numTypes]string{
	"Normal", "Fire", "Water", "Electric", "Grass", "Ice",
	"Fighting", "Poison", "Ground", "Flying", "Psychic", "Bug",
	"Rock", "Ghost", "Dragon", "Dark", "Steel", "Fairy",
}

func (t Type) String() string {
	if t < 0 || t >= numTypes {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// Types returns every elemental type in table order.
func Types() []Type {
	out := make([]Type, numTypes)
	for i := range out {
		out[i] = Type(i)
	}
	return out
}

// ParseType resolves a type name case-insensitively.
func ParseType(s string) (Type, error) {
	s = strings.TrimSpace(s)
	for i, name := range typeNames {
		if strings.EqualFold(name, s) {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("unknown type: %q", s)
}

type typeSet uint32

func setOf(ts ...Type) typeSet {
	var s typeSet
	for _, t := range ts {
		s |= 1 << uint(t)
	}
	return s
}

func (s typeSet) has(t Type) bool { return s&(1<<uint(t)) != 0 }

// matchup holds the hand-authored chart row for one attacking type.
// Matchups that deal no damage in the reference game (Normal vs Ghost,
// Ground vs Flying, ...) live in weak and resolve to 0.5.
type matchup struct {
	super typeSet
	weak  typeSet
}

var chart = [numTypes]matchup{
	Normal:   {weak: setOf(Rock, Steel, Ghost)},
	Fire:     {super: setOf(Grass, Ice, Bug, Steel), weak: setOf(Fire, Water, Rock, Dragon)},
	Water:    {super: setOf(Fire, Ground, Rock), weak: setOf(Water, Grass, Dragon)},
	Electric: {super: setOf(Water, Flying), weak: setOf(Electric, Grass, Dragon, Ground)},
	Grass:    {super: setOf(Water, Ground, Rock), weak: setOf(Fire, Grass, Poison, Flying, Bug, Dragon, Steel)},
	Ice:      {super: setOf(Grass, Ground, Flying, Dragon), weak: setOf(Fire, Water, Ice, Steel)},
	Fighting: {super: setOf(Normal, Ice, Rock, Dark, Steel), weak: setOf(Poison, Flying, Psychic, Bug, Fairy, Ghost)},
	Poison:   {super: setOf(Grass, Fairy), weak: setOf(Poison, Ground, Rock, Ghost, Steel)},
	Ground:   {super: setOf(Fire, Electric, Poison, Rock, Steel), weak: setOf(Grass, Bug, Flying)},
	Flying:   {super: setOf(Grass, Fighting, Bug), weak: setOf(Electric, Rock, Steel)},
	Psychic:  {super: setOf(Fighting, Poison), weak: setOf(Psychic, Steel, Dark)},
	Bug:      {super: setOf(Grass, Psychic, Dark), weak: setOf(Fire, Fighting, Poison, Flying, Ghost, Steel, Fairy)},
	Rock:     {super: setOf(Fire, Ice, Flying, Bug), weak: setOf(Fighting, Ground, Steel)},
	Ghost:    {super: setOf(Psychic, Ghost), weak: setOf(Dark, Normal)},
	Dragon:   {super: setOf(Dragon), weak: setOf(Steel, Fairy)},
	Dark:     {super: setOf(Psychic, Ghost), weak: setOf(Fighting, Dark, Fairy)},
	Steel:    {super: setOf(Ice, Rock, Fairy), weak: setOf(Fire, Water, Electric, Steel)},
	Fairy:    {super: setOf(Fighting, Dragon, Dark), weak: setOf(Fire, Poison, Steel)},
}

// Effectiveness returns the damage multiplier of an attack of type atk
// against a defender of type def: 2.0, 1.0 or 0.5.
func Effectiveness(atk, def Type) float64 {
	if atk < 0 || atk >= numTypes {
		return 1.0
	}
	row := chart[atk]
	switch {
	case row.super.has(def):
		return 2.0
	case row.weak.has(def):
		return 0.5
	default:
		return 1.0
	}
}
