// Package dex holds the immutable species and move tables combatants are
// built from. Tables are authored in YAML and validated on load.
package dex

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"arena/internal/battle"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed dex.yaml
var defaultDex []byte

// Species is a registry entry: one type, fixed base stats and a move set.
type Species struct {
	Name  string
	Type  battle.Type
	Base  battle.BaseStats
	Moves []*battle.Move
}

// Registry is read-only after construction and safe to share.
type Registry struct {
	moves   map[string]*battle.Move
	species map[string]Species
	keys    []string
}

type document struct {
	Moves   map[string]moveRecord    `yaml:"moves"`
	Species map[string]speciesRecord `yaml:"species"`
}

type moveRecord struct {
	Name     string        `yaml:"name"`
	Type     string        `yaml:"type"`
	Power    int           `yaml:"power"`
	Accuracy *int          `yaml:"accuracy"`
	Crit     *int          `yaml:"crit"`
	Effect   *effectRecord `yaml:"effect"`
	Heal     float64       `yaml:"heal"`
}

type effectRecord struct {
	Stat   string `yaml:"stat"`   // "attack" | "defense" | "speed"
	Stages int    `yaml:"stages"` // -6..6
	Target string `yaml:"target"` // "self" | "opponent"
	Chance *int   `yaml:"chance"` // percent, defaults to 100
}

type speciesRecord struct {
	Name  string           `yaml:"name"`
	Type  string           `yaml:"type"`
	Base  battle.BaseStats `yaml:"base"`
	Moves []string         `yaml:"moves"`
}

// Key normalises a species or move name for lookup. Casers are stateful,
// so each call gets its own.
func Key(name string) string {
	return cases.Fold().String(strings.Join(strings.Fields(name), " "))
}

func displayName(explicit, key string) string {
	if s := strings.TrimSpace(explicit); s != "" {
		return s
	}
	return cases.Title(language.English).String(key)
}

// Default returns the registry bundled with the binary.
func Default() (*Registry, error) {
	r, err := Parse(defaultDex)
	if err != nil {
		return nil, fmt.Errorf("bundled dex: %w", err)
	}
	return r, nil
}

// LoadFile reads a registry from a YAML file.
func LoadFile(path string) (*Registry, error) {
	b, err := os.ReadFile(filepath.Clean(path)) //nolint:gosec // operator-supplied data file
	if err != nil {
		return nil, err
	}
	r, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("dex file %s: %w", path, err)
	}
	return r, nil
}

// Parse builds a registry from YAML bytes.
func Parse(b []byte) (*Registry, error) {
	var doc document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	if len(doc.Species) == 0 {
		return nil, fmt.Errorf("no species defined")
	}

	r := &Registry{
		moves:   make(map[string]*battle.Move, len(doc.Moves)),
		species: make(map[string]Species, len(doc.Species)),
	}
	for name, rec := range doc.Moves {
		key := Key(name)
		if key == "" {
			return nil, fmt.Errorf("move with empty name")
		}
		if _, dup := r.moves[key]; dup {
			return nil, fmt.Errorf("duplicate move %q", name)
		}
		m, err := buildMove(displayName(rec.Name, key), rec)
		if err != nil {
			return nil, fmt.Errorf("move %q: %w", name, err)
		}
		r.moves[key] = m
	}
	for name, rec := range doc.Species {
		key := Key(name)
		if key == "" {
			return nil, fmt.Errorf("species with empty name")
		}
		if _, dup := r.species[key]; dup {
			return nil, fmt.Errorf("duplicate species %q", name)
		}
		sp, err := r.buildSpecies(displayName(rec.Name, key), rec)
		if err != nil {
			return nil, fmt.Errorf("species %q: %w", name, err)
		}
		r.species[key] = sp
		r.keys = append(r.keys, key)
	}
	sort.Strings(r.keys)
	return r, nil
}

func buildMove(name string, rec moveRecord) (*battle.Move, error) {
	typ, err := battle.ParseType(rec.Type)
	if err != nil {
		return nil, err
	}
	if rec.Power < 0 {
		return nil, fmt.Errorf("negative power %d", rec.Power)
	}
	b := battle.NewMove(name, typ).Power(rec.Power)
	if rec.Accuracy != nil {
		b.Accuracy(*rec.Accuracy)
	}
	if rec.Crit != nil {
		b.CritChance(*rec.Crit)
	}
	if rec.Effect != nil {
		stat, err := parseStat(rec.Effect.Stat)
		if err != nil {
			return nil, err
		}
		target, err := parseTarget(rec.Effect.Target)
		if err != nil {
			return nil, err
		}
		chance := 100
		if rec.Effect.Chance != nil {
			chance = *rec.Effect.Chance
		}
		b.Effect(stat, rec.Effect.Stages, target, chance)
	}
	if rec.Heal > 0 {
		b.Heal(rec.Heal)
	}
	return b.Build(), nil
}

func (r *Registry) buildSpecies(name string, rec speciesRecord) (Species, error) {
	typ, err := battle.ParseType(rec.Type)
	if err != nil {
		return Species{}, err
	}
	b := rec.Base
	if b.HP <= 0 || b.Attack <= 0 || b.Defense <= 0 || b.Speed <= 0 {
		return Species{}, fmt.Errorf("base stats must be positive, got %+v", b)
	}
	if len(rec.Moves) == 0 || len(rec.Moves) > battle.MaxMoves {
		return Species{}, fmt.Errorf("needs 1 to %d moves, got %d", battle.MaxMoves, len(rec.Moves))
	}
	moves := make([]*battle.Move, 0, len(rec.Moves))
	for _, mn := range rec.Moves {
		m, ok := r.moves[Key(mn)]
		if !ok {
			return Species{}, fmt.Errorf("unknown move %q", mn)
		}
		moves = append(moves, m)
	}
	return Species{Name: name, Type: typ, Base: b, Moves: moves}, nil
}

func parseStat(s string) (battle.Stat, error) {
	switch Key(s) {
	case "attack", "atk":
		return battle.StatAttack, nil
	case "defense", "def":
		return battle.StatDefense, nil
	case "speed", "spe":
		return battle.StatSpeed, nil
	}
	return battle.StatNone, fmt.Errorf("unknown stat %q", s)
}

func parseTarget(s string) (battle.Target, error) {
	switch Key(s) {
	case "", "opponent", "foe":
		return battle.TargetOpponent, nil
	case "self", "user":
		return battle.TargetSelf, nil
	}
	return 0, fmt.Errorf("unknown effect target %q", s)
}

// Species looks a species up by name, ignoring case.
func (r *Registry) Species(name string) (Species, bool) {
	sp, ok := r.species[Key(name)]
	if ok {
		sp.Moves = append([]*battle.Move(nil), sp.Moves...)
	}
	return sp, ok
}

// Move looks a move up by name, ignoring case.
func (r *Registry) Move(name string) (*battle.Move, bool) {
	m, ok := r.moves[Key(name)]
	return m, ok
}

// SpeciesKeys lists every species key in sorted order.
func (r *Registry) SpeciesKeys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// NewCombatant builds a fresh combatant of the named species at level.
func (r *Registry) NewCombatant(name string, level int) (*battle.Combatant, error) {
	sp, ok := r.Species(name)
	if !ok {
		return nil, fmt.Errorf("unknown species %q", name)
	}
	return battle.NewCombatant(sp.Name, sp.Type, sp.Base, level, sp.Moves...), nil
}
