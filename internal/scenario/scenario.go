// Package scenario loads trainer rosters and wild-encounter settings and
// turns them into battle values.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"arena/internal/battle"
	"arena/internal/dex"

	"gopkg.in/yaml.v3"
)

const DefaultWildLevel = 5

// Scenario is a parsed scenario file.
type Scenario struct {
	Title    string        `yaml:"title"`
	Trainers []TrainerSpec `yaml:"trainers"`
	Wild     WildSpec      `yaml:"wild"`
}

// TrainerSpec describes one trainer and their starting party.
type TrainerSpec struct {
	Name  string       `yaml:"name"`
	Money int          `yaml:"money"`
	Party []MemberSpec `yaml:"party"`
}

type MemberSpec struct {
	Species  string `yaml:"species"`
	Level    int    `yaml:"level"`
	Nickname string `yaml:"nickname"`
}

// WildSpec controls the day phase: every trainer meets Count wild
// combatants at Level, drawn from Species (the whole dex when empty).
type WildSpec struct {
	Level   int      `yaml:"level"`
	Count   int      `yaml:"count"`
	Species []string `yaml:"species"`
}

// Load reads a scenario from a YAML file.
func Load(path string) (*Scenario, error) {
	b, err := os.ReadFile(filepath.Clean(path)) //nolint:gosec // operator-supplied data file
	if err != nil {
		return nil, err
	}
	s, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("scenario file %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates scenario YAML.
func Parse(b []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	if s.Wild.Level < battle.MinLevel {
		s.Wild.Level = DefaultWildLevel
	}
	return &s, nil
}

func (s *Scenario) validate() error {
	if len(s.Trainers) == 0 {
		return errors.New("no trainers defined")
	}
	names := make(map[string]struct{}, len(s.Trainers))
	for i, t := range s.Trainers {
		name := strings.TrimSpace(t.Name)
		if name == "" {
			return fmt.Errorf("trainer %d: missing name", i)
		}
		key := strings.ToLower(name)
		if _, dup := names[key]; dup {
			return fmt.Errorf("duplicate trainer %q", name)
		}
		names[key] = struct{}{}
		if len(t.Party) > battle.MaxParty {
			return fmt.Errorf("trainer %q: party of %d exceeds %d", name, len(t.Party), battle.MaxParty)
		}
		for j, m := range t.Party {
			if strings.TrimSpace(m.Species) == "" {
				return fmt.Errorf("trainer %q: party member %d has no species", name, j)
			}
		}
	}
	if s.Wild.Count < 0 {
		return fmt.Errorf("wild count must not be negative, got %d", s.Wild.Count)
	}
	return nil
}

// Build creates fresh trainers for every TrainerSpec, resolving species in reg.
func (s *Scenario) Build(reg *dex.Registry) ([]*battle.Trainer, error) {
	out := make([]*battle.Trainer, 0, len(s.Trainers))
	for _, ts := range s.Trainers {
		t := battle.NewTrainer(strings.TrimSpace(ts.Name), ts.Money)
		for _, m := range ts.Party {
			c, err := reg.NewCombatant(m.Species, m.Level)
			if err != nil {
				return nil, fmt.Errorf("trainer %q: %w", t.Name, err)
			}
			c.Nickname = strings.TrimSpace(m.Nickname)
			t.Add(c)
		}
		out = append(out, t)
	}
	return out, nil
}

// WildPool resolves the wild species list, defaulting to every species.
func (s *Scenario) WildPool(reg *dex.Registry) ([]string, error) {
	if len(s.Wild.Species) == 0 {
		return reg.SpeciesKeys(), nil
	}
	pool := make([]string, 0, len(s.Wild.Species))
	for _, name := range s.Wild.Species {
		if _, ok := reg.Species(name); !ok {
			return nil, fmt.Errorf("wild pool: unknown species %q", name)
		}
		pool = append(pool, dex.Key(name))
	}
	return pool, nil
}
