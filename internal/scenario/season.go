package scenario

import (
	"context"
	"fmt"

	"arena/internal/battle"
	"arena/internal/dex"
	"arena/internal/tournament"
)

// Encounter is the outcome of one day-phase wild battle.
type Encounter struct {
	Trainer   string
	Wild      string
	Level     int
	Won       bool
	Recruited bool
}

// Result is everything a season produced.
type Result struct {
	Title    string
	Trainers []*battle.Trainer
	Day      []Encounter
	Rounds   []tournament.Round
	Champion *battle.Trainer
}

// Season runs one day phase of wild encounters followed by one night
// phase tournament over the scenario's trainers.
type Season struct {
	Engine   *battle.Engine
	Dex      *dex.Registry
	Scenario *Scenario

	OnEncounter func(Encounter)
	OnRound     func(tournament.Round)
}

// Run builds fresh trainers and plays the season. ctx is checked between
// battles and between rounds.
func (s *Season) Run(ctx context.Context) (*Result, error) {
	trainers, err := s.Scenario.Build(s.Dex)
	if err != nil {
		return nil, err
	}
	res := &Result{Title: s.Scenario.Title, Trainers: trainers}

	if err := s.day(ctx, res); err != nil {
		return nil, err
	}
	if err := s.night(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *Season) day(ctx context.Context, res *Result) error {
	if s.Scenario.Wild.Count == 0 {
		return nil
	}
	pool, err := s.Scenario.WildPool(s.Dex)
	if err != nil {
		return err
	}
	level := s.Scenario.Wild.Level
	for _, t := range res.Trainers {
		if t.PartySize() == 0 {
			continue
		}
		for i := 0; i < s.Scenario.Wild.Count; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			species := pool[s.Engine.Rand.IntN(len(pool))]
			wild, err := s.Dex.NewCombatant(species, level)
			if err != nil {
				return err
			}
			before := t.PartySize()
			enc := Encounter{
				Trainer: t.Name,
				Wild:    wild.Name(),
				Level:   level,
				Won:     s.Engine.WildBattle(t, wild),
			}
			enc.Recruited = t.PartySize() > before
			res.Day = append(res.Day, enc)
			if s.OnEncounter != nil {
				s.OnEncounter(enc)
			}
		}
	}
	return nil
}

func (s *Season) night(ctx context.Context, res *Result) error {
	tour, err := tournament.New(res.Trainers, s.Engine)
	if err != nil {
		return err
	}
	for !tour.IsConcluded() {
		if err := ctx.Err(); err != nil {
			return err
		}
		r, err := tour.ExecuteNextRound()
		if err != nil {
			return fmt.Errorf("round %d: %w", tour.RoundNumber()+1, err)
		}
		if s.OnRound != nil {
			s.OnRound(r)
		}
	}
	res.Rounds = tour.Rounds()
	res.Champion = tour.Winner()
	return nil
}
