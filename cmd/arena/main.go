package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"sort"

	"arena/internal/archive"
	"arena/internal/battle"
	"arena/internal/config"
	"arena/internal/dex"
	"arena/internal/logging"
	"arena/internal/report"
	"arena/internal/scenario"
	"arena/internal/tournament"
)

func main() {
	cfg := config.FromEnv()
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed; run i uses seed+i")
	flag.StringVar(&cfg.DexPath, "dex", cfg.DexPath, "species and move YAML (default: built-in dex)")
	flag.StringVar(&cfg.ScenarioPath, "scenario", cfg.ScenarioPath, "scenario YAML")
	flag.StringVar(&cfg.ReportPath, "report", cfg.ReportPath, "write a PDF report of the last season to this path")
	flag.IntVar(&cfg.Runs, "runs", cfg.Runs, "number of seasons to play")
	flag.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "log every turn")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		logging.Fatal("arena failed", err, nil)
	}
}

func run(ctx context.Context, cfg config.Config, out io.Writer) error {
	logging.SetVerbose(cfg.Verbose)
	if cfg.Runs < 1 {
		return fmt.Errorf("runs must be at least 1, got %d", cfg.Runs)
	}

	reg, err := loadDex(cfg.DexPath)
	if err != nil {
		return err
	}
	sc, err := scenario.Load(cfg.ScenarioPath)
	if err != nil {
		return err
	}
	logging.Info("scenario loaded", logging.Fields{
		"title":    sc.Title,
		"trainers": len(sc.Trainers),
		"species":  len(reg.SpeciesKeys()),
	})

	store := archive.NewMemoryStore[*scenario.Result]()
	var last *scenario.Result
	for i := 0; i < cfg.Runs; i++ {
		seed := cfg.Seed + uint64(i)
		res, err := newSeason(reg, sc, seed).Run(ctx)
		if err != nil {
			return fmt.Errorf("season %d (seed %d): %w", i+1, seed, err)
		}
		id := store.NewID()
		if err := store.Put(ctx, id, res); err != nil {
			return err
		}
		logging.Info("season finished", logging.Fields{
			"id":       id,
			"seed":     seed,
			"champion": res.Champion.Name,
			"rounds":   len(res.Rounds),
		})
		last = res
	}

	if err := printStandings(ctx, store, out); err != nil {
		return err
	}
	if cfg.ReportPath != "" {
		b, err := report.Season(last)
		if err != nil {
			return err
		}
		if err := os.WriteFile(cfg.ReportPath, b, 0o600); err != nil {
			return err
		}
		logging.Info("report written", logging.Fields{"path": cfg.ReportPath})
	}
	return nil
}

func loadDex(path string) (*dex.Registry, error) {
	if path == "" {
		return dex.Default()
	}
	return dex.LoadFile(path)
}

func newSeason(reg *dex.Registry, sc *scenario.Scenario, seed uint64) *scenario.Season {
	engine := battle.NewEngine(rand.New(rand.NewPCG(seed, seed)))
	engine.Observe = func(t battle.Turn) {
		logging.Debug("turn", logging.Fields{
			"round":  t.Round,
			"actor":  t.Actor.Name(),
			"target": t.Target.Name(),
			"move":   t.Move.Name(),
			"hit":    t.Outcome.Hit,
			"crit":   t.Outcome.Crit,
			"damage": t.Outcome.Damage,
			"healed": t.Outcome.Healed,
		})
	}
	return &scenario.Season{
		Engine:   engine,
		Dex:      reg,
		Scenario: sc,
		OnEncounter: func(e scenario.Encounter) {
			logging.Debug("wild encounter", logging.Fields{
				"trainer":   e.Trainer,
				"wild":      e.Wild,
				"level":     e.Level,
				"won":       e.Won,
				"recruited": e.Recruited,
			})
		},
		OnRound: func(r tournament.Round) {
			for _, m := range r.Matches {
				logging.Debug("match", logging.Fields{
					"round":  r.Number,
					"home":   m.Home.Name,
					"away":   m.Away.Name,
					"winner": m.Winner.Name,
				})
			}
			logging.Info("round finished", logging.Fields{
				"round":    r.Number,
				"matches":  len(r.Matches),
				"byes":     len(r.Byes),
				"advanced": len(r.Advanced),
			})
		},
	}
}

type standing struct {
	name string
	wins int
}

func printStandings(ctx context.Context, store archive.Store[*scenario.Result], out io.Writer) error {
	entries, err := store.List(ctx)
	if err != nil {
		return err
	}
	wins := map[string]int{}
	for _, e := range entries {
		wins[e.Value.Champion.Name]++
	}
	table := make([]standing, 0, len(wins))
	for name, n := range wins {
		table = append(table, standing{name, n})
	}
	sort.Slice(table, func(i, j int) bool {
		if table[i].wins != table[j].wins {
			return table[i].wins > table[j].wins
		}
		return table[i].name < table[j].name
	})

	fmt.Fprintf(out, "%d season(s)\n", len(entries))
	for _, s := range table {
		fmt.Fprintf(out, "%-20s %d\n", s.name, s.wins)
	}
	return nil
}
