// Package tournament schedules a single-elimination bracket among trainers.
package tournament

import (
	"errors"
	"fmt"
	"math/bits"

	"arena/internal/battle"
)

var (
	ErrEmptyBracket = errors.New("tournament: bracket needs at least one trainer")
	ErrConcluded    = errors.New("tournament: already concluded")
)

// Fighter decides a trainer-vs-trainer match. *battle.Engine implements it.
type Fighter interface {
	TrainerBattle(a, b *battle.Trainer) *battle.Trainer
}

// Match is one pairing of a round.
type Match struct {
	Home   *battle.Trainer
	Away   *battle.Trainer
	Winner *battle.Trainer
}

// Loser is whichever side of the match did not win.
func (m Match) Loser() *battle.Trainer {
	if m.Winner == m.Home {
		return m.Away
	}
	return m.Home
}

// Round records everything that happened in one executed round.
type Round struct {
	Number   int
	Matches  []Match
	Byes     []*battle.Trainer
	Advanced []*battle.Trainer
}

// Tournament is a single-elimination bracket. It is concluded once a single
// trainer remains.
type Tournament struct {
	fighter     Fighter
	bracket     []*battle.Trainer
	round       int
	totalRounds int
	history     []Round
}

// New seeds a bracket in the given order.
func New(trainers []*battle.Trainer, fighter Fighter) (*Tournament, error) {
	if len(trainers) == 0 {
		return nil, ErrEmptyBracket
	}
	if fighter == nil {
		return nil, errors.New("tournament: nil fighter")
	}
	for i, t := range trainers {
		if t == nil {
			return nil, fmt.Errorf("tournament: trainer %d is nil", i)
		}
	}
	bracket := make([]*battle.Trainer, len(trainers))
	copy(bracket, trainers)
	return &Tournament{
		fighter:     fighter,
		bracket:     bracket,
		totalRounds: TotalRounds(len(trainers)),
	}, nil
}

// TotalRounds is ceil(log2(n)); a lone participant needs none.
func TotalRounds(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// Byes is n - 2^rounds floored at zero.
func Byes(n, rounds int) int {
	return max(0, n-(1<<rounds))
}

func (t *Tournament) IsConcluded() bool { return len(t.bracket) == 1 }
func (t *Tournament) RoundNumber() int  { return t.round }
func (t *Tournament) TotalRounds() int  { return t.totalRounds }

// Winner is the champion, or nil while the tournament is still running.
func (t *Tournament) Winner() *battle.Trainer {
	if !t.IsConcluded() {
		return nil
	}
	return t.bracket[0]
}

// Bracket returns the current survivors in bracket order.
func (t *Tournament) Bracket() []*battle.Trainer {
	out := make([]*battle.Trainer, len(t.bracket))
	copy(out, t.bracket)
	return out
}

// Rounds returns the executed rounds, oldest first.
func (t *Tournament) Rounds() []Round {
	out := make([]Round, len(t.history))
	copy(out, t.history)
	return out
}

// ExecuteNextRound plays one round. Entry i faces entry size-1-byes-i;
// trailing bye entries and any unpaired middle entry advance without a
// match. Winners keep pairing order and are followed by the entries that
// advanced unopposed.
func (t *Tournament) ExecuteNextRound() (Round, error) {
	if t.IsConcluded() {
		return Round{}, ErrConcluded
	}

	size := len(t.bracket)
	byes := 0
	if t.round == 0 {
		byes = Byes(size, t.totalRounds)
	}
	if byes < 0 || byes >= size {
		return Round{}, fmt.Errorf("tournament: invalid bye count %d for %d entries", byes, size)
	}

	contenders := size - byes
	pairs := contenders / 2
	paired := make([]bool, size)
	r := Round{Number: t.round + 1}

	for i := 0; i < pairs; i++ {
		j := contenders - 1 - i
		home, away := t.bracket[i], t.bracket[j]
		paired[i], paired[j] = true, true
		winner := t.fighter.TrainerBattle(home, away)
		if winner != home && winner != away {
			return Round{}, fmt.Errorf("tournament: match %s vs %s returned a non-participant", home.Name, away.Name)
		}
		r.Matches = append(r.Matches, Match{Home: home, Away: away, Winner: winner})
		r.Advanced = append(r.Advanced, winner)
	}
	for i, tr := range t.bracket {
		if !paired[i] {
			r.Byes = append(r.Byes, tr)
			r.Advanced = append(r.Advanced, tr)
		}
	}

	t.bracket = append([]*battle.Trainer(nil), r.Advanced...)
	t.round++
	t.history = append(t.history, r)
	return r, nil
}

// Run executes rounds until the tournament is concluded and returns the
// champion.
func (t *Tournament) Run() (*battle.Trainer, error) {
	for !t.IsConcluded() {
		if _, err := t.ExecuteNextRound(); err != nil {
			return nil, err
		}
	}
	return t.Winner(), nil
}
