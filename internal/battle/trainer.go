package battle

// MaxParty is the largest party a trainer may carry.
const MaxParty = 6

// Trainer owns an ordered party. Combatants are never removed; a fainted
// combatant simply stops being eligible to lead.
type Trainer struct {
	Name  string
	Money int

	party []*Combatant
}

func NewTrainer(name string, money int) *Trainer {
	return &Trainer{Name: name, Money: money}
}

// Add appends c to the party. It reports false and changes nothing when c
// is nil or the party is full.
func (t *Trainer) Add(c *Combatant) bool {
	if c == nil || len(t.party) >= MaxParty {
		return false
	}
	t.party = append(t.party, c)
	return true
}

// With is Add for construction chains; rejected combatants are dropped.
func (t *Trainer) With(cs ...*Combatant) *Trainer {
	for _, c := range cs {
		t.Add(c)
	}
	return t
}

// Party returns a copy of the party in order.
func (t *Trainer) Party() []*Combatant {
	out := make([]*Combatant, len(t.party))
	copy(out, t.party)
	return out
}

func (t *Trainer) PartySize() int  { return len(t.party) }
func (t *Trainer) PartyFull() bool { return len(t.party) >= MaxParty }

// Lead is the first non-fainted party member, or nil.
func (t *Trainer) Lead() *Combatant {
	for _, c := range t.party {
		if !c.Fainted() {
			return c
		}
	}
	return nil
}

// RemainingPartySize counts non-fainted party members.
func (t *Trainer) RemainingPartySize() int {
	n := 0
	for _, c := range t.party {
		if !c.Fainted() {
			n++
		}
	}
	return n
}

// Rest restores every party member.
func (t *Trainer) Rest() {
	for _, c := range t.party {
		c.Rest()
	}
}
