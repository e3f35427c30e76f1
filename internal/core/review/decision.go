package review

import "fmt"

// Decision is the reviewer's choice for one review unit.
type Decision int

const (
	DecisionPending  Decision = iota // not yet decided
	DecisionIncoming                 // take the proposed text
	DecisionCurrent                  // keep the original text
)

// String returns the configuration name of the decision.
func (d Decision) String() string {
	switch d {
	case DecisionPending:
		return "pending"
	case DecisionIncoming:
		return "incoming"
	case DecisionCurrent:
		return "current"
	default:
		return "unknown"
	}
}

// ParseDecision parses a decision name as used in configuration files.
func ParseDecision(s string) (Decision, error) {
	switch s {
	case "pending":
		return DecisionPending, nil
	case "incoming":
		return DecisionIncoming, nil
	case "current":
		return DecisionCurrent, nil
	default:
		return DecisionPending, fmt.Errorf("invalid decision %q", s)
	}
}

// Store tracks one decision per modified review unit for a single review
// session. The map is sparse: an absent entry means pending, and indices of
// unchanged units are never keyed. The store is created at session start and
// discarded with the session; decisions do not survive it.
type Store struct {
	decisions map[int]Decision
	modified  []int // indices of modified units, ascending
}

// NewStore creates a decision store for the given unit sequence.
func NewStore(units []Unit) *Store {
	s := &Store{decisions: make(map[int]Decision)}
	for i, u := range units {
		if u.Kind == BlockModified {
			s.modified = append(s.modified, i)
		}
	}
	return s
}

// Set records a decision for the unit at index, overwriting any previous one.
// Setting DecisionPending is equivalent to Clear. Indices that do not belong
// to a modified unit are ignored.
func (s *Store) Set(index int, d Decision) {
	if !s.isModified(index) {
		return
	}
	if d == DecisionPending {
		delete(s.decisions, index)
		return
	}
	s.decisions[index] = d
}

// Clear reverts the unit at index to pending.
func (s *Store) Clear(index int) {
	delete(s.decisions, index)
}

// Get returns the decision for the unit at index, DecisionPending if none.
func (s *Store) Get(index int) Decision {
	return s.decisions[index]
}

// AcceptAllIncoming decides every modified unit as incoming, discarding any
// prior state.
func (s *Store) AcceptAllIncoming() {
	s.setAll(DecisionIncoming)
}

// AcceptAllCurrent decides every modified unit as current, discarding any
// prior state.
func (s *Store) AcceptAllCurrent() {
	s.setAll(DecisionCurrent)
}

func (s *Store) setAll(d Decision) {
	s.decisions = make(map[int]Decision, len(s.modified))
	for _, i := range s.modified {
		s.decisions[i] = d
	}
}

// ResetAll reverts every unit to pending.
func (s *Store) ResetAll() {
	s.decisions = make(map[int]Decision)
}

// Progress returns how many modified units have been decided and how many
// exist in total. Unchanged units never count toward either number.
func (s *Store) Progress() (decided, total int) {
	// Pending entries are never stored, so every entry counts as decided.
	return len(s.decisions), len(s.modified)
}

// Decisions returns a copy of the decision map keyed by unit index.
func (s *Store) Decisions() map[int]Decision {
	out := make(map[int]Decision, len(s.decisions))
	for k, v := range s.decisions {
		out[k] = v
	}
	return out
}

func (s *Store) isModified(index int) bool {
	for _, i := range s.modified {
		if i == index {
			return true
		}
		if i > index {
			return false
		}
	}
	return false
}
