// Package conversation keeps the in-memory transcript for the current
// session. The log is append-only and lives only as long as the process.
package conversation

import "sync"

// Roles a turn may carry.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one (role, text) entry in the transcript.
type Turn struct {
	Role     string `json:"role"`
	Text     string `json:"text"`
	Degraded bool   `json:"degraded,omitempty"` // true for fallback replies
}

// Store is an ordered, append-only turn log. Turn processing is
// synchronous, but HTTP and websocket handlers may read concurrently, so
// access is mutex-guarded.
type Store struct {
	mu    sync.RWMutex
	turns []Turn
}

func NewStore() *Store {
	return &Store{}
}

// Append adds a turn at the end of the transcript. Role alternation is not
// enforced; the composer tolerates arbitrary sequences.
func (s *Store) Append(turn Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = append(s.turns, turn)
}

// Turns returns a copy of the full transcript in order.
func (s *Store) Turns() []Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Window returns a copy of the most recent n turns, or everything when the
// transcript is shorter.
func (s *Store) Window(n int) []Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if n <= 0 {
		return nil
	}
	start := len(s.turns) - n
	if start < 0 {
		start = 0
	}
	out := make([]Turn, len(s.turns)-start)
	copy(out, s.turns[start:])
	return out
}

// Len returns the number of turns recorded so far.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.turns)
}

// Reset clears the transcript. The personality in use is unaffected.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = nil
}
