package pattern

import "sync"

// Store accumulates validated patterns for the next training call.
// Thread-safe for concurrent Add/Clear/Snapshot.
type Store struct {
	dim int

	mu       sync.RWMutex
	patterns []Pattern
}

// NewStore creates an empty store accepting patterns of length dim.
func NewStore(dim int) *Store {
	return &Store{dim: dim}
}

// Dim returns the pattern length accepted by this store.
func (s *Store) Dim() int { return s.dim }

// Add validates values and appends them to the stored set.
func (s *Store) Add(values []float64) error {
	p, err := New(values, s.dim)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.patterns = append(s.patterns, p)
	s.mu.Unlock()

	return nil
}

// Clear empties the stored set. Idempotent.
func (s *Store) Clear() {
	s.mu.Lock()
	s.patterns = nil
	s.mu.Unlock()
}

// Len returns the number of stored patterns.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.patterns)
}

// Snapshot returns a copy of the stored pattern set. The patterns
// themselves are immutable by convention, so only the slice is copied.
func (s *Store) Snapshot() []Pattern {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Pattern, len(s.patterns))
	copy(out, s.patterns)

	return out
}
