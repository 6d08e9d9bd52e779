package state

// Observer is told about every transition after it has been applied.
type Observer func(prev, next State)

// Store owns the application state. It has a single writer and is not safe
// for concurrent use; the TUI event loop is its only caller.
type Store struct {
	state     State
	observers []Observer
}

// NewStore returns a store holding the initial state.
func NewStore() *Store {
	return &Store{state: Initial()}
}

// State returns the current snapshot.
func (s *Store) State() State {
	return s.state
}

// Dispatch applies cmd, notifies observers and returns the new state.
func (s *Store) Dispatch(cmd Command) State {
	prev := s.state
	s.state = Reduce(prev, cmd)
	for _, o := range s.observers {
		o(prev, s.state)
	}
	return s.state
}

// Subscribe registers o for all later transitions.
func (s *Store) Subscribe(o Observer) {
	s.observers = append(s.observers, o)
}
