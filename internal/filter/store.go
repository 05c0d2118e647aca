package filter

import (
	"github.com/alexisbeaulieu97/gradients/internal/logger"
)

// Observer is notified with the new filter after every SetFilter.
type Observer func(Filter)

type subscription struct {
	id int
	fn Observer
}

// Store owns the active filter. It has one writer (the tag selector) and is
// only touched from the UI loop, so it carries no lock.
type Store struct {
	active    Filter
	observers []subscription
	nextID    int
	log       *logger.Logger
	changes   int
}

// NewStore returns a store whose active filter is All.
func NewStore(log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{active: All, log: log.With("component", "filter_store")}
}

// Active returns the current filter.
func (s *Store) Active() Filter {
	return s.active
}

// SetFilter replaces the active filter and then calls every observer, in
// subscription order, with the new value. Observers all see the same value
// before SetFilter returns.
func (s *Store) SetFilter(f Filter) {
	previous := s.active
	s.active = f
	s.changes++

	s.log.WithFields(map[string]any{
		"from":      previous.String(),
		"to":        f.String(),
		"observers": len(s.observers),
	}).Debug("filter updated")

	snapshot := make([]subscription, len(s.observers))
	copy(snapshot, s.observers)
	for _, sub := range snapshot {
		sub.fn(f)
	}
}

// Subscribe registers fn and returns a func that removes it. The returned
// func is safe to call more than once.
func (s *Store) Subscribe(fn Observer) (unsubscribe func()) {
	s.nextID++
	id := s.nextID
	s.observers = append(s.observers, subscription{id: id, fn: fn})

	return func() {
		for i, sub := range s.observers {
			if sub.id == id {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// Observers returns the number of live subscriptions.
func (s *Store) Observers() int {
	return len(s.observers)
}

// Changes returns how many times SetFilter has been called.
func (s *Store) Changes() int {
	return s.changes
}
