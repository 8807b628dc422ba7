package event

import (
	"context"
	"sync"
)

// StubRepository is an in-memory event store used by service tests. It keeps
// insertion order and returns copies, so readers never observe a
// partially-applied write.
type StubRepository struct {
	mu     sync.Mutex
	Events []Event
}

func NewStubRepository() *StubRepository {
	return &StubRepository{}
}

func (s *StubRepository) Store(ctx context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Events = append(s.Events, event)
	return nil
}

func (s *StubRepository) Update(ctx context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.Events {
		if existing.ID == event.ID {
			s.Events[i] = event
			return nil
		}
	}
	return nil
}

func (s *StubRepository) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.Events {
		if existing.ID == id {
			s.Events = append(s.Events[:i], s.Events[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *StubRepository) FindByID(ctx context.Context, id string) (*Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.Events {
		if existing.ID == id {
			found := existing
			return &found, nil
		}
	}
	return nil, nil
}

func (s *StubRepository) FindAll(ctx context.Context) ([]Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := make([]Event, len(s.Events))
	copy(events, s.Events)
	return events, nil
}
