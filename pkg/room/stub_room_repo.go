package room

import (
	"context"
	"sync"
)

type StubRepository struct {
	mu    sync.Mutex
	Rooms []Room
}

func NewStubRepository() *StubRepository {
	return &StubRepository{}
}

func (s *StubRepository) Insert(ctx context.Context, room Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.Rooms {
		if existing.Number == room.Number {
			return nil
		}
	}
	s.Rooms = append(s.Rooms, room)
	return nil
}

func (s *StubRepository) Update(ctx context.Context, room Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.Rooms {
		if existing.ID == room.ID {
			s.Rooms[i] = room
			return nil
		}
	}
	return nil
}

func (s *StubRepository) FindByID(ctx context.Context, id string) (Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.Rooms {
		if existing.ID == id {
			return existing, nil
		}
	}
	return Room{}, ErrRoomNotFound
}

func (s *StubRepository) FindByNumber(ctx context.Context, number string) (Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.Rooms {
		if existing.Number == number {
			return existing, nil
		}
	}
	return Room{}, ErrRoomNotFound
}

func (s *StubRepository) FindAll(ctx context.Context) ([]Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rooms := make([]Room, len(s.Rooms))
	copy(rooms, s.Rooms)
	return rooms, nil
}
