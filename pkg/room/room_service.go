package room

import (
	"context"
	"errors"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	GetByID(ctx context.Context, id string) (Room, error)
	GetByNumber(ctx context.Context, number string) (Room, error)
	List(ctx context.Context) ([]Room, error)
	Add(ctx context.Context, room Room) (Room, error)
	Update(ctx context.Context, room Room) (Room, error)
	Seed(ctx context.Context, catalog []Room) error
}

// Directory is the narrow lookup interface other packages depend on.
type Directory interface {
	GetByNumber(ctx context.Context, number string) (Room, error)
	List(ctx context.Context) ([]Room, error)
}

type ServiceImpl struct {
	repo Repository
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) GetByID(ctx context.Context, id string) (Room, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ServiceImpl) GetByNumber(ctx context.Context, number string) (Room, error) {
	return s.repo.FindByNumber(ctx, number)
}

func (s *ServiceImpl) List(ctx context.Context) ([]Room, error) {
	return s.repo.FindAll(ctx)
}

// Add registers a room. Adding a room whose number already exists is a no-op
// and returns the existing room, so a fixed catalog can be re-applied safely.
func (s *ServiceImpl) Add(ctx context.Context, room Room) (Room, error) {
	existing, err := s.repo.FindByNumber(ctx, room.Number)
	if err == nil {
		log.Debugf("room %s already exists, skipping add", room.Number)
		return existing, nil
	}
	if !errors.Is(err, ErrRoomNotFound) {
		return Room{}, err
	}

	if room.ID == "" {
		room.ID = uuid.NewString()
	}
	if room.Status == "" {
		room.Status = StatusAvailable
	}
	if err := s.repo.Insert(ctx, room); err != nil {
		return Room{}, err
	}
	// The insert is idempotent on number, re-read to cover a concurrent add.
	return s.repo.FindByNumber(ctx, room.Number)
}

func (s *ServiceImpl) Update(ctx context.Context, room Room) (Room, error) {
	if _, err := s.repo.FindByID(ctx, room.ID); err != nil {
		return Room{}, err
	}
	if room.CurrentOccupancy > room.Capacity {
		// Not enforced, occupancy beyond capacity is allowed by the facility
		// rules. Logged so operators can see it.
		log.Warnf("room %s occupancy %d exceeds capacity %d", room.Number, room.CurrentOccupancy, room.Capacity)
	}
	if err := s.repo.Update(ctx, room); err != nil {
		return Room{}, err
	}
	return room, nil
}

// Seed applies the given catalog, skipping rooms whose number already exists.
func (s *ServiceImpl) Seed(ctx context.Context, catalog []Room) error {
	for _, room := range catalog {
		if _, err := s.Add(ctx, room); err != nil {
			return err
		}
	}
	log.Infof("room catalog applied: %d rooms", len(catalog))
	return nil
}
