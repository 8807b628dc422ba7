package stats

import (
	"context"
	"sync"

	"github.com/eventsync/eventsync/internal/event_bus"
	"github.com/eventsync/eventsync/pkg/event"
	"github.com/eventsync/eventsync/pkg/room"
	log "github.com/sirupsen/logrus"
)

// Summary is the dashboard view over the current schedule.
type Summary struct {
	TotalEvents    int
	EventsByStatus map[event.Status]int
	EventsByType   map[event.Type]int
	EventsByRoom   map[string]int
	OccupiedRooms  int
	StaffOnDuty    int
}

type Service interface {
	GetSummary(ctx context.Context) (Summary, error)
}

type EventsProvider interface {
	ListAll(ctx context.Context) ([]event.Event, error)
}

// ServiceImpl computes the summary from current event and room state. The
// result is cached until a schedule mutation is published on the bus; room
// admin changes are rare enough that occupied-room counts ride along with the
// same invalidation.
type ServiceImpl struct {
	events EventsProvider
	rooms  room.Directory

	mu     sync.Mutex
	cached *Summary
}

func NewService(events EventsProvider, rooms room.Directory, bus *event_bus.EventBus) *ServiceImpl {
	s := &ServiceImpl{events: events, rooms: rooms}
	if bus != nil {
		for _, t := range []event_bus.EventType{event_bus.EventScheduled, event_bus.EventUpdated, event_bus.EventDeleted} {
			event_bus.SubscribeTyped[event_bus.ScheduleChanged](bus, t, func(e event_bus.EventT[event_bus.ScheduleChanged]) error {
				log.Tracef("invalidating stats cache after %s for event %s", e.Type, e.Data.EventID)
				s.invalidate()
				return nil
			})
		}
	}
	return s
}

func (s *ServiceImpl) invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

func (s *ServiceImpl) GetSummary(ctx context.Context) (Summary, error) {
	s.mu.Lock()
	if s.cached != nil {
		summary := *s.cached
		s.mu.Unlock()
		return summary, nil
	}
	s.mu.Unlock()

	events, err := s.events.ListAll(ctx)
	if err != nil {
		return Summary{}, err
	}
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		TotalEvents:    len(events),
		EventsByStatus: make(map[event.Status]int),
		EventsByType:   make(map[event.Type]int),
		EventsByRoom:   make(map[string]int),
	}
	staffNames := make(map[string]bool)
	for _, e := range events {
		summary.EventsByStatus[e.Status]++
		summary.EventsByType[e.Type]++
		summary.EventsByRoom[e.Room]++
		for _, member := range e.AssignedStaff {
			staffNames[member.Name] = true
		}
	}
	summary.StaffOnDuty = len(staffNames)
	for _, r := range rooms {
		if r.Status == room.StatusOccupied {
			summary.OccupiedRooms++
		}
	}

	s.mu.Lock()
	s.cached = &summary
	s.mu.Unlock()
	return summary, nil
}
