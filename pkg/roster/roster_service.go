package roster

import (
	"context"

	"github.com/eventsync/eventsync/pkg/event"
)

// EventsProvider is the read surface the roster projection needs.
type EventsProvider interface {
	ListAll(ctx context.Context) ([]event.Event, error)
}

// Filter narrows the roster; nil predicates mean "no restriction". When both
// are set they are ANDed.
type Filter struct {
	Shift *event.Shift
	Role  *event.StaffRole
}

type Service interface {
	AllStaff(ctx context.Context, filter Filter) ([]event.StaffMember, error)
}

// ServiceImpl is a pure projection over the event store: the roster is
// recomputed from the current assigned-staff lists on every call and owns no
// state of its own.
type ServiceImpl struct {
	events EventsProvider
}

func NewService(events EventsProvider) *ServiceImpl {
	return &ServiceImpl{events: events}
}

// AllStaff returns the staff assigned across all events, deduplicated by name.
// The first-encountered record wins for each name; copies of the same person
// on later events may carry different shift or role values and are dropped.
func (s *ServiceImpl) AllStaff(ctx context.Context, filter Filter) ([]event.StaffMember, error) {
	events, err := s.events.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	staff := make([]event.StaffMember, 0)
	for _, e := range events {
		for _, member := range e.AssignedStaff {
			if seen[member.Name] {
				continue
			}
			seen[member.Name] = true
			staff = append(staff, member)
		}
	}

	filtered := make([]event.StaffMember, 0, len(staff))
	for _, member := range staff {
		if filter.Shift != nil && member.Shift != *filter.Shift {
			continue
		}
		if filter.Role != nil && member.Role != *filter.Role {
			continue
		}
		filtered = append(filtered, member)
	}
	return filtered, nil
}
