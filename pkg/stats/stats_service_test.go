package stats

import (
	"context"
	"testing"

	"github.com/eventsync/eventsync/internal/event_bus"
	"github.com/eventsync/eventsync/pkg/event"
	"github.com/eventsync/eventsync/pkg/room"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEventsProvider struct {
	events []event.Event
	calls  int
}

func (s *stubEventsProvider) ListAll(ctx context.Context) ([]event.Event, error) {
	s.calls++
	return s.events, nil
}

type stubRoomDirectory struct {
	rooms []room.Room
}

func (s *stubRoomDirectory) GetByNumber(ctx context.Context, number string) (room.Room, error) {
	for _, r := range s.rooms {
		if r.Number == number {
			return r, nil
		}
	}
	return room.Room{}, room.ErrRoomNotFound
}

func (s *stubRoomDirectory) List(ctx context.Context) ([]room.Room, error) {
	return s.rooms, nil
}

func fixtureEvents() []event.Event {
	return []event.Event{
		{
			ID: "a", Room: "208", Status: event.StatusScheduled, Type: event.TypeLunchBuffet,
			AssignedStaff: []event.StaffMember{{Name: "Alice"}, {Name: "Bob"}},
		},
		{
			ID: "b", Room: "208", Status: event.StatusCompleted, Type: event.TypeMeeting,
			AssignedStaff: []event.StaffMember{{Name: "Bob"}},
		},
		{ID: "c", Room: "216", Status: event.StatusScheduled, Type: event.TypeMeeting},
	}
}

func fixtureRooms() []room.Room {
	return []room.Room{
		{Number: "208", Status: room.StatusOccupied},
		{Number: "216", Status: room.StatusAvailable},
		{Number: "222", Status: room.StatusMaintenance},
	}
}

func TestGetSummary(t *testing.T) {
	events := &stubEventsProvider{events: fixtureEvents()}
	service := NewService(events, &stubRoomDirectory{rooms: fixtureRooms()}, nil)

	summary, err := service.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalEvents)
	assert.Equal(t, 2, summary.EventsByStatus[event.StatusScheduled])
	assert.Equal(t, 1, summary.EventsByStatus[event.StatusCompleted])
	assert.Equal(t, 2, summary.EventsByType[event.TypeMeeting])
	assert.Equal(t, 2, summary.EventsByRoom["208"])
	assert.Equal(t, 1, summary.EventsByRoom["216"])
	assert.Equal(t, 1, summary.OccupiedRooms)
	// Bob is on two events but counts once
	assert.Equal(t, 2, summary.StaffOnDuty)
}

func TestGetSummaryCaching(t *testing.T) {
	t.Run("second read is served from cache", func(t *testing.T) {
		events := &stubEventsProvider{events: fixtureEvents()}
		service := NewService(events, &stubRoomDirectory{rooms: fixtureRooms()}, nil)

		_, err := service.GetSummary(context.Background())
		require.NoError(t, err)
		_, err = service.GetSummary(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 1, events.calls)
	})

	t.Run("schedule change notification invalidates the cache", func(t *testing.T) {
		bus := event_bus.NewEventBus()
		events := &stubEventsProvider{events: fixtureEvents()}
		service := NewService(events, &stubRoomDirectory{rooms: fixtureRooms()}, bus)

		first, err := service.GetSummary(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 3, first.TotalEvents)

		events.events = append(events.events, event.Event{ID: "d", Room: "222", Status: event.StatusScheduled})
		err = bus.Publish(event_bus.NewEvent(context.Background(), event_bus.EventScheduled, event_bus.ScheduleChanged{
			EventID: "d",
			Room:    "222",
		}))
		require.NoError(t, err)

		second, err := service.GetSummary(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 4, second.TotalEvents)
		assert.Equal(t, 2, events.calls)
	})
}
