package event_bus

const (
	EventScheduled EventType = "event.scheduled"
	EventUpdated   EventType = "event.updated"
	EventDeleted   EventType = "event.deleted"
)

// ScheduleChanged is the payload for all schedule mutation notifications.
type ScheduleChanged struct {
	EventID string
	Room    string
	// Forced reports whether the change was committed past detected conflicts.
	Forced bool
}
