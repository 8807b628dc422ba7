package event

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/eventsync/eventsync/internal/event_bus"
	"github.com/eventsync/eventsync/internal/utils"
	"github.com/eventsync/eventsync/pkg/room"
	"github.com/eventsync/eventsync/pkg/user"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// ErrNotEventOwner is returned when a user without the edit-all capability
// touches an event created by someone else.
var ErrNotEventOwner = errors.New("only the creator may modify this event")

// ValidationError reports the submission fields that failed validation.
// Nothing is persisted when it is returned.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid event submission: " + strings.Join(e.Fields, ", ")
}

// SubmitResult is the outcome of a scheduling submission. Exactly one of the
// two shapes is populated: Event on commit, Conflicts when the submission is
// awaiting an explicit override confirmation (nothing persisted yet).
type SubmitResult struct {
	Event     *Event
	Conflicts []Event
}

// Committed reports whether the submission was stored.
func (r SubmitResult) Committed() bool {
	return r.Event != nil
}

type SchedulingService interface {
	Submit(ctx context.Context, draft Event) (SubmitResult, error)
	ForceSubmit(ctx context.Context, draft Event) (Event, error)
	Update(ctx context.Context, e Event) (SubmitResult, error)
	ForceUpdate(ctx context.Context, e Event) (Event, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*Event, error)
	ListAll(ctx context.Context) ([]Event, error)
	Filter(ctx context.Context, f Filter) ([]Event, error)
	CheckConflicts(ctx context.Context, candidate Event) ([]Event, error)
}

// Filter narrows event listings; zero values mean "no restriction". Status
// and Type, when both set, are ANDed with the other predicates.
type Filter struct {
	Status *Status
	Type   *Type
	Room   string
	Query  string
}

type SchedulingServiceImpl struct {
	repo  Repository
	rooms room.Directory
	bus   *event_bus.EventBus
	clock utils.Clock

	mu        sync.Mutex
	roomLocks map[string]*sync.Mutex
}

func NewSchedulingService(repo Repository, rooms room.Directory, bus *event_bus.EventBus) *SchedulingServiceImpl {
	return &SchedulingServiceImpl{
		repo:      repo,
		rooms:     rooms,
		bus:       bus,
		clock:     &utils.SystemClock{},
		roomLocks: make(map[string]*sync.Mutex),
	}
}

// lockRoom serializes check-then-act per room number, so two near-simultaneous
// submissions for the same room cannot both pass the conflict check.
func (s *SchedulingServiceImpl) lockRoom(number string) func() {
	s.mu.Lock()
	l, ok := s.roomLocks[number]
	if !ok {
		l = &sync.Mutex{}
		s.roomLocks[number] = l
	}
	s.mu.Unlock()
	l.Lock()
	return l.Unlock
}

// Submit validates the draft, checks it for room-time conflicts, and commits
// it when none are found. When conflicts exist the result carries them and
// nothing is persisted; the caller either discards the draft or confirms it
// through ForceSubmit.
func (s *SchedulingServiceImpl) Submit(ctx context.Context, draft Event) (SubmitResult, error) {
	if err := s.validate(ctx, draft); err != nil {
		return SubmitResult{}, err
	}

	unlock := s.lockRoom(draft.Room)
	defer unlock()

	conflicts, err := s.findConflicts(ctx, draft)
	if err != nil {
		return SubmitResult{}, err
	}
	if len(conflicts) > 0 {
		log.Debugf("submission for room %s has %d conflict(s), awaiting override confirmation", draft.Room, len(conflicts))
		return SubmitResult{Conflicts: conflicts}, nil
	}

	committed, err := s.commitNew(ctx, draft, false)
	if err != nil {
		return SubmitResult{}, err
	}
	return SubmitResult{Event: &committed}, nil
}

// ForceSubmit commits the draft regardless of conflicts. This is the explicit
// override confirmation; no permission gates it.
func (s *SchedulingServiceImpl) ForceSubmit(ctx context.Context, draft Event) (Event, error) {
	if err := s.validate(ctx, draft); err != nil {
		return Event{}, err
	}
	unlock := s.lockRoom(draft.Room)
	defer unlock()
	return s.commitNew(ctx, draft, true)
}

func (s *SchedulingServiceImpl) Update(ctx context.Context, e Event) (SubmitResult, error) {
	if err := s.validate(ctx, e); err != nil {
		return SubmitResult{}, err
	}
	stored, err := s.authorizeEdit(ctx, e.ID)
	if err != nil {
		return SubmitResult{}, err
	}

	unlock := s.lockRoom(e.Room)
	defer unlock()

	conflicts, err := s.findConflicts(ctx, e)
	if err != nil {
		return SubmitResult{}, err
	}
	if len(conflicts) > 0 {
		log.Debugf("update of event %s has %d conflict(s), awaiting override confirmation", e.ID, len(conflicts))
		return SubmitResult{Conflicts: conflicts}, nil
	}

	updated, err := s.commitUpdate(ctx, e, *stored, false)
	if err != nil {
		return SubmitResult{}, err
	}
	return SubmitResult{Event: &updated}, nil
}

func (s *SchedulingServiceImpl) ForceUpdate(ctx context.Context, e Event) (Event, error) {
	if err := s.validate(ctx, e); err != nil {
		return Event{}, err
	}
	stored, err := s.authorizeEdit(ctx, e.ID)
	if err != nil {
		return Event{}, err
	}
	unlock := s.lockRoom(e.Room)
	defer unlock()
	return s.commitUpdate(ctx, e, *stored, true)
}

// Delete removes the event. Deleting an unknown id is a no-op, matching the
// store contract.
func (s *SchedulingServiceImpl) Delete(ctx context.Context, id string) error {
	stored, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if stored == nil {
		log.Debugf("delete of unknown event %s ignored", id)
		return nil
	}
	if err := s.checkOwnership(ctx, *stored); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, event_bus.EventDeleted, *stored, false)
	return nil
}

func (s *SchedulingServiceImpl) Get(ctx context.Context, id string) (*Event, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *SchedulingServiceImpl) ListAll(ctx context.Context) ([]Event, error) {
	return s.repo.FindAll(ctx)
}

func (s *SchedulingServiceImpl) Filter(ctx context.Context, f Filter) ([]Event, error) {
	events, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]Event, 0, len(events))
	for _, e := range events {
		if matches(e, f) {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// CheckConflicts is the informational variant of the pre-commit gate: it
// reports what would conflict without committing anything.
func (s *SchedulingServiceImpl) CheckConflicts(ctx context.Context, candidate Event) ([]Event, error) {
	return s.findConflicts(ctx, candidate)
}

func (s *SchedulingServiceImpl) findConflicts(ctx context.Context, candidate Event) ([]Event, error) {
	existing, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return FindConflicts(candidate, existing), nil
}

func (s *SchedulingServiceImpl) validate(ctx context.Context, e Event) error {
	missing := make([]string, 0)
	if e.Time == "" {
		missing = append(missing, "time is required")
	}
	if e.Function == "" {
		missing = append(missing, "function is required")
	}
	if e.Room == "" {
		missing = append(missing, "room is required")
	} else {
		if _, err := s.rooms.GetByNumber(ctx, e.Room); err != nil {
			if errors.Is(err, room.ErrRoomNotFound) {
				missing = append(missing, fmt.Sprintf("room %q does not exist", e.Room))
			} else {
				return err
			}
		}
	}
	if e.Capacity < 0 {
		missing = append(missing, "capacity must be non-negative")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

func (s *SchedulingServiceImpl) commitNew(ctx context.Context, draft Event, forced bool) (Event, error) {
	// The id is assigned before the durable write, so a retry after a
	// backing store failure cannot commit twice.
	draft.ID = uuid.NewString()
	now := s.clock.Now()
	draft.CreatedAt = now
	draft.UpdatedAt = now
	if draft.Status == "" {
		draft.Status = StatusScheduled
	}
	if current, err := user.CurrentUser(ctx); err == nil {
		draft.CreatedBy = current.Email
	}

	if err := s.repo.Store(ctx, draft); err != nil {
		return Event{}, err
	}
	s.publish(ctx, event_bus.EventScheduled, draft, forced)
	return draft, nil
}

func (s *SchedulingServiceImpl) commitUpdate(ctx context.Context, e Event, stored Event, forced bool) (Event, error) {
	e.ID = stored.ID
	e.CreatedAt = stored.CreatedAt
	e.CreatedBy = stored.CreatedBy
	e.UpdatedAt = s.clock.Now()

	if err := s.repo.Update(ctx, e); err != nil {
		return Event{}, err
	}
	s.publish(ctx, event_bus.EventUpdated, e, forced)
	return e, nil
}

// authorizeEdit resolves the stored event and checks the caller may edit it.
func (s *SchedulingServiceImpl) authorizeEdit(ctx context.Context, id string) (*Event, error) {
	stored, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, ErrEventNotFound
	}
	if err := s.checkOwnership(ctx, *stored); err != nil {
		return nil, err
	}
	return stored, nil
}

func (s *SchedulingServiceImpl) checkOwnership(ctx context.Context, stored Event) error {
	current, err := user.CurrentUser(ctx)
	if err != nil {
		// No resolved user: only anonymously created events may be touched.
		if stored.CreatedBy != "" {
			return ErrNotEventOwner
		}
		return nil
	}
	if current.Permissions().CanEditAllEvents {
		return nil
	}
	if stored.CreatedBy != current.Email {
		return ErrNotEventOwner
	}
	return nil
}

func (s *SchedulingServiceImpl) publish(ctx context.Context, eventType event_bus.EventType, e Event, forced bool) {
	if s.bus == nil {
		return
	}
	err := s.bus.Publish(event_bus.NewEvent(ctx, eventType, event_bus.ScheduleChanged{
		EventID: e.ID,
		Room:    e.Room,
		Forced:  forced,
	}))
	if err != nil {
		log.Errorf("failed to publish %s notification: %v", eventType, err)
	}
}

func matches(e Event, f Filter) bool {
	if f.Status != nil && e.Status != *f.Status {
		return false
	}
	if f.Type != nil && e.Type != *f.Type {
		return false
	}
	if f.Room != "" && e.Room != f.Room {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(e.Function), q) && !strings.Contains(strings.ToLower(e.Notes), q) {
			return false
		}
	}
	return true
}
