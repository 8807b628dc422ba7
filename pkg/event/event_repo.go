package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var ErrEventNotFound = errors.New("event not found")

// Repository is the event store. Store always succeeds; Update and Delete of
// an unknown id are silent no-ops, callers that need stricter behavior must
// pre-validate existence. FindAll preserves insertion order.
type Repository interface {
	Store(ctx context.Context, event Event) error
	Update(ctx context.Context, event Event) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Event, error)
	FindAll(ctx context.Context) ([]Event, error)
}

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

const eventColumns = `id, time_range, function, room_number, capacity, colleagues, event_type, status, notes,
				created_by, created_at, updated_at, assigned_staff, resources`

func (r *RepositoryImpl) Store(ctx context.Context, event Event) error {
	query := `INSERT INTO events (` + eventColumns + `)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	colleagues, staff, resources, err := encodeLists(event)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, query,
		event.ID,
		event.Time,
		event.Function,
		event.Room,
		event.Capacity,
		colleagues,
		string(event.Type),
		string(event.Status),
		event.Notes,
		event.CreatedBy,
		event.CreatedAt,
		event.UpdatedAt,
		staff,
		resources,
	)
	if err != nil {
		log.Errorf("failed to store event: %v", err)
		return fmt.Errorf("could not store event: %w", err)
	}
	return nil
}

func (r *RepositoryImpl) Update(ctx context.Context, event Event) error {
	query := `UPDATE events SET time_range = $1, function = $2, room_number = $3, capacity = $4, colleagues = $5,
				event_type = $6, status = $7, notes = $8, updated_at = $9, assigned_staff = $10, resources = $11
				WHERE id = $12`

	colleagues, staff, resources, err := encodeLists(event)
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, query,
		event.Time,
		event.Function,
		event.Room,
		event.Capacity,
		colleagues,
		string(event.Type),
		string(event.Status),
		event.Notes,
		event.UpdatedAt,
		staff,
		resources,
		event.ID,
	)
	if err != nil {
		log.Errorf("failed to update event %s: %v", event.ID, err)
		return fmt.Errorf("could not update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		log.Debugf("update of unknown event %s ignored", event.ID)
	}
	return nil
}

func (r *RepositoryImpl) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		log.Errorf("failed to delete event %s: %v", id, err)
		return fmt.Errorf("could not delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		log.Debugf("delete of unknown event %s ignored", id)
	}
	return nil
}

func (r *RepositoryImpl) FindByID(ctx context.Context, id string) (*Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	event, err := scanEvent(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return &event, nil
}

// FindAll returns all events in creation order, which the position column
// preserves across restarts.
func (r *RepositoryImpl) FindAll(ctx context.Context) ([]Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY position`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Errorf("failed to list events: %v", err)
		return nil, fmt.Errorf("could not list events: %w", err)
	}
	defer rows.Close()

	events := make([]Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func encodeLists(event Event) (colleagues, staff, resources []byte, err error) {
	if event.Colleagues == nil {
		event.Colleagues = []string{}
	}
	if event.AssignedStaff == nil {
		event.AssignedStaff = []StaffMember{}
	}
	if event.Resources == nil {
		event.Resources = []Resource{}
	}
	colleagues, err = json.Marshal(event.Colleagues)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not encode colleagues: %w", err)
	}
	staff, err = json.Marshal(event.AssignedStaff)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not encode assigned staff: %w", err)
	}
	resources, err = json.Marshal(event.Resources)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not encode resources: %w", err)
	}
	return colleagues, staff, resources, nil
}

func scanEvent(row pgx.Row) (Event, error) {
	var event Event
	var eventType, status string
	var colleagues, staff, resources []byte
	err := row.Scan(
		&event.ID,
		&event.Time,
		&event.Function,
		&event.Room,
		&event.Capacity,
		&colleagues,
		&eventType,
		&status,
		&event.Notes,
		&event.CreatedBy,
		&event.CreatedAt,
		&event.UpdatedAt,
		&staff,
		&resources,
	)
	if err != nil {
		return Event{}, err
	}
	event.Type = Type(eventType)
	event.Status = Status(status)
	if err := json.Unmarshal(colleagues, &event.Colleagues); err != nil {
		return Event{}, fmt.Errorf("could not decode colleagues: %w", err)
	}
	if err := json.Unmarshal(staff, &event.AssignedStaff); err != nil {
		return Event{}, fmt.Errorf("could not decode assigned staff: %w", err)
	}
	if err := json.Unmarshal(resources, &event.Resources); err != nil {
		return Event{}, fmt.Errorf("could not decode resources: %w", err)
	}
	return event, nil
}
