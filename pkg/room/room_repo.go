package room

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var ErrRoomNotFound = errors.New("room not found")

type Repository interface {
	Insert(ctx context.Context, room Room) error
	Update(ctx context.Context, room Room) error
	FindByID(ctx context.Context, id string) (Room, error)
	FindByNumber(ctx context.Context, number string) (Room, error)
	FindAll(ctx context.Context) ([]Room, error)
}

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

// Insert stores a room. A duplicate room number is a no-op, which makes
// catalog seeding safe to repeat.
func (r *RepositoryImpl) Insert(ctx context.Context, room Room) error {
	query := `INSERT INTO rooms (id, number, name, capacity, current_occupancy, status, equipment, location, is_available)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
				ON CONFLICT (number) DO NOTHING`
	equipment, err := json.Marshal(room.Equipment)
	if err != nil {
		return fmt.Errorf("could not encode equipment list: %w", err)
	}
	_, err = r.db.Exec(ctx, query,
		room.ID,
		room.Number,
		room.Name,
		room.Capacity,
		room.CurrentOccupancy,
		string(room.Status),
		equipment,
		room.Location,
		room.IsAvailable,
	)
	if err != nil {
		log.Errorf("failed to insert room %s: %v", room.Number, err)
		return fmt.Errorf("could not insert room: %w", err)
	}
	return nil
}

func (r *RepositoryImpl) Update(ctx context.Context, room Room) error {
	query := `UPDATE rooms SET name = $1, capacity = $2, current_occupancy = $3, status = $4, equipment = $5,
				location = $6, is_available = $7 WHERE id = $8`
	equipment, err := json.Marshal(room.Equipment)
	if err != nil {
		return fmt.Errorf("could not encode equipment list: %w", err)
	}
	_, err = r.db.Exec(ctx, query,
		room.Name,
		room.Capacity,
		room.CurrentOccupancy,
		string(room.Status),
		equipment,
		room.Location,
		room.IsAvailable,
		room.ID,
	)
	if err != nil {
		log.Errorf("failed to update room %s: %v", room.ID, err)
		return fmt.Errorf("could not update room: %w", err)
	}
	return nil
}

func (r *RepositoryImpl) FindByID(ctx context.Context, id string) (Room, error) {
	query := `SELECT id, number, name, capacity, current_occupancy, status, equipment, location, is_available
				FROM rooms WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *RepositoryImpl) FindByNumber(ctx context.Context, number string) (Room, error) {
	query := `SELECT id, number, name, capacity, current_occupancy, status, equipment, location, is_available
				FROM rooms WHERE number = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, number))
}

func (r *RepositoryImpl) FindAll(ctx context.Context) ([]Room, error) {
	query := `SELECT id, number, name, capacity, current_occupancy, status, equipment, location, is_available
				FROM rooms ORDER BY number`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Errorf("failed to list rooms: %v", err)
		return nil, fmt.Errorf("could not list rooms: %w", err)
	}
	defer rows.Close()

	rooms := make([]Room, 0)
	for rows.Next() {
		room, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

func (r *RepositoryImpl) scanOne(row pgx.Row) (Room, error) {
	var room Room
	var status string
	var equipment []byte
	err := row.Scan(
		&room.ID,
		&room.Number,
		&room.Name,
		&room.Capacity,
		&room.CurrentOccupancy,
		&status,
		&equipment,
		&room.Location,
		&room.IsAvailable,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Room{}, ErrRoomNotFound
	} else if err != nil {
		log.Errorf("failed to scan room: %v", err)
		return Room{}, fmt.Errorf("could not scan room: %w", err)
	}
	room.Status = Status(status)
	if err := json.Unmarshal(equipment, &room.Equipment); err != nil {
		return Room{}, fmt.Errorf("could not decode equipment list: %w", err)
	}
	return room, nil
}
