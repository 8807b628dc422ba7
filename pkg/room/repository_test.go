package room

import (
	"context"
	"os"
	"testing"

	"github.com/eventsync/eventsync/internal/test_utils"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var db *pgxpool.Pool

func TestMain(m *testing.M) {
	pool, cleanup := test_utils.TestWithDB()
	db = pool
	code := m.Run()
	cleanup()
	os.Exit(code)
}

func truncateRooms(t *testing.T) {
	t.Helper()
	_, err := db.Exec(context.Background(), "TRUNCATE TABLE rooms")
	require.NoError(t, err)
}

func sampleRoom() Room {
	return Room{
		ID:          "room-208",
		Number:      "208",
		Name:        "Main Conference",
		Capacity:    100,
		Status:      StatusAvailable,
		Equipment:   []string{"Projector", "Sound System"},
		Location:    "2nd Floor",
		IsAvailable: true,
	}
}

func TestRepositoryInsertAndFind(t *testing.T) {
	truncateRooms(t)
	repo := NewRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, sampleRoom()))

	t.Run("find by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, "room-208")
		require.NoError(t, err)
		assert.Equal(t, sampleRoom(), found)
	})

	t.Run("find by number", func(t *testing.T) {
		found, err := repo.FindByNumber(ctx, "208")
		require.NoError(t, err)
		assert.Equal(t, sampleRoom(), found)
	})

	t.Run("unknown lookups report not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, "missing")
		assert.ErrorIs(t, err, ErrRoomNotFound)

		_, err = repo.FindByNumber(ctx, "999")
		assert.ErrorIs(t, err, ErrRoomNotFound)
	})
}

func TestRepositoryInsertDuplicateNumberIsNoOp(t *testing.T) {
	truncateRooms(t)
	repo := NewRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, sampleRoom()))

	duplicate := sampleRoom()
	duplicate.ID = "room-208-copy"
	duplicate.Name = "Renamed"
	require.NoError(t, repo.Insert(ctx, duplicate))

	rooms, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "Main Conference", rooms[0].Name)
}

func TestRepositoryUpdate(t *testing.T) {
	truncateRooms(t)
	repo := NewRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, sampleRoom()))

	changed := sampleRoom()
	changed.Status = StatusOccupied
	changed.CurrentOccupancy = 80
	changed.Equipment = []string{"Projector"}
	require.NoError(t, repo.Update(ctx, changed))

	found, err := repo.FindByID(ctx, "room-208")
	require.NoError(t, err)
	assert.Equal(t, changed, found)
}

func TestRepositoryFindAllOrdersByNumber(t *testing.T) {
	truncateRooms(t)
	repo := NewRepository(db)
	ctx := context.Background()

	second := sampleRoom()
	second.ID = "room-216"
	second.Number = "216"
	require.NoError(t, repo.Insert(ctx, second))
	require.NoError(t, repo.Insert(ctx, sampleRoom()))

	rooms, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "208", rooms[0].Number)
	assert.Equal(t, "216", rooms[1].Number)
}
