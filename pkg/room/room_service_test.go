package room

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	t.Run("assigns an id and defaults the status", func(t *testing.T) {
		repo := NewStubRepository()
		service := NewService(repo)

		added, err := service.Add(context.Background(), Room{Number: "208", Name: "Conference Room 208", Capacity: 40})

		require.NoError(t, err)
		assert.NotEmpty(t, added.ID)
		assert.Equal(t, StatusAvailable, added.Status)
		assert.Len(t, repo.Rooms, 1)
	})

	t.Run("adding an existing number returns the existing room", func(t *testing.T) {
		repo := NewStubRepository()
		service := NewService(repo)

		first, err := service.Add(context.Background(), Room{Number: "208", Name: "Conference Room 208", Capacity: 40})
		require.NoError(t, err)

		second, err := service.Add(context.Background(), Room{Number: "208", Name: "Renamed", Capacity: 10})
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Len(t, repo.Rooms, 1)
	})
}

func TestSeed(t *testing.T) {
	t.Run("applies the default catalog", func(t *testing.T) {
		repo := NewStubRepository()
		service := NewService(repo)

		require.NoError(t, service.Seed(context.Background(), DefaultCatalog()))

		rooms, err := service.List(context.Background())
		require.NoError(t, err)
		assert.Len(t, rooms, len(DefaultCatalog()))
	})

	t.Run("seeding twice leaves the directory unchanged", func(t *testing.T) {
		repo := NewStubRepository()
		service := NewService(repo)

		require.NoError(t, service.Seed(context.Background(), DefaultCatalog()))
		before, err := service.List(context.Background())
		require.NoError(t, err)

		require.NoError(t, service.Seed(context.Background(), DefaultCatalog()))
		after, err := service.List(context.Background())
		require.NoError(t, err)

		assert.Equal(t, before, after)
	})
}

func TestGetByNumber(t *testing.T) {
	repo := NewStubRepository()
	service := NewService(repo)
	require.NoError(t, service.Seed(context.Background(), DefaultCatalog()))

	found, err := service.GetByNumber(context.Background(), "CB")
	require.NoError(t, err)
	assert.Equal(t, "Crystal Ballroom", found.Name)

	_, err = service.GetByNumber(context.Background(), "999")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestUpdate(t *testing.T) {
	t.Run("updates an existing room", func(t *testing.T) {
		repo := NewStubRepository()
		service := NewService(repo)

		added, err := service.Add(context.Background(), Room{Number: "208", Name: "Conference Room 208", Capacity: 40})
		require.NoError(t, err)

		added.Status = StatusMaintenance
		added.CurrentOccupancy = 12
		updated, err := service.Update(context.Background(), added)

		require.NoError(t, err)
		assert.Equal(t, StatusMaintenance, updated.Status)
		assert.Equal(t, added, repo.Rooms[0])
	})

	t.Run("occupancy above capacity is allowed", func(t *testing.T) {
		repo := NewStubRepository()
		service := NewService(repo)

		added, err := service.Add(context.Background(), Room{Number: "208", Name: "Conference Room 208", Capacity: 40})
		require.NoError(t, err)

		added.CurrentOccupancy = 55
		updated, err := service.Update(context.Background(), added)

		require.NoError(t, err)
		assert.Equal(t, 55, updated.CurrentOccupancy)
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		service := NewService(NewStubRepository())

		_, err := service.Update(context.Background(), Room{ID: "missing", Number: "208"})
		assert.ErrorIs(t, err, ErrRoomNotFound)
	})
}
