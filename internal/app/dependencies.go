package app

import (
	"github.com/eventsync/eventsync/internal/event_bus"
	"github.com/eventsync/eventsync/pkg/event"
	"github.com/eventsync/eventsync/pkg/room"
	"github.com/eventsync/eventsync/pkg/roster"
	"github.com/eventsync/eventsync/pkg/stats"
	"github.com/eventsync/eventsync/pkg/user"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Bus *event_bus.EventBus

	UserService user.Service
	UserHandler *user.Handler

	RoomRepo    room.Repository
	RoomService room.Service
	RoomHandler *room.Handler

	EventRepo         event.Repository
	SchedulingService event.SchedulingService
	EventHandler      *event.EventHandler

	RosterService roster.Service
	RosterHandler *roster.Handler

	StatsService stats.Service
	StatsHandler *stats.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *pgxpool.Pool) *Dependencies {
	deps := &Dependencies{}

	deps.Bus = event_bus.NewEventBus()

	deps.UserService = user.NewUserService(user.NewUserRepo(db))
	deps.UserHandler = user.NewHandler(deps.UserService)

	deps.RoomRepo = room.NewRepository(db)
	deps.RoomService = room.NewService(deps.RoomRepo)
	deps.RoomHandler = room.NewHandler(deps.RoomService)

	deps.EventRepo = event.NewRepository(db)
	deps.SchedulingService = event.NewSchedulingService(deps.EventRepo, deps.RoomService, deps.Bus)
	deps.EventHandler = event.NewEventHandler(deps.SchedulingService)

	deps.RosterService = roster.NewService(deps.SchedulingService)
	deps.RosterHandler = roster.NewHandler(deps.RosterService)

	deps.StatsService = stats.NewService(deps.SchedulingService, deps.RoomService, deps.Bus)
	deps.StatsHandler = stats.NewHandler(deps.StatsService)

	return deps
}
