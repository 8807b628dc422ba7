package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Scheduling
	r.HandleFunc("/api/event", deps.EventHandler.SubmitEvent).Methods("POST")
	r.HandleFunc("/api/event/force", deps.EventHandler.ForceSubmitEvent).Methods("POST")
	r.HandleFunc("/api/event", deps.EventHandler.ListEvents).Methods("GET")
	r.HandleFunc("/api/event/{eventId}", deps.EventHandler.GetEvent).Methods("GET")
	r.HandleFunc("/api/event/{eventId}", deps.EventHandler.UpdateEvent).Methods("PUT")
	r.HandleFunc("/api/event/{eventId}/force", deps.EventHandler.ForceUpdateEvent).Methods("PUT")
	r.HandleFunc("/api/event/{eventId}", deps.EventHandler.DeleteEvent).Methods("DELETE")
	r.HandleFunc("/api/event/{eventId}/conflicts", deps.EventHandler.GetEventConflicts).Methods("GET")

	// Room directory
	r.HandleFunc("/api/room", deps.RoomHandler.ListRooms).Methods("GET")
	r.HandleFunc("/api/room", deps.RoomHandler.AddRoom).Methods("POST")
	r.HandleFunc("/api/room/{number}", deps.RoomHandler.GetRoom).Methods("GET")
	r.HandleFunc("/api/room/{roomId}", deps.RoomHandler.UpdateRoom).Methods("PUT")

	// Staff roster
	r.HandleFunc("/api/staff", deps.RosterHandler.GetStaff).Methods("GET")

	// Reports
	r.HandleFunc("/api/stats/summary", deps.StatsHandler.GetSummary).Methods("GET")

	// User management
	r.HandleFunc("/api/user/current", deps.UserHandler.CurrentUser).Methods("GET")
	r.HandleFunc("/api/user", deps.UserHandler.CreateUser).Methods("POST")
	r.HandleFunc("/api/user", deps.UserHandler.GetAvailableUsers).Methods("GET")
	r.HandleFunc("/api/user/{email}", deps.UserHandler.DeleteUser).Methods("DELETE")
}
