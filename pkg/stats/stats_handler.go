package stats

import (
	"encoding/json"
	"net/http"

	"github.com/eventsync/eventsync/pkg/user"
)

type SummaryDTO struct {
	TotalEvents    int            `json:"totalEvents"`
	EventsByStatus map[string]int `json:"eventsByStatus"`
	EventsByType   map[string]int `json:"eventsByType"`
	EventsByRoom   map[string]int `json:"eventsByRoom"`
	OccupiedRooms  int            `json:"occupiedRooms"`
	StaffOnDuty    int            `json:"staffOnDuty"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetSummary requires the view-reports capability.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	current, err := user.CurrentUser(r.Context())
	if err != nil || !current.Permissions().CanViewReports {
		http.Error(w, "reports are not available for this user", http.StatusForbidden)
		return
	}

	summary, err := h.service.GetSummary(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := json.NewEncoder(w).Encode(summaryToDTO(summary)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func summaryToDTO(s Summary) SummaryDTO {
	byStatus := make(map[string]int, len(s.EventsByStatus))
	for status, n := range s.EventsByStatus {
		byStatus[string(status)] = n
	}
	byType := make(map[string]int, len(s.EventsByType))
	for t, n := range s.EventsByType {
		byType[string(t)] = n
	}
	return SummaryDTO{
		TotalEvents:    s.TotalEvents,
		EventsByStatus: byStatus,
		EventsByType:   byType,
		EventsByRoom:   s.EventsByRoom,
		OccupiedRooms:  s.OccupiedRooms,
		StaffOnDuty:    s.StaffOnDuty,
	}
}
