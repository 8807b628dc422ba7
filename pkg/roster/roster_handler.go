package roster

import (
	"encoding/json"
	"net/http"

	"github.com/eventsync/eventsync/internal/rest"
	"github.com/eventsync/eventsync/pkg/event"
)

type StaffMemberDTO struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Shift string `json:"shift"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetStaff(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	filter := Filter{}
	if raw := r.URL.Query().Get("shift"); raw != "" {
		shift, ok := event.ParseShift(raw)
		if !ok {
			h.badParam(w, "Invalid shift filter")
			return
		}
		filter.Shift = &shift
	}
	if raw := r.URL.Query().Get("role"); raw != "" {
		role, ok := event.ParseStaffRole(raw)
		if !ok {
			h.badParam(w, "Invalid role filter")
			return
		}
		filter.Role = &role
	}

	staff, err := h.service.AllStaff(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]StaffMemberDTO, 0, len(staff))
	for _, member := range staff {
		dtos = append(dtos, StaffMemberDTO{
			Name:  member.Name,
			Role:  string(member.Role),
			Shift: string(member.Shift),
			Email: member.Contact.Email,
			Phone: member.Contact.Phone,
		})
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) badParam(w http.ResponseWriter, message string) {
	w.WriteHeader(http.StatusBadRequest)
	encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: message})
	if encodeErr != nil {
		http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
	}
}
