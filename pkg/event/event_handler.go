package event

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/eventsync/eventsync/internal/rest"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type EventDTO struct {
	ID            string           `json:"id,omitempty"`
	Time          string           `json:"time"`
	Function      string           `json:"function"`
	Room          string           `json:"room"`
	Capacity      int              `json:"capacity"`
	Colleagues    []string         `json:"colleagues"`
	EventType     string           `json:"eventType"`
	Status        string           `json:"status,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	CreatedBy     string           `json:"createdBy,omitempty"`
	CreatedAt     string           `json:"createdAt,omitempty"`
	UpdatedAt     string           `json:"updatedAt,omitempty"`
	AssignedStaff []StaffMemberDTO `json:"assignedStaff"`
	Resources     []ResourceDTO    `json:"resources"`
}

type StaffMemberDTO struct {
	Name    string         `json:"name"`
	Role    string         `json:"role"`
	Shift   string         `json:"shift"`
	Contact ContactInfoDTO `json:"contactInfo"`
}

type ContactInfoDTO struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type ResourceDTO struct {
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	MaxQuantity int    `json:"maxQuantity"`
	Category    string `json:"category"`
}

// ConflictResponse is returned when a submission collides with existing
// bookings and awaits an explicit override confirmation.
type ConflictResponse struct {
	Error     string     `json:"error"`
	Room      string     `json:"room"`
	Conflicts []EventDTO `json:"conflicts"`
}

type EventHandler struct {
	scheduling SchedulingService
}

func NewEventHandler(scheduling SchedulingService) *EventHandler {
	return &EventHandler{scheduling: scheduling}
}

func (h *EventHandler) SubmitEvent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Trace("Submitting new event")

	draft, ok := h.decodeEvent(w, r)
	if !ok {
		return
	}

	result, err := h.scheduling.Submit(r.Context(), draft)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeSubmitResult(w, result, draft.Room)
}

func (h *EventHandler) ForceSubmitEvent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Trace("Force-submitting event past conflicts")

	draft, ok := h.decodeEvent(w, r)
	if !ok {
		return
	}

	committed, err := h.scheduling.ForceSubmit(r.Context(), draft)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(eventToDTO(committed)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["eventId"]

	draft, ok := h.decodeEvent(w, r)
	if !ok {
		return
	}
	draft.ID = id

	result, err := h.scheduling.Update(r.Context(), draft)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if result.Committed() {
		if err := json.NewEncoder(w).Encode(eventToDTO(*result.Event)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	h.writeConflicts(w, result.Conflicts, draft.Room)
}

func (h *EventHandler) ForceUpdateEvent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["eventId"]

	draft, ok := h.decodeEvent(w, r)
	if !ok {
		return
	}
	draft.ID = id

	committed, err := h.scheduling.ForceUpdate(r.Context(), draft)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if err := json.NewEncoder(w).Encode(eventToDTO(committed)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["eventId"]
	log.Tracef("Deleting event %s", id)

	if err := h.scheduling.Delete(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["eventId"]

	event, err := h.scheduling.Get(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if event == nil {
		http.Error(w, "event not found", http.StatusNotFound)
		return
	}
	if err := json.NewEncoder(w).Encode(eventToDTO(*event)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	filter, ok := h.parseFilter(w, r)
	if !ok {
		return
	}

	events, err := h.scheduling.Filter(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]EventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, eventToDTO(e))
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetEventConflicts reports what an existing event currently conflicts with,
// without changing anything.
func (h *EventHandler) GetEventConflicts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["eventId"]

	event, err := h.scheduling.Get(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if event == nil {
		http.Error(w, "event not found", http.StatusNotFound)
		return
	}
	conflicts, err := h.scheduling.CheckConflicts(r.Context(), *event)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]EventDTO, 0, len(conflicts))
	for _, c := range conflicts {
		dtos = append(dtos, eventToDTO(c))
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *EventHandler) decodeEvent(w http.ResponseWriter, r *http.Request) (Event, bool) {
	var dto EventDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Invalid request body format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return Event{}, false
	}

	event, err := dtoToEvent(dto)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid event",
			Details: err.Error(),
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return Event{}, false
	}
	return event, true
}

func (h *EventHandler) parseFilter(w http.ResponseWriter, r *http.Request) (Filter, bool) {
	filter := Filter{
		Room:  r.URL.Query().Get("room"),
		Query: r.URL.Query().Get("query"),
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, ok := ParseStatus(raw)
		if !ok {
			h.badQueryParam(w, "status", raw)
			return Filter{}, false
		}
		filter.Status = &status
	}
	if raw := r.URL.Query().Get("type"); raw != "" {
		eventType, ok := ParseType(raw)
		if !ok {
			h.badQueryParam(w, "type", raw)
			return Filter{}, false
		}
		filter.Type = &eventType
	}
	return filter, true
}

func (h *EventHandler) badQueryParam(w http.ResponseWriter, name, value string) {
	w.WriteHeader(http.StatusBadRequest)
	encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
		Error:   fmt.Sprintf("Invalid %s filter", name),
		Details: fmt.Sprintf("unknown value %q", value),
	})
	if encodeErr != nil {
		http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
	}
}

func (h *EventHandler) writeSubmitResult(w http.ResponseWriter, result SubmitResult, roomNumber string) {
	if result.Committed() {
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(eventToDTO(*result.Event)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	h.writeConflicts(w, result.Conflicts, roomNumber)
}

func (h *EventHandler) writeConflicts(w http.ResponseWriter, conflicts []Event, roomNumber string) {
	dtos := make([]EventDTO, 0, len(conflicts))
	for _, c := range conflicts {
		dtos = append(dtos, eventToDTO(c))
	}
	w.WriteHeader(http.StatusConflict)
	err := json.NewEncoder(w).Encode(ConflictResponse{
		Error:     fmt.Sprintf("This event conflicts with %d existing event(s) in room %s", len(conflicts), roomNumber),
		Room:      roomNumber,
		Conflicts: dtos,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *EventHandler) writeError(w http.ResponseWriter, err error) {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Validation failed",
			Details: validationErr.Error(),
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
	case errors.Is(err, ErrEventNotFound):
		http.Error(w, "event not found", http.StatusNotFound)
	case errors.Is(err, ErrNotEventOwner):
		http.Error(w, err.Error(), http.StatusForbidden)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func eventToDTO(e Event) EventDTO {
	staff := make([]StaffMemberDTO, 0, len(e.AssignedStaff))
	for _, m := range e.AssignedStaff {
		staff = append(staff, StaffMemberDTO{
			Name:    m.Name,
			Role:    string(m.Role),
			Shift:   string(m.Shift),
			Contact: ContactInfoDTO{Email: m.Contact.Email, Phone: m.Contact.Phone},
		})
	}
	resources := make([]ResourceDTO, 0, len(e.Resources))
	for _, res := range e.Resources {
		resources = append(resources, ResourceDTO{
			Name:        res.Name,
			Quantity:    res.Quantity,
			MaxQuantity: res.MaxQuantity,
			Category:    string(res.Category),
		})
	}
	return EventDTO{
		ID:            e.ID,
		Time:          e.Time,
		Function:      e.Function,
		Room:          e.Room,
		Capacity:      e.Capacity,
		Colleagues:    e.Colleagues,
		EventType:     string(e.Type),
		Status:        string(e.Status),
		Notes:         e.Notes,
		CreatedBy:     e.CreatedBy,
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     e.UpdatedAt.Format(time.RFC3339),
		AssignedStaff: staff,
		Resources:     resources,
	}
}

func dtoToEvent(dto EventDTO) (Event, error) {
	eventType := TypeOther
	if dto.EventType != "" {
		parsed, ok := ParseType(dto.EventType)
		if !ok {
			return Event{}, fmt.Errorf("unknown event type %q", dto.EventType)
		}
		eventType = parsed
	}
	status := StatusScheduled
	if dto.Status != "" {
		parsed, ok := ParseStatus(dto.Status)
		if !ok {
			return Event{}, fmt.Errorf("unknown status %q", dto.Status)
		}
		status = parsed
	}

	staff := make([]StaffMember, 0, len(dto.AssignedStaff))
	for _, m := range dto.AssignedStaff {
		role, ok := ParseStaffRole(m.Role)
		if !ok {
			return Event{}, fmt.Errorf("unknown staff role %q", m.Role)
		}
		shift, ok := ParseShift(m.Shift)
		if !ok {
			return Event{}, fmt.Errorf("unknown shift %q", m.Shift)
		}
		staff = append(staff, StaffMember{
			Name:    m.Name,
			Role:    role,
			Shift:   shift,
			Contact: ContactInfo{Email: m.Contact.Email, Phone: m.Contact.Phone},
		})
	}
	resources := make([]Resource, 0, len(dto.Resources))
	for _, res := range dto.Resources {
		resources = append(resources, Resource{
			Name:        res.Name,
			Quantity:    res.Quantity,
			MaxQuantity: res.MaxQuantity,
			Category:    ResourceCategory(res.Category),
		})
	}

	return Event{
		ID:            dto.ID,
		Time:          dto.Time,
		Function:      dto.Function,
		Room:          dto.Room,
		Capacity:      dto.Capacity,
		Colleagues:    dto.Colleagues,
		Type:          eventType,
		Status:        status,
		Notes:         dto.Notes,
		AssignedStaff: staff,
		Resources:     resources,
	}, nil
}
