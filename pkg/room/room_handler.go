package room

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eventsync/eventsync/internal/rest"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type RoomDTO struct {
	ID               string   `json:"id,omitempty"`
	Number           string   `json:"number"`
	Name             string   `json:"name"`
	Capacity         int      `json:"capacity"`
	CurrentOccupancy int      `json:"currentOccupancy"`
	Status           string   `json:"status"`
	Equipment        []string `json:"equipment"`
	Location         string   `json:"location"`
	IsAvailable      bool     `json:"isAvailable"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListRooms(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	rooms, err := h.service.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]RoomDTO, 0, len(rooms))
	for _, room := range rooms {
		dtos = append(dtos, roomToDTO(room))
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) GetRoom(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	number := mux.Vars(r)["number"]

	room, err := h.service.GetByNumber(r.Context(), number)
	if err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			http.Error(w, "room not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := json.NewEncoder(w).Encode(roomToDTO(room)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) AddRoom(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Debug("Adding room")

	dto, ok := h.decodeRoom(w, r)
	if !ok {
		return
	}

	room, err := h.service.Add(r.Context(), dtoToRoom(dto))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(roomToDTO(room)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["roomId"]

	dto, ok := h.decodeRoom(w, r)
	if !ok {
		return
	}
	room := dtoToRoom(dto)
	room.ID = id

	updated, err := h.service.Update(r.Context(), room)
	if err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			http.Error(w, "room not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := json.NewEncoder(w).Encode(roomToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) decodeRoom(w http.ResponseWriter, r *http.Request) (RoomDTO, bool) {
	var dto RoomDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Invalid request body format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return RoomDTO{}, false
	}
	if dto.Number == "" || dto.Name == "" {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Room number and name are required",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return RoomDTO{}, false
	}
	if dto.Status != "" {
		if _, ok := ParseStatus(dto.Status); !ok {
			w.WriteHeader(http.StatusBadRequest)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Invalid room status",
				Details: "Status must be one of: Available, Occupied, Maintenance, Reserved",
			})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return RoomDTO{}, false
		}
	}
	return dto, true
}

func roomToDTO(room Room) RoomDTO {
	return RoomDTO{
		ID:               room.ID,
		Number:           room.Number,
		Name:             room.Name,
		Capacity:         room.Capacity,
		CurrentOccupancy: room.CurrentOccupancy,
		Status:           string(room.Status),
		Equipment:        room.Equipment,
		Location:         room.Location,
		IsAvailable:      room.IsAvailable,
	}
}

func dtoToRoom(dto RoomDTO) Room {
	return Room{
		ID:               dto.ID,
		Number:           dto.Number,
		Name:             dto.Name,
		Capacity:         dto.Capacity,
		CurrentOccupancy: dto.CurrentOccupancy,
		Status:           Status(dto.Status),
		Equipment:        dto.Equipment,
		Location:         dto.Location,
		IsAvailable:      dto.IsAvailable,
	}
}
