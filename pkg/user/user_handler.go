package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/eventsync/eventsync/internal/rest"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type UserDTO struct {
	ID          string         `json:"id,omitempty"`
	Email       string         `json:"email"`
	Name        string         `json:"name"`
	Role        string         `json:"role"`
	Permissions PermissionsDTO `json:"permissions"`
	CreatedAt   string         `json:"createdAt,omitempty"`
	LastLogin   string         `json:"lastLogin,omitempty"`
}

type PermissionsDTO struct {
	CanEditAllEvents   bool    `json:"canEditAllEvents"`
	CanApproveChanges  bool    `json:"canApproveChanges"`
	CanManageUsers     bool    `json:"canManageUsers"`
	CanViewReports     bool    `json:"canViewReports"`
	ApprovalThreshold  float64 `json:"approvalThreshold"`
	CanOverrideChanges bool    `json:"canOverrideChanges"`
}

type Handler struct {
	userService Service
}

func NewHandler(userService Service) *Handler {
	return &Handler{
		userService: userService,
	}
}

// CurrentUser godoc
// @Summary Get the current user
// @Description Returns the resolved user for this request with derived permissions
// @Tags User
// @Produce json
// @Success 200 {object} UserDTO
// @Failure 403 {string} string "No user resolved"
// @Router /api/user/current [get]
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	current, err := h.userService.GetCurrentUser(r.Context())
	if err != nil {
		http.Error(w, "no user resolved for request", http.StatusForbidden)
		return
	}
	if err := json.NewEncoder(w).Encode(userToDTO(current)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// CreateUser godoc
// @Summary Create a new user
// @Description Register a new user; requires the manage-users capability
// @Tags User
// @Accept json
// @Produce json
// @Param user body UserDTO true "User"
// @Success 201 {object} UserDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid request"
// @Failure 403 {string} string "Not permitted"
// @Router /api/user [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Debug("Creating user")

	var dto UserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Invalid request body format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}
	log.Tracef("Creating new user: %+v", dto)

	if len(dto.Email) == 0 {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Email is required",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}
	role, ok := ParseRole(dto.Role)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid role",
			Details: "Role must be one of: F&B Director, F&B Manager, Administrator, Staff",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	created, err := h.userService.CreateUser(r.Context(), User{
		Email: dto.Email,
		Name:  dto.Name,
		Role:  role,
	})
	if err != nil {
		if errors.Is(err, ErrNotPermitted) || errors.Is(err, ErrNoUser) {
			http.Error(w, err.Error(), http.StatusForbidden)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(userToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetAvailableUsers godoc
// @Summary List all users
// @Tags User
// @Produce json
// @Success 200 {array} UserDTO
// @Router /api/user [get]
func (h *Handler) GetAvailableUsers(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	users, err := h.userService.GetAllUsers(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, userToDTO(u))
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// DeleteUser godoc
// @Summary Delete a user by email
// @Tags User
// @Param email path string true "User email"
// @Success 204
// @Failure 403 {string} string "Not permitted"
// @Router /api/user/{email} [delete]
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	if err := h.userService.DeleteUser(r.Context(), email); err != nil {
		if errors.Is(err, ErrNotPermitted) || errors.Is(err, ErrNoUser) {
			http.Error(w, err.Error(), http.StatusForbidden)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func userToDTO(u User) UserDTO {
	perms := u.Permissions()
	return UserDTO{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  string(u.Role),
		Permissions: PermissionsDTO{
			CanEditAllEvents:   perms.CanEditAllEvents,
			CanApproveChanges:  perms.CanApproveChanges,
			CanManageUsers:     perms.CanManageUsers,
			CanViewReports:     perms.CanViewReports,
			ApprovalThreshold:  perms.ApprovalThreshold,
			CanOverrideChanges: perms.CanOverrideChanges,
		},
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		LastLogin: u.LastLogin.Format(time.RFC3339),
	}
}
