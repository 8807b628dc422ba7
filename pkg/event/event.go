package event

import "time"

// Event is a scheduled occupation of a room for a time range, with staff and
// resources attached.
type Event struct {
	ID            string
	Time          string
	Function      string
	Room          string
	Capacity      int
	Colleagues    []string
	Type          Type
	Status        Status
	Notes         string
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	AssignedStaff []StaffMember
	Resources     []Resource
}

type Type string

const (
	TypeWaterStation     Type = "Water Station"
	TypeLunchBuffet      Type = "Lunch Buffet"
	TypeBrandRoomHosting Type = "Brand Room Hosting"
	TypeMeeting          Type = "Meeting"
	TypeAgriculture      Type = "Agriculture Speaking"
	TypeOther            Type = "Other"
)

// ParseType validates an event type string against the closed set of types.
func ParseType(s string) (Type, bool) {
	switch Type(s) {
	case TypeWaterStation, TypeLunchBuffet, TypeBrandRoomHosting, TypeMeeting, TypeAgriculture, TypeOther:
		return Type(s), true
	}
	return "", false
}

type Status string

const (
	StatusScheduled  Status = "Scheduled"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
	StatusRevised    Status = "Revised"
)

// ParseStatus validates a status string against the closed set of statuses.
// Transitions between statuses are deliberately unrestricted.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled, StatusRevised:
		return Status(s), true
	}
	return "", false
}

// StaffMember lives embedded inside an event's assigned-staff list. Two events
// referencing the same person each hold an independent copy.
type StaffMember struct {
	Name    string      `json:"name"`
	Role    StaffRole   `json:"role"`
	Shift   Shift       `json:"shift"`
	Contact ContactInfo `json:"contactInfo"`
}

type StaffRole string

const (
	StaffRoleLeader        StaffRole = "Leader"
	StaffRoleBrandRoomTeam StaffRole = "Brand Room Team"
	StaffRoleSetupCrew     StaffRole = "Setup Crew"
	StaffRoleBartender     StaffRole = "Bartender"
	StaffRoleServer        StaffRole = "Server"
)

func ParseStaffRole(s string) (StaffRole, bool) {
	switch StaffRole(s) {
	case StaffRoleLeader, StaffRoleBrandRoomTeam, StaffRoleSetupCrew, StaffRoleBartender, StaffRoleServer:
		return StaffRole(s), true
	}
	return "", false
}

type Shift string

const (
	ShiftAM      Shift = "AM"
	ShiftPM      Shift = "PM"
	ShiftFullDay Shift = "Full Day"
)

func ParseShift(s string) (Shift, bool) {
	switch Shift(s) {
	case ShiftAM, ShiftPM, ShiftFullDay:
		return Shift(s), true
	}
	return "", false
}

type ContactInfo struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Resource struct {
	Name        string           `json:"name"`
	Quantity    int              `json:"quantity"`
	MaxQuantity int              `json:"maxQuantity"`
	Category    ResourceCategory `json:"category"`
}

type ResourceCategory string

const (
	ResourceFood      ResourceCategory = "Food & Beverage"
	ResourceEquipment ResourceCategory = "Equipment"
	ResourceSupplies  ResourceCategory = "Supplies"
	ResourceFurniture ResourceCategory = "Furniture"
)
