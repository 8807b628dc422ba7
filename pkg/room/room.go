package room

type Room struct {
	ID               string
	Number           string
	Name             string
	Capacity         int
	CurrentOccupancy int
	Status           Status
	Equipment        []string
	Location         string
	IsAvailable      bool
}

type Status string

const (
	StatusAvailable   Status = "Available"
	StatusOccupied    Status = "Occupied"
	StatusMaintenance Status = "Maintenance"
	StatusReserved    Status = "Reserved"
)

// ParseStatus validates a status string against the closed set of room states.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusAvailable, StatusOccupied, StatusMaintenance, StatusReserved:
		return Status(s), true
	}
	return "", false
}
