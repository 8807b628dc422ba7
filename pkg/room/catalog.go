package room

// DefaultCatalog is the fixed facility room catalog applied at startup.
// Seeding is idempotent on room number, so the catalog can be re-applied on
// every boot without duplicating rooms.
func DefaultCatalog() []Room {
	return []Room{
		{Number: "208", Name: "Main Conference", Capacity: 100, CurrentOccupancy: 0, Status: StatusAvailable, Equipment: []string{"Projector", "Sound System"}, Location: "2nd Floor", IsAvailable: true},
		{Number: "216", Name: "MR 216", Capacity: 56, CurrentOccupancy: 0, Status: StatusAvailable, Equipment: []string{"Whiteboard"}, Location: "2nd Floor", IsAvailable: true},
		{Number: "222", Name: "Meeting Room 222", Capacity: 30, CurrentOccupancy: 0, Status: StatusAvailable, Equipment: []string{"TV Screen"}, Location: "2nd Floor", IsAvailable: true},
		{Number: "224", Name: "Meeting Room 224", Capacity: 25, CurrentOccupancy: 0, Status: StatusAvailable, Equipment: []string{"Conference Phone"}, Location: "2nd Floor", IsAvailable: true},
		{ID: "brand-room", Number: "BMO", Name: "BMO Brand Room", Capacity: 340, CurrentOccupancy: 0, Status: StatusAvailable, Equipment: []string{"Luxury Bar", "Sound System", "Lighting"}, Location: "Main Floor", IsAvailable: true},
		{ID: "crystal-ballroom", Number: "CB", Name: "Crystal Ballroom", Capacity: 300, CurrentOccupancy: 0, Status: StatusAvailable, Equipment: []string{"Stage", "Dance Floor", "Premium Audio"}, Location: "Main Floor", IsAvailable: true},
	}
}
