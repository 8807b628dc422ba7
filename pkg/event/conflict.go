package event

// FindConflicts returns every event in existing that collides with the
// candidate: a different event in the same room, not cancelled, with the same
// time range. Result order follows the order of existing.
//
// Time ranges are compared as exact strings. Partially overlapping ranges
// (e.g. "09:00-11:00" vs "10:00-12:00") are NOT reported; the facility's
// booking sheet treats slots as named blocks, and changing this to interval
// math would change observable conflict results.
func FindConflicts(candidate Event, existing []Event) []Event {
	conflicts := make([]Event, 0)
	for _, e := range existing {
		if e.ID == candidate.ID {
			continue
		}
		if e.Room != candidate.Room {
			continue
		}
		if e.Status == StatusCancelled {
			continue
		}
		if e.Time == candidate.Time {
			conflicts = append(conflicts, e)
		}
	}
	return conflicts
}
