package model

import "time"

// Time is a reservation of a room over [Start, End). Registrant is the id
// of the user the reservation was made for.
type Time struct {
	ID         string    `json:"id"`
	Room       string    `json:"room"`
	Registrant string    `json:"registrant"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
}

// TimeView is the listing projection of a reservation. The room id is
// omitted because listings are always scoped to a single room the caller
// already named.
type TimeView struct {
	ID         string    `json:"id"`
	Registrant string    `json:"registrant"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
}

// View returns the listing projection of t.
func (t Time) View() TimeView {
	return TimeView{ID: t.ID, Registrant: t.Registrant, Start: t.Start, End: t.End}
}

// Overlaps reports whether t and other occupy the same room at the same
// moment. Intervals are half-open: a reservation ending exactly when
// another starts does not overlap it.
func (t Time) Overlaps(other Time) bool {
	if t.Room != other.Room {
		return false
	}
	if !t.Start.Before(other.End) {
		return false
	}
	if !t.End.After(other.Start) {
		return false
	}
	return true
}
