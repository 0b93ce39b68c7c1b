package model

// University is the root of a tenancy. Rooms, times and non-admin users all
// hang off a university by id.
type University struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
