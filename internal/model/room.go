package model

// Room belongs to exactly one university. Names are unique per university,
// not globally.
type Room struct {
	ID         string `json:"id"`
	University string `json:"university"`
	Name       string `json:"name"`
}

// RoomView is the redacted projection returned to non-admin callers; it
// omits the university id so cross-tenant information never leaves the
// caller's scope.
type RoomView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// View returns the redacted projection of r.
func (r Room) View() RoomView {
	return RoomView{ID: r.ID, Name: r.Name}
}
