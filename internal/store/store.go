package store

import "campus-booking-backend/internal/model"

// Store defines the interface for all document store operations. Reads and
// writes touch only the in-memory document; nothing hits disk until Save.
// Callers that serve concurrent requests must serialize access themselves.
type Store interface {
	User(id string) (model.StoredUser, bool)
	Users() []model.StoredUser
	PutUser(u model.StoredUser)
	DeleteUser(id string)

	University(id string) (model.University, bool)
	Universities() []model.University
	PutUniversity(u model.University)
	DeleteUniversity(id string)

	Room(id string) (model.Room, bool)
	Rooms() []model.Room
	PutRoom(r model.Room)
	DeleteRoom(id string)

	Time(id string) (model.Time, bool)
	Times() []model.Time
	PutTime(t model.Time)
	DeleteTime(id string)

	// Save durably persists the whole document in one atomic write.
	Save() error
}
