package booking

// Cascading deletes remove children before the parent and never save; the
// top-level operation flushes once after the whole cascade, so a multi-get
// record deletion is one durable write. A crash mid-cascade can still
// leave a partially deleted store on disk from an earlier save; full
// transactionality would need a journal, which the single-document design
// does not attempt.

// deleteUniversityCascade removes a university, all its rooms (and their
// times), and every user scoped to it.
func (s *Service) deleteUniversityCascade(id string) {
	for _, room := range s.store.Rooms() {
		if room.University == id {
			s.deleteRoomCascade(room.ID)
		}
	}
	for _, user := range s.store.Users() {
		if user.University != nil && *user.University == id {
			s.store.DeleteUser(user.ID)
		}
	}
	s.store.DeleteUniversity(id)
}

// deleteRoomCascade removes a room and every reservation in it.
func (s *Service) deleteRoomCascade(id string) {
	for _, t := range s.store.Times() {
		if t.Room == id {
			s.store.DeleteTime(t.ID)
		}
	}
	s.store.DeleteRoom(id)
}
