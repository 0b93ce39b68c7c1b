package booking

import "campus-booking-backend/internal/model"

// resolveOwnedRoom fetches a room the caller may act on. A room in another
// tenant produces the same not-found error as a room that does not exist,
// so non-admin callers cannot learn which ids are taken elsewhere.
func (s *Service) resolveOwnedRoom(caller model.User, id string) (model.Room, error) {
	room, ok := s.store.Room(id)
	if !ok {
		return model.Room{}, notFound("room", id)
	}
	if caller.Group != model.GroupAdmin && !sameUniversity(caller, room.University) {
		return model.Room{}, notFound("room", id)
	}
	return room, nil
}

// resolveOwnedTime fetches a reservation the caller may act on, applying
// the tenant check through the reservation's room.
func (s *Service) resolveOwnedTime(caller model.User, id string) (model.Time, error) {
	t, ok := s.store.Time(id)
	if !ok {
		return model.Time{}, notFound("time", id)
	}
	if caller.Group != model.GroupAdmin {
		room, ok := s.store.Room(t.Room)
		if !ok || !sameUniversity(caller, room.University) {
			return model.Time{}, notFound("time", id)
		}
	}
	return t, nil
}
