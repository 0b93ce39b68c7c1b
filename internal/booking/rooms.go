package booking

import (
	"github.com/google/uuid"

	"campus-booking-backend/internal/model"
)

// RoomParams carries the externally supplied fields for creating or
// replacing a room. University is optional with one uniform shape across
// create and update: admins must name it on create, managers must leave it
// unset (their own tenant is implied).
type RoomParams struct {
	University *string
	Name       string
}

// CreateRoom creates a room. Admin and manager only; the returned bool
// reports whether the caller should see the redacted projection.
func (s *Service) CreateRoom(callerID string, p RoomParams) (model.Room, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	caller, err := s.caller(callerID)
	if err != nil {
		return model.Room{}, false, err
	}

	var universityID string
	switch caller.Group {
	case model.GroupAdmin:
		if p.University == nil {
			return model.Room{}, false, validationf("You must specify a university to create this room in")
		}
		universityID = *p.University
	case model.GroupManager:
		if p.University != nil {
			return model.Room{}, false, validationf("You may not specify the university when creating a room")
		}
		if caller.University != nil {
			universityID = *caller.University
		}
	default:
		return model.Room{}, false, ErrUnauthorized
	}

	room := model.Room{ID: uuid.NewString(), University: universityID, Name: p.Name}
	if err := s.validateRoom(room); err != nil {
		return model.Room{}, false, err
	}
	s.store.PutRoom(room)
	if err := s.store.Save(); err != nil {
		return model.Room{}, false, err
	}
	return room, caller.Group != model.GroupAdmin, nil
}

// ListRooms returns the rooms visible to the caller: all of them for
// admins, the caller's own university for everyone else. The returned bool
// reports whether the university id must be redacted.
func (s *Service) ListRooms(callerID string) ([]model.Room, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	caller, err := s.caller(callerID)
	if err != nil {
		return nil, false, err
	}

	if caller.Group == model.GroupAdmin {
		return s.store.Rooms(), false, nil
	}
	rooms := make([]model.Room, 0)
	for _, room := range s.store.Rooms() {
		if sameUniversity(caller, room.University) {
			rooms = append(rooms, room)
		}
	}
	return rooms, true, nil
}

// UpdateRoom replaces the room record under id. Admin and manager only;
// managers may not move a room to another university.
func (s *Service) UpdateRoom(callerID, id string, p RoomParams) (model.Room, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	caller, err := s.caller(callerID)
	if err != nil {
		return model.Room{}, false, err
	}
	if caller.Group != model.GroupAdmin && caller.Group != model.GroupManager {
		return model.Room{}, false, ErrUnauthorized
	}
	if caller.Group == model.GroupManager && p.University != nil {
		return model.Room{}, false, validationf("You may not change the university of an existing room")
	}

	room, err := s.resolveOwnedRoom(caller, id)
	if err != nil {
		return model.Room{}, false, err
	}

	universityID := room.University
	if p.University != nil {
		universityID = *p.University
	}
	updated := model.Room{ID: id, University: universityID, Name: p.Name}
	if err := s.validateRoom(updated); err != nil {
		return model.Room{}, false, err
	}
	s.store.PutRoom(updated)
	if err := s.store.Save(); err != nil {
		return model.Room{}, false, err
	}
	return updated, caller.Group != model.GroupAdmin, nil
}

// DeleteRoom deletes a room and every reservation in it as one durable
// write. Admin and manager only.
func (s *Service) DeleteRoom(callerID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	caller, err := s.caller(callerID)
	if err != nil {
		return err
	}
	if caller.Group != model.GroupAdmin && caller.Group != model.GroupManager {
		return ErrUnauthorized
	}
	if _, err := s.resolveOwnedRoom(caller, id); err != nil {
		return err
	}

	s.deleteRoomCascade(id)
	return s.store.Save()
}
