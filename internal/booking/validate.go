package booking

import (
	"time"

	"campus-booking-backend/internal/model"
)

// Validators run after role and ownership checks and before anything is
// written; a validation failure leaves the store untouched. Uniqueness and
// overlap checks are full linear scans of the target collection, which is
// fine at this scale and keeps the semantics trivially correct.

func (s *Service) validateUser(user model.User) error {
	for _, existing := range s.store.Users() {
		if existing.Username == user.Username && existing.ID != user.ID {
			return validationf("User with name '%s' already exists", user.Username)
		}
	}
	if user.Group != model.GroupAdmin {
		if user.University == nil {
			return validationf("Users of group '%s' must be associated with an existing university", user.Group)
		}
		if _, ok := s.store.University(*user.University); !ok {
			return validationf("Users of group '%s' must be associated with an existing university", user.Group)
		}
	} else if user.University != nil {
		return validationf("Admin users cannot be associated with a university")
	}
	return nil
}

func (s *Service) validateUniversity(university model.University) error {
	for _, existing := range s.store.Universities() {
		if existing.Name == university.Name && existing.ID != university.ID {
			return validationf("University with name '%s' already exists", university.Name)
		}
	}
	return nil
}

func (s *Service) validateRoom(room model.Room) error {
	for _, existing := range s.store.Rooms() {
		if existing.Name == room.Name && existing.University == room.University && existing.ID != room.ID {
			return validationf("Room with name '%s' already exists", room.Name)
		}
	}
	if _, ok := s.store.University(room.University); !ok {
		return validationf("University with id '%s' does not exist", room.University)
	}
	return nil
}

func (s *Service) validateTime(t model.Time) error {
	if !t.Start.Before(t.End) {
		return validationf("Start must not be later than end")
	}
	for _, existing := range s.store.Times() {
		if existing.ID == t.ID {
			continue
		}
		if t.Overlaps(existing) {
			return validationf("Time overlaps with existing scheduled time: %s to %s",
				existing.Start.Format(time.RFC3339), existing.End.Format(time.RFC3339))
		}
	}
	return nil
}
