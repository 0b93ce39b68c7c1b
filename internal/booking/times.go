package booking

import (
	"time"

	"github.com/google/uuid"

	"campus-booking-backend/internal/model"
)

// TimeParams carries the externally supplied fields for creating or
// replacing a reservation. Registrant defaults to the caller when unset.
type TimeParams struct {
	Room       string
	Registrant *string
	Start      time.Time
	End        time.Time
}

// CreateTime reserves an interval in a room. Admins and managers may
// register a time for anyone; personnel only for themselves; plain users
// may not create reservations at all.
func (s *Service) CreateTime(callerID string, p TimeParams) (model.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	caller, err := s.caller(callerID)
	if err != nil {
		return model.Time{}, err
	}
	switch caller.Group {
	case model.GroupAdmin, model.GroupManager, model.GroupPersonnel:
	default:
		return model.Time{}, ErrUnauthorized
	}
	privileged := caller.Group == model.GroupAdmin || caller.Group == model.GroupManager
	if !privileged && p.Registrant != nil && *p.Registrant != caller.ID {
		return model.Time{}, validationf("You may not register a new time under a different user")
	}

	registrant := caller.ID
	if p.Registrant != nil {
		registrant = *p.Registrant
	}
	if _, err := s.resolveOwnedRoom(caller, p.Room); err != nil {
		return model.Time{}, err
	}

	t := model.Time{
		ID:         uuid.NewString(),
		Room:       p.Room,
		Registrant: registrant,
		Start:      p.Start,
		End:        p.End,
	}
	if err := s.validateTime(t); err != nil {
		return model.Time{}, err
	}
	s.store.PutTime(t)
	if err := s.store.Save(); err != nil {
		return model.Time{}, err
	}
	return t, nil
}

// ListTimes returns every reservation in the given room. Any role may
// list, subject to tenant ownership of the room.
func (s *Service) ListTimes(callerID, roomID string) ([]model.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	caller, err := s.caller(callerID)
	if err != nil {
		return nil, err
	}
	if _, err := s.resolveOwnedRoom(caller, roomID); err != nil {
		return nil, err
	}

	times := make([]model.Time, 0)
	for _, t := range s.store.Times() {
		if t.Room == roomID {
			times = append(times, t)
		}
	}
	return times, nil
}

// UpdateTime replaces the reservation under id. Personnel may only touch
// reservations they registered themselves, and may not hand them to
// another registrant.
func (s *Service) UpdateTime(callerID, id string, p TimeParams) (model.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	caller, err := s.caller(callerID)
	if err != nil {
		return model.Time{}, err
	}
	switch caller.Group {
	case model.GroupAdmin, model.GroupManager, model.GroupPersonnel:
	default:
		return model.Time{}, ErrUnauthorized
	}

	t, err := s.resolveOwnedTime(caller, id)
	if err != nil {
		return model.Time{}, err
	}
	privileged := caller.Group == model.GroupAdmin || caller.Group == model.GroupManager
	if !privileged {
		if t.Registrant != caller.ID {
			return model.Time{}, validationf("You may not change details of registered times you did not create")
		}
		if p.Registrant != nil && *p.Registrant != caller.ID {
			return model.Time{}, validationf("You may not change the registrant of your own time")
		}
	}

	// The replacement may name a different room; it gets the same
	// ownership check as the original so a reservation can never be moved
	// into a room outside the caller's tenant or into a room that does
	// not exist.
	if p.Room != t.Room {
		if _, err := s.resolveOwnedRoom(caller, p.Room); err != nil {
			return model.Time{}, err
		}
	}

	registrant := t.Registrant
	if p.Registrant != nil {
		registrant = *p.Registrant
	}
	updated := model.Time{
		ID:         t.ID,
		Room:       p.Room,
		Registrant: registrant,
		Start:      p.Start,
		End:        p.End,
	}
	if err := s.validateTime(updated); err != nil {
		return model.Time{}, err
	}
	s.store.PutTime(updated)
	if err := s.store.Save(); err != nil {
		return model.Time{}, err
	}
	return updated, nil
}

// DeleteTime deletes the reservation under id. Personnel may only delete
// reservations they registered themselves.
func (s *Service) DeleteTime(callerID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	caller, err := s.caller(callerID)
	if err != nil {
		return err
	}
	switch caller.Group {
	case model.GroupAdmin, model.GroupManager, model.GroupPersonnel:
	default:
		return ErrUnauthorized
	}

	t, err := s.resolveOwnedTime(caller, id)
	if err != nil {
		return err
	}
	privileged := caller.Group == model.GroupAdmin || caller.Group == model.GroupManager
	if !privileged && t.Registrant != caller.ID {
		return validationf("You may not delete registered times you did not create")
	}

	s.store.DeleteTime(t.ID)
	return s.store.Save()
}
