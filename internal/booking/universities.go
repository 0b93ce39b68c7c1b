package booking

import (
	"github.com/google/uuid"

	"campus-booking-backend/internal/model"
)

// CreateUniversity creates a university. Admin only.
func (s *Service) CreateUniversity(callerID, name string) (model.University, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	caller, err := s.caller(callerID)
	if err != nil {
		return model.University{}, err
	}
	if caller.Group != model.GroupAdmin {
		return model.University{}, ErrUnauthorized
	}

	university := model.University{ID: uuid.NewString(), Name: name}
	if err := s.validateUniversity(university); err != nil {
		return model.University{}, err
	}
	s.store.PutUniversity(university)
	if err := s.store.Save(); err != nil {
		return model.University{}, err
	}
	return university, nil
}

// ListUniversities returns all universities. Admin only.
func (s *Service) ListUniversities(callerID string) ([]model.University, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	caller, err := s.caller(callerID)
	if err != nil {
		return nil, err
	}
	if caller.Group != model.GroupAdmin {
		return nil, ErrUnauthorized
	}
	return s.store.Universities(), nil
}

// UpdateUniversity replaces the university record under id. Admin only.
func (s *Service) UpdateUniversity(callerID, id, name string) (model.University, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	caller, err := s.caller(callerID)
	if err != nil {
		return model.University{}, err
	}
	if caller.Group != model.GroupAdmin {
		return model.University{}, ErrUnauthorized
	}
	if _, ok := s.store.University(id); !ok {
		return model.University{}, validationf("University with id '%s' does not exist", id)
	}

	university := model.University{ID: id, Name: name}
	if err := s.validateUniversity(university); err != nil {
		return model.University{}, err
	}
	s.store.PutUniversity(university)
	if err := s.store.Save(); err != nil {
		return model.University{}, err
	}
	return university, nil
}

// DeleteUniversity deletes a university together with its rooms, their
// reservations, and every user scoped to it, as one durable write. Admin
// only.
func (s *Service) DeleteUniversity(callerID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	caller, err := s.caller(callerID)
	if err != nil {
		return err
	}
	if caller.Group != model.GroupAdmin {
		return ErrUnauthorized
	}
	if _, ok := s.store.University(id); !ok {
		return validationf("University with id '%s' does not exist", id)
	}

	s.deleteUniversityCascade(id)
	return s.store.Save()
}
