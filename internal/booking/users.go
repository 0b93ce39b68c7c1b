package booking

import (
	"github.com/google/uuid"

	"campus-booking-backend/internal/auth"
	"campus-booking-backend/internal/model"
)

// NewUser carries the externally supplied fields for creating or fully
// replacing a user. Updates are whole-record replacements; profile changes
// and password changes are the same operation.
type NewUser struct {
	Username             string
	Group                model.Group
	University           *string
	Password             string
	PasswordConfirmation string
}

// buildUser turns a NewUser into a stored record under the given id,
// hashing the password after the confirmation check.
func (s *Service) buildUser(id string, nu NewUser) (model.StoredUser, error) {
	if nu.Password != nu.PasswordConfirmation {
		return model.StoredUser{}, validationf("Passwords do not match")
	}
	if !nu.Group.Valid() {
		return model.StoredUser{}, validationf("Invalid user group '%s'", nu.Group)
	}
	hashed, err := auth.HashPassword(nu.Password, s.bcryptCost)
	if err != nil {
		return model.StoredUser{}, err
	}
	return model.StoredUser{
		User: model.User{
			ID:         id,
			Username:   nu.Username,
			Group:      nu.Group,
			University: nu.University,
		},
		HashedPassword: hashed,
	}, nil
}

// CreateUser creates a user. Admin only.
func (s *Service) CreateUser(callerID string, nu NewUser) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	caller, err := s.caller(callerID)
	if err != nil {
		return model.User{}, err
	}
	if caller.Group != model.GroupAdmin {
		return model.User{}, ErrUnauthorized
	}

	stored, err := s.buildUser(uuid.NewString(), nu)
	if err != nil {
		return model.User{}, err
	}
	if err := s.validateUser(stored.User); err != nil {
		return model.User{}, err
	}
	s.store.PutUser(stored)
	if err := s.store.Save(); err != nil {
		return model.User{}, err
	}
	return stored.User, nil
}

// ListUsers returns all users without password hashes. Admin only.
func (s *Service) ListUsers(callerID string) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	caller, err := s.caller(callerID)
	if err != nil {
		return nil, err
	}
	if caller.Group != model.GroupAdmin {
		return nil, ErrUnauthorized
	}

	stored := s.store.Users()
	users := make([]model.User, 0, len(stored))
	for _, u := range stored {
		users = append(users, u.User)
	}
	return users, nil
}

// UpdateUser replaces the user record under id. Admin only.
func (s *Service) UpdateUser(callerID, id string, nu NewUser) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	caller, err := s.caller(callerID)
	if err != nil {
		return model.User{}, err
	}
	if caller.Group != model.GroupAdmin {
		return model.User{}, ErrUnauthorized
	}
	if _, ok := s.store.User(id); !ok {
		return model.User{}, notFound("user", id)
	}

	stored, err := s.buildUser(id, nu)
	if err != nil {
		return model.User{}, err
	}
	if err := s.validateUser(stored.User); err != nil {
		return model.User{}, err
	}
	s.store.PutUser(stored)
	if err := s.store.Save(); err != nil {
		return model.User{}, err
	}
	return stored.User, nil
}

// DeleteUser deletes the user under id. Admin only; admins cannot delete
// their own account.
func (s *Service) DeleteUser(callerID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	caller, err := s.caller(callerID)
	if err != nil {
		return err
	}
	if caller.Group != model.GroupAdmin {
		return ErrUnauthorized
	}
	if caller.ID == id {
		return validationf("Cannot delete your own user account")
	}
	if _, ok := s.store.User(id); !ok {
		return notFound("user", id)
	}

	s.store.DeleteUser(id)
	return s.store.Save()
}
