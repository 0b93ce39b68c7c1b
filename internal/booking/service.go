// Package booking implements the scheduling core: role-gated CRUD over
// universities, rooms, users and time reservations, tenant-scoped
// ownership resolution, invariant validation and cascading deletes.
package booking

import (
	"sync"

	"campus-booking-backend/internal/auth"
	"campus-booking-backend/internal/model"
	"campus-booking-backend/internal/store"
)

// Service owns the document store and runs every operation in the order:
// resolve caller, check role, resolve ownership, validate, mutate, save.
type Service struct {
	// mu serializes all operations. The store's read-check-write sequences
	// are not isolated on their own, so without this two concurrent
	// creates could both pass validation and persist overlapping times.
	mu         sync.Mutex
	store      store.Store
	bcryptCost int
}

// NewService creates a Service over the given store.
func NewService(s store.Store, bcryptCost int) *Service {
	return &Service{store: s, bcryptCost: bcryptCost}
}

// caller resolves a token subject to a user record. A subject whose user
// was deleted after the token was minted fails authentication, not
// authorization. Callers must hold s.mu.
func (s *Service) caller(id string) (model.User, error) {
	u, ok := s.store.User(id)
	if !ok {
		return model.User{}, auth.ErrInvalidCredentials
	}
	return u.User, nil
}

// Authenticate checks a username/password pair and returns the matching
// user. The error is identical for an unknown username and a wrong
// password.
func (s *Service) Authenticate(username, password string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.store.Users() {
		if u.Username == username {
			if !auth.VerifyPassword(u.HashedPassword, password) {
				break
			}
			return u.User, nil
		}
	}
	return model.User{}, validationf("Incorrect username or password")
}

// Me returns the caller's own user record.
func (s *Service) Me(callerID string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.caller(callerID)
}

// HashPassword hashes a plaintext password and persists the document. The
// save looks gratuitous but doubles as the bootstrap call that creates the
// database file before the first user exists.
func (s *Service) HashPassword(password string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hashed, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return "", err
	}
	if err := s.store.Save(); err != nil {
		return "", err
	}
	return hashed, nil
}

// sameUniversity reports whether the caller belongs to the given
// university. Admins carry no university, so this is always false for
// them; admin access is decided before tenancy is consulted.
func sameUniversity(caller model.User, universityID string) bool {
	return caller.University != nil && *caller.University == universityID
}
