package booking

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"campus-booking-backend/internal/model"
	"campus-booking-backend/internal/store"
)

// countingStore wraps a Store and counts durable flushes, so tests can
// assert that a cascading operation commits exactly once.
type countingStore struct {
	store.Store
	saves int
}

func (s *countingStore) Save() error {
	s.saves++
	return s.Store.Save()
}

func newTestService(t *testing.T) (*Service, *countingStore) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "database.json"))
	require.NoError(t, err)
	counting := &countingStore{Store: st}
	return NewService(counting, bcrypt.MinCost), counting
}

func seedUser(st store.Store, id, username string, group model.Group, university *string) {
	st.PutUser(model.StoredUser{
		User:           model.User{ID: id, Username: username, Group: group, University: university},
		HashedPassword: "seeded",
	})
}

func seedTenant(st store.Store, universityID, name string) {
	st.PutUniversity(model.University{ID: universityID, Name: name})
}

func seedRoom(st store.Store, id, universityID, name string) {
	st.PutRoom(model.Room{ID: id, University: universityID, Name: name})
}

func strPtr(s string) *string { return &s }

var testDay = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return testDay.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}
