package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-booking-backend/internal/model"
)

func TestUniversityOperationsRequireAdmin(t *testing.T) {
	svc, st := newTestService(t)
	seedTenant(st, "uni-1", "MIT")
	seedUser(st, "manager-1", "alice", model.GroupManager, strPtr("uni-1"))

	_, err := svc.CreateUniversity("manager-1", "Stanford")
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = svc.ListUniversities("manager-1")
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = svc.UpdateUniversity("manager-1", "uni-1", "MIT Renamed")
	assert.ErrorIs(t, err, ErrUnauthorized)
	err = svc.DeleteUniversity("manager-1", "uni-1")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestCreateUniversityRejectsDuplicateName(t *testing.T) {
	svc, st := newTestService(t)
	seedUser(st, "admin-1", "root", model.GroupAdmin, nil)

	created, err := svc.CreateUniversity("admin-1", "MIT")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	_, err = svc.CreateUniversity("admin-1", "MIT")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "University with name 'MIT' already exists", validationErr.Detail)
}

func TestUpdateUniversity(t *testing.T) {
	svc, st := newTestService(t)
	seedTenant(st, "uni-1", "MIT")
	seedUser(st, "admin-1", "root", model.GroupAdmin, nil)

	updated, err := svc.UpdateUniversity("admin-1", "uni-1", "MIT Renamed")
	require.NoError(t, err)
	assert.Equal(t, "uni-1", updated.ID)
	assert.Equal(t, "MIT Renamed", updated.Name)

	// Renaming to its own current name is not a duplicate.
	_, err = svc.UpdateUniversity("admin-1", "uni-1", "MIT Renamed")
	assert.NoError(t, err)

	_, err = svc.UpdateUniversity("admin-1", "ghost", "Anything")
	assert.EqualError(t, err, "University with id 'ghost' does not exist")
}

func TestDeleteUniversityCascades(t *testing.T) {
	svc, st := newTestService(t)
	seedTenant(st, "uni-1", "MIT")
	seedTenant(st, "uni-2", "Stanford")
	seedUser(st, "admin-1", "root", model.GroupAdmin, nil)
	seedUser(st, "manager-1", "alice", model.GroupManager, strPtr("uni-1"))
	seedUser(st, "manager-2", "bob", model.GroupManager, strPtr("uni-2"))
	seedRoom(st, "room-1", "uni-1", "101")
	seedRoom(st, "room-2", "uni-2", "201")
	st.PutTime(model.Time{ID: "time-1", Room: "room-1", Registrant: "manager-1", Start: at(9, 0), End: at(10, 0)})
	st.PutTime(model.Time{ID: "time-2", Room: "room-2", Registrant: "manager-2", Start: at(9, 0), End: at(10, 0)})

	st.saves = 0
	require.NoError(t, svc.DeleteUniversity("admin-1", "uni-1"))

	// University, its room, the room's reservation and its manager are all
	// gone, committed as one durable write.
	assert.Equal(t, 1, st.saves)
	_, ok := st.University("uni-1")
	assert.False(t, ok)
	_, ok = st.Room("room-1")
	assert.False(t, ok)
	_, ok = st.Time("time-1")
	assert.False(t, ok)
	_, ok = st.User("manager-1")
	assert.False(t, ok)

	// The other tenant is untouched, and so is the admin.
	_, ok = st.University("uni-2")
	assert.True(t, ok)
	_, ok = st.Room("room-2")
	assert.True(t, ok)
	_, ok = st.Time("time-2")
	assert.True(t, ok)
	_, ok = st.User("manager-2")
	assert.True(t, ok)
	_, ok = st.User("admin-1")
	assert.True(t, ok)
}

func TestDeleteRoomCascadesToTimes(t *testing.T) {
	svc, st := newTestService(t)
	seedTenant(st, "uni-1", "MIT")
	seedUser(st, "admin-1", "root", model.GroupAdmin, nil)
	seedRoom(st, "room-1", "uni-1", "101")
	seedRoom(st, "room-2", "uni-1", "102")
	st.PutTime(model.Time{ID: "time-1", Room: "room-1", Registrant: "admin-1", Start: at(9, 0), End: at(10, 0)})
	st.PutTime(model.Time{ID: "time-2", Room: "room-2", Registrant: "admin-1", Start: at(9, 0), End: at(10, 0)})

	st.saves = 0
	require.NoError(t, svc.DeleteRoom("admin-1", "room-1"))

	assert.Equal(t, 1, st.saves)
	_, ok := st.Room("room-1")
	assert.False(t, ok)
	_, ok = st.Time("time-1")
	assert.False(t, ok)
	_, ok = st.Time("time-2")
	assert.True(t, ok)
}

func TestDeleteUniversityUnknownID(t *testing.T) {
	svc, st := newTestService(t)
	seedUser(st, "admin-1", "root", model.GroupAdmin, nil)

	err := svc.DeleteUniversity("admin-1", "ghost")
	assert.EqualError(t, err, "University with id 'ghost' does not exist")
}

func TestListIsReadOnly(t *testing.T) {
	svc, st := newTestService(t)
	seedTenant(st, "uni-1", "MIT")
	seedUser(st, "admin-1", "root", model.GroupAdmin, nil)
	seedRoom(st, "room-1", "uni-1", "101")

	st.saves = 0
	_, err := svc.ListUniversities("admin-1")
	require.NoError(t, err)
	_, err = svc.ListUsers("admin-1")
	require.NoError(t, err)
	_, _, err = svc.ListRooms("admin-1")
	require.NoError(t, err)
	_, err = svc.ListTimes("admin-1", "room-1")
	require.NoError(t, err)

	assert.Equal(t, 0, st.saves, "list operations never touch disk")
}
