package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-booking-backend/internal/auth"
	"campus-booking-backend/internal/model"
)

func validNewUser(username string) NewUser {
	return NewUser{
		Username:             username,
		Group:                model.GroupManager,
		University:           strPtr("uni-1"),
		Password:             "secret",
		PasswordConfirmation: "secret",
	}
}

func TestUserOperationsRequireAdmin(t *testing.T) {
	svc, st := newTestService(t)
	seedTenant(st, "uni-1", "MIT")
	seedUser(st, "manager-1", "mallory", model.GroupManager, strPtr("uni-1"))
	seedUser(st, "personnel-1", "pat", model.GroupPersonnel, strPtr("uni-1"))
	seedUser(st, "user-1", "uma", model.GroupUser, strPtr("uni-1"))

	for _, callerID := range []string{"manager-1", "personnel-1", "user-1"} {
		_, err := svc.CreateUser(callerID, validNewUser("newbie"))
		assert.ErrorIs(t, err, ErrUnauthorized, "create as %s", callerID)

		_, err = svc.ListUsers(callerID)
		assert.ErrorIs(t, err, ErrUnauthorized, "list as %s", callerID)

		_, err = svc.UpdateUser(callerID, "user-1", validNewUser("uma"))
		assert.ErrorIs(t, err, ErrUnauthorized, "update as %s", callerID)

		err = svc.DeleteUser(callerID, "user-1")
		assert.ErrorIs(t, err, ErrUnauthorized, "delete as %s", callerID)
	}
}

func TestCreateUser(t *testing.T) {
	svc, st := newTestService(t)
	seedTenant(st, "uni-1", "MIT")
	seedUser(st, "admin-1", "root", model.GroupAdmin, nil)

	user, err := svc.CreateUser("admin-1", validNewUser("alice"))
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, model.GroupManager, user.Group)

	// The password made it into the stored record as a hash, and the
	// plaintext authenticates.
	authenticated, err := svc.Authenticate("alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authenticated.ID)
}

func TestCreateUserRejectsPasswordMismatch(t *testing.T) {
	svc, st := newTestService(t)
	seedTenant(st, "uni-1", "MIT")
	seedUser(st, "admin-1", "root", model.GroupAdmin, nil)

	nu := validNewUser("alice")
	nu.PasswordConfirmation = "different"
	_, err := svc.CreateUser("admin-1", nu)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Passwords do not match", validationErr.Detail)
}

func TestCreateUserRejectsDuplicateUsername(t *testing.T) {
	svc, st := newTestService(t)
	seedTenant(st, "uni-1", "MIT")
	seedUser(st, "admin-1", "root", model.GroupAdmin, nil)
	seedUser(st, "existing", "alice", model.GroupUser, strPtr("uni-1"))

	_, err := svc.CreateUser("admin-1", validNewUser("alice"))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "User with name 'alice' already exists", validationErr.Detail)
}

func TestCreateUserTenancyRules(t *testing.T) {
	svc, st := newTestService(t)
	seedTenant(st, "uni-1", "MIT")
	seedUser(st, "admin-1", "root", model.GroupAdmin, nil)

	t.Run("admin must not carry a university", func(t *testing.T) {
		nu := validNewUser("second-admin")
		nu.Group = model.GroupAdmin
		_, err := svc.CreateUser("admin-1", nu)
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Admin users cannot be associated with a university", validationErr.Detail)
	})

	t.Run("admin without university is fine", func(t *testing.T) {
		nu := validNewUser("second-admin")
		nu.Group = model.GroupAdmin
		nu.University = nil
		_, err := svc.CreateUser("admin-1", nu)
		assert.NoError(t, err)
	})

	t.Run("non-admin needs a university", func(t *testing.T) {
		nu := validNewUser("bob")
		nu.University = nil
		_, err := svc.CreateUser("admin-1", nu)
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Users of group 'manager' must be associated with an existing university", validationErr.Detail)
	})

	t.Run("non-admin university must exist", func(t *testing.T) {
		nu := validNewUser("bob")
		nu.University = strPtr("no-such-university")
		_, err := svc.CreateUser("admin-1", nu)
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Users of group 'manager' must be associated with an existing university", validationErr.Detail)
	})
}

func TestCreateUserRejectsUnknownGroup(t *testing.T) {
	svc, st := newTestService(t)
	seedTenant(st, "uni-1", "MIT")
	seedUser(st, "admin-1", "root", model.GroupAdmin, nil)

	nu := validNewUser("bob")
	nu.Group = model.Group("superuser")
	_, err := svc.CreateUser("admin-1", nu)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestUpdateUserReplacesRecord(t *testing.T) {
	svc, st := newTestService(t)
	seedTenant(st, "uni-1", "MIT")
	seedUser(st, "admin-1", "root", model.GroupAdmin, nil)

	created, err := svc.CreateUser("admin-1", validNewUser("alice"))
	require.NoError(t, err)

	update := validNewUser("alice-renamed")
	update.Group = model.GroupPersonnel
	update.Password = "newsecret"
	update.PasswordConfirmation = "newsecret"
	updated, err := svc.UpdateUser("admin-1", created.ID, update)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, model.GroupPersonnel, updated.Group)

	// Update is a full replacement including the password.
	_, err = svc.Authenticate("alice-renamed", "secret")
	assert.Error(t, err)
	_, err = svc.Authenticate("alice-renamed", "newsecret")
	assert.NoError(t, err)
}

func TestUpdateUserUnknownID(t *testing.T) {
	svc, st := newTestService(t)
	seedTenant(st, "uni-1", "MIT")
	seedUser(st, "admin-1", "root", model.GroupAdmin, nil)

	_, err := svc.UpdateUser("admin-1", "ghost", validNewUser("alice"))
	assert.EqualError(t, err, "No user with the id 'ghost' found")
}

func TestDeleteUser(t *testing.T) {
	svc, st := newTestService(t)
	seedTenant(st, "uni-1", "MIT")
	seedUser(st, "admin-1", "root", model.GroupAdmin, nil)
	seedUser(st, "user-1", "uma", model.GroupUser, strPtr("uni-1"))

	require.NoError(t, svc.DeleteUser("admin-1", "user-1"))

	users, err := svc.ListUsers("admin-1")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "admin-1", users[0].ID)
}

func TestAdminCannotDeleteOwnAccount(t *testing.T) {
	svc, st := newTestService(t)
	seedUser(st, "admin-1", "root", model.GroupAdmin, nil)

	err := svc.DeleteUser("admin-1", "admin-1")

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Cannot delete your own user account", validationErr.Detail)
}

func TestAuthenticateUniformFailure(t *testing.T) {
	svc, st := newTestService(t)
	seedTenant(st, "uni-1", "MIT")
	seedUser(st, "admin-1", "root", model.GroupAdmin, nil)
	_, err := svc.CreateUser("admin-1", validNewUser("alice"))
	require.NoError(t, err)

	// Unknown username and wrong password fail identically, so callers
	// cannot probe which usernames exist.
	_, unknownErr := svc.Authenticate("nobody", "secret")
	_, wrongErr := svc.Authenticate("alice", "wrong")
	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	assert.Equal(t, "Incorrect username or password", unknownErr.Error())
}

func TestListUsersOmitsPasswordHashes(t *testing.T) {
	svc, st := newTestService(t)
	seedTenant(st, "uni-1", "MIT")
	seedUser(st, "admin-1", "root", model.GroupAdmin, nil)
	_, err := svc.CreateUser("admin-1", validNewUser("alice"))
	require.NoError(t, err)

	users, err := svc.ListUsers("admin-1")
	require.NoError(t, err)
	// The list carries public records only; hashes stay in the store.
	assert.IsType(t, []model.User{}, users)
	assert.Len(t, users, 2)
}

func TestDeletedCallerFailsAuthentication(t *testing.T) {
	svc, st := newTestService(t)
	seedUser(st, "admin-1", "root", model.GroupAdmin, nil)

	st.DeleteUser("admin-1")

	_, err := svc.Me("admin-1")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}
