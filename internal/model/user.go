package model

// Group is the role a user acts under.
type Group string

const (
	GroupAdmin     Group = "admin"
	GroupManager   Group = "manager"
	GroupPersonnel Group = "personnel"
	GroupUser      Group = "user"
)

// Valid reports whether g is one of the four known roles.
func (g Group) Valid() bool {
	switch g {
	case GroupAdmin, GroupManager, GroupPersonnel, GroupUser:
		return true
	}
	return false
}

// User is the public representation of an account. University is nil only
// for admins, who are not scoped to any tenant.
type User struct {
	ID         string  `json:"id"`
	Username   string  `json:"username"`
	Group      Group   `json:"group"`
	University *string `json:"university"`
}

// StoredUser is the persisted form of a user, including the password hash.
// It is never returned from the API.
type StoredUser struct {
	User
	HashedPassword string `json:"hashed_password"`
}
