package model

import "time"

// Role is the authorization tier of a user. It is a closed enumeration;
// anything outside the three constants is rejected at the boundary.
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// User represents an account in the system, identified by email.
type User struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Username  string    `json:"username" gorm:"uniqueIndex;size:150;not null"`
	FirstName string    `json:"first_name" gorm:"size:150"`
	LastName  string    `json:"last_name" gorm:"size:150"`
	Bio       string    `json:"bio" gorm:"size:50"`
	Role      Role      `json:"role" gorm:"type:varchar(20);not null;default:'user'"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// IsAdmin reports whether the user holds the admin role. Derived from Role
// on every call so a role change can never leave a stale flag behind.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsModerator reports whether the user holds the moderator role.
func (u *User) IsModerator() bool {
	return u.Role == RoleModerator
}
