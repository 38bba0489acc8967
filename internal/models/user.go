// Package models defines the records managed by the registries: users,
// items and item categories.
package models

import "crypto/subtle"

// Role tags a user record with its capabilities.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

const (
	// FirstUserID is the first id handed out to a registered user.
	FirstUserID int64 = 100000000

	// AdminID is the fixed id of the bootstrap administrator.
	AdminID int64 = 1

	DefaultUserPassword  = "user123"
	DefaultAdminPassword = "admin123"
)

// User is a registered account. Administrators are ordinary records with
// Role set to RoleAdmin.
type User struct {
	ID       int64
	Name     string `validate:"required"`
	Address  string `validate:"required"`
	Phone    string `validate:"required"`
	Email    string `validate:"required"`
	Password string
	Role     Role
	Verified bool
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Verify marks the user as approved. Calling it again has no effect.
func (u *User) Verify() {
	u.Verified = true
}

// SetPassword replaces the password unconditionally.
func (u *User) SetPassword(password string) {
	u.Password = password
}

// CheckPassword reports whether candidate equals the stored password.
func (u *User) CheckPassword(candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(u.Password), []byte(candidate)) == 1
}

// CanLogin reports whether the account may open a session: admins always,
// regular users only after verification.
func (u *User) CanLogin() bool {
	return u.IsAdmin() || u.Verified
}
