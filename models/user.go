package models

import (
	"strings"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

// NewUser builds a session user from an email address. The display name is
// the email local-part; the role is decided by the caller's authorization
// policy, never inferred here.
func NewUser(email string, admin bool) User {
	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}
	u := User{
		ID:    "user-" + uuid.NewString(),
		Name:  name,
		Email: email,
		Role:  RoleUser,
	}
	if admin {
		u.ID = "admin-" + uuid.NewString()
		u.Role = RoleAdmin
	}
	return u
}
