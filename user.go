package nexo

import "github.com/google/uuid"

// Role is the authorization level of a user.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ParseRole parses a role string.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleUser:
		return Role(s), true
	}
	return "", false
}

// User is a directory record. The password is stored in plain text: this is
// a demo store and real credential handling is explicitly out of scope.
type User struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	Phone              string `json:"phone,omitempty"`
	Password           string `json:"password"`
	Active             bool   `json:"active"`
	Role               Role   `json:"role"`
	HasPaid            bool   `json:"hasPaid"`
	OnboardingComplete bool   `json:"onboardingComplete"`
}

// NewUser creates an active, role-user directory record with a fresh id.
func NewUser(name, email, phone, password string) User {
	return User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Phone:    phone,
		Password: password,
		Active:   true,
		Role:     RoleUser,
	}
}

// IsAdmin reports whether the user carries the admin role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }
