// Package entity contains the core business objects of the project.
package entity

// Role represents the authorization role of a user.
type Role string

const (
	// RoleUser indicates a regular viewer account.
	RoleUser Role = "user"
	// RoleAdmin indicates an operator account.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}
