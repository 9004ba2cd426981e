package models

// UserRole is what an access code unlocks.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleCaptain UserRole = "captain"
)

// Valid reports whether r is a known role.
func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleCaptain
}
