// Package entity contains the core business objects of the project.
package entity

// Role represents the side of the mentoring relationship a user is on.
// It is fixed at registration and never changes afterwards.
type Role string

const (
	// RoleMentor indicates a user who offers mentoring.
	RoleMentor Role = "mentor"
	// RoleMentee indicates a user who is looking for a mentor.
	RoleMentee Role = "mentee"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleMentor, RoleMentee:
		return true
	default:
		return false
	}
}

// ParseRole converts a raw string to a Role.
// The second return value reports whether the string names a known role.
func ParseRole(s string) (Role, bool) {
	role := Role(s)

	return role, role.IsValid()
}
