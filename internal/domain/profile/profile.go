// Package profile defines the requester profile driving personalization.
package profile

// Unset is the sentinel for profile fields the user never filled in.
const Unset = "未设置"

// Role is the requester's role at the university.
type Role string

const (
	// RoleTeacher is the teaching/research staff role.
	RoleTeacher Role = "教师"
	// RoleUndergraduate is the undergraduate student role.
	RoleUndergraduate Role = "本科生"
	// RoleGraduate is the master's student role.
	RoleGraduate Role = "研究生"
	// RoleDoctoral is the doctoral student role.
	RoleDoctoral Role = "博士生"
	// RoleUnset means no role information is available.
	RoleUnset Role = Unset
)

// ParseRole maps a stored role string to a Role. Unknown or empty strings
// parse as RoleUnset rather than erroring.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleTeacher, RoleUndergraduate, RoleGraduate, RoleDoctoral:
		return Role(s)
	}
	return RoleUnset
}

// IsStudent reports whether r is any of the student roles.
func (r Role) IsStudent() bool {
	return r == RoleUndergraduate || r == RoleGraduate || r == RoleDoctoral
}

// Profile is one user's personalization profile. Immutable for the duration
// of a ranking pass.
type Profile struct {
	Username string
	Role     Role
	College  string
	Major    string
	Grade    string
	Research string
}

// HasCollege reports whether the profile carries a usable college affiliation.
func (p *Profile) HasCollege() bool {
	return p.College != "" && p.College != Unset
}
