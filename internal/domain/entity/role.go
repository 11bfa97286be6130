// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role is a permission carried in an access token.
type Role string

const (
	// RoleUser can manage their own notes.
	RoleUser Role = "user"
	// RoleAdmin may also read service-wide note statistics.
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

// ParseRole reports whether s names a known role.
func ParseRole(s string) (Role, bool) {
	switch role := Role(s); role {
	case RoleUser, RoleAdmin:
		return role, true
	}

	return "", false
}

// Roles is the set of roles granted to one caller.
type Roles []Role

// ParseRoles keeps the known roles of ss in order, once each.
func ParseRoles(ss []string) Roles {
	roles := make(Roles, 0, len(ss))
	for _, s := range ss {
		if role, ok := ParseRole(s); ok && !roles.Has(role) {
			roles = append(roles, role)
		}
	}

	return roles
}

// Has reports whether role was granted.
func (rs Roles) Has(role Role) bool {
	return slices.Contains(rs, role)
}

// Strings is the token claim form of rs.
func (rs Roles) Strings() []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.String())
	}

	return out
}
