package middleware

import "github.com/Shubham-3256/millets-cafe/internal/core/domain"

// roleSet is an exact-membership set of roles. There is no hierarchy: a route
// open to users and admins lists both.
type roleSet map[domain.Role]struct{}

func newRoleSet(roles ...domain.Role) roleSet {
	set := make(roleSet, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}

// allows reports whether role is a member. An empty set admits any
// authenticated caller.
func (s roleSet) allows(role domain.Role) bool {
	if len(s) == 0 {
		return true
	}
	_, ok := s[role]
	return ok
}
