package domain

// Role is a member's role within one scope (organization or team).
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// ManagerRoles may mint invitations and change memberships.
var ManagerRoles = []Role{RoleOwner, RoleAdmin}

func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// In reports whether r is one of roles.
func (r Role) In(roles ...Role) bool {
	for _, want := range roles {
		if r == want {
			return true
		}
	}
	return false
}
