// Package rbac is the static role and permission catalog for the admin
// center. Everything in here is a pure, compile-time lookup: no I/O, no
// mutable state. Changing roles or permissions means redeploying the service.
package rbac

// Role is a named authorization level, totally ordered by hierarchy rank.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleOperations Role = "operations"
)

// roleHierarchy ranks roles; a higher number means more access.
var roleHierarchy = map[Role]int{
	RoleSuperAdmin: 3,
	RoleAdmin:      2,
	RoleOperations: 1,
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	_, ok := roleHierarchy[r]
	return ok
}

// Level returns the hierarchy rank of r, or 0 for unknown roles so they
// always sort below every real role.
func (r Role) Level() int {
	return roleHierarchy[r]
}

// DisplayName returns the human-readable role name.
func (r Role) DisplayName() string {
	switch r {
	case RoleSuperAdmin:
		return "Super Admin"
	case RoleAdmin:
		return "Admin"
	case RoleOperations:
		return "Operations"
	default:
		return string(r)
	}
}

// Roles lists every role ordered from highest to lowest rank.
func Roles() []Role {
	return []Role{RoleSuperAdmin, RoleAdmin, RoleOperations}
}

// CanManageRole reports whether an actor may invite or assign the target
// role. An actor may only manage roles at their level or below; nobody can
// hand out more privilege than they hold.
func CanManageRole(actor, target Role) bool {
	return actor.Valid() && target.Valid() && actor.Level() >= target.Level()
}

// InvitableRoles returns every role the actor may invite, highest rank first.
func InvitableRoles(actor Role) []Role {
	var out []Role
	for _, r := range Roles() {
		if r.Level() <= actor.Level() {
			out = append(out, r)
		}
	}
	return out
}
