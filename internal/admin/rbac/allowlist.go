package rbac

import "strings"

// breakGlassEmails are identities that always resolve to super_admin, no
// matter what the admins collection says. They exist so that a corrupted or
// emptied role column can never lock everyone out. The compiled-in entries
// are the floor; deployments may append more via configuration at startup,
// but nothing removes these.
var breakGlassEmails = []string{
	"lisa@buffalosolar.com",
}

// Allowlist is the set of break-glass identities, canonicalized at
// construction and immutable afterwards.
type Allowlist struct {
	emails map[string]struct{}
}

// NewAllowlist builds an Allowlist from the compiled-in break-glass entries
// plus any extra configured emails.
func NewAllowlist(extra ...string) Allowlist {
	emails := make(map[string]struct{}, len(breakGlassEmails)+len(extra))
	for _, e := range breakGlassEmails {
		emails[canonical(e)] = struct{}{}
	}
	for _, e := range extra {
		if e = canonical(e); e != "" {
			emails[e] = struct{}{}
		}
	}
	return Allowlist{emails: emails}
}

// Contains reports whether the email is a break-glass identity.
func (a Allowlist) Contains(email string) bool {
	_, ok := a.emails[canonical(email)]
	return ok
}

// EffectiveRole decides what an authenticated identity may do.
//
// Precedence:
//  1. no email at all falls back to the lowest-privilege role;
//  2. allowlisted emails are always super_admin, overriding any stored role;
//  3. otherwise the persisted role, defaulting to admin for records created
//     before roles were tagged.
func (a Allowlist) EffectiveRole(email string, persisted Role) Role {
	if canonical(email) == "" {
		return RoleOperations
	}
	if a.Contains(email) {
		return RoleSuperAdmin
	}
	if persisted.Valid() {
		return persisted
	}
	return RoleAdmin
}

func canonical(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
