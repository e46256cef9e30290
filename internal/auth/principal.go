// Package auth carries the identity of the authenticated caller through an
// operation. Authentication itself happens upstream of this core; a Principal
// is resolved once per operation from the transport layer and passed as an
// explicit argument into every policy and lifecycle call, never looked up via
// ambient state.
package auth

// Role defines the access level of a principal.
type Role int

// not using iota intentionally, since the values appear in log output and
// account records.
const (
	RoleUnknown        Role = 0
	RoleUser           Role = 1
	RoleContentManager Role = 2
	RoleAdmin          Role = 3
)

var Map = map[string]Role{
	"unknown": RoleUnknown,
	"user":    RoleUser,
	"cm":      RoleContentManager,
	"admin":   RoleAdmin,
}

func (r Role) String() string {
	return [...]string{
		"unknown",
		"user",
		"cm",
		"admin",
	}[r]
}

// Principal is the authenticated caller of an operation. It is immutable for
// the operation's duration and never persisted by this core.
type Principal struct {
	// AccountId is the principal's account identifier.
	AccountId string

	// Role is the principal's access level.
	Role Role
}

// NewPrincipal creates a Principal for the given account and role.
func NewPrincipal(accountId string, role Role) Principal {
	return Principal{AccountId: accountId, Role: role}
}

// IsAdmin reports whether the principal holds the administrator role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// IsContentManager reports whether the principal holds the content manager
// role.
func (p Principal) IsContentManager() bool {
	return p.Role == RoleContentManager
}

// IsUser reports whether the principal holds the regular user role.
func (p Principal) IsUser() bool {
	return p.Role == RoleUser
}

// Valid reports whether the principal carries a known role and an account id.
func (p Principal) Valid() bool {
	switch p.Role {
	case RoleUser, RoleContentManager, RoleAdmin:
		return p.AccountId != ""
	}
	return false
}
