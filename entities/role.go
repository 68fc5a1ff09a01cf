package entities

// Role is the closed set of roles a session can carry.
type Role string

const (
	RoleLandlord Role = "landlord"
	RoleTenant   Role = "tenant"
	RoleSeller   Role = "seller"
	RoleBuyer    Role = "buyer"
	RoleAdmin    Role = "admin"
	// RoleGuest is only ever carried by demo sessions.
	RoleGuest Role = "guest"
)

// SelfServiceRoles are the roles a visitor may pick at registration,
// login and demo entry.
var SelfServiceRoles = []Role{RoleLandlord, RoleTenant, RoleSeller, RoleBuyer}

// IsSelfService reports whether r can be chosen without an admin.
func (r Role) IsSelfService() bool {
	for _, candidate := range SelfServiceRoles {
		if r == candidate {
			return true
		}
	}
	return false
}

// IsStored reports whether r may be persisted on a user record.
func (r Role) IsStored() bool {
	return r.IsSelfService() || r == RoleAdmin
}

func (r Role) String() string { return string(r) }
