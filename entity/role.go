package entity

// Role is the single authorization axis. Tiers are ordered:
// client < pharmacy < admin, and a higher tier inherits the
// permissions of the tiers below it on shared endpoints.
type Role string

const (
	RoleClient   Role = "client"
	RolePharmacy Role = "pharmacy"
	RoleAdmin    Role = "admin"
)

var roleTier = map[Role]int{
	RoleClient:   1,
	RolePharmacy: 2,
	RoleAdmin:    3,
}

func ParseRole(s string) (Role, bool) {
	r := Role(s)
	_, ok := roleTier[r]
	return r, ok
}

func (r Role) Valid() bool {
	_, ok := roleTier[r]
	return ok
}

// AtLeast reports whether r sits at or above min in the tier ladder.
func (r Role) AtLeast(min Role) bool {
	return roleTier[r] >= roleTier[min]
}

// Principal is the authenticated caller, resolved once by the auth
// middleware and passed explicitly into every service operation.
type Principal struct {
	UserID uint
	Role   Role
}
