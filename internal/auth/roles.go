package auth

// Role is carried in the access token. An empty role claim means RoleUser.
type Role string

const (
	// RoleAdmin may inspect and mutate the wallet configuration
	RoleAdmin Role = "admin"
	// RoleUser may derive its address and sign
	RoleUser Role = "user"
)

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// IsKnown reports whether r is one of the roles tokens may grant.
func (r Role) IsKnown() bool {
	return r == RoleAdmin || r == RoleUser
}

func (r Role) String() string {
	return string(r)
}
