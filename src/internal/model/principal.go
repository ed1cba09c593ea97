package model

// Principal is the authenticated caller, decoded from the bearer token and
// threaded explicitly through the call chain.
type Principal struct {
	ID        int64
	FullName  string
	Role      string
	BranchID  *int64
	SessionID string
}

// adminRoles is the enumerated alias set for the admin tier.
var adminRoles = map[string]bool{
	"admin":      true,
	"owner":      true,
	"superadmin": true,
	"queen":      true,
}

func (p Principal) IsAdmin() bool {
	return adminRoles[p.Role]
}

func (p Principal) IsManager() bool {
	return p.Role == "manager" || p.IsAdmin()
}

// CanTransact reports whether the caller may log service transactions.
func (p Principal) CanTransact() bool {
	return p.Role == "employee" || p.Role == "manager" || p.IsAdmin()
}
