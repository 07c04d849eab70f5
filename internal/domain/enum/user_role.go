package enum

// UserRole represents a role for role-based access control
type UserRole string

const (
	RoleManager    UserRole = "manager"
	RoleSalesAgent UserRole = "sales_agent"
	RoleDirector   UserRole = "director"
)

// IsValid reports whether the role is known
func (r UserRole) IsValid() bool {
	switch r {
	case RoleManager, RoleSalesAgent, RoleDirector:
		return true
	}
	return false
}

func (r UserRole) String() string {
	return string(r)
}
