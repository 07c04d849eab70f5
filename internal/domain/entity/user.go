package entity

import "github.com/karibugroceries/karibu-api/internal/domain/enum"

// User represents the person behind a session. Users exist only for the
// lifetime of their session and are never persisted.
type User struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Role    enum.UserRole `json:"role"`
	Branch  enum.Branch   `json:"branch"`
	Contact string        `json:"contact"`
}

// CanAccessBranch reports whether the user may view records from the given
// branch. Sales agents are scoped to their own branch; managers and the
// director see all branches.
func (u *User) CanAccessBranch(branch enum.Branch) bool {
	if u.Role == enum.RoleSalesAgent {
		return u.Branch == branch
	}
	return true
}
