package request

// LoginRequest represents the login selection. There is no password: the
// login screen collects a name, a role, and (except for directors) a branch.
type LoginRequest struct {
	Name   string `json:"name" binding:"required,min=2,max=100"`
	Role   string `json:"role" binding:"required,oneof=manager sales_agent director"`
	Branch string `json:"branch" binding:"omitempty,oneof=Maganjo Matugga"`
}
