package models

// Roles the identity layer may attach to a request.
const (
	RoleSubject = "subject"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

// Principal is the authenticated caller as supplied by the identity layer.
// The core never authenticates; it only authorizes by role.
type Principal struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// CanManage reports whether the principal may mutate the given associate's
// calendar. Doctors manage only their own calendar; admins manage any.
func (p Principal) CanManage(associateID string) bool {
	switch p.Role {
	case RoleAdmin:
		return true
	case RoleDoctor:
		return p.ID == associateID
	default:
		return false
	}
}
