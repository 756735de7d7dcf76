package domain

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleMentor  Role = "mentor"
	RoleStudent Role = "student"
)

// Principal is the authenticated caller decoded from the bearer token.
// Authorization is a flat role check, not inheritance.
type Principal struct {
	UserID string
	Role   Role
}

func (p Principal) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}
