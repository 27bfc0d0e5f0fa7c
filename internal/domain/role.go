package domain

// Role distinguishes the two principal kinds carried in issued tokens.
type Role string

const (
	RoleAccountant Role = "ACCOUNTANT"
	RoleClient     Role = "CLIENT"
)

// Valid reports whether the role belongs to the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleAccountant, RoleClient:
		return true
	}
	return false
}
