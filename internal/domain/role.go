package domain

// Role represents a player's role in a round
type Role string

const (
	RoleNone      Role = ""
	RoleClueGiver Role = "clueGiver"
	RoleGuesser   Role = "guesser"
)

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}

// IsGuesser returns true if this role is the guesser
func (r Role) IsGuesser() bool {
	return r == RoleGuesser
}
