package domain

// Player represents a player in a room. It is owned by its Room and lives
// only as long as the underlying connection.
type Player struct {
	ID        string `json:"id"`
	Nickname  string `json:"nickname"`
	IsHost    bool   `json:"isHost"`
	JoinOrder int    `json:"joinOrder"`

	// Round-scoped fields, cleared at the start of every round.
	Role             Role   `json:"role,omitempty"`
	Clue             string `json:"clue,omitempty"`
	ClueLetters      int    `json:"clueLetters"`
	HasSubmittedClue bool   `json:"hasSubmittedClue"`
}

// NewPlayer creates a new player with the given ID, nickname and join order
func NewPlayer(id, nickname string, joinOrder int) *Player {
	return &Player{
		ID:          id,
		Nickname:    nickname,
		JoinOrder:   joinOrder,
		ClueLetters: -1,
	}
}

// ResetForNewRound clears the player's round-scoped state
func (p *Player) ResetForNewRound() {
	p.Role = RoleNone
	p.Clue = ""
	p.ClueLetters = -1
	p.HasSubmittedClue = false
}

// PlayerInfo is a safe view of player data. It never exposes another
// player's role or clue text.
type PlayerInfo struct {
	ID               string `json:"id"`
	Nickname         string `json:"nickname"`
	IsHost           bool   `json:"isHost"`
	HasSubmittedClue bool   `json:"hasSubmittedClue"`
}

// ToInfo converts a Player to PlayerInfo
func (p *Player) ToInfo() PlayerInfo {
	return PlayerInfo{
		ID:               p.ID,
		Nickname:         p.Nickname,
		IsHost:           p.IsHost,
		HasSubmittedClue: p.HasSubmittedClue,
	}
}
