package domain

// GameState is a recipient-specific snapshot of a room. The base fields are
// the same for every recipient; PlayerID, Role, Word and Clue depend on who
// the snapshot is computed for and are never shared verbatim across players.
type GameState struct {
	GameID                   string         `json:"gameId"`
	Players                  []PlayerInfo   `json:"players"`
	Scores                   map[string]int `json:"scores"`
	Phase                    Phase          `json:"phase"`
	Category                 string         `json:"category,omitempty"`
	CurrentTurnPlayerID      string         `json:"currentTurnPlayerId,omitempty"`
	CurrentTurnNickname      string         `json:"currentTurnPlayerNickname,omitempty"`
	Message                  string         `json:"message,omitempty"`
	CurrentClue              string         `json:"currentClue,omitempty"`
	CurrentClueGiverNickname string         `json:"currentClueGiverNickname,omitempty"`

	// Recipient-specific fields
	PlayerID string `json:"playerId,omitempty"`
	Role     Role   `json:"role,omitempty"`
	Word     string `json:"word,omitempty"`
	Clue     string `json:"clue,omitempty"`
}

// Snapshot computes the game state visible to perspectivePlayerID. An empty
// perspective yields only the base state, used for generic refreshes after
// a mid-round disconnect.
func (r *Room) Snapshot(perspectivePlayerID string) *GameState {
	state := &GameState{
		GameID:              r.ID,
		Players:             r.PlayerInfoList(),
		Scores:              r.Scores,
		Phase:               r.Phase,
		Category:            r.Category,
		CurrentTurnPlayerID: r.CurrentTurnPlayerID,
		Message:             r.Message,
	}

	if turn, err := r.PlayerByID(r.CurrentTurnPlayerID); err == nil {
		state.CurrentTurnNickname = turn.Nickname
	}

	// The revealed clue is public only while guessing.
	if r.Phase == PhaseGuessing {
		if entry, ok := r.CurrentClue(); ok {
			state.CurrentClue = entry.Text
			if giver, err := r.PlayerByID(entry.PlayerID); err == nil {
				state.CurrentClueGiverNickname = giver.Nickname
			}
		}
	}

	if perspectivePlayerID == "" {
		return state
	}
	player, err := r.PlayerByID(perspectivePlayerID)
	if err != nil {
		return state
	}

	state.PlayerID = player.ID
	state.Role = player.Role

	// Clue givers see the word while writing clues; everyone sees it once
	// the round is decided.
	if (r.Phase == PhaseClueGiving && player.Role == RoleClueGiver) ||
		r.Phase == PhaseRoundOver || r.Phase == PhaseGameOver {
		state.Word = r.Word
	}

	if player.Clue != "" {
		state.Clue = player.Clue
	}

	return state
}
