package domain

// Phase represents the current phase of a room
type Phase string

const (
	PhaseLobby      Phase = "lobby"      // Waiting for players to join
	PhaseClueGiving Phase = "clueGiving" // Clue givers writing their clues
	PhaseGuessing   Phase = "guessing"   // Guesser working through revealed clues
	PhaseRoundOver  Phase = "roundOver"  // Scores awarded, next round pending
	PhaseGameOver   Phase = "gameOver"   // Score limit reached
)

// String returns the string representation of the phase
func (p Phase) String() string {
	return string(p)
}

// CanTransitionTo checks if a transition from current phase to target phase is valid
func (p Phase) CanTransitionTo(target Phase) bool {
	validTransitions := map[Phase][]Phase{
		PhaseLobby:      {PhaseClueGiving},
		PhaseClueGiving: {PhaseGuessing},
		PhaseGuessing:   {PhaseRoundOver},
		PhaseRoundOver:  {PhaseClueGiving, PhaseGameOver},
	}

	allowed, ok := validTransitions[p]
	if !ok {
		return false
	}

	for _, phase := range allowed {
		if phase == target {
			return true
		}
	}
	return false
}
