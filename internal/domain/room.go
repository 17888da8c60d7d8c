package domain

import (
	"fmt"
	"strings"
	"time"
)

// GuessOutcome describes the effect of an accepted guess
type GuessOutcome int

const (
	// GuessCorrect means the guesser matched the secret word; the round is over
	GuessCorrect GuessOutcome = iota
	// GuessNextClue means the guess was wrong and the next clue is now revealed
	GuessNextClue
	// GuessExhausted means the guess was wrong and no clues remain; the round is over
	GuessExhausted
)

// RoundEnded reports whether the outcome finished the round
func (o GuessOutcome) RoundEnded() bool {
	return o == GuessCorrect || o == GuessExhausted
}

// Room is the aggregate holding one game's full state. It performs no I/O;
// callers feed it the category and word for each round and serialize access.
type Room struct {
	ID      string    `json:"id"`
	Players []*Player `json:"players"` // insertion order = join order
	Phase   Phase     `json:"phase"`
	Round   int       `json:"round"`

	Category            string      `json:"category"`
	Word                string      `json:"word"`
	CurrentTurnPlayerID string      `json:"currentTurnPlayerId"`
	OrderedClues        []ClueEntry `json:"orderedClues"`
	ClueIndex           int         `json:"clueIndex"` // -1 means no clue revealed

	Scores  map[string]int `json:"scores"` // keyed by nickname
	Message string         `json:"message"`

	CreatedAt time.Time `json:"createdAt"`
}

// NewRoom creates a room with the creator as its sole player and host
func NewRoom(id, hostID, hostNickname string) *Room {
	host := NewPlayer(hostID, hostNickname, 0)
	host.IsHost = true

	return &Room{
		ID:        id,
		Players:   []*Player{host},
		Phase:     PhaseLobby,
		Round:     0,
		ClueIndex: -1,
		Scores:    map[string]int{hostNickname: 0},
		CreatedAt: time.Now(),
	}
}

// PlayerByID returns a player by ID
func (r *Room) PlayerByID(playerID string) (*Player, error) {
	for _, p := range r.Players {
		if p.ID == playerID {
			return p, nil
		}
	}
	return nil, ErrPlayerNotFound
}

// HasNickname reports whether any player already uses the given nickname.
// Comparison is case-sensitive.
func (r *Room) HasNickname(nickname string) bool {
	for _, p := range r.Players {
		if p.Nickname == nickname {
			return true
		}
	}
	return false
}

// AddPlayer appends a player to the room during the lobby phase
func (r *Room) AddPlayer(playerID, nickname string) (*Player, error) {
	if r.Phase != PhaseLobby {
		return nil, ErrGameStarted
	}
	if r.HasNickname(nickname) {
		return nil, ErrNicknameTaken
	}

	player := NewPlayer(playerID, nickname, len(r.Players))
	r.Players = append(r.Players, player)
	r.Scores[nickname] = 0

	return player, nil
}

// RemovePlayer removes a player from the room. When the host leaves during
// the lobby phase, the remaining player with the lowest join order becomes
// the new host, returned as newHost.
func (r *Room) RemovePlayer(playerID string) (removed, newHost *Player, err error) {
	idx := -1
	for i, p := range r.Players {
		if p.ID == playerID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, nil, ErrPlayerNotFound
	}

	removed = r.Players[idx]
	r.Players = append(r.Players[:idx], r.Players[idx+1:]...)

	if r.Phase == PhaseLobby && removed.IsHost && len(r.Players) > 0 {
		newHost = r.Players[0]
		for _, p := range r.Players {
			if p.JoinOrder < newHost.JoinOrder {
				newHost = p
			}
		}
		newHost.IsHost = true
	}

	return removed, newHost, nil
}

// IsEmpty reports whether the room has no players left
func (r *Room) IsEmpty() bool {
	return len(r.Players) == 0
}

// IsHost checks if the given player is the host
func (r *Room) IsHost(playerID string) bool {
	for _, p := range r.Players {
		if p.ID == playerID {
			return p.IsHost
		}
	}
	return false
}

// Guesser returns the player holding the guesser role, if any
func (r *Room) Guesser() *Player {
	for _, p := range r.Players {
		if p.Role == RoleGuesser {
			return p
		}
	}
	return nil
}

// ClueGivers returns all players holding the clue giver role, in join order
func (r *Room) ClueGivers() []*Player {
	givers := make([]*Player, 0, len(r.Players))
	for _, p := range r.Players {
		if p.Role == RoleClueGiver {
			givers = append(givers, p)
		}
	}
	return givers
}

// StartRound begins the next round: increments the round counter, clears
// round-scoped state, rotates the guesser role by round number over the
// current join-ordered player list, and stores the round's category and
// word. Callable from the lobby and after a finished round.
func (r *Room) StartRound(category, word string) error {
	if r.Phase != PhaseLobby && r.Phase != PhaseRoundOver {
		return ErrWrongPhase
	}
	if len(r.Players) < 2 {
		return ErrNotEnoughPlayers
	}

	r.Round++
	r.OrderedClues = nil
	r.ClueIndex = -1

	for _, p := range r.Players {
		p.ResetForNewRound()
	}

	// Rotation applies to the current list even if membership changed
	// between rounds.
	guesser := r.Players[(r.Round-1)%len(r.Players)]
	guesser.Role = RoleGuesser
	for _, p := range r.Players {
		if p.ID != guesser.ID {
			p.Role = RoleClueGiver
		}
	}

	r.Category = category
	r.Word = word
	r.CurrentTurnPlayerID = guesser.ID
	r.Phase = PhaseClueGiving
	r.Message = fmt.Sprintf("Round %d starting!", r.Round)

	return nil
}

// SubmitClue stores a clue for the given player. The trimmed text is kept
// verbatim; a second submission is rejected without touching the stored clue.
func (r *Room) SubmitClue(playerID, clue string) error {
	player, err := r.PlayerByID(playerID)
	if err != nil {
		return err
	}
	if player.Role != RoleClueGiver {
		return ErrWrongRole
	}
	if r.Phase != PhaseClueGiving {
		return ErrWrongPhase
	}
	if player.HasSubmittedClue {
		return ErrAlreadySubmitted
	}

	clue = strings.TrimSpace(clue)
	if !ValidClueText(clue) {
		return ErrInvalidClue
	}

	player.Clue = clue
	player.ClueLetters = CountLetters(clue)
	player.HasSubmittedClue = true

	return nil
}

// AllCluesIn reports whether every clue giver has submitted a clue
func (r *Room) AllCluesIn() bool {
	givers := r.ClueGivers()
	if len(givers) == 0 {
		return false
	}
	for _, p := range givers {
		if !p.HasSubmittedClue {
			return false
		}
	}
	return true
}

// BeginGuessing builds the ordered clue list and moves the room into the
// guessing phase with the first clue revealed
func (r *Room) BeginGuessing() error {
	if r.Phase != PhaseClueGiving || !r.AllCluesIn() {
		return ErrWrongPhase
	}

	givers := r.ClueGivers()
	entries := make([]ClueEntry, 0, len(givers))
	for _, p := range givers {
		entries = append(entries, ClueEntry{
			PlayerID:  p.ID,
			Text:      p.Clue,
			Letters:   p.ClueLetters,
			JoinOrder: p.JoinOrder,
		})
	}
	OrderClues(entries)

	r.OrderedClues = entries
	r.ClueIndex = 0
	r.Phase = PhaseGuessing
	r.Message = "All clues are in! Time to guess."

	if guesser := r.Guesser(); guesser != nil {
		r.CurrentTurnPlayerID = guesser.ID
		r.Message += fmt.Sprintf(" %s, your turn to guess!", guesser.Nickname)
	}

	return nil
}

// CurrentClue returns the currently revealed clue entry, if any
func (r *Room) CurrentClue() (ClueEntry, bool) {
	if r.ClueIndex < 0 || r.ClueIndex >= len(r.OrderedClues) {
		return ClueEntry{}, false
	}
	return r.OrderedClues[r.ClueIndex], true
}

// EvaluateGuess processes a guess from the given player. Matching is
// case-insensitive after trimming. A correct guess awards playerCount
// points to the guesser and to the giver of the revealed clue; running out
// of clues awards 1 point to every clue giver instead.
func (r *Room) EvaluateGuess(playerID, guess string) (GuessOutcome, error) {
	player, err := r.PlayerByID(playerID)
	if err != nil {
		return 0, err
	}
	if player.Role != RoleGuesser {
		return 0, ErrWrongRole
	}
	if r.Phase != PhaseGuessing {
		return 0, ErrWrongPhase
	}

	guess = strings.TrimSpace(guess)
	if guess == "" {
		return 0, ErrEmptyGuess
	}

	if strings.EqualFold(guess, r.Word) {
		r.Phase = PhaseRoundOver
		points := len(r.Players)
		r.Scores[player.Nickname] += points

		giverName := "nobody"
		if entry, ok := r.CurrentClue(); ok {
			if giver, err := r.PlayerByID(entry.PlayerID); err == nil {
				r.Scores[giver.Nickname] += points
				giverName = giver.Nickname
			}
		}

		r.Message = fmt.Sprintf("%s guessed correctly! The word was %q. %s and %s get %d points.",
			player.Nickname, r.Word, player.Nickname, giverName, points)
		return GuessCorrect, nil
	}

	r.ClueIndex++
	if r.ClueIndex < len(r.OrderedClues) {
		next := r.OrderedClues[r.ClueIndex]
		giverName := "nobody"
		if giver, err := r.PlayerByID(next.PlayerID); err == nil {
			giverName = giver.Nickname
		}
		r.Message = fmt.Sprintf("Incorrect guess. Next clue from %s.", giverName)
		return GuessNextClue, nil
	}

	r.Phase = PhaseRoundOver
	r.Message = fmt.Sprintf("%s couldn't guess the word %q.", player.Nickname, r.Word)
	for _, p := range r.ClueGivers() {
		r.Scores[p.Nickname]++
		r.Message += fmt.Sprintf(" %s gets 1 point.", p.Nickname)
	}
	return GuessExhausted, nil
}

// ScoreLimitReached reports whether any player's score has reached limit.
// A limit of zero or less disables the end condition.
func (r *Room) ScoreLimitReached(limit int) bool {
	if limit <= 0 {
		return false
	}
	for _, score := range r.Scores {
		if score >= limit {
			return true
		}
	}
	return false
}

// FinishGame moves a finished round into the gameOver phase
func (r *Room) FinishGame() error {
	if r.Phase != PhaseRoundOver {
		return ErrWrongPhase
	}
	r.Phase = PhaseGameOver
	r.Message += " Game over!"
	return nil
}

// PlayerInfoList returns a safe view of all players, in join order
func (r *Room) PlayerInfoList() []PlayerInfo {
	infos := make([]PlayerInfo, 0, len(r.Players))
	for _, p := range r.Players {
		infos = append(infos, p.ToInfo())
	}
	return infos
}
