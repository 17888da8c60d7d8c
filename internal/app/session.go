package app

import (
	"log/slog"
	"sync"
	"time"

	"lessismore/internal/config"
	"lessismore/internal/domain"
	"lessismore/internal/wordbank"
)

// ClientConn represents a connected client. Send must never block; a
// non-writable connection reports an error or drops the message, it does
// not stall the fan-out.
type ClientConn interface {
	Send(message any) error
	PlayerID() string
	Close() error
}

// roundScheduler arms the delayed auto-advance between rounds
type roundScheduler interface {
	ScheduleNextRound(gameID string)
}

// RoomSession binds a Room to its live connections. Every operation takes
// the session lock for its full duration, so inbound messages never
// interleave on the same room and each handler either fully applies or
// rejects before any mutation is visible.
type RoomSession struct {
	room      *domain.Room
	mu        sync.Mutex
	clients   map[string]ClientConn // playerID -> connection
	clientsMu sync.RWMutex
	bank      *wordbank.Bank
	cfg       config.GameConfig
	sched     roundScheduler
	logger    *slog.Logger
}

// NewRoomSession creates a session for the given room
func NewRoomSession(room *domain.Room, bank *wordbank.Bank, cfg config.GameConfig, sched roundScheduler, logger *slog.Logger) *RoomSession {
	return &RoomSession{
		room:    room,
		clients: make(map[string]ClientConn),
		bank:    bank,
		cfg:     cfg,
		sched:   sched,
		logger:  logger,
	}
}

// GameID returns the room identifier
func (s *RoomSession) GameID() string {
	return s.room.ID
}

// CreatedAt returns when the room was created
func (s *RoomSession) CreatedAt() time.Time {
	return s.room.CreatedAt
}

// PlayerCount returns the number of players in the room
func (s *RoomSession) PlayerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.room.Players)
}

// Phase returns the current room phase
func (s *RoomSession) Phase() domain.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.room.Phase
}

// Joinable reports whether a new player could join right now
func (s *RoomSession) Joinable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.room.Phase == domain.PhaseLobby
}

// RegisterClient attaches a connection for a player
func (s *RoomSession) RegisterClient(playerID string, client ClientConn) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	s.clients[playerID] = client
}

// unregisterClient detaches a player's connection
func (s *RoomSession) unregisterClient(playerID string) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	delete(s.clients, playerID)
}

// PlayerList returns a safe view of the current players
func (s *RoomSession) PlayerList() []domain.PlayerInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.room.PlayerInfoList()
}

// Join adds a player to the lobby, registers their connection, confirms the
// join to them and tells everyone else about the new membership
func (s *RoomSession) Join(playerID, nickname string, client ClientConn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, err := s.room.AddPlayer(playerID, nickname)
	if err != nil {
		return err
	}

	s.RegisterClient(playerID, client)

	s.sendToPlayer(playerID, domain.NewServerMessage(domain.MsgGameJoined, &domain.GameJoinedPayload{
		GameID:  s.room.ID,
		IsHost:  player.IsHost,
		Players: s.room.PlayerInfoList(),
	}))

	// The joiner already has the full list; skip them to avoid a duplicate view.
	s.broadcastExcept(playerID, domain.NewServerMessage(domain.MsgUpdateLobby, &domain.LobbyUpdatePayload{
		Players: s.room.PlayerInfoList(),
		Message: nickname + " joined the lobby.",
	}))

	return nil
}

// Start begins round 1 on behalf of the host
func (s *RoomSession) Start(playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.room.IsHost(playerID) {
		return domain.ErrNotHost
	}

	return s.startRoundLocked()
}

// startRoundLocked picks the round's category and word and starts it,
// notifying every player with their own view. Caller must hold the lock.
func (s *RoomSession) startRoundLocked() error {
	if len(s.room.Players) < s.cfg.MinPlayers {
		return domain.ErrNotEnoughPlayers
	}

	category, word, err := s.bank.PickRound()
	if err != nil {
		return err
	}

	if err := s.room.StartRound(category, word); err != nil {
		return err
	}

	s.logger.Info("round started",
		"gameId", s.room.ID,
		"round", s.room.Round,
		"category", category,
		"guesser", s.room.CurrentTurnPlayerID,
	)

	s.broadcastState(domain.MsgGameStarted)

	return nil
}

// SubmitClue stores a clue, confirms it to the submitter only, and moves
// the room into guessing once the last clue arrives
func (s *RoomSession) SubmitClue(playerID, clue string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.room.SubmitClue(playerID, clue); err != nil {
		return err
	}

	s.sendToPlayer(playerID, domain.NewServerMessage(domain.MsgUpdateGame, &domain.GameStatePayload{
		GameState: s.room.Snapshot(playerID),
	}))

	if s.room.AllCluesIn() {
		if err := s.room.BeginGuessing(); err != nil {
			return err
		}
		s.broadcastState(domain.MsgUpdateGame)
	}

	return nil
}

// SubmitGuess evaluates a guess and broadcasts the result to the whole
// room. A finished round either ends the game at the score limit or arms
// the delayed start of the next round.
func (s *RoomSession) SubmitGuess(playerID, guess string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	outcome, err := s.room.EvaluateGuess(playerID, guess)
	if err != nil {
		return err
	}

	if outcome.RoundEnded() {
		if s.room.ScoreLimitReached(s.cfg.ScoreLimit) {
			if err := s.room.FinishGame(); err != nil {
				return err
			}
		} else {
			s.sched.ScheduleNextRound(s.room.ID)
		}
	}

	s.broadcastState(domain.MsgUpdateGame)

	return nil
}

// AdvanceRound starts the next round after the post-round delay. It
// re-validates the phase: a room that was restarted, emptied or finished in
// the meantime makes this a no-op.
func (s *RoomSession) AdvanceRound() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.room.Phase != domain.PhaseRoundOver {
		return
	}

	if err := s.startRoundLocked(); err != nil {
		s.logger.Warn("failed to auto-start next round", "gameId", s.room.ID, "error", err)
	}
}

// Leave removes a player after their connection closed. Returns true when
// the room is now empty and should be destroyed.
func (s *RoomSession) Leave(playerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.unregisterClient(playerID)

	removed, newHost, err := s.room.RemovePlayer(playerID)
	if err != nil {
		return s.room.IsEmpty()
	}

	s.logger.Info("player left", "gameId", s.room.ID, "nickname", removed.Nickname)

	if s.room.IsEmpty() {
		return true
	}

	if s.room.Phase == domain.PhaseLobby {
		if newHost != nil {
			s.sendToPlayer(newHost.ID, domain.NewServerMessage(domain.MsgUpdateLobby, &domain.LobbyUpdatePayload{
				Players: s.room.PlayerInfoList(),
				Message: "You are now the host.",
			}))
		}
		s.broadcastExcept("", domain.NewServerMessage(domain.MsgUpdateLobby, &domain.LobbyUpdatePayload{
			Players: s.room.PlayerInfoList(),
			Message: removed.Nickname + " left the lobby.",
		}))
		return false
	}

	// Mid-round leave: no role backfill, just a generic refresh.
	s.room.Message = removed.Nickname + " disconnected."
	s.broadcastState(domain.MsgUpdateGame)

	return false
}

// Close shuts down the session and all its connections
func (s *RoomSession) Close() {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()

	for _, client := range s.clients {
		client.Close()
	}
	s.clients = make(map[string]ClientConn)
}

// broadcastState pushes a per-recipient snapshot to every connection in the
// room. Caller must hold the session lock; sends are non-blocking so a slow
// or closed connection is skipped, never stalling the fan-out.
func (s *RoomSession) broadcastState(msgType domain.ServerMessageType) {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()

	for playerID, client := range s.clients {
		msg := domain.NewServerMessage(msgType, &domain.GameStatePayload{
			GameState: s.room.Snapshot(playerID),
		})
		if err := client.Send(msg); err != nil {
			s.logger.Debug("failed to send to client", "playerID", playerID, "error", err)
		}
	}
}

// broadcastExcept sends the same message to every connection except the
// given player. An empty exclusion sends to everyone.
func (s *RoomSession) broadcastExcept(exceptPlayerID string, msg *domain.ServerMessage) {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()

	for playerID, client := range s.clients {
		if playerID == exceptPlayerID {
			continue
		}
		if err := client.Send(msg); err != nil {
			s.logger.Debug("failed to send to client", "playerID", playerID, "error", err)
		}
	}
}

// sendToPlayer sends a message to a single player's connection, if attached
func (s *RoomSession) sendToPlayer(playerID string, msg *domain.ServerMessage) {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()

	if client, ok := s.clients[playerID]; ok {
		if err := client.Send(msg); err != nil {
			s.logger.Debug("failed to send to client", "playerID", playerID, "error", err)
		}
	}
}
