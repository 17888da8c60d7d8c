package app

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"lessismore/internal/config"
	"lessismore/internal/domain"
	"lessismore/internal/wordbank"
)

// Hub is the process-wide room registry. It owns every RoomSession, hands
// out collision-checked room IDs, and schedules the delayed round restarts.
type Hub struct {
	sessions map[string]*RoomSession
	mu       sync.RWMutex
	bank     *wordbank.Bank
	cfg      config.GameConfig
	logger   *slog.Logger
	done     chan struct{}
}

// NewHub creates a new hub backed by the given word bank
func NewHub(bank *wordbank.Bank, cfg config.GameConfig, logger *slog.Logger) *Hub {
	hub := &Hub{
		sessions: make(map[string]*RoomSession),
		bank:     bank,
		cfg:      cfg,
		logger:   logger,
		done:     make(chan struct{}),
	}

	go hub.sweepLoop()

	return hub
}

// CreateRoom creates a room with the given player as host and returns its session
func (h *Hub) CreateRoom(hostID, hostNickname string) (*RoomSession, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var gameID string
	for attempts := 0; attempts < 100; attempts++ {
		gameID = generateGameID()
		if _, exists := h.sessions[gameID]; !exists {
			break
		}
	}
	if _, exists := h.sessions[gameID]; exists {
		return nil, fmt.Errorf("failed to generate unique game id")
	}

	room := domain.NewRoom(gameID, hostID, hostNickname)
	session := NewRoomSession(room, h.bank, h.cfg, h, h.logger)
	h.sessions[gameID] = session

	h.logger.Info("game created", "gameId", gameID, "host", hostNickname)

	return session, nil
}

// Session returns a room session by game ID
func (h *Hub) Session(gameID string) (*RoomSession, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	session, ok := h.sessions[gameID]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}

	return session, nil
}

// Delete removes a room session
func (h *Hub) Delete(gameID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.sessions[gameID]; ok {
		delete(h.sessions, gameID)
		h.logger.Info("game deleted", "gameId", gameID)
	}
}

// DropPlayer removes a player from their room after a disconnect and
// destroys the room once the last player is gone
func (h *Hub) DropPlayer(gameID, playerID string) {
	session, err := h.Session(gameID)
	if err != nil {
		return
	}

	if empty := session.Leave(playerID); empty {
		h.Delete(gameID)
	}
}

// ScheduleNextRound arms the delayed auto-advance after a finished round.
// The callback re-resolves the room and re-validates its phase, so a room
// deleted before the timer fires makes it a no-op.
func (h *Hub) ScheduleNextRound(gameID string) {
	time.AfterFunc(h.cfg.NextRoundDelay, func() {
		session, err := h.Session(gameID)
		if err != nil {
			return
		}
		session.AdvanceRound()
	})
}

// SessionCount returns the number of active rooms
func (h *Hub) SessionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// TotalPlayerCount returns the total number of players across all rooms
func (h *Hub) TotalPlayerCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0
	for _, session := range h.sessions {
		total += session.PlayerCount()
	}
	return total
}

// Close shuts down the hub and all sessions
func (h *Hub) Close() {
	select {
	case <-h.done:
		return
	default:
		close(h.done)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, session := range h.sessions {
		session.Close()
	}
	h.sessions = make(map[string]*RoomSession)
}

// generateGameID returns a short shareable 4-digit room ID
func generateGameID() string {
	return fmt.Sprintf("%d", 1000+rand.Intn(9000))
}

// sweepLoop periodically removes rooms that stayed empty too long. Rooms are
// already destroyed when their last player leaves; the sweep catches rooms
// whose creator never joined a connection to them.
func (h *Hub) sweepLoop() {
	interval := h.cfg.SweepInterval
	if interval <= 0 {
		interval = 10 * time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-h.done:
			return
		case <-ticker.C:
			h.sweepStaleRooms()
		}
	}
}

func (h *Hub) sweepStaleRooms() {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := time.Now()
	for gameID, session := range h.sessions {
		if session.PlayerCount() == 0 && now.Sub(session.CreatedAt()) > h.cfg.StaleTimeout {
			session.Close()
			delete(h.sessions, gameID)
			h.logger.Info("stale game swept", "gameId", gameID)
		}
	}
}
