package ws

import (
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"lessismore/internal/app"
	"lessismore/internal/domain"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 4096

	// Size of the send channel buffer
	sendBufferSize = 256
)

// Client is one WebSocket connection. It owns the connection's opaque
// player ID and, once the connection has created or joined a game, the
// (room, player) association every inbound message is dispatched under.
type Client struct {
	conn     *websocket.Conn
	hub      *app.Hub
	session  *app.RoomSession // nil until createGame/joinGame succeeds
	playerID string
	send     chan []byte
	done     chan struct{}
	logger   *slog.Logger
	mu       sync.Mutex
	closed   bool
}

// NewClient creates a new WebSocket client
func NewClient(conn *websocket.Conn, hub *app.Hub, playerID string, logger *slog.Logger) *Client {
	return &Client{
		conn:     conn,
		hub:      hub,
		playerID: playerID,
		send:     make(chan []byte, sendBufferSize),
		done:     make(chan struct{}),
		logger:   logger,
	}
}

// PlayerID implements app.ClientConn
func (c *Client) PlayerID() string {
	return c.playerID
}

// Send implements app.ClientConn. It never blocks: when the buffer is full
// the message is dropped for this client only.
func (c *Client) Send(message any) error {
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	select {
	case c.send <- data:
		return nil
	default:
		c.logger.Warn("send buffer full, message dropped", "playerID", c.playerID)
		return nil
	}
}

// Close implements app.ClientConn
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	c.closed = true
	close(c.done)
	return c.conn.Close()
}

// Run starts the client's read and write pumps and blocks until the
// connection drops
func (c *Client) Run() {
	go c.writePump()
	c.readPump()
}

// readPump pumps messages from the WebSocket connection. A read failure of
// any kind is treated as a disconnect and routed through session cleanup.
func (c *Client) readPump() {
	defer func() {
		if c.session != nil {
			c.hub.DropPlayer(c.session.GameID(), c.playerID)
		}
		c.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Debug("websocket read error", "error", err)
			}
			break
		}

		c.handleMessage(message)
	}
}

// writePump pumps messages from the send channel to the WebSocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			return
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Add queued messages to the current websocket message
			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleMessage processes one inbound message to completion before the next
// is read, so no two handlers interleave for this connection
func (c *Client) handleMessage(data []byte) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		c.sendError("Invalid message format.")
		return
	}

	switch msg.Type {
	case MsgCreateGame:
		c.handleCreateGame(msg.Payload)
	case MsgJoinGame:
		c.handleJoinGame(msg.Payload)
	case MsgStartGame:
		c.handleStartGame(msg.Payload)
	case MsgSubmitClue:
		c.handleSubmitClue(msg.Payload)
	case MsgSubmitGuess:
		c.handleSubmitGuess(msg.Payload)
	default:
		c.sendError("Unknown message type: " + string(msg.Type))
	}
}

// handleCreateGame creates a room with this connection as host
func (c *Client) handleCreateGame(raw json.RawMessage) {
	if c.session != nil {
		c.sendError("You are already in a game.")
		return
	}

	payload, err := decodeCreateGame(raw)
	if err != nil {
		c.sendError(err.Error())
		return
	}

	nickname := strings.TrimSpace(payload.Nickname)
	session, err := c.hub.CreateRoom(c.playerID, nickname)
	if err != nil {
		c.sendError("Failed to create game.")
		return
	}

	session.RegisterClient(c.playerID, c)
	c.session = session

	c.Send(domain.NewServerMessage(domain.MsgGameCreated, &domain.GameCreatedPayload{
		GameID:  session.GameID(),
		Players: session.PlayerList(),
	}))
}

// handleJoinGame adds this connection to an existing lobby
func (c *Client) handleJoinGame(raw json.RawMessage) {
	if c.session != nil {
		c.sendError("You are already in a game.")
		return
	}

	payload, err := decodeJoinGame(raw)
	if err != nil {
		c.sendError(err.Error())
		return
	}

	session, err := c.hub.Session(payload.GameID)
	if err != nil {
		c.sendError("Game not found.")
		return
	}

	nickname := strings.TrimSpace(payload.Nickname)
	if err := session.Join(c.playerID, nickname, c); err != nil {
		c.sendError(err.Error())
		return
	}

	c.session = session
}

// handleStartGame begins round 1 on behalf of the host
func (c *Client) handleStartGame(raw json.RawMessage) {
	payload, err := decodeStartGame(raw)
	if err != nil {
		c.sendError(err.Error())
		return
	}

	session := c.resolveSession(payload.GameID)
	if session == nil {
		c.sendError("Game not found.")
		return
	}

	if err := session.Start(c.playerID); err != nil {
		c.sendError(err.Error())
	}
}

// handleSubmitClue stores a clue giver's clue
func (c *Client) handleSubmitClue(raw json.RawMessage) {
	payload, err := decodeSubmitClue(raw)
	if err != nil {
		c.sendError(err.Error())
		return
	}

	session := c.resolveSession(payload.GameID)
	if session == nil {
		c.sendError("Game not found.")
		return
	}

	if err := session.SubmitClue(c.playerID, payload.Clue); err != nil {
		c.sendError(err.Error())
	}
}

// handleSubmitGuess evaluates the guesser's guess
func (c *Client) handleSubmitGuess(raw json.RawMessage) {
	payload, err := decodeSubmitGuess(raw)
	if err != nil {
		c.sendError(err.Error())
		return
	}

	session := c.resolveSession(payload.GameID)
	if session == nil {
		c.sendError("Game not found.")
		return
	}

	if err := session.SubmitGuess(c.playerID, payload.Guess); err != nil {
		c.sendError(err.Error())
	}
}

// resolveSession returns this connection's session when the requested game
// ID matches the room it actually belongs to
func (c *Client) resolveSession(gameID string) *app.RoomSession {
	if c.session == nil || c.session.GameID() != gameID {
		return nil
	}
	return c.session
}

// sendError reports a rejection to this connection only
func (c *Client) sendError(message string) {
	c.Send(domain.NewServerMessage(domain.MsgError, &domain.ErrorPayload{
		Message: message,
	}))
}
