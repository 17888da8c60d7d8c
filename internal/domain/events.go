package domain

// ServerMessageType represents the type of an outbound message
type ServerMessageType string

const (
	MsgAssignPlayerID ServerMessageType = "assignPlayerId"
	MsgGameCreated    ServerMessageType = "gameCreated"
	MsgGameJoined     ServerMessageType = "gameJoined"
	MsgUpdateLobby    ServerMessageType = "updateLobby"
	MsgGameStarted    ServerMessageType = "gameStarted"
	MsgUpdateGame     ServerMessageType = "updateGame"
	MsgError          ServerMessageType = "error"
)

// ServerMessage is the envelope for every outbound message
type ServerMessage struct {
	Type    ServerMessageType `json:"type"`
	Payload any               `json:"payload,omitempty"`
}

// NewServerMessage creates a new outbound message
func NewServerMessage(msgType ServerMessageType, payload any) *ServerMessage {
	return &ServerMessage{Type: msgType, Payload: payload}
}

// Outbound payload types

// AssignPlayerIDPayload is sent once when a connection is established
type AssignPlayerIDPayload struct {
	PlayerID string `json:"playerId"`
}

// GameCreatedPayload confirms room creation to the creator
type GameCreatedPayload struct {
	GameID  string       `json:"gameId"`
	Players []PlayerInfo `json:"players"`
}

// GameJoinedPayload confirms a join to the joining player
type GameJoinedPayload struct {
	GameID  string       `json:"gameId"`
	IsHost  bool         `json:"isHost"`
	Players []PlayerInfo `json:"players"`
}

// LobbyUpdatePayload is sent when lobby membership changes
type LobbyUpdatePayload struct {
	Players []PlayerInfo `json:"players"`
	Message string       `json:"message,omitempty"`
}

// GameStatePayload carries a recipient-specific snapshot, used for both
// gameStarted and updateGame messages
type GameStatePayload struct {
	GameState *GameState `json:"gameState"`
}

// ErrorPayload is sent when a request is rejected
type ErrorPayload struct {
	Message string `json:"message"`
}
