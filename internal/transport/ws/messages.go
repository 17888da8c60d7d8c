package ws

import (
	"encoding/json"
	"errors"
	"strings"
)

// MessageType represents the type of an inbound WebSocket message
type MessageType string

// Client → Server message types
const (
	MsgCreateGame  MessageType = "createGame"
	MsgJoinGame    MessageType = "joinGame"
	MsgStartGame   MessageType = "startGame"
	MsgSubmitClue  MessageType = "submitClue"
	MsgSubmitGuess MessageType = "submitGuess"
)

// ClientMessage is the envelope for every inbound message. The payload is
// decoded into the variant matching Type, with required fields validated
// once here at the boundary.
type ClientMessage struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Inbound payload variants

// CreateGamePayload is the payload for createGame
type CreateGamePayload struct {
	Nickname string `json:"nickname"`
}

// JoinGamePayload is the payload for joinGame
type JoinGamePayload struct {
	Nickname string `json:"nickname"`
	GameID   string `json:"gameId"`
}

// StartGamePayload is the payload for startGame
type StartGamePayload struct {
	GameID string `json:"gameId"`
}

// SubmitCluePayload is the payload for submitClue
type SubmitCluePayload struct {
	GameID string `json:"gameId"`
	Clue   string `json:"clue"`
}

// SubmitGuessPayload is the payload for submitGuess
type SubmitGuessPayload struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}

// Payload validation errors
var (
	errMissingNickname = errors.New("nickname is required")
	errMissingGameID   = errors.New("gameId is required")
	errMissingClue     = errors.New("clue is required")
	errMissingGuess    = errors.New("guess is required")
)

func decodeCreateGame(raw json.RawMessage) (*CreateGamePayload, error) {
	var p CreateGamePayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	if strings.TrimSpace(p.Nickname) == "" {
		return nil, errMissingNickname
	}
	return &p, nil
}

func decodeJoinGame(raw json.RawMessage) (*JoinGamePayload, error) {
	var p JoinGamePayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	if strings.TrimSpace(p.Nickname) == "" {
		return nil, errMissingNickname
	}
	if p.GameID == "" {
		return nil, errMissingGameID
	}
	return &p, nil
}

func decodeStartGame(raw json.RawMessage) (*StartGamePayload, error) {
	var p StartGamePayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	if p.GameID == "" {
		return nil, errMissingGameID
	}
	return &p, nil
}

func decodeSubmitClue(raw json.RawMessage) (*SubmitCluePayload, error) {
	var p SubmitCluePayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	if p.GameID == "" {
		return nil, errMissingGameID
	}
	if p.Clue == "" {
		return nil, errMissingClue
	}
	return &p, nil
}

func decodeSubmitGuess(raw json.RawMessage) (*SubmitGuessPayload, error) {
	var p SubmitGuessPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	if p.GameID == "" {
		return nil, errMissingGameID
	}
	if p.Guess == "" {
		return nil, errMissingGuess
	}
	return &p, nil
}
