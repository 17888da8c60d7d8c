package domain

import "errors"

// Domain errors
var (
	ErrRoomNotFound     = errors.New("game not found")
	ErrPlayerNotFound   = errors.New("player not found")
	ErrNotHost          = errors.New("only the host can start the game")
	ErrNotEnoughPlayers = errors.New("need at least 2 players to start")
	ErrGameStarted      = errors.New("game has already started")
	ErrWrongPhase       = errors.New("invalid action for current phase")
	ErrWrongRole        = errors.New("invalid action for current role")
	ErrAlreadySubmitted = errors.New("clue already submitted this round")
	ErrEmptyNickname    = errors.New("nickname cannot be empty")
	ErrNicknameTaken    = errors.New("nickname already taken in this game")
	ErrInvalidClue      = errors.New("invalid clue: only letters, German characters (äöüß), and spaces allowed")
	ErrEmptyGuess       = errors.New("guess cannot be empty")
	ErrEmptyBank        = errors.New("no word categories loaded")
)
