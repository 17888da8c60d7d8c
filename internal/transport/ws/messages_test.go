package ws

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCreateGame(t *testing.T) {
	p, err := decodeCreateGame(json.RawMessage(`{"nickname":"Alice"}`))
	require.NoError(t, err)
	assert.Equal(t, "Alice", p.Nickname)

	_, err = decodeCreateGame(json.RawMessage(`{"nickname":"  "}`))
	assert.ErrorIs(t, err, errMissingNickname)

	_, err = decodeCreateGame(json.RawMessage(`{}`))
	assert.ErrorIs(t, err, errMissingNickname)

	_, err = decodeCreateGame(json.RawMessage(`"not an object"`))
	assert.Error(t, err)
}

func TestDecodeJoinGame(t *testing.T) {
	p, err := decodeJoinGame(json.RawMessage(`{"nickname":"Bob","gameId":"1234"}`))
	require.NoError(t, err)
	assert.Equal(t, "Bob", p.Nickname)
	assert.Equal(t, "1234", p.GameID)

	_, err = decodeJoinGame(json.RawMessage(`{"nickname":"Bob"}`))
	assert.ErrorIs(t, err, errMissingGameID)

	_, err = decodeJoinGame(json.RawMessage(`{"gameId":"1234"}`))
	assert.ErrorIs(t, err, errMissingNickname)
}

func TestDecodeStartGame(t *testing.T) {
	p, err := decodeStartGame(json.RawMessage(`{"gameId":"1234"}`))
	require.NoError(t, err)
	assert.Equal(t, "1234", p.GameID)

	_, err = decodeStartGame(json.RawMessage(`{}`))
	assert.ErrorIs(t, err, errMissingGameID)
}

func TestDecodeSubmitClue(t *testing.T) {
	p, err := decodeSubmitClue(json.RawMessage(`{"gameId":"1234","clue":"fruit"}`))
	require.NoError(t, err)
	assert.Equal(t, "fruit", p.Clue)

	_, err = decodeSubmitClue(json.RawMessage(`{"gameId":"1234"}`))
	assert.ErrorIs(t, err, errMissingClue)

	_, err = decodeSubmitClue(json.RawMessage(`{"clue":"fruit"}`))
	assert.ErrorIs(t, err, errMissingGameID)
}

func TestDecodeSubmitGuess(t *testing.T) {
	p, err := decodeSubmitGuess(json.RawMessage(`{"gameId":"1234","guess":"apple"}`))
	require.NoError(t, err)
	assert.Equal(t, "apple", p.Guess)

	_, err = decodeSubmitGuess(json.RawMessage(`{"gameId":"1234"}`))
	assert.ErrorIs(t, err, errMissingGuess)
}

func TestClientMessageEnvelope(t *testing.T) {
	var msg ClientMessage
	err := json.Unmarshal([]byte(`{"type":"submitClue","payload":{"gameId":"1234","clue":"fruit"}}`), &msg)
	require.NoError(t, err)
	assert.Equal(t, MsgSubmitClue, msg.Type)

	p, err := decodeSubmitClue(msg.Payload)
	require.NoError(t, err)
	assert.Equal(t, "1234", p.GameID)
}
