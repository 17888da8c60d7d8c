package app

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lessismore/internal/config"
	"lessismore/internal/domain"
)

func newTestHub(t *testing.T) *Hub {
	t.Helper()

	cfg := config.GameConfig{
		MinPlayers:     2,
		NextRoundDelay: time.Millisecond,
		StaleTimeout:   time.Hour,
		SweepInterval:  time.Hour,
	}
	hub := NewHub(testBank(t), cfg, testLogger())
	t.Cleanup(hub.Close)

	return hub
}

func TestCreateRoomAssignsShortNumericID(t *testing.T) {
	hub := newTestHub(t)

	session, err := hub.CreateRoom("p-alice", "Alice")
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^[1-9]\d{3}$`), session.GameID())
	assert.Equal(t, 1, session.PlayerCount())
	assert.Equal(t, domain.PhaseLobby, session.Phase())
}

func TestCreateRoomIDsAreUnique(t *testing.T) {
	hub := newTestHub(t)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		session, err := hub.CreateRoom("p-host", "Host")
		require.NoError(t, err)
		assert.False(t, seen[session.GameID()], "duplicate id %s", session.GameID())
		seen[session.GameID()] = true
	}
	assert.Equal(t, 50, hub.SessionCount())
}

func TestSessionLookup(t *testing.T) {
	hub := newTestHub(t)

	created, err := hub.CreateRoom("p-alice", "Alice")
	require.NoError(t, err)

	found, err := hub.Session(created.GameID())
	require.NoError(t, err)
	assert.Same(t, created, found)

	_, err = hub.Session("0000")
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestDropPlayerDestroysEmptyRoom(t *testing.T) {
	hub := newTestHub(t)

	session, err := hub.CreateRoom("p-alice", "Alice")
	require.NoError(t, err)
	session.RegisterClient("p-alice", &fakeConn{id: "p-alice"})

	hub.DropPlayer(session.GameID(), "p-alice")

	_, err = hub.Session(session.GameID())
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
	assert.Equal(t, 0, hub.SessionCount())
}

func TestDropPlayerKeepsPopulatedRoom(t *testing.T) {
	hub := newTestHub(t)

	session, err := hub.CreateRoom("p-alice", "Alice")
	require.NoError(t, err)
	session.RegisterClient("p-alice", &fakeConn{id: "p-alice"})
	require.NoError(t, session.Join("p-bob", "Bob", &fakeConn{id: "p-bob"}))

	hub.DropPlayer(session.GameID(), "p-bob")

	assert.Equal(t, 1, session.PlayerCount())
	assert.Equal(t, 1, hub.SessionCount())
}

func TestDropPlayerUnknownRoomIsNoOp(t *testing.T) {
	hub := newTestHub(t)
	hub.DropPlayer("0000", "p-ghost")
	assert.Equal(t, 0, hub.SessionCount())
}

func TestScheduledAdvanceOnDeletedRoomIsNoOp(t *testing.T) {
	hub := newTestHub(t)

	session, err := hub.CreateRoom("p-alice", "Alice")
	require.NoError(t, err)

	hub.ScheduleNextRound(session.GameID())
	hub.Delete(session.GameID())

	// The timer fires against a room that no longer exists; nothing to
	// assert beyond the absence of a panic and the room staying gone.
	time.Sleep(20 * time.Millisecond)
	_, err = hub.Session(session.GameID())
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestScheduledAdvanceStartsNextRound(t *testing.T) {
	hub := newTestHub(t)

	session, err := hub.CreateRoom("p-alice", "Alice")
	require.NoError(t, err)
	session.RegisterClient("p-alice", &fakeConn{id: "p-alice"})
	require.NoError(t, session.Join("p-bob", "Bob", &fakeConn{id: "p-bob"}))

	require.NoError(t, session.Start("p-alice"))
	require.NoError(t, session.SubmitClue("p-bob", "fruit"))
	require.NoError(t, session.SubmitGuess("p-alice", "apple"))
	require.Equal(t, domain.PhaseRoundOver, session.Phase())

	assert.Eventually(t, func() bool {
		return session.Phase() == domain.PhaseClueGiving
	}, time.Second, 5*time.Millisecond)
}
