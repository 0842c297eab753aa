package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"draughts/sdk"
)

func TestNewFirstMovePolicyFirst(t *testing.T) {
	h := sdk.NewFakeHost("alice", "tx1")
	s := New(h, "alice", "bob", nil, FirstMoveFirst)
	assert.Equal(t, "alice", s.Game.Players[0].Account)
	assert.Equal(t, "bob", s.Game.Players[1].Account)
}

func TestNewFirstMovePolicySecond(t *testing.T) {
	h := sdk.NewFakeHost("alice", "tx1")
	s := New(h, "alice", "bob", nil, FirstMoveSecond)
	assert.Equal(t, "bob", s.Game.Players[0].Account)
	assert.Equal(t, "alice", s.Game.Players[1].Account)
}

func TestNewFirstMovePolicyRandom(t *testing.T) {
	h := sdk.NewFakeHost("alice", "tx1")
	h.SetRandomByte(1)
	s := New(h, "alice", "bob", nil, FirstMoveRandom)
	assert.Equal(t, "alice", s.Game.Players[0].Account)

	h2 := sdk.NewFakeHost("alice", "tx2")
	h2.SetRandomByte(0)
	s2 := New(h2, "alice", "bob", nil, FirstMoveRandom)
	assert.Equal(t, "bob", s2.Game.Players[0].Account)
}

func TestMakeMoveRejectsNonParticipant(t *testing.T) {
	h := sdk.NewFakeHost("alice", "tx1")
	s := New(h, "alice", "bob", nil, FirstMoveFirst)
	assert.Panics(t, func() {
		_, _ = s.MakeMove(h, "mallory", "C3 D4")
	})
}

func TestMakeMoveAppliesAndFoldsTime(t *testing.T) {
	h := sdk.NewFakeHost("alice", "tx1")
	h.SetTimestamp(1000)
	s := New(h, "alice", "bob", nil, FirstMoveFirst)

	h.SetTimestamp(1500)
	result, err := s.MakeMove(h, "alice", "C3 D4")
	require.NoError(t, err)
	assert.Equal(t, uint64(500), s.TotalTimeSpent[0])
	assert.Equal(t, uint64(1500), s.LastTurnTimestamp)
	assert.Equal(t, uint64(1), s.TurnCount)
	_ = result
}

func TestMakeMoveReturnsRulesErrorWithoutAborting(t *testing.T) {
	h := sdk.NewFakeHost("alice", "tx1")
	s := New(h, "alice", "bob", nil, FirstMoveFirst)
	_, err := s.MakeMove(h, "alice", "A1 A2")
	require.Error(t, err)
	assert.False(t, h.Aborted)
}

func TestGiveUpRecordsOpponentAsWinner(t *testing.T) {
	h := sdk.NewFakeHost("alice", "tx1")
	s := New(h, "alice", "bob", nil, FirstMoveFirst)
	require.NoError(t, s.GiveUp(h, "alice"))
	require.NotNil(t, s.WinnerIndex)
	assert.Equal(t, 1, *s.WinnerIndex)
}

func TestGiveUpPaysOutReward(t *testing.T) {
	h := sdk.NewFakeHost("alice", "tx1")
	reward := &Reward{Asset: sdk.AssetHive, Amount: 500}
	s := New(h, "alice", "bob", reward, FirstMoveFirst)
	require.NoError(t, s.GiveUp(h, "alice"))
	require.Len(t, h.Transfers, 1)
	assert.Equal(t, sdk.Address("bob"), h.Transfers[0].To)
	assert.Equal(t, int64(500), h.Transfers[0].Amount)
}

func TestStopGameOnTimeoutTooEarly(t *testing.T) {
	h := sdk.NewFakeHost("alice", "tx1")
	h.SetTimestamp(0)
	s := New(h, "alice", "bob", nil, FirstMoveFirst)

	h.SetTimestamp(oneHourNanos - 1)
	err := s.StopGameOnTimeout(h, "bob")
	assert.ErrorIs(t, err, ErrTooEarlyToStop)
}

func TestStopGameOnTimeoutSucceedsPastThreshold(t *testing.T) {
	h := sdk.NewFakeHost("alice", "tx1")
	h.SetTimestamp(0)
	s := New(h, "alice", "bob", nil, FirstMoveFirst)

	h.SetTimestamp(oneHourNanos + 1)
	err := s.StopGameOnTimeout(h, "bob")
	require.NoError(t, err)
	require.NotNil(t, s.WinnerIndex)
	assert.Equal(t, 1, *s.WinnerIndex)
}

func TestStopGameOnTimeoutRejectsClaimantsOwnTurn(t *testing.T) {
	h := sdk.NewFakeHost("alice", "tx1")
	h.SetTimestamp(0)
	s := New(h, "alice", "bob", nil, FirstMoveFirst)

	h.SetTimestamp(oneHourNanos + 1)
	err := s.StopGameOnTimeout(h, "alice")
	assert.ErrorIs(t, err, ErrTooEarlyToStop)
}

func TestDescribeReflectsCurrentState(t *testing.T) {
	h := sdk.NewFakeHost("alice", "tx1")
	s := New(h, "alice", "bob", nil, FirstMoveFirst)
	snap := s.Describe()
	assert.Equal(t, 0, snap.CurrentPlayerIndex)
	assert.NotEmpty(t, snap.LegalSimples)
	assert.Nil(t, snap.WinnerIndex)
}
