// Package session wraps game.Game with the two account identifiers,
// reward escrow handle, turn timestamps, and winner slot spec.md §4.5
// names as the contract-facing thin layer. It never runs a real chain:
// the sdk.Host it is given does everything outside the rules engine.
package session

import (
	"errors"

	"draughts/board"
	"draughts/game"
	"draughts/movegen"
	"draughts/notation"
	"draughts/sdk"
)

// Host-level errors surfaced to callers beyond the rules-engine input
// errors (notation's TokenError/TooFewTokensError, game.ErrIllegalMove,
// game.ErrMustJump).
var (
	ErrNoAccess            = errors.New("caller is not a participant in this game")
	ErrGameAlreadyFinished = errors.New("game is already finished")
	ErrTooEarlyToStop      = errors.New("opponent has not exceeded the timeout threshold")
)

// oneHourNanos is the hard-coded timeout threshold, in the host's
// timestamp unit (nanoseconds). Implementations must not substitute a
// local wall clock for it (spec.md §9, "Timestamps").
const oneHourNanos uint64 = 3_600_000_000_000

// FirstMovePolicy selects how the opening player is assigned at New.
type FirstMovePolicy int

const (
	FirstMoveFirst FirstMovePolicy = iota
	FirstMoveSecond
	FirstMoveRandom
)

// Reward describes the escrowed stake for a game. A nil *Reward means
// no stake: MakeMove/GiveUp/StopGameOnTimeout never touch the host's
// fund-movement calls for an unstaked game.
type Reward struct {
	Asset  sdk.Asset
	Amount int64
}

// Session is one playable game between two accounts.
type Session struct {
	Game *game.Game

	Reward *Reward

	WinnerIndex *int

	TurnCount         uint64
	LastTurnTimestamp uint64
	TotalTimeSpent    [2]uint64
}

// New starts a session between accountA (the caller) and accountB, on
// the canonical starting position, assigning the opening move per
// policy. FirstMoveRandom draws exactly one byte from the host RNG and
// takes its low bit: 0 means the caller moves second, 1 means the
// caller moves first — this mapping is normative for reproducibility
// across nodes replaying the same transaction (spec.md §9).
func New(h sdk.Host, accountA, accountB string, reward *Reward, policy FirstMovePolicy) *Session {
	callerFirst := true
	switch policy {
	case FirstMoveFirst:
		callerFirst = true
	case FirstMoveSecond:
		callerFirst = false
	case FirstMoveRandom:
		callerFirst = h.RandomByte()&1 == 1
	}

	var g *game.Game
	if callerFirst {
		g = game.New(accountA, accountB)
	} else {
		g = game.New(accountB, accountA)
	}

	now := h.Now()
	return &Session{
		Game:              g,
		Reward:            reward,
		LastTurnTimestamp: now,
	}
}

// finished reports whether the game already has a recorded winner.
func (s *Session) finished() bool { return s.WinnerIndex != nil }

// elapsedFor returns the cumulative thinking time attributed to
// s.Game.Players[index] as of now: the stored total for a player not
// currently on move, or the stored total plus time since the current
// turn started for the player on move. Grounded on
// original_source/contract/src/game.rs's save-time total_time_spent
// fold, read without mutating state (spec.md §4.5).
func (s *Session) elapsedFor(index int, now uint64) uint64 {
	total := s.TotalTimeSpent[index]
	if index == s.Game.CurrentPlayerIndex {
		total += now - s.LastTurnTimestamp
	}
	return total
}

// foldTurn folds the time the mover spent on the turn that just ended
// into their stored total, then resets the clock for the next player.
// moverIndex is the player index who was on move before the apply
// that just completed.
func (s *Session) foldTurn(moverIndex int, now uint64) {
	s.TotalTimeSpent[moverIndex] += now - s.LastTurnTimestamp
	s.LastTurnTimestamp = now
	s.TurnCount++
}

// requireParticipant aborts the host transaction if sender is not one
// of the two accounts in this game — a fatal invariant violation, not
// a recoverable input error, since only a misbehaving caller path
// reaches this with an unrelated account.
func (s *Session) requireParticipant(h sdk.Host, sender string) {
	a, b := s.Game.Players[0].Account, s.Game.Players[1].Account
	sdk.Require(h, sender == a || sender == b, "caller is not a participant in this game")
}

// MakeMove parses text, applies it against the board, and on game-over
// records the winner and triggers the reward payout. The returned
// error is ErrGameAlreadyFinished, one of notation's parse errors,
// game.ErrIllegalMove, or game.ErrMustJump — all reported to the
// caller without aborting. A sender who is not one of the two accounts
// aborts the host transaction instead.
func (s *Session) MakeMove(h sdk.Host, sender, text string) (game.Result, error) {
	if s.finished() {
		return game.Result{}, ErrGameAlreadyFinished
	}
	s.requireParticipant(h, sender)

	positions, err := notation.Parse(text)
	if err != nil {
		return game.Result{}, err
	}

	moverIndex := s.Game.CurrentPlayerIndex
	result, err := s.Game.ApplyParsedMove(positions)
	if err != nil {
		return game.Result{}, err
	}

	now := h.Now()
	s.foldTurn(moverIndex, now)

	if result.State == game.GameOver {
		s.recordWinner(h, result.WinnerIndex)
	}
	return result, nil
}

// GiveUp resigns the game on behalf of sender, who must be one of the
// two accounts; the opponent is recorded as the winner and paid out.
func (s *Session) GiveUp(h sdk.Host, sender string) error {
	if s.finished() {
		return ErrGameAlreadyFinished
	}
	s.requireParticipant(h, sender)

	resignerIndex := 0
	if sender == s.Game.Players[1].Account {
		resignerIndex = 1
	}
	s.recordWinner(h, 1-resignerIndex)
	return nil
}

// StopGameOnTimeout lets the opponent claim the win when their own
// move is not pending and the other player's cumulative thinking time
// exceeds the one-hour threshold (spec.md §4.5).
func (s *Session) StopGameOnTimeout(h sdk.Host, sender string) error {
	if s.finished() {
		return ErrGameAlreadyFinished
	}
	s.requireParticipant(h, sender)

	claimantIndex := 0
	if sender == s.Game.Players[1].Account {
		claimantIndex = 1
	}
	opponentIndex := 1 - claimantIndex

	if s.Game.CurrentPlayerIndex == claimantIndex {
		// the claimant's own move is pending: they cannot claim a timeout
		// on their own clock.
		return ErrTooEarlyToStop
	}

	now := h.Now()
	if s.elapsedFor(opponentIndex, now) <= oneHourNanos {
		return ErrTooEarlyToStop
	}

	s.TotalTimeSpent[opponentIndex] = s.elapsedFor(opponentIndex, now)
	s.LastTurnTimestamp = now
	s.recordWinner(h, claimantIndex)
	return nil
}

// recordWinner sets the winner slot and triggers the reward payout via
// the host's fund-transfer capability. The core does not await or
// retry the transfer; outbound payout success is the settlement
// collaborator's concern (spec.md §5).
func (s *Session) recordWinner(h sdk.Host, winnerIndex int) {
	idx := winnerIndex
	s.WinnerIndex = &idx
	if s.Reward != nil {
		winner := sdk.Address(s.Game.Players[winnerIndex].Account)
		h.TransferFunds(winner, s.Reward.Amount, s.Reward.Asset)
	}
}

// Snapshot is a read-only projection of a session, used by Describe
// and by the contract package's GetGame entrypoint. Supplemented from
// original_source/contract/src/manager.rs's GameOutput/get_game shape,
// without the referral/affiliate/stats fields that belong to the
// named Non-goal "statistics"/"referral/affiliate accounting".
type Snapshot struct {
	Board              *board.Board
	Players            [2]game.PlayerInfo
	CurrentPlayerIndex int
	WinnerIndex        *int
	TurnCount          uint64
	LastTurnTimestamp  uint64
	TotalTimeSpent     [2]uint64
	Reward             *Reward
	LegalSimples       []movegen.SimpleMove
	LegalJumps         []*movegen.JumpMove
}

// Describe builds a read-only Snapshot of the session's current state.
func (s *Session) Describe() Snapshot {
	return Snapshot{
		Board:              s.Game.Board,
		Players:            s.Game.Players,
		CurrentPlayerIndex: s.Game.CurrentPlayerIndex,
		WinnerIndex:        s.WinnerIndex,
		TurnCount:          s.TurnCount,
		LastTurnTimestamp:  s.LastTurnTimestamp,
		TotalTimeSpent:     s.TotalTimeSpent,
		Reward:             s.Reward,
		LegalSimples:       s.Game.LegalSimples(),
		LegalJumps:         s.Game.LegalJumps(),
	}
}
