// Package game implements the move-application state machine: forced
// capture, promotion, turn alternation, and terminal detection, built
// on top of board.Board and movegen's pure move-generation functions.
package game

import (
	"errors"
	"fmt"

	"draughts/board"
	"draughts/movegen"
)

// ErrIllegalMove is returned when a submitted simple move or jump path
// is not present in the current player's legal move tables.
var ErrIllegalMove = errors.New("illegal move")

// ErrMustJump is returned when a simple move is submitted while at
// least one capture is legal for the active player.
var ErrMustJump = errors.New("a capture is available and must be taken")

// PlayerInfo names one side of the game: which player id it plays as,
// which direction its men advance in, and an opaque external handle
// (an account identifier, left to the caller to interpret).
type PlayerInfo struct {
	ID        board.PlayerID
	Direction board.Direction
	Account   string
}

// State is the outcome of a successfully applied move.
type State int

const (
	InProgress State = iota
	GameOver
)

// Result is returned by Apply{Simple,Jump}; WinnerIndex is only
// meaningful when State == GameOver.
type Result struct {
	State       State
	WinnerIndex int
}

// Game holds a board plus turn state and the legal-move caches for the
// player on move. Caches are rebuilt at the end of every successful
// apply and are never persisted by this package — callers that persist
// a Game (see the session package) rebuild them on load.
type Game struct {
	Board *board.Board

	Players            [2]PlayerInfo
	CurrentPlayerIndex int

	legalSimples []movegen.SimpleMove
	legalJumps   []*movegen.JumpMove
}

// New creates a game on the canonical starting position with player 1
// (increasing rank) on move.
func New(account1, account2 string) *Game {
	g := &Game{
		Board: board.NewStandard(),
		Players: [2]PlayerInfo{
			{ID: board.Player1, Direction: board.IncreasingRank, Account: account1},
			{ID: board.Player2, Direction: board.DecreasingRank, Account: account2},
		},
		CurrentPlayerIndex: 0,
	}
	g.rebuildCaches()
	return g
}

// NewOnBoard creates a game on an already-built board, used by tests
// that exercise narrow positions rather than the full starting layout.
func NewOnBoard(b *board.Board, account1, account2 string, currentPlayerIndex int) *Game {
	g := &Game{
		Board: b,
		Players: [2]PlayerInfo{
			{ID: board.Player1, Direction: board.IncreasingRank, Account: account1},
			{ID: board.Player2, Direction: board.DecreasingRank, Account: account2},
		},
		CurrentPlayerIndex: currentPlayerIndex,
	}
	g.rebuildCaches()
	return g
}

// CurrentPlayer returns the PlayerInfo for the side on move.
func (g *Game) CurrentPlayer() PlayerInfo {
	return g.Players[g.CurrentPlayerIndex]
}

// LegalSimples and LegalJumps expose the current cached move tables,
// read-only, for callers (tests, Session) that need to inspect them
// without forcing a rebuild.
func (g *Game) LegalSimples() []movegen.SimpleMove { return g.legalSimples }
func (g *Game) LegalJumps() []*movegen.JumpMove    { return g.legalJumps }

func (g *Game) rebuildCaches() {
	player := g.CurrentPlayer()
	rows, cols := g.Board.Dims()

	var simples []movegen.SimpleMove
	var jumps []*movegen.JumpMove

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			tile := g.Board.Get(r, c)
			if !tile.Occupied || tile.Piece.Owner != player.ID {
				continue
			}
			if tile.Piece.Kind == board.Man {
				simples = append(simples, movegen.FindSimpleMovesMan(g.Board, player.Direction, r, c)...)
				tree := movegen.FindJumpMovesMan(g.Board, player.ID, player.Direction, r, c)
				if movegen.HasAnyJump(tree) {
					jumps = append(jumps, tree)
				}
			} else {
				simples = append(simples, movegen.FindSimpleMovesKing(g.Board, r, c)...)
				tree := movegen.FindJumpMovesKing(g.Board, player.ID, r, c)
				if movegen.HasAnyJump(tree) {
					jumps = append(jumps, tree)
				}
			}
		}
	}

	g.legalSimples = simples
	g.legalJumps = jumps
}

// ApplySimple applies a one-step move, failing with ErrMustJump if any
// capture is currently legal, or ErrIllegalMove if mv is not among the
// cached simple moves.
func (g *Game) ApplySimple(mv movegen.SimpleMove) (Result, error) {
	if len(g.legalJumps) > 0 {
		return Result{}, ErrMustJump
	}
	if !containsSimple(g.legalSimples, mv) {
		return Result{}, ErrIllegalMove
	}
	g.Board.Swap(mv.From, mv.To)
	return g.finish(mv.To), nil
}

func containsSimple(moves []movegen.SimpleMove, mv movegen.SimpleMove) bool {
	for _, m := range moves {
		if m == mv {
			return true
		}
	}
	return false
}

// ApplyJump applies a capture sequence given as a path of at least two
// positions. The path must be contained in one of the cached jump
// trees (see movegen.ContainsSequence); every consecutive pair's
// midpoint is cleared as the captured piece.
func (g *Game) ApplyJump(path []board.Position) (Result, error) {
	if len(path) < 2 {
		return Result{}, ErrIllegalMove
	}
	if !anyTreeContains(g.legalJumps, path) {
		return Result{}, ErrIllegalMove
	}

	g.Board.Swap(path[0], path[len(path)-1])
	for i := 0; i+1 < len(path); i++ {
		a, b := path[i], path[i+1]
		mid := board.Position{Row: (a.Row + b.Row) / 2, Col: (a.Col + b.Col) / 2}
		g.Board.Clear(mid.Row, mid.Col)
	}

	return g.finish(path[len(path)-1]), nil
}

func anyTreeContains(trees []*movegen.JumpMove, path []board.Position) bool {
	for _, t := range trees {
		if movegen.ContainsSequence(t, path) {
			return true
		}
	}
	return false
}

// finish runs the shared tail of both Apply variants: promotion at the
// landing square, turn advance, cache rebuild for the new player, and
// terminal detection.
func (g *Game) finish(final board.Position) Result {
	rows, _ := g.Board.Dims()
	tile := g.Board.Get(final.Row, final.Col)
	if tile.Occupied && tile.Piece.Kind == board.Man {
		mover := g.Players[g.CurrentPlayerIndex]
		if final.Row == board.PromotionRank(mover.ID, rows) {
			tile.Piece.Kind = board.King
			g.Board.Set(final.Row, final.Col, tile)
		}
	}

	g.CurrentPlayerIndex = 1 - g.CurrentPlayerIndex
	g.rebuildCaches()

	if len(g.legalSimples) == 0 && len(g.legalJumps) == 0 {
		return Result{State: GameOver, WinnerIndex: 1 - g.CurrentPlayerIndex}
	}
	return Result{State: InProgress}
}

// ApplyParsedMove dispatches a parsed position list the way the
// Session layer does: a two-position path whose row- and
// column-distances are both exactly 1 is a simple move; anything else
// is a jump sequence. Grounded on original_source's
// apply_positions_as_move dispatch rule.
func (g *Game) ApplyParsedMove(positions []board.Position) (Result, error) {
	if len(positions) == 2 {
		from, to := positions[0], positions[1]
		if absDiff(from.Row, to.Row) == 1 && absDiff(from.Col, to.Col) == 1 {
			return g.ApplySimple(movegen.SimpleMove{From: from, To: to})
		}
	}
	return g.ApplyJump(positions)
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// String is a compact debug form, not the diagnostic renderer (see
// package display for that).
func (g *Game) String() string {
	return fmt.Sprintf("Game{turn=%d simples=%d jumps=%d}", g.CurrentPlayerIndex, len(g.legalSimples), len(g.legalJumps))
}
