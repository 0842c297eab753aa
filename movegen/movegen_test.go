package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"draughts/board"
)

func TestFindSimpleMovesMan(t *testing.T) {
	b := board.New(8, 8)
	b.Set(3, 3, board.Occupied(board.Player1, board.Man))
	moves := FindSimpleMovesMan(b, board.IncreasingRank, 3, 3)
	assert.ElementsMatch(t, []SimpleMove{
		{From: board.Position{Row: 3, Col: 3}, To: board.Position{Row: 4, Col: 2}},
		{From: board.Position{Row: 3, Col: 3}, To: board.Position{Row: 4, Col: 4}},
	}, moves)
}

func TestFindSimpleMovesManBlocked(t *testing.T) {
	b := board.New(8, 8)
	b.Set(3, 3, board.Occupied(board.Player1, board.Man))
	b.Set(4, 4, board.Occupied(board.Player2, board.Man))
	moves := FindSimpleMovesMan(b, board.IncreasingRank, 3, 3)
	assert.Equal(t, []SimpleMove{{From: board.Position{Row: 3, Col: 3}, To: board.Position{Row: 4, Col: 2}}}, moves)
}

func TestFindSimpleMovesKingAllFourDirections(t *testing.T) {
	b := board.New(8, 8)
	b.Set(4, 4, board.Occupied(board.Player1, board.King))
	moves := FindSimpleMovesKing(b, 4, 4)
	assert.Len(t, moves, 4)
}

func TestFindJumpMovesManSingle(t *testing.T) {
	b := board.New(8, 8)
	b.Set(2, 2, board.Occupied(board.Player1, board.Man))
	b.Set(3, 3, board.Occupied(board.Player2, board.Man))
	tree := FindJumpMovesMan(b, board.Player1, board.IncreasingRank, 2, 2)
	assert.True(t, HasAnyJump(tree))
	assert.True(t, ContainsSequence(tree, []board.Position{{Row: 2, Col: 2}, {Row: 4, Col: 4}}))
}

func TestFindJumpMovesManDoesNotChainBackwards(t *testing.T) {
	b := board.New(8, 8)
	b.Set(2, 2, board.Occupied(board.Player1, board.Man))
	b.Set(3, 1, board.Occupied(board.Player2, board.Man))
	b.Set(3, 3, board.Occupied(board.Player2, board.Man))
	// landing squares for both directions are empty and a second capture
	// back toward row 2 would require turning around, which a man cannot do.
	tree := FindJumpMovesMan(b, board.Player1, board.IncreasingRank, 2, 2)
	assert.Len(t, tree.Children, 2)
	for _, child := range tree.Children {
		assert.Empty(t, child.Children)
	}
}

func TestFindJumpMovesKingNoDoubleCapture(t *testing.T) {
	b := board.New(8, 8)
	b.Set(4, 4, board.Occupied(board.Player1, board.King))
	b.Set(5, 5, board.Occupied(board.Player2, board.Man))
	tree := FindJumpMovesKing(b, board.Player1, 4, 4)
	assert.True(t, HasAnyJump(tree))
	// landing past the captured piece, then attempting to jump the very
	// same piece a second time in the opposite direction must fail.
	for _, child := range tree.Children {
		for _, grandchild := range child.Children {
			assert.NotEqual(t, board.Position{Row: 4, Col: 4}, grandchild.From)
		}
	}
}

func TestFindJumpMovesKingFloatsOverOwnStartingSquare(t *testing.T) {
	b := board.New(12, 12)
	b.Set(6, 6, board.Occupied(board.Player1, board.King))
	// a ring of four distinct opponent men around (8,6), just above the
	// start square, lets the king capture all four in one sweep, its last
	// landing square coinciding with its own starting square -- which
	// the real board still marks occupied (by the king itself), since
	// move generation never mutates b. That square must float rather
	// than block the final landing.
	b.Set(7, 7, board.Occupied(board.Player2, board.Man))
	b.Set(9, 7, board.Occupied(board.Player2, board.Man))
	b.Set(9, 5, board.Occupied(board.Player2, board.Man))
	b.Set(7, 5, board.Occupied(board.Player2, board.Man))

	tree := FindJumpMovesKing(b, board.Player1, 6, 6)
	path := []board.Position{
		{Row: 6, Col: 6},
		{Row: 8, Col: 8},
		{Row: 10, Col: 6},
		{Row: 8, Col: 4},
		{Row: 6, Col: 6},
	}
	assert.True(t, ContainsSequence(tree, path))
}

func TestContainsSequenceEmptyPathIsVacuouslyTrue(t *testing.T) {
	tree := &JumpMove{From: board.Position{Row: 0, Col: 0}}
	assert.True(t, ContainsSequence(tree, nil))
}

func TestContainsSequenceMismatchedRoot(t *testing.T) {
	tree := &JumpMove{From: board.Position{Row: 0, Col: 0}}
	assert.False(t, ContainsSequence(tree, []board.Position{{Row: 1, Col: 1}}))
}

func TestHasAnyJumpLeaf(t *testing.T) {
	tree := &JumpMove{From: board.Position{Row: 0, Col: 0}}
	assert.False(t, HasAnyJump(tree))
}
