// Package movegen enumerates legal simple moves and jump-trees from a
// board snapshot. Every function here is pure: it reads a *board.Board
// and returns a value; it never mutates the board it is given.
//
// The jump-tree recursion (FindJumpMoves{Man,King}) is the hardest part
// of the whole engine — kings may revisit rank/file but must never
// capture the same piece twice in one sequence, which is enforced with
// a backtracking set of already-jumped tiles threaded through the
// recursion and popped on ascent.
package movegen

import "draughts/board"

// SimpleMove is a one-step diagonal move.
type SimpleMove struct {
	From, To board.Position
}

// JumpMove is a node in a capture tree: From is the landing square this
// node represents (the root's From is the jumping piece's starting
// square), and Children holds every legal capture continuation from
// here. A leaf (no children) means the chain ends at this square.
type JumpMove struct {
	From     board.Position
	Children []*JumpMove
}

// ContainsSequence reports whether path is a root-to-descendant walk of
// the tree: path[0] must equal tree.From, and the remaining positions
// must be found, in order, among descendants. An empty path is
// vacuously true.
func ContainsSequence(tree *JumpMove, path []board.Position) bool {
	if len(path) == 0 {
		return true
	}
	if tree == nil || path[0] != tree.From {
		return false
	}
	if len(path) == 1 {
		return true
	}
	for _, child := range tree.Children {
		if ContainsSequence(child, path[1:]) {
			return true
		}
	}
	return false
}

// manColOffsets are tried in this fixed order so emitted trees have a
// deterministic child order: left-before-right for men.
var manColOffsets = [2]int{-1, 1}

// FindSimpleMovesMan emits the up-to-two one-step diagonal moves
// available to a man at (row, col) moving in dir.
func FindSimpleMovesMan(b *board.Board, dir board.Direction, row, col int) []SimpleMove {
	var moves []SimpleMove
	dr := int(dir)
	for _, dc := range manColOffsets {
		toRow, toCol := row+dr, col+dc
		if pushSimpleIfValid(b, row, col, toRow, toCol) {
			moves = append(moves, SimpleMove{From: board.Position{Row: row, Col: col}, To: board.Position{Row: toRow, Col: toCol}})
		}
	}
	return moves
}

// kingStepOffsets enumerates the four diagonal one-steps in the order
// NW, NE, SW, SE, matching the required king child ordering.
var kingStepOffsets = [4][2]int{{1, -1}, {1, 1}, {-1, -1}, {-1, 1}}

// FindSimpleMovesKing emits the up-to-four one-step diagonal moves
// available to a king at (row, col).
func FindSimpleMovesKing(b *board.Board, row, col int) []SimpleMove {
	var moves []SimpleMove
	for _, off := range kingStepOffsets {
		toRow, toCol := row+off[0], col+off[1]
		if pushSimpleIfValid(b, row, col, toRow, toCol) {
			moves = append(moves, SimpleMove{From: board.Position{Row: row, Col: col}, To: board.Position{Row: toRow, Col: toCol}})
		}
	}
	return moves
}

func pushSimpleIfValid(b *board.Board, fromRow, fromCol, toRow, toCol int) bool {
	if !b.InBounds(toRow, toCol) {
		return false
	}
	return !b.Get(toRow, toCol).Occupied
}

// FindJumpMovesMan builds the capture tree rooted at (row, col) for a
// man belonging to owner moving in dir. Men chain jumps in their
// forward direction only: a man never turns around mid-sequence, and
// does not gain the king's extra directions even after reaching the
// promotion rank (promotion is applied once the whole move resolves).
func FindJumpMovesMan(b *board.Board, owner board.PlayerID, dir board.Direction, row, col int) *JumpMove {
	root := &JumpMove{From: board.Position{Row: row, Col: col}}
	extendManJumps(b, owner, dir, row, col, root)
	return root
}

func extendManJumps(b *board.Board, owner board.PlayerID, dir board.Direction, row, col int, node *JumpMove) {
	dr := int(dir)
	for _, dc := range manColOffsets {
		pawnedRow, pawnedCol := row+dr, col+dc
		landRow, landCol := row+2*dr, col+2*dc
		if !b.InBounds(landRow, landCol) {
			continue
		}
		pawned := b.Get(pawnedRow, pawnedCol)
		if !pawned.Occupied || pawned.Piece.Owner == owner {
			continue
		}
		if b.Get(landRow, landCol).Occupied {
			continue
		}
		child := &JumpMove{From: board.Position{Row: landRow, Col: landCol}}
		node.Children = append(node.Children, child)
		extendManJumps(b, owner, dir, landRow, landCol, child)
	}
}

// FindJumpMovesKing builds the capture tree rooted at (row, col) for a
// king belonging to owner. Kings may jump in all four diagonals at
// every step and may pass back over the square they started from (it
// "floats": treated as empty for the rest of this move), but may never
// capture the same piece twice in one sequence.
func FindJumpMovesKing(b *board.Board, owner board.PlayerID, row, col int) *JumpMove {
	root := &JumpMove{From: board.Position{Row: row, Col: col}}
	jumped := map[board.Position]bool{}
	extendKingJumps(b, owner, row, col, board.Position{Row: row, Col: col}, jumped, root)
	return root
}

func extendKingJumps(b *board.Board, owner board.PlayerID, row, col int, initial board.Position, jumped map[board.Position]bool, node *JumpMove) {
	for _, off := range kingStepOffsets {
		pawnedRow, pawnedCol := row+off[0], col+off[1]
		landRow, landCol := row+2*off[0], col+2*off[1]
		if !b.InBounds(landRow, landCol) {
			continue
		}
		landing := board.Position{Row: landRow, Col: landCol}
		tileBlocked := b.Get(landRow, landCol).Occupied
		atInitialPosition := landing == initial
		if tileBlocked && !atInitialPosition {
			continue
		}
		pawnedPos := board.Position{Row: pawnedRow, Col: pawnedCol}
		pawned := b.Get(pawnedRow, pawnedCol)
		if !pawned.Occupied || pawned.Piece.Owner == owner {
			continue
		}
		if jumped[pawnedPos] {
			continue
		}

		jumped[pawnedPos] = true
		child := &JumpMove{From: landing}
		node.Children = append(node.Children, child)
		extendKingJumps(b, owner, landRow, landCol, initial, jumped, child)
		delete(jumped, pawnedPos)
	}
}

// HasAnyJump reports whether a jump tree contains at least one capture,
// i.e. it is non-leaf.
func HasAnyJump(tree *JumpMove) bool {
	return tree != nil && len(tree.Children) > 0
}
