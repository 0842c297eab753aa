// Package display renders a board to a fixed-width diagnostic string,
// ported from original_source/contract/src/display.rs's print_board.
package display

import (
	"fmt"
	"strconv"
	"strings"

	"draughts/board"
)

const (
	emptyStr     = " "
	redManStr    = "r"
	redKingStr   = "R"
	blackManStr  = "b"
	blackKingStr = "B"
)

// Render prints b top file header first, then one row per rank from
// the highest rank down to 1, each cell as "[x]", then the file header
// again. Rank numbers are right-justified; file letters start at 'A'.
func Render(b *board.Board) string {
	rows, cols := b.Dims()
	filePadding := len(strconv.Itoa(cols))
	rankPadding := len(strconv.Itoa(rows))

	var out strings.Builder
	writeFileHeader(&out, cols, filePadding)

	for r := rows - 1; r >= 0; r-- {
		writeRankLabel(&out, r+1, rankPadding)
		for c := 0; c < cols; c++ {
			out.WriteString("[")
			out.WriteString(pieceStr(b, r, c))
			out.WriteString("]")
		}
		fmt.Fprintf(&out, " %d\n", r+1)
	}

	writeFileHeader(&out, cols, filePadding)
	return out.String()
}

func writeFileHeader(out *strings.Builder, cols, padding int) {
	for i := 0; i < padding; i++ {
		out.WriteString(" ")
	}
	for c := 0; c < cols; c++ {
		out.WriteString("  ")
		out.WriteByte(byte('A' + c))
	}
	out.WriteString("\n")
}

func writeRankLabel(out *strings.Builder, rank, padding int) {
	s := strconv.Itoa(rank)
	for i := 0; i < padding-len(s); i++ {
		out.WriteString(" ")
	}
	out.WriteString(s)
	out.WriteString(" ")
}

func pieceStr(b *board.Board, row, col int) string {
	tile := b.Get(row, col)
	if !tile.Occupied {
		return emptyStr
	}
	switch {
	case tile.Piece.Owner == board.Player1 && tile.Piece.Kind == board.Man:
		return redManStr
	case tile.Piece.Owner == board.Player1 && tile.Piece.Kind == board.King:
		return redKingStr
	case tile.Piece.Owner == board.Player2 && tile.Piece.Kind == board.Man:
		return blackManStr
	default:
		return blackKingStr
	}
}
