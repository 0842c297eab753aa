package session

import (
	"encoding/binary"

	"draughts/board"
	"draughts/game"
	"draughts/sdk"
)

// wr is a small big-endian byte-buffer writer, the mirror image of rd
// below. Both are ported from the teacher's contract/game.go rd type
// and contract/utils.go's appendU64/appendU16/appendU8/appendString16
// helpers — hand-rolled rather than encoding/gob or encoding/json,
// matching the teacher's preference for a compact fixed-field wire
// format on the persistence path.
type wr struct {
	b []byte
}

func (w *wr) u8(v uint8)   { w.b = append(w.b, v) }
func (w *wr) u16(v uint16) { var buf [2]byte; binary.BigEndian.PutUint16(buf[:], v); w.b = append(w.b, buf[:]...) }
func (w *wr) u64(v uint64) { var buf [8]byte; binary.BigEndian.PutUint64(buf[:], v); w.b = append(w.b, buf[:]...) }
func (w *wr) bytes(v []byte) { w.b = append(w.b, v...) }
func (w *wr) str(h sdk.Host, s string) {
	sdk.Require(h, len(s) <= 0xFFFF, "string too long to persist")
	w.u16(uint16(len(s)))
	w.bytes([]byte(s))
}

// rd is the read-side counterpart of wr. Decode overflow and trailing
// bytes are fatal invariant violations: a session record that doesn't
// decode cleanly means persisted state was corrupted or the codec
// version drifted, not a caller mistake.
type rd struct {
	h sdk.Host
	b []byte
	i int
}

func (r *rd) need(n int) { sdk.Require(r.h, r.i+n <= len(r.b), "decode overflow") }

func (r *rd) u8() byte {
	r.need(1)
	v := r.b[r.i]
	r.i++
	return v
}

func (r *rd) u16() uint16 {
	r.need(2)
	v := binary.BigEndian.Uint16(r.b[r.i : r.i+2])
	r.i += 2
	return v
}

func (r *rd) u64() uint64 {
	r.need(8)
	v := binary.BigEndian.Uint64(r.b[r.i : r.i+8])
	r.i += 8
	return v
}

func (r *rd) bytes(n int) []byte {
	r.need(n)
	v := r.b[r.i : r.i+n]
	r.i += n
	return v
}

func (r *rd) str() string {
	l := int(r.u16())
	return string(r.bytes(l))
}

func (r *rd) mustEnd() { sdk.Require(r.h, r.i == len(r.b), "trailing bytes") }

// codecVersion guards against decoding a record written by an
// incompatible layout.
const codecVersion uint8 = 1

// Encode serializes the session in the exact field order spec.md §6
// names: player1_info, player2_info, reward, winner_index (optional),
// turn_count, last_turn_timestamp, total_time_spent[2], board,
// current_player_index. Cached legal move tables are never persisted;
// Decode rebuilds them via game.NewOnBoard.
func (s *Session) Encode(h sdk.Host) []byte {
	w := &wr{}
	w.u8(codecVersion)

	w.str(h, s.Game.Players[0].Account)
	w.str(h, s.Game.Players[1].Account)

	if s.Reward != nil {
		w.u8(1)
		w.u8(uint8(s.Reward.Asset))
		w.u64(uint64(s.Reward.Amount))
	} else {
		w.u8(0)
	}

	if s.WinnerIndex != nil {
		w.u8(1)
		w.u8(uint8(*s.WinnerIndex))
	} else {
		w.u8(0)
	}

	w.u64(s.TurnCount)
	w.u64(s.LastTurnTimestamp)
	w.u64(s.TotalTimeSpent[0])
	w.u64(s.TotalTimeSpent[1])

	rows, cols := s.Game.Board.Dims()
	w.u8(uint8(rows))
	w.u8(uint8(cols))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			tile := s.Game.Board.Get(r, c)
			if !tile.Occupied {
				w.u8(0)
				continue
			}
			w.u8(packedPieceByte(tile.Piece))
		}
	}

	w.u8(uint8(s.Game.CurrentPlayerIndex))
	return w.b
}

// packedPieceByte encodes (owner, kind) as a single non-zero byte: bit
// 0 is always set to mark an occupied tile, bit 1 is the kind (0 man,
// 1 king), bit 2 is the owner (0 player1, 1 player2), so 0 remains
// reserved for "empty".
func packedPieceByte(p board.Piece) byte {
	v := byte(1)
	if p.Kind == board.King {
		v |= 0b010
	}
	if p.Owner == board.Player2 {
		v |= 0b100
	}
	return v
}

func unpackPieceByte(v byte) board.Tile {
	if v == 0 {
		return board.Empty
	}
	kind := board.Man
	if v&0b010 != 0 {
		kind = board.King
	}
	owner := board.Player1
	if v&0b100 != 0 {
		owner = board.Player2
	}
	return board.Occupied(owner, kind)
}

// Decode rebuilds a Session from a byte slice produced by Encode,
// reconstructing the board and rebuilding the legal-move caches (they
// are never part of the persisted record, per spec.md §6).
func Decode(h sdk.Host, data []byte) *Session {
	r := &rd{h: h, b: data}
	sdk.Require(h, r.u8() == codecVersion, "unsupported session record version")

	account1 := r.str()
	account2 := r.str()

	var reward *Reward
	if r.u8() == 1 {
		reward = &Reward{Asset: sdk.Asset(r.u8()), Amount: int64(r.u64())}
	}

	var winnerIndex *int
	if r.u8() == 1 {
		idx := int(r.u8())
		winnerIndex = &idx
	}

	turnCount := r.u64()
	lastTurnTimestamp := r.u64()
	totalTimeSpent := [2]uint64{r.u64(), r.u64()}

	rows, cols := int(r.u8()), int(r.u8())
	b := board.New(rows, cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			b.Set(row, col, unpackPieceByte(r.u8()))
		}
	}

	currentPlayerIndex := int(r.u8())
	r.mustEnd()

	return &Session{
		Game:              game.NewOnBoard(b, account1, account2, currentPlayerIndex),
		Reward:            reward,
		WinnerIndex:       winnerIndex,
		TurnCount:         turnCount,
		LastTurnTimestamp: lastTurnTimestamp,
		TotalTimeSpent:    totalTimeSpent,
	}
}
