package main

import (
	"strings"

	"draughts/display"
	"draughts/sdk"
)

// GetGame returns a compact, pipe-delimited snapshot of a game: id,
// both accounts, current player index, winner (if any), turn count,
// cumulative time spent per player, reward asset/amount (if any),
// followed by the ASCII board rendering. Clients use this to display
// state without replaying engine logic themselves.
//
//go:wasmexport g_get
func GetGame(h sdk.Host, payload *string) *string {
	idStr := *payload
	id := StringToUInt64(h, &idStr)
	s := loadSession(h, id)
	snap := s.Describe()

	var b strings.Builder
	b.WriteString(UInt64ToString(id))
	b.WriteByte('|')
	b.WriteString(snap.Players[0].Account)
	b.WriteByte('|')
	b.WriteString(snap.Players[1].Account)
	b.WriteByte('|')
	b.WriteString(UInt64ToString(uint64(snap.CurrentPlayerIndex)))
	b.WriteByte('|')
	if snap.WinnerIndex != nil {
		b.WriteString(snap.Players[*snap.WinnerIndex].Account)
	}
	b.WriteByte('|')
	b.WriteString(UInt64ToString(snap.TurnCount))
	b.WriteByte('|')
	b.WriteString(UInt64ToString(snap.TotalTimeSpent[0]))
	b.WriteByte('|')
	b.WriteString(UInt64ToString(snap.TotalTimeSpent[1]))
	b.WriteByte('|')
	if snap.Reward != nil {
		b.WriteString(snap.Reward.Asset.String())
		b.WriteByte(':')
		b.WriteString(UInt64ToString(uint64(snap.Reward.Amount)))
	}
	b.WriteByte('|')
	b.WriteString(display.Render(snap.Board))

	out := b.String()
	return &out
}

// main is empty: the host calls the exported entrypoints directly.
func main() {}
