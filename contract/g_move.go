package main

import (
	"draughts/game"
	"draughts/sdk"
	"draughts/session"
)

// loadSession fetches and decodes the session record for id, aborting
// if no such game exists.
func loadSession(h sdk.Host, id uint64) *session.Session {
	v := h.StateGetObject(gameKey(id))
	require(h, v != nil, "no such game")
	return session.Decode(h, []byte(*v))
}

func storeSession(h sdk.Host, id uint64, s *session.Session) {
	h.StateSetObject(gameKey(id), string(s.Encode(h)))
}

// MakeMove submits one ply of algebraic notation against an
// in-progress game. Parse and rules failures are recoverable input
// errors: they come back as "E|<message>" rather than aborting the
// transaction, so a caller can retry with corrected input.
//
//go:wasmexport g_move
func MakeMove(h sdk.Host, payload *string) *string {
	in := *payload
	idStr := nextField(&in)
	text := nextField(&in)
	require(h, in == "", "too many arguments")

	id := StringToUInt64(h, &idStr)
	s := loadSession(h, id)

	env := h.GetEnv()
	sender := string(env.Sender)

	result, err := s.MakeMove(h, sender, text)
	if err != nil {
		ret := "E|" + err.Error()
		return &ret
	}

	storeSession(h, id, s)
	EmitGameMoveMade(h, id, sender, text)
	if result.State == game.GameOver {
		EmitGameWon(h, id, s.Game.Players[result.WinnerIndex].Account)
	}

	ret := "OK"
	return &ret
}

// Resign concedes an in-progress game on behalf of the caller; the
// opponent is recorded as the winner and paid out if a reward is
// escrowed.
//
//go:wasmexport g_resign
func Resign(h sdk.Host, payload *string) *string {
	idStr := *payload
	id := StringToUInt64(h, &idStr)
	s := loadSession(h, id)

	env := h.GetEnv()
	sender := string(env.Sender)

	if err := s.GiveUp(h, sender); err != nil {
		ret := "E|" + err.Error()
		return &ret
	}

	storeSession(h, id, s)
	EmitGameResigned(h, id, sender)
	EmitGameWon(h, id, s.Game.Players[*s.WinnerIndex].Account)

	ret := "OK"
	return &ret
}
