package main

import "draughts/sdk"

// ClaimTimeout lets a caller whose own move is not pending end the
// match once the opponent's cumulative thinking time has exceeded the
// one-hour threshold, recording the caller as the winner.
//
//go:wasmexport g_timeout
func ClaimTimeout(h sdk.Host, payload *string) *string {
	idStr := *payload
	id := StringToUInt64(h, &idStr)
	s := loadSession(h, id)

	env := h.GetEnv()
	sender := string(env.Sender)
	opponent := s.Game.Players[0].Account
	if sender == opponent {
		opponent = s.Game.Players[1].Account
	}

	if err := s.StopGameOnTimeout(h, sender); err != nil {
		ret := "E|" + err.Error()
		return &ret
	}

	storeSession(h, id, s)
	EmitGameTimedOut(h, id, opponent)
	EmitGameWon(h, id, sender)

	ret := "OK"
	return &ret
}
