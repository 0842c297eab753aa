package main

import (
	"strings"

	"draughts/sdk"
)

//
// Event model + helpers
//

// emitEvent formats and logs a compact event line in the form:
//
//	<type>|key=value|key=value
//
// The format keeps things small for contract logs while still letting
// off-chain indexers parse it.
func emitEvent(h sdk.Host, eventType string, kv ...string) {
	var b strings.Builder
	b.Grow(16 + len(eventType) + len(kv)*10)
	b.WriteString(eventType)

	for i := 0; i < len(kv); i += 2 {
		b.WriteByte('|')
		b.WriteString(kv[i])
		b.WriteByte('=')
		b.WriteString(kv[i+1])
	}

	h.Log(b.String())
}

//
// Game lifecycle events
//

// EmitGameCreated announces a new session between two accounts.
func EmitGameCreated(h sdk.Host, id uint64, player1, player2 string) {
	emitEvent(h, "c",
		"id", UInt64ToString(id),
		"p1", player1,
		"p2", player2,
	)
}

// EmitGameMoveMade records the submitted move text.
func EmitGameMoveMade(h sdk.Host, id uint64, by, text string) {
	emitEvent(h, "m",
		"id", UInt64ToString(id),
		"by", by,
		"move", text,
	)
}

// EmitGameWon emits a final winner message once a match is decided.
func EmitGameWon(h sdk.Host, id uint64, winner string) {
	emitEvent(h, "w",
		"id", UInt64ToString(id),
		"winner", winner,
	)
}

// EmitGameResigned logs a resignation, so UIs can highlight that reason.
func EmitGameResigned(h sdk.Host, id uint64, resignedAddress string) {
	emitEvent(h, "r",
		"id", UInt64ToString(id),
		"resigner", resignedAddress,
	)
}

// EmitGameTimedOut fires when a player failed to act before the timeout limit.
func EmitGameTimedOut(h sdk.Host, id uint64, timedOutPlayer string) {
	emitEvent(h, "t",
		"id", UInt64ToString(id),
		"timedOut", timedOutPlayer,
	)
}
