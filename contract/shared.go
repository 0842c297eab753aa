package main

import "draughts/sdk"

// gameKey is the persistence key for one session's encoded record.
func gameKey(id uint64) string { return "g_" + UInt64ToString(id) + "_state" }

// gameCountKey tracks the next game id to allocate.
const gameCountKey = "g_count"

func getGameCount(h sdk.Host) uint64 {
	v := h.StateGetObject(gameCountKey)
	if v == nil {
		return 0
	}
	return parseU64Fast(*v)
}

func setGameCount(h sdk.Host, v uint64) {
	h.StateSetObject(gameCountKey, UInt64ToString(v))
}
