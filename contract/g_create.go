package main

import (
	"draughts/sdk"
	"draughts/session"
)

//
// Creation entrypoint.
//

// parseCreateArgs splits the raw payload into the two account handles,
// an optional reward stake, and the first-move policy. Caller must
// pass "opponent|asset|amount|policy", where asset/amount are empty
// for an unstaked game and policy is one of "first"/"second"/"random"
// (defaulting to "random" when empty).
func parseCreateArgs(h sdk.Host, payload *string) (opponent string, reward *session.Reward, policy session.FirstMovePolicy) {
	in := *payload
	opponent = nextField(&in)
	assetStr := nextField(&in)
	amountStr := nextField(&in)
	policyStr := nextField(&in)
	require(h, in == "", "too many arguments")
	require(h, opponent != "", "opponent is required")

	if assetStr != "" {
		var asset sdk.Asset
		switch assetStr {
		case "hive":
			asset = sdk.AssetHive
		case "hbd":
			asset = sdk.AssetHbd
		default:
			require(h, false, "unsupported reward asset")
		}
		reward = &session.Reward{Asset: asset, Amount: parseI64Fast(amountStr)}
	}

	switch policyStr {
	case "", "random":
		policy = session.FirstMoveRandom
	case "first":
		policy = session.FirstMoveFirst
	case "second":
		policy = session.FirstMoveSecond
	default:
		require(h, false, "unsupported first-move policy")
	}
	return
}

// CreateGame starts a new session between the caller and the named
// opponent, optionally escrowing a reward stake, and persists it under
// a freshly allocated id.
//
//go:wasmexport g_create
func CreateGame(h sdk.Host, payload *string) *string {
	opponent, reward, policy := parseCreateArgs(h, payload)

	env := h.GetEnv()
	caller := string(env.Sender)
	require(h, caller != opponent, "cannot create a game against yourself")

	if reward != nil {
		h.DrawFunds(reward.Amount, reward.Asset)
	}

	id := getGameCount(h)
	s := session.New(h, caller, opponent, reward, policy)

	h.StateSetObject(gameKey(id), string(s.Encode(h)))
	setGameCount(h, id+1)

	EmitGameCreated(h, id, s.Game.Players[0].Account, s.Game.Players[1].Account)

	ret := UInt64ToString(id)
	return &ret
}
