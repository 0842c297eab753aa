package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"draughts/board"
)

func TestParseSimplePair(t *testing.T) {
	positions, err := Parse("C3 D4")
	require.NoError(t, err)
	assert.Equal(t, []board.Position{{Row: 2, Col: 2}, {Row: 3, Col: 3}}, positions)
}

func TestParseLowercaseAndMultiLetterFile(t *testing.T) {
	positions, err := Parse("aa12 a1")
	require.NoError(t, err)
	assert.Equal(t, 27-1, positions[0].Col)
	assert.Equal(t, 11, positions[0].Row)
}

func TestParseCollectsAllTokenErrors(t *testing.T) {
	// "Z" is missing a rank, "AA1" is valid and must be skipped, "4" is
	// missing a file -- both errors must come back, in input order.
	_, err := Parse("Z AA1 4")
	var invalid *InvalidTokensError
	require.ErrorAs(t, err, &invalid)
	require.Len(t, invalid.Tokens, 2)
	assert.Equal(t, TokenError{Kind: "MissingRank", Token: "Z"}, invalid.Tokens[0])
	assert.Equal(t, TokenError{Kind: "MissingFile", Token: "4"}, invalid.Tokens[1])
}

func TestParseZeroRank(t *testing.T) {
	_, err := Parse("A0 B1")
	var invalid *InvalidTokensError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "ZeroRank", invalid.Tokens[0].Kind)
}

func TestParseInvalidCharacter(t *testing.T) {
	_, err := Parse("A3$ B1")
	var invalid *InvalidTokensError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "InvalidCharacter", invalid.Tokens[0].Kind)
	assert.Equal(t, 2, invalid.Tokens[0].Index)
}

func TestParseTooFewTokens(t *testing.T) {
	_, err := Parse("C3")
	assert.Equal(t, TooFewTokensError{}, err)
}

func TestFormatRoundTrip(t *testing.T) {
	for _, p := range []board.Position{{Row: 0, Col: 0}, {Row: 7, Col: 7}, {Row: 11, Col: 26}} {
		text := Format(p)
		got, err := Parse(text + " A1")
		require.NoError(t, err)
		assert.Equal(t, p, got[0])
	}
}
