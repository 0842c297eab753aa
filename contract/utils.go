package main

import (
	"strconv"
	"strings"

	"draughts/sdk"
)

//
// ---------- UInt/String Helpers ----------
//

// StringToUInt64 parses a decimal string pointer into a uint64.
// Aborts if input is nil or not a valid integer.
func StringToUInt64(h sdk.Host, ptr *string) uint64 {
	require(h, ptr != nil, "input is empty")
	val, err := strconv.ParseUint(*ptr, 10, 64)
	require(h, err == nil, "failed to parse '"+*ptr+"' to uint64")
	return val
}

// UInt64ToString returns the decimal text form of a uint64.
func UInt64ToString(val uint64) string {
	return strconv.FormatUint(val, 10)
}

//
// ---------- Parsing Helpers ----------
//

// nextField splits a string at the first '|' and advances the pointer,
// returning the left field. Used by the lightweight wire protocol.
func nextField(s *string) string {
	i := strings.IndexByte(*s, '|')
	if i < 0 {
		f := *s
		*s = ""
		return f
	}
	f := (*s)[:i]
	*s = (*s)[i+1:]
	return f
}

// parseU64Fast parses only ASCII digits to uint64 (no spaces, no signs).
func parseU64Fast(s string) uint64 {
	var n uint64
	for i := 0; i < len(s); i++ {
		n = n*10 + uint64(s[i]-'0')
	}
	return n
}

// parseI64Fast parses an optional leading '-' then ASCII digits.
func parseI64Fast(s string) int64 {
	if s == "" {
		return 0
	}
	neg := s[0] == '-'
	if neg {
		s = s[1:]
	}
	n := int64(parseU64Fast(s))
	if neg {
		return -n
	}
	return n
}

// appendU64 prints a uint64 in decimal into an existing buffer.
// Used to build compact responses without fmt overhead.
func appendU64(dst []byte, v uint64) []byte {
	if v == 0 {
		return append(dst, '0')
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return append(dst, buf[i:]...)
}

func appendI64(dst []byte, v int64) []byte {
	if v < 0 {
		dst = append(dst, '-')
		v = -v
	}
	return appendU64(dst, uint64(v))
}

//
// ---------- Require ----------
//

// require aborts execution on h if cond is false. Kept tiny because
// it's called a lot across contract entrypoints.
func require(h sdk.Host, cond bool, msg string) {
	sdk.Require(h, cond, msg)
}
