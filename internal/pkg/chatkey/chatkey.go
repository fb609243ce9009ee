// Package chatkey derives the deterministic identifier shared by every
// two-party conversation. Every feature that needs to contact a user
// resolves the same thread through this key, regardless of entry point.
package chatkey

import "strconv"

// Separator joins the two participant ids in a chat key.
const Separator = "_"

// Derive returns the conversation key for a pair of user ids. The ids are
// rendered as decimal strings, sorted lexicographically and joined, so
// Derive(a, b) == Derive(b, a) for every pair. Pure function, no I/O.
func Derive(userA, userB int64) string {
	a := strconv.FormatInt(userA, 10)
	b := strconv.FormatInt(userB, 10)
	if a > b {
		a, b = b, a
	}
	return a + Separator + b
}

// Pair returns the participant pair in storage order (low, high by numeric
// id), matching the participant_low/participant_high thread columns.
func Pair(userA, userB int64) (low, high int64) {
	if userA <= userB {
		return userA, userB
	}
	return userB, userA
}
