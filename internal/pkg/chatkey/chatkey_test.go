package chatkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveIsOrderIndependent(t *testing.T) {
	pairs := [][2]int64{
		{1, 2},
		{42, 7},
		{9, 10},
		{100, 100},
		{123456789, 1},
	}

	for _, p := range pairs {
		assert.Equal(t, Derive(p[0], p[1]), Derive(p[1], p[0]),
			"key must not depend on initiator for pair %v", p)
	}
}

func TestDeriveSortsLexicographically(t *testing.T) {
	// "10" sorts before "9" as a string; the key follows string order,
	// not numeric order.
	assert.Equal(t, "10_9", Derive(9, 10))
	assert.Equal(t, "1_2", Derive(2, 1))
	assert.Equal(t, "100_100", Derive(100, 100))
}

func TestPair(t *testing.T) {
	low, high := Pair(10, 9)
	assert.Equal(t, int64(9), low)
	assert.Equal(t, int64(10), high)

	low, high = Pair(3, 3)
	assert.Equal(t, int64(3), low)
	assert.Equal(t, int64(3), high)
}
