package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelAtZeroXP(t *testing.T) {
	assert.InDelta(t, 0, Level(0), 1e-9)
	assert.InDelta(t, 0, XPAtLevel(0), 1e-9)
}

func TestLevelRoundTrip(t *testing.T) {
	// Level(XPAtLevel(L)) must return L for the whole playable range
	for level := 0.0; level <= 50.0; level += 0.5 {
		xp := XPAtLevel(level)
		assert.GreaterOrEqual(t, xp, 0.0)
		assert.InDelta(t, level, Level(xp), 1e-6, "level %v", level)
	}
}

func TestLevelIsMonotonic(t *testing.T) {
	prev := Level(0)
	for xp := 1.0; xp <= 100000; xp *= 2 {
		current := Level(xp)
		assert.Greater(t, current, prev, "xp %v", xp)
		prev = current
	}
}

func TestLevelArgumentStaysPositive(t *testing.T) {
	// The log argument is 1 + |1-2^(1/10)|*xp/10, so even absurd XP values
	// must produce a finite level.
	for _, xp := range []float64{0, 1, 1e6, 1e12} {
		level := Level(xp)
		assert.False(t, math.IsNaN(level), "xp %v", xp)
		assert.False(t, math.IsInf(level, 0), "xp %v", xp)
	}
}

func TestLevelClampsNegativeXP(t *testing.T) {
	assert.Equal(t, Level(0), Level(-50))
}

func TestXPLeft(t *testing.T) {
	// First level is reached at 10 XP, so 4 XP in means 4 XP past level 0
	assert.InDelta(t, 4, XPLeft(4), 1e-9)

	// Just past a threshold the remainder is small and non-negative
	xp := XPAtLevel(3) + 1
	left := XPLeft(xp)
	assert.GreaterOrEqual(t, left, 0.0)
	assert.Less(t, left, XPAtLevel(4)-XPAtLevel(3))
}

func TestUserLevelMethods(t *testing.T) {
	user := User{XP: 0}
	assert.InDelta(t, 0, user.Level(), 1e-9)

	user.XP = uint(math.Ceil(XPAtLevel(5)))
	assert.GreaterOrEqual(t, user.Level(), 5.0)
	assert.Less(t, user.Level(), 5.2)
}
