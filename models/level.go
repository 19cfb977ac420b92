package models

import "math"

// The level curve is a logarithmic decay: each level needs 2^(1/10) times the
// XP of the previous one, with the first level costing 10 XP.
const levelBase = 10

// growth is 1 - 2^(1/10), the (negative) geometric factor of the curve.
func growth() float64 {
	return 1 - math.Pow(2, 1.0/levelBase)
}

// Level maps accumulated XP to a continuous level value. Negative inputs are
// clamped to zero; for xp >= 0 the log argument is 1 + |growth|*xp/10 >= 1,
// so the function is total.
func Level(xp float64) float64 {
	if xp < 0 {
		xp = 0
	}
	return levelBase * math.Log2(1-(xp*growth())/levelBase)
}

// XPAtLevel is the XP threshold at which the given level is reached. It is the
// exact inverse of Level.
func XPAtLevel(level float64) float64 {
	return levelBase * (1 - math.Pow(2, level/levelBase)) / growth()
}

// XPLeft is the XP accumulated beyond the threshold of the current level.
func XPLeft(xp float64) float64 {
	return xp - XPAtLevel(math.Floor(Level(xp)))
}
