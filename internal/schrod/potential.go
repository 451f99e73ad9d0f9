package schrod

import "math"

// Potential evaluates the half-infinite power-law well V(x) = α·x^γ at a
// position in Å. For x < 0 the position is replaced by WallSentinel, a
// deliberately huge but finite stand-in for the infinite wall; keeping it
// finite means the downstream V − E subtraction never produces NaN. The
// result is additionally floored at WallSentinel so the wall stays a wall
// for every exponent, including γ < 1 where sentinel^γ alone would be small
// (sentinel^0 is just 1).
func Potential(x, gamma float64) float64 {
	if x < 0 {
		v := Strength * math.Pow(WallSentinel, gamma)
		return math.Max(v, WallSentinel)
	}
	return Strength * math.Pow(x, gamma)
}
