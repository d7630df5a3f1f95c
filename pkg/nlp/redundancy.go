package nlp

// Redundancy returns 1 - h/h0. The result is not clamped: an estimate above
// h0 gives a negative redundancy. A zero reference yields 0.
func Redundancy(h, h0 float64) float64 {
	if h0 == 0 {
		return 0
	}
	return 1 - h/h0
}
