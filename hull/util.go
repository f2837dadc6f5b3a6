package hull

// Often we want to treat the boundary as a circular buffer. This gives the
// modular index for length n, but unlike the raw modulo operator, it only
// gives positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
