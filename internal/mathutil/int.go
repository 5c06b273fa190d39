package mathutil

// IntMin returns the smaller of two ints.
func IntMin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// IntMax returns the larger of two ints.
func IntMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// IntCeilDiv divides a by b rounding up. b must be positive.
func IntCeilDiv(a, b int) int {
	return (a + b - 1) / b
}
