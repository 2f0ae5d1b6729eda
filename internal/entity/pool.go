package entity

// SwapRemove deletes every element for which drop returns true by moving the
// last element into its slot. Order is not preserved. The backing array is
// reused and the vacated tail is zeroed so dropped entities can be collected.
func SwapRemove[T any](s []T, drop func(*T) bool) []T {
	var zero T
	n := len(s)
	for i := 0; i < n; {
		if drop(&s[i]) {
			n--
			s[i] = s[n]
			s[n] = zero
			continue
		}
		i++
	}
	return s[:n]
}
