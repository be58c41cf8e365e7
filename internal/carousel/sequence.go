package carousel

// copies is the number of times the source list is repeated in the display sequence.
const copies = 3

// Triple returns items repeated three times back to back.
//
// The result is always a new slice, and nil when items is empty.
func Triple[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	seq := make([]T, 0, copies*len(items))
	for range copies {
		seq = append(seq, items...)
	}
	return seq
}

// canonical reports whether index lies in the middle copy of a sequence built from n items.
func canonical(index, n int) bool {
	return n <= index && index < 2*n
}

// wrap returns the index of the same item in the middle copy.
func wrap(index, n int) int {
	switch {
	case index < n:
		return index + n
	case index >= 2*n:
		return index - n
	default:
		return index
	}
}
