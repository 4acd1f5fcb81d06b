package dropmap

// Pair holds the items found at the same index of two slices.
type Pair[T any] struct {
	A, B T
}

// PairSource walks two slices in lockstep.
type PairSource[T any] struct {
	a, b []T
	i    int
}

// Pairs zips a and b. It stops at the shorter slice; callers that need equal lengths
// must check before building the source.
func Pairs[T any](a, b []T) *PairSource[T] {
	return &PairSource[T]{a: a, b: b}
}

// Next returns the pair at the current index and advances.
func (p *PairSource[T]) Next() (Pair[T], bool) {
	if p.i >= min(len(p.a), len(p.b)) {
		return Pair[T]{}, false
	}
	out := Pair[T]{A: p.a[p.i], B: p.b[p.i]}
	p.i++
	return out, true
}

// Len is the number of pairs left.
func (p *PairSource[T]) Len() int {
	return min(len(p.a), len(p.b)) - p.i
}
