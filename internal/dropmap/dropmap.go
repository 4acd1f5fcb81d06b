// Package dropmap provides a lazy mapping sequence that borrows a mutable context and runs a
// finalizer on that context exactly once, whether the sequence is drained or abandoned.
//
// Go has no destructors, so abandonment is explicit: callers either drain the sequence, range
// over All (breaking out finalizes), or defer Close.
package dropmap

import "iter"

// Source is a pull-based sequence with a known number of remaining items.
type Source[T any] interface {
	Next() (T, bool)
	Len() int
}

// DropMap applies mapFn to each item of a Source with access to ctx, and calls dropFn(ctx)
// once when the source is exhausted or the DropMap is closed.
type DropMap[I, C, B any] struct {
	src    Source[I]
	ctx    C
	mapFn  func(C, I) B
	dropFn func(C)
	done   bool
}

// New builds a DropMap. ctx is borrowed, not owned: it must stay valid until Done reports true.
func New[I, C, B any](src Source[I], ctx C, mapFn func(C, I) B, dropFn func(C)) *DropMap[I, C, B] {
	return &DropMap[I, C, B]{src: src, ctx: ctx, mapFn: mapFn, dropFn: dropFn}
}

// Next pulls the next mapped value. When the source runs dry the finalizer runs and
// Next returns false; calls after that keep returning false.
func (d *DropMap[I, C, B]) Next() (B, bool) {
	var zero B
	if d.done {
		return zero, false
	}
	item, ok := d.src.Next()
	if !ok {
		d.Close()
		return zero, false
	}
	return d.mapFn(d.ctx, item), true
}

// Close runs the finalizer if it has not run yet. Safe to call any number of times.
func (d *DropMap[I, C, B]) Close() {
	if d.done {
		return
	}
	d.done = true
	d.dropFn(d.ctx)
}

// Done reports whether the finalizer has run.
func (d *DropMap[I, C, B]) Done() bool { return d.done }

// Len is the number of values still to be produced.
func (d *DropMap[I, C, B]) Len() int {
	if d.done {
		return 0
	}
	return d.src.Len()
}

// All adapts the DropMap to a range-over-func sequence. Leaving the loop early,
// or panicking inside it, still finalizes.
func (d *DropMap[I, C, B]) All() iter.Seq[B] {
	return func(yield func(B) bool) {
		defer d.Close()
		for {
			v, ok := d.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Collect drains the remaining values into a slice and finalizes.
func (d *DropMap[I, C, B]) Collect() []B {
	out := make([]B, 0, d.Len())
	for v := range d.All() {
		out = append(out, v)
	}
	return out
}
