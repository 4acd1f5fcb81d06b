// internal/store/resettable.go
//
// Reusable counter maps for the guess checker.
// A check borrows one of these for the lifetime of its clue sequence, decrements values while
// scoring, and resets it once the sequence is finished so the next check starts from a known
// baseline without reallocating the map.
//
// Characteristics:
//   - ResetToEmpty clears the map; the caller refills it before each check.
//   - ResetToOriginal restores a snapshot taken at construction.
//   - Only values may change between resets. A ResetToOriginal whose key set drifted
//     panics on Reset, since that means the code filling the map is broken.
//   - Not safe for concurrent use; one check at a time owns the map.

package store

import "fmt"

// Resettable is a mutable map plus a policy that puts it back to a baseline.
type Resettable[K comparable, V any] interface {
	// Map exposes the live map for reading and in-place mutation.
	Map() map[K]V

	// Reset restores the map to the implementation's baseline.
	Reset()
}

// ResetToEmpty is a Resettable whose baseline is the empty map.
type ResetToEmpty[K comparable, V any] struct {
	m map[K]V
}

// NewResetToEmpty constructs an empty ResetToEmpty.
func NewResetToEmpty[K comparable, V any]() *ResetToEmpty[K, V] {
	return &ResetToEmpty[K, V]{m: make(map[K]V)}
}

// Map returns the live map.
func (r *ResetToEmpty[K, V]) Map() map[K]V { return r.m }

// Reset deletes every key, keeping the map's allocated buckets for reuse.
func (r *ResetToEmpty[K, V]) Reset() { clear(r.m) }

// ResetToOriginal is a Resettable whose baseline is a snapshot taken at construction.
type ResetToOriginal[K comparable, V any] struct {
	original map[K]V // frozen baseline, never mutated after construction
	m        map[K]V
}

// NewResetToOriginal copies original into both the baseline and the live map.
// The caller keeps ownership of original; later changes to it are not observed.
func NewResetToOriginal[K comparable, V any](original map[K]V) *ResetToOriginal[K, V] {
	base := make(map[K]V, len(original))
	live := make(map[K]V, len(original))
	for k, v := range original {
		base[k] = v
		live[k] = v
	}
	return &ResetToOriginal[K, V]{original: base, m: live}
}

// Map returns the live map.
func (r *ResetToOriginal[K, V]) Map() map[K]V { return r.m }

// Reset writes every baseline value back into the live map.
// It panics if keys were added to or removed from the live map.
func (r *ResetToOriginal[K, V]) Reset() {
	if len(r.m) != len(r.original) {
		panic(fmt.Sprintf("store: only changes to counts allowed on map (have %d keys, baseline %d)",
			len(r.m), len(r.original)))
	}
	for k, v := range r.original {
		if _, ok := r.m[k]; !ok {
			panic(fmt.Sprintf("store: only changes to counts allowed on map (baseline key %v missing)", k))
		}
		r.m[k] = v
	}
}

// CountRunes adds one to counts[ch] for every character of word.
// Characters are runes, so a multi-byte character counts once.
func CountRunes(counts map[rune]uint8, word string) {
	for _, ch := range word {
		counts[ch]++
	}
}
