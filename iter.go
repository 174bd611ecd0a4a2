// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfv

import "iter"

// Iter is a double-ended cursor over the published prefix of a FixedVec.
//
// The cursor covers the half-open range [start, end) snapshotted from Len
// at creation; elements published afterwards are not visited. Next and
// NextBack may be mixed freely and each index is yielded at most once.
//
// Yielded pointers alias the vector's storage. Reading through them is safe
// alongside concurrent pushers; writing through them requires exclusive
// access to the vector, the same contract as [FixedVec.Mut].
type Iter[T any] struct {
	vec   *FixedVec[T]
	start int
	end   int
}

// Iter returns a cursor over the currently published elements.
func (v *FixedVec[T]) Iter() Iter[T] {
	return Iter[T]{vec: v, end: v.Len()}
}

// Next yields a pointer to the front element and advances the cursor.
// Returns (nil, false) when the cursor is exhausted.
func (it *Iter[T]) Next() (*T, bool) {
	if it.start >= it.end {
		return nil, false
	}
	elem := &it.vec.buffer[it.start]
	it.start++
	return elem, true
}

// NextBack yields a pointer to the back element and retracts the cursor.
// Returns (nil, false) when the cursor is exhausted.
func (it *Iter[T]) NextBack() (*T, bool) {
	if it.end <= it.start {
		return nil, false
	}
	it.end--
	return &it.vec.buffer[it.end], true
}

// Len returns the exact number of elements not yet yielded.
func (it *Iter[T]) Len() int {
	return it.end - it.start
}

// Values returns a forward iterator over copies of the published elements,
// in the style of [slices.Values]. The length is snapshotted once when
// iteration starts.
func (v *FixedVec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range v.Len() {
			if !yield(v.buffer[i]) {
				return
			}
		}
	}
}

// All returns an index/value iterator over the published elements,
// in the style of [slices.All].
func (v *FixedVec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range v.Len() {
			if !yield(i, v.buffer[i]) {
				return
			}
		}
	}
}

// Backward returns an index/value iterator over the published elements,
// traversing backward from Len()-1, in the style of [slices.Backward].
func (v *FixedVec[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.Len() - 1; i >= 0; i-- {
			if !yield(i, v.buffer[i]) {
				return
			}
		}
	}
}
