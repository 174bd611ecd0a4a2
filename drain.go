// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfv

import "iter"

// Drain is an owning iterator that consumes a FixedVec.
//
// The drain takes sole ownership of the backing buffer; the source vector
// is left empty with capacity 0 and no longer references the elements.
// Exactly one of the two ever releases the buffer: the vector before
// Drain is called, the drain after.
//
// Elements not yet yielded form the shrinking half-open range [start, end).
// Next moves the front element out, NextBack the back element; the two may
// interleave freely and each index is moved out exactly once. Moved-out and
// closed-over slots are zeroed so the garbage collector can reclaim what
// they referenced.
type Drain[T any] struct {
	buffer []T
	start  int
	end    int
}

// Drain consumes the vector and returns an owning iterator over its
// published elements.
//
// Requires exclusive access. Afterwards the vector is empty and has
// capacity 0: Push fails with ErrFull, Len reports 0. Grow re-arms it with
// fresh storage.
func (v *FixedVec[T]) Drain() *Drain[T] {
	d := &Drain[T]{buffer: v.buffer, end: v.Len()}
	v.buffer = nil
	v.cap = 0
	v.next.StoreRelaxed(0)
	v.length.StoreRelaxed(0)
	return d
}

// Next moves the front element out of the drain.
// Returns (zero, false) when the drain is exhausted or closed.
func (d *Drain[T]) Next() (T, bool) {
	if d.start >= d.end {
		var zero T
		return zero, false
	}
	elem := d.buffer[d.start]
	var zero T
	d.buffer[d.start] = zero
	d.start++
	return elem, true
}

// NextBack moves the back element out of the drain.
// Returns (zero, false) when the drain is exhausted or closed.
func (d *Drain[T]) NextBack() (T, bool) {
	if d.end <= d.start {
		var zero T
		return zero, false
	}
	d.end--
	elem := d.buffer[d.end]
	var zero T
	d.buffer[d.end] = zero
	return elem, true
}

// Len returns the exact number of elements not yet moved out.
func (d *Drain[T]) Len() int {
	return d.end - d.start
}

// Close releases the remaining elements and the buffer.
//
// Every element still in [start, end) is cleared exactly once and the
// buffer reference is dropped, whether or not the drain was fully
// consumed. Close is idempotent and safe to defer.
func (d *Drain[T]) Close() {
	if d.buffer == nil {
		return
	}
	clear(d.buffer[d.start:d.end])
	d.buffer = nil
	d.start, d.end = 0, 0
}

// Values returns a forward iterator that moves the remaining elements out
// of the drain. The drain is closed when the loop stops, including on
// early break, so breaking mid-iteration still releases the unconsumed
// elements and the buffer.
func (d *Drain[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer d.Close()
		for {
			elem, ok := d.Next()
			if !ok || !yield(elem) {
				return
			}
		}
	}
}
