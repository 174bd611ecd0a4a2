// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfv

import "iter"

// Clone returns an independent copy of the vector with the same capacity
// and the currently published elements, re-pushed in index order.
//
// Clone is a sequential snapshot: it must not race with Grow or Drain on
// the source, and elements published during the copy may be missed.
// Element copies are shallow.
func (v *FixedVec[T]) Clone() *FixedVec[T] {
	n := v.Len()
	out := New[T](v.Cap())
	for i := range n {
		elem := v.buffer[i]
		_ = out.Push(&elem)
	}
	return out
}

// Append appends elem, growing the vector when capacity is exhausted.
// Requires exclusive access (it may call Grow).
func (v *FixedVec[T]) Append(elem T) {
	if v.Push(&elem) != nil {
		v.Grow()
		_ = v.Push(&elem)
	}
}

// Extend appends every element of seq in order, growing as needed.
// Requires exclusive access.
func (v *FixedVec[T]) Extend(seq iter.Seq[T]) {
	for elem := range seq {
		v.Append(elem)
	}
}

// Collect builds a FixedVec from seq. The vector starts at capacity 0 and
// doubles whenever a push is rejected, so the final capacity is the
// smallest power of two holding the sequence (or 0 for an empty sequence).
func Collect[T any](seq iter.Seq[T]) *FixedVec[T] {
	v := New[T](0)
	v.Extend(seq)
	return v
}
