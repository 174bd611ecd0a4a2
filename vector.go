// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfv

import (
	"math/bits"
	"unsafe"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// FixedVec is a thread-safe append-only vector with a fixed capacity.
//
// Because the backing buffer never moves, Push requires neither locks nor
// exclusive access: any number of goroutines may append concurrently through
// a shared *FixedVec.
//
// Push is a two-phase protocol. A slot index is first reserved with an
// atomic fetch-and-add on the reservation cursor, giving every concurrent
// pusher a distinct slot; element writes therefore never overlap. The write
// is then made visible by advancing the published length, which only ever
// covers a contiguous, fully written prefix starting at index 0.
//
// Read operations (Len, Get, Slice, Iter) observe the published prefix and
// never block. Operations that need the whole vector to themselves — Mut,
// Grow, Drain, Append, Extend — require that no other goroutine touches the
// vector for their duration; this is a caller contract, not a runtime check.
//
// Memory: one slot per unit of capacity, allocated once at construction.
type FixedVec[T any] struct {
	_      pad
	next   atomix.Uint64 // Reservation cursor (FAA, may run past capacity)
	_      pad
	length atomix.Uint64 // Published length (always <= capacity)
	_      pad
	buffer []T
	cap    uint64
}

// New creates a FixedVec with the given capacity.
//
// Capacity is exact: no rounding is applied, and capacity 0 is valid (every
// Push fails until Grow is called). Panics if capacity is negative or if
// the buffer size in bytes would overflow.
func New[T any](capacity int) *FixedVec[T] {
	return &FixedVec[T]{
		buffer: allocBuffer[T](capacity),
		cap:    uint64(capacity),
	}
}

// allocBuffer allocates storage for capacity elements of type T.
// An allocation that cannot be represented is a programming error,
// reported by panic rather than an error return.
func allocBuffer[T any](capacity int) []T {
	if capacity < 0 {
		panic("lfv: negative capacity")
	}
	var elem T
	if hi, _ := bits.Mul64(uint64(capacity), uint64(unsafe.Sizeof(elem))); hi != 0 {
		panic("lfv: buffer size overflows")
	}
	return make([]T, capacity)
}

// Push appends *elem at a uniquely reserved slot (non-blocking, shared access).
//
// Returns nil on success, ErrFull if capacity is exhausted; on ErrFull the
// caller keeps its value untouched. A rejected reservation is never rolled
// back, so capacity lost to overflowing pushes is not recovered — the vector
// stays full until Grow.
//
// Push is lock-free: the publication loop below only spins while a pusher
// holding a lower slot index has written but not yet published, so the wait
// is bounded by the number of reservations strictly ahead of the caller.
func (v *FixedVec[T]) Push(elem *T) error {
	idx := v.next.AddAcqRel(1) - 1
	if idx >= v.cap {
		return ErrFull
	}

	v.buffer[idx] = *elem

	// Strict per-slot FIFO barrier: length may only move from idx to idx+1,
	// so the prefix below length is always fully written. An unconditional
	// store of idx+1 would expose slots a slower lower-index pusher has
	// reserved but not yet written.
	sw := spin.Wait{}
	for !v.length.CompareAndSwapAcqRel(idx, idx+1) {
		sw.Once()
	}
	return nil
}

// Len returns the published length.
// The acquire load pairs with the release publication in Push, so every
// slot below the returned length holds a completed write.
func (v *FixedVec[T]) Len() int {
	return int(v.length.LoadAcquire())
}

// Cap returns the fixed capacity.
func (v *FixedVec[T]) Cap() int {
	return int(v.cap)
}

// Get returns a copy of the element at index i, or (zero, false) if i is
// outside the published prefix. Published slots are never rewritten, so the
// copy is safe under concurrent pushers.
func (v *FixedVec[T]) Get(i int) (T, bool) {
	if i < 0 || i >= v.Len() {
		var zero T
		return zero, false
	}
	return v.buffer[i], true
}

// Mut returns a pointer to the element at index i for in-place mutation,
// or (nil, false) if i is outside the published prefix.
//
// Requires exclusive access: mutating a published slot while other
// goroutines read or push is a data race.
func (v *FixedVec[T]) Mut(i int) (*T, bool) {
	if i < 0 || i >= v.Len() {
		return nil, false
	}
	return &v.buffer[i], true
}

// Slice returns the published prefix. The slice aliases the vector's
// storage: it is safe for concurrent reads, and may be written through only
// under exclusive access. It remains valid across later pushes (they extend
// the prefix beyond the returned slice) but not across Grow or Drain.
func (v *FixedVec[T]) Slice() []T {
	return v.buffer[:v.Len()]
}

// Grow replaces the backing buffer with one of double the capacity
// (0 grows to 1), preserving the published prefix. Len and every Get result
// are identical before and after.
//
// Requires exclusive access. Reservations wasted by rejected pushes are
// discarded: both counters restart at the carried-over length.
func (v *FixedVec[T]) Grow() {
	n := uint64(v.Len())
	newCap := v.cap * 2
	if newCap == 0 {
		newCap = 1
	}

	buf := allocBuffer[T](int(newCap))
	copy(buf, v.buffer[:n])

	v.buffer = buf
	v.cap = newCap
	v.next.StoreRelaxed(n)
	v.length.StoreRelease(n)
}
