// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfv

import (
	"unsafe"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// FixedVecPtr is a FixedVec for unsafe.Pointer values.
// Useful for zero-copy handle storage: the producer appends a pointer and
// readers observe the same pointer, with no element copying.
//
// The reservation/publication protocol is identical to [FixedVec]; see its
// documentation for the concurrency contract. FixedVecPtr keeps only the
// hot-path surface (Push, Len, Get, Slice, Grow); use FixedVec for
// iterators, Clone and Drain.
type FixedVecPtr struct {
	_      pad
	next   atomix.Uint64
	_      pad
	length atomix.Uint64
	_      pad
	buffer []unsafe.Pointer
	cap    uint64
}

// NewPtr creates a FixedVecPtr with the given capacity.
// Panics if capacity is negative.
func NewPtr(capacity int) *FixedVecPtr {
	if capacity < 0 {
		panic("lfv: negative capacity")
	}
	return &FixedVecPtr{
		buffer: make([]unsafe.Pointer, capacity),
		cap:    uint64(capacity),
	}
}

// Push appends elem at a uniquely reserved slot (non-blocking, shared access).
// Returns nil on success, ErrFull if capacity is exhausted.
func (v *FixedVecPtr) Push(elem unsafe.Pointer) error {
	idx := v.next.AddAcqRel(1) - 1
	if idx >= v.cap {
		return ErrFull
	}

	// Pointer arithmetic avoids slice bounds checking in hot path.
	// Equivalent to v.buffer[idx] = elem
	*(*unsafe.Pointer)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(v.buffer)), int(idx)*ptrSize)) = elem

	sw := spin.Wait{}
	for !v.length.CompareAndSwapAcqRel(idx, idx+1) {
		sw.Once()
	}
	return nil
}

// Len returns the published length.
func (v *FixedVecPtr) Len() int {
	return int(v.length.LoadAcquire())
}

// Cap returns the fixed capacity.
func (v *FixedVecPtr) Cap() int {
	return int(v.cap)
}

// Get returns the pointer at index i, or (nil, false) if i is outside the
// published prefix.
func (v *FixedVecPtr) Get(i int) (unsafe.Pointer, bool) {
	if i < 0 || i >= v.Len() {
		return nil, false
	}
	// Pointer arithmetic avoids slice bounds checking in hot path.
	// Equivalent to elem := v.buffer[i]
	elem := *(*unsafe.Pointer)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(v.buffer)), i*ptrSize))
	return elem, true
}

// Slice returns the published prefix. Safe for concurrent reads; writable
// only under exclusive access.
func (v *FixedVecPtr) Slice() []unsafe.Pointer {
	return v.buffer[:v.Len()]
}

// Grow doubles the capacity (0 grows to 1), preserving the published
// prefix. Requires exclusive access.
func (v *FixedVecPtr) Grow() {
	n := uint64(v.Len())
	newCap := v.cap * 2
	if newCap == 0 {
		newCap = 1
	}

	buf := make([]unsafe.Pointer, newCap)
	copy(buf, v.buffer[:n])

	v.buffer = buf
	v.cap = newCap
	v.next.StoreRelaxed(n)
	v.length.StoreRelease(n)
}
