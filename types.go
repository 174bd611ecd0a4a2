// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfv

import "unsafe"

// Appender is the producer side of an append-only sequence.
//
// Appender provides the non-blocking append operation. The element is
// passed by pointer to avoid copying large structs; the sequence stores a
// copy of the pointed-to value, so the original can be modified after Push
// returns.
type Appender[T any] interface {
	// Push appends the element at a unique slot (non-blocking).
	// Returns nil on success, ErrFull if capacity is exhausted.
	// On ErrFull the caller keeps its value untouched.
	Push(elem *T) error
}

// Sequence is the combined interface for a bounded append-only sequence.
//
// Len, Cap and Get are safe for concurrent use alongside Push. Harnesses
// that compare sequence containers can program against this interface
// instead of a concrete type.
type Sequence[T any] interface {
	Appender[T]

	// Len returns the number of published elements.
	Len() int
	// Cap returns the current capacity.
	Cap() int
	// Get returns a copy of the element at index i,
	// or (zero, false) if i is out of the published range.
	Get(i int) (T, bool)
}

// ptrSize is the size of a pointer in bytes.
const ptrSize = int(unsafe.Sizeof(uintptr(0)))

// pad is cache line padding to prevent false sharing.
type pad [64]byte
