// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lfv provides a lock-free fixed-capacity append-only vector.
//
// Unlike a slice guarded by a mutex, a [FixedVec] lets any number of
// goroutines append concurrently through a shared pointer, without locks
// and without the backing buffer ever moving underneath readers.
//
// # Quick Start
//
//	v := lfv.New[int](1024)
//
//	// Concurrent appends (shared access)
//	x := 42
//	if err := v.Push(&x); lfv.IsFull(err) {
//	    // Capacity exhausted — caller keeps x
//	}
//
//	// Concurrent reads
//	n := v.Len()
//	elem, ok := v.Get(0)
//	for _, e := range v.Slice() {
//	    process(e)
//	}
//
// # How Push Works
//
// Push runs a two-phase reservation/publication protocol:
//
//  1. Reserve: an atomic fetch-and-add on the reservation cursor hands the
//     caller a slot index no other pusher will ever receive. An index past
//     capacity means the vector is full; the ticket is forfeited and
//     ErrFull is returned.
//  2. Write: the value is copied into the private slot. Writes to distinct
//     slots never race.
//  3. Publish: a compare-and-swap loop advances the published length from
//     idx to idx+1. A pusher that reserved slot 5 waits (spinning) until
//     slot 4 is published, so the visible length always covers a
//     contiguous, fully written prefix.
//
// Progress is lock-free: a pusher can be delayed only by pushers holding
// strictly lower slot indices that have not published yet, never by a lock.
// Len and Get are wait-free and O(1).
//
// # Shared vs Exclusive Access
//
// Push, Len, Cap, Get, Slice (reads), Values, All, Backward and Iter
// (reads) are safe from any number of goroutines. Operations that reshape
// the vector or mutate published elements require exclusive access,
// enforced by caller contract rather than a runtime lock:
//
//	Mut, Grow, Drain, Append, Extend, writes through Slice/Iter pointers
//
// # Growth
//
//	// Exclusive access: no other goroutine touches v
//	if err := v.Push(&x); lfv.IsFull(err) {
//	    v.Grow() // capacity doubles (0 grows to 1), contents preserved
//	    _ = v.Push(&x)
//	}
//
// Append and Extend bundle this push-grow-retry pattern, and Collect builds
// a vector from any iter.Seq the same way.
//
// # Iteration
//
// Three views over the published prefix:
//
//	v.Values()   // iter.Seq[T] of copies, like slices.Values
//	v.Backward() // reverse index/value pairs, like slices.Backward
//	v.Iter()     // double-ended cursor yielding *T
//	v.Drain()    // owning iterator: consumes the vector, moves values out
//
// Drain supports mixed front/back consumption and must be closed if not
// fully consumed:
//
//	d := v.Drain()
//	defer d.Close()
//	for {
//	    elem, ok := d.Next()
//	    if !ok {
//	        break
//	    }
//	    consume(elem)
//	}
//
// # Error Handling
//
// The only recoverable condition is a full vector: Push returns [ErrFull],
// an alias of [iox.ErrWouldBlock] for ecosystem consistency, and the caller
// keeps the rejected value. Constructor misuse (negative capacity, a byte
// size that overflows) panics.
//
// # Race Detection
//
// Go's race detector cannot observe happens-before relationships
// established through atomix memory orderings: concurrent slot writes are
// synchronized by the release publication and acquire length load, but the
// detector sees plain memory accesses on one variable and atomics on
// another and reports false positives. The protocol is correct; concurrent
// tests are skipped under the detector via [RaceEnabled].
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit
// memory ordering, and [code.hybscloud.com/spin] for CPU pause
// instructions.
package lfv
