// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lfv

import "code.hybscloud.com/iox"

// ErrFull indicates the vector's capacity is exhausted.
//
// ErrFull is a control flow signal, not a failure: a full fixed-capacity
// vector is a normal, expected outcome. The caller keeps ownership of the
// rejected value and decides what to do next — typically Grow (under
// exclusive access) followed by a retry, or discarding the value.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
//
// Example:
//
//	if err := v.Push(&item); lfv.IsFull(err) {
//	    v.Grow() // requires exclusive access
//	    _ = v.Push(&item)
//	}
var ErrFull = iox.ErrWouldBlock

// IsFull reports whether err indicates exhausted capacity.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsFull(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil or ErrFull. Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
