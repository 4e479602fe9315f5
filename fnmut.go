// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package capfn

import (
	"sync/atomic"
)

// FnMut is a mutating callback handle.
// FnMut[A, R] wraps a behavior that may be invoked unboundedly many
// times and may mutate its captured state. The handle holds exclusive
// access to that state: for the handle's lifetime no other code path
// may read or write the captured state.
//
// Exclusivity is a lexical-scope convention in single-threaded code;
// the one part the handle can check dynamically is reentrancy. Calling
// the handle again while a call is in flight would alias the captured
// state and panics.
type FnMut[A, R any] struct {
	busy atomic.Uintptr
	call func(A) R
}

// Exclusive creates a mutating handle from a behavior.
// The behavior's captured state must not be touched elsewhere while the
// handle is live.
func Exclusive[A, R any](f func(A) R) *FnMut[A, R] {
	return &FnMut[A, R]{call: f}
}

// Call invokes the behavior with exclusive access for the duration of
// the call. Panics if the handle is reentered while a call is in flight.
//
// A panic out of the behavior leaves the handle marked busy; the handle
// is poisoned rather than risking aliased access after an unwind.
func (f *FnMut[A, R]) Call(a A) R {
	if f.busy.Add(1) != 1 {
		panic("capfn: mutating callback reentered during call")
	}
	r := f.call(a)
	f.busy.Store(0)
	return r
}

// Once widens the handle to the consuming tier.
// The returned FnOnce invokes the same behavior, at most once.
// The original handle remains usable.
func (f *FnMut[A, R]) Once() *FnOnce[A, R] {
	return Once(f.call)
}
