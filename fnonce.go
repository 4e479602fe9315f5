// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package capfn

import (
	"sync/atomic"
)

// FnOnce is a consuming callback handle.
// FnOnce[A, R] wraps a behavior that may be invoked at most once; the
// single invocation transfers ownership of the captured state into the
// behavior, and the handle is spent afterward. Subsequent attempts to
// invoke will panic (Call) or return false (TryCall).
//
// The spent flag is atomic, so exactly-once holds even when the handle
// is moved across goroutines.
type FnOnce[A, R any] struct {
	used atomic.Uintptr
	call func(A) R
}

// Thunk is a zero-argument consuming callback producing an R.
// This is the common shape for deferred fallback computations.
type Thunk[R any] = FnOnce[struct{}, R]

// Once creates a consuming handle from a behavior.
// The returned FnOnce can be invoked at most once.
func Once[A, R any](f func(A) R) *FnOnce[A, R] {
	return &FnOnce[A, R]{call: f}
}

// Lazy creates a consuming handle from a zero-argument behavior.
func Lazy[R any](f func() R) *Thunk[R] {
	return Once(func(struct{}) R { return f() })
}

// Call invokes the behavior, consuming the handle.
// Panics if the handle has already been called or discarded.
func (f *FnOnce[A, R]) Call(a A) R {
	if f.used.Add(1) != 1 {
		panic("capfn: consumed callback invoked twice")
	}
	fn := f.call
	f.call = nil // release captured state after the single call
	return fn(a)
}

// TryCall attempts to invoke the behavior.
// Returns (result, true) on the first attempt, or (zero, false) if the
// handle was already consumed.
func (f *FnOnce[A, R]) TryCall(a A) (R, bool) {
	if f.used.Add(1) != 1 {
		var zero R
		return zero, false
	}
	fn := f.call
	f.call = nil
	return fn(a), true
}

// Discard marks the handle as consumed without invoking it.
// Captured state is released immediately.
func (f *FnOnce[A, R]) Discard() {
	f.used.Store(1)
	f.call = nil
}
