// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package capfn

// Fn is a read-only callback handle.
// Fn[A, R] wraps a behavior from A to R that may be invoked unboundedly
// many times and must only observe, never mutate, its captured state.
//
// Go cannot verify the no-mutation half of the contract; it is a
// construction-time claim. Constructing a Fn over a behavior that
// writes to captured state is a caller bug.
type Fn[A, R any] struct {
	call func(A) R
}

// Shared creates a read-only handle from a behavior.
// Many Fn handles over the same captured state may coexist, because
// none of them writes to it.
func Shared[A, R any](f func(A) R) *Fn[A, R] {
	return &Fn[A, R]{call: f}
}

// Call invokes the behavior. There is no invocation budget on the
// read-only tier.
func (f *Fn[A, R]) Call(a A) R {
	return f.call(a)
}

// Mut widens the handle to the mutating tier.
// A read-only behavior trivially satisfies a mutating requirement, so
// any operation that asks for a FnMut accepts the result.
func (f *Fn[A, R]) Mut() *FnMut[A, R] {
	return Exclusive(f.call)
}

// Once widens the handle to the consuming tier.
// The returned FnOnce invokes the same behavior, at most once.
// The original handle remains usable.
func (f *Fn[A, R]) Once() *FnOnce[A, R] {
	return Once(f.call)
}
