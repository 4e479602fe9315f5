// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package capfn

// Ordered traversal over an owned slice.
// The callback receives a mutable view of each element; the traversal
// itself fixes invocation count and order, not what the callback does
// with its access (overwrite and accumulate are both legal).

// Traverse applies op to every element of seq, once each, in ascending
// index order. An empty slice means zero invocations, not an error.
//
// The slice header is taken by value: the callback must not change the
// sequence's length or element identities during traversal. Results of
// individual calls are discarded, so R is unconstrained and a handle of
// any result type fits.
func Traverse[T, R any](seq []T, op *FnMut[*T, R]) {
	for i := range seq {
		op.Call(&seq[i])
	}
}

// TraverseFunc applies a plain behavior to every element of seq,
// wrapping it as a mutating handle for the duration of the traversal.
func TraverseFunc[T any](seq []T, f func(*T)) {
	Traverse(seq, Exclusive(func(p *T) struct{} {
		f(p)
		return struct{}{}
	}))
}
