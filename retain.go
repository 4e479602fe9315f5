// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package capfn

import (
	"strings"
)

// In-place filtering with a mutating predicate.
// An element survives iff the predicate returns true at the time of
// evaluation; survivors keep their original relative order. The pass is
// linear — a single write index compacts the slice, never the quadratic
// remove-by-index loop.

// Retain filters *seq in place. pred is evaluated once per original
// element, in ascending index order; elements for which it returns
// false are removed. The vacated tail is cleared so removed elements
// do not linger behind the shortened slice, and *seq is truncated to
// the survivors. No new backing array is allocated.
//
// The predicate may mutate its captured state between calls — counting
// rejections or diverting them into a sink (see [Divert]) are the
// typical uses.
func Retain[T any](seq *[]T, pred *FnMut[T, bool]) {
	s := *seq
	w := 0
	for i := range s {
		if pred.Call(s[i]) {
			if w != i {
				s[w] = s[i]
			}
			w++
		}
	}
	clear(s[w:])
	*seq = s[:w]
}

// RetainFunc filters *seq in place with a plain predicate.
func RetainFunc[T any](seq *[]T, f func(T) bool) {
	Retain(seq, Exclusive(f))
}

// RetainString filters a string viewed as a sequence of code points.
// The predicate contract is identical to [Retain]; because Go strings
// are immutable the survivors are returned as a new string rather than
// truncated in place. Filtering a mutable character buffer in place is
// Retain over a []rune.
func RetainString(s string, pred *FnMut[rune, bool]) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if pred.Call(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Divert builds a retain predicate that moves rejected elements into a
// caller-owned sink. Elements for which keep returns false are appended
// to *sink, in evaluation order, before the rejection is reported.
// Every original element therefore ends up in exactly one place: the
// filtered sequence or the sink.
func Divert[T any](sink *[]T, keep func(T) bool) *FnMut[T, bool] {
	return Exclusive(func(v T) bool {
		if keep(v) {
			return true
		}
		*sink = append(*sink, v)
		return false
	})
}

// Partition splits seq into the elements for which pred returns true
// and those for which it returns false, both in original order. Unlike
// [Retain] the input is left untouched and two new slices are built;
// use it when the rejected elements are wanted as a sequence of their
// own rather than as a side effect.
func Partition[T any](seq []T, pred *FnMut[T, bool]) (kept, rejected []T) {
	for _, v := range seq {
		if pred.Call(v) {
			kept = append(kept, v)
		} else {
			rejected = append(rejected, v)
		}
	}
	return kept, rejected
}
