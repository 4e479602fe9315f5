// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package capfn_test

import (
	"testing"

	"code.hybscloud.com/capfn"
)

// BenchmarkTraverse measures the per-element cost of a handle call.
func BenchmarkTraverse(b *testing.B) {
	seq := make([]int, 1024)
	op := capfn.Exclusive(func(p *int) struct{} {
		*p++
		return struct{}{}
	})

	for b.Loop() {
		capfn.Traverse(seq, op)
	}
}

// BenchmarkRetainKeepAll measures the compaction pass with no removals.
func BenchmarkRetainKeepAll(b *testing.B) {
	seq := make([]int, 1024)
	pred := capfn.Exclusive(func(int) bool { return true })

	for b.Loop() {
		capfn.Retain(&seq, pred)
	}
}

// BenchmarkRetainHalf measures the pass that drops every other element.
func BenchmarkRetainHalf(b *testing.B) {
	src := make([]int, 1024)
	for i := range src {
		src[i] = i
	}
	buf := make([]int, len(src))
	pred := capfn.Exclusive(func(n int) bool { return n%2 == 0 })

	for b.Loop() {
		seq := buf[:copy(buf, src)]
		capfn.Retain(&seq, pred)
	}
}

// BenchmarkOrElsePresent measures the present fast path.
func BenchmarkOrElsePresent(b *testing.B) {
	opt := capfn.Some(42)
	fallback := capfn.Lazy(func() int { return 0 })

	for b.Loop() {
		_ = capfn.OrElse(opt, fallback)
	}
}

// BenchmarkSealUnlock measures a full vault round trip.
func BenchmarkSealUnlock(b *testing.B) {
	for b.Loop() {
		v := capfn.Seal(7, 99)
		_ = v.Unlock(capfn.Lazy(func() int { return 7 }))
	}
}
