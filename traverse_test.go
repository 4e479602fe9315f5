// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package capfn_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/capfn"
)

type cartItem struct {
	name  string
	price float64
}

func TestTraverse(t *testing.T) {
	t.Run("visits every element once in index order", func(t *testing.T) {
		seq := []int{10, 20, 30, 40}
		var visited []int

		capfn.Traverse(seq, capfn.Exclusive(func(p *int) struct{} {
			visited = append(visited, *p)
			return struct{}{}
		}))

		assert.Equal(t, []int{10, 20, 30, 40}, visited)
		assert.Len(t, seq, 4)
	})

	t.Run("empty sequence means zero invocations", func(t *testing.T) {
		calls := 0
		capfn.Traverse([]int{}, capfn.Exclusive(func(p *int) struct{} {
			calls++
			return struct{}{}
		}))
		assert.Zero(t, calls)
	})

	t.Run("overwrite per call", func(t *testing.T) {
		cart := []cartItem{
			{name: "APPLE", price: 3.99},
			{name: "BANANA", price: 2.99},
		}

		capfn.TraverseFunc(cart, func(it *cartItem) { it.price *= 0.85 })
		capfn.TraverseFunc(cart, func(it *cartItem) { it.name = strings.ToLower(it.name) })

		require.InDelta(t, 3.3915, cart[0].price, 1e-9)
		require.InDelta(t, 2.5415, cart[1].price, 1e-9)
		assert.Equal(t, "apple", cart[0].name)
		assert.Equal(t, "banana", cart[1].name)
	})

	t.Run("accumulate per call", func(t *testing.T) {
		cart := []cartItem{
			{name: "apple", price: 1.5},
			{name: "banana", price: 2.5},
		}

		total := 0.0
		capfn.Traverse(cart, capfn.Exclusive(func(it *cartItem) struct{} {
			total += it.price
			return struct{}{}
		}))

		assert.InDelta(t, 4.0, total, 1e-9)
	})

	t.Run("result type of the handle is unconstrained", func(t *testing.T) {
		seq := []int{1, 2, 3}
		sum := 0
		// A handle returning a value works too; results are discarded.
		capfn.Traverse(seq, capfn.Exclusive(func(p *int) int {
			sum += *p
			return sum
		}))
		assert.Equal(t, 6, sum)
	})
}
