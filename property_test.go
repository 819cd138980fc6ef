// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"math"
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/ordered-set/avl"
)

var defaultGopterParameters = gopter.DefaultTestParameters()

// the tree agrees with a map model through arbitrary interleaved
// add/remove sequences, and stays consistent at every step
func TestModelProperty(t *testing.T) {
	properties := gopter.NewProperties(defaultGopterParameters)

	properties.Property("tree tracks a multiset model", prop.ForAll(
		func(adds []int, removes []int) bool {
			tree := avl.New[int]()
			model := map[int]uint{}

			for _, v := range adds {
				tree.Add(v)
				model[v] += 1
				if tree.SelfCheck() != "" {
					return false
				}
			}

			for _, v := range removes {
				status := tree.Remove(v)
				if model[v] > 0 {
					if status != avl.Success {
						return false
					}
					model[v] -= 1
					if model[v] == 0 {
						delete(model, v)
					}
				} else if status != avl.ValueNotFound {
					return false
				}
				if tree.SelfCheck() != "" {
					return false
				}
			}

			total := 0
			for v, count := range model {
				if !tree.Contains(v) || tree.Count(v) != count {
					return false
				}
				total += int(count)
			}
			if tree.Len() != len(model) || tree.Size() != total {
				return false
			}

			walked := []int{}
			tree.Walk(func(value int, count uint) bool {
				if model[value] != count {
					return false
				}
				walked = append(walked, value)
				return true
			})
			return sort.IntsAreSorted(walked) && len(walked) == len(model)
		},
		gen.SliceOf(gen.IntRange(0, 50)),
		gen.SliceOf(gen.IntRange(0, 50)),
	))

	properties.TestingRun(t)
}

// the measured height never exceeds the AVL bound
func TestHeightProperty(t *testing.T) {
	properties := gopter.NewProperties(defaultGopterParameters)

	properties.Property("height stays within 1.44·log2(n+2)", prop.ForAll(
		func(values []int) bool {
			tree := avl.New[int]()
			for _, v := range values {
				tree.Add(v)
			}
			n := tree.Len()
			return float64(tree.Height()) <= 1.44*math.Log2(float64(n+2))
		},
		gen.SliceOf(gen.IntRange(0, 100_000)),
	))

	properties.TestingRun(t)
}

// values never inserted are never reported present
func TestAbsentProperty(t *testing.T) {
	properties := gopter.NewProperties(defaultGopterParameters)

	properties.Property("contains is exact", prop.ForAll(
		func(values []int, probes []int) bool {
			tree := avl.New[int]()
			inserted := map[int]struct{}{}
			for _, v := range values {
				tree.Add(v)
				inserted[v] = struct{}{}
			}
			for _, v := range probes {
				_, ok := inserted[v]
				if tree.Contains(v) != ok {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 200)),
		gen.SliceOf(gen.IntRange(0, 400)),
	))

	properties.TestingRun(t)
}
