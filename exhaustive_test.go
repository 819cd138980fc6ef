// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ordered-set/avl"
)

// all permutations of a value set, Heap's method
func permutations(values []int) [][]int {
	out := [][]int{}
	n := len(values)
	v := make([]int, n)
	copy(v, values)

	var generate func(k int)
	generate = func(k int) {
		if k == 1 {
			perm := make([]int, n)
			copy(perm, v)
			out = append(out, perm)
			return
		}
		for i := 0; i < k; i += 1 {
			generate(k - 1)
			if k%2 == 0 {
				v[i], v[k-1] = v[k-1], v[i]
			} else {
				v[0], v[k-1] = v[k-1], v[0]
			}
		}
	}
	generate(n)
	return out
}

func sequence(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i + 1
	}
	return s
}

// every insertion order of up to 6 distinct values keeps the tree
// consistent at every step
func TestExhaustiveInsertion(t *testing.T) {
	for n := 1; n <= 6; n += 1 {
		for _, perm := range permutations(sequence(n)) {
			tree := avl.New[int]()
			for _, v := range perm {
				tree.Add(v)
				if fault := tree.SelfCheck(); fault != "" {
					t.Fatalf("insert order %v: %s", perm, fault)
				}
			}
			require.Equal(t, n, tree.Len())
		}
	}
}

// every removal order of up to 7 distinct values keeps the tree
// consistent at every step and empties it; this is the exhaustive
// validation of the shrink propagation rule
func TestExhaustiveRemoval(t *testing.T) {
	for n := 1; n <= 7; n += 1 {
		for _, perm := range permutations(sequence(n)) {
			tree := avl.New[int]()
			for _, v := range sequence(n) {
				tree.Add(v)
			}
			for _, v := range perm {
				require.Equal(t, avl.Success, tree.Remove(v))
				if fault := tree.SelfCheck(); fault != "" {
					t.Fatalf("removal order %v: %s", perm, fault)
				}
			}
			require.True(t, tree.IsEmpty(), "removal order %v left nodes behind", perm)
		}
	}
}

// both orders crossed for small sets
func TestExhaustiveInsertionRemoval(t *testing.T) {
	for n := 1; n <= 4; n += 1 {
		perms := permutations(sequence(n))
		for _, addOrder := range perms {
			for _, removeOrder := range perms {
				tree := avl.New[int]()
				for _, v := range addOrder {
					tree.Add(v)
					if fault := tree.SelfCheck(); fault != "" {
						t.Fatalf("add %v: %s", addOrder, fault)
					}
				}
				for _, v := range removeOrder {
					require.Equal(t, avl.Success, tree.Remove(v))
					if fault := tree.SelfCheck(); fault != "" {
						t.Fatalf("add %v remove %v: %s", addOrder, removeOrder, fault)
					}
				}
				require.True(t, tree.IsEmpty())
			}
		}
	}
}
