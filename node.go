// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// a node in the tree
//
// Each node exclusively owns its two sub-trees; up is a back
// reference only and must never be used to keep a node alive.  It is
// nil only for the root.
type node[T any] struct {
	left    *node[T] // left sub-tree: values < value
	right   *node[T] // right sub-tree: values > value
	up      *node[T] // points to parent node
	value   T
	count   uint // multiplicity, ≥ 1 for a live node
	balance int8 // height(right) - height(left): -1, 0, +1
}

// allocate a node, reusing reclaimed nodes if any are available
func (tree *Tree[T]) newNode(value T, up *node[T]) *node[T] {
	if tree.pool == nil {
		return &node[T]{
			value: value,
			count: 1,
			up:    up,
		}
	}
	p := tree.pool
	tree.pool = p.up // the up field is the free list link
	tree.pooled -= 1
	p.left = nil
	p.right = nil
	p.up = up
	p.value = value
	p.count = 1
	p.balance = 0
	return p
}

// reclaim a node and keep it in the per-tree pool
func (tree *Tree[T]) freeNode(p *node[T]) {
	var zero T
	p.left = nil
	p.right = nil
	p.value = zero
	p.count = 0
	p.balance = 0
	p.up = tree.pool // use as free list pointer
	tree.pool = p
	tree.pooled += 1
}
