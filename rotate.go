// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Rotations are done in place by swapping the content (value and
// count) of the unbalanced node with its overweight child and
// rewiring the four sub-tree pointers, so the slot owning the
// unbalanced node - which may be the tree's root slot - is never
// touched.  Balance factors are recomputed in closed form from the
// two pre-rotation balances, covering the four classic AVL cases
// without re-measuring any height.

// rotateToSmaller - rebalance a node whose balance has reached +2
//
// The right branch is two levels taller; weight moves to the left.
func rotateToSmaller[T any](p *node[T]) {
	if p.right.balance < 0 {
		// zig-zag: right child leans left, straighten it first
		singleRight(p.right)
	}
	singleLeft(p)
}

// rotateToBigger - rebalance a node whose balance has reached -2
//
// The left branch is two levels taller; weight moves to the right.
func rotateToBigger[T any](p *node[T]) {
	if p.left.balance > 0 {
		// zig-zag: left child leans right, straighten it first
		singleLeft(p.left)
	}
	singleRight(p)
}

// single rotation raising the right child's content into p
func singleLeft[T any](p *node[T]) {
	c := p.right

	p.value, c.value = c.value, p.value
	p.count, c.count = c.count, p.count

	p.right = c.right
	c.right = c.left
	c.left = p.left
	p.left = c

	if p.right != nil {
		p.right.up = p
	}
	if c.left != nil {
		c.left.up = c
	}

	bp, bc := p.balance, c.balance
	c.balance = bp - 1 - max(bc, 0)
	p.balance = bc - 1 + min(c.balance, 0)
}

// single rotation raising the left child's content into p
func singleRight[T any](p *node[T]) {
	c := p.left

	p.value, c.value = c.value, p.value
	p.count, c.count = c.count, p.count

	p.left = c.left
	c.left = c.right
	c.right = p.right
	p.right = c

	if p.left != nil {
		p.left.up = p
	}
	if c.right != nil {
		c.right.up = c
	}

	bp, bc := p.balance, c.balance
	c.balance = bp + 1 - min(bc, 0)
	p.balance = bc + 1 + max(c.balance, 0)
}
