// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Add - insert a value into the tree
//
// Duplicates are legal: adding a value that is already present only
// increments its count and causes no structural change.
func (tree *Tree[T]) Add(value T) {
	tree.size += 1

	if tree.root == nil {
		tree.root = tree.newNode(value, nil)
		tree.nodes += 1
		return
	}

	p, parent := tree.find(value)
	if p != nil {
		// multiplicities do not affect shape
		p.count += 1
		return
	}

	n := tree.newNode(value, parent)
	onLeft := tree.compare(value, parent.value) < 0
	if onLeft {
		parent.left = n
	} else {
		parent.right = n
	}
	tree.nodes += 1

	balanceAfterGrowth(parent, onLeft)
}

// internal: propagate a height increase up the parent chain
//
// p is the node whose left (fromLeft) or right branch has grown by
// one.  Whether the grandparent must still be told is decided before
// the balance is adjusted: only a 0 → ±1 transition changes the
// height of p's own sub-tree.  A rotation restores the previous
// height, so it always ends the walk.
func balanceAfterGrowth[T any](p *node[T], fromLeft bool) {
	for p != nil {
		grew := p.balance == 0
		if fromLeft {
			p.balance -= 1
		} else {
			p.balance += 1
		}

		switch p.balance {
		case -2:
			rotateToBigger(p)
			return
		case +2:
			rotateToSmaller(p)
			return
		}

		if !grew { // ±1 → 0: the shorter branch caught up
			return
		}

		up := p.up
		if up != nil {
			fromLeft = up.left == p
		}
		p = up
	}
}
