// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// internal: lowest node in a sub-tree
func (p *node[T]) first() *node[T] {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *node[T]) last() *node[T] {
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}

// internal: in-order successor, climbing the parent chain until the
// step up comes from a left child
func (p *node[T]) next() *node[T] {
	if p.right != nil {
		return p.right.first()
	}
	up := p.up
	for up != nil && up.right == p {
		p = up
		up = up.up
	}
	return up
}

// internal: in-order predecessor
func (p *node[T]) prev() *node[T] {
	if p.left != nil {
		return p.left.last()
	}
	up := p.up
	for up != nil && up.left == p {
		p = up
		up = up.up
	}
	return up
}

// Walk - visit every value in ascending order with its multiplicity
//
// The visit function returns false to stop early.  The tree must not
// be mutated during the walk.
func (tree *Tree[T]) Walk(fn func(value T, count uint) bool) {
	for p := tree.root.first(); p != nil; p = p.next() {
		if !fn(p.value, p.count) {
			return
		}
	}
}

// WalkReverse - visit every value in descending order with its
// multiplicity
//
// The visit function returns false to stop early.  The tree must not
// be mutated during the walk.
func (tree *Tree[T]) WalkReverse(fn func(value T, count uint) bool) {
	for p := tree.root.last(); p != nil; p = p.prev() {
		if !fn(p.value, p.count) {
			return
		}
	}
}
