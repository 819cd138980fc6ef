// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// internal: iterative descent for a value
//
// Returns the matching node, or nil when absent; parent is the last
// node visited, i.e. the node a new value would hang from.  Runs in
// O(height) with no allocation.
func (tree *Tree[T]) find(value T) (p *node[T], parent *node[T]) {
	p = tree.root
	for p != nil {
		switch c := tree.compare(value, p.value); {
		case c < 0:
			parent = p
			p = p.left
		case c > 0:
			parent = p
			p = p.right
		default:
			return p, parent
		}
	}
	return nil, parent
}

// Contains - true if the value is present at least once
func (tree *Tree[T]) Contains(value T) bool {
	p, _ := tree.find(value)
	return p != nil
}

// Count - multiplicity of a value, zero when absent
func (tree *Tree[T]) Count(value T) uint {
	p, _ := tree.find(value)
	if p == nil {
		return 0
	}
	return p.count
}

// Min - the smallest value in the tree; false when empty
func (tree *Tree[T]) Min() (T, bool) {
	p := tree.root.first()
	if p == nil {
		var zero T
		return zero, false
	}
	return p.value, true
}

// Max - the largest value in the tree; false when empty
func (tree *Tree[T]) Max() (T, bool) {
	p := tree.root.last()
	if p == nil {
		var zero T
		return zero, false
	}
	return p.value, true
}
