// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Status - result of a removal
type Status int

const (
	Success Status = iota
	ValueNotFound
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case ValueNotFound:
		return "value not found"
	default:
		return "unknown status"
	}
}

// Remove - delete one occurrence of a value from the tree
//
// Returns ValueNotFound, without mutating anything, when the value is
// absent.  While the count is above one only the count is
// decremented; the node itself is removed when its last occurrence
// goes.
func (tree *Tree[T]) Remove(value T) Status {
	p, _ := tree.find(value)
	if p == nil {
		return ValueNotFound
	}

	if p.count > 1 {
		p.count -= 1
		tree.size -= 1
		return Success
	}

	// two children: move the in-order successor's content here and
	// remove the successor instead; being the minimum of the right
	// branch it has no left child
	if p.left != nil && p.right != nil {
		s := p.right.first()
		p.value = s.value
		p.count = s.count
		p = s
	}

	// p now has at most one child: splice it out
	child := p.left
	if child == nil {
		child = p.right
	}
	if child != nil {
		child.up = p.up
	}

	parent := p.up
	fromLeft := false
	if parent == nil {
		tree.root = child
	} else {
		fromLeft = parent.left == p
		if fromLeft {
			parent.left = child
		} else {
			parent.right = child
		}
	}

	tree.freeNode(p)
	tree.nodes -= 1
	tree.size -= 1

	if parent != nil {
		balanceAfterShrink(parent, fromLeft)
	}
	return Success
}

// internal: propagate a height decrease up the parent chain
//
// p is the node whose left (fromLeft) or right branch has shrunk by
// one.  The walk continues only while the balance settles at exactly
// 0: a 0 → ±1 transition keeps the sub-tree height, and a rotation
// keeps it in the one case where the risen child was perfectly
// balanced, leaving p at ±1.
func balanceAfterShrink[T any](p *node[T], fromLeft bool) {
	for p != nil {
		if fromLeft {
			p.balance += 1
		} else {
			p.balance -= 1
		}

		switch p.balance {
		case -2:
			rotateToBigger(p)
		case +2:
			rotateToSmaller(p)
		}

		if p.balance != 0 {
			return
		}

		up := p.up
		if up != nil {
			fromLeft = up.left == p
		}
		p = up
	}
}
