// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// SelfCheck - verify every structural invariant of the tree
//
// Returns an empty string when the tree is consistent, otherwise a
// description of the first violation found.  The walk is bottom-up
// and recomputes true sub-tree heights to cross-check every stored
// balance factor, so it is far too slow for normal operation; it
// exists to support testing, where any non-empty result is a bug in
// the rebalancing logic.
func (tree *Tree[T]) SelfCheck() string {
	_, fault := tree.verify(tree.root, nil, nil, nil)
	return fault
}

// internal: consistency checker
//
// lo/hi carry the open interval the sub-tree's values must lie in;
// nil means unbounded on that side.  Returns the true height of the
// sub-tree.
func (tree *Tree[T]) verify(p *node[T], up *node[T], lo *T, hi *T) (int, string) {
	if p == nil {
		return 0, ""
	}
	if p.up != up {
		return 0, fmt.Sprintf("node %v: parent link does not point at its owner", p.value)
	}
	if p.count < 1 {
		return 0, fmt.Sprintf("node %v: zero count on a live node", p.value)
	}
	if p.balance < -1 || p.balance > 1 {
		return 0, fmt.Sprintf("node %v: balance %d outside {-1,0,1}", p.value, p.balance)
	}
	if lo != nil && tree.compare(p.value, *lo) <= 0 {
		return 0, fmt.Sprintf("node %v: not greater than ancestor %v", p.value, *lo)
	}
	if hi != nil && tree.compare(p.value, *hi) >= 0 {
		return 0, fmt.Sprintf("node %v: not less than ancestor %v", p.value, *hi)
	}

	lh, fault := tree.verify(p.left, p, lo, &p.value)
	if fault != "" {
		return 0, fault
	}
	rh, fault := tree.verify(p.right, p, &p.value, hi)
	if fault != "" {
		return 0, fault
	}

	if int(p.balance) != rh-lh {
		return 0, fmt.Sprintf("node %v: balance %d but measured height difference %d",
			p.value, p.balance, rh-lh)
	}
	return 1 + max(lh, rh), ""
}
