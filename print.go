// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - write an ASCII graphic representation of the tree
//
// The tree is drawn sideways, right branch above its node, left
// branch below.  With detail enabled each line also shows the count,
// the balance factor and the parent value.  Returns the maximum
// depth of the tree.  Debug use only.
func (tree *Tree[T]) Print(w io.Writer, detail bool) int {
	return printTree(w, tree.root, "", root, detail)
}

// internal print - returns the maximum depth of the sub-tree
func printTree[T any](w io.Writer, p *node[T], prefix string, br branch, detail bool) int {
	if p == nil {
		return 0
	}
	rd := 0
	ld := 0
	if p.right != nil {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, p.right, prefix+t, right, detail)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if detail {
		up := "^"
		if p.up != nil {
			up = fmt.Sprintf("^%v", p.up.value)
		}
		fmt.Fprintf(w, "%v ×%d %s %+2d\n", p.value, p.count, up, p.balance)
	} else {
		fmt.Fprintf(w, "%v\n", p.value)
	}
	if p.left != nil {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, p.left, prefix+t, left, detail)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
