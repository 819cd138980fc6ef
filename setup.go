// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Tree - type to hold the root node of a tree
type Tree[T any] struct {
	root    *node[T]
	compare func(a, b T) int
	nodes   int // distinct values
	size    int // including multiplicities
	pool    *node[T]
	pooled  int
}

// New - create an initially empty tree over a naturally ordered type
func New[T cmp.Ordered]() *Tree[T] {
	return NewWith[T](cmp.Compare[T])
}

// NewWith - create an initially empty tree using an explicit
// comparator; compare must implement a total order and return
// negative/zero/positive for a<b, a==b, a>b
func NewWith[T any](compare func(a, b T) int) *Tree[T] {
	return &Tree[T]{
		root:    nil,
		compare: compare,
	}
}

// NewFrom - create a tree holding one initial value with count 1
func NewFrom[T cmp.Ordered](value T) *Tree[T] {
	tree := New[T]()
	tree.Add(value)
	return tree
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return tree.root == nil
}

// Len - number of distinct values currently in the tree
func (tree *Tree[T]) Len() int {
	return tree.nodes
}

// Size - number of values including multiplicities
func (tree *Tree[T]) Size() int {
	return tree.size
}

// Height - measured height of the tree; zero when empty
//
// This walks the whole tree and is intended for diagnostics and
// tests, not for normal operation.
func (tree *Tree[T]) Height() int {
	return tree.root.height()
}

// internal: measured height of a sub-tree
func (p *node[T]) height() int {
	if p == nil {
		return 0
	}
	l := p.left.height()
	r := p.right.height()
	if l > r {
		return 1 + l
	}
	return 1 + r
}
