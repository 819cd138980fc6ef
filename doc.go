// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree storing ordered values with
// multiplicity counts, with parent pointers to allow rebalancing and
// iteration without retaining a search path
//
// Note: an individual tree is not thread safe, so either access only
// in a single go routine or use mutex/rwmutex to restrict access.
//
// Inserting a value that is already present never creates a second
// node; the existing node's count is incremented instead, and the
// value must be removed as many times as it was added before it
// disappears.  Rebalancing walks the parent chain upward from the
// mutation point and is done entirely with stored balance factors,
// never by re-measuring subtree heights.
package avl
