// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"

	"github.com/ordered-set/avl"
)

// multiset sort of the command line arguments
func runSort(c *cli.Context) error {
	if 0 == c.NArg() {
		exitwithstatus.Message("sort: no values given")
	}

	tree := avl.New[string]()
	for _, arg := range c.Args() {
		tree.Add(arg)
	}

	emit := func(value string, count uint) bool {
		if count > 1 {
			fmt.Fprintf(c.App.Writer, "%s ×%d\n", value, count)
		} else {
			fmt.Fprintf(c.App.Writer, "%s\n", value)
		}
		return true
	}
	if c.Bool("reverse") {
		tree.WalkReverse(emit)
	} else {
		tree.Walk(emit)
	}
	return nil
}
