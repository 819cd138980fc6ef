// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/ordered-set/avl"
)

var separator = strings.Repeat("~", 72)

// replay the original library walkthrough: grow the tree letter by
// letter, rendering after each step, then shrink it back to empty
func runDemo(c *cli.Context) error {
	log := logger.New("demo")

	added := strings.Fields("k d r d e f z s e i w l m n b a")
	absent := strings.Fields("A N 8 Y")

	tree := avl.NewFrom(added[0])
	for _, s := range added[1:] {
		tree.Add(s)
		render(c, tree, "added %q", s)
	}

	for _, s := range added {
		if !tree.Contains(s) {
			exitwithstatus.Message("demo: %q was not found", s)
		}
	}
	for _, s := range absent {
		if tree.Contains(s) {
			exitwithstatus.Message("demo: %q was found", s)
		}
	}
	if avl.ValueNotFound != tree.Remove(".") {
		exitwithstatus.Message("demo: removing an absent value did not fail")
	}
	log.Infof("%d values held in %d nodes, depth %d", tree.Size(), tree.Len(), tree.Height())

	for _, s := range added {
		if avl.Success != tree.Remove(s) {
			exitwithstatus.Message("demo: removing %q failed", s)
		}
		render(c, tree, "removed %q", s)
	}
	if !tree.IsEmpty() {
		exitwithstatus.Message("demo: tree is not empty after full removal")
	}
	log.Info("walkthrough complete")
	return nil
}

func render(c *cli.Context, tree *avl.Tree[string], format string, args ...interface{}) {
	if fault := tree.SelfCheck(); fault != "" {
		exitwithstatus.Message("invariant violation: %s", fault)
	}
	fmt.Fprintf(c.App.Writer, format+"\n", args...)
	tree.Print(c.App.Writer, true)
	fmt.Fprintf(c.App.Writer, "%s\n", separator)
}
