// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"math/rand"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/ordered-set/avl"
)

// random churn against a map model, verifying every step
func runExercise(c *cli.Context) error {
	log := logger.New("exercise")

	items := c.Int("items")
	seed := c.Int64("seed")
	if items <= 0 {
		exitwithstatus.Message("exercise: items must be positive, got: %d", items)
	}

	log.Infof("running %d operations, seed %d", items, seed)

	span := items / 2
	if span < 1 {
		span = 1
	}

	rng := rand.New(rand.NewSource(seed))
	tree := avl.New[int]()
	model := map[int]uint{}

	adds := 0
	removes := 0
	misses := 0
	for i := 0; i < items; i += 1 {
		value := rng.Intn(span)
		if rng.Intn(3) < 2 || len(model) == 0 { // bias toward growth
			tree.Add(value)
			model[value] += 1
			adds += 1
		} else {
			status := tree.Remove(value)
			if model[value] > 0 {
				if avl.Success != status {
					exitwithstatus.Message("exercise: op %d: remove %d: %s", i, value, status)
				}
				model[value] -= 1
				if 0 == model[value] {
					delete(model, value)
				}
				removes += 1
			} else {
				if avl.ValueNotFound != status {
					exitwithstatus.Message("exercise: op %d: remove absent %d: %s", i, value, status)
				}
				misses += 1
			}
		}

		if fault := tree.SelfCheck(); fault != "" {
			exitwithstatus.Message("exercise: op %d: invariant violation: %s", i, fault)
		}
	}

	log.Infof("churn done: %d adds, %d removes, %d misses", adds, removes, misses)
	log.Infof("tree: %d nodes, %d values, depth %d", tree.Len(), tree.Size(), tree.Height())

	// verify the survivors, then drain
	for value, count := range model {
		if tree.Count(value) != count {
			exitwithstatus.Message("exercise: count mismatch for %d: tree %d, model %d",
				value, tree.Count(value), count)
		}
		for n := uint(0); n < count; n += 1 {
			if avl.Success != tree.Remove(value) {
				exitwithstatus.Message("exercise: drain: remove %d failed", value)
			}
			if fault := tree.SelfCheck(); fault != "" {
				exitwithstatus.Message("exercise: drain: invariant violation: %s", fault)
			}
		}
	}
	if !tree.IsEmpty() {
		exitwithstatus.Message("exercise: tree is not empty after drain")
	}

	log.Info("exercise passed")
	return nil
}
